package pageturn

// Direction is the way a flip moves through the book.
type Direction int

const (
	// DirectionNone means no flip has been decided.
	DirectionNone Direction = iota
	// DirectionPrev flips back to the previous page.
	DirectionPrev
	// DirectionNext flips forward to the next page.
	DirectionNext
)

func (d Direction) String() string {
	switch d {
	case DirectionNone:
		return "None"
	case DirectionPrev:
		return "Prev"
	case DirectionNext:
		return "Next"
	default:
		return "Unknown"
	}
}
