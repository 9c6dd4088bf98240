package pageturn

import "github.com/samber/lo"

// Action is the kind of a pointer event.
type Action int

// Pointer actions.
const (
	ActionDown Action = iota
	ActionMove
	ActionUp
	ActionCancel
	// ActionPointerUp is a secondary pointer lifting while others stay down.
	ActionPointerUp
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionDown:
		return "Down"
	case ActionMove:
		return "Move"
	case ActionUp:
		return "Up"
	case ActionCancel:
		return "Cancel"
	case ActionPointerUp:
		return "PointerUp"
	default:
		return "Unknown"
	}
}

// Pointer is one active pointer position in view pixels.
type Pointer struct {
	ID   int
	X, Y float64
}

// MotionEvent is one sample of the pointer stream.
type MotionEvent struct {
	Action   Action
	Pointers []Pointer
	// ActionIndex is the index in Pointers of the pointer that lifted, for
	// ActionPointerUp.
	ActionIndex int
}

// Focus returns the mean position of the pointers that remain down. For
// ActionPointerUp the lifting pointer is excluded so a finger leaving the
// screen does not pull the focal point. Returns ok=false if no pointer
// contributes.
func (e MotionEvent) Focus() (x, y float64, ok bool) {
	pts := e.Pointers
	if e.Action == ActionPointerUp {
		pts = lo.Filter(pts, func(_ Pointer, i int) bool { return i != e.ActionIndex })
	}
	if len(pts) == 0 {
		return 0, 0, false
	}
	x = lo.MeanBy(pts, func(p Pointer) float64 { return p.X })
	y = lo.MeanBy(pts, func(p Pointer) float64 { return p.Y })
	return x, y, true
}

// Single-pointer event constructors.

// Down returns a DOWN event for one pointer.
func Down(x, y float64) MotionEvent { return single(ActionDown, x, y) }

// Move returns a MOVE event for one pointer.
func Move(x, y float64) MotionEvent { return single(ActionMove, x, y) }

// Up returns an UP event for one pointer.
func Up(x, y float64) MotionEvent { return single(ActionUp, x, y) }

// Cancel returns a CANCEL event for one pointer.
func Cancel(x, y float64) MotionEvent { return single(ActionCancel, x, y) }

func single(a Action, x, y float64) MotionEvent {
	return MotionEvent{Action: a, Pointers: []Pointer{{X: x, Y: y}}}
}
