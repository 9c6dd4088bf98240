package paginate

import (
	"fmt"

	"github.com/gogpu/pageturn"
	"github.com/gogpu/pageturn/page"
)

// Sink receives the pages around the current position. *pageturn.ReadView
// satisfies it.
type Sink interface {
	SetPageData(prev, cur, next *page.Content, footer string)
}

// Book walks a paginated chapter. It implements pageturn.PageSource and
// pushes the new triple to its sink after every committed flip.
type Book struct {
	title string
	pages []page.Content
	index int
	sink  Sink
}

var _ pageturn.PageSource = (*Book)(nil)

// NewBook returns a book positioned on the first page. The title, when set,
// prefixes every footer.
func NewBook(title string, pages []page.Content) (*Book, error) {
	if len(pages) == 0 {
		return nil, ErrNoPages
	}
	return &Book{title: title, pages: pages}, nil
}

// Attach sets the sink and publishes the current triple to it.
func (b *Book) Attach(s Sink) {
	b.sink = s
	b.Publish()
}

// Len returns the number of pages.
func (b *Book) Len() int { return len(b.pages) }

// Index returns the current page index.
func (b *Book) Index() int { return b.index }

// Page returns a copy of page i, or nil when i is out of range.
func (b *Book) Page(i int) *page.Content {
	if i < 0 || i >= len(b.pages) {
		return nil
	}
	c := b.pages[i]
	return &c
}

// Footer returns the footer text for page i.
func (b *Book) Footer(i int) string {
	pos := fmt.Sprintf("%d / %d", i+1, len(b.pages))
	if b.title == "" {
		return pos
	}
	return b.title + "  " + pos
}

// FooterFor returns the footer for c, or "" for an empty slot. Pass it to
// pageturn.WithFooterFunc so that each page carries its own footer.
func (b *Book) FooterFor(c *page.Content) string {
	if c == nil {
		return ""
	}
	return b.Footer(c.PageIndex)
}

// Seek jumps to page i and publishes.
func (b *Book) Seek(i int) error {
	if i < 0 || i >= len(b.pages) {
		return fmt.Errorf("%w: %d of %d", ErrOutOfRange, i, len(b.pages))
	}
	b.index = i
	b.Publish()
	return nil
}

// Publish pushes the current triple to the sink, if any.
func (b *Book) Publish() {
	if b.sink == nil {
		return
	}
	b.sink.SetPageData(b.Page(b.index-1), b.Page(b.index), b.Page(b.index+1), b.Footer(b.index))
}

// HasNextPage implements pageturn.PageSource.
func (b *Book) HasNextPage() bool { return b.index+1 < len(b.pages) }

// HasPrevPage implements pageturn.PageSource.
func (b *Book) HasPrevPage() bool { return b.index > 0 }

// OnPageChanged implements pageturn.PageSource.
func (b *Book) OnPageChanged(d pageturn.Direction) {
	switch d {
	case pageturn.DirectionNext:
		if !b.HasNextPage() {
			return
		}
		b.index++
	case pageturn.DirectionPrev:
		if !b.HasPrevPage() {
			return
		}
		b.index--
	default:
		return
	}
	pageturn.Logger().Debug("paginate: page changed", "direction", d, "index", b.index)
	b.Publish()
}
