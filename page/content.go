// Package page holds the data model shared by the page-turn engine, the
// renderer and pagination engines: page content units and the reader style
// configuration.
//
// All types in this package are plain comparable values. The engine compares
// them with == to decide whether a cached bitmap is still valid, so they must
// not grow pointer, slice or map fields.
package page

import "fmt"

// Content is one unit of already-paginated source text.
//
// StartIndex and EndIndex are byte offsets into the chapter text the page was
// cut from; Text holds exactly that range. PageIndex is the zero-based index of
// the page within its chapter. Content is created and owned by the pagination
// engine and never mutated by the renderer or the view.
type Content struct {
	StartIndex int
	EndIndex   int
	Text       string
	PageIndex  int
}

// String returns a short description of the page, useful in logs.
func (c Content) String() string {
	return fmt.Sprintf("page %d [%d:%d]", c.PageIndex, c.StartIndex, c.EndIndex)
}
