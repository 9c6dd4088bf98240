package pageturn

// PageSource is the pagination engine as seen by the view.
//
// OnPageChanged is called exactly once per committed flip. The source is
// expected to answer, synchronously or later, with SetPageData carrying the
// shifted triple.
type PageSource interface {
	HasNextPage() bool
	HasPrevPage() bool
	OnPageChanged(d Direction)
}
