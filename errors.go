package pageturn

import "errors"

// Sentinel errors returned by the view and the delegate registry.
var (
	// ErrNilSource is returned when a view is created without a PageSource.
	ErrNilSource = errors.New("pageturn: nil PageSource")

	// ErrInvalidConfig wraps validation errors from SetReaderConfig.
	ErrInvalidConfig = errors.New("pageturn: invalid reader config")

	// ErrNilFactory is returned when registering a nil delegate factory.
	ErrNilFactory = errors.New("pageturn: delegate factory must not be nil")

	// ErrNoDelegateStyle is returned when registering a factory for a flip
	// style that is not driven by a delegate.
	ErrNoDelegateStyle = errors.New("pageturn: flip style has no delegate")

	// ErrClosed is returned by operations on a closed view.
	ErrClosed = errors.New("pageturn: view is closed")
)
