package render

import "errors"

// Sentinel errors for page rendering.
var (
	// ErrFontUnavailable is returned when a font family cannot be loaded.
	ErrFontUnavailable = errors.New("render: font unavailable")

	// ErrNotReady is returned when the target size is not positive.
	ErrNotReady = errors.New("render: view size not ready")
)
