package page

import "errors"

// Sentinel errors for configuration validation.
var (
	// ErrInvalidFontSize is returned when the font size is not positive.
	ErrInvalidFontSize = errors.New("page: font size must be positive")

	// ErrInvalidLineHeight is returned when the line-height ratio is not positive.
	ErrInvalidLineHeight = errors.New("page: line height ratio must be positive")

	// ErrNegativeSpacing is returned when a spacing or padding value is negative.
	ErrNegativeSpacing = errors.New("page: spacing and padding must not be negative")

	// ErrUnknownBackground is returned for a background outside the palette.
	ErrUnknownBackground = errors.New("page: unknown background")

	// ErrUnknownFontFamily is returned for a font family outside the enumeration.
	ErrUnknownFontFamily = errors.New("page: unknown font family")

	// ErrUnknownFlipStyle is returned for a flip style outside the enumeration.
	ErrUnknownFlipStyle = errors.New("page: unknown flip style")

	// ErrInvalidTextColor is returned when the text color override is not a hex color.
	ErrInvalidTextColor = errors.New("page: invalid text color")
)

// FieldError reports which configuration field failed validation.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
