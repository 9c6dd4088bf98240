package page

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
)

// ReaderConfig is the style configuration of the reading surface.
//
// Sizes marked sp are multiplied by the font scale density, sizes marked dp by
// the device density. The host supplies the config wholesale; any change
// invalidates every cached page bitmap.
type ReaderConfig struct {
	// FontSize is the body text size in sp.
	FontSize float64

	// LineHeightRatio multiplies FontSize to get the distance between baselines.
	LineHeightRatio float64

	// ParagraphSpacing is the extra space after each source line, in sp.
	ParagraphSpacing float64

	// HorizontalPadding is the left and right margin, in dp.
	HorizontalPadding float64

	// TopPadding and BottomPadding are the vertical margins, in dp.
	TopPadding    float64
	BottomPadding float64

	// Background selects the palette entry.
	Background Background

	// FontFamily selects the typeface.
	FontFamily FontFamily

	// BackgroundImage is an optional path to a PNG, JPEG or WebP image drawn
	// stretched over the page instead of the flat background color.
	BackgroundImage string

	// TextColor optionally overrides the palette text color ("#RRGGBB" and
	// the other forms accepted by gg.ParseHex). Empty uses the palette color.
	TextColor string

	// FlipStyle selects the page-turn animation.
	FlipStyle FlipStyle
}

// DefaultReaderConfig returns the configuration used when the host supplies none.
func DefaultReaderConfig() ReaderConfig {
	return ReaderConfig{
		FontSize:          18,
		LineHeightRatio:   1.5,
		ParagraphSpacing:  8,
		HorizontalPadding: 16,
		TopPadding:        24,
		BottomPadding:     32,
		Background:        BackgroundPaper,
		FontFamily:        FontSans,
		FlipStyle:         FlipSlide,
	}
}

// Validate checks the configuration. The returned error wraps one of the
// package sentinel errors in a *FieldError.
func (c ReaderConfig) Validate() error {
	var errs []error
	check := func(field string, bad bool, err error) {
		if bad {
			errs = append(errs, &FieldError{Field: field, Err: err})
		}
	}

	check("FontSize", !(c.FontSize > 0), ErrInvalidFontSize)
	check("LineHeightRatio", !(c.LineHeightRatio > 0), ErrInvalidLineHeight)
	check("ParagraphSpacing", c.ParagraphSpacing < 0, ErrNegativeSpacing)
	check("HorizontalPadding", c.HorizontalPadding < 0, ErrNegativeSpacing)
	check("TopPadding", c.TopPadding < 0, ErrNegativeSpacing)
	check("BottomPadding", c.BottomPadding < 0, ErrNegativeSpacing)
	check("Background", !c.Background.Valid(), ErrUnknownBackground)
	check("FontFamily", !c.FontFamily.Valid(), ErrUnknownFontFamily)
	check("FlipStyle", !c.FlipStyle.Valid(), ErrUnknownFlipStyle)
	if c.TextColor != "" {
		if _, err := gg.ParseHex(c.TextColor); err != nil {
			errs = append(errs, &FieldError{Field: "TextColor", Err: fmt.Errorf("%w: %w", ErrInvalidTextColor, err)})
		}
	}

	return errors.Join(errs...)
}

// ResolvedTextColor returns the text color override when set and valid,
// otherwise the palette's paired text color.
func (c ReaderConfig) ResolvedTextColor() gg.RGBA {
	if c.TextColor != "" {
		if col, err := gg.ParseHex(c.TextColor); err == nil {
			return col
		}
	}
	return c.Background.TextColor()
}
