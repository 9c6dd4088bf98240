package page

import (
	"errors"
	"testing"
)

func TestDefaultReaderConfigValid(t *testing.T) {
	if err := DefaultReaderConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid, got %v", err)
	}
}

func TestReaderConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*ReaderConfig)
		want   error
		field  string
	}{
		{"zero font size", func(c *ReaderConfig) { c.FontSize = 0 }, ErrInvalidFontSize, "FontSize"},
		{"negative line height", func(c *ReaderConfig) { c.LineHeightRatio = -1 }, ErrInvalidLineHeight, "LineHeightRatio"},
		{"negative paragraph spacing", func(c *ReaderConfig) { c.ParagraphSpacing = -2 }, ErrNegativeSpacing, "ParagraphSpacing"},
		{"negative padding", func(c *ReaderConfig) { c.HorizontalPadding = -1 }, ErrNegativeSpacing, "HorizontalPadding"},
		{"unknown background", func(c *ReaderConfig) { c.Background = Background(200) }, ErrUnknownBackground, "Background"},
		{"unknown font", func(c *ReaderConfig) { c.FontFamily = FontFamily(99) }, ErrUnknownFontFamily, "FontFamily"},
		{"unknown flip style", func(c *ReaderConfig) { c.FlipStyle = FlipStyle(7) }, ErrUnknownFlipStyle, "FlipStyle"},
		{"bad text color", func(c *ReaderConfig) { c.TextColor = "#12345" }, ErrInvalidTextColor, "TextColor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultReaderConfig()
			tt.modify(&cfg)

			err := cfg.Validate()
			if !errors.Is(err, tt.want) {
				t.Fatalf("Validate() = %v, want %v", err, tt.want)
			}
			var fe *FieldError
			if !errors.As(err, &fe) {
				t.Fatalf("expected *FieldError in %v", err)
			}
			if fe.Field != tt.field {
				t.Errorf("field = %q, want %q", fe.Field, tt.field)
			}
		})
	}
}

func TestReaderConfigValidateCollectsAll(t *testing.T) {
	cfg := DefaultReaderConfig()
	cfg.FontSize = 0
	cfg.TopPadding = -1

	err := cfg.Validate()
	if !errors.Is(err, ErrInvalidFontSize) || !errors.Is(err, ErrNegativeSpacing) {
		t.Errorf("expected both errors, got %v", err)
	}
}

func TestResolvedTextColor(t *testing.T) {
	cfg := DefaultReaderConfig()
	cfg.Background = BackgroundNight

	if got, want := cfg.ResolvedTextColor(), BackgroundNight.TextColor(); got != want {
		t.Errorf("palette text color = %+v, want %+v", got, want)
	}

	cfg.TextColor = "#FF0000"
	got := cfg.ResolvedTextColor()
	if got.R != 1 || got.G != 0 || got.B != 0 {
		t.Errorf("override text color = %+v, want red", got)
	}
}

func TestPaletteEntries(t *testing.T) {
	bgs := Backgrounds()
	if len(bgs) != int(backgroundCount) {
		t.Fatalf("Backgrounds() len = %d, want %d", len(bgs), backgroundCount)
	}
	for _, b := range bgs {
		if b.String() == unknownStr {
			t.Errorf("background %d has no name", b)
		}
		if b.Color() == b.TextColor() {
			t.Errorf("background %s has identical bg and text colors", b)
		}
	}
	if Background(250).String() != unknownStr {
		t.Error("out of range background should be Unknown")
	}
	if Background(250).Color() != BackgroundPaper.Color() {
		t.Error("out of range background should fall back to paper")
	}
}

func TestEnumStrings(t *testing.T) {
	if FontMono.String() != "Mono" {
		t.Errorf("FontMono.String() = %q", FontMono.String())
	}
	if FlipScroll.String() != "Scroll" {
		t.Errorf("FlipScroll.String() = %q", FlipScroll.String())
	}
	if FontFamily(42).String() != unknownStr || FlipStyle(42).String() != unknownStr {
		t.Error("unknown enums should stringify as Unknown")
	}
}

func TestContentString(t *testing.T) {
	c := Content{StartIndex: 5, EndIndex: 10, Text: "world", PageIndex: 1}
	if got, want := c.String(), "page 1 [5:10]"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
