package page

import "github.com/gogpu/gg"

const unknownStr = "Unknown"

// Background selects an entry of the fixed reading palette.
// Every entry pairs a background color with the text color drawn on it.
type Background uint8

const (
	// BackgroundPaper is an off-white page with near-black text.
	// This is the default (zero value).
	BackgroundPaper Background = iota

	// BackgroundSepia is a warm yellowed page.
	BackgroundSepia

	// BackgroundGreen is a low-glare green page.
	BackgroundGreen

	// BackgroundGray is a neutral gray page.
	BackgroundGray

	// BackgroundNight is a dark page with light text.
	BackgroundNight

	backgroundCount
)

type swatch struct {
	name string
	bg   string
	text string
}

var palette = [backgroundCount]swatch{
	BackgroundPaper: {name: "Paper", bg: "#F5F2EA", text: "#222222"},
	BackgroundSepia: {name: "Sepia", bg: "#EFDFBF", text: "#4A3B28"},
	BackgroundGreen: {name: "Green", bg: "#CCE8CF", text: "#263A28"},
	BackgroundGray:  {name: "Gray", bg: "#D8D8D8", text: "#303030"},
	BackgroundNight: {name: "Night", bg: "#1C1C1E", text: "#8E8E93"},
}

// Backgrounds returns every palette entry in declaration order.
func Backgrounds() []Background {
	out := make([]Background, 0, backgroundCount)
	for b := BackgroundPaper; b < backgroundCount; b++ {
		out = append(out, b)
	}
	return out
}

// Valid reports whether b is a palette entry.
func (b Background) Valid() bool {
	return b < backgroundCount
}

// Color returns the background color of the palette entry.
// Unknown entries fall back to the paper background.
func (b Background) Color() gg.RGBA {
	if !b.Valid() {
		b = BackgroundPaper
	}
	return gg.Hex(palette[b].bg)
}

// TextColor returns the text color paired with the palette entry.
func (b Background) TextColor() gg.RGBA {
	if !b.Valid() {
		b = BackgroundPaper
	}
	return gg.Hex(palette[b].text)
}

// String returns the palette entry name.
func (b Background) String() string {
	if !b.Valid() {
		return unknownStr
	}
	return palette[b].name
}

// FontFamily selects the typeface used for page text.
type FontFamily uint8

const (
	// FontSans is Go Regular, the default (zero value).
	FontSans FontFamily = iota

	// FontMedium is Go Medium, a heavier sans for low-contrast palettes.
	FontMedium

	// FontItalic is Go Italic.
	FontItalic

	// FontMono is Go Mono.
	FontMono

	// FontSmallcaps is Go Smallcaps.
	FontSmallcaps

	fontFamilyCount
)

// Valid reports whether f is a known font family.
func (f FontFamily) Valid() bool {
	return f < fontFamilyCount
}

// String returns the font family name.
func (f FontFamily) String() string {
	switch f {
	case FontSans:
		return "Sans"
	case FontMedium:
		return "Medium"
	case FontItalic:
		return "Italic"
	case FontMono:
		return "Mono"
	case FontSmallcaps:
		return "Smallcaps"
	default:
		return unknownStr
	}
}

// FlipStyle selects how a page turn is animated.
type FlipStyle uint8

const (
	// FlipSlide translates the pages horizontally. This is the default.
	FlipSlide FlipStyle = iota

	// FlipSimulation is a curl-style transition. The engine does not ship
	// one; hosts register an implementation, otherwise slide is used.
	FlipSimulation

	// FlipScroll hands pages to a plain scrollable list outside the engine.
	FlipScroll

	flipStyleCount
)

// Valid reports whether s is a known flip style.
func (s FlipStyle) Valid() bool {
	return s < flipStyleCount
}

// String returns the flip style name.
func (s FlipStyle) String() string {
	switch s {
	case FlipSlide:
		return "Slide"
	case FlipSimulation:
		return "Simulation"
	case FlipScroll:
		return "Scroll"
	default:
		return unknownStr
	}
}
