package commands

import (
	"log/slog"

	"github.com/samber/lo"
	"github.com/thediveo/enumflag/v2"

	"github.com/gogpu/pageturn"
	"github.com/gogpu/pageturn/page"
	"github.com/gogpu/pageturn/scroll"
)

// LogLevelIds maps slog levels to their flag spellings.
var LogLevelIds = map[slog.Level][]string{
	slog.LevelDebug: {"debug"},
	slog.LevelInfo:  {"info"},
	slog.LevelWarn:  {"warn", "warning"},
	slog.LevelError: {"error"},
}

// FontIds maps font families to their flag spellings.
var FontIds = map[page.FontFamily][]string{
	page.FontSans:      {"sans"},
	page.FontMedium:    {"medium"},
	page.FontItalic:    {"italic"},
	page.FontMono:      {"mono"},
	page.FontSmallcaps: {"smallcaps"},
}

var fontHelp = enumflag.Help[page.FontFamily]{
	page.FontSans:      "Go Regular",
	page.FontMedium:    "Go Medium",
	page.FontItalic:    "Go Italic",
	page.FontMono:      "Go Mono",
	page.FontSmallcaps: "Go Smallcaps",
}

// BackgroundIds maps palette entries to their flag spellings.
var BackgroundIds = map[page.Background][]string{
	page.BackgroundPaper: {"paper", "white"},
	page.BackgroundSepia: {"sepia"},
	page.BackgroundGreen: {"green"},
	page.BackgroundGray:  {"gray", "grey"},
	page.BackgroundNight: {"night", "dark"},
}

var backgroundHelp = enumflag.Help[page.Background](lo.SliceToMap(page.Backgrounds(),
	func(b page.Background) (page.Background, string) {
		return b, b.String() + " palette"
	}))

// FlipStyleIds maps flip styles to their flag spellings.
var FlipStyleIds = map[page.FlipStyle][]string{
	page.FlipSlide:      {"slide"},
	page.FlipSimulation: {"simulation", "curl"},
	page.FlipScroll:     {"scroll"},
}

// DirectionIds maps flip directions to their flag spellings.
var DirectionIds = map[pageturn.Direction][]string{
	pageturn.DirectionNext: {"next", "forward"},
	pageturn.DirectionPrev: {"prev", "previous", "back"},
}

// easing selects the flip animation curve.
type easing int

const (
	easingLinear easing = iota
	easingViscous
)

// easingIds maps easing curves to their flag spellings.
var easingIds = map[easing][]string{
	easingLinear:  {"linear"},
	easingViscous: {"viscous", "fluid"},
}

func (e easing) interpolator() scroll.Interpolator {
	if e == easingViscous {
		return scroll.ViscousFluid
	}
	return scroll.Linear
}
