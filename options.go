package pageturn

import (
	"image"

	"github.com/gogpu/pageturn/bitmap"
	"github.com/gogpu/pageturn/page"
	"github.com/gogpu/pageturn/render"
	"github.com/gogpu/pageturn/scroll"
)

// Defaults used by NewReadView.
const (
	DefaultTouchSlop      = 16.0 // pixels
	DefaultAnimationSpeed = 300  // milliseconds per full view width
	defaultPoolSize       = 6
)

// RenderFunc rasterizes one page. render.Render is the default.
type RenderFunc func(content *page.Content, cfg page.ReaderConfig, p render.Params) *image.RGBA

// ViewOption configures a ReadView during creation.
//
// Example:
//
//	v, err := pageturn.NewReadView(src,
//	    pageturn.WithAnimationSpeed(250),
//	    pageturn.WithTapCenterListener(showMenu),
//	)
type ViewOption func(*viewOptions)

type viewOptions struct {
	touchSlop      float64
	animationSpeed int
	clock          scroll.Clock
	renderer       RenderFunc
	pool           *bitmap.Pool
	onTapCenter    func()
	config         page.ReaderConfig
	footerFunc     func(*page.Content) string
	interpolator   scroll.Interpolator
}

func defaultViewOptions() viewOptions {
	return viewOptions{
		touchSlop:      DefaultTouchSlop,
		animationSpeed: DefaultAnimationSpeed,
		clock:          nil, // time.Now
		renderer:       render.Render,
		pool:           nil, // private pool
		config:         page.DefaultReaderConfig(),
		interpolator:   scroll.Linear,
	}
}

// WithTouchSlop sets the distance in pixels a pointer must travel before a
// touch counts as a drag. Non-positive values are ignored.
func WithTouchSlop(px float64) ViewOption {
	return func(o *viewOptions) {
		if px > 0 {
			o.touchSlop = px
		}
	}
}

// WithAnimationSpeed sets the flip duration, in milliseconds, for travelling
// one full view width. Non-positive values are ignored.
func WithAnimationSpeed(ms int) ViewOption {
	return func(o *viewOptions) {
		if ms > 0 {
			o.animationSpeed = ms
		}
	}
}

// WithClock sets the time source for flip animations. Headless renderers and
// tests step a fake clock between frames.
func WithClock(c scroll.Clock) ViewOption {
	return func(o *viewOptions) {
		o.clock = c
	}
}

// WithRenderer replaces the page rasterizer.
func WithRenderer(fn RenderFunc) ViewOption {
	return func(o *viewOptions) {
		if fn != nil {
			o.renderer = fn
		}
	}
}

// WithPool shares a bitmap buffer pool between views.
func WithPool(p *bitmap.Pool) ViewOption {
	return func(o *viewOptions) {
		o.pool = p
	}
}

// WithTapCenterListener sets the callback fired when a tap lands in the
// middle third of the view.
func WithTapCenterListener(fn func()) ViewOption {
	return func(o *viewOptions) {
		o.onTapCenter = fn
	}
}

// WithReaderConfig sets the initial reader configuration. An invalid config
// is replaced by page.DefaultReaderConfig with a warning.
func WithReaderConfig(cfg page.ReaderConfig) ViewOption {
	return func(o *viewOptions) {
		o.config = cfg
	}
}

// WithFooterFunc sets a per-page footer. fn receives the content of each
// slot, nil for an empty one, and replaces the footer passed to
// SetPageData. Pages keep their footer as they move between slots, so a
// committed flip reuses the bitmaps it already rendered.
func WithFooterFunc(fn func(*page.Content) string) ViewOption {
	return func(o *viewOptions) {
		o.footerFunc = fn
	}
}

// WithInterpolator sets the easing curve of flip animations. The default is
// scroll.Linear.
func WithInterpolator(in scroll.Interpolator) ViewOption {
	return func(o *viewOptions) {
		if in != nil {
			o.interpolator = in
		}
	}
}
