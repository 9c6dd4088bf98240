package pageturn

import (
	"fmt"

	"github.com/gogpu/gg"

	"github.com/gogpu/pageturn/bitmap"
	"github.com/gogpu/pageturn/page"
	"github.com/gogpu/pageturn/scroll"
)

// ReadView shows one page of a book and flips between pages.
//
// It owns the previous/current/next page triple, a lazily rendered bitmap
// per slot, the touch geometry, and the delegate for the configured flip
// style. All methods must be called from the same goroutine.
type ReadView struct {
	opts   viewOptions
	source PageSource
	pool   *bitmap.Pool

	gesture  GestureState
	delegate PageDelegate
	isMove   bool // current touch travelled past slop

	cfg           page.ReaderConfig
	bgColor       gg.RGBA
	bgImage       *gg.ImageBuf
	width, height int
	density       float64
	scaledDensity float64

	pages  [slotCount]*page.Content
	footer string
	cache  [slotCount]cacheEntry
	stats  CacheStats

	invalidated bool
	closed      bool
}

var _ Host = (*ReadView)(nil)

// NewReadView creates a view backed by src. The view is not ready to draw
// until SetSize is called with a positive size.
func NewReadView(src PageSource, opts ...ViewOption) (*ReadView, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	o := defaultViewOptions()
	for _, opt := range opts {
		opt(&o)
	}

	v := &ReadView{
		opts:          o,
		source:        src,
		pool:          o.pool,
		density:       1,
		scaledDensity: 1,
	}
	if v.pool == nil {
		v.pool = bitmap.NewPool(defaultPoolSize)
	}

	cfg := o.config
	if err := cfg.Validate(); err != nil {
		Logger().Warn("invalid initial reader config, using defaults", "err", err)
		cfg = page.DefaultReaderConfig()
	}
	v.cfg = cfg
	v.bgColor = cfg.Background.Color()
	v.loadBackgroundImage(cfg.BackgroundImage)
	v.upDelegate()
	v.refreshCache()
	return v, nil
}

// SetPageData replaces the page triple. prev and next are nil at the ends
// of the book. footer is drawn on every page unless WithFooterFunc is set.
func (v *ReadView) SetPageData(prev, cur, next *page.Content, footer string) {
	if v.closed {
		return
	}
	v.pages = [slotCount]*page.Content{prev, cur, next}
	v.footer = footer
	v.refreshCache()
}

// Page returns the content of slot s.
func (v *ReadView) Page(s Slot) *page.Content {
	if s < 0 || s >= slotCount {
		return nil
	}
	return v.pages[s]
}

// ReaderConfig returns the active configuration.
func (v *ReadView) ReaderConfig() page.ReaderConfig { return v.cfg }

// SetReaderConfig applies cfg. An invalid cfg is rejected and the previous
// configuration stays active.
func (v *ReadView) SetReaderConfig(cfg page.ReaderConfig) error {
	if v.closed {
		return ErrClosed
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if cfg == v.cfg {
		return nil
	}

	old := v.cfg
	v.cfg = cfg
	if cfg.Background != old.Background {
		v.bgColor = cfg.Background.Color()
	}
	if cfg.BackgroundImage != old.BackgroundImage {
		v.loadBackgroundImage(cfg.BackgroundImage)
	}
	if cfg.FlipStyle != old.FlipStyle {
		v.upDelegate()
	}
	v.refreshCache()
	return nil
}

// SetBgColor overrides the page background color. Setting the color that is
// already active does nothing.
func (v *ReadView) SetBgColor(c gg.RGBA) {
	if v.closed || c == v.bgColor {
		return
	}
	v.bgColor = c
	v.refreshCache()
}

// BgColor returns the page background color.
func (v *ReadView) BgColor() gg.RGBA { return v.bgColor }

// SetSize sets the view size in pixels and the dp and sp scale factors.
// Non-positive densities default to 1 and to density respectively. A
// non-positive size makes the view not ready: bitmap getters return nil and
// nothing is drawn.
func (v *ReadView) SetSize(width, height int, density, scaledDensity float64) {
	if v.closed {
		return
	}
	if density <= 0 {
		density = 1
	}
	if scaledDensity <= 0 {
		scaledDensity = density
	}
	if width == v.width && height == v.height && density == v.density && scaledDensity == v.scaledDensity {
		return
	}
	v.width, v.height = width, height
	v.density, v.scaledDensity = density, scaledDensity
	v.refreshCache()
}

func (v *ReadView) ready() bool { return v.width > 0 && v.height > 0 }

// Bitmap returns the bitmap for slot s, rendering it on first access. The
// handle is borrowed: it stays valid until the slot's inputs change. Use
// AcquireBitmap to hold it longer.
func (v *ReadView) Bitmap(s Slot) *bitmap.Bitmap { return v.slotBitmap(s) }

// AcquireBitmap returns a retained handle to the bitmap for slot s. The
// caller must Release it.
func (v *ReadView) AcquireBitmap(s Slot) *bitmap.Bitmap { return v.slotBitmap(s).Retain() }

// CacheStats returns bitmap cache counters.
func (v *ReadView) CacheStats() CacheStats { return v.stats }

// Delegate returns the active delegate, or nil for styles that do not flip.
func (v *ReadView) Delegate() PageDelegate { return v.delegate }

// upDelegate replaces the delegate to match the flip style. A running flip
// is settled first.
func (v *ReadView) upDelegate() {
	if v.delegate != nil {
		v.delegate.AbortAnim()
		v.delegate.Close()
		v.delegate = nil
	}

	style := v.cfg.FlipStyle
	if style == page.FlipScroll {
		Logger().Info("flip style has no page delegate", "style", style)
		return
	}
	f, ok := lookupDelegate(style)
	if !ok {
		Logger().Warn("no delegate registered for flip style, using slide", "style", style)
		f = newSlideDelegate
	}
	v.delegate = f(v)
	Logger().Info("page delegate set", "style", style)
}

func (v *ReadView) loadBackgroundImage(path string) {
	v.bgImage = nil
	if path == "" {
		return
	}
	img, err := gg.LoadImage(path)
	if err != nil {
		Logger().Warn("background image unavailable, using color", "path", path, "err", err)
		return
	}
	v.bgImage = img
}

// OnTouchEvent feeds one pointer event to the view. It returns false when
// the event is not consumed, which is always the case for flip styles
// without a delegate and for a view that is not ready.
func (v *ReadView) OnTouchEvent(ev MotionEvent) bool {
	if v.closed || v.delegate == nil || !v.ready() {
		return false
	}
	x, y, ok := ev.Focus()
	if !ok {
		return false
	}

	switch ev.Action {
	case ActionDown:
		v.delegate.OnTouch(ev)
		v.delegate.OnDown()
		v.gesture.SetStartPoint(x, y)
		v.isMove = false
	case ActionMove, ActionPointerUp:
		if !v.isMove {
			dx, dy := x-v.gesture.StartX, y-v.gesture.StartY
			v.isMove = dx*dx+dy*dy > v.opts.touchSlop*v.opts.touchSlop
		}
		if v.isMove {
			v.delegate.OnTouch(ev)
		}
	case ActionUp:
		if !v.isMove {
			v.onSingleTap(x)
			return true
		}
		v.delegate.OnTouch(ev)
	case ActionCancel:
		if v.isMove {
			v.delegate.OnTouch(ev)
		}
	}
	return true
}

func (v *ReadView) onSingleTap(x float64) {
	w := float64(v.width)
	switch {
	case x < w/3:
		v.PrevPage()
	case x > w*2/3:
		v.NextPage()
	default:
		if fn := v.opts.onTapCenter; fn != nil {
			fn()
		}
	}
}

// NextPage flips forward with an animation. It does nothing at the end of
// the book or before the view has a size.
func (v *ReadView) NextPage() {
	if v.closed || !v.ready() {
		return
	}
	if v.delegate == nil {
		if v.HasNextPage() {
			v.CommitPage(DirectionNext)
		}
		return
	}
	v.delegate.NextPageByAnim(v.opts.animationSpeed)
}

// PrevPage flips back with an animation. It does nothing at the start of
// the book or before the view has a size.
func (v *ReadView) PrevPage() {
	if v.closed || !v.ready() {
		return
	}
	if v.delegate == nil {
		if v.HasPrevPage() {
			v.CommitPage(DirectionPrev)
		}
		return
	}
	v.delegate.PrevPageByAnim(v.opts.animationSpeed)
}

// ComputeScroll advances a running flip by one frame.
func (v *ReadView) ComputeScroll() {
	if v.delegate != nil && !v.closed {
		v.delegate.ComputeScroll()
	}
}

// OnDraw draws the view. While a flip is running the delegate composites
// the pages; otherwise the current page is drawn as is.
func (v *ReadView) OnDraw(c Canvas) {
	if v.closed || !v.ready() {
		return
	}
	c.Clear(v.bgColor)
	if v.delegate != nil && v.delegate.IsRunning() {
		v.delegate.OnDraw(c)
		return
	}
	c.DrawBitmap(v.Bitmap(SlotCur), 0, 0)
}

// Frame runs one frame: advance the animation, then draw. It reports
// whether a flip is still animating and another frame is needed.
func (v *ReadView) Frame(c Canvas) bool {
	v.ComputeScroll()
	v.OnDraw(c)
	return v.Animating()
}

// Animating reports whether a flip animation is in flight.
func (v *ReadView) Animating() bool {
	return v.delegate != nil && v.delegate.IsStarted()
}

// Invalidate marks the view as needing a redraw.
func (v *ReadView) Invalidate() { v.invalidated = true }

// TakeInvalidated reports whether a redraw was requested since the last
// call, and clears the request.
func (v *ReadView) TakeInvalidated() bool {
	inv := v.invalidated
	v.invalidated = false
	return inv
}

// Close releases the delegate and every cached bitmap. Bitmaps still held
// by callers stay valid until released.
func (v *ReadView) Close() error {
	if v.closed {
		return nil
	}
	if v.delegate != nil {
		v.delegate.Close()
		v.delegate = nil
	}
	v.releaseCache()
	if v.opts.pool == nil {
		v.pool.Purge()
	}
	v.closed = true
	return nil
}

// Host implementation.

// Gesture implements Host.
func (v *ReadView) Gesture() *GestureState { return &v.gesture }

// Size implements Host.
func (v *ReadView) Size() (width, height int) { return v.width, v.height }

// HasNextPage implements Host.
func (v *ReadView) HasNextPage() bool { return v.source.HasNextPage() }

// HasPrevPage implements Host.
func (v *ReadView) HasPrevPage() bool { return v.source.HasPrevPage() }

// CommitPage implements Host. The source hears about each committed flip
// exactly once.
func (v *ReadView) CommitPage(d Direction) {
	Logger().Debug("page committed", "direction", d)
	v.source.OnPageChanged(d)
	v.Invalidate()
}

// Clock implements Host.
func (v *ReadView) Clock() scroll.Clock { return v.opts.clock }

// AnimationSpeed implements Host.
func (v *ReadView) AnimationSpeed() int { return v.opts.animationSpeed }

// Interpolator implements Host.
func (v *ReadView) Interpolator() scroll.Interpolator { return v.opts.interpolator }

// TouchSlop implements Host.
func (v *ReadView) TouchSlop() float64 { return v.opts.touchSlop }
