package pageturn

import (
	"time"

	"github.com/gogpu/pageturn/bitmap"
	"github.com/gogpu/pageturn/scroll"
)

// Host is the view as seen by a delegate. ReadView implements it.
type Host interface {
	// Gesture returns the shared touch geometry.
	Gesture() *GestureState
	// Size returns the view size in pixels.
	Size() (width, height int)
	HasNextPage() bool
	HasPrevPage() bool
	// AcquireBitmap returns a retained handle to the slot's bitmap, or nil.
	// The caller must Release it.
	AcquireBitmap(s Slot) *bitmap.Bitmap
	// CommitPage reports a completed flip.
	CommitPage(d Direction)
	Invalidate()
	Clock() scroll.Clock
	// Interpolator returns the easing curve for flip animations.
	Interpolator() scroll.Interpolator
	AnimationSpeed() int
	TouchSlop() float64
}

// PageDelegate turns gestures into an animated page flip and draws it.
// Each flip style is one implementation.
type PageDelegate interface {
	Direction() Direction
	SetDirection(d Direction)

	// OnDown starts a new gesture.
	OnDown()
	// OnTouch handles one pointer event already accepted by the view.
	OnTouch(ev MotionEvent)

	OnAnimStart(speed int)
	OnAnimStop()
	OnDraw(c Canvas)

	NextPageByAnim(speed int)
	PrevPageByAnim(speed int)
	// AbortAnim stops a running flip. A flip that was not cancelled is
	// committed first, so the book is never left between pages.
	AbortAnim()
	// ComputeScroll advances the animation by one frame.
	ComputeScroll()

	IsRunning() bool
	IsStarted() bool
	IsMoved() bool
	IsCancel() bool
	NoNext() bool

	// Close releases bitmap snapshots. The delegate is unusable afterwards.
	Close()
}

// Animator is the visual half of a delegate: where the pages travel and how
// they are composited. The gesture half calls into it.
type Animator interface {
	OnAnimStart(speed int)
	OnAnimStop()
	OnDraw(c Canvas)
}

// DelegateBase is the gesture and animation state machine shared by every
// delegate:
//
//	idle -> touching -> animating -> idle
//
// with cancellation as a variant of animating that springs back instead of
// committing. Embed it and supply an Animator.
type DelegateBase struct {
	host     Host
	anim     Animator
	scroller *scroll.Scroller

	direction Direction
	isMoved   bool // pointer travelled past slop
	isRunning bool // pages are being dragged or animated
	isStarted bool // the scroller was started and OnAnimStop is pending
	isCancel  bool
	noNext    bool // requested page unavailable; gesture is inert
}

func newDelegateBase(h Host, a Animator) DelegateBase {
	return DelegateBase{
		host:     h,
		anim:     a,
		scroller: scroll.New(scroll.WithClock(h.Clock()), scroll.WithInterpolator(h.Interpolator())),
	}
}

// Host returns the view the delegate drives.
func (b *DelegateBase) Host() Host { return b.host }

// Direction returns the direction of the current flip.
func (b *DelegateBase) Direction() Direction { return b.direction }

// IsRunning reports whether pages are being dragged or animated.
func (b *DelegateBase) IsRunning() bool { return b.isRunning }

// IsStarted reports whether an animation is in flight.
func (b *DelegateBase) IsStarted() bool { return b.isStarted }

// IsMoved reports whether the current gesture passed the touch slop.
func (b *DelegateBase) IsMoved() bool { return b.isMoved }

// IsCancel reports whether releasing now would spring back.
func (b *DelegateBase) IsCancel() bool { return b.isCancel }

// NoNext reports whether the gesture asked for a page that does not exist.
func (b *DelegateBase) NoNext() bool { return b.noNext }

// OnDown resets per-gesture state.
func (b *DelegateBase) OnDown() {
	b.isMoved = false
	b.noNext = false
	b.isRunning = false
	b.isCancel = false
	b.direction = DirectionNone
}

// HasNext reports whether a next page exists.
func (b *DelegateBase) HasNext() bool { return b.host.HasNextPage() }

// HasPrev reports whether a previous page exists.
func (b *DelegateBase) HasPrev() bool { return b.host.HasPrevPage() }

// StartScroll animates the touch point from (startX, startY) by (dx, dy).
// The duration is speed milliseconds per full view width travelled, or per
// full height when there is no horizontal component.
func (b *DelegateBase) StartScroll(startX, startY, dx, dy, speed int) {
	w, h := b.host.Size()
	ms := 0
	switch {
	case dx != 0 && w > 0:
		ms = speed * abs(dx) / w
	case dy != 0 && h > 0:
		ms = speed * abs(dy) / h
	}
	b.scroller.StartScroll(startX, startY, dx, dy, time.Duration(ms)*time.Millisecond)
	b.isRunning = true
	b.isStarted = true
	Logger().Debug("flip animation started",
		"direction", b.direction, "cancel", b.isCancel,
		"final_x", b.scroller.FinalX(), "final_y", b.scroller.FinalY(), "duration", b.scroller.Duration())
	b.host.Invalidate()
}

// StopScroll returns the delegate to idle.
func (b *DelegateBase) StopScroll() {
	b.isStarted = false
	b.isMoved = false
	b.isRunning = false
	b.host.Invalidate()
}

// ComputeScroll pushes the animated position into the gesture state, and
// finishes the flip once the scroller has settled.
func (b *DelegateBase) ComputeScroll() {
	if b.scroller.ComputeScrollOffset() {
		b.host.Gesture().SetTouchPoint(float64(b.scroller.CurrX()), float64(b.scroller.CurrY()))
		b.host.Invalidate()
		return
	}
	if b.isStarted {
		b.anim.OnAnimStop()
		b.StopScroll()
	}
}

// AbortAnim implements PageDelegate.
func (b *DelegateBase) AbortAnim() {
	started := b.isStarted
	b.isStarted = false
	b.isMoved = false
	b.isRunning = false
	if !started {
		return
	}

	if !b.scroller.IsFinished() {
		b.scroller.AbortAnimation()
	}
	Logger().Debug("flip animation aborted", "direction", b.direction, "cancel", b.isCancel)
	if !b.isCancel {
		b.host.CommitPage(b.direction)
	}
	b.host.Invalidate()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
