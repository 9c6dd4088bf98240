package pageturn

import (
	"testing"

	"github.com/gogpu/pageturn/bitmap"
	"github.com/gogpu/pageturn/page"
)

func TestDefaultViewOptions(t *testing.T) {
	o := defaultViewOptions()
	if o.touchSlop != DefaultTouchSlop {
		t.Errorf("touchSlop = %v, want %v", o.touchSlop, DefaultTouchSlop)
	}
	if o.animationSpeed != DefaultAnimationSpeed {
		t.Errorf("animationSpeed = %d, want %d", o.animationSpeed, DefaultAnimationSpeed)
	}
	if o.renderer == nil {
		t.Error("default renderer should be set")
	}
	if o.config != page.DefaultReaderConfig() {
		t.Error("default config should be page.DefaultReaderConfig")
	}
}

func TestViewOptionsIgnoreInvalid(t *testing.T) {
	o := defaultViewOptions()
	for _, opt := range []ViewOption{
		WithTouchSlop(0),
		WithTouchSlop(-3),
		WithAnimationSpeed(0),
		WithRenderer(nil),
		WithInterpolator(nil),
	} {
		opt(&o)
	}
	if o.touchSlop != DefaultTouchSlop || o.animationSpeed != DefaultAnimationSpeed || o.renderer == nil || o.interpolator == nil {
		t.Errorf("invalid options changed defaults: %+v", o)
	}
}

func TestSharedPool(t *testing.T) {
	pool := bitmap.NewPool(0)
	src := &fakeSource{}
	a := newTestView(t, src, WithPool(pool))
	b := newTestView(t, src, WithPool(pool))

	a.Bitmap(SlotCur)
	b.Bitmap(SlotCur)
	if err := a.Close(); err != nil {
		t.Fatal(err)
	}
	// Only the current slot of a was rendered, b still holds its own.
	if got := pool.Len(testWidth, testHeight); got != 1 {
		t.Errorf("pool len after close = %d, want 1", got)
	}
}
