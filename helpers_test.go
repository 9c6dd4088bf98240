package pageturn

import (
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/gogpu/gg"

	"github.com/gogpu/pageturn/bitmap"
	"github.com/gogpu/pageturn/page"
	"github.com/gogpu/pageturn/render"
)

const (
	testWidth  = 1000
	testHeight = 2000
	testSpeed  = 300
	frameStep  = 16 * time.Millisecond
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type fakeSource struct {
	hasNext, hasPrev bool
	changes          []Direction
}

func (s *fakeSource) HasNextPage() bool         { return s.hasNext }
func (s *fakeSource) HasPrevPage() bool         { return s.hasPrev }
func (s *fakeSource) OnPageChanged(d Direction) { s.changes = append(s.changes, d) }

type drawCall struct {
	b *bitmap.Bitmap
	x float64
}

type recordingCanvas struct {
	draws  []drawCall
	clears int
}

func (c *recordingCanvas) DrawBitmap(b *bitmap.Bitmap, x, _ float64) {
	if b.IsRecycled() {
		return
	}
	c.draws = append(c.draws, drawCall{b: b, x: x})
}

func (c *recordingCanvas) Clear(gg.RGBA) { c.clears++ }

// stubRenderer tags the first pixel of each page with its index so tests
// can tell bitmaps apart without rasterizing text.
type stubRenderer struct{ calls int }

func (r *stubRenderer) render(c *page.Content, _ page.ReaderConfig, p render.Params) *image.RGBA {
	if !p.Ready() {
		return nil
	}
	r.calls++
	img := image.NewRGBA(image.Rect(0, 0, p.Width, p.Height))
	img.SetRGBA(0, 0, color.RGBA{R: tagOf(c), A: 255})
	return img
}

func tagOf(c *page.Content) uint8 {
	if c == nil {
		return 0
	}
	return uint8(c.PageIndex + 10)
}

// pageTag returns the tag stubRenderer wrote into b.
func pageTag(t *testing.T, b *bitmap.Bitmap) uint8 {
	t.Helper()
	if b.IsRecycled() {
		t.Fatal("bitmap is recycled")
	}
	r, _, _, _ := b.Image().GetRGBA(0, 0)
	return r
}

func testPage(i int) *page.Content {
	return &page.Content{StartIndex: i * 100, EndIndex: (i + 1) * 100, Text: "page", PageIndex: i}
}

type testView struct {
	*ReadView
	src      *fakeSource
	clock    *fakeClock
	renderer *stubRenderer
}

func newTestView(t *testing.T, src *fakeSource, opts ...ViewOption) *testView {
	t.Helper()
	clk := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	r := &stubRenderer{}
	base := []ViewOption{
		WithClock(clk.Now),
		WithRenderer(r.render),
		WithAnimationSpeed(testSpeed),
		WithTouchSlop(16),
	}
	v, err := NewReadView(src, append(base, opts...)...)
	if err != nil {
		t.Fatalf("NewReadView: %v", err)
	}
	t.Cleanup(func() { _ = v.Close() })

	v.SetSize(testWidth, testHeight, 1, 1)
	v.SetPageData(testPage(0), testPage(1), testPage(2), "")
	return &testView{ReadView: v, src: src, clock: clk, renderer: r}
}

// settle runs frames until the running flip finishes.
func (tv *testView) settle(t *testing.T) {
	t.Helper()
	c := &recordingCanvas{}
	for range 1000 {
		tv.clock.Advance(frameStep)
		if !tv.Frame(c) {
			return
		}
	}
	t.Fatal("animation did not settle")
}

func (tv *testView) slide(t *testing.T) *SlidePageDelegate {
	t.Helper()
	d, ok := tv.Delegate().(*SlidePageDelegate)
	if !ok {
		t.Fatalf("delegate is %T, want *SlidePageDelegate", tv.Delegate())
	}
	return d
}

func (tv *testView) send(evs ...MotionEvent) {
	for _, ev := range evs {
		tv.OnTouchEvent(ev)
	}
}
