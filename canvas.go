package pageturn

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/pageturn/bitmap"
)

// Canvas is the drawing surface the view and delegates composite onto.
type Canvas interface {
	// DrawBitmap draws b with its top-left corner at (x, y). Nil and
	// recycled bitmaps are skipped.
	DrawBitmap(b *bitmap.Bitmap, x, y float64)
	// Clear fills the whole surface with c.
	Clear(c gg.RGBA)
}

// GGCanvas draws onto a gg.Context.
type GGCanvas struct {
	dc *gg.Context
}

// NewGGCanvas wraps dc.
func NewGGCanvas(dc *gg.Context) *GGCanvas {
	return &GGCanvas{dc: dc}
}

// Context returns the wrapped gg context.
func (c *GGCanvas) Context() *gg.Context { return c.dc }

// DrawBitmap implements Canvas.
func (c *GGCanvas) DrawBitmap(b *bitmap.Bitmap, x, y float64) {
	if b.IsRecycled() {
		return
	}
	img := b.Image()
	if img == nil {
		return
	}

	c.dc.Push()
	defer c.dc.Pop()
	c.dc.Translate(x, y)
	c.dc.DrawImage(img, 0, 0)
}

// Clear implements Canvas.
func (c *GGCanvas) Clear(col gg.RGBA) {
	c.dc.ClearWithColor(col)
}
