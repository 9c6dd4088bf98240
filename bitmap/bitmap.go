// Package bitmap provides reference-counted page rasters.
//
// A page bitmap can be referenced by the view's cache slot and, at the same
// time, by a delegate that snapshotted it at gesture start. The cache may
// refresh the slot while an animation is still drawing the old raster, so
// neither holder owns the pixels outright: each holds a reference, and the
// buffer goes back to its Pool only when the last reference is released.
//
// Typical lifecycle:
//
//	b := bitmap.FromImage(pool, rgba) // refs = 1, held by the cache
//	snap := b.Retain()                // refs = 2, held by a delegate
//	b.Release()                       // cache refreshed, refs = 1
//	c.DrawBitmap(snap, 0, 0)          // still valid
//	snap.Release()                    // refs = 0, buffer recycled
package bitmap

import (
	"image"
	"sync/atomic"

	"github.com/gogpu/gg"
)

// Bitmap is a reference-counted handle to an RGBA pixel buffer.
//
// The zero value is not usable; create bitmaps with New or FromImage.
// Retain and Release are safe for concurrent use. A nil *Bitmap behaves as an
// already recycled bitmap, so draw code can test IsRecycled without a nil check.
type Bitmap struct {
	buf      atomic.Pointer[gg.ImageBuf]
	pool     *Pool
	refs     atomic.Int32
	width    int
	height   int
	recycled atomic.Bool
}

// New allocates a bitmap of the given size from pool (nil pool allocates a
// fresh buffer that is dropped on recycle). The returned bitmap holds one
// reference. Returns nil for non-positive dimensions.
func New(pool *Pool, width, height int) *Bitmap {
	var buf *gg.ImageBuf
	if pool != nil {
		buf = pool.Get(width, height)
	} else if width > 0 && height > 0 {
		buf, _ = gg.NewImageBuf(width, height, gg.FormatRGBA8)
	}
	if buf == nil {
		return nil
	}

	b := &Bitmap{pool: pool, width: width, height: height}
	b.buf.Store(buf)
	b.refs.Store(1)
	return b
}

// FromImage copies img into a pooled buffer and returns a bitmap holding one
// reference. Returns nil if img is nil or empty.
func FromImage(pool *Pool, img *image.RGBA) *Bitmap {
	if img == nil {
		return nil
	}
	bounds := img.Bounds()
	b := New(pool, bounds.Dx(), bounds.Dy())
	if b == nil {
		return nil
	}

	buf := b.buf.Load()
	if img.Stride == buf.Stride() && bounds.Min == (image.Point{}) {
		copy(buf.Data(), img.Pix)
		buf.InvalidatePremulCache()
		return b
	}
	for y := range b.height {
		src := img.Pix[img.PixOffset(bounds.Min.X, bounds.Min.Y+y):]
		copy(buf.RowBytes(y), src[:b.width*4])
	}
	buf.InvalidatePremulCache()
	return b
}

// Retain adds a reference and returns b. Retaining a nil or recycled bitmap
// returns nil, which callers treat as an absent page.
func (b *Bitmap) Retain() *Bitmap {
	if b == nil {
		return nil
	}
	for {
		n := b.refs.Load()
		if n <= 0 {
			return nil
		}
		if b.refs.CompareAndSwap(n, n+1) {
			return b
		}
	}
}

// Release drops a reference. When the last reference goes away the bitmap is
// marked recycled and its buffer returns to the pool. Extra releases are
// ignored.
func (b *Bitmap) Release() {
	if b == nil {
		return
	}
	for {
		n := b.refs.Load()
		if n <= 0 {
			return
		}
		if b.refs.CompareAndSwap(n, n-1) {
			if n == 1 {
				b.recycle()
			}
			return
		}
	}
}

func (b *Bitmap) recycle() {
	b.recycled.Store(true)
	buf := b.buf.Swap(nil)
	if b.pool != nil {
		b.pool.Put(buf)
	}
}

// IsRecycled reports whether the pixels have been given back. Nil bitmaps
// report true.
func (b *Bitmap) IsRecycled() bool {
	return b == nil || b.recycled.Load()
}

// Image returns the pixel buffer, or nil once the bitmap is recycled.
// The buffer must not be used after the caller's reference is released.
func (b *Bitmap) Image() *gg.ImageBuf {
	if b == nil {
		return nil
	}
	return b.buf.Load()
}

// Refs returns the current reference count.
func (b *Bitmap) Refs() int {
	if b == nil {
		return 0
	}
	return int(b.refs.Load())
}

// Width returns the bitmap width in pixels.
func (b *Bitmap) Width() int { return b.width }

// Height returns the bitmap height in pixels.
func (b *Bitmap) Height() int { return b.height }

// Swap replaces *slot with next and releases the previous value.
// It is the idiom for updating a held reference: the new value must already
// carry the reference being stored.
func Swap(slot **Bitmap, next *Bitmap) {
	prev := *slot
	*slot = next
	if prev != next {
		prev.Release()
	} else if next != nil {
		// Storing the same handle twice would otherwise leak the extra reference.
		next.Release()
	}
}
