package bitmap

import (
	"sync"

	"github.com/gogpu/gg"
)

// Pool reuses page-sized pixel buffers.
//
// Buffers are grouped by dimensions. A page view churns through buffers of
// exactly one size (the view size), so after the first few page turns every
// render reuses a buffer released by an earlier one.
//
// Pool is safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[poolKey][]*gg.ImageBuf
	maxSize int // max buffers per bucket
}

type poolKey struct {
	width  int
	height int
}

// NewPool creates a pool retaining at most maxPerBucket buffers per size.
// A maxPerBucket of 0 means unlimited.
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[poolKey][]*gg.ImageBuf),
		maxSize: maxPerBucket,
	}
}

// Get returns a cleared RGBA buffer of the given size, reusing a pooled one
// when available. Returns nil for non-positive dimensions.
func (p *Pool) Get(width, height int) *gg.ImageBuf {
	if width <= 0 || height <= 0 {
		return nil
	}
	key := poolKey{width: width, height: height}

	p.mu.Lock()
	bucket := p.buckets[key]
	if n := len(bucket); n > 0 {
		buf := bucket[n-1]
		bucket[n-1] = nil
		p.buckets[key] = bucket[:n-1]
		p.mu.Unlock()

		buf.Clear()
		return buf
	}
	p.mu.Unlock()

	buf, err := gg.NewImageBuf(width, height, gg.FormatRGBA8)
	if err != nil {
		return nil
	}
	return buf
}

// Put hands a buffer back for reuse. Nil buffers and buffers arriving at a
// full bucket are dropped.
func (p *Pool) Put(buf *gg.ImageBuf) {
	if buf == nil {
		return
	}
	key := poolKey{width: buf.Width(), height: buf.Height()}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[key] = append(bucket, buf)
}

// Len returns the number of idle buffers held for the given size.
func (p *Pool) Len(width, height int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.buckets[poolKey{width: width, height: height}])
}

// Purge drops every idle buffer.
func (p *Pool) Purge() {
	p.mu.Lock()
	defer p.mu.Unlock()
	clear(p.buckets)
}
