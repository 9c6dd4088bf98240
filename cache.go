package pageturn

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/pageturn/bitmap"
	"github.com/gogpu/pageturn/page"
	"github.com/gogpu/pageturn/render"
)

// Slot names one position of the page triple.
type Slot int

// Page slots.
const (
	SlotPrev Slot = iota
	SlotCur
	SlotNext
	slotCount
)

func (s Slot) String() string {
	switch s {
	case SlotPrev:
		return "Prev"
	case SlotCur:
		return "Cur"
	case SlotNext:
		return "Next"
	default:
		return "Unknown"
	}
}

// styleKey holds every render input shared by the three slots.
type styleKey struct {
	cfg           page.ReaderConfig
	width, height int
	density       float64
	scaledDensity float64
	background    gg.RGBA
}

// cacheKey identifies the pixels of one slot. Two slots with equal keys
// render identically.
type cacheKey struct {
	style   styleKey
	present bool
	content page.Content
	footer  string
}

type cacheEntry struct {
	key cacheKey
	bmp *bitmap.Bitmap // nil until first access after a change
}

// CacheStats counts bitmap cache activity.
type CacheStats struct {
	Renders int // slots rasterized
	Reuses  int // slots satisfied by a bitmap rendered for another slot
}

func (v *ReadView) styleKey() styleKey {
	return styleKey{
		cfg:           v.cfg,
		width:         v.width,
		height:        v.height,
		density:       v.density,
		scaledDensity: v.scaledDensity,
		background:    v.bgColor,
	}
}

func (v *ReadView) keyFor(s Slot, style styleKey) cacheKey {
	k := cacheKey{style: style, footer: v.slotFooter(s)}
	if c := v.pages[s]; c != nil {
		k.present = true
		k.content = *c
	}
	return k
}

// slotFooter returns the footer drawn on slot s. A footer func set with
// WithFooterFunc wins over the footer passed to SetPageData.
func (v *ReadView) slotFooter(s Slot) string {
	if fn := v.opts.footerFunc; fn != nil {
		return fn(v.pages[s])
	}
	return v.footer
}

// refreshCache recomputes slot keys after an input change. A slot whose key
// is unchanged, or equals a key another slot already rendered (the usual
// case after a committed flip shifts the triple), keeps that bitmap. Other
// slots are left empty and render on their next access.
func (v *ReadView) refreshCache() {
	old := v.cache
	style := v.styleKey()

	var fresh [slotCount]cacheEntry
	for s := range fresh {
		key := v.keyFor(Slot(s), style)
		fresh[s].key = key
		for o := range old {
			if old[o].key != key || old[o].bmp.IsRecycled() {
				continue
			}
			fresh[s].bmp = old[o].bmp.Retain()
			if o != s {
				v.stats.Reuses++
				Logger().Debug("page bitmap reused", "slot", Slot(s), "from", Slot(o))
			}
			break
		}
	}
	for o := range old {
		old[o].bmp.Release()
	}
	v.cache = fresh
	v.Invalidate()
}

// slotBitmap returns the cached bitmap for s, rendering it if needed.
func (v *ReadView) slotBitmap(s Slot) *bitmap.Bitmap {
	if v.closed || !v.ready() || s < 0 || s >= slotCount {
		return nil
	}
	e := &v.cache[s]
	if !e.bmp.IsRecycled() {
		return e.bmp
	}

	img := v.opts.renderer(v.pages[s], v.cfg, v.renderParams(s))
	if img == nil {
		return nil
	}
	bitmap.Swap(&e.bmp, bitmap.FromImage(v.pool, img))
	v.stats.Renders++
	Logger().Debug("page rendered", "slot", s, "page", pageIndex(v.pages[s]),
		"width", v.width, "height", v.height)
	return e.bmp
}

func (v *ReadView) renderParams(s Slot) render.Params {
	return render.Params{
		Width:           v.width,
		Height:          v.height,
		Density:         v.density,
		ScaledDensity:   v.scaledDensity,
		Background:      v.bgColor,
		BackgroundImage: v.bgImage,
		Footer:          v.cache[s].key.footer,
	}
}

func (v *ReadView) releaseCache() {
	for s := range v.cache {
		bitmap.Swap(&v.cache[s].bmp, nil)
	}
}

func pageIndex(c *page.Content) int {
	if c == nil {
		return -1
	}
	return c.PageIndex
}
