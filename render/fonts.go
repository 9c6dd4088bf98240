package render

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg/text"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"

	"github.com/gogpu/pageturn/page"
)

// fontEntry lazily parses one embedded font. Sources are parsed once per
// process and shared by every face and every render.
type fontEntry struct {
	data []byte
	once sync.Once
	src  *text.FontSource
	err  error
}

func (e *fontEntry) source() (*text.FontSource, error) {
	e.once.Do(func() {
		e.src, e.err = text.NewFontSource(e.data)
	})
	return e.src, e.err
}

var fonts = map[page.FontFamily]*fontEntry{
	page.FontSans:      {data: goregular.TTF},
	page.FontMedium:    {data: gomedium.TTF},
	page.FontItalic:    {data: goitalic.TTF},
	page.FontMono:      {data: gomono.TTF},
	page.FontSmallcaps: {data: gosmallcaps.TTF},
}

// faceCacheSize bounds the number of live faces. A reader uses a handful
// of sizes at a time: body text, footer and whatever the user is trying.
const faceCacheSize = 32

type faceKey struct {
	family page.FontFamily
	size   float64
}

var faces = mustFaceCache()

func mustFaceCache() *lru.Cache[faceKey, text.Face] {
	c, err := lru.New[faceKey, text.Face](faceCacheSize)
	if err != nil {
		panic(err) // only for a non-positive size
	}
	return c
}

// Face returns a face of the given family at size pixels. Faces are cached
// per family and size.
func Face(family page.FontFamily, size float64) (text.Face, error) {
	key := faceKey{family: family, size: size}
	if f, ok := faces.Get(key); ok {
		return f, nil
	}

	entry, ok := fonts[family]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFontUnavailable, family)
	}
	src, err := entry.source()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFontUnavailable, family, err)
	}
	f := src.Face(size)
	faces.Add(key, f)
	return f, nil
}
