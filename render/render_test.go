package render

import (
	"bytes"
	"image"
	"testing"

	"github.com/gogpu/gg"

	"github.com/gogpu/pageturn/page"
)

func testParams() Params {
	return Params{
		Width:         320,
		Height:        480,
		Density:       1,
		ScaledDensity: 1,
		Background:    page.BackgroundPaper.Color(),
	}
}

func testContent() *page.Content {
	return &page.Content{
		StartIndex: 0,
		EndIndex:   44,
		Text:       "The quick brown fox\n\njumps over the lazy dog.",
		PageIndex:  0,
	}
}

// pixelNear reports whether the pixel at (x, y) matches want within one
// step per channel.
func pixelNear(t *testing.T, img *image.RGBA, x, y int, want gg.RGBA) bool {
	t.Helper()
	c := img.RGBAAt(x, y)
	near := func(got uint8, v float64) bool {
		d := float64(got) - v*255
		return d > -1.5 && d < 1.5
	}
	return near(c.R, want.R*want.A) && near(c.G, want.G*want.A) &&
		near(c.B, want.B*want.A) && near(c.A, want.A)
}

func TestRenderNotReady(t *testing.T) {
	for _, size := range [][2]int{{0, 100}, {100, 0}, {-1, -1}} {
		p := testParams()
		p.Width, p.Height = size[0], size[1]
		if img := Render(testContent(), page.DefaultReaderConfig(), p); img != nil {
			t.Errorf("Render(%dx%d) should return nil", size[0], size[1])
		}
	}
}

func TestRenderNilContentIsBlank(t *testing.T) {
	p := testParams()
	img := Render(nil, page.DefaultReaderConfig(), p)
	if img == nil {
		t.Fatal("Render(nil) returned nil")
	}
	if img.Bounds().Dx() != p.Width || img.Bounds().Dy() != p.Height {
		t.Fatalf("size = %v, want %dx%d", img.Bounds(), p.Width, p.Height)
	}
	for _, pt := range []image.Point{{0, 0}, {160, 240}, {319, 479}} {
		if !pixelNear(t, img, pt.X, pt.Y, p.Background) {
			t.Errorf("pixel %v = %v, want background", pt, img.RGBAAt(pt.X, pt.Y))
		}
	}
}

func TestRenderDrawsText(t *testing.T) {
	p := testParams()
	blank := Render(nil, page.DefaultReaderConfig(), p)
	img := Render(testContent(), page.DefaultReaderConfig(), p)
	if bytes.Equal(blank.Pix, img.Pix) {
		t.Error("rendered page is identical to a blank page")
	}
}

func TestRenderIdempotent(t *testing.T) {
	p := testParams()
	p.Footer = "1/3"
	cfg := page.DefaultReaderConfig()

	a := Render(testContent(), cfg, p)
	b := Render(testContent(), cfg, p)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("identical inputs produced different pixels")
	}
}

func TestRenderTextColorOverride(t *testing.T) {
	p := testParams()
	cfg := page.DefaultReaderConfig()
	a := Render(testContent(), cfg, p)

	cfg.TextColor = "#FF0000"
	b := Render(testContent(), cfg, p)
	if bytes.Equal(a.Pix, b.Pix) {
		t.Error("text color override had no effect")
	}
}

func TestRenderFooter(t *testing.T) {
	p := testParams()
	plain := Render(nil, page.DefaultReaderConfig(), p)
	p.Footer = "Chapter 1  12%"
	footer := Render(nil, page.DefaultReaderConfig(), p)

	if bytes.Equal(plain.Pix, footer.Pix) {
		t.Fatal("footer was not drawn")
	}
	// Footer stays in the bottom band.
	top := plain.Bounds()
	top.Max.Y = p.Height / 2
	for y := top.Min.Y; y < top.Max.Y; y++ {
		if !bytes.Equal(plain.Pix[plain.PixOffset(0, y):plain.PixOffset(0, y+1)],
			footer.Pix[footer.PixOffset(0, y):footer.PixOffset(0, y+1)]) {
			t.Fatalf("footer changed row %d in the upper half", y)
		}
	}
}

func TestRenderBackgroundImage(t *testing.T) {
	bg, err := gg.NewImageBuf(4, 4, gg.FormatRGBA8)
	if err != nil {
		t.Fatal(err)
	}
	bg.Fill(0, 0, 255, 255)

	p := testParams()
	p.BackgroundImage = bg
	img := Render(nil, page.DefaultReaderConfig(), p)

	c := img.RGBAAt(p.Width/2, p.Height/2)
	if c.B < 200 || c.R > 50 {
		t.Errorf("center pixel = %v, want background image blue", c)
	}
}
