// Package render rasterizes one page of text into an RGBA image.
//
// Render is a pure function of its inputs: the same content, configuration
// and parameters always produce pixel-identical output, which lets the view's
// bitmap cache compare inputs instead of pixels.
package render

import (
	"image"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"

	"github.com/gogpu/pageturn/page"
)

// Footer appearance. The footer ignores the page text color so it reads the
// same on every palette entry.
const (
	footerSize    = 12.0 // sp
	footerMargin  = 8.0  // dp below the footer baseline
	footerOpacity = 0.6
)

var footerColor = gg.RGBA{R: 0.53, G: 0.53, B: 0.53, A: footerOpacity}

// Params describes the render target.
type Params struct {
	Width, Height int

	// Density converts dp to pixels, ScaledDensity converts sp to pixels.
	// Non-positive values default to 1 and to Density respectively.
	Density       float64
	ScaledDensity float64

	Background      gg.RGBA
	BackgroundImage *gg.ImageBuf // optional, stretched over the page

	Footer string
}

func (p Params) normalized() Params {
	if p.Density <= 0 {
		p.Density = 1
	}
	if p.ScaledDensity <= 0 {
		p.ScaledDensity = p.Density
	}
	return p
}

// Ready reports whether p describes a drawable surface.
func (p Params) Ready() bool { return p.Width > 0 && p.Height > 0 }

// Render draws content onto a new image of p's size.
//
// A non-positive size returns nil. A nil content returns a blank page carrying
// only the background and the footer.
func Render(content *page.Content, cfg page.ReaderConfig, p Params) *image.RGBA {
	if !p.Ready() {
		return nil
	}
	p = p.normalized()

	dc := gg.NewContext(p.Width, p.Height)
	defer func() { _ = dc.Close() }()

	dc.ClearWithColor(p.Background)
	if p.BackgroundImage != nil && !p.BackgroundImage.IsEmpty() {
		dc.DrawImageEx(p.BackgroundImage, gg.DrawImageOptions{
			DstWidth:      float64(p.Width),
			DstHeight:     float64(p.Height),
			Interpolation: gg.InterpBilinear,
		})
	}

	if content != nil && content.Text != "" {
		if m, err := newMetrics(cfg, p); err == nil {
			drawLines(dc, m, content.Text, cfg.ResolvedTextColor())
		}
	}
	if p.Footer != "" {
		drawFooter(dc, p)
	}

	return toRGBA(dc.Image())
}

func drawLines(dc *gg.Context, m metrics, s string, col gg.RGBA) {
	dc.SetFont(m.face)
	dc.SetRGBA(col.R, col.G, col.B, col.A)
	for _, ln := range m.layout(s).Lines {
		dc.DrawString(ln.Text, ln.X, ln.Baseline)
	}
}

func drawFooter(dc *gg.Context, p Params) {
	face, err := Face(page.FontSans, footerSize*p.ScaledDensity)
	if err != nil {
		return
	}
	w := face.Advance(p.Footer)
	x := (float64(p.Width) - w) / 2
	y := float64(p.Height) - footerMargin*p.Density - face.Metrics().Descent

	dc.SetFont(face)
	dc.SetRGBA(footerColor.R, footerColor.G, footerColor.B, footerColor.A)
	dc.DrawString(p.Footer, x, y)
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
