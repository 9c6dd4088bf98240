package render

import (
	"strings"

	"github.com/gogpu/gg/text"

	"github.com/gogpu/pageturn/page"
)

// Line is one wrapped line of page text.
type Line struct {
	Text     string
	X        float64
	Baseline float64
	// Start and End are byte offsets of Text within the laid out string.
	Start, End int
}

// Result is the outcome of laying out text on one page.
type Result struct {
	Lines []Line
	// Consumed is the number of bytes of the input placed on the page,
	// including the newlines of completed source lines.
	Consumed int
	// Truncated reports whether text remained after the page filled.
	Truncated bool
}

// metrics holds the resolved page geometry in pixels.
type metrics struct {
	face     text.Face
	ascent   float64
	descent  float64
	left     float64
	maxWidth float64
	top      float64
	bottom   float64
	lineStep float64
	paraStep float64
}

func newMetrics(cfg page.ReaderConfig, p Params) (metrics, error) {
	face, err := Face(cfg.FontFamily, cfg.FontSize*p.ScaledDensity)
	if err != nil {
		return metrics{}, err
	}
	fm := face.Metrics()
	left := cfg.HorizontalPadding * p.Density
	return metrics{
		face:     face,
		ascent:   fm.Ascent,
		descent:  fm.Descent,
		left:     left,
		maxWidth: float64(p.Width) - 2*left,
		top:      cfg.TopPadding * p.Density,
		bottom:   float64(p.Height) - cfg.BottomPadding*p.Density,
		lineStep: cfg.FontSize * cfg.LineHeightRatio * p.ScaledDensity,
		paraStep: cfg.ParagraphSpacing * p.ScaledDensity,
	}, nil
}

// Layout places s on a page of the given geometry with the same rules the
// renderer draws by. Each source line (split on '\n') is wrapped greedily;
// empty source lines only add paragraph spacing. Layout stops at the first
// line whose descent would cross the bottom padding.
func Layout(s string, cfg page.ReaderConfig, p Params) (Result, error) {
	p = p.normalized()
	if p.Width <= 0 || p.Height <= 0 {
		return Result{}, ErrNotReady
	}
	m, err := newMetrics(cfg, p)
	if err != nil {
		return Result{}, err
	}
	return m.layout(s), nil
}

func (m metrics) layout(s string) Result {
	var res Result
	y := m.top + m.ascent
	offset := 0

	paras := strings.Split(s, "\n")
	for i, para := range paras {
		rest := para
		for rest != "" {
			if y+m.descent > m.bottom {
				res.Consumed = offset
				res.Truncated = true
				return res
			}
			n := BreakText(m.face, rest, m.maxWidth)
			res.Lines = append(res.Lines, Line{
				Text:     rest[:n],
				X:        m.left,
				Baseline: y,
				Start:    offset,
				End:      offset + n,
			})
			offset += n
			rest = rest[n:]
			y += m.lineStep
		}
		y += m.paraStep
		if i < len(paras)-1 {
			offset++ // newline
		}
	}

	res.Consumed = offset
	return res
}

// Fit reports how many bytes of s fit on one page. It returns 0 when not
// even the first line fits.
func Fit(s string, cfg page.ReaderConfig, p Params) (int, error) {
	res, err := Layout(s, cfg, p)
	if err != nil {
		return 0, err
	}
	return res.Consumed, nil
}
