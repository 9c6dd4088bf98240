package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/gg"

	"github.com/gogpu/pageturn"
	"github.com/gogpu/pageturn/internal/paginate"
	"github.com/gogpu/pageturn/scroll"
)

// session is a paginated text file shown in a headless view.
type session struct {
	book   *paginate.Book
	view   *pageturn.ReadView
	dc     *gg.Context
	canvas *pageturn.GGCanvas
}

// openSession paginates the file at path and attaches it to a new view
// driven by clock.
func (o *options) openSession(path string, clock scroll.Clock) (*session, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read text: %w", err)
	}
	cfg, err := o.readerConfig()
	if err != nil {
		return nil, err
	}
	p, err := o.params()
	if err != nil {
		return nil, err
	}

	pages, err := paginate.Split(string(data), cfg, p)
	if err != nil {
		return nil, fmt.Errorf("paginate: %w", err)
	}
	title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	book, err := paginate.NewBook(title, pages)
	if err != nil {
		return nil, err
	}

	view, err := pageturn.NewReadView(book,
		pageturn.WithReaderConfig(cfg),
		pageturn.WithClock(clock),
		pageturn.WithAnimationSpeed(o.v.GetInt("speed")),
		pageturn.WithTouchSlop(o.v.GetFloat64("touch-slop")),
		pageturn.WithInterpolator(o.easing.interpolator()),
		pageturn.WithFooterFunc(book.FooterFor),
	)
	if err != nil {
		return nil, err
	}
	view.SetSize(p.Width, p.Height, p.Density, p.ScaledDensity)
	book.Attach(view)

	dc := gg.NewContext(p.Width, p.Height)
	return &session{
		book:   book,
		view:   view,
		dc:     dc,
		canvas: pageturn.NewGGCanvas(dc),
	}, nil
}

// seek moves to the 1-based page number n.
func (s *session) seek(n int) error {
	return s.book.Seek(n - 1)
}

// snapshot draws the view and writes it to path as PNG.
func (s *session) snapshot(path string) error {
	s.view.OnDraw(s.canvas)
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func (s *session) Close() error {
	return errors.Join(s.view.Close(), s.dc.Close())
}
