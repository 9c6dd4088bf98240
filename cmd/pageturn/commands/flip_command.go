package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/thediveo/enumflag/v2"

	"github.com/gogpu/pageturn"
)

// maxFlipFrames bounds a simulated flip.
const maxFlipFrames = 600

// frameClock is a clock advanced by exactly one frame per tick.
type frameClock struct {
	now  time.Time
	step time.Duration
}

func (c *frameClock) Now() time.Time { return c.now }
func (c *frameClock) tick()          { c.now = c.now.Add(c.step) }

type flipFlags struct {
	outDir    string
	page      int
	direction pageturn.Direction
	drag      bool
	fps       int
}

func newFlipCommand(o *options) *cobra.Command {
	f := flipFlags{direction: pageturn.DirectionNext}
	cmd := &cobra.Command{
		Use:   "flip [file]",
		Short: "Simulate a page flip and write every frame as PNG",
		Long:  "Open a text file, go to a page and flip it either programmatically or with a\nsynthetic drag. Every animation frame is written as a PNG image.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.runFlip(cmd, args[0], f)
		},
	}
	cmd.Flags().StringVarP(&f.outDir, "out", "o", ".", "output directory")
	cmd.Flags().IntVarP(&f.page, "page", "p", 1, "page to start on (1-based)")
	cmd.Flags().VarP(
		enumflag.New(&f.direction, "direction", DirectionIds, enumflag.EnumCaseInsensitive),
		"direction", "d", "flip direction; can be 'next' or 'prev'")
	cmd.Flags().BoolVar(&f.drag, "drag", false, "flip with a synthetic drag gesture instead of a programmatic flip")
	cmd.Flags().IntVar(&f.fps, "fps", 60, "frames per second")
	return cmd
}

func (o *options) runFlip(cmd *cobra.Command, path string, f flipFlags) error {
	if f.fps <= 0 {
		return fmt.Errorf("invalid fps %d", f.fps)
	}
	clk := &frameClock{now: time.Unix(0, 0), step: time.Second / time.Duration(f.fps)}
	s, err := o.openSession(path, clk.Now)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	if err := s.seek(f.page); err != nil {
		return err
	}
	if err := os.MkdirAll(f.outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	frames := 0
	frame := func() error {
		frames++
		return s.snapshot(filepath.Join(f.outDir, fmt.Sprintf("frame-%03d.png", frames)))
	}

	if f.drag {
		w, h := s.view.Size()
		for _, ev := range dragGesture(f.direction, float64(w), float64(h)) {
			clk.tick()
			s.view.OnTouchEvent(ev)
			s.view.ComputeScroll()
			if err := frame(); err != nil {
				return err
			}
		}
	} else {
		switch f.direction {
		case pageturn.DirectionPrev:
			s.view.PrevPage()
		default:
			s.view.NextPage()
		}
	}

	for frames < maxFlipFrames && s.view.Animating() {
		clk.tick()
		s.view.ComputeScroll()
		if err := frame(); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "flip %s: %d frames, now on page %d of %d\n",
		f.direction, frames, s.book.Index()+1, s.book.Len())
	return nil
}

// dragSteps is the number of MOVE samples in a synthetic drag.
const dragSteps = 12

// dragGesture returns a single-finger drag across most of the page in the
// direction d.
func dragGesture(d pageturn.Direction, w, h float64) []pageturn.MotionEvent {
	from, to := 0.85*w, 0.15*w
	if d == pageturn.DirectionPrev {
		from, to = to, from
	}
	y := h / 2

	evs := make([]pageturn.MotionEvent, 0, dragSteps+2)
	evs = append(evs, pageturn.Down(from, y))
	for i := 1; i <= dragSteps; i++ {
		x := from + (to-from)*float64(i)/dragSteps
		evs = append(evs, pageturn.Move(x, y))
	}
	return append(evs, pageturn.Up(to, y))
}
