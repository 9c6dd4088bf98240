// Package scroll provides a frame-sampled scroll interpolator.
//
// A Scroller does not run on its own. The owner starts it with StartScroll and
// samples it once per frame with ComputeScrollOffset, reading CurrX and CurrY
// afterwards. Time comes from an injectable clock so animations can be stepped
// deterministically in tests and headless rendering.
//
//	s := scroll.New()
//	s.StartScroll(100, 0, -400, 0, 250*time.Millisecond)
//	for s.ComputeScrollOffset() {
//	    draw(s.CurrX())
//	}
package scroll

import (
	"math"
	"time"
)

// Clock returns the current time.
type Clock func() time.Time

// Option configures a Scroller.
type Option func(*options)

type options struct {
	clock        Clock
	interpolator Interpolator
}

func defaultOptions() options {
	return options{
		clock:        time.Now,
		interpolator: Linear,
	}
}

// WithClock sets the time source. Nil keeps time.Now.
func WithClock(c Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithInterpolator sets the easing curve. Nil keeps Linear.
func WithInterpolator(i Interpolator) Option {
	return func(o *options) {
		if i != nil {
			o.interpolator = i
		}
	}
}

// Scroller interpolates an integer position between a start and an end
// offset over a fixed duration. A new Scroller is finished.
//
// Scroller is not safe for concurrent use.
type Scroller struct {
	clock        Clock
	interpolator Interpolator

	startX, startY int
	finalX, finalY int
	currX, currY   int
	deltaX, deltaY int

	startTime time.Time
	duration  time.Duration
	finished  bool
}

// New creates a finished Scroller.
func New(opts ...Option) *Scroller {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Scroller{
		clock:        o.clock,
		interpolator: o.interpolator,
		finished:     true,
	}
}

// StartScroll begins moving from (startX, startY) by (dx, dy) over d.
// A non-positive duration completes on the next ComputeScrollOffset call.
func (s *Scroller) StartScroll(startX, startY, dx, dy int, d time.Duration) {
	s.finished = false
	s.duration = max(d, 0)
	s.startTime = s.clock()
	s.startX, s.startY = startX, startY
	s.currX, s.currY = startX, startY
	s.deltaX, s.deltaY = dx, dy
	s.finalX, s.finalY = startX+dx, startY+dy
}

// ComputeScrollOffset advances the current position to the clock's time.
// It returns true while the animation is live, including the frame on which
// the final position is reached, and false once it has already finished.
func (s *Scroller) ComputeScrollOffset() bool {
	if s.finished {
		return false
	}

	elapsed := s.clock().Sub(s.startTime)
	if elapsed < s.duration {
		p := s.interpolator.Interpolate(float64(elapsed) / float64(s.duration))
		s.currX = s.startX + int(math.Round(p*float64(s.deltaX)))
		s.currY = s.startY + int(math.Round(p*float64(s.deltaY)))
		return true
	}

	s.currX, s.currY = s.finalX, s.finalY
	s.finished = true
	return true
}

// AbortAnimation jumps to the final position and finishes.
func (s *Scroller) AbortAnimation() {
	s.currX, s.currY = s.finalX, s.finalY
	s.finished = true
}

// IsFinished reports whether the animation has completed.
func (s *Scroller) IsFinished() bool { return s.finished }

// CurrX returns the current X position.
func (s *Scroller) CurrX() int { return s.currX }

// CurrY returns the current Y position.
func (s *Scroller) CurrY() int { return s.currY }

// FinalX returns the X position the animation ends at.
func (s *Scroller) FinalX() int { return s.finalX }

// FinalY returns the Y position the animation ends at.
func (s *Scroller) FinalY() int { return s.finalY }

// Duration returns the duration of the current or last animation.
func (s *Scroller) Duration() time.Duration { return s.duration }
