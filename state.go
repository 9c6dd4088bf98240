package pageturn

// GestureState is the touch geometry shared between the view and its
// delegate. The view owns it; the delegate moves the touch point while
// dragging and animating.
type GestureState struct {
	StartX, StartY float64 // gesture origin
	LastX, LastY   float64 // previous sample
	TouchX, TouchY float64 // current sample
}

// SetStartPoint starts a new gesture at (x, y). All three points collapse
// onto it.
func (s *GestureState) SetStartPoint(x, y float64) {
	s.StartX, s.StartY = x, y
	s.LastX, s.LastY = x, y
	s.TouchX, s.TouchY = x, y
}

// SetTouchPoint records a new sample, shifting the current one into Last.
func (s *GestureState) SetTouchPoint(x, y float64) {
	s.LastX, s.LastY = s.TouchX, s.TouchY
	s.TouchX, s.TouchY = x, y
}

// Offset returns the horizontal travel since the gesture origin.
func (s *GestureState) Offset() float64 { return s.TouchX - s.StartX }
