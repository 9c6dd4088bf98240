package pageturn

import "testing"

func TestMotionEventFocus(t *testing.T) {
	tests := []struct {
		name   string
		ev     MotionEvent
		wantX  float64
		wantY  float64
		wantOK bool
	}{
		{"single pointer", Move(10, 20), 10, 20, true},
		{
			"two pointers",
			MotionEvent{Action: ActionMove, Pointers: []Pointer{{X: 0, Y: 0}, {X: 100, Y: 50}}},
			50, 25, true,
		},
		{
			"lifting pointer excluded",
			MotionEvent{Action: ActionPointerUp, ActionIndex: 1, Pointers: []Pointer{{X: 10, Y: 10}, {X: 500, Y: 500}, {X: 30, Y: 50}}},
			20, 30, true,
		},
		{
			"index ignored for move",
			MotionEvent{Action: ActionMove, ActionIndex: 0, Pointers: []Pointer{{X: 10}, {X: 30}}},
			20, 0, true,
		},
		{"no pointers", MotionEvent{Action: ActionMove}, 0, 0, false},
		{
			"only pointer lifting",
			MotionEvent{Action: ActionPointerUp, Pointers: []Pointer{{X: 1, Y: 1}}},
			0, 0, false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, ok := tt.ev.Focus()
			if ok != tt.wantOK || x != tt.wantX || y != tt.wantY {
				t.Errorf("Focus() = (%v, %v, %v), want (%v, %v, %v)", x, y, ok, tt.wantX, tt.wantY, tt.wantOK)
			}
		})
	}
}

func TestSecondFingerAheadKeepsFlip(t *testing.T) {
	tv := newTestView(t, &fakeSource{hasNext: true, hasPrev: true})
	tv.send(Down(500, 1000), Move(480, 1000), Move(400, 1000))

	// A second finger lands just ahead of the first: the focal point moves to
	// the midpoint, and lifting it again returns to the remaining finger.
	tv.send(MotionEvent{Action: ActionMove, Pointers: []Pointer{{X: 400, Y: 1000}, {X: 380, Y: 1000}}})
	if got := tv.Gesture().TouchX; got != 390 {
		t.Errorf("touch x = %v, want 390", got)
	}
	tv.send(MotionEvent{Action: ActionPointerUp, ActionIndex: 1, Pointers: []Pointer{{X: 370, Y: 1000}, {X: 380, Y: 1000}}})
	if got := tv.Gesture().TouchX; got != 370 {
		t.Errorf("touch x = %v, want 370", got)
	}
	if tv.slide(t).IsCancel() {
		t.Error("focal point kept moving forward, flip should not be cancelled")
	}
}

// The focal point is the centroid of all fingers, so a finger landing behind
// the first drags it backwards and reads as a reversal.
func TestSecondFingerBehindCancelsFlip(t *testing.T) {
	tv := newTestView(t, &fakeSource{hasNext: true, hasPrev: true})
	tv.send(Down(500, 1000), Move(480, 1000), Move(400, 1000))

	tv.send(MotionEvent{Action: ActionMove, Pointers: []Pointer{{X: 400, Y: 1000}, {X: 600, Y: 1000}}})
	if got := tv.Gesture().TouchX; got != 500 {
		t.Errorf("touch x = %v, want 500", got)
	}
	if !tv.slide(t).IsCancel() {
		t.Error("focal point moved back, flip should be cancelled")
	}

	tv.send(Up(500, 1000))
	tv.settle(t)
	if len(tv.src.changes) != 0 {
		t.Errorf("cancelled flip committed: %v", tv.src.changes)
	}
}

func TestGestureState(t *testing.T) {
	var g GestureState
	g.SetStartPoint(10, 20)
	if g.LastX != 10 || g.TouchX != 10 || g.TouchY != 20 {
		t.Fatalf("SetStartPoint = %+v", g)
	}
	g.SetTouchPoint(30, 40)
	g.SetTouchPoint(50, 60)
	if g.LastX != 30 || g.LastY != 40 || g.TouchX != 50 || g.StartX != 10 {
		t.Errorf("SetTouchPoint = %+v", g)
	}
	if g.Offset() != 40 {
		t.Errorf("Offset() = %v, want 40", g.Offset())
	}
}

func TestEnumStrings(t *testing.T) {
	if ActionPointerUp.String() != "PointerUp" || Action(99).String() != "Unknown" {
		t.Error("Action.String")
	}
	if DirectionNext.String() != "Next" || Direction(9).String() != "Unknown" {
		t.Error("Direction.String")
	}
	if SlotCur.String() != "Cur" || Slot(7).String() != "Unknown" {
		t.Error("Slot.String")
	}
}
