package pageturn

import "github.com/gogpu/pageturn/bitmap"

// HorizontalPageDelegate implements the drag gesture shared by horizontal
// flip styles. It decides the flip direction, tracks whether the release
// would cancel, and keeps retained snapshots of the pages being flipped.
//
// Concrete styles embed it and provide the Animator half; see
// SlidePageDelegate.
type HorizontalPageDelegate struct {
	DelegateBase

	prev, cur, next *bitmap.Bitmap
}

// NewHorizontalPageDelegate returns a delegate driving host whose visuals
// come from a.
func NewHorizontalPageDelegate(host Host, a Animator) *HorizontalPageDelegate {
	return &HorizontalPageDelegate{DelegateBase: newDelegateBase(host, a)}
}

// SetDirection fixes the flip direction and snapshots the two pages it
// moves between.
func (d *HorizontalPageDelegate) SetDirection(dir Direction) {
	d.direction = dir
	switch dir {
	case DirectionPrev:
		bitmap.Swap(&d.prev, d.host.AcquireBitmap(SlotPrev))
		bitmap.Swap(&d.cur, d.host.AcquireBitmap(SlotCur))
	case DirectionNext:
		bitmap.Swap(&d.next, d.host.AcquireBitmap(SlotNext))
		bitmap.Swap(&d.cur, d.host.AcquireBitmap(SlotCur))
	}
}

// Bitmaps returns the current snapshots. They stay valid until the next
// SetDirection or Close.
func (d *HorizontalPageDelegate) Bitmaps() (prev, cur, next *bitmap.Bitmap) {
	return d.prev, d.cur, d.next
}

// OnTouch implements PageDelegate.
func (d *HorizontalPageDelegate) OnTouch(ev MotionEvent) {
	switch ev.Action {
	case ActionDown:
		d.AbortAnim()
	case ActionMove, ActionPointerUp:
		d.onScroll(ev)
	case ActionUp, ActionCancel:
		d.onRelease()
	}
}

func (d *HorizontalPageDelegate) onScroll(ev MotionEvent) {
	fx, fy, ok := ev.Focus()
	if !ok {
		return
	}
	g := d.host.Gesture()

	if !d.isMoved {
		dx, dy := fx-g.StartX, fy-g.StartY
		slop := d.host.TouchSlop()
		if dx*dx+dy*dy <= slop*slop {
			return
		}
		d.isMoved = true

		if dx > 0 {
			if !d.HasPrev() {
				d.noNext = true
				Logger().Debug("no previous page, gesture ignored")
				return
			}
			d.SetDirection(DirectionPrev)
		} else {
			if !d.HasNext() {
				d.noNext = true
				Logger().Debug("no next page, gesture ignored")
				return
			}
			d.SetDirection(DirectionNext)
		}
		Logger().Debug("drag direction fixed", "direction", d.direction)
		g.SetStartPoint(fx, fy)
	}
	if d.noNext {
		return
	}

	// Compare with the previous sample, not the origin: what matters is
	// which way the finger is travelling right now.
	switch d.direction {
	case DirectionNext:
		d.isCancel = fx > g.TouchX
	case DirectionPrev:
		d.isCancel = fx < g.TouchX
	}
	d.isRunning = true
	g.SetTouchPoint(fx, fy)
	d.host.Invalidate()
}

func (d *HorizontalPageDelegate) onRelease() {
	if !d.isMoved || d.noNext || d.direction == DirectionNone {
		d.isRunning = false
		d.host.Invalidate()
		return
	}
	d.anim.OnAnimStart(d.host.AnimationSpeed())
}

// NextPageByAnim flips forward without a drag, as if released from near the
// right edge.
func (d *HorizontalPageDelegate) NextPageByAnim(speed int) {
	d.AbortAnim()
	if !d.HasNext() {
		return
	}
	d.SetDirection(DirectionNext)

	w, h := d.host.Size()
	g := d.host.Gesture()
	y := 1.0
	if g.StartY > float64(h)/2 {
		y = float64(h) * 0.9
	}
	g.SetStartPoint(float64(w)*0.9, y)
	d.isCancel = false
	d.anim.OnAnimStart(speed)
}

// PrevPageByAnim flips back without a drag, as if released at the left edge.
func (d *HorizontalPageDelegate) PrevPageByAnim(speed int) {
	d.AbortAnim()
	if !d.HasPrev() {
		return
	}
	d.SetDirection(DirectionPrev)

	_, h := d.host.Size()
	g := d.host.Gesture()
	y := 0.0
	if g.StartY > float64(h)/2 {
		y = float64(h)
	}
	g.SetStartPoint(0, y)
	d.isCancel = false
	d.anim.OnAnimStart(speed)
}

// Close implements PageDelegate.
func (d *HorizontalPageDelegate) Close() {
	bitmap.Swap(&d.prev, nil)
	bitmap.Swap(&d.cur, nil)
	bitmap.Swap(&d.next, nil)
}
