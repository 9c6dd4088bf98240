package pageturn

// SlidePageDelegate flips by sliding both pages horizontally: the next page
// pushes the current one off to the left, the previous page pushes it off to
// the right.
type SlidePageDelegate struct {
	*HorizontalPageDelegate
}

// NewSlidePageDelegate returns a slide delegate driving host.
func NewSlidePageDelegate(host Host) *SlidePageDelegate {
	d := &SlidePageDelegate{}
	d.HorizontalPageDelegate = NewHorizontalPageDelegate(host, d)
	return d
}

// OnAnimStart slides the rest of the way, or back to the origin when the
// gesture was cancelled.
func (d *SlidePageDelegate) OnAnimStart(speed int) {
	w, _ := d.host.Size()
	width := float64(w)
	g := d.host.Gesture()

	var dx float64
	switch d.direction {
	case DirectionNext:
		if d.isCancel {
			dx = width - min(width, width-g.StartX+g.TouchX)
		} else {
			dx = -(g.TouchX + (width - g.StartX))
		}
	case DirectionPrev:
		if d.isCancel {
			dx = -(g.TouchX - g.StartX)
		} else {
			dx = width - (g.TouchX - g.StartX)
		}
	default:
		return
	}
	d.StartScroll(int(g.TouchX), int(g.TouchY), int(dx), 0, speed)
}

// OnAnimStop commits the flip unless it was cancelled.
func (d *SlidePageDelegate) OnAnimStop() {
	if !d.isCancel {
		d.host.CommitPage(d.direction)
	}
}

// OnDraw composites the two pages at the current drag offset. Until the
// finger has moved to the committed side of the origin, only the current
// page is shown.
func (d *SlidePageDelegate) OnDraw(c Canvas) {
	w, _ := d.host.Size()
	width := float64(w)
	offset := d.host.Gesture().Offset()

	switch {
	case d.direction == DirectionPrev && offset >= 0:
		c.DrawBitmap(d.prev, offset-width, 0)
		c.DrawBitmap(d.cur, offset, 0)
	case d.direction == DirectionNext && offset <= 0:
		c.DrawBitmap(d.cur, offset, 0)
		c.DrawBitmap(d.next, offset+width, 0)
	default:
		c.DrawBitmap(d.cur, 0, 0)
	}
}
