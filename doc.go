// Package pageturn is a touch-driven page flip engine for paginated text.
//
// A [ReadView] holds three pages of content (previous, current, next),
// rasterizes them lazily into reference-counted bitmaps, and turns pointer
// events into animated page flips. The visual transition is supplied by a
// [PageDelegate]; [SlidePageDelegate] slides pages horizontally, and other
// styles can be plugged in with [RegisterDelegate].
//
// The engine does not paginate. A [PageSource] answers whether neighboring
// pages exist and is told when a flip commits; it responds by calling
// [ReadView.SetPageData] with the shifted triple.
//
// # Frame loop
//
// The view is single-threaded and frame-driven. A host feeds input and draws
// once per frame:
//
//	v, _ := pageturn.NewReadView(source)
//	v.SetSize(1080, 1920, 2.75, 2.75)
//	v.SetPageData(prev, cur, next, "12 / 340")
//
//	for frame := range ticks {
//	    for _, ev := range frame.Events {
//	        v.OnTouchEvent(ev)
//	    }
//	    dc := gg.NewContext(1080, 1920)
//	    v.Frame(pageturn.NewGGCanvas(dc))
//	}
//
// # Bitmap lifetime
//
// A delegate snapshots the bitmaps it animates. The cache may refresh a slot
// mid-animation; the old bitmap stays valid until the delegate releases it.
// Draw paths skip recycled bitmaps instead of failing.
//
// # Logging
//
// pageturn is silent by default. Use [SetLogger] to route diagnostics to any
// [log/slog] handler.
package pageturn
