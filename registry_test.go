package pageturn

import (
	"errors"
	"testing"

	"github.com/gogpu/pageturn/page"
)

// unregister removes style from the registry when the test ends.
func unregister(t *testing.T, style page.FlipStyle) {
	t.Helper()
	registryMu.RLock()
	prev, had := registry[style]
	registryMu.RUnlock()
	t.Cleanup(func() {
		registryMu.Lock()
		defer registryMu.Unlock()
		if had {
			registry[style] = prev
		} else {
			delete(registry, style)
		}
	})
}

func TestRegisterDelegateErrors(t *testing.T) {
	if err := RegisterDelegate(page.FlipSimulation, nil); !errors.Is(err, ErrNilFactory) {
		t.Errorf("nil factory: err = %v", err)
	}
	if err := RegisterDelegate(page.FlipScroll, newSlideDelegate); !errors.Is(err, ErrNoDelegateStyle) {
		t.Errorf("scroll style: err = %v", err)
	}
	if err := RegisterDelegate(page.FlipStyle(42), newSlideDelegate); !errors.Is(err, ErrNoDelegateStyle) {
		t.Errorf("unknown style: err = %v", err)
	}
}

func TestSimulationFallsBackToSlide(t *testing.T) {
	unregister(t, page.FlipSimulation)
	registryMu.Lock()
	delete(registry, page.FlipSimulation)
	registryMu.Unlock()

	cfg := page.DefaultReaderConfig()
	cfg.FlipStyle = page.FlipSimulation
	tv := newTestView(t, &fakeSource{hasNext: true}, WithReaderConfig(cfg))
	tv.slide(t)
}

func TestRegisteredDelegateIsUsed(t *testing.T) {
	unregister(t, page.FlipSimulation)

	built := 0
	err := RegisterDelegate(page.FlipSimulation, func(h Host) PageDelegate {
		built++
		return NewSlidePageDelegate(h)
	})
	if err != nil {
		t.Fatal(err)
	}

	tv := newTestView(t, &fakeSource{hasNext: true})
	if built != 0 {
		t.Fatal("factory used for the wrong style")
	}
	cfg := tv.ReaderConfig()
	cfg.FlipStyle = page.FlipSimulation
	if err := tv.SetReaderConfig(cfg); err != nil {
		t.Fatal(err)
	}
	if built != 1 {
		t.Errorf("factory calls = %d, want 1", built)
	}

	// The plugged delegate drives flips like the built-in one.
	tv.NextPage()
	tv.settle(t)
	if !equalDirections(tv.src.changes, []Direction{DirectionNext}) {
		t.Errorf("changes = %v, want [Next]", tv.src.changes)
	}
}
