package pageturn

import (
	"sync"

	"github.com/gogpu/pageturn/page"
)

// DelegateFactory builds the delegate for a flip style.
type DelegateFactory func(host Host) PageDelegate

var (
	registryMu sync.RWMutex
	registry   = map[page.FlipStyle]DelegateFactory{
		page.FlipSlide: newSlideDelegate,
	}
)

func newSlideDelegate(host Host) PageDelegate { return NewSlidePageDelegate(host) }

// RegisterDelegate installs the factory used for style, replacing any
// previous one. It is typically called from an init function of the package
// providing the delegate:
//
//	func init() {
//	    _ = pageturn.RegisterDelegate(page.FlipSimulation, NewCurlDelegate)
//	}
//
// Views pick up the factory the next time their flip style is applied.
func RegisterDelegate(style page.FlipStyle, f DelegateFactory) error {
	if f == nil {
		return ErrNilFactory
	}
	if style == page.FlipScroll || !style.Valid() {
		return ErrNoDelegateStyle
	}
	registryMu.Lock()
	registry[style] = f
	registryMu.Unlock()
	return nil
}

func lookupDelegate(style page.FlipStyle) (DelegateFactory, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	f, ok := registry[style]
	return f, ok
}
