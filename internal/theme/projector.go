package theme

import "sync"

// Projector derives presentation colors from the configured theme, one
// way only. Applying an unknown theme name leaves the previously applied
// palette untouched rather than failing.
type Projector struct {
	mu      sync.RWMutex
	current Palette
}

// NewProjector starts from the named theme, falling back to ocean when the
// name has no mapping.
func NewProjector(name string) *Projector {
	p := &Projector{current: palettes["ocean"]}
	p.Apply(name)
	return p
}

// Apply switches the active palette if name is a known theme and returns
// whatever palette is active afterwards.
func (p *Projector) Apply(name string) Palette {
	p.mu.Lock()
	defer p.mu.Unlock()
	if pal, ok := palettes[name]; ok {
		p.current = pal
	}
	return p.current
}

// Current returns the active palette.
func (p *Projector) Current() Palette {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current
}
