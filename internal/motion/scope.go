package motion

// Detacher is anything that can undo its own effect on the page.
type Detacher interface {
	Detach()
}

// DetachFunc adapts a plain func to Detacher.
type DetachFunc func()

// Detach implements Detacher.
func (f DetachFunc) Detach() {
	if f != nil {
		f()
	}
}

// Scope collects everything a component mounts (tweens, timeline runs,
// scroll bindings, pointer effects) so unmounting is a single Revert call.
type Scope struct {
	items    []Detacher
	reverted bool
}

// NewScope returns an empty scope.
func NewScope() *Scope {
	return &Scope{}
}

// Track adds d to the scope. Adding to a reverted scope detaches d at once.
func (s *Scope) Track(d Detacher) {
	if d == nil {
		return
	}
	if s.reverted {
		d.Detach()
		return
	}
	s.items = append(s.items, d)
}

// Tween tracks t; reverting the scope reverts t.
func (s *Scope) Tween(t *Tween) *Tween {
	if t != nil {
		s.Track(DetachFunc(t.Revert))
	}
	return t
}

// Run tracks a timeline run.
func (s *Scope) Run(r *TimelineRun) *TimelineRun {
	if r != nil {
		s.Track(DetachFunc(r.Detach))
	}
	return r
}

// Len returns the number of tracked items.
func (s *Scope) Len() int {
	return len(s.items)
}

// Revert detaches everything in reverse order of tracking. Safe to call more
// than once.
func (s *Scope) Revert() {
	if s == nil || s.reverted {
		return
	}
	s.reverted = true
	for i := len(s.items) - 1; i >= 0; i-- {
		s.items[i].Detach()
		s.items[i] = nil
	}
	s.items = nil
}

// Reverted reports whether Revert has run.
func (s *Scope) Reverted() bool {
	return s != nil && s.reverted
}
