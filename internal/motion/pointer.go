package motion

import (
	"math"

	"github.com/Zachkp/folio/internal/page"
)

// EffectState is the state of a pointer effect.
type EffectState uint8

// Pointer effect states.
const (
	Idle EffectState = iota
	Tracking
)

func (s EffectState) String() string {
	if s == Tracking {
		return "tracking"
	}
	return "idle"
}

// follower owns the single in-flight tween of one element and replaces it on
// every retarget, so moves never stack.
type follower struct {
	engine Engine
	el     *page.Element
	tween  *Tween
}

func (f *follower) to(props map[page.Property]float64, dur float64, curve string, perspective float64) {
	f.engine.Cancel(f.tween)
	f.tween = f.engine.Create(Descriptor{
		Targets:     []*page.Element{f.el},
		Props:       props,
		Mode:        To,
		Duration:    dur,
		Ease:        curve,
		Perspective: perspective,
	})
}

// reset cancels the in-flight tween and snaps props to their resting values.
func (f *follower) reset(props ...page.Property) {
	f.engine.Cancel(f.tween)
	f.tween = nil
	for _, p := range props {
		f.el.Transform.Set(p, page.BaselineValue(p))
	}
}

// pointerScope is the acquisition shared by every pointer effect: a listener
// on the element plus a removal hook, both released by release.
type pointerScope struct {
	unlisten func()
	unremove func()
	released bool
}

func acquirePointer(doc *page.Document, el *page.Element, handle func(page.PointerEvent), release func()) pointerScope {
	return pointerScope{
		unlisten: doc.OnPointer(el, handle),
		unremove: el.OnRemove(release),
	}
}

// release reports whether this call did the releasing.
func (s *pointerScope) release() bool {
	if s.released {
		return false
	}
	s.released = true
	s.unlisten()
	s.unremove()
	return true
}

// limit scales (x, y) down to length max when max > 0.
func limit(x, y, max float64) (float64, float64) {
	if max <= 0 {
		return x, y
	}
	if l := math.Hypot(x, y); l > max {
		k := max / l
		return x * k, y * k
	}
	return x, y
}
