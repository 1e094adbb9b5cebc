package motion

import "github.com/Zachkp/folio/internal/page"

// MagneticOptions tunes a magnetic effect.
type MagneticOptions struct {
	// Strength is the fraction of the pointer's offset from the element
	// center the element follows.
	Strength float64
	// MaxOffset caps the displacement length in pixels. Zero leaves it
	// unbounded.
	MaxOffset float64
	// Follow and Return are the durations of the tracking and spring-back
	// tweens.
	Follow, Return float64
	FollowEase     string
	ReturnEase     string
}

// DefaultMagnetic returns the hero button tuning.
func DefaultMagnetic() MagneticOptions {
	return MagneticOptions{
		Strength:   0.3,
		Follow:     0.3,
		Return:     0.5,
		FollowEase: EasePower2,
		ReturnEase: EaseElastic,
	}
}

// Magnetic pulls an element toward the pointer while the pointer is over it
// and springs it back when the pointer leaves.
type Magnetic struct {
	opts  MagneticOptions
	el    *page.Element
	f     follower
	scope pointerScope

	state   EffectState
	targetX float64
	targetY float64
}

// AttachMagnetic binds the effect to el. A nil or removed el is a silent no-op
// and returns nil; every method is safe on a nil *Magnetic.
func AttachMagnetic(doc *page.Document, e Engine, el *page.Element, opts MagneticOptions) *Magnetic {
	if doc == nil || el == nil || el.Removed() {
		return nil
	}
	m := &Magnetic{opts: opts, el: el, f: follower{engine: e, el: el}}
	m.scope = acquirePointer(doc, el, m.handle, m.Detach)
	return m
}

// State returns idle or tracking.
func (m *Magnetic) State() EffectState {
	if m == nil {
		return Idle
	}
	return m.state
}

// Target returns the displacement the element is easing toward.
func (m *Magnetic) Target() (x, y float64) {
	if m == nil {
		return 0, 0
	}
	return m.targetX, m.targetY
}

// Detach removes the listeners, cancels any motion and puts the element back
// at zero displacement. Safe to call more than once.
func (m *Magnetic) Detach() {
	if m == nil || !m.scope.release() {
		return
	}
	m.state = Idle
	m.targetX, m.targetY = 0, 0
	m.f.reset(page.X, page.Y)
}

func (m *Magnetic) handle(ev page.PointerEvent) {
	switch ev.Type {
	case page.PointerEnter, page.PointerMove:
		cx, cy := m.el.Box.Center()
		dx := (ev.X - cx) * m.opts.Strength
		dy := (ev.Y - cy) * m.opts.Strength
		m.targetX, m.targetY = limit(dx, dy, m.opts.MaxOffset)
		m.state = Tracking
		m.f.to(map[page.Property]float64{page.X: m.targetX, page.Y: m.targetY},
			m.opts.Follow, m.opts.FollowEase, 0)
	case page.PointerLeave:
		m.state = Idle
		m.targetX, m.targetY = 0, 0
		m.f.to(map[page.Property]float64{page.X: 0, page.Y: 0},
			m.opts.Return, m.opts.ReturnEase, 0)
	}
}
