package motion

import "github.com/Zachkp/folio/internal/page"

// Lift raises a card slightly while hovered.
type Lift struct {
	el    *page.Element
	f     follower
	scope pointerScope
	state EffectState
}

// AttachLift binds the hover lift to el. A nil or removed el is a silent
// no-op and returns nil.
func AttachLift(doc *page.Document, e Engine, el *page.Element) *Lift {
	if doc == nil || el == nil || el.Removed() {
		return nil
	}
	l := &Lift{el: el, f: follower{engine: e, el: el}}
	l.scope = acquirePointer(doc, el, l.handle, l.Detach)
	return l
}

// State returns idle or tracking.
func (l *Lift) State() EffectState {
	if l == nil {
		return Idle
	}
	return l.state
}

// Detach removes the listeners and settles the card. Safe to call more than
// once.
func (l *Lift) Detach() {
	if l == nil || !l.scope.release() {
		return
	}
	l.state = Idle
	l.f.reset(page.Y, page.Scale)
}

func (l *Lift) handle(ev page.PointerEvent) {
	switch ev.Type {
	case page.PointerEnter:
		l.state = Tracking
		l.f.to(map[page.Property]float64{page.Y: -10, page.Scale: 1.02}, 0.3, EasePower2, 0)
	case page.PointerLeave:
		l.state = Idle
		l.f.to(map[page.Property]float64{page.Y: 0, page.Scale: 1}, 0.3, EasePower2, 0)
	}
}
