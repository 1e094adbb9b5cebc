package motion

import (
	"reflect"
	"testing"
)

func TestScopeRevertsInReverseOrder(t *testing.T) {
	var order []string
	s := NewScope()
	s.Track(DetachFunc(func() { order = append(order, "a") }))
	s.Track(DetachFunc(func() { order = append(order, "b") }))
	s.Track(nil)

	s.Revert()
	s.Revert()

	if !reflect.DeepEqual(order, []string{"b", "a"}) {
		t.Errorf("order = %v, want [b a]", order)
	}
	if !s.Reverted() || s.Len() != 0 {
		t.Error("scope should be empty and reverted")
	}

	late := false
	s.Track(DetachFunc(func() { late = true }))
	if !late {
		t.Error("tracking into a reverted scope should detach at once")
	}
}

func TestScopeOwnsMotion(t *testing.T) {
	doc, card := scrollPage()
	k := NewTicker()
	reg := NewRegistry(doc, k)
	s := NewScope()

	s.Track(reg.Bind(card, reveal(), RevealTrigger()))
	s.Track(AttachMagnetic(doc, k, card, DefaultMagnetic()))
	s.Track(AttachMagnetic(doc, k, nil, DefaultMagnetic()))
	s.Tween(k.Create(Defaults.Float(card)))
	s.Run(cascade(fourBoxes()).Play(k))

	k.Advance(0.5)
	s.Revert()
	k.Advance(0.5)

	if reg.Len() != 0 || doc.ScrollListeners() != 0 {
		t.Error("scroll binding survived revert")
	}
	if doc.PointerListeners(card) != 0 {
		t.Error("pointer listener survived revert")
	}
	if !card.Transform.IsBaseline() {
		t.Errorf("card = %+v, want baseline", card.Transform)
	}
	if k.Tracked() != 0 {
		t.Errorf("tracked = %d, want 0", k.Tracked())
	}
}
