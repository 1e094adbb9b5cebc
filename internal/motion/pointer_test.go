package motion

import (
	"testing"

	"github.com/Zachkp/folio/internal/page"
)

// button spans x 100..300, y 100..200 with its center at (200, 150).
func buttonPage() (*page.Document, *page.Element) {
	doc := page.NewDocument(page.Viewport{Width: 800, Height: 600})
	btn := page.NewElement("cta", "btn", page.Rect{X: 100, Y: 100, Width: 200, Height: 100})
	doc.Append(btn)
	return doc, btn
}

func settle(k *Ticker) {
	for i := 0; i < 8; i++ {
		k.Advance(0.25)
	}
}

func TestMagneticFollowsPointer(t *testing.T) {
	doc, btn := buttonPage()
	k := NewTicker()
	m := AttachMagnetic(doc, k, btn, DefaultMagnetic())

	doc.MovePointer(250, 170)
	if m.State() != Tracking {
		t.Fatalf("state = %v, want tracking", m.State())
	}
	x, y := m.Target()
	if !near(x, 15) || !near(y, 6) {
		t.Errorf("target = (%f, %f), want (15, 6)", x, y)
	}
	if btn.Transform.X != 0 {
		t.Error("displacement should ease in, not snap")
	}
	settle(k)
	if !near(btn.Transform.X, 15) || !near(btn.Transform.Y, 6) {
		t.Errorf("settled at (%f, %f), want (15, 6)", btn.Transform.X, btn.Transform.Y)
	}
}

func TestMagneticLeaveReturnsToBaseline(t *testing.T) {
	doc, btn := buttonPage()
	k := NewTicker()
	m := AttachMagnetic(doc, k, btn, DefaultMagnetic())

	for i := 0; i < 50; i++ {
		doc.MovePointer(100+float64(i)*4, 100+float64(i)*2)
		k.Advance(0.05)
	}
	doc.MovePointer(500, 500)
	if m.State() != Idle {
		t.Fatalf("state = %v, want idle", m.State())
	}
	settle(k)

	if !btn.Transform.IsBaseline() {
		t.Errorf("after leave = %+v, want baseline", btn.Transform)
	}
	if k.Tracked() != 0 {
		t.Errorf("tracked = %d, stale move tweens should be gone", k.Tracked())
	}
}

func TestMagneticMaxOffset(t *testing.T) {
	doc, btn := buttonPage()
	opts := DefaultMagnetic()
	opts.MaxOffset = 10
	m := AttachMagnetic(doc, NewTicker(), btn, opts)

	doc.MovePointer(300, 150)
	x, y := m.Target()
	if !near(x, 10) || y != 0 {
		t.Errorf("target = (%f, %f), want (10, 0)", x, y)
	}
}

func TestMagneticDetach(t *testing.T) {
	doc, btn := buttonPage()
	k := NewTicker()
	m := AttachMagnetic(doc, k, btn, DefaultMagnetic())

	doc.MovePointer(280, 180)
	k.Advance(0.1)
	m.Detach()
	m.Detach()

	if !btn.Transform.IsBaseline() {
		t.Errorf("after detach = %+v, want baseline", btn.Transform)
	}
	if doc.PointerListeners(btn) != 0 {
		t.Errorf("listeners = %d, want 0", doc.PointerListeners(btn))
	}
	doc.MovePointer(280, 180)
	settle(k)
	if !btn.Transform.IsBaseline() {
		t.Error("detached effect must not react to the pointer")
	}

	var nilEffect *Magnetic
	nilEffect.Detach()
	if nilEffect.State() != Idle {
		t.Error("nil effect should report idle")
	}
}

func TestMagneticDetachesOnRemoval(t *testing.T) {
	doc, btn := buttonPage()
	k := NewTicker()
	m := AttachMagnetic(doc, k, btn, DefaultMagnetic())

	doc.MovePointer(280, 180)
	k.Advance(0.1)
	btn.Remove()

	if m.State() != Idle || !btn.Transform.IsBaseline() {
		t.Errorf("state = %v transform = %+v after removal", m.State(), btn.Transform)
	}
	m.Detach()
}

func TestAttachToMissingElement(t *testing.T) {
	doc, btn := buttonPage()
	k := NewTicker()
	if AttachMagnetic(doc, k, nil, DefaultMagnetic()) != nil {
		t.Error("magnetic on nil element should be nil")
	}
	if AttachTilt(doc, k, nil, nil, DefaultTilt()) != nil {
		t.Error("tilt on nil element should be nil")
	}
	btn.Remove()
	if AttachLift(doc, k, btn) != nil {
		t.Error("lift on removed element should be nil")
	}
}

func cardPage() (*page.Document, *page.Element, *page.Element) {
	doc := page.NewDocument(page.Viewport{Width: 800, Height: 600})
	card := page.NewElement("project-1", "project-card", page.Rect{Width: 400, Height: 300})
	img := page.NewElement("", "project-image", page.Rect{Width: 400, Height: 200})
	card.AddChild(img)
	doc.Append(card)
	return doc, card, img
}

func TestTiltAngles(t *testing.T) {
	doc, card, img := cardPage()
	k := NewTicker()
	tilt := AttachTilt(doc, k, card, img, DefaultTilt())

	doc.MovePointer(300, 50)
	rx, ry := tilt.Angles()
	if !near(rx, -5) || !near(ry, -5) {
		t.Errorf("angles = (%f, %f), want (-5, -5)", rx, ry)
	}
	if card.Transform.Perspective != 1000 {
		t.Errorf("perspective = %f, want 1000", card.Transform.Perspective)
	}
	settle(k)
	if !near(card.Transform.RotateX, -5) || !near(img.Transform.Scale, 1.1) {
		t.Errorf("card = %+v img = %+v", card.Transform, img.Transform)
	}
}

func TestTiltLeaveReturnsToBaseline(t *testing.T) {
	doc, card, img := cardPage()
	k := NewTicker()
	tilt := AttachTilt(doc, k, card, img, DefaultTilt())

	for i := 0; i < 40; i++ {
		doc.MovePointer(float64(i)*10, float64(i)*7)
		k.Advance(0.05)
	}
	doc.LeavePage()
	settle(k)

	if tilt.State() != Idle {
		t.Errorf("state = %v, want idle", tilt.State())
	}
	if !card.Transform.IsBaseline() || !img.Transform.IsBaseline() {
		t.Errorf("card = %+v img = %+v, want baseline", card.Transform, img.Transform)
	}
}

func TestTiltMaxAngle(t *testing.T) {
	doc, card, _ := cardPage()
	opts := DefaultTilt()
	opts.MaxAngle = 3
	tilt := AttachTilt(doc, NewTicker(), card, nil, opts)

	doc.MovePointer(0, 0)
	rx, ry := tilt.Angles()
	if rx != -3 || ry != 3 {
		t.Errorf("angles = (%f, %f), want (-3, 3)", rx, ry)
	}
}

func TestLiftHover(t *testing.T) {
	doc, card, _ := cardPage()
	k := NewTicker()
	l := AttachLift(doc, k, card)

	doc.MovePointer(10, 10)
	settle(k)
	if card.Transform.Y != -10 || !near(card.Transform.Scale, 1.02) {
		t.Errorf("hovered = %+v, want y -10 scale 1.02", card.Transform)
	}
	doc.LeavePage()
	settle(k)
	if !card.Transform.IsBaseline() {
		t.Errorf("after leave = %+v", card.Transform)
	}
	l.Detach()
	l.Detach()
}
