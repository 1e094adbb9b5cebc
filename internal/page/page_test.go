package page

import "testing"

func TestRemoveFiresHooksOnce(t *testing.T) {
	doc := NewDocument(Viewport{Width: 800, Height: 600})
	parent := NewElement("section", "", Rect{Width: 800, Height: 400})
	child := NewElement("card", "card", Rect{Width: 100, Height: 100})
	parent.AddChild(child)
	doc.Append(parent)

	var order []string
	parent.OnRemove(func() { order = append(order, "parent") })
	child.OnRemove(func() { order = append(order, "child") })

	parent.Remove()
	parent.Remove()

	if len(order) != 2 || order[0] != "child" || order[1] != "parent" {
		t.Fatalf("hook order = %v, want [child parent]", order)
	}
	if !child.Removed() {
		t.Error("child should be marked removed with its parent")
	}
	if doc.ByID("card") != nil {
		t.Error("removed element should not be found by id")
	}
}

func TestOnRemoveCancel(t *testing.T) {
	e := NewElement("a", "", Rect{})
	fired := false
	cancel := e.OnRemove(func() { fired = true })
	cancel()
	cancel()
	e.Remove()
	if fired {
		t.Error("cancelled hook should not fire")
	}
}

func TestOnRemoveAfterRemovalRunsImmediately(t *testing.T) {
	e := NewElement("a", "", Rect{})
	e.Remove()
	fired := false
	e.OnRemove(func() { fired = true })
	if !fired {
		t.Error("hook on removed element should run immediately")
	}
}

func TestScrollToClampsAndNotifies(t *testing.T) {
	doc := NewDocument(Viewport{Width: 800, Height: 600})
	doc.Append(NewElement("tall", "", Rect{Width: 800, Height: 2000}))

	var got []float64
	remove := doc.OnScroll(func(y float64) { got = append(got, y) })

	doc.ScrollTo(-50)
	doc.ScrollTo(500)
	doc.ScrollTo(5000)
	remove()
	remove()
	doc.ScrollTo(100)

	want := []float64{0, 500, 1400}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("scroll[%d] = %f, want %f", i, got[i], want[i])
		}
	}
	if doc.ScrollListeners() != 0 {
		t.Errorf("listeners = %d, want 0", doc.ScrollListeners())
	}
}

func TestMovePointerEnterMoveLeave(t *testing.T) {
	doc := NewDocument(Viewport{Width: 800, Height: 600})
	btn := NewElement("btn", "", Rect{X: 100, Y: 100, Width: 100, Height: 50})
	doc.Append(btn)

	var events []PointerEventType
	doc.OnPointer(btn, func(ev PointerEvent) { events = append(events, ev.Type) })

	doc.MovePointer(10, 10)
	doc.MovePointer(150, 120)
	doc.MovePointer(160, 125)
	doc.MovePointer(400, 400)

	want := []PointerEventType{PointerEnter, PointerMove, PointerMove, PointerLeave}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event[%d] = %s, want %s", i, events[i], want[i])
		}
	}
}

func TestRemovedElementGetsNoPointerEvents(t *testing.T) {
	doc := NewDocument(Viewport{Width: 800, Height: 600})
	btn := NewElement("btn", "", Rect{Width: 100, Height: 100})
	doc.Append(btn)

	n := 0
	doc.OnPointer(btn, func(PointerEvent) { n++ })
	btn.Remove()

	doc.DispatchPointer(btn, PointerEvent{Type: PointerMove})
	doc.MovePointer(50, 50)
	if n != 0 {
		t.Errorf("removed element received %d events", n)
	}
	if doc.PointerListeners(btn) != 0 {
		t.Error("pointer listeners should be dropped on removal")
	}
}

func TestTransformGetSet(t *testing.T) {
	tr := Baseline()
	if !tr.IsBaseline() {
		t.Fatal("Baseline should report IsBaseline")
	}
	for _, p := range Properties {
		tr.Set(p, 3)
		if tr.Get(p) != 3 {
			t.Errorf("%s = %f, want 3", p, tr.Get(p))
		}
	}
	tr.Set("bogus", 9)
	if tr.Get("bogus") != 0 {
		t.Error("unknown property should read as 0")
	}
}

func TestMirrorX(t *testing.T) {
	r := Rect{X: 100, Y: 5, Width: 200, Height: 10}.MirrorX(1000)
	if r.X != 700 || r.Y != 5 {
		t.Errorf("mirrored = %+v, want X=700 Y=5", r)
	}
}

func TestScrollIntoView(t *testing.T) {
	doc := NewDocument(Viewport{Width: 800, Height: 600})
	doc.Append(NewElement("hero", "", Rect{Width: 800, Height: 1000}))
	doc.Append(NewElement("contact", "", Rect{Y: 1000, Width: 800, Height: 2000}))

	if !doc.ScrollIntoView("contact", 80) {
		t.Fatal("contact should exist")
	}
	if doc.ScrollY() != 920 {
		t.Errorf("scrollY = %f, want 920", doc.ScrollY())
	}
	if doc.ScrollIntoView("missing", 0) {
		t.Error("missing id reported found")
	}
	if doc.ScrollY() != 920 {
		t.Error("missing id moved the page")
	}
}

func TestMirrorOnFlip(t *testing.T) {
	doc := NewDocument(Viewport{Width: 800, Height: 600})
	card := NewElement("card", "", Rect{X: 100, Width: 200, Height: 100})
	doc.Append(card)
	doc.SetReflow(MirrorOnFlip(LTR))

	doc.SetDirection(RTL, "ar")
	doc.Reflow()
	if card.Box.X != 500 {
		t.Errorf("rtl x = %f, want 500", card.Box.X)
	}
	doc.Reflow()
	if card.Box.X != 500 {
		t.Error("reflow without a flip should not mirror again")
	}
	doc.SetDirection(LTR, "en")
	doc.Reflow()
	if card.Box.X != 100 {
		t.Errorf("ltr x = %f, want 100", card.Box.X)
	}
}

func TestClasses(t *testing.T) {
	doc := NewDocument(Viewport{Width: 800, Height: 600})
	nav := NewElement("nav", "nav", Rect{Width: 800, Height: 80})
	doc.Append(nav)

	nav.AddClass("scrolled")
	nav.AddClass("scrolled")
	if nav.Class != "nav scrolled" {
		t.Errorf("Class = %q", nav.Class)
	}
	if got := doc.Query("scrolled"); len(got) != 1 || got[0] != nav {
		t.Errorf("Query(scrolled) = %v", got)
	}
	if len(doc.Query("nav")) != 1 {
		t.Error("Expected nav to match its first class")
	}

	nav.RemoveClass("scrolled")
	if nav.Class != "nav" || nav.HasClass("scrolled") {
		t.Errorf("Class after remove = %q", nav.Class)
	}
	nav.RemoveClass("missing")
	if nav.Class != "nav" {
		t.Errorf("Removing a missing class changed %q", nav.Class)
	}
}
