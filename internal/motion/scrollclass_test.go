package motion

import (
	"testing"

	"github.com/Zachkp/folio/internal/page"
)

func TestScrollClassThreshold(t *testing.T) {
	doc, _ := scrollPage()
	nav := page.NewElement("nav", "nav", page.Rect{Width: 800, Height: 80})
	doc.Append(nav)

	w := WatchScroll(doc, nav, 50, "scrolled")
	if w.Past() || nav.HasClass("scrolled") {
		t.Fatal("Expected no class at the top of the page")
	}

	doc.ScrollTo(50)
	if nav.HasClass("scrolled") {
		t.Error("Expected no class exactly at the threshold")
	}
	doc.ScrollTo(51)
	if !w.Past() || !nav.HasClass("scrolled") {
		t.Errorf("class = %q after scrolling past 50", nav.Class)
	}
	doc.ScrollTo(400)
	if nav.Class != "nav scrolled" {
		t.Errorf("class = %q, want it added once", nav.Class)
	}
	doc.ScrollTo(10)
	if w.Past() || nav.HasClass("scrolled") {
		t.Errorf("class = %q after scrolling back up", nav.Class)
	}
}

func TestScrollClassStartsScrolled(t *testing.T) {
	doc, _ := scrollPage()
	nav := page.NewElement("nav", "nav", page.Rect{Width: 800, Height: 80})
	doc.Append(nav)
	doc.ScrollTo(300)

	WatchScroll(doc, nav, 50, "scrolled")
	if !nav.HasClass("scrolled") {
		t.Error("Expected the current offset to apply on start")
	}
}

func TestScrollClassDetach(t *testing.T) {
	doc, _ := scrollPage()
	nav := page.NewElement("nav", "nav", page.Rect{Width: 800, Height: 80})
	doc.Append(nav)
	before := doc.ScrollListeners()

	w := WatchScroll(doc, nav, 50, "scrolled")
	doc.ScrollTo(100)
	if doc.ScrollListeners() != before+1 {
		t.Fatalf("listeners = %d, want %d", doc.ScrollListeners(), before+1)
	}

	w.Detach()
	w.Detach()
	if doc.ScrollListeners() != before {
		t.Errorf("listeners = %d after detach, want %d", doc.ScrollListeners(), before)
	}
	if nav.HasClass("scrolled") {
		t.Error("Expected detach to remove the class")
	}
	doc.ScrollTo(200)
	if nav.HasClass("scrolled") {
		t.Error("Expected a detached watcher to ignore scrolling")
	}
}

func TestScrollClassRemovedElement(t *testing.T) {
	doc, _ := scrollPage()
	nav := page.NewElement("nav", "nav", page.Rect{Width: 800, Height: 80})
	doc.Append(nav)
	before := doc.ScrollListeners()

	WatchScroll(doc, nav, 50, "scrolled")
	nav.Remove()
	if doc.ScrollListeners() != before {
		t.Errorf("listeners = %d after removal, want %d", doc.ScrollListeners(), before)
	}

	var nilWatch *ScrollClass
	nilWatch.Detach()
	if WatchScroll(doc, nav, 50, "scrolled") != nil || nilWatch.Past() {
		t.Error("Expected a removed element to be a no-op")
	}
}

func TestScrollClassSpec(t *testing.T) {
	doc, _ := scrollPage()
	nav := page.NewElement("nav", "nav", page.Rect{Width: 800, Height: 80})
	doc.Append(nav)

	spec := WatchScroll(doc, nav, 50, "scrolled").Spec()
	if spec.Kind != "scroll-class" || spec.Selector != "#nav" || spec.Class != "scrolled" || spec.Params["offset"] != 50 {
		t.Errorf("spec = %+v", spec)
	}
}
