package motion

import (
	"testing"

	"github.com/Zachkp/folio/internal/page"
)

func TestScrollerGlidesToAnchor(t *testing.T) {
	doc := page.NewDocument(page.Viewport{Width: 800, Height: 600})
	doc.Append(page.NewElement("hero", "section", page.Rect{Width: 800, Height: 1000}))
	doc.Append(page.NewElement("projects", "section", page.Rect{Y: 1000, Width: 800, Height: 2000}))
	k := NewTicker()
	s := NewScroller(doc, k, DefaultScroll())

	if !s.To("projects") {
		t.Fatal("projects should exist")
	}
	k.Advance(0.5)
	if y := doc.ScrollY(); y <= 0 || y >= 920 {
		t.Errorf("mid-scroll y = %f, want between 0 and 920", y)
	}
	k.Advance(0.5)
	if doc.ScrollY() != 920 {
		t.Errorf("y = %f, want 920", doc.ScrollY())
	}
	if s.Scrolling() {
		t.Error("scroll should be finished")
	}
}

func TestScrollerMissingAnchor(t *testing.T) {
	doc := page.NewDocument(page.Viewport{Width: 800, Height: 600})
	doc.Append(page.NewElement("hero", "section", page.Rect{Width: 800, Height: 3000}))
	doc.ScrollTo(300)
	s := NewScroller(doc, NewTicker(), DefaultScroll())

	if s.To("nowhere") {
		t.Error("missing anchor reported found")
	}
	if doc.ScrollY() != 300 || s.Scrolling() {
		t.Error("missing anchor must leave the page alone")
	}
}

func TestScrollerRetargets(t *testing.T) {
	doc := page.NewDocument(page.Viewport{Width: 800, Height: 600})
	doc.Append(page.NewElement("a", "", page.Rect{Y: 500, Width: 800, Height: 100}))
	doc.Append(page.NewElement("b", "", page.Rect{Y: 2000, Width: 800, Height: 1000}))
	k := NewTicker()
	s := NewScroller(doc, k, ScrollOptions{Duration: 1, Ease: EaseNone})

	s.To("b")
	k.Advance(0.5)
	s.To("a")
	k.Advance(0.5)
	k.Advance(0.5)
	if doc.ScrollY() != 500 {
		t.Errorf("y = %f, want 500", doc.ScrollY())
	}
}
