package locale

import (
	"testing"

	"github.com/Zachkp/folio/internal/motion"
	"github.com/Zachkp/folio/internal/page"
)

func TestLayoutFollowsToggle(t *testing.T) {
	doc := page.NewDocument(page.Viewport{Width: 800, Height: 600})
	s := NewState(English)
	c := NewLayoutController(s, doc, nil)
	defer c.Close()

	s.Toggle()
	if doc.Dir() != page.RTL || doc.Lang() != "ar" {
		t.Errorf("after toggle dir=%s lang=%s, want rtl ar", doc.Dir(), doc.Lang())
	}
	s.Toggle()
	if doc.Dir() != page.LTR || doc.Lang() != "en" {
		t.Errorf("after round trip dir=%s lang=%s, want ltr en", doc.Dir(), doc.Lang())
	}
}

func TestBindingsRemeasureAfterDirectionChange(t *testing.T) {
	doc := page.NewDocument(page.Viewport{Width: 800, Height: 600})
	doc.Append(page.NewElement("filler", "", page.Rect{Width: 800, Height: 3000}))
	card := page.NewElement("card", "card", page.Rect{Y: 1000, Width: 300, Height: 200})
	doc.Append(card)

	// Arabic copy wraps onto more lines, pushing the card down.
	var dirSeenByReflow page.Direction
	doc.SetReflow(func(d *page.Document) {
		dirSeenByReflow = d.Dir()
		if d.Dir() == page.RTL {
			card.Box.Y = 1200
		} else {
			card.Box.Y = 1000
		}
	})

	reg := motion.NewRegistry(doc, motion.NewTicker())
	b := reg.Bind(card, motion.Defaults.FadeInUp(nil), motion.RevealTrigger())
	s := NewState(English)
	c := NewLayoutController(s, doc, reg)
	defer c.Close()

	s.Toggle()
	if dirSeenByReflow != page.RTL {
		t.Errorf("reflow saw dir %s, want rtl already applied", dirSeenByReflow)
	}
	if start, _ := b.Bounds(); start < 719 || start > 721 {
		t.Errorf("binding start = %f, want 720 from the moved box", start)
	}
	if c.Syncs() != 2 {
		t.Errorf("syncs = %d, want 2", c.Syncs())
	}

	c.Close()
	s.Toggle()
	if doc.Dir() != page.RTL {
		t.Error("closed controller still followed the state")
	}
}
