package motion

import (
	"github.com/tanema/gween"

	"github.com/Zachkp/folio/internal/page"
)

// ScrollOptions tunes smooth anchor scrolling.
type ScrollOptions struct {
	Duration float64
	Ease     string
	// Offset is subtracted from the target's top, leaving room for a fixed
	// header.
	Offset float64
}

// DefaultScroll returns the nav link tuning.
func DefaultScroll() ScrollOptions {
	return ScrollOptions{Duration: 1, Ease: EasePower2, Offset: 80}
}

// Scroller animates the document's scroll offset toward anchors. Starting a
// new scroll cancels the one in flight.
type Scroller struct {
	doc    *page.Document
	engine Engine
	opts   ScrollOptions

	remove func()
	target float64
}

// NewScroller returns a Scroller for doc.
func NewScroller(doc *page.Document, e Engine, opts ScrollOptions) *Scroller {
	return &Scroller{doc: doc, engine: e, opts: opts}
}

// To starts a smooth scroll to the element with the given id and reports
// whether it exists. A missing id leaves the page untouched.
func (s *Scroller) To(id string) bool {
	el := s.doc.ByID(id)
	if el == nil {
		return false
	}
	s.ToY(el.Box.Top() - s.opts.Offset)
	return true
}

// ToY starts a smooth scroll to offset y, clamped to the scrollable range.
func (s *Scroller) ToY(y float64) {
	s.Cancel()
	if m := s.doc.MaxScroll(); y > m {
		y = m
	}
	if y < 0 {
		y = 0
	}
	s.target = y
	if s.opts.Duration <= 0 {
		s.doc.ScrollTo(y)
		return
	}
	tw := gween.New(float32(s.doc.ScrollY()), float32(y), float32(s.opts.Duration), Ease(s.opts.Ease))
	s.remove = s.engine.OnFrame(func(dt float64) {
		v, done := tw.Update(float32(dt))
		if done {
			s.doc.ScrollTo(s.target)
			s.Cancel()
			return
		}
		s.doc.ScrollTo(float64(v))
	})
}

// Scrolling reports whether a scroll is in flight.
func (s *Scroller) Scrolling() bool {
	return s.remove != nil
}

// Cancel stops the scroll in flight, leaving the offset where it is.
func (s *Scroller) Cancel() {
	if s.remove != nil {
		s.remove()
		s.remove = nil
	}
}
