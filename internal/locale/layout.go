package locale

import (
	"github.com/Zachkp/folio/internal/motion"
	"github.com/Zachkp/folio/internal/page"
)

// LayoutController keeps a document's dir and lang attributes in step with
// a State and re-measures scroll bindings after every change.
type LayoutController struct {
	doc   *page.Document
	reg   *motion.Registry
	unsub func()
	syncs int
}

// NewLayoutController applies the current locale to doc and follows state
// from then on. reg may be nil when nothing is scroll-bound.
func NewLayoutController(state *State, doc *page.Document, reg *motion.Registry) *LayoutController {
	c := &LayoutController{doc: doc, reg: reg}
	c.Apply(state.Snapshot())
	c.unsub = state.Subscribe(c.Apply)
	return c
}

// Apply sets dir and lang, lets the document reflow, and only then refreshes
// the scroll bindings so they measure the new geometry.
func (c *LayoutController) Apply(s Snapshot) {
	c.doc.SetDirection(s.Dir, string(s.Tag))
	c.doc.Reflow()
	if c.reg != nil {
		c.reg.Refresh()
	}
	c.syncs++
}

// Syncs returns how many times the layout has been applied.
func (c *LayoutController) Syncs() int {
	return c.syncs
}

// Close stops following the state. Safe to call more than once.
func (c *LayoutController) Close() {
	if c.unsub != nil {
		c.unsub()
		c.unsub = nil
	}
}
