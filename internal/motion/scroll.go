package motion

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/Zachkp/folio/internal/page"
)

// Edge selects which edge of the trigger element an Anchor measures.
type Edge uint8

// Element edges.
const (
	EdgeTop Edge = iota
	EdgeCenter
	EdgeBottom
)

// Anchor pins an element edge to a viewport line: the trigger point is the
// scroll offset at which Edge sits Viewport (0..1 from the top) down the
// viewport. "top 80%" is Anchor{EdgeTop, 0.8}.
type Anchor struct {
	Edge     Edge
	Viewport float64
}

var edgeNames = map[string]Edge{"top": EdgeTop, "center": EdgeCenter, "bottom": EdgeBottom}

var viewportNames = map[string]float64{"top": 0, "center": 0.5, "bottom": 1}

// ParseAnchor reads "<edge> <viewport>" where edge is top|center|bottom and
// viewport is a percentage or top|center|bottom, e.g. "top 80%".
func ParseAnchor(s string) (a Anchor, err error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return a, errors.Errorf("anchor %q: want \"<edge> <viewport>\"", s)
	}
	edge, ok := edgeNames[fields[0]]
	if !ok {
		return a, errors.Errorf("anchor %q: unknown edge %q", s, fields[0])
	}
	a.Edge = edge
	if v, ok := viewportNames[fields[1]]; ok {
		a.Viewport = v
		return a, nil
	}
	pct := strings.TrimSuffix(fields[1], "%")
	var v float64
	v, err = strconv.ParseFloat(pct, 64)
	if err != nil {
		return a, errors.Wrapf(err, "anchor %q: bad viewport position", s)
	}
	a.Viewport = v / 100
	return a, nil
}

// String renders the anchor in ParseAnchor syntax.
func (a Anchor) String() string {
	edge := "top"
	switch a.Edge {
	case EdgeCenter:
		edge = "center"
	case EdgeBottom:
		edge = "bottom"
	}
	pct := math.Round(a.Viewport*100*1e4) / 1e4
	return edge + " " + strconv.FormatFloat(pct, 'f', -1, 64) + "%"
}

// offset returns the scroll position at which the anchor fires for box.
func (a Anchor) offset(box page.Rect, vh float64) float64 {
	var y float64
	switch a.Edge {
	case EdgeTop:
		y = box.Top()
	case EdgeCenter:
		_, y = box.Center()
	case EdgeBottom:
		y = box.Bottom()
	}
	return y - a.Viewport*vh
}

// Action is what a binding does to its tween on a boundary crossing.
type Action uint8

// Scroll actions.
const (
	None Action = iota
	Play
	Reverse
	Restart
	Reset
)

// Actions maps the four boundary crossings to actions. Enter and Leave happen
// while scrolling down past the start and end; EnterBack and LeaveBack while
// scrolling back up past the end and start.
type Actions struct {
	Enter, Leave, EnterBack, LeaveBack Action
}

// Trigger configures a scroll binding.
type Trigger struct {
	Start   Anchor
	End     Anchor
	Actions Actions
	// Scrub ties tween progress directly to scroll position between Start
	// and End instead of firing Actions.
	Scrub bool
}

// RevealTrigger plays when the element's top reaches 80% of the viewport and
// reverses when its bottom passes 20% on the way out, in either direction.
func RevealTrigger() Trigger {
	return Trigger{
		Start:   Anchor{Edge: EdgeTop, Viewport: 0.8},
		End:     Anchor{Edge: EdgeBottom, Viewport: 0.2},
		Actions: Actions{Enter: Play, Leave: Reverse, EnterBack: Play, LeaveBack: Reverse},
	}
}

// ParallaxTrigger scrubs while any part of the element is on screen.
func ParallaxTrigger() Trigger {
	return Trigger{
		Start: Anchor{Edge: EdgeTop, Viewport: 1},
		End:   Anchor{Edge: EdgeBottom, Viewport: 0},
		Scrub: true,
	}
}

type region int8

const (
	before region = iota - 1
	inside
	after
)

// Binding arms one tween against the scroll position of one element.
type Binding struct {
	el      *page.Element
	doc     *page.Document
	engine  Engine
	tween   *Tween
	trigger Trigger

	start, end float64
	region     region

	unscroll func()
	unremove func()
	registry *Registry
	detached bool
}

// Element returns the trigger element.
func (b *Binding) Element() *page.Element { return b.el }

// Tween returns the bound tween.
func (b *Binding) Tween() *Tween { return b.tween }

// Bounds returns the scroll offsets at which the binding starts and ends.
func (b *Binding) Bounds() (start, end float64) { return b.start, b.end }

// Trigger returns the trigger configuration.
func (b *Binding) Trigger() Trigger { return b.trigger }

// Active reports whether the binding is still attached.
func (b *Binding) Active() bool { return b != nil && !b.detached }

// Refresh re-measures the trigger offsets from the element's current box and
// re-evaluates the scroll position against them.
func (b *Binding) Refresh() {
	if !b.Active() {
		return
	}
	vh := b.doc.Viewport.Height
	b.start = b.trigger.Start.offset(b.el.Box, vh)
	b.end = b.trigger.End.offset(b.el.Box, vh)
	if b.end < b.start {
		b.end = b.start
	}
	b.update(b.doc.ScrollY())
}

// Detach unregisters the scroll listener, cancels the tween and restores the
// targets to their resting, fully visible state. Safe to call more than once
// and on a nil binding.
func (b *Binding) Detach() {
	if b == nil || b.detached {
		return
	}
	b.detached = true
	b.unscroll()
	b.unremove()
	b.engine.Cancel(b.tween)
	b.tween.Revert()
	if b.registry != nil {
		b.registry.forget(b)
	}
}

func (b *Binding) update(y float64) {
	if b.detached {
		return
	}
	if b.trigger.Scrub {
		span := b.end - b.start
		p := 1.0
		if span > 0 {
			p = clamp((y-b.start)/span, 0, 1)
		} else if y < b.start {
			p = 0
		}
		b.tween.Seek(p)
		return
	}
	next := inside
	switch {
	case y < b.start:
		next = before
	case y > b.end:
		next = after
	}
	prev := b.region
	b.region = next
	a := b.trigger.Actions
	switch {
	case prev == before && next == inside:
		b.do(a.Enter)
	case prev == before && next == after:
		b.do(a.Enter)
		b.do(a.Leave)
	case prev == inside && next == after:
		b.do(a.Leave)
	case prev == after && next == inside:
		b.do(a.EnterBack)
	case prev == after && next == before:
		b.do(a.EnterBack)
		b.do(a.LeaveBack)
	case prev == inside && next == before:
		b.do(a.LeaveBack)
	}
}

func (b *Binding) do(a Action) {
	switch a {
	case Play:
		b.tween.Play()
	case Reverse:
		b.tween.Reverse()
	case Restart:
		b.tween.Restart()
	case Reset:
		b.tween.Pause()
		b.tween.Seek(0)
	}
}

// Registry holds every scroll binding of a document. An element has at most
// one binding; binding it again tears the old one down first.
type Registry struct {
	doc      *page.Document
	engine   Engine
	bindings []*Binding
}

// NewRegistry creates an empty registry for doc.
func NewRegistry(doc *page.Document, e Engine) *Registry {
	return &Registry{doc: doc, engine: e}
}

// Bind arms d against el's scroll position. If d has no targets, el is the
// target. A nil or removed el is a silent no-op and returns nil.
func (r *Registry) Bind(el *page.Element, d Descriptor, trig Trigger) *Binding {
	if el == nil || el.Removed() {
		return nil
	}
	if old := r.Lookup(el); old != nil {
		old.Detach()
	}
	if len(d.Targets) == 0 {
		d = d.With(Targets(el))
	}
	d.Paused = true
	b := &Binding{
		el:       el,
		doc:      r.doc,
		engine:   r.engine,
		trigger:  trig,
		region:   before,
		registry: r,
	}
	b.tween = r.engine.Create(d)
	b.unscroll = r.doc.OnScroll(b.update)
	b.unremove = el.OnRemove(b.Detach)
	r.bindings = append(r.bindings, b)
	b.Refresh()
	return b
}

// Lookup returns the live binding for el, or nil.
func (r *Registry) Lookup(el *page.Element) *Binding {
	for _, b := range r.bindings {
		if b.el == el {
			return b
		}
	}
	return nil
}

// Len returns the number of live bindings.
func (r *Registry) Len() int { return len(r.bindings) }

// Refresh re-measures every live binding. Call it after anything that moves
// element boxes.
func (r *Registry) Refresh() {
	for _, b := range append([]*Binding(nil), r.bindings...) {
		b.Refresh()
	}
}

// Detach tears down every binding.
func (r *Registry) Detach() {
	for _, b := range append([]*Binding(nil), r.bindings...) {
		b.Detach()
	}
}

func (r *Registry) forget(b *Binding) {
	for i, x := range r.bindings {
		if x == b {
			copy(r.bindings[i:], r.bindings[i+1:])
			r.bindings[len(r.bindings)-1] = nil
			r.bindings = r.bindings[:len(r.bindings)-1]
			return
		}
	}
}
