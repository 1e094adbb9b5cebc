package motion

import (
	"math"
	"strings"

	"github.com/Zachkp/folio/internal/page"
)

// Mode selects which end of the tween the descriptor's property values
// describe.
type Mode uint8

const (
	// From animates from Props to the element's current values.
	From Mode = iota
	// To animates from the element's current values to Props.
	To
)

func (m Mode) String() string {
	if m == To {
		return "to"
	}
	return "from"
}

// Descriptor is a ready-to-run animation request. Treat it as a value: use
// With to derive a modified copy rather than mutating Props in place.
type Descriptor struct {
	Label    string
	Targets  []*page.Element
	Props    map[page.Property]float64
	Mode     Mode
	Duration float64 // seconds, one iteration
	Ease     string
	Delay    float64 // seconds before the first target starts
	Stagger  float64 // seconds between successive targets
	Repeat   int     // extra iterations, -1 repeats forever
	Yoyo     bool    // alternate direction on each repeat

	// Perspective is written to every target when the tween is created.
	Perspective float64
	// Paused creates the tween without starting it.
	Paused bool
}

// Option adjusts a Descriptor copy.
type Option func(*Descriptor)

// With returns a copy of d with opts applied. Props is cloned so the original
// is never affected.
func (d Descriptor) With(opts ...Option) Descriptor {
	d.Props = cloneProps(d.Props)
	d.Targets = append([]*page.Element(nil), d.Targets...)
	for _, o := range opts {
		o(&d)
	}
	return d
}

// Span returns the time from the first target starting to the last target
// finishing, excluding Delay. Infinite for Repeat < 0.
func (d Descriptor) Span() float64 {
	if d.Repeat < 0 {
		return math.Inf(1)
	}
	n := len(d.Targets)
	if n < 1 {
		n = 1
	}
	return d.Stagger*float64(n-1) + d.Duration*float64(d.Repeat+1)
}

// Total returns Delay plus Span.
func (d Descriptor) Total() float64 {
	return d.Delay + d.Span()
}

// Duration sets the per-iteration duration.
func Duration(s float64) Option { return func(d *Descriptor) { d.Duration = s } }

// Delay sets the start delay.
func Delay(s float64) Option { return func(d *Descriptor) { d.Delay = s } }

// Stagger sets the per-target stagger.
func Stagger(s float64) Option { return func(d *Descriptor) { d.Stagger = s } }

// EaseName sets the easing curve.
func EaseName(name string) Option { return func(d *Descriptor) { d.Ease = name } }

// Prop sets one property value.
func Prop(p page.Property, v float64) Option {
	return func(d *Descriptor) {
		if d.Props == nil {
			d.Props = make(map[page.Property]float64)
		}
		d.Props[p] = v
	}
}

// Repeat sets the repeat count and yoyo flag.
func Repeat(n int, yoyo bool) Option {
	return func(d *Descriptor) {
		d.Repeat = n
		d.Yoyo = yoyo
	}
}

// StartPaused marks the descriptor to be created without playing.
func StartPaused() Option { return func(d *Descriptor) { d.Paused = true } }

// Label names the descriptor in schedules and plans.
func Label(s string) Option { return func(d *Descriptor) { d.Label = s } }

// Targets replaces the target list.
func Targets(els ...*page.Element) Option {
	return func(d *Descriptor) { d.Targets = liveTargets(els) }
}

func cloneProps(in map[page.Property]float64) map[page.Property]float64 {
	out := make(map[page.Property]float64, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// liveTargets drops nil and removed elements.
func liveTargets(els []*page.Element) []*page.Element {
	out := make([]*page.Element, 0, len(els))
	for _, e := range els {
		if e != nil && !e.Removed() {
			out = append(out, e)
		}
	}
	return out
}

// Select resolves "#id" to a single element and ".class" (or a bare name) to
// every element with that class. Missing elements yield an empty slice.
func Select(doc *page.Document, selector string) []*page.Element {
	if doc == nil {
		return nil
	}
	switch {
	case strings.HasPrefix(selector, "#"):
		if e := doc.ByID(selector[1:]); e != nil {
			return []*page.Element{e}
		}
		return nil
	case strings.HasPrefix(selector, "."):
		return doc.Query(selector[1:])
	}
	return doc.Query(selector)
}
