package motion

import (
	"sort"
	"strings"

	"github.com/Zachkp/folio/internal/page"
)

// The types below are the wire form of an orchestration plan: what the page
// script needs to rebuild the same tweens, timelines, scroll bindings and
// pointer effects against the real DOM.

// TweenSpec is a serializable Descriptor.
type TweenSpec struct {
	Label    string             `json:"label,omitempty" yaml:"label,omitempty"`
	Selector string             `json:"selector" yaml:"selector"`
	Mode     string             `json:"mode" yaml:"mode"`
	Props    map[string]float64 `json:"props" yaml:"props"`
	Duration float64            `json:"duration" yaml:"duration"`
	Ease     string             `json:"ease" yaml:"ease"`
	Delay    float64            `json:"delay,omitempty" yaml:"delay,omitempty"`
	Stagger  float64            `json:"stagger,omitempty" yaml:"stagger,omitempty"`
	Repeat   int                `json:"repeat,omitempty" yaml:"repeat,omitempty"`
	Yoyo     bool               `json:"yoyo,omitempty" yaml:"yoyo,omitempty"`
}

// StepSpec is one timeline step with its computed schedule.
type StepSpec struct {
	Tween    TweenSpec `json:"tween" yaml:"tween"`
	Position string    `json:"position,omitempty" yaml:"position,omitempty"`
	Start    float64   `json:"start" yaml:"start"`
	End      float64   `json:"end" yaml:"end"`
}

// TimelineSpec is a serializable Timeline.
type TimelineSpec struct {
	Label    string     `json:"label" yaml:"label"`
	Delay    float64    `json:"delay" yaml:"delay"`
	Duration float64    `json:"duration" yaml:"duration"`
	Steps    []StepSpec `json:"steps" yaml:"steps"`
}

// BindingSpec is a serializable scroll binding.
type BindingSpec struct {
	Trigger string    `json:"trigger" yaml:"trigger"`
	Start   string    `json:"start" yaml:"start"`
	End     string    `json:"end" yaml:"end"`
	Scrub   bool      `json:"scrub,omitempty" yaml:"scrub,omitempty"`
	Actions string    `json:"toggleActions,omitempty" yaml:"toggleActions,omitempty"`
	Tween   TweenSpec `json:"tween" yaml:"tween"`
}

// EffectSpec is a serializable pointer effect.
type EffectSpec struct {
	Kind     string             `json:"kind" yaml:"kind"`
	Selector string             `json:"selector" yaml:"selector"`
	Class    string             `json:"class,omitempty" yaml:"class,omitempty"`
	Params   map[string]float64 `json:"params,omitempty" yaml:"params,omitempty"`
	Eases    map[string]string  `json:"eases,omitempty" yaml:"eases,omitempty"`
}

// InteractionSpec is a tween played when a UI event fires, such as the
// mobile menu opening.
type InteractionSpec struct {
	On    string    `json:"on" yaml:"on"`
	Tween TweenSpec `json:"tween" yaml:"tween"`
}

// Plan is everything one section asks of the motion layer.
type Plan struct {
	Section      string            `json:"section" yaml:"section"`
	Timelines    []TimelineSpec    `json:"timelines,omitempty" yaml:"timelines,omitempty"`
	Bindings     []BindingSpec     `json:"bindings,omitempty" yaml:"bindings,omitempty"`
	Idle         []TweenSpec       `json:"idle,omitempty" yaml:"idle,omitempty"`
	Effects      []EffectSpec      `json:"effects,omitempty" yaml:"effects,omitempty"`
	Interactions []InteractionSpec `json:"interactions,omitempty" yaml:"interactions,omitempty"`
}

// SelectorFor renders elements as a CSS selector list, preferring ids.
func SelectorFor(els []*page.Element) string {
	parts := make([]string, 0, len(els))
	seen := make(map[string]bool, len(els))
	for _, e := range els {
		var s string
		switch {
		case e.ID != "":
			s = "#" + e.ID
		case strings.TrimSpace(e.Class) != "":
			s = "." + strings.Join(strings.Fields(e.Class), ".")
		default:
			continue
		}
		if !seen[s] {
			seen[s] = true
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}

// Spec converts d to its wire form.
func (d Descriptor) Spec() TweenSpec {
	props := make(map[string]float64, len(d.Props))
	for p, v := range d.Props {
		props[string(p)] = v
	}
	return TweenSpec{
		Label:    d.Label,
		Selector: SelectorFor(d.Targets),
		Mode:     d.Mode.String(),
		Props:    props,
		Duration: d.Duration,
		Ease:     d.Ease,
		Delay:    d.Delay,
		Stagger:  d.Stagger,
		Repeat:   d.Repeat,
		Yoyo:     d.Yoyo,
	}
}

// Spec converts tl to its wire form, schedule included.
func (tl *Timeline) Spec() TimelineSpec {
	sched := tl.Schedule()
	out := TimelineSpec{Label: tl.Label, Delay: tl.Delay, Duration: tl.Duration()}
	for i, s := range tl.steps {
		out.Steps = append(out.Steps, StepSpec{
			Tween:    s.desc.Spec(),
			Position: sched[i].Position,
			Start:    sched[i].Start,
			End:      sched[i].End,
		})
	}
	return out
}

// Spec converts b to its wire form.
func (b *Binding) Spec() BindingSpec {
	out := BindingSpec{
		Trigger: SelectorFor([]*page.Element{b.el}),
		Start:   b.trigger.Start.String(),
		End:     b.trigger.End.String(),
		Scrub:   b.trigger.Scrub,
		Tween:   b.tween.Descriptor().Spec(),
	}
	if !b.trigger.Scrub {
		out.Actions = b.trigger.Actions.String()
	}
	return out
}

// Specs returns the wire form of every live binding, ordered by trigger.
func (r *Registry) Specs() []BindingSpec {
	out := make([]BindingSpec, 0, len(r.bindings))
	for _, b := range r.bindings {
		out = append(out, b.Spec())
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Trigger < out[j].Trigger })
	return out
}

// Spec converts m to its wire form.
func (m *Magnetic) Spec() EffectSpec {
	return EffectSpec{
		Kind:     "magnetic",
		Selector: SelectorFor([]*page.Element{m.el}),
		Params: map[string]float64{
			"strength":  m.opts.Strength,
			"maxOffset": m.opts.MaxOffset,
			"follow":    m.opts.Follow,
			"return":    m.opts.Return,
		},
		Eases: map[string]string{"follow": m.opts.FollowEase, "return": m.opts.ReturnEase},
	}
}

// Spec converts t to its wire form.
func (t *Tilt) Spec() EffectSpec {
	return EffectSpec{
		Kind:     "tilt",
		Selector: SelectorFor([]*page.Element{t.card}),
		Params: map[string]float64{
			"divisor":     t.opts.Divisor,
			"maxAngle":    t.opts.MaxAngle,
			"perspective": t.opts.Perspective,
			"imageScale":  t.opts.ImageScale,
			"duration":    t.opts.Duration,
		},
		Eases: map[string]string{"move": t.opts.Ease},
	}
}

// Spec converts l to its wire form.
func (l *Lift) Spec() EffectSpec {
	return EffectSpec{
		Kind:     "lift",
		Selector: SelectorFor([]*page.Element{l.el}),
		Params:   map[string]float64{"y": -10, "scale": 1.02, "duration": 0.3},
	}
}

var actionNames = [...]string{None: "none", Play: "play", Reverse: "reverse", Restart: "restart", Reset: "reset"}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "none"
}

// String renders the four actions in toggleActions order.
func (a Actions) String() string {
	return a.Enter.String() + " " + a.Leave.String() + " " + a.EnterBack.String() + " " + a.LeaveBack.String()
}
