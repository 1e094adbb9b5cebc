package motion

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type anchorKind uint8

const (
	afterPrev anchorKind = iota
	withPrev
	absolute
)

// Position places a timeline step relative to the step before it.
type Position struct {
	kind   anchorKind
	offset float64
}

// AfterPrev starts a step offset seconds after the previous step ends.
// A negative offset overlaps the two. The zero Position is AfterPrev(0).
func AfterPrev(offset float64) Position { return Position{kind: afterPrev, offset: offset} }

// WithPrev starts a step offset seconds after the previous step starts.
func WithPrev(offset float64) Position { return Position{kind: withPrev, offset: offset} }

// At starts a step at an absolute time on the timeline.
func At(t float64) Position { return Position{kind: absolute, offset: t} }

// ParsePosition reads the compact position syntax: "" (sequential),
// "-=0.4" / "+=0.2" (relative to the previous end), "<" or "<0.1"
// (relative to the previous start), or a bare number (absolute).
func ParsePosition(s string) (pos Position, err error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return AfterPrev(0), nil
	case strings.HasPrefix(s, "-=") || strings.HasPrefix(s, "+="):
		var v float64
		v, err = strconv.ParseFloat(s[2:], 64)
		if err != nil {
			return pos, errors.Wrapf(err, "bad relative position %q", s)
		}
		if s[0] == '-' {
			v = -v
		}
		return AfterPrev(v), nil
	case strings.HasPrefix(s, "<"):
		if len(s) == 1 {
			return WithPrev(0), nil
		}
		var v float64
		v, err = strconv.ParseFloat(s[1:], 64)
		if err != nil {
			return pos, errors.Wrapf(err, "bad position %q", s)
		}
		return WithPrev(v), nil
	}
	var v float64
	v, err = strconv.ParseFloat(s, 64)
	if err != nil {
		return pos, errors.Wrapf(err, "bad absolute position %q", s)
	}
	return At(v), nil
}

// String renders p in the compact syntax ParsePosition accepts.
func (p Position) String() string {
	f := func(v float64) string { return strconv.FormatFloat(math.Abs(v), 'f', -1, 64) }
	switch p.kind {
	case withPrev:
		if p.offset == 0 {
			return "<"
		}
		return "<" + strconv.FormatFloat(p.offset, 'f', -1, 64)
	case absolute:
		return strconv.FormatFloat(p.offset, 'f', -1, 64)
	}
	switch {
	case p.offset < 0:
		return "-=" + f(p.offset)
	case p.offset > 0:
		return "+=" + f(p.offset)
	}
	return ""
}

// Timeline is an ordered entrance sequence for one section. Steps start in
// the order they were added, each positioned against the previous one.
type Timeline struct {
	Label string
	Delay float64

	steps []timelineStep
}

type timelineStep struct {
	desc Descriptor
	pos  Position
}

// Entry is one step of a computed schedule. Times are seconds from Play,
// timeline delay included.
type Entry struct {
	Label    string  `json:"label" yaml:"label"`
	Targets  int     `json:"targets" yaml:"targets"`
	Start    float64 `json:"start" yaml:"start"`
	Duration float64 `json:"duration" yaml:"duration"`
	End      float64 `json:"end" yaml:"end"`
	Position string  `json:"position,omitempty" yaml:"position,omitempty"`
}

// NewTimeline creates an empty timeline that waits delay seconds before its
// first step.
func NewTimeline(label string, delay float64) *Timeline {
	return &Timeline{Label: label, Delay: delay}
}

// Add appends a step. Infinite (Repeat < 0) descriptors do not belong on an
// entrance timeline and are clamped to a single iteration.
func (tl *Timeline) Add(d Descriptor, pos Position) *Timeline {
	if d.Repeat < 0 {
		d.Repeat = 0
	}
	tl.steps = append(tl.steps, timelineStep{desc: d, pos: pos})
	return tl
}

// Len returns the number of steps.
func (tl *Timeline) Len() int { return len(tl.steps) }

// Schedule computes when every step starts and ends.
func (tl *Timeline) Schedule() []Entry {
	out := make([]Entry, 0, len(tl.steps))
	var prevStart, prevEnd float64
	for _, s := range tl.steps {
		var start float64
		switch s.pos.kind {
		case absolute:
			start = s.pos.offset
		case withPrev:
			start = prevStart + s.pos.offset
		default:
			start = prevEnd + s.pos.offset
		}
		start = math.Max(start, 0) + s.desc.Delay
		span := s.desc.Span()
		out = append(out, Entry{
			Label:    s.desc.Label,
			Targets:  len(s.desc.Targets),
			Start:    tl.Delay + start,
			Duration: span,
			End:      tl.Delay + start + span,
			Position: s.pos.String(),
		})
		prevStart, prevEnd = start, start+span
	}
	return out
}

// Duration returns the time from Play until the last step finishes.
func (tl *Timeline) Duration() float64 {
	end := tl.Delay
	for _, e := range tl.Schedule() {
		end = math.Max(end, e.End)
	}
	return end
}

// Play creates one tween per step on e, each delayed to its scheduled start.
// The returned run reverts or kills them as a unit.
func (tl *Timeline) Play(e Engine) *TimelineRun {
	run := &TimelineRun{engine: e}
	for i, entry := range tl.Schedule() {
		d := tl.steps[i].desc.With(Delay(entry.Start))
		d.Paused = false
		run.tweens = append(run.tweens, e.Create(d))
	}
	return run
}

// TimelineRun is a playing Timeline.
type TimelineRun struct {
	engine Engine
	tweens []*Tween
}

// Tweens returns the step tweens in timeline order.
func (r *TimelineRun) Tweens() []*Tween { return r.tweens }

// Done reports whether every step has finished.
func (r *TimelineRun) Done() bool {
	for _, t := range r.tweens {
		if t.State() != Done {
			return false
		}
	}
	return true
}

// Kill stops every step where it is.
func (r *TimelineRun) Kill() {
	for _, t := range r.tweens {
		r.engine.Cancel(t)
	}
}

// Detach reverts every step, leaving targets in their resting state. Safe to
// call more than once and on a nil run.
func (r *TimelineRun) Detach() {
	if r == nil {
		return
	}
	for _, t := range r.tweens {
		t.Revert()
	}
}
