package motion

import (
	"math"

	"github.com/tanema/gween"

	"github.com/Zachkp/folio/internal/page"
)

// State is the playback state of a Tween.
type State uint8

// Tween states.
const (
	Paused State = iota
	Running
	Done
	Cancelled
)

func (s State) String() string {
	switch s {
	case Paused:
		return "paused"
	case Running:
		return "running"
	case Done:
		return "done"
	case Cancelled:
		return "cancelled"
	}
	return "unknown"
}

// Tween plays one Descriptor against its targets. It owns one gween track per
// (target, property) pair and is advanced by an Engine; it never runs on its
// own.
type Tween struct {
	desc   Descriptor
	tracks []track
	time   float64
	total  float64
	dir    float64
	state  State

	onComplete func(reversed bool)

	owner     *Ticker
	scheduled bool
}

type track struct {
	el     *page.Element
	prop   page.Property
	tw     *gween.Tween
	offset float64
	from   float64
	to     float64
	rest   float64
}

func newTween(d Descriptor) *Tween {
	t := &Tween{desc: d, dir: 1, total: d.Total()}
	fn := Ease(d.Ease)
	for i, el := range liveTargets(d.Targets) {
		if d.Perspective != 0 {
			el.Transform.Perspective = d.Perspective
		}
		for _, p := range page.Properties {
			v, ok := d.Props[p]
			if !ok {
				continue
			}
			cur := el.Transform.Get(p)
			tr := track{
				el:     el,
				prop:   p,
				offset: d.Delay + float64(i)*d.Stagger,
				rest:   cur,
			}
			if d.Mode == From {
				tr.from, tr.to = v, cur
			} else {
				tr.from, tr.to = cur, v
			}
			tr.tw = gween.New(float32(tr.from), float32(tr.to), float32(d.Duration), fn)
			t.tracks = append(t.tracks, tr)
		}
	}
	// From tweens render their start state immediately so nothing flashes
	// at its final position before the tween begins.
	if d.Mode == From {
		t.apply()
	}
	if d.Paused {
		t.state = Paused
	} else {
		t.state = Running
	}
	return t
}

// Descriptor returns the descriptor the tween was created from.
func (t *Tween) Descriptor() Descriptor { return t.desc }

// State returns the playback state.
func (t *Tween) State() State { return t.state }

// Reversed reports whether the tween is playing (or last played) backwards.
func (t *Tween) Reversed() bool { return t.dir < 0 }

// Time returns the playhead in seconds, delay included.
func (t *Tween) Time() float64 { return t.time }

// Progress returns the playhead as a fraction of the total, 0 for infinite
// tweens.
func (t *Tween) Progress() float64 {
	if t.total <= 0 || math.IsInf(t.total, 1) {
		return 0
	}
	return t.time / t.total
}

// Targets returns the elements the tween writes to.
func (t *Tween) Targets() []*page.Element { return t.desc.Targets }

// Play runs the tween forward from the current playhead.
func (t *Tween) Play() {
	if t.state == Cancelled {
		return
	}
	t.dir = 1
	if t.time >= t.total {
		t.state = Done
		return
	}
	t.state = Running
	t.wake()
}

// Reverse runs the tween backward from the current playhead.
func (t *Tween) Reverse() {
	if t.state == Cancelled {
		return
	}
	t.dir = -1
	if t.time <= 0 {
		t.state = Done
		return
	}
	t.state = Running
	t.wake()
}

// Restart rewinds to the start and plays forward.
func (t *Tween) Restart() {
	if t.state == Cancelled {
		return
	}
	t.time = 0
	t.apply()
	t.dir = 1
	t.state = Running
	t.wake()
}

// Pause stops the playhead where it is.
func (t *Tween) Pause() {
	if t.state == Running {
		t.state = Paused
	}
}

// Seek moves the playhead to progress (0..1) of the total and renders that
// frame without changing the playback state. Infinite tweens ignore Seek.
func (t *Tween) Seek(progress float64) {
	if t.state == Cancelled || math.IsInf(t.total, 1) {
		return
	}
	t.time = clamp(progress, 0, 1) * t.total
	t.apply()
}

// Kill stops the tween where it is. Later calls to any control are no-ops.
func (t *Tween) Kill() {
	t.state = Cancelled
}

// Revert kills the tween and restores every target property to the value it
// had when the tween was created.
func (t *Tween) Revert() {
	t.state = Cancelled
	for _, tr := range t.tracks {
		tr.el.Transform.Set(tr.prop, tr.rest)
	}
}

// OnComplete sets a callback fired when the playhead reaches either end.
func (t *Tween) OnComplete(fn func(reversed bool)) { t.onComplete = fn }

// wake puts a finished tween back on its ticker's frame list.
func (t *Tween) wake() {
	if t.owner != nil && !t.scheduled {
		t.owner.schedule(t)
	}
}

// step advances the playhead by dt seconds. It returns false once the tween
// no longer needs frames.
func (t *Tween) step(dt float64) bool {
	switch t.state {
	case Cancelled, Done:
		return false
	case Paused:
		return true
	}
	t.time += dt * t.dir
	finished := false
	if t.time >= t.total {
		t.time = t.total
		finished = t.dir > 0
	} else if t.time <= 0 {
		t.time = 0
		finished = t.dir < 0
	}
	t.apply()
	if finished {
		t.state = Done
		if t.onComplete != nil {
			t.onComplete(t.dir < 0)
		}
		return false
	}
	return true
}

// apply renders the current playhead to every live target.
func (t *Tween) apply() {
	d := t.desc
	for i := range t.tracks {
		tr := &t.tracks[i]
		if tr.el.Removed() {
			continue
		}
		local := t.time - tr.offset
		var v float64
		switch {
		case local < 0:
			v = tr.from
		case d.Duration <= 0:
			v = tr.to
		default:
			cur, _ := tr.tw.Set(float32(cycleTime(local, d.Duration, d.Repeat, d.Yoyo)))
			v = float64(cur)
		}
		tr.el.Transform.Set(tr.prop, v)
	}
}

// cycleTime maps a playhead into one iteration, honoring repeat and yoyo.
func cycleTime(local, dur float64, repeat int, yoyo bool) float64 {
	if local <= 0 {
		return 0
	}
	if repeat == 0 {
		return math.Min(local, dur)
	}
	if repeat > 0 && local >= dur*float64(repeat+1) {
		if yoyo && repeat%2 == 1 {
			return 0
		}
		return dur
	}
	iter := math.Floor(local / dur)
	t := local - iter*dur
	if yoyo && int64(iter)%2 == 1 {
		t = dur - t
	}
	return t
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
