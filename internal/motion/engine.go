package motion

// FrameFunc is called once per frame with the elapsed seconds.
type FrameFunc func(dt float64)

// Engine is the capability the orchestration layer needs from a tween
// engine. Everything above it (timelines, scroll bindings, pointer effects)
// only talks to this interface.
type Engine interface {
	// Create builds a tween for d and schedules it; it starts playing unless
	// d.Paused is set.
	Create(d Descriptor) *Tween
	// Cancel stops t immediately. Nil is ignored.
	Cancel(t *Tween)
	// OnFrame registers a per-frame callback. The returned func unregisters it.
	OnFrame(fn FrameFunc) (remove func())
}

// Ticker is a frame-clock Engine. The host calls Advance once per animation
// frame; there is no background goroutine. Not safe for concurrent use.
type Ticker struct {
	tweens  []*Tween
	pending []*Tween
	frames  []frameHandler
	nextID  uint32

	advancing bool
}

type frameHandler struct {
	id uint32
	fn FrameFunc
}

// NewTicker returns an idle Ticker.
func NewTicker() *Ticker {
	return &Ticker{}
}

// Create implements Engine.
func (k *Ticker) Create(d Descriptor) *Tween {
	t := newTween(d)
	t.owner = k
	k.schedule(t)
	return t
}

func (k *Ticker) schedule(t *Tween) {
	t.scheduled = true
	if k.advancing {
		k.pending = append(k.pending, t)
		return
	}
	k.tweens = append(k.tweens, t)
}

// Cancel implements Engine.
func (k *Ticker) Cancel(t *Tween) {
	if t != nil {
		t.Kill()
	}
}

// OnFrame implements Engine.
func (k *Ticker) OnFrame(fn FrameFunc) (remove func()) {
	k.nextID++
	id := k.nextID
	k.frames = append(k.frames, frameHandler{id: id, fn: fn})
	return func() {
		for i := range k.frames {
			if k.frames[i].id == id {
				copy(k.frames[i:], k.frames[i+1:])
				k.frames[len(k.frames)-1] = frameHandler{}
				k.frames = k.frames[:len(k.frames)-1]
				return
			}
		}
	}
}

// Advance moves every scheduled tween forward by dt seconds, then runs frame
// callbacks. Finished and cancelled tweens leave the frame list; playing a
// finished tween again puts it back.
func (k *Ticker) Advance(dt float64) {
	k.advancing = true
	live := k.tweens[:0]
	for _, t := range k.tweens {
		// A completion callback may replay its own tween.
		if t.step(dt) || t.state == Running {
			live = append(live, t)
		} else {
			t.scheduled = false
		}
	}
	for i := len(live); i < len(k.tweens); i++ {
		k.tweens[i] = nil
	}
	k.tweens = append(live, k.pending...)
	k.pending = k.pending[:0]
	k.advancing = false

	frames := append([]frameHandler(nil), k.frames...)
	for _, f := range frames {
		f.fn(dt)
	}
}

// Active returns the number of tweens currently running.
func (k *Ticker) Active() int {
	n := 0
	for _, t := range k.tweens {
		if t.state == Running {
			n++
		}
	}
	return n
}

// Tracked returns the number of tweens on the frame list, paused ones
// included.
func (k *Ticker) Tracked() int {
	return len(k.tweens)
}
