package motion

import "github.com/Zachkp/folio/internal/page"

// TiltOptions tunes a tilt effect.
type TiltOptions struct {
	// Divisor converts pixel offset from the card center into degrees.
	Divisor float64
	// MaxAngle caps each rotation axis in degrees. Zero leaves it unbounded.
	MaxAngle    float64
	Perspective float64
	// ImageScale is applied to the secondary layer while tracking.
	ImageScale float64
	Duration   float64
	Ease       string
}

// DefaultTilt returns the project card tuning.
func DefaultTilt() TiltOptions {
	return TiltOptions{
		Divisor:     20,
		Perspective: 1000,
		ImageScale:  1.1,
		Duration:    0.5,
		Ease:        EasePower2,
	}
}

// Tilt rotates a card in perspective toward the pointer and zooms its image
// layer while the pointer is over it.
type Tilt struct {
	opts  TiltOptions
	card  *page.Element
	cardF follower
	imgF  *follower
	scope pointerScope

	state            EffectState
	rotateX, rotateY float64
}

// AttachTilt binds the effect to card, with image as the optional zoom layer.
// A nil or removed card is a silent no-op and returns nil; every method is
// safe on a nil *Tilt.
func AttachTilt(doc *page.Document, e Engine, card, image *page.Element, opts TiltOptions) *Tilt {
	if doc == nil || card == nil || card.Removed() {
		return nil
	}
	if opts.Divisor == 0 {
		opts.Divisor = 20
	}
	t := &Tilt{opts: opts, card: card, cardF: follower{engine: e, el: card}}
	if image != nil && !image.Removed() {
		t.imgF = &follower{engine: e, el: image}
	}
	t.scope = acquirePointer(doc, card, t.handle, t.Detach)
	return t
}

// State returns idle or tracking.
func (t *Tilt) State() EffectState {
	if t == nil {
		return Idle
	}
	return t.state
}

// Angles returns the rotation the card is easing toward, in degrees.
func (t *Tilt) Angles() (rotateX, rotateY float64) {
	if t == nil {
		return 0, 0
	}
	return t.rotateX, t.rotateY
}

// Detach removes the listeners, cancels any motion and flattens the card.
// Safe to call more than once.
func (t *Tilt) Detach() {
	if t == nil || !t.scope.release() {
		return
	}
	t.state = Idle
	t.rotateX, t.rotateY = 0, 0
	t.cardF.reset(page.RotateX, page.RotateY)
	if t.imgF != nil {
		t.imgF.reset(page.Scale)
	}
}

func (t *Tilt) handle(ev page.PointerEvent) {
	switch ev.Type {
	case page.PointerMove:
		box := t.card.Box
		x := ev.X - box.X
		y := ev.Y - box.Y
		rx := (y - box.Height/2) / t.opts.Divisor
		ry := (box.Width/2 - x) / t.opts.Divisor
		if m := t.opts.MaxAngle; m > 0 {
			rx, ry = clamp(rx, -m, m), clamp(ry, -m, m)
		}
		t.rotateX, t.rotateY = rx, ry
		t.state = Tracking
		t.cardF.to(map[page.Property]float64{page.RotateX: rx, page.RotateY: ry},
			t.opts.Duration, t.opts.Ease, t.opts.Perspective)
		if t.imgF != nil {
			t.imgF.to(map[page.Property]float64{page.Scale: t.opts.ImageScale},
				t.opts.Duration, t.opts.Ease, 0)
		}
	case page.PointerLeave:
		t.state = Idle
		t.rotateX, t.rotateY = 0, 0
		t.cardF.to(map[page.Property]float64{page.RotateX: 0, page.RotateY: 0},
			t.opts.Duration, t.opts.Ease, 0)
		if t.imgF != nil {
			t.imgF.to(map[page.Property]float64{page.Scale: 1},
				t.opts.Duration, t.opts.Ease, 0)
		}
	}
}
