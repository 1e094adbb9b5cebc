package page

// PointerEventType identifies a pointer interaction.
type PointerEventType uint8

// Pointer event types.
const (
	PointerEnter PointerEventType = iota
	PointerMove
	PointerLeave
)

func (t PointerEventType) String() string {
	switch t {
	case PointerEnter:
		return "enter"
	case PointerMove:
		return "move"
	case PointerLeave:
		return "leave"
	}
	return "unknown"
}

// PointerEvent carries the pointer position in document coordinates.
type PointerEvent struct {
	Type PointerEventType
	X, Y float64
}

// OnPointer registers a pointer listener on e. The returned func unregisters
// it and is safe to call more than once. Listeners on a removed element are
// dropped with it.
func (d *Document) OnPointer(e *Element, fn func(PointerEvent)) (remove func()) {
	if e == nil || e.removed {
		return func() {}
	}
	d.nextID++
	id := d.nextID
	d.pointerHandlers[e] = append(d.pointerHandlers[e], pointerHandler{id: id, fn: fn})
	return func() {
		hs := d.pointerHandlers[e]
		for i := range hs {
			if hs[i].id == id {
				copy(hs[i:], hs[i+1:])
				hs[len(hs)-1] = pointerHandler{}
				hs = hs[:len(hs)-1]
				if len(hs) == 0 {
					delete(d.pointerHandlers, e)
				} else {
					d.pointerHandlers[e] = hs
				}
				return
			}
		}
	}
}

// PointerListeners returns the number of pointer listeners registered on e.
func (d *Document) PointerListeners(e *Element) int {
	return len(d.pointerHandlers[e])
}

// DispatchPointer delivers ev to e's listeners. Removed elements receive
// nothing.
func (d *Document) DispatchPointer(e *Element, ev PointerEvent) {
	if e == nil || e.removed {
		return
	}
	handlers := append([]pointerHandler(nil), d.pointerHandlers[e]...)
	for _, h := range handlers {
		h.fn(ev)
	}
}

// MovePointer routes a pointer at (x, y) to the topmost element with pointer
// listeners whose box contains it, synthesizing enter and leave events as the
// hovered element changes.
func (d *Document) MovePointer(x, y float64) {
	hit := d.hitTest(x, y)
	if hit != d.hover {
		if d.hover != nil {
			d.DispatchPointer(d.hover, PointerEvent{Type: PointerLeave, X: x, Y: y})
		}
		d.hover = hit
		if hit != nil {
			d.DispatchPointer(hit, PointerEvent{Type: PointerEnter, X: x, Y: y})
		}
	}
	if hit != nil {
		d.DispatchPointer(hit, PointerEvent{Type: PointerMove, X: x, Y: y})
	}
}

// LeavePage signals that the pointer left the window.
func (d *Document) LeavePage() {
	if d.hover != nil {
		prev := d.hover
		d.hover = nil
		d.DispatchPointer(prev, PointerEvent{Type: PointerLeave})
	}
}

// hitTest returns the last element in painter order that listens for pointer
// events and contains (x, y).
func (d *Document) hitTest(x, y float64) *Element {
	var hit *Element
	d.root.walk(func(e *Element) bool {
		if len(d.pointerHandlers[e]) > 0 && e.Box.Contains(x, y) {
			hit = e
		}
		return true
	})
	return hit
}
