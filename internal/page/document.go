package page

// Direction is the document writing direction.
type Direction string

// Writing directions.
const (
	LTR Direction = "ltr"
	RTL Direction = "rtl"
)

// Viewport is the visible window size in pixels.
type Viewport struct {
	Width, Height float64
}

// Document is a headless model of the page the motion layer animates: a tree
// of elements, a vertical scroll position, pointer routing, and the root
// dir/lang attributes. It is single-threaded; all dispatch happens on the
// caller's goroutine.
type Document struct {
	Viewport Viewport

	root    *Element
	dir     Direction
	lang    string
	scrollY float64

	scrollHandlers  []scrollHandler
	pointerHandlers map[*Element][]pointerHandler
	nextID          uint32

	hover  *Element
	reflow func(*Document)
}

type scrollHandler struct {
	id uint32
	fn func(scrollY float64)
}

type pointerHandler struct {
	id uint32
	fn func(PointerEvent)
}

// NewDocument creates an empty left-to-right English document.
func NewDocument(vp Viewport) *Document {
	d := &Document{
		Viewport:        vp,
		dir:             LTR,
		lang:            "en",
		pointerHandlers: make(map[*Element][]pointerHandler),
	}
	d.root = NewElement("root", "", Rect{Width: vp.Width})
	d.root.doc = d
	return d
}

// Root returns the document's root element.
func (d *Document) Root() *Element {
	return d.root
}

// Append adds e as a child of the root element.
func (d *Document) Append(e *Element) {
	d.root.AddChild(e)
}

// ByID returns the first live element with the given id, or nil.
func (d *Document) ByID(id string) *Element {
	var found *Element
	d.root.walk(func(e *Element) bool {
		if e.ID == id {
			found = e
			return false
		}
		return true
	})
	return found
}

// Query returns every live element carrying class, in document order.
func (d *Document) Query(class string) []*Element {
	var out []*Element
	d.root.walk(func(e *Element) bool {
		if e.HasClass(class) {
			out = append(out, e)
		}
		return true
	})
	return out
}

// Dir returns the current writing direction.
func (d *Document) Dir() Direction {
	return d.dir
}

// Lang returns the current language attribute.
func (d *Document) Lang() string {
	return d.lang
}

// SetDirection sets the root dir and lang attributes.
func (d *Document) SetDirection(dir Direction, lang string) {
	d.dir = dir
	d.lang = lang
}

// SetReflow installs the layout hook Reflow runs. Hosts use it to move
// element boxes after the writing direction flips.
func (d *Document) SetReflow(fn func(*Document)) {
	d.reflow = fn
}

// Reflow recomputes layout through the installed hook. No-op without one.
func (d *Document) Reflow() {
	if d.reflow != nil {
		d.reflow(d)
	}
}

// ScrollY returns the vertical scroll offset.
func (d *Document) ScrollY() float64 {
	return d.scrollY
}

// MaxScroll returns the largest reachable scroll offset.
func (d *Document) MaxScroll() float64 {
	var bottom float64
	d.root.walk(func(e *Element) bool {
		if b := e.Box.Bottom(); b > bottom {
			bottom = b
		}
		return true
	})
	if m := bottom - d.Viewport.Height; m > 0 {
		return m
	}
	return 0
}

// OnScroll registers a scroll listener. The returned func unregisters it and
// is safe to call more than once.
func (d *Document) OnScroll(fn func(scrollY float64)) (remove func()) {
	d.nextID++
	id := d.nextID
	d.scrollHandlers = append(d.scrollHandlers, scrollHandler{id: id, fn: fn})
	return func() {
		for i := range d.scrollHandlers {
			if d.scrollHandlers[i].id == id {
				copy(d.scrollHandlers[i:], d.scrollHandlers[i+1:])
				d.scrollHandlers[len(d.scrollHandlers)-1] = scrollHandler{}
				d.scrollHandlers = d.scrollHandlers[:len(d.scrollHandlers)-1]
				return
			}
		}
	}
}

// ScrollTo sets the scroll offset, clamped to [0, MaxScroll], and notifies
// scroll listeners.
func (d *Document) ScrollTo(y float64) {
	if y < 0 {
		y = 0
	}
	if m := d.MaxScroll(); y > m {
		y = m
	}
	d.scrollY = y
	// Listeners may unregister themselves while we iterate.
	handlers := append([]scrollHandler(nil), d.scrollHandlers...)
	for _, h := range handlers {
		h.fn(y)
	}
}

// ScrollListeners returns the number of registered scroll listeners.
func (d *Document) ScrollListeners() int {
	return len(d.scrollHandlers)
}

// forget drops all routing state for a removed element.
func (d *Document) forget(e *Element) {
	delete(d.pointerHandlers, e)
	if d.hover == e {
		d.hover = nil
	}
}

// ScrollIntoView jumps so the element with the given id sits offset pixels
// below the top of the viewport. It reports whether the element exists; a
// missing id leaves the scroll position untouched.
func (d *Document) ScrollIntoView(id string, offset float64) bool {
	e := d.ByID(id)
	if e == nil {
		return false
	}
	d.ScrollTo(e.Box.Top() - offset)
	return true
}

// MirrorOnFlip returns a reflow hook that mirrors every element box across the
// viewport whenever the direction differs from the one the boxes were last
// laid out for.
func MirrorOnFlip(laidOut Direction) func(*Document) {
	last := laidOut
	return func(d *Document) {
		if d.dir == last {
			return
		}
		last = d.dir
		d.root.walk(func(e *Element) bool {
			if e != d.root {
				e.Box = e.Box.MirrorX(d.Viewport.Width)
			}
			return true
		})
	}
}
