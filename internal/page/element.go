package page

import "strings"

// Element is a node of the document tree. Box is the layout box in document
// coordinates before any Transform is applied; animations only ever write to
// Transform.
type Element struct {
	ID        string
	Class     string
	Box       Rect
	Transform Transform

	parent   *Element
	children []*Element
	doc      *Document

	removed    bool
	hooks      []removeHook
	nextHookID uint32
}

type removeHook struct {
	id uint32
	fn func()
}

// NewElement creates a detached element in the baseline visual state.
func NewElement(id, class string, box Rect) *Element {
	return &Element{
		ID:        id,
		Class:     class,
		Box:       box,
		Transform: Baseline(),
	}
}

// AddChild appends child to e. A child that already has a parent is moved.
func (e *Element) AddChild(child *Element) {
	if child.parent != nil {
		child.parent.removeChildByPtr(child)
	}
	child.parent = e
	e.children = append(e.children, child)
	child.setDocument(e.doc)
}

// Children returns the element's direct children. The slice must not be
// modified.
func (e *Element) Children() []*Element {
	return e.children
}

// Parent returns the parent element, or nil.
func (e *Element) Parent() *Element {
	return e.parent
}

// Removed reports whether the element has been removed from the page.
func (e *Element) Removed() bool {
	return e.removed
}

// OnRemove registers fn to run once when the element (or an ancestor) is
// removed. The returned cancel func unregisters it and is safe to call more
// than once. If the element is already removed, fn runs immediately.
func (e *Element) OnRemove(fn func()) (cancel func()) {
	if e.removed {
		fn()
		return func() {}
	}
	e.nextHookID++
	id := e.nextHookID
	e.hooks = append(e.hooks, removeHook{id: id, fn: fn})
	return func() {
		for i := range e.hooks {
			if e.hooks[i].id == id {
				copy(e.hooks[i:], e.hooks[i+1:])
				e.hooks[len(e.hooks)-1] = removeHook{}
				e.hooks = e.hooks[:len(e.hooks)-1]
				return
			}
		}
	}
}

// Remove detaches the element from its parent and marks the whole subtree
// removed. Removal hooks fire descendants first, each exactly once. Calling
// Remove again is a no-op.
func (e *Element) Remove() {
	if e.removed {
		return
	}
	if e.parent != nil {
		e.parent.removeChildByPtr(e)
		e.parent = nil
	}
	e.markRemoved()
}

func (e *Element) markRemoved() {
	for _, c := range e.children {
		c.markRemoved()
	}
	e.removed = true
	hooks := e.hooks
	e.hooks = nil
	for _, h := range hooks {
		h.fn()
	}
	if e.doc != nil {
		e.doc.forget(e)
	}
}

func (e *Element) removeChildByPtr(child *Element) {
	for i, c := range e.children {
		if c == child {
			copy(e.children[i:], e.children[i+1:])
			e.children[len(e.children)-1] = nil
			e.children = e.children[:len(e.children)-1]
			return
		}
	}
}

func (e *Element) setDocument(d *Document) {
	e.doc = d
	for _, c := range e.children {
		c.setDocument(d)
	}
}

// walk visits e and its live descendants in document (painter) order.
func (e *Element) walk(fn func(*Element) bool) bool {
	if e.removed {
		return true
	}
	if !fn(e) {
		return false
	}
	for _, c := range e.children {
		if !c.walk(fn) {
			return false
		}
	}
	return true
}

// HasClass reports whether class is one of the element's space-separated
// classes.
func (e *Element) HasClass(class string) bool {
	for _, c := range strings.Fields(e.Class) {
		if c == class {
			return true
		}
	}
	return false
}

// AddClass appends class unless the element already has it.
func (e *Element) AddClass(class string) {
	if class == "" || e.HasClass(class) {
		return
	}
	if e.Class == "" {
		e.Class = class
		return
	}
	e.Class += " " + class
}

// RemoveClass drops every occurrence of class.
func (e *Element) RemoveClass(class string) {
	fields := strings.Fields(e.Class)
	kept := fields[:0]
	for _, c := range fields {
		if c != class {
			kept = append(kept, c)
		}
	}
	e.Class = strings.Join(kept, " ")
}
