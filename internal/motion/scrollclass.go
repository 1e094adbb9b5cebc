package motion

import "github.com/Zachkp/folio/internal/page"

// ScrollClass adds a class to an element while the document is scrolled past
// a fixed offset and removes it again on the way back, the way a fixed header
// turns solid once the page moves.
type ScrollClass struct {
	el     *page.Element
	offset float64
	class  string
	past   bool

	unlisten func()
	unremove func()
}

// WatchScroll starts a ScrollClass on el and applies the current scroll
// position at once. A nil or removed el is a silent no-op and returns nil;
// Past and Detach are safe on a nil *ScrollClass.
func WatchScroll(doc *page.Document, el *page.Element, offset float64, class string) *ScrollClass {
	if doc == nil || el == nil || el.Removed() {
		return nil
	}
	w := &ScrollClass{el: el, offset: offset, class: class}
	w.unlisten = doc.OnScroll(w.update)
	w.unremove = el.OnRemove(w.Detach)
	w.update(doc.ScrollY())
	return w
}

// Past reports whether the scroll offset is beyond the threshold.
func (w *ScrollClass) Past() bool {
	return w != nil && w.past
}

// Detach stops watching and removes the class. Safe to call more than once.
func (w *ScrollClass) Detach() {
	if w == nil || w.unlisten == nil {
		return
	}
	w.unlisten()
	w.unremove()
	w.unlisten, w.unremove = nil, nil
	w.past = false
	w.el.RemoveClass(w.class)
}

func (w *ScrollClass) update(y float64) {
	past := y > w.offset
	if past == w.past {
		return
	}
	w.past = past
	if past {
		w.el.AddClass(w.class)
	} else {
		w.el.RemoveClass(w.class)
	}
}

// Spec converts w to its wire form.
func (w *ScrollClass) Spec() EffectSpec {
	return EffectSpec{
		Kind:     "scroll-class",
		Selector: SelectorFor([]*page.Element{w.el}),
		Class:    w.class,
		Params:   map[string]float64{"offset": w.offset},
	}
}
