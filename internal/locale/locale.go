// Package locale holds the active language, its message catalogs and the
// controller that keeps the document's writing direction in step with it.
package locale

import (
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/Zachkp/folio/internal/page"
)

// Tag identifies a supported language.
type Tag string

// Supported languages.
const (
	English Tag = "en"
	Arabic  Tag = "ar"
)

// Supported lists every language the site ships, default first.
var Supported = []Tag{English, Arabic}

// ErrUnsupported is returned for tags outside Supported.
var ErrUnsupported = errors.New("unsupported locale")

// Parse returns the supported tag for s, ignoring case and any region suffix
// ("ar-EG" is Arabic).
func Parse(s string) (Tag, error) {
	base := strings.ToLower(strings.TrimSpace(s))
	if i := strings.IndexAny(base, "-_"); i >= 0 {
		base = base[:i]
	}
	for _, t := range Supported {
		if string(t) == base {
			return t, nil
		}
	}
	return "", errors.Wrapf(ErrUnsupported, "%q", s)
}

// Valid reports whether t is supported.
func (t Tag) Valid() bool {
	for _, s := range Supported {
		if s == t {
			return true
		}
	}
	return false
}

// Direction returns the writing direction of t.
func (t Tag) Direction() page.Direction {
	if t == Arabic {
		return page.RTL
	}
	return page.LTR
}

// Snapshot is one consistent reading of the locale state. Direction is always
// derived from Tag.
type Snapshot struct {
	Tag Tag            `json:"lang"`
	Dir page.Direction `json:"dir"`
}

func snapshotOf(t Tag) Snapshot {
	return Snapshot{Tag: t, Dir: t.Direction()}
}

// State is the current locale, passed explicitly to whatever renders text.
// Toggle and Set are the only writers; readers subscribe to changes.
type State struct {
	mu      sync.RWMutex
	current Tag
	subs    []subscriber
	nextID  int
}

type subscriber struct {
	id int
	fn func(Snapshot)
}

// NewState returns a State set to initial, or to the default language when
// initial is not supported.
func NewState(initial Tag) *State {
	if !initial.Valid() {
		initial = Supported[0]
	}
	return &State{current: initial}
}

// Current returns the active tag.
func (s *State) Current() Tag {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Snapshot returns the active tag together with its direction.
func (s *State) Snapshot() Snapshot {
	return snapshotOf(s.Current())
}

// Set switches to t and notifies subscribers if it changed.
func (s *State) Set(t Tag) error {
	if !t.Valid() {
		return errors.Wrapf(ErrUnsupported, "%q", t)
	}
	s.mu.Lock()
	if s.current == t {
		s.mu.Unlock()
		return nil
	}
	s.current = t
	subs := append([]subscriber(nil), s.subs...)
	s.mu.Unlock()

	snap := snapshotOf(t)
	for _, sub := range subs {
		sub.fn(snap)
	}
	return nil
}

// Toggle advances to the next supported language and returns it. With two
// languages this flips between them.
func (s *State) Toggle() Tag {
	next := Next(s.Current())
	// Next always returns a supported tag.
	_ = s.Set(next)
	return next
}

// Next returns the language after t in Supported, wrapping around.
func Next(t Tag) Tag {
	for i, c := range Supported {
		if c == t {
			return Supported[(i+1)%len(Supported)]
		}
	}
	return Supported[0]
}

// Subscribe registers fn for change notifications. Notifications run on the
// goroutine that made the change, after the new value is readable. The
// returned func unsubscribes and is safe to call more than once.
func (s *State) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}
