package sections

import (
	"math/rand/v2"

	"github.com/Zachkp/folio/internal/locale"
	"github.com/Zachkp/folio/internal/motion"
	"github.com/Zachkp/folio/internal/page"
)

// Desktop is the viewport plans are exported for.
var Desktop = page.Viewport{Width: 1440, Height: 900}

// Section names, in page order.
const (
	SectionNav        = "nav"
	SectionHero       = "hero"
	SectionProjects   = "projects"
	SectionSkills     = "skills"
	SectionExperience = "experience"
	SectionContact    = "contact"
)

// SectionNames lists every section that has motion, in page order.
var SectionNames = []string{SectionNav, SectionHero, SectionProjects, SectionSkills, SectionExperience, SectionContact}

// navScrolledAt is the scroll offset past which the nav gets its solid
// "scrolled" style.
const navScrolledAt = 50

// MenuOpenEvent names the interaction that plays the menu entrance.
const MenuOpenEvent = "menu-open"

// Options tunes Mount.
type Options struct {
	Tuning motion.Tuning
	// Seed fixes the orb drift so repeated mounts move the same way.
	Seed uint64
}

// DefaultOptions returns the stock tuning with seed 1.
func DefaultOptions() Options {
	return Options{Tuning: motion.DefaultTuning(), Seed: 1}
}

type effect interface {
	motion.Detacher
	Spec() motion.EffectSpec
}

// Mounted is a page whose sections are on a document with their motion
// running. Unmount undoes all of it.
type Mounted struct {
	doc      *page.Document
	engine   motion.Engine
	opts     Options
	tree     *Tree
	scope    *motion.Scope
	registry *motion.Registry
	scroller *motion.Scroller
	layout   *locale.LayoutController

	hero    *motion.Timeline
	heroRun *motion.TimelineRun

	menuEnter motion.Descriptor
	menuTween *motion.Tween
	menuOpen  bool

	idle     map[string][]motion.Descriptor
	bindings map[string][]*motion.Binding
	effects  map[string][]effect
}

// Mount lays v out on doc and starts its motion on e: the nav scroll style,
// the hero entrance
// timeline with its idle float, bob and orb drift, magnetic hero buttons,
// scroll reveals on every section, tilt on project cards, lift on skill
// cards and parallax glows. When state is not nil the document direction
// follows it and scroll bindings re-measure after every change.
func Mount(doc *page.Document, e motion.Engine, state *locale.State, v View, opts Options) *Mounted {
	m := &Mounted{
		doc:      doc,
		engine:   e,
		opts:     opts,
		scope:    motion.NewScope(),
		registry: motion.NewRegistry(doc, e),
		scroller: motion.NewScroller(doc, e, opts.Tuning.Scroll),
		idle:     make(map[string][]motion.Descriptor),
		bindings: make(map[string][]*motion.Binding),
		effects:  make(map[string][]effect),
	}
	m.tree = Build(doc, v)
	doc.SetReflow(page.MirrorOnFlip(page.LTR))

	m.mountNav()
	m.mountHero()
	m.mountProjects()
	m.mountSkills()
	m.mountExperience()
	m.mountContact()

	m.scope.Track(m.registry)
	m.scope.Track(motion.DetachFunc(m.scroller.Cancel))
	if state != nil {
		m.layout = locale.NewLayoutController(state, doc, m.registry)
		m.scope.Track(motion.DetachFunc(m.layout.Close))
	}
	return m
}

func from(label string, els []*page.Element, props map[page.Property]float64, dur float64, curve string) motion.Descriptor {
	return motion.Descriptor{Label: label, Targets: els, Props: props, Mode: motion.From, Duration: dur, Ease: curve}
}

func (m *Mounted) mountNav() {
	if w := motion.WatchScroll(m.doc, m.tree.Nav, navScrolledAt, "scrolled"); w != nil {
		m.track(SectionNav, w)
	}
	m.menuEnter = m.opts.Tuning.Presets.MenuEnter(m.tree.Menu)
}

func (m *Mounted) mountHero() {
	p, t := m.opts.Tuning.Presets, m.tree
	steps := t.HeroSteps

	m.hero = motion.NewTimeline(SectionHero, 0.2).
		Add(from("greeting", steps[0:1], map[page.Property]float64{page.Y: 50}, 0.8, p.Ease.Power3), motion.AfterPrev(0)).
		Add(from("name", steps[1:2], map[page.Property]float64{page.Y: 50, page.SkewY: 5}, 1, p.Ease.Power4), motion.AfterPrev(-0.4)).
		Add(from("role", steps[2:3], map[page.Property]float64{page.Y: 50}, 0.8, p.Ease.Power3), motion.AfterPrev(-0.5)).
		Add(from("subtitle", steps[3:4], map[page.Property]float64{page.Y: 30}, 0.6, p.Ease.Power2), motion.AfterPrev(-0.4)).
		Add(from("cta", t.CTA.Children(), map[page.Property]float64{page.Y: 20}, 0.5, p.Ease.Back).
			With(motion.Stagger(p.Stagger.Normal)), motion.AfterPrev(-0.3))
	m.heroRun = m.scope.Run(m.hero.Play(m.engine))

	idle := []motion.Descriptor{p.Float(t.HeroBox), p.Bob(t.Indicator)}
	idle = append(idle, p.Drift(t.Orbs, rand.New(rand.NewPCG(m.opts.Seed, m.opts.Seed)))...)
	for _, d := range idle {
		m.scope.Tween(m.engine.Create(d))
	}
	m.idle[SectionHero] = idle

	for _, btn := range t.Buttons {
		if mg := motion.AttachMagnetic(m.doc, m.engine, btn, m.opts.Tuning.Magnetic); mg != nil {
			m.track(SectionHero, mg)
		}
	}
}

func (m *Mounted) mountProjects() {
	p, t := m.opts.Tuning.Presets, m.tree
	m.reveal(SectionProjects, m.header(SectionProjects), p.FadeInUp(nil))
	for i, card := range t.Cards {
		m.reveal(SectionProjects, card, p.FadeInUp(nil))
		if tl := motion.AttachTilt(m.doc, m.engine, card, t.Images[i], m.opts.Tuning.Tilt); tl != nil {
			m.track(SectionProjects, tl)
		}
	}
}

func (m *Mounted) mountSkills() {
	p, t := m.opts.Tuning.Presets, m.tree
	m.reveal(SectionSkills, m.header(SectionSkills), p.FadeInUp(nil))
	for _, g := range t.SkillGrids {
		if len(g.Children()) == 0 {
			continue
		}
		m.reveal(SectionSkills, g, p.StaggerFadeIn(g.Children(), motion.Stagger(p.Stagger.Fast)))
	}
	for _, card := range t.SkillCards {
		if l := motion.AttachLift(m.doc, m.engine, card); l != nil {
			m.track(SectionSkills, l)
		}
	}
	for i, glow := range t.Glows {
		speed := 0.5
		if i%2 == 1 {
			speed = -0.3
		}
		m.bind(SectionSkills, glow, p.Parallax(glow, speed), motion.ParallaxTrigger())
	}
}

func (m *Mounted) mountExperience() {
	p := m.opts.Tuning.Presets
	m.reveal(SectionExperience, m.header(SectionExperience), p.FadeInUp(nil))
	for _, el := range m.tree.Experience {
		m.reveal(SectionExperience, el, p.FadeInUp(nil))
	}
}

func (m *Mounted) mountContact() {
	p, t := m.opts.Tuning.Presets, m.tree
	m.reveal(SectionContact, m.header(SectionContact), p.FadeInUp(nil))
	m.reveal(SectionContact, t.ContactForm, p.FadeInUp(nil))
	m.reveal(SectionContact, t.ContactInfo, p.FadeInUp(nil, motion.Delay(p.Stagger.Normal)))
}

func (m *Mounted) header(section string) *page.Element {
	return m.doc.ByID(section + "-header")
}

func (m *Mounted) reveal(section string, el *page.Element, d motion.Descriptor) {
	m.bind(section, el, d, m.opts.Tuning.Reveal)
}

func (m *Mounted) bind(section string, el *page.Element, d motion.Descriptor, trig motion.Trigger) {
	if b := m.registry.Bind(el, d, trig); b != nil {
		m.bindings[section] = append(m.bindings[section], b)
	}
}

func (m *Mounted) track(section string, fx effect) {
	m.scope.Track(fx)
	m.effects[section] = append(m.effects[section], fx)
}

// Tree returns the mounted elements.
func (m *Mounted) Tree() *Tree { return m.tree }

// Registry returns the scroll bindings.
func (m *Mounted) Registry() *motion.Registry { return m.registry }

// HeroTimeline returns the hero entrance timeline and its run.
func (m *Mounted) HeroTimeline() (*motion.Timeline, *motion.TimelineRun) {
	return m.hero, m.heroRun
}

// ToggleMenu opens or closes the mobile menu and reports whether it is now
// open. Opening plays the menu entrance; closing snaps the menu back.
func (m *Mounted) ToggleMenu() bool {
	if m.scope.Reverted() {
		return false
	}
	if m.menuOpen {
		m.closeMenu()
		return false
	}
	m.menuOpen = true
	m.tree.Menu.AddClass("open")
	m.menuTween = m.scope.Tween(m.engine.Create(m.menuEnter))
	return true
}

// MenuOpen reports whether the mobile menu is open.
func (m *Mounted) MenuOpen() bool { return m.menuOpen }

func (m *Mounted) closeMenu() {
	m.menuOpen = false
	m.tree.Menu.RemoveClass("open")
	if m.menuTween != nil {
		m.menuTween.Revert()
		m.menuTween = nil
	}
}

// Navigate smooth-scrolls to the section with the given id and reports
// whether it exists. Following a link closes the mobile menu.
func (m *Mounted) Navigate(id string) bool {
	if m.scope.Reverted() {
		return false
	}
	if !m.scroller.To(id) {
		return false
	}
	if m.menuOpen {
		m.closeMenu()
	}
	return true
}

// BackToTop smooth-scrolls to the top of the page.
func (m *Mounted) BackToTop() {
	if !m.scope.Reverted() {
		m.scroller.ToY(0)
	}
}

// Unmount stops every tween, binding, effect and locale subscription, puts
// every element back in its resting state and removes the sections from the
// document. Safe to call more than once.
func (m *Mounted) Unmount() {
	if m.scope.Reverted() {
		return
	}
	m.scope.Revert()
	m.menuOpen, m.menuTween = false, nil
	m.tree.Remove()
	m.doc.SetReflow(nil)
}

// MotionPlan exports what each section asks of the motion layer, in page
// order, for the client runtime. Empty after Unmount.
func (m *Mounted) MotionPlan() []motion.Plan {
	if m.scope.Reverted() {
		return nil
	}
	out := make([]motion.Plan, 0, len(SectionNames))
	for _, name := range SectionNames {
		out = append(out, m.plan(name))
	}
	return out
}

// Plan returns one section's plan.
func (m *Mounted) Plan(section string) (motion.Plan, bool) {
	for _, name := range SectionNames {
		if name == section && !m.scope.Reverted() {
			return m.plan(name), true
		}
	}
	return motion.Plan{}, false
}

func (m *Mounted) plan(name string) motion.Plan {
	pl := motion.Plan{Section: name}
	if name == SectionHero && m.hero != nil {
		pl.Timelines = []motion.TimelineSpec{m.hero.Spec()}
	}
	if name == SectionNav && m.tree.Menu != nil {
		pl.Interactions = []motion.InteractionSpec{{On: MenuOpenEvent, Tween: m.menuEnter.Spec()}}
	}
	for _, d := range m.idle[name] {
		pl.Idle = append(pl.Idle, d.Spec())
	}
	for _, b := range m.bindings[name] {
		if b.Active() {
			pl.Bindings = append(pl.Bindings, b.Spec())
		}
	}
	for _, fx := range m.effects[name] {
		pl.Effects = append(pl.Effects, fx.Spec())
	}
	return pl
}

// PlanFor mounts v on a scratch desktop document, exports its plan and
// unmounts again.
func PlanFor(v View, opts Options) []motion.Plan {
	doc := page.NewDocument(Desktop)
	m := Mount(doc, motion.NewTicker(), locale.NewState(v.Lang), v, opts)
	defer m.Unmount()
	return m.MotionPlan()
}
