package sections

import (
	"strconv"

	"github.com/Zachkp/folio/internal/page"
)

// Layout metrics in pixels.
const (
	navHeight     = 80
	sectionPad    = 96
	gutter        = 48
	gap           = 24
	headerHeight  = 160
	projectHeight = 420
	imageHeight   = 192
	skillTitle    = 64
	skillHeight   = 88
	expHeight     = 240
	footerHeight  = 96
	menuItem      = 48
)

// Tree holds the elements one Build created, grouped for wiring.
type Tree struct {
	Nav      *page.Element
	Menu     *page.Element // mobile menu, hidden until opened
	Sections []*page.Element

	Orbs      []*page.Element
	HeroBox   *page.Element
	HeroSteps []*page.Element // greeting, name, role, subtitle
	CTA       *page.Element
	Buttons   []*page.Element
	Indicator *page.Element

	Headers      []*page.Element
	Cards        []*page.Element
	Images       []*page.Element
	SkillGrids   []*page.Element
	SkillCards   []*page.Element
	Glows        []*page.Element
	Experience   []*page.Element
	ContactForm  *page.Element
	ContactInfo  *page.Element
	BackToTopBtn *page.Element
}

// columns follows the site's responsive grid: three columns on desktop, two
// on tablets, one on phones.
func columns(width float64) int {
	switch {
	case width >= 1024:
		return 3
	case width >= 768:
		return 2
	}
	return 1
}

// grid places n cells of height h below y and returns the boxes and the y
// after the last row.
func grid(x, y, width float64, n int, h float64) ([]page.Rect, float64) {
	cols := columns(width + 2*gutter)
	w := (width - gap*float64(cols-1)) / float64(cols)
	out := make([]page.Rect, n)
	for i := range out {
		row, col := i/cols, i%cols
		out[i] = page.Rect{X: x + float64(col)*(w+gap), Y: y + float64(row)*(h+gap), Width: w, Height: h}
	}
	rows := (n + cols - 1) / cols
	if rows == 0 {
		return out, y
	}
	return out, y + float64(rows)*(h+gap) - gap
}

// Build lays the view out left to right on doc and returns the elements.
// Element ids match the anchors and card ids of the rendered HTML.
func Build(doc *page.Document, v View) *Tree {
	vw, vh := doc.Viewport.Width, doc.Viewport.Height
	inner := vw - 2*gutter
	t := &Tree{}
	y := 0.0

	section := func(id string, top float64) *page.Element {
		s := page.NewElement(id, "section", page.Rect{Y: top, Width: vw})
		doc.Append(s)
		t.Sections = append(t.Sections, s)
		return s
	}
	header := func(s *page.Element, top float64) float64 {
		h := page.NewElement(s.ID+"-header", "section-header", page.Rect{X: gutter, Y: top, Width: inner, Height: headerHeight})
		s.AddChild(h)
		t.Headers = append(t.Headers, h)
		return top + headerHeight + gap
	}

	// The fixed nav bar with its five section links in the mobile menu.
	t.Nav = page.NewElement("nav", "nav", page.Rect{Width: vw, Height: navHeight})
	doc.Append(t.Nav)
	t.Menu = page.NewElement("nav-mobile-menu", "nav-mobile-menu", page.Rect{Y: navHeight, Width: vw, Height: 5 * menuItem})
	t.Nav.AddChild(t.Menu)

	// Hero fills the first screen.
	hero := section("hero", y)
	hero.Box.Height = vh
	for i, r := range []page.Rect{
		{X: -100, Y: 100, Width: 400, Height: 400},
		{X: vw - 300, Y: vh/2 - 150, Width: 300, Height: 300},
		{X: vw / 3, Y: vh - 250, Width: 250, Height: 250},
	} {
		orb := page.NewElement(heroOrbID(i), "hero-orb", r)
		hero.AddChild(orb)
		t.Orbs = append(t.Orbs, orb)
	}
	t.HeroBox = page.NewElement("hero-content", "hero-content", page.Rect{X: gutter, Y: navHeight + 80, Width: inner, Height: vh - navHeight - 160})
	hero.AddChild(t.HeroBox)
	cy := t.HeroBox.Box.Y
	for _, s := range []struct {
		id string
		h  float64
	}{{"hero-greeting", 32}, {"hero-name", 96}, {"hero-role", 56}, {"hero-subtitle", 64}} {
		el := page.NewElement(s.id, s.id, page.Rect{X: gutter, Y: cy, Width: inner, Height: s.h})
		t.HeroBox.AddChild(el)
		t.HeroSteps = append(t.HeroSteps, el)
		cy += s.h + 16
	}
	t.CTA = page.NewElement("hero-cta", "hero-cta", page.Rect{X: gutter, Y: cy + 16, Width: 424, Height: 56})
	t.HeroBox.AddChild(t.CTA)
	for i, id := range []string{"hero-cta-primary", "hero-cta-secondary"} {
		btn := page.NewElement(id, "btn", page.Rect{X: gutter + float64(i)*224, Y: cy + 16, Width: 200, Height: 56})
		t.CTA.AddChild(btn)
		t.Buttons = append(t.Buttons, btn)
	}
	t.Indicator = page.NewElement("scroll-indicator", "scroll-indicator", page.Rect{X: vw/2 - 30, Y: vh - 100, Width: 60, Height: 70})
	t.HeroBox.AddChild(t.Indicator)
	y += vh

	// Projects: header then the card grid, or just the header when the feed
	// failed.
	projects := section("projects", y)
	cy = header(projects, y+sectionPad)
	boxes, end := grid(gutter, cy, inner, len(v.Projects.Cards), projectHeight)
	for i, c := range v.Projects.Cards {
		card := page.NewElement("project-"+c.ID, "project-card", boxes[i])
		img := page.NewElement("project-"+c.ID+"-image", "project-image",
			page.Rect{X: boxes[i].X, Y: boxes[i].Y, Width: boxes[i].Width, Height: imageHeight})
		card.AddChild(img)
		projects.AddChild(card)
		t.Cards = append(t.Cards, card)
		t.Images = append(t.Images, img)
	}
	y = end + sectionPad
	projects.Box.Height = y - projects.Box.Y

	// Skills: one titled grid per category, plus two background glows.
	skills := section("skills", y)
	for i, r := range []page.Rect{
		{X: vw - 375, Y: y + 200, Width: 500, Height: 500},
		{X: -100, Y: y + 400, Width: 400, Height: 400},
	} {
		glow := page.NewElement(skillGlowID(i), "skills-glow", r)
		skills.AddChild(glow)
		t.Glows = append(t.Glows, glow)
	}
	cy = header(skills, y+sectionPad)
	for _, cat := range v.Skills.Categories {
		g := page.NewElement("skills-"+string(cat.Category), "skill-grid", page.Rect{X: gutter, Y: cy, Width: inner})
		skills.AddChild(g)
		boxes, end := grid(gutter, cy+skillTitle, inner, len(cat.Cards), skillHeight)
		for i, c := range cat.Cards {
			card := page.NewElement("skill-"+c.ID, "skill-card", boxes[i])
			g.AddChild(card)
			t.SkillCards = append(t.SkillCards, card)
		}
		g.Box.Height = end - cy
		t.SkillGrids = append(t.SkillGrids, g)
		cy = end + 2*gap
	}
	y = cy + sectionPad
	skills.Box.Height = y - skills.Box.Y

	// Experience: a single column timeline.
	exp := section("experience", y)
	cy = header(exp, y+sectionPad)
	for _, it := range v.Experience.Items {
		el := page.NewElement("experience-"+it.ID, "experience-item", page.Rect{X: gutter, Y: cy, Width: inner, Height: expHeight})
		exp.AddChild(el)
		t.Experience = append(t.Experience, el)
		cy += expHeight + gap
	}
	y = cy + sectionPad
	exp.Box.Height = y - exp.Box.Y

	// Contact: form and info side by side.
	contact := section("contact", y)
	cy = header(contact, y+sectionPad)
	half := (inner - gap) / 2
	t.ContactForm = page.NewElement("contact-form", "contact-form", page.Rect{X: gutter, Y: cy, Width: half, Height: 480})
	t.ContactInfo = page.NewElement("contact-info", "contact-info", page.Rect{X: gutter + half + gap, Y: cy, Width: half, Height: 320})
	contact.AddChild(t.ContactForm)
	contact.AddChild(t.ContactInfo)
	y = cy + 480 + sectionPad
	contact.Box.Height = y - contact.Box.Y

	footer := section("footer", y)
	footer.Box.Height = footerHeight
	t.BackToTopBtn = page.NewElement("back-to-top", "btn", page.Rect{X: vw - gutter - 160, Y: y + 24, Width: 160, Height: 48})
	footer.AddChild(t.BackToTopBtn)

	doc.Root().Box.Height = y + footerHeight
	return t
}

// Remove takes the nav and every built section off the page.
func (t *Tree) Remove() {
	if t.Nav != nil {
		t.Nav.Remove()
	}
	for _, s := range t.Sections {
		s.Remove()
	}
}

func heroOrbID(i int) string   { return "hero-orb-" + strconv.Itoa(i+1) }
func skillGlowID(i int) string { return "skills-glow-" + strconv.Itoa(i+1) }
