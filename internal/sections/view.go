package sections

import (
	"log"
	"strings"
	"time"

	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/locale"
	"github.com/Zachkp/folio/internal/page"
)

// maxCardTech is how many technology chips a project card shows before
// collapsing the rest into a "+N" chip.
const maxCardTech = 4

// View is the whole page rendered in one language.
type View struct {
	Lang       locale.Tag
	Dir        page.Direction
	Nav        Nav
	Hero       Hero
	Projects   Projects
	Skills     Skills
	Experience Experience
	Contact    Contact
	Footer     Footer
}

// NavItem is an in-page anchor link.
type NavItem struct {
	ID    string
	Label string
}

// Nav is the fixed header.
type Nav struct {
	Items []NavItem
	// Toggle labels the language switch with the language it switches to.
	Toggle     string
	ToggleLang locale.Tag
}

// Hero is the opening banner.
type Hero struct {
	Greeting   string
	Name       string
	Role       string
	Subtitle   string
	Primary    string
	Secondary  string
	ScrollDown string
}

// ProjectCard is one project in the showcase.
type ProjectCard struct {
	ID           string
	Title        string
	Description  string
	Technologies []string
	// More counts the technologies not shown.
	More      int
	Image     string
	DemoURL   string
	GithubURL string
}

// Projects is the showcase section. Either Cards or Error is set.
type Projects struct {
	Title    string
	Subtitle string
	ViewDemo string
	ViewCode string
	Empty    string
	Cards    []ProjectCard
	Error    string
}

// SkillCard is one skill with its level bar.
type SkillCard struct {
	ID    string
	Name  string
	Level int
	Icon  string
}

// SkillCategory is one titled grid of skills.
type SkillCategory struct {
	Category content.Category
	Title    string
	Cards    []SkillCard
}

// Skills is the skills section. Either Categories or Error is set.
type Skills struct {
	Title      string
	Subtitle   string
	Categories []SkillCategory
	Error      string
}

// Cards returns the number of skill cards across all categories.
func (s Skills) Cards() int {
	n := 0
	for _, c := range s.Categories {
		n += len(c.Cards)
	}
	return n
}

// ExperienceItem is one position on the timeline.
type ExperienceItem struct {
	ID          string
	Position    string
	Company     string
	Description string
	Location    string
	// Period is the localized "present" label for the current role, the
	// duration in months otherwise.
	Period       string
	Current      bool
	Technologies []string
}

// Experience is the work history section. Either Items or Error is set.
type Experience struct {
	Title    string
	Subtitle string
	Items    []ExperienceItem
	Error    string
}

// Contact is the contact section with its form labels.
type Contact struct {
	Title        string
	Subtitle     string
	NameLabel    string
	EmailLabel   string
	MessageLabel string
	Send         string
	Sending      string
	EmailTitle   string
	Email        string
	SocialTitle  string
	Social       []SocialLink
}

// SocialLink is an external profile.
type SocialLink struct {
	Name string
	URL  string
}

// Footer is the page footer.
type Footer struct {
	Copyright string
	BackToTop string
}

// NavIDs are the section anchors in page order.
var NavIDs = []string{"hero", "projects", "skills", "experience", "contact"}

// Render builds the page view from d in t's language. now dates the footer
// and open-ended positions.
func Render(d Data, t locale.Translator, now time.Time) View {
	v := View{
		Lang: t.Tag,
		Dir:  t.Tag.Direction(),
		Nav:  renderNav(t),
		Hero: Hero{
			Greeting:   t.T("hero.greeting"),
			Name:       t.T("hero.name"),
			Role:       t.T("hero.role"),
			Subtitle:   t.T("hero.subtitle"),
			Primary:    t.T("hero.cta.primary"),
			Secondary:  t.T("hero.cta.secondary"),
			ScrollDown: t.T("hero.scrollDown"),
		},
		Projects:   renderProjects(d, t),
		Skills:     renderSkills(d, t),
		Experience: renderExperience(d, t, now),
		Contact: Contact{
			Title:        t.T("contact.title"),
			Subtitle:     t.T("contact.subtitle"),
			NameLabel:    t.T("contact.form.name"),
			EmailLabel:   t.T("contact.form.email"),
			MessageLabel: t.T("contact.form.message"),
			Send:         t.T("contact.form.send"),
			Sending:      t.T("contact.form.sending"),
			EmailTitle:   t.T("contact.info.email"),
			Email:        "hammam@example.com",
			SocialTitle:  t.T("contact.social.title"),
			Social: []SocialLink{
				{Name: "GitHub", URL: "https://github.com"},
				{Name: "LinkedIn", URL: "https://linkedin.com"},
				{Name: "Twitter", URL: "https://twitter.com"},
			},
		},
		Footer: Footer{
			Copyright: t.T("footer.copyright", locale.Vars{"year": now.Year()}),
			BackToTop: t.T("footer.backToTop"),
		},
	}
	return v
}

func renderNav(t locale.Translator) Nav {
	n := Nav{ToggleLang: locale.Next(t.Tag)}
	for _, id := range NavIDs {
		n.Items = append(n.Items, NavItem{ID: id, Label: t.T("nav." + id)})
	}
	n.Toggle = strings.ToUpper(string(n.ToggleLang))
	return n
}

// loadError returns the localized message for a failed collection.
func loadError(t locale.Translator, c content.Collection) string {
	return t.T("errors." + string(c))
}

func renderProjects(d Data, t locale.Translator) Projects {
	p := Projects{
		Title:    t.T("projects.title"),
		Subtitle: t.T("projects.subtitle"),
		ViewDemo: t.T("projects.viewDemo"),
		ViewCode: t.T("projects.viewCode"),
		Empty:    t.T("projects.empty"),
	}
	if d.ProjectsErr != nil {
		p.Error = loadError(t, content.Projects)
		return p
	}
	for _, pr := range d.Projects {
		card := ProjectCard{
			ID:          pr.ID,
			Title:       pr.Title.In(t.Tag),
			Description: pr.Description.In(t.Tag),
			Image:       pr.Image,
			DemoURL:     pr.DemoURL,
			GithubURL:   pr.GithubURL,
		}
		card.Technologies = pr.Technologies
		if len(pr.Technologies) > maxCardTech {
			card.Technologies = pr.Technologies[:maxCardTech]
			card.More = len(pr.Technologies) - maxCardTech
		}
		p.Cards = append(p.Cards, card)
	}
	return p
}

func renderSkills(d Data, t locale.Translator) Skills {
	s := Skills{
		Title:    t.T("skills.title"),
		Subtitle: t.T("skills.subtitle"),
	}
	if d.SkillsErr != nil {
		s.Error = loadError(t, content.Skills)
		return s
	}
	for _, c := range content.Categories {
		cat := SkillCategory{Category: c, Title: t.T("skills.categories." + string(c))}
		for _, sk := range content.FilterCategory(d.Skills, c) {
			cat.Cards = append(cat.Cards, SkillCard{ID: sk.ID, Name: sk.Name, Level: sk.Level, Icon: sk.Icon})
		}
		s.Categories = append(s.Categories, cat)
	}
	return s
}

func renderExperience(d Data, t locale.Translator, now time.Time) Experience {
	e := Experience{
		Title:    t.T("experience.title"),
		Subtitle: t.T("experience.subtitle"),
	}
	if d.ExperiencesErr != nil {
		e.Error = loadError(t, content.Experiences)
		return e
	}
	for _, x := range d.Experiences {
		item := ExperienceItem{
			ID:           x.ID,
			Position:     x.Position.In(t.Tag),
			Company:      x.Company.In(t.Tag),
			Description:  x.Description.In(t.Tag),
			Current:      x.Current(),
			Technologies: x.Technologies,
		}
		if x.Location != nil {
			item.Location = x.Location.In(t.Tag)
		}
		item.Period = period(x, t, now)
		e.Items = append(e.Items, item)
	}
	return e
}

// period is "present" for an open position and "N months" otherwise. A date
// that does not parse falls back to the raw range.
func period(x content.Experience, t locale.Translator, now time.Time) string {
	if x.Current() {
		return t.T("experience.present")
	}
	months, err := content.DurationMonths(x.StartDate, x.EndDate, now)
	if err != nil {
		log.Printf("[sections] Experience %s: %v", x.ID, err)
		return x.StartDate + " – " + x.EndDate
	}
	return t.T("experience.duration", locale.Vars{"months": months})
}
