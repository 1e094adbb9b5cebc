// Package content loads the portfolio's projects, skills and work history.
package content

import "github.com/Zachkp/folio/internal/locale"

// Localized is a string in every supported language.
type Localized struct {
	En string `json:"en"`
	Ar string `json:"ar"`
}

// In returns the text for tag, falling back to English when the translation
// is empty.
func (l Localized) In(tag locale.Tag) string {
	if tag == locale.Arabic && l.Ar != "" {
		return l.Ar
	}
	return l.En
}

// Project is one showcase entry.
type Project struct {
	ID           string    `json:"id"`
	Title        Localized `json:"title"`
	Description  Localized `json:"description"`
	Technologies []string  `json:"technologies"`
	Image        string    `json:"image"`
	DemoURL      string    `json:"demoUrl,omitempty"`
	GithubURL    string    `json:"githubUrl,omitempty"`
	Featured     bool      `json:"featured"`
}

// Category groups skills on the skills section.
type Category string

// Skill categories, in display order.
const (
	Frontend Category = "frontend"
	Backend  Category = "backend"
	DevOps   Category = "devops"
	Tools    Category = "tools"
)

// Categories lists every category in display order.
var Categories = []Category{Frontend, Backend, DevOps, Tools}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	for _, k := range Categories {
		if k == c {
			return true
		}
	}
	return false
}

// Skill is one technology with a proficiency level from 0 to 100.
type Skill struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Level    int      `json:"level"`
	Icon     string   `json:"icon,omitempty"`
}

// Experience is one position held. EndDate is empty for the current role.
// Dates are "YYYY-MM".
type Experience struct {
	ID           string     `json:"id"`
	Company      Localized  `json:"company"`
	Position     Localized  `json:"position"`
	Description  Localized  `json:"description"`
	StartDate    string     `json:"startDate"`
	EndDate      string     `json:"endDate,omitempty"`
	Technologies []string   `json:"technologies"`
	Location     *Localized `json:"location,omitempty"`
}

// Current reports whether the position has no end date.
func (e Experience) Current() bool {
	return e.EndDate == ""
}
