// Package sections turns content and translations into the portfolio's
// sections and wires their motion onto a document.
package sections

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/locale"
)

// Data is what one page load fetched. A failed collection leaves its items nil
// and its error set; the other collections are unaffected.
type Data struct {
	Projects       []content.Project
	ProjectsErr    error
	Skills         []content.Skill
	SkillsErr      error
	Experiences    []content.Experience
	ExperiencesErr error
}

// Page loads the content feed once and renders it per locale.
type Page struct {
	Bundle *locale.Bundle
	// Now dates the footer and open-ended experience. Defaults to time.Now.
	Now func() time.Time

	projects    *content.ProjectService
	skills      *content.SkillService
	experiences *content.ExperienceService

	data   Data
	loaded bool
}

// NewPage returns a page reading from src and translating with bundle.
func NewPage(src content.Source, bundle *locale.Bundle) *Page {
	return &Page{
		Bundle:      bundle,
		Now:         time.Now,
		projects:    content.NewProjectService(src),
		skills:      content.NewSkillService(src),
		experiences: content.NewExperienceService(src),
	}
}

// Load fetches the three collections concurrently. Each failure is kept with
// its own section and nothing is retried.
func (p *Page) Load(ctx context.Context) Data {
	var (
		g errgroup.Group
		d Data
	)
	g.Go(func() error {
		d.Projects, d.ProjectsErr = p.projects.Featured(ctx)
		return nil
	})
	g.Go(func() error {
		d.Skills, d.SkillsErr = p.skills.All(ctx)
		return nil
	})
	g.Go(func() error {
		d.Experiences, d.ExperiencesErr = p.experiences.All(ctx)
		return nil
	})
	_ = g.Wait()

	p.data, p.loaded = d, true
	return d
}

// Data returns the result of the last Load.
func (p *Page) Data() (Data, bool) {
	return p.data, p.loaded
}

// View renders the loaded content in tag. Call Load first; an unloaded page
// renders every data section empty.
func (p *Page) View(tag locale.Tag) View {
	return Render(p.data, p.Bundle.For(tag), p.now())
}

func (p *Page) now() time.Time {
	if p.Now == nil {
		return time.Now()
	}
	return p.Now()
}
