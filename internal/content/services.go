package content

import (
	"context"
	"encoding/json"
	"log"

	"github.com/pkg/errors"
)

// User-facing load failures. Service errors carry one of these as their
// cause, so errors.Cause(err).Error() is safe to show.
var (
	ErrLoadProjects    = errors.New("Failed to load projects")
	ErrLoadSkills      = errors.New("Failed to load skills")
	ErrLoadExperiences = errors.New("Failed to load experiences")
)

// LoadErr returns the user-facing sentinel for c.
func LoadErr(c Collection) error {
	switch c {
	case Skills:
		return ErrLoadSkills
	case Experiences:
		return ErrLoadExperiences
	}
	return ErrLoadProjects
}

func load[T any](ctx context.Context, src Source, c Collection) (out []T, err error) {
	var data []byte
	data, err = src.Fetch(ctx, c)
	if err == nil {
		err = errors.Wrapf(json.Unmarshal(data, &out), "decode %s", c)
	}
	if err != nil {
		log.Printf("[content] Error fetching %s: %v", c, err)
		return nil, errors.WithMessage(LoadErr(c), err.Error())
	}
	return out, nil
}

// ProjectService reads the projects feed.
type ProjectService struct {
	src Source
}

// NewProjectService returns a ProjectService over src.
func NewProjectService(src Source) *ProjectService {
	return &ProjectService{src: src}
}

// All returns every project in feed order.
func (s *ProjectService) All(ctx context.Context) ([]Project, error) {
	return load[Project](ctx, s.src, Projects)
}

// Featured returns only featured projects.
func (s *ProjectService) Featured(ctx context.Context) (out []Project, err error) {
	var all []Project
	if all, err = s.All(ctx); err != nil {
		return nil, errors.WithMessage(errors.Cause(err), "Failed to load featured projects")
	}
	for _, p := range all {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out, nil
}

// ByID returns the project with id and whether it exists.
func (s *ProjectService) ByID(ctx context.Context, id string) (p Project, ok bool, err error) {
	var all []Project
	if all, err = s.All(ctx); err != nil {
		return p, false, errors.WithMessagef(errors.Cause(err), "Failed to load project %s", id)
	}
	for _, p := range all {
		if p.ID == id {
			return p, true, nil
		}
	}
	return p, false, nil
}

// SkillService reads the skills feed.
type SkillService struct {
	src Source
}

// NewSkillService returns a SkillService over src.
func NewSkillService(src Source) *SkillService {
	return &SkillService{src: src}
}

// All returns every skill in feed order.
func (s *SkillService) All(ctx context.Context) ([]Skill, error) {
	return load[Skill](ctx, s.src, Skills)
}

// ByCategory returns the skills in one category.
func (s *SkillService) ByCategory(ctx context.Context, c Category) (out []Skill, err error) {
	var all []Skill
	if all, err = s.All(ctx); err != nil {
		return nil, errors.WithMessagef(errors.Cause(err), "Failed to load %s skills", c)
	}
	return FilterCategory(all, c), nil
}

// ByID returns the skill with id and whether it exists.
func (s *SkillService) ByID(ctx context.Context, id string) (sk Skill, ok bool, err error) {
	var all []Skill
	if all, err = s.All(ctx); err != nil {
		return sk, false, errors.WithMessagef(errors.Cause(err), "Failed to load skill %s", id)
	}
	for _, sk := range all {
		if sk.ID == id {
			return sk, true, nil
		}
	}
	return sk, false, nil
}

// SkillGroup is the skills of one category.
type SkillGroup struct {
	Category Category `json:"category"`
	Skills   []Skill  `json:"skills"`
}

// Grouped fetches once and groups by category in display order, omitting
// empty categories.
func (s *SkillService) Grouped(ctx context.Context) ([]SkillGroup, error) {
	all, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	return Group(all), nil
}

// FilterCategory returns the skills in c, preserving order.
func FilterCategory(skills []Skill, c Category) []Skill {
	var out []Skill
	for _, sk := range skills {
		if sk.Category == c {
			out = append(out, sk)
		}
	}
	return out
}

// Group splits skills by category in display order, omitting empty ones.
func Group(skills []Skill) []SkillGroup {
	var out []SkillGroup
	for _, c := range Categories {
		if in := FilterCategory(skills, c); len(in) > 0 {
			out = append(out, SkillGroup{Category: c, Skills: in})
		}
	}
	return out
}

// ExperienceService reads the experiences feed.
type ExperienceService struct {
	src Source
}

// NewExperienceService returns an ExperienceService over src.
func NewExperienceService(src Source) *ExperienceService {
	return &ExperienceService{src: src}
}

// All returns every position in feed order.
func (s *ExperienceService) All(ctx context.Context) ([]Experience, error) {
	return load[Experience](ctx, s.src, Experiences)
}

// Current returns the first position with no end date, if any.
func (s *ExperienceService) Current(ctx context.Context) (e Experience, ok bool, err error) {
	var all []Experience
	if all, err = s.All(ctx); err != nil {
		return e, false, err
	}
	for _, e := range all {
		if e.Current() {
			return e, true, nil
		}
	}
	return e, false, nil
}

// ByID returns the position with id and whether it exists.
func (s *ExperienceService) ByID(ctx context.Context, id string) (e Experience, ok bool, err error) {
	var all []Experience
	if all, err = s.All(ctx); err != nil {
		return e, false, errors.WithMessagef(errors.Cause(err), "Failed to load experience %s", id)
	}
	for _, e := range all {
		if e.ID == id {
			return e, true, nil
		}
	}
	return e, false, nil
}
