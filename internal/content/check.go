package content

import (
	"context"
	"fmt"
	"sort"
)

// Problem is one content defect found by Check.
type Problem struct {
	Collection Collection
	ID         string
	Message    string
}

func (p Problem) String() string {
	if p.ID == "" {
		return fmt.Sprintf("%s: %s", p.Collection, p.Message)
	}
	return fmt.Sprintf("%s[%s]: %s", p.Collection, p.ID, p.Message)
}

// Check loads every collection from src and reports defects: load failures,
// duplicate or empty ids, missing translations, out-of-range skill levels,
// unknown categories and bad dates.
func Check(ctx context.Context, src Source) []Problem {
	var out []Problem
	add := func(c Collection, id, format string, args ...any) {
		out = append(out, Problem{Collection: c, ID: id, Message: fmt.Sprintf(format, args...)})
	}

	if projects, err := NewProjectService(src).All(ctx); err != nil {
		add(Projects, "", "%v", err)
	} else {
		ids := make(map[string]bool)
		for _, p := range projects {
			checkID(Projects, p.ID, ids, add)
			checkLocalized(Projects, p.ID, "title", p.Title, add)
			checkLocalized(Projects, p.ID, "description", p.Description, add)
		}
	}

	if skills, err := NewSkillService(src).All(ctx); err != nil {
		add(Skills, "", "%v", err)
	} else {
		ids := make(map[string]bool)
		for _, s := range skills {
			checkID(Skills, s.ID, ids, add)
			if s.Level < 0 || s.Level > 100 {
				add(Skills, s.ID, "level %d outside 0..100", s.Level)
			}
			if !s.Category.Valid() {
				add(Skills, s.ID, "unknown category %q", s.Category)
			}
		}
	}

	if exps, err := NewExperienceService(src).All(ctx); err != nil {
		add(Experiences, "", "%v", err)
	} else {
		ids := make(map[string]bool)
		for _, e := range exps {
			checkID(Experiences, e.ID, ids, add)
			checkLocalized(Experiences, e.ID, "company", e.Company, add)
			checkLocalized(Experiences, e.ID, "position", e.Position, add)
			checkLocalized(Experiences, e.ID, "description", e.Description, add)
			start, err := ParseMonth(e.StartDate)
			if err != nil {
				add(Experiences, e.ID, "startDate: %v", err)
				continue
			}
			if e.EndDate == "" {
				continue
			}
			end, err := ParseMonth(e.EndDate)
			if err != nil {
				add(Experiences, e.ID, "endDate: %v", err)
			} else if end.Before(start) {
				add(Experiences, e.ID, "endDate %s before startDate %s", e.EndDate, e.StartDate)
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Collection < out[j].Collection })
	return out
}

func checkID(c Collection, id string, seen map[string]bool, add func(Collection, string, string, ...any)) {
	switch {
	case id == "":
		add(c, id, "empty id")
	case seen[id]:
		add(c, id, "duplicate id")
	}
	seen[id] = true
}

func checkLocalized(c Collection, id, field string, l Localized, add func(Collection, string, string, ...any)) {
	if l.En == "" {
		add(c, id, "%s: missing en", field)
	}
	if l.Ar == "" {
		add(c, id, "%s: missing ar", field)
	}
}
