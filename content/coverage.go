package content

import (
	"sort"

	"ausverity-backend/directory"
	"ausverity-backend/models"
)

// Coverage reports how much of the state x practice area space has content
type Coverage struct {
	Total         int                  `json:"total"`
	Covered       int                  `json:"covered"`
	Missing       []models.RouteParams `json:"missing"`
	UnknownStates []string             `json:"unknown_states,omitempty"`
	UnknownSlugs  []models.RouteParams `json:"unknown_slugs,omitempty"`
}

// Complete reports whether every valid pair has content and nothing unknown was loaded
func (c Coverage) Complete() bool {
	return len(c.Missing) == 0 && len(c.UnknownStates) == 0 && len(c.UnknownSlugs) == 0
}

// Check compares t against the enumerated states and practice areas
func Check(t Table) Coverage {
	params := directory.StaticParams()
	cov := Coverage{Total: len(params), Missing: []models.RouteParams{}}

	for _, p := range params {
		if _, ok := t[p.State][p.PracticeArea]; ok {
			cov.Covered++
		} else {
			cov.Missing = append(cov.Missing, p)
		}
	}

	for state, areas := range t {
		if !directory.IsValidStateCode(state) {
			cov.UnknownStates = append(cov.UnknownStates, state)
			continue
		}
		for slug := range areas {
			if !directory.IsValidPracticeAreaSlug(slug) {
				cov.UnknownSlugs = append(cov.UnknownSlugs, models.RouteParams{State: state, PracticeArea: slug})
			}
		}
	}

	sort.Strings(cov.UnknownStates)
	sort.Slice(cov.UnknownSlugs, func(i, j int) bool {
		a, b := cov.UnknownSlugs[i], cov.UnknownSlugs[j]
		if a.State != b.State {
			return a.State < b.State
		}
		return a.PracticeArea < b.PracticeArea
	})

	return cov
}
