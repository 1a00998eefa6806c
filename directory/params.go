package directory

import "ausverity-backend/models"

// StaticParams returns one RouteParams per (state, practice area) pair,
// states in the outer loop
func StaticParams() []models.RouteParams {
	params := make([]models.RouteParams, 0, len(states)*len(practiceAreas))
	for _, s := range states {
		for _, pa := range practiceAreas {
			params = append(params, models.RouteParams{State: s.Code, PracticeArea: pa.Slug})
		}
	}
	return params
}
