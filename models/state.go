package models

// State represents an Australian state or territory
type State struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
}

// PracticeArea represents a legal practice category
type PracticeArea struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// RouteParams identifies one statically generated practice area page
type RouteParams struct {
	State        string `json:"state"`
	PracticeArea string `json:"practiceArea"`
}
