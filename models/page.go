package models

// OpenGraph holds the og:* fields of a page
type OpenGraph struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url,omitempty"`
	Type        string `json:"type"`
	SiteName    string `json:"site_name"`
}

// PageMetadata represents the SEO metadata of a rendered page
type PageMetadata struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Canonical   string    `json:"canonical,omitempty"`
	OpenGraph   OpenGraph `json:"open_graph"`
}

// Breadcrumb is one entry of the breadcrumb trail. The current page has no URL.
type Breadcrumb struct {
	Label string `json:"label"`
	URL   string `json:"url,omitempty"`
}

// SearchWidget configures the lawyer search widget embedded in a page
type SearchWidget struct {
	StateCode string `json:"state_code"`
	StateName string `json:"state_name"`
	Category  string `json:"category"`
}

// PracticeAreaPage represents a fully composed practice area page.
// Content is nil when no block has been authored for the pair.
type PracticeAreaPage struct {
	State        State         `json:"state"`
	PracticeArea PracticeArea  `json:"practice_area"`
	Metadata     PageMetadata  `json:"metadata"`
	Breadcrumbs  []Breadcrumb  `json:"breadcrumbs"`
	Heading      string        `json:"heading"`
	Search       SearchWidget  `json:"search"`
	Content      *ContentBlock `json:"content"`
}

// PracticeAreaLink is a practice area entry on a state overview page
type PracticeAreaLink struct {
	PracticeArea PracticeArea `json:"practice_area"`
	URL          string       `json:"url"`
	HasContent   bool         `json:"has_content"`
}

// StatePage represents the landing page of a single state
type StatePage struct {
	State         State              `json:"state"`
	Metadata      PageMetadata       `json:"metadata"`
	Breadcrumbs   []Breadcrumb       `json:"breadcrumbs"`
	PracticeAreas []PracticeAreaLink `json:"practice_areas"`
}

// StateLink is a state entry on the home page
type StateLink struct {
	State State  `json:"state"`
	URL   string `json:"url"`
}

// HomePage represents the site landing page
type HomePage struct {
	Metadata PageMetadata `json:"metadata"`
	States   []StateLink  `json:"states"`
}

// NotFoundPage represents the page rendered for unknown routes
type NotFoundPage struct {
	Metadata PageMetadata `json:"metadata"`
}
