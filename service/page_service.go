package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ausverity-backend/directory"
	"ausverity-backend/models"
)

var ErrPageNotFound = errors.New("page not found")

const (
	defaultSiteName     = "AusVerity"
	notFoundTitle       = "Page Not Found"
	notFoundDescription = "The page you are looking for could not be found."
)

// ContentResolver resolves the content block for a state and practice area.
// A nil block means no content has been authored for the pair.
type ContentResolver interface {
	Resolve(stateCode, slug string) *models.ContentBlock
}

// PageService composes practice area pages
type PageService struct {
	resolver ContentResolver
	baseURL  string
	siteName string
}

// PageServiceOption is a functional option for PageService
type PageServiceOption func(*PageService)

// WithContentResolver sets the content resolver
func WithContentResolver(resolver ContentResolver) PageServiceOption {
	return func(s *PageService) {
		s.resolver = resolver
	}
}

// WithBaseURL sets the absolute site URL used for canonical links
func WithBaseURL(baseURL string) PageServiceOption {
	return func(s *PageService) {
		s.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithSiteName sets the site name used in titles
func WithSiteName(name string) PageServiceOption {
	return func(s *PageService) {
		if name != "" {
			s.siteName = name
		}
	}
}

// NewPageService creates a new page service
func NewPageService(opts ...PageServiceOption) *PageService {
	s := &PageService{siteName: defaultSiteName}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// BuildPageRequest represents a request for a practice area page
type BuildPageRequest struct {
	State        string
	PracticeArea string
}

// BuildPageResult represents a composed practice area page
type BuildPageResult struct {
	Page *models.PracticeAreaPage
}

// BuildPage validates the route parameters and composes the page. Either
// parameter being unknown yields ErrPageNotFound. A valid pair without
// content still builds a page, with a nil Content.
func (s *PageService) BuildPage(ctx context.Context, req BuildPageRequest) (*BuildPageResult, error) {
	state, ok := directory.GetStateByCode(req.State)
	if !ok {
		return nil, ErrPageNotFound
	}
	area, ok := directory.GetPracticeAreaBySlug(req.PracticeArea)
	if !ok {
		return nil, ErrPageNotFound
	}

	var block *models.ContentBlock
	if s.resolver != nil {
		block = s.resolver.Resolve(state.Code, area.Slug)
	}

	page := &models.PracticeAreaPage{
		State:        state,
		PracticeArea: area,
		Metadata:     s.practiceAreaMetadata(state, area),
		Breadcrumbs: []models.Breadcrumb{
			{Label: "Home", URL: "/"},
			{Label: state.Name, URL: statePath(state.Code)},
			{Label: area.Name},
		},
		Heading: heading(state, area),
		Search: models.SearchWidget{
			StateCode: state.Code,
			StateName: state.Name,
			Category:  area.Category,
		},
		Content: block,
	}

	return &BuildPageResult{Page: page}, nil
}

// Metadata returns the page metadata for a route. Unknown routes get the
// not-found metadata.
func (s *PageService) Metadata(stateCode, slug string) models.PageMetadata {
	state, ok := directory.GetStateByCode(stateCode)
	if !ok {
		return s.NotFoundMetadata()
	}
	area, ok := directory.GetPracticeAreaBySlug(slug)
	if !ok {
		return s.NotFoundMetadata()
	}
	return s.practiceAreaMetadata(state, area)
}

// NotFoundMetadata returns the metadata of the not-found page
func (s *PageService) NotFoundMetadata() models.PageMetadata {
	return models.PageMetadata{
		Title:       notFoundTitle,
		Description: notFoundDescription,
		OpenGraph: models.OpenGraph{
			Title:       notFoundTitle,
			Description: notFoundDescription,
			Type:        "website",
			SiteName:    s.siteName,
		},
	}
}

// HomeMetadata returns the metadata of the home page
func (s *PageService) HomeMetadata() models.PageMetadata {
	title := fmt.Sprintf("Find a Lawyer in Australia | %s", s.siteName)
	description := "Compare verified Australian lawyers by state and practice area, and learn how the law works where you live."
	return s.metadata(title, description, "/")
}

// Home composes the landing page listing every state
func (s *PageService) Home() *models.HomePage {
	states := directory.States()
	links := make([]models.StateLink, 0, len(states))
	for _, state := range states {
		links = append(links, models.StateLink{State: state, URL: statePath(state.Code)})
	}
	return &models.HomePage{Metadata: s.HomeMetadata(), States: links}
}

// NotFound composes the page shown for unknown routes
func (s *PageService) NotFound() *models.NotFoundPage {
	return &models.NotFoundPage{Metadata: s.NotFoundMetadata()}
}

// StaticParams returns every (state, practice area) route to pre-render
func (s *PageService) StaticParams() []models.RouteParams {
	return directory.StaticParams()
}

// StateOverviewRequest represents a request for a state landing page
type StateOverviewRequest struct {
	State string
}

// StateOverviewResult represents a composed state landing page
type StateOverviewResult struct {
	Page *models.StatePage
}

// StateOverview lists every practice area for a state and whether it has content
func (s *PageService) StateOverview(ctx context.Context, req StateOverviewRequest) (*StateOverviewResult, error) {
	state, ok := directory.GetStateByCode(req.State)
	if !ok {
		return nil, ErrPageNotFound
	}

	areas := directory.PracticeAreas()
	links := make([]models.PracticeAreaLink, 0, len(areas))
	for _, area := range areas {
		links = append(links, models.PracticeAreaLink{
			PracticeArea: area,
			URL:          practiceAreaPath(state.Code, area.Slug),
			HasContent:   s.resolver != nil && s.resolver.Resolve(state.Code, area.Slug) != nil,
		})
	}

	title := fmt.Sprintf("Lawyers in %s | %s", state.Name, s.siteName)
	description := fmt.Sprintf("Browse lawyers in %s by practice area and read plain-English guides to the law in %s.", state.Name, state.ShortName)

	page := &models.StatePage{
		State:    state,
		Metadata: s.metadata(title, description, statePath(state.Code)),
		Breadcrumbs: []models.Breadcrumb{
			{Label: "Home", URL: "/"},
			{Label: state.Name},
		},
		PracticeAreas: links,
	}

	return &StateOverviewResult{Page: page}, nil
}

func (s *PageService) practiceAreaMetadata(state models.State, area models.PracticeArea) models.PageMetadata {
	title := fmt.Sprintf("%s Lawyers in %s | %s", area.Name, state.Name, s.siteName)
	description := fmt.Sprintf(
		"Find experienced %s lawyers in %s. Learn how %s works in %s and connect with verified local lawyers.",
		area.Name, state.Name, strings.ToLower(area.Name), state.ShortName,
	)
	return s.metadata(title, description, practiceAreaPath(state.Code, area.Slug))
}

func (s *PageService) metadata(title, description, path string) models.PageMetadata {
	canonical := s.baseURL + path
	return models.PageMetadata{
		Title:       title,
		Description: description,
		Canonical:   canonical,
		OpenGraph: models.OpenGraph{
			Title:       title,
			Description: description,
			URL:         canonical,
			Type:        "website",
			SiteName:    s.siteName,
		},
	}
}

func heading(state models.State, area models.PracticeArea) string {
	return fmt.Sprintf("%s Lawyers in %s", area.Name, state.Name)
}

func statePath(stateCode string) string {
	return "/" + stateCode
}

func practiceAreaPath(stateCode, slug string) string {
	return "/" + stateCode + "/" + slug
}
