package service

import (
	"context"
	"errors"
	"fmt"

	"ausverity-backend/directory"
	"ausverity-backend/models"
)

var (
	ErrInvalidSearch     = errors.New("invalid lawyer search")
	ErrSearchUnavailable = errors.New("lawyer search unavailable")
)

const (
	DefaultSearchLimit = 20
	MaxSearchLimit     = 100
)

// LawyerSearcher finds lawyer listings by state and category
type LawyerSearcher interface {
	Search(ctx context.Context, stateCode, category string, limit, offset int) ([]*models.Lawyer, error)
}

// LawyerService backs the lawyer search widget
type LawyerService struct {
	searcher LawyerSearcher
}

// LawyerServiceOption is a functional option for LawyerService
type LawyerServiceOption func(*LawyerService)

// WithLawyerSearcher sets the lawyer store
func WithLawyerSearcher(searcher LawyerSearcher) LawyerServiceOption {
	return func(s *LawyerService) {
		s.searcher = searcher
	}
}

// NewLawyerService creates a new lawyer service
func NewLawyerService(opts ...LawyerServiceOption) *LawyerService {
	s := &LawyerService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SearchLawyersRequest represents a lawyer search
type SearchLawyersRequest struct {
	State    string
	Category string
	Limit    int
	Offset   int
}

// SearchLawyersResult represents one page of search results
type SearchLawyersResult struct {
	Lawyers []*models.Lawyer
	Limit   int
	Offset  int
}

// Search validates the filters and returns matching lawyers
func (s *LawyerService) Search(ctx context.Context, req SearchLawyersRequest) (*SearchLawyersResult, error) {
	if !directory.IsValidStateCode(req.State) {
		return nil, fmt.Errorf("%w: unknown state %q", ErrInvalidSearch, req.State)
	}
	if !directory.IsValidCategory(req.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidSearch, req.Category)
	}
	if req.Offset < 0 {
		return nil, fmt.Errorf("%w: offset must not be negative", ErrInvalidSearch)
	}

	limit := req.Limit
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	if limit > MaxSearchLimit {
		limit = MaxSearchLimit
	}

	if s.searcher == nil {
		return nil, ErrSearchUnavailable
	}

	lawyers, err := s.searcher.Search(ctx, req.State, req.Category, limit, req.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to search lawyers: %w", err)
	}

	return &SearchLawyersResult{Lawyers: lawyers, Limit: limit, Offset: req.Offset}, nil
}
