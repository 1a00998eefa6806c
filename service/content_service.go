package service

import (
	"context"
	"errors"
	"fmt"

	"ausverity-backend/content"
	"ausverity-backend/metrics"

	"go.uber.org/zap"
)

var ErrNoContentSource = errors.New("content source not set")

// ContentService reloads and reports on the served content table
type ContentService struct {
	resolver *content.Resolver
	source   content.Source
	logger   *zap.Logger
	metrics  *metrics.Metrics
}

// ContentServiceOption is a functional option for ContentService
type ContentServiceOption func(*ContentService)

// ContentWithResolver sets the resolver whose table is replaced on reload
func ContentWithResolver(resolver *content.Resolver) ContentServiceOption {
	return func(s *ContentService) {
		s.resolver = resolver
	}
}

// ContentWithSource sets where content is loaded from
func ContentWithSource(source content.Source) ContentServiceOption {
	return func(s *ContentService) {
		s.source = source
	}
}

// ContentWithLogger sets the logger
func ContentWithLogger(logger *zap.Logger) ContentServiceOption {
	return func(s *ContentService) {
		s.logger = logger
	}
}

// ContentWithMetrics sets the metrics collectors
func ContentWithMetrics(m *metrics.Metrics) ContentServiceOption {
	return func(s *ContentService) {
		s.metrics = m
	}
}

// NewContentService creates a new content service
func NewContentService(opts ...ContentServiceOption) *ContentService {
	s := &ContentService{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	if s.resolver == nil {
		s.resolver = content.NewResolver(content.Table{})
	}
	return s
}

// Resolver returns the resolver served by this service
func (s *ContentService) Resolver() *content.Resolver {
	return s.resolver
}

// ReloadResult represents the outcome of a content reload
type ReloadResult struct {
	Source   string           `json:"source"`
	Blocks   int              `json:"blocks"`
	Coverage content.Coverage `json:"coverage"`
}

// Reload loads a fresh table from the source and swaps it in. On failure the
// current table keeps being served.
func (s *ContentService) Reload(ctx context.Context) (*ReloadResult, error) {
	if s.source == nil {
		return nil, ErrNoContentSource
	}

	table, err := s.source.Load(ctx)
	if err != nil {
		s.observeReload("error")
		s.logger.Error("content reload failed", zap.String("source", s.source.Name()), zap.Error(err))
		return nil, fmt.Errorf("failed to load content from %s: %w", s.source.Name(), err)
	}

	s.resolver.Swap(table)
	s.observeReload("ok")

	cov := content.Check(table)
	if s.metrics != nil {
		s.metrics.ContentBlocks.Set(float64(table.Len()))
	}

	fields := []zap.Field{
		zap.String("source", s.source.Name()),
		zap.Int("blocks", table.Len()),
		zap.Int("covered", cov.Covered),
		zap.Int("total", cov.Total),
	}
	if !cov.Complete() {
		fields = append(fields,
			zap.Int("missing", len(cov.Missing)),
			zap.Strings("unknown_states", cov.UnknownStates),
			zap.Int("unknown_slugs", len(cov.UnknownSlugs)),
		)
	}
	s.logger.Info("content loaded", fields...)

	return &ReloadResult{Source: s.source.Name(), Blocks: table.Len(), Coverage: cov}, nil
}

// Coverage reports coverage of the table currently being served
func (s *ContentService) Coverage() content.Coverage {
	return content.Check(s.resolver.Snapshot())
}

func (s *ContentService) observeReload(result string) {
	if s.metrics != nil {
		s.metrics.ContentReloads.WithLabelValues(result).Inc()
	}
}
