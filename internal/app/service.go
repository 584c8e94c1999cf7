// Package app provides the core analysis service consumed by the HTTP
// API. Every analysis call performs one full reload from the record
// store and recomputes its view; nothing is cached between passes, so a
// freshly appended record becomes visible on the next call at the latest.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	repository "github.com/nobuchiyo/studylens/internal/adapters/repository"
	"github.com/nobuchiyo/studylens/internal/domain/filter"
	"github.com/nobuchiyo/studylens/internal/domain/model"
	"github.com/nobuchiyo/studylens/internal/domain/normalize"
	"github.com/nobuchiyo/studylens/internal/domain/stats"
	"github.com/nobuchiyo/studylens/internal/domain/tags"
	"github.com/nobuchiyo/studylens/pkg/logger"
	"github.com/nobuchiyo/studylens/pkg/metrics"
)

// Service implements the analysis and submission operations.
type Service struct {
	store      repository.Store
	normalizer *normalize.Normalizer

	departments []string
	vocabulary  []string

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore sets the backing record store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithNormalizer sets a custom normalizer.
func WithNormalizer(n *normalize.Normalizer) Option {
	return func(s *Service) {
		if n != nil {
			s.normalizer = n
		}
	}
}

// WithDepartments sets the known department list.
func WithDepartments(departments []string) Option {
	return func(s *Service) {
		if len(departments) > 0 {
			s.departments = departments
		}
	}
}

// WithStyleVocabulary sets the default style checklist offered to the
// entry surface. Tags outside it are still accepted everywhere.
func WithStyleVocabulary(vocabulary []string) Option {
	return func(s *Service) {
		s.vocabulary = vocabulary
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		store:      repository.NewMemoryStore(),
		normalizer: normalize.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Departments returns the configured department list.
func (s *Service) Departments() []string {
	return s.departments
}

// StyleVocabulary returns the configured default style checklist.
func (s *Service) StyleVocabulary() []string {
	return s.vocabulary
}

// reload fetches the complete record set and normalizes it.
func (s *Service) reload(ctx context.Context) ([]model.Record, error) {
	start := time.Now()
	rows, err := s.store.Load(ctx)
	if err != nil {
		metrics.RecordStoreError("load", errKind(err))
		return nil, fmt.Errorf("load records: %w", err)
	}

	records, report := s.normalizer.Normalize(rows)
	for i := 0; i < report.MalformedFields; i++ {
		metrics.RecordMalformedField()
	}
	metrics.RecordReload(float64(time.Since(start).Milliseconds()), len(records))

	if s.logger != nil {
		s.logger.Debug(ctx, "reloaded record set",
			logger.Int("records", len(records)),
			logger.Int("malformed_fields", report.MalformedFields),
		)
	}
	return records, nil
}

// Records returns the normalized records passing the selection.
func (s *Service) Records(ctx context.Context, sel filter.Selection) ([]model.Record, error) {
	records, err := s.reload(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Apply(records, sel), nil
}

// Overview computes overall statistics over the selected records. An
// empty selection result is an expected state, not an error: count is
// zero and the means are undefined.
func (s *Service) Overview(ctx context.Context, sel filter.Selection) (stats.Summary, error) {
	records, err := s.Records(ctx, sel)
	if err != nil {
		return stats.Summary{}, err
	}
	return stats.Summarize(records), nil
}

// CompareByTag computes the per-style comparison table over the selected
// records. A nil order lists tags by first appearance in the selection.
func (s *Service) CompareByTag(ctx context.Context, sel filter.Selection, order []string) ([]stats.TagSummary, error) {
	records, err := s.Records(ctx, sel)
	if err != nil {
		return nil, err
	}
	return stats.SummarizeByTag(records, order), nil
}

// DistinctTags returns the tag universe of the full, unfiltered record
// set, so filter options never hide a tag merely because a different
// filter pass currently matches nothing.
func (s *Service) DistinctTags(ctx context.Context) ([]string, error) {
	records, err := s.reload(ctx)
	if err != nil {
		return nil, err
	}
	universe := tags.Distinct(records)
	metrics.UpdateDistinctTags(len(universe))
	return universe, nil
}

// Submit appends one record to the store. The append is fire-and-forget
// relative to analysis: the record may not be visible until the next
// reload. Store failures surface to the caller.
func (s *Service) Submit(ctx context.Context, rec model.Record) error {
	if err := s.store.Append(ctx, rec); err != nil {
		metrics.RecordStoreError("append", errKind(err))
		return fmt.Errorf("append record: %w", err)
	}
	metrics.RecordAppend()
	if s.logger != nil {
		s.logger.Info(ctx, "record appended",
			logger.String("department", rec.Department),
			logger.Int("tags", len(rec.StyleTags)),
		)
	}
	return nil
}

// errKind labels a store error for metrics.
func errKind(err error) string {
	switch {
	case errors.Is(err, repository.ErrStoreRejected):
		return "rejected"
	case errors.Is(err, repository.ErrStoreUnavailable):
		return "unavailable"
	default:
		return "unknown"
	}
}
