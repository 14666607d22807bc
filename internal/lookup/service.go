// Package lookup aggregates the upstream reference sources into one
// LookupResult. Source failures never fail the lookup as a whole; they
// only leave the matching section absent.
package lookup

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"wordglance/internal/domain"
	"wordglance/internal/metrics"
	"wordglance/internal/source"
)

type Config struct {
	// SourceTimeout bounds the whole source fan-out of one lookup.
	SourceTimeout time.Duration
}

type Deps struct {
	Dictionary   source.DictionaryClient
	Encyclopedia source.EncyclopediaClient
	Thesaurus    source.ThesaurusClient
	Logger       *zap.Logger
	Metrics      *metrics.Metrics
	Config       Config
}

type Service struct {
	dictionary   source.DictionaryClient
	encyclopedia source.EncyclopediaClient
	thesaurus    source.ThesaurusClient
	logger       *zap.Logger
	metrics      *metrics.Metrics
	config       Config
}

func New(deps Deps) *Service {
	if deps.Config.SourceTimeout == 0 {
		deps.Config.SourceTimeout = 15 * time.Second
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &Service{
		dictionary:   deps.Dictionary,
		encyclopedia: deps.Encyclopedia,
		thesaurus:    deps.Thesaurus,
		logger:       deps.Logger,
		metrics:      deps.Metrics,
		config:       deps.Config,
	}
}

// Lookup is the single public operation behind every surface: normalize the
// raw query, classify it on its original casing, fetch the sources the
// classification asks for, and assemble the result. Only an empty query
// fails; everything else degrades to absent sections.
func (s *Service) Lookup(ctx context.Context, raw string) (*domain.LookupResult, error) {
	start := time.Now()

	if s.metrics != nil {
		s.metrics.IncLookupsInFlight()
		defer s.metrics.DecLookupsInFlight()
	}

	normalized := domain.Normalize(raw)
	if normalized == "" {
		if s.metrics != nil {
			s.metrics.RecordLookup("none", "empty_query", time.Since(start))
		}
		return nil, domain.ErrEmptyQuery
	}

	// classification needs the raw input: Normalize has already thrown
	// away the casing and the original token boundaries
	contentType := domain.Classify(raw)

	s.logger.Info("processing lookup",
		zap.String("query", normalized),
		zap.String("content_type", contentType.String()),
	)

	sections := s.aggregate(ctx, normalized, contentType)

	s.logger.Info("lookup processed",
		zap.String("query", normalized),
		zap.Bool("definitions", sections.Definitions != nil),
		zap.Bool("wikipedia", sections.Wikipedia != nil),
		zap.Bool("thesaurus", sections.Thesaurus != nil),
	)

	if s.metrics != nil {
		s.metrics.RecordLookup(contentType.String(), "success", time.Since(start))
	}

	return &domain.LookupResult{
		Query:       normalized,
		ContentType: contentType,
		Sections:    sections,
	}, nil
}

// aggregate decides which sources to call per content type and joins their
// outcomes. Entities skip the dictionary and thesaurus entirely; words and
// mixed queries hit everything. The calls have no ordering dependency, so
// they run concurrently.
func (s *Service) aggregate(ctx context.Context, query string, contentType domain.ContentType) domain.Sections {
	ctx, cancel := context.WithTimeout(ctx, s.config.SourceTimeout)
	defer cancel()

	withDictionary := contentType == domain.ContentTypeWord || contentType == domain.ContentTypeMixed

	var sections domain.Sections
	g, ctx := errgroup.WithContext(ctx)

	if withDictionary {
		g.Go(func() error {
			sections.Definitions = s.fetchDefinitions(ctx, query)
			return nil
		})
		g.Go(func() error {
			sections.Thesaurus = s.fetchThesaurus(ctx, query)
			return nil
		})
	}

	g.Go(func() error {
		sections.Wikipedia = s.fetchSummary(ctx, query)
		return nil
	})

	g.Wait()
	return sections
}

func (s *Service) fetchDefinitions(ctx context.Context, query string) []domain.DefinitionSection {
	start := time.Now()

	defs, err := s.dictionary.Definitions(ctx, query)
	if err != nil {
		s.logger.Error("dictionary fetch failed",
			zap.String("source", "dictionary"),
			zap.String("query", query),
			zap.Error(err),
		)
		s.recordSource("dictionary", "error", start)
		return nil
	}

	if len(defs) == 0 {
		s.logger.Info("no definitions found",
			zap.String("source", "dictionary"),
			zap.String("query", query),
		)
		s.recordSource("dictionary", "not_found", start)
		return nil
	}

	s.recordSource("dictionary", "success", start)
	return defs
}

func (s *Service) fetchSummary(ctx context.Context, query string) *domain.WikipediaSection {
	start := time.Now()

	section, err := s.encyclopedia.Summary(ctx, query)
	switch {
	case errors.Is(err, source.ErrNotFound):
		s.logger.Info("no encyclopedia page",
			zap.String("source", "wikipedia"),
			zap.String("query", query),
		)
		s.recordSource("wikipedia", "not_found", start)
		return nil
	case errors.Is(err, source.ErrDisambiguation):
		s.logger.Warn("disambiguation or no content",
			zap.String("source", "wikipedia"),
			zap.String("query", query),
		)
		s.recordSource("wikipedia", "disambiguation", start)
		return nil
	case err != nil:
		s.logger.Error("encyclopedia fetch failed",
			zap.String("source", "wikipedia"),
			zap.String("query", query),
			zap.Error(err),
		)
		s.recordSource("wikipedia", "error", start)
		return nil
	}

	s.recordSource("wikipedia", "success", start)
	return section
}

func (s *Service) fetchThesaurus(ctx context.Context, query string) *domain.ThesaurusSection {
	start := time.Now()

	section, err := s.thesaurus.Related(ctx, query)
	if err != nil {
		s.logger.Warn("thesaurus fetch failed",
			zap.String("source", "thesaurus"),
			zap.String("query", query),
			zap.Error(err),
		)
		s.recordSource("thesaurus", "error", start)
		return nil
	}

	// absent rather than present-but-empty
	if section.Empty() {
		s.recordSource("thesaurus", "not_found", start)
		return nil
	}

	s.recordSource("thesaurus", "success", start)
	return section
}

func (s *Service) recordSource(name, status string, start time.Time) {
	if s.metrics != nil {
		s.metrics.RecordSourceRequest(name, status, time.Since(start))
	}
}
