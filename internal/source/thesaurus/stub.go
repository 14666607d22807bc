// Package thesaurus holds the thesaurus source. No upstream API is
// integrated yet; Stub keeps the aggregator contract in place so a real
// client can be swapped in without touching callers.
package thesaurus

import (
	"context"

	"wordglance/internal/domain"
)

type Stub struct{}

func NewStub() *Stub { return &Stub{} }

// Related always succeeds with an empty section.
func (s *Stub) Related(ctx context.Context, query string) (*domain.ThesaurusSection, error) {
	return &domain.ThesaurusSection{
		Synonyms:     []string{},
		Antonyms:     []string{},
		RelatedTerms: []string{},
	}, nil
}
