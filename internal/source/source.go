package source

import (
	"context"
	"errors"

	"wordglance/internal/domain"
)

var (
	ErrNotFound       = errors.New("no such entry")
	ErrDisambiguation = errors.New("disambiguation or no content")
	ErrUnavailable    = errors.New("source unavailable")
	ErrBadResponse    = errors.New("unexpected source response")
)

// DictionaryClient fetches word definitions. A nil slice with a nil error
// means the source answered but has no entries for the query.
type DictionaryClient interface {
	Definitions(ctx context.Context, query string) ([]domain.DefinitionSection, error)
}

type EncyclopediaClient interface {
	Summary(ctx context.Context, query string) (*domain.WikipediaSection, error)
}

type ThesaurusClient interface {
	Related(ctx context.Context, query string) (*domain.ThesaurusSection, error)
}
