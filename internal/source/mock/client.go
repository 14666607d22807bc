// Package mock provides fake source clients for tests.
package mock

import (
	"context"
	"sync"
	"time"

	"wordglance/internal/domain"
)

type Dictionary struct {
	Sections []domain.DefinitionSection
	Error    error
	Delay    time.Duration

	CallCount  int
	LastQuery  string
	AllQueries []string

	mu sync.Mutex
}

func NewDictionary() *Dictionary {
	return &Dictionary{}
}

func (d *Dictionary) WithSections(sections []domain.DefinitionSection) *Dictionary {
	d.Sections = sections
	return d
}

func (d *Dictionary) WithError(err error) *Dictionary {
	d.Error = err
	return d
}

func (d *Dictionary) Definitions(ctx context.Context, query string) ([]domain.DefinitionSection, error) {
	d.mu.Lock()
	d.CallCount++
	d.LastQuery = query
	d.AllQueries = append(d.AllQueries, query)
	delay := d.Delay
	err := d.Error
	sections := d.Sections
	d.mu.Unlock()

	if delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}

	if err != nil {
		return nil, err
	}
	return sections, nil
}

func (d *Dictionary) Calls() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.CallCount
}

type Encyclopedia struct {
	Section *domain.WikipediaSection
	Error   error
	Delay   time.Duration

	CallCount  int
	LastQuery  string
	AllQueries []string

	mu sync.Mutex
}

func NewEncyclopedia() *Encyclopedia {
	return &Encyclopedia{}
}

func (e *Encyclopedia) WithSection(section *domain.WikipediaSection) *Encyclopedia {
	e.Section = section
	return e
}

func (e *Encyclopedia) WithError(err error) *Encyclopedia {
	e.Error = err
	return e
}

func (e *Encyclopedia) Summary(ctx context.Context, query string) (*domain.WikipediaSection, error) {
	e.mu.Lock()
	e.CallCount++
	e.LastQuery = query
	e.AllQueries = append(e.AllQueries, query)
	delay := e.Delay
	err := e.Error
	section := e.Section
	e.mu.Unlock()

	if delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}

	if err != nil {
		return nil, err
	}
	return section, nil
}

func (e *Encyclopedia) Calls() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.CallCount
}

type Thesaurus struct {
	Section *domain.ThesaurusSection
	Error   error

	CallCount int
	LastQuery string

	mu sync.Mutex
}

func NewThesaurus() *Thesaurus {
	return &Thesaurus{}
}

func (t *Thesaurus) WithSection(section *domain.ThesaurusSection) *Thesaurus {
	t.Section = section
	return t
}

func (t *Thesaurus) Related(ctx context.Context, query string) (*domain.ThesaurusSection, error) {
	t.mu.Lock()
	t.CallCount++
	t.LastQuery = query
	err := t.Error
	section := t.Section
	t.mu.Unlock()

	if err != nil {
		return nil, err
	}
	if section == nil {
		section = &domain.ThesaurusSection{}
	}
	return section, nil
}

func (t *Thesaurus) Calls() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.CallCount
}
