package domain

type ContentType string

const (
	ContentTypeWord   ContentType = "word"
	ContentTypeEntity ContentType = "entity"
	ContentTypeMixed  ContentType = "mixed"
)

func (c ContentType) IsValid() bool {
	switch c {
	case ContentTypeWord, ContentTypeEntity, ContentTypeMixed:
		return true
	}
	return false
}

func (c ContentType) String() string { return string(c) }

// LookupResult is the aggregated answer for one query. Built once per
// lookup and never mutated afterwards.
type LookupResult struct {
	Query       string      `json:"query"`
	ContentType ContentType `json:"content_type"`
	Sections    Sections    `json:"sections"`
}

// Sections holds whatever the sources produced. A field is nil when its
// source failed or returned nothing, never present-but-empty.
type Sections struct {
	Definitions []DefinitionSection `json:"definitions,omitempty"`
	Wikipedia   *WikipediaSection   `json:"wikipedia,omitempty"`
	Thesaurus   *ThesaurusSection   `json:"thesaurus,omitempty"`
}

type DefinitionSection struct {
	Source      string       `json:"source"`
	Definitions []Definition `json:"definitions"`
}

type Definition struct {
	Word         string `json:"word"`
	PartOfSpeech string `json:"part_of_speech,omitempty"`
	Definition   string `json:"definition"`
	Example      string `json:"example,omitempty"`
}

type WikipediaSection struct {
	Title      string   `json:"title"`
	Summary    string   `json:"summary"`
	Paragraphs []string `json:"paragraphs"`
	ImageURL   string   `json:"image_url,omitempty"`
	URL        string   `json:"url"`
}

type ThesaurusSection struct {
	Synonyms     []string `json:"synonyms"`
	Antonyms     []string `json:"antonyms"`
	RelatedTerms []string `json:"related_terms"`
}

func (t *ThesaurusSection) Empty() bool {
	if t == nil {
		return true
	}
	return len(t.Synonyms) == 0 && len(t.Antonyms) == 0 && len(t.RelatedTerms) == 0
}
