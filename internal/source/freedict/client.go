package freedict

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"wordglance/internal/domain"
	"wordglance/internal/source"
)

const (
	defaultBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"
	sourceName     = "Free Dictionary API"
)

type Config struct {
	BaseURL string
	Timeout time.Duration

	// HTTPClient overrides the default transport when set.
	HTTPClient *http.Client
}

type Client struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

func New(cfg Config, logger *zap.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		baseURL: cfg.BaseURL,
		client:  cfg.HTTPClient,
		logger:  logger,
	}
}

// wire format of api.dictionaryapi.dev: an array of entries, one per etymology
type apiEntry struct {
	Word     string       `json:"word"`
	Meanings []apiMeaning `json:"meanings"`
}

type apiMeaning struct {
	PartOfSpeech string          `json:"partOfSpeech"`
	Definitions  []apiDefinition `json:"definitions"`
}

type apiDefinition struct {
	Definition string `json:"definition"`
	Example    string `json:"example"`
}

// Definitions fetches dictionary entries for the query. A 404 from the API
// means "no entries" and yields (nil, nil) rather than an error.
func (c *Client) Definitions(ctx context.Context, query string) ([]domain.DefinitionSection, error) {
	reqURL := c.baseURL + "/" + url.PathEscape(query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", source.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		c.logger.Info("no dictionary entries",
			zap.String("source", sourceName),
			zap.String("query", query),
		)
		return nil, nil
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", source.ErrUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", source.ErrUnavailable, err)
	}

	var entries []apiEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", source.ErrBadResponse, err)
	}

	sections := toSections(entries)

	c.logger.Debug("dictionary entries fetched",
		zap.String("query", query),
		zap.Int("entries", len(sections)),
	)

	return sections, nil
}

// toSections flattens entries -> meanings -> definitions, one
// DefinitionSection per entry.
func toSections(entries []apiEntry) []domain.DefinitionSection {
	var sections []domain.DefinitionSection
	for _, entry := range entries {
		var defs []domain.Definition
		for _, meaning := range entry.Meanings {
			for _, def := range meaning.Definitions {
				defs = append(defs, domain.Definition{
					Word:         entry.Word,
					PartOfSpeech: meaning.PartOfSpeech,
					Definition:   def.Definition,
					Example:      def.Example,
				})
			}
		}
		sections = append(sections, domain.DefinitionSection{
			Source:      sourceName,
			Definitions: defs,
		})
	}
	return sections
}
