package wikipedia

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"wordglance/internal/domain"
	"wordglance/internal/source"
)

const (
	defaultBaseURL   = "https://en.wikipedia.org/api/rest_v1/page/summary"
	defaultUserAgent = "wordglance/0.1 (dictionary lookup tool)"

	// extracts containing this phrase are disambiguation stubs, not content
	disambiguationMarker = "may refer to"
)

type Config struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration

	// HTTPClient overrides the default transport when set.
	HTTPClient *http.Client
}

type Client struct {
	baseURL   string
	userAgent string
	client    *http.Client
	logger    *zap.Logger
}

func New(cfg Config, logger *zap.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
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
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		client:    cfg.HTTPClient,
		logger:    logger,
	}
}

// wire format of the REST v1 page summary endpoint
type apiSummary struct {
	Title       string        `json:"title"`
	Extract     string        `json:"extract"`
	Thumbnail   *apiThumbnail `json:"thumbnail"`
	ContentURLs apiContent    `json:"content_urls"`
}

type apiThumbnail struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type apiContent struct {
	Desktop apiDesktop `json:"desktop"`
}

type apiDesktop struct {
	Page string `json:"page"`
}

// Summary fetches the page summary for the query. Pages that do not exist
// map to source.ErrNotFound; disambiguation stubs and pages without extract
// text map to source.ErrDisambiguation.
func (c *Client) Summary(ctx context.Context, query string) (*domain.WikipediaSection, error) {
	slug := strings.ReplaceAll(query, " ", "_")
	reqURL := c.baseURL + "/" + url.PathEscape(slug)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", source.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, source.ErrNotFound
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", source.ErrUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", source.ErrUnavailable, err)
	}

	var summary apiSummary
	if err := json.Unmarshal(body, &summary); err != nil {
		return nil, fmt.Errorf("%w: %v", source.ErrBadResponse, err)
	}

	if summary.Extract == "" || strings.Contains(strings.ToLower(summary.Extract), disambiguationMarker) {
		return nil, source.ErrDisambiguation
	}

	section := &domain.WikipediaSection{
		Title:      summary.Title,
		Summary:    summary.Extract,
		Paragraphs: splitParagraphs(summary.Extract),
		URL:        summary.ContentURLs.Desktop.Page,
	}
	if summary.Thumbnail != nil {
		section.ImageURL = summary.Thumbnail.Source
	}

	c.logger.Debug("wikipedia summary fetched",
		zap.String("query", query),
		zap.String("title", section.Title),
		zap.Int("paragraphs", len(section.Paragraphs)),
	)

	return section, nil
}

func splitParagraphs(extract string) []string {
	var paragraphs []string
	for _, line := range strings.Split(extract, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			paragraphs = append(paragraphs, line)
		}
	}
	return paragraphs
}
