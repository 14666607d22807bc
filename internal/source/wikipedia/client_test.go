package wikipedia

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"go.uber.org/zap"

	"wordglance/internal/source"
)

func summaryBody(title, extract string) string {
	b, _ := json.Marshal(map[string]any{
		"title":   title,
		"extract": extract,
		"thumbnail": map[string]any{
			"source": "https://upload.wikimedia.org/thumb.jpg",
			"width":  320,
			"height": 240,
		},
		"content_urls": map[string]any{
			"desktop": map[string]any{"page": "https://en.wikipedia.org/wiki/" + title},
		},
	})
	return string(b)
}

func TestClient_Summary(t *testing.T) {
	var gotPath, gotAgent string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(summaryBody("Black hole", "A black hole is a region of spacetime.\n\n It has an event horizon. ")))
	}))
	defer server.Close()

	client := New(Config{BaseURL: server.URL, UserAgent: "wordglance-test/1.0"}, zap.NewNop())

	section, err := client.Summary(context.Background(), "black hole")
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}

	// spaces become underscores in the slug
	if gotPath != "/black_hole" {
		t.Errorf("request path = %q, want %q", gotPath, "/black_hole")
	}
	if gotAgent != "wordglance-test/1.0" {
		t.Errorf("User-Agent = %q", gotAgent)
	}

	if section.Title != "Black hole" {
		t.Errorf("Title = %q", section.Title)
	}
	wantParagraphs := []string{
		"A black hole is a region of spacetime.",
		"It has an event horizon.",
	}
	if !reflect.DeepEqual(section.Paragraphs, wantParagraphs) {
		t.Errorf("Paragraphs = %v, want %v", section.Paragraphs, wantParagraphs)
	}
	if section.ImageURL != "https://upload.wikimedia.org/thumb.jpg" {
		t.Errorf("ImageURL = %q", section.ImageURL)
	}
	if section.URL != "https://en.wikipedia.org/wiki/Black hole" {
		t.Errorf("URL = %q", section.URL)
	}
}

func TestClient_Summary_Failures(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		wantErr    error
	}{
		{"page not found", http.StatusNotFound, `{"title":"Not found."}`, source.ErrNotFound},
		{"disambiguation", http.StatusOK, summaryBody("Mercury", "Mercury may refer to:"), source.ErrDisambiguation},
		{"disambiguation mixed case", http.StatusOK, summaryBody("Mercury", "Mercury MAY Refer To several things."), source.ErrDisambiguation},
		{"empty extract", http.StatusOK, summaryBody("Stub", ""), source.ErrDisambiguation},
		{"server error", http.StatusInternalServerError, `boom`, source.ErrUnavailable},
		{"malformed body", http.StatusOK, `[1,2,3]`, source.ErrBadResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := New(Config{BaseURL: server.URL}, zap.NewNop())

			section, err := client.Summary(context.Background(), "mercury")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Summary() error = %v, wantErr %v", err, tt.wantErr)
			}
			if section != nil {
				t.Errorf("section = %+v, want nil", section)
			}
		})
	}
}

func TestClient_Summary_NoThumbnail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"title": "Hello",
			"extract": "A greeting.",
			"content_urls": {"desktop": {"page": "https://en.wikipedia.org/wiki/Hello"}}
		}`))
	}))
	defer server.Close()

	client := New(Config{BaseURL: server.URL}, zap.NewNop())

	section, err := client.Summary(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	if section.ImageURL != "" {
		t.Errorf("ImageURL = %q, want empty", section.ImageURL)
	}
}
