package freedict

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"wordglance/internal/source"
)

const helloBody = `[
	{
		"word": "hello",
		"meanings": [
			{
				"partOfSpeech": "noun",
				"definitions": [
					{"definition": "A greeting.", "example": "She gave a cheerful hello."}
				]
			},
			{
				"partOfSpeech": "interjection",
				"definitions": [
					{"definition": "Used as a greeting.", "example": "Hello, how are you?"},
					{"definition": "Used to attract attention.", "example": ""}
				]
			}
		]
	},
	{
		"word": "hello",
		"meanings": [
			{
				"partOfSpeech": "",
				"definitions": [
					{"definition": "An instance of saying hello."}
				]
			}
		]
	}
]`

func TestClient_Definitions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/hello" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(helloBody))
	}))
	defer server.Close()

	client := New(Config{BaseURL: server.URL}, zap.NewNop())

	sections, err := client.Definitions(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Definitions() error = %v", err)
	}

	// one section per entry
	if len(sections) != 2 {
		t.Fatalf("len(sections) = %d, want 2", len(sections))
	}

	first := sections[0]
	if first.Source != "Free Dictionary API" {
		t.Errorf("Source = %q, want %q", first.Source, "Free Dictionary API")
	}
	// 1 noun + 2 interjection definitions flattened
	if len(first.Definitions) != 3 {
		t.Fatalf("len(Definitions) = %d, want 3", len(first.Definitions))
	}

	d0 := first.Definitions[0]
	if d0.Word != "hello" || d0.PartOfSpeech != "noun" || d0.Definition != "A greeting." {
		t.Errorf("Definitions[0] = %+v", d0)
	}
	if d0.Example != "She gave a cheerful hello." {
		t.Errorf("Definitions[0].Example = %q", d0.Example)
	}
	if first.Definitions[2].Example != "" {
		t.Errorf("Definitions[2].Example = %q, want empty", first.Definitions[2].Example)
	}

	// empty partOfSpeech carried through as empty string, not dropped
	second := sections[1]
	if len(second.Definitions) != 1 || second.Definitions[0].PartOfSpeech != "" {
		t.Errorf("sections[1].Definitions = %+v", second.Definitions)
	}
}

func TestClient_Definitions_Statuses(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		wantErr    error
		wantNil    bool
	}{
		{"not found is empty not error", http.StatusNotFound, `{"title":"No Definitions Found"}`, nil, true},
		{"server error", http.StatusInternalServerError, `boom`, source.ErrUnavailable, true},
		{"rate limited", http.StatusTooManyRequests, `slow down`, source.ErrUnavailable, true},
		{"malformed body", http.StatusOK, `{"not":"an array"}`, source.ErrBadResponse, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := New(Config{BaseURL: server.URL}, zap.NewNop())

			sections, err := client.Definitions(context.Background(), "hello")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Definitions() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantNil && sections != nil {
				t.Errorf("sections = %v, want nil", sections)
			}
		})
	}
}

func TestClient_Definitions_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	client := New(Config{BaseURL: server.URL, Timeout: time.Second}, zap.NewNop())

	_, err := client.Definitions(context.Background(), "hello")
	if !errors.Is(err, source.ErrUnavailable) {
		t.Errorf("Definitions() error = %v, want %v", err, source.ErrUnavailable)
	}
}
