package googlesearch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"research_backend/internal/feature/research/domain"
)

// testConfig はペーシングを無効化したテスト用の設定を返します。
func testConfig(baseURL string) Config {
	return Config{
		APIKey:   "test-key",
		EngineID: "test-cx",
		BaseURL:  baseURL,
		Interval: 0,
	}
}

func TestNewGoogleSearch(t *testing.T) {
	t.Parallel()

	cfg := testConfig("https://api.test.com")
	client := &http.Client{}

	gs := NewGoogleSearch(cfg, client)

	if gs == nil {
		t.Fatal("expected non-nil client")
	}
	if gs.cfg.APIKey != cfg.APIKey {
		t.Errorf("expected API key %q, got %q", cfg.APIKey, gs.cfg.APIKey)
	}
}

func TestGoogleSearch_Search_Success(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Verify request parameters
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("expected key test-key, got %s", r.URL.Query().Get("key"))
		}
		if r.URL.Query().Get("cx") != "test-cx" {
			t.Errorf("expected cx test-cx, got %s", r.URL.Query().Get("cx"))
		}
		if r.URL.Query().Get("q") != "Acme Corp company profile about" {
			t.Errorf("unexpected query %s", r.URL.Query().Get("q"))
		}
		if r.URL.Query().Get("num") != "3" {
			t.Errorf("expected num 3, got %s", r.URL.Query().Get("num"))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"items": [
				{"title": "About Acme", "link": "https://example.com/about", "snippet": "Acme Corp is an anvil maker."},
				{"title": "Acme wiki", "link": "https://example.com/wiki", "snippet": "Acme Corp, founded in 1949."},
				{"title": "Acme news", "link": "https://example.com/news", "snippet": "Acme expands."}
			]
		}`))
	}))
	defer server.Close()

	gs := NewGoogleSearch(testConfig(server.URL), server.Client())

	results, err := gs.Search(context.Background(), "Acme Corp company profile about", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	// プロバイダの順位順を保持すること
	if results[0].Title != "About Acme" {
		t.Errorf("expected first title About Acme, got %s", results[0].Title)
	}
	if results[0].URL != "https://example.com/about" {
		t.Errorf("unexpected url %s", results[0].URL)
	}
	if results[1].Snippet != "Acme Corp, founded in 1949." {
		t.Errorf("unexpected snippet %s", results[1].Snippet)
	}
}

func TestGoogleSearch_Search_CapsResults(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"items": [
				{"title": "a", "link": "https://a", "snippet": "a"},
				{"title": "b", "link": "https://b", "snippet": "b"},
				{"title": "c", "link": "https://c", "snippet": "c"}
			]
		}`))
	}))
	defer server.Close()

	gs := NewGoogleSearch(testConfig(server.URL), server.Client())

	results, err := gs.Search(context.Background(), "query", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("expected at most 2 results, got %d", len(results))
	}
}

func TestGoogleSearch_Search_InvalidInput(t *testing.T) {
	t.Parallel()

	gs := NewGoogleSearch(testConfig("https://api.test.com"), &http.Client{})

	if _, err := gs.Search(context.Background(), "", 3); err == nil {
		t.Error("expected error for empty query")
	}
	if _, err := gs.Search(context.Background(), "query", 0); err == nil {
		t.Error("expected error for maxResults < 1")
	}
}

func TestGoogleSearch_Search_HTTPError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
	}{
		{"bad request", http.StatusBadRequest},
		{"forbidden", http.StatusForbidden},
		{"too many requests", http.StatusTooManyRequests},
		{"internal server error", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
			}))
			defer server.Close()

			gs := NewGoogleSearch(testConfig(server.URL), server.Client())

			_, err := gs.Search(context.Background(), "query", 3)
			if !errors.Is(err, domain.ErrSearchUnavailable) {
				t.Errorf("expected ErrSearchUnavailable, got %v", err)
			}
		})
	}
}

func TestGoogleSearch_Search_APIError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"error": {"code": 429, "message": "Quota exceeded"}}`))
	}))
	defer server.Close()

	gs := NewGoogleSearch(testConfig(server.URL), server.Client())

	_, err := gs.Search(context.Background(), "query", 3)
	if !errors.Is(err, domain.ErrSearchUnavailable) {
		t.Errorf("expected ErrSearchUnavailable, got %v", err)
	}
}

func TestGoogleSearch_Search_InvalidJSON(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{invalid json`))
	}))
	defer server.Close()

	gs := NewGoogleSearch(testConfig(server.URL), server.Client())

	_, err := gs.Search(context.Background(), "query", 3)
	if !errors.Is(err, domain.ErrSearchUnavailable) {
		t.Errorf("expected ErrSearchUnavailable, got %v", err)
	}
}

func TestGoogleSearch_Search_NoItems(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	gs := NewGoogleSearch(testConfig(server.URL), server.Client())

	results, err := gs.Search(context.Background(), "query", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected 0 results, got %d", len(results))
	}
}

func TestGoogleSearch_Search_ContextCancellation(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	gs := NewGoogleSearch(testConfig(server.URL), server.Client())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := gs.Search(ctx, "query", 3)
	if err == nil {
		t.Fatal("expected error due to context cancellation, got nil")
	}
}

func TestLoadConfig(t *testing.T) {
	cfg := LoadConfig()

	if cfg.Timeout != 10*time.Second {
		t.Errorf("expected timeout 10s, got %v", cfg.Timeout)
	}
	if cfg.Interval != 2*time.Second {
		t.Errorf("expected interval 2s, got %v", cfg.Interval)
	}
	if cfg.BaseURL == "" {
		t.Error("expected non-empty base URL")
	}
}
