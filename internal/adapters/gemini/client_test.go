package gemini_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newwork/staffhub/internal/adapters/gemini"
)

func newTestClient(url string) *gemini.Client {
	return gemini.NewClient(gemini.Config{
		APIURL:  url,
		APIKey:  "test-key",
		Timeout: 2 * time.Second,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestEnhance_Success(t *testing.T) {
	var gotKey string
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-goog-api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"A polished rendition."}]}}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	out, err := client.Enhance(context.Background(), "rough note", "Michael Chen")

	require.NoError(t, err)
	assert.Equal(t, "A polished rendition.", out)
	assert.Equal(t, "test-key", gotKey)

	// The raw text and the employee name both end up inside the prompt.
	raw, err := json.Marshal(gotBody)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "rough note")
	assert.Contains(t, string(raw), "Michael Chen")
}

func TestEnhance_MissingAPIKey(t *testing.T) {
	client := gemini.NewClient(gemini.Config{APIURL: "http://localhost:0"}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := client.Enhance(context.Background(), "rough note", "")

	require.Error(t, err)
}

func TestEnhance_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Enhance(context.Background(), "rough note", "")

	require.Error(t, err)
}

func TestEnhance_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates": not json`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Enhance(context.Background(), "rough note", "")

	require.Error(t, err)
}

func TestEnhance_NoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Enhance(context.Background(), "rough note", "")

	require.Error(t, err)
}

func TestEnhance_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient(server.URL).Enhance(ctx, "rough note", "")

	require.Error(t, err)
}
