package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumatch-utils/internal/config"
	"resumatch-utils/internal/logging"
)

func newTestFetcher(t *testing.T) *Fetcher {
	t.Helper()
	cfg := &config.Config{}
	cfg.Fetcher.UserAgent = "resumatch-test"
	cfg.Fetcher.RequestTimeout = 5 * time.Second
	cfg.Fetcher.RatePerSecond = 100
	return New(cfg, nil, logging.GetGlobalLogger())
}

func TestFetchTextStripsNonContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><head>
			<style>body { color: red; }</style>
			<script>console.log("tracking")</script>
		</head><body>
			<h1>Backend Engineer</h1>
			<p>We need Kubernetes experience.</p>
			<noscript>Enable JS</noscript>
		</body></html>`))
	}))
	defer server.Close()

	text, err := newTestFetcher(t).FetchText(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Contains(t, text, "Backend Engineer")
	assert.Contains(t, text, "We need Kubernetes experience.")
	assert.NotContains(t, text, "tracking")
	assert.NotContains(t, text, "color: red")
	assert.NotContains(t, text, "Enable JS")
}

func TestFetchTextSendsUserAgent(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte("<html><body>ok</body></html>"))
	}))
	defer server.Close()

	_, err := newTestFetcher(t).FetchText(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "resumatch-test", gotUA)
}

func TestFetchTextHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	_, err := newTestFetcher(t).FetchText(context.Background(), server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
}

func TestFetchTextContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body>slow</body></html>"))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestFetcher(t).FetchText(ctx, server.URL)
	assert.Error(t, err)
}

func TestExtractVisibleText(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		"<html><body><div>  first  </div>\n\n<div></div><div>second</div></body></html>"))
	require.NoError(t, err)

	text := ExtractVisibleText(doc)

	for _, line := range strings.Split(text, "\n") {
		assert.NotEmpty(t, line)
		assert.Equal(t, strings.TrimSpace(line), line)
	}
	assert.Contains(t, text, "first")
	assert.Contains(t, text, "second")
}
