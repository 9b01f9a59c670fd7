package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sushihentaime/folio/internal/content"
)

// keepOrder leaves shuffled slices untouched so sampling is predictable.
type keepOrder struct{}

func (keepOrder) Shuffle(int, func(i, j int)) {}

type testServer struct {
	*httptest.Server
}

func newTestServer(t *testing.T, h http.Handler) *testServer {
	ts := httptest.NewServer(h)

	t.Cleanup(ts.Close)

	return &testServer{ts}
}

func newTestApplication(t *testing.T) *application {
	t.Helper()

	cfg := &Config{
		Port:            "4000",
		Environment:     "testing",
		Version:         "1.0.0",
		CacheExpiration: time.Minute,
		CacheCleanup:    time.Minute,
	}

	return newTestApplicationWithConfig(t, cfg)
}

func newTestApplicationWithConfig(t *testing.T, cfg *Config) *application {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	app := newApplication(cfg, logger, content.Default, keepOrder{})
	t.Cleanup(app.limiter.stop)

	return app
}

func readResponse(t *testing.T, res *http.Response) (int, http.Header, envelope) {
	t.Helper()
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(body, &env), string(body))

	return res.StatusCode, res.Header, env
}

func (ts *testServer) get(t *testing.T, path string, cookies ...*http.Cookie) (int, http.Header, envelope) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	require.NoError(t, err)
	for _, c := range cookies {
		req.AddCookie(c)
	}

	res, err := ts.Client().Do(req)
	require.NoError(t, err)

	return readResponse(t, res)
}

func (ts *testServer) post(t *testing.T, path string, cookies ...*http.Cookie) (int, http.Header, envelope) {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, ts.URL+path, nil)
	require.NoError(t, err)
	for _, c := range cookies {
		req.AddCookie(c)
	}

	res, err := ts.Client().Do(req)
	require.NoError(t, err)

	return readResponse(t, res)
}
