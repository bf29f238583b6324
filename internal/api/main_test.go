package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"cleansuite/internal/config"
	"cleansuite/internal/database"
	"cleansuite/internal/filestore"
)

const testAPIKey = "valid-key"

type ErrorResponse struct {
	Error string `json:"error"`
}

type testServer struct {
	handler http.Handler
	db      *database.DB
	files   *filestore.Store
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	return newTestServerWithCache(t, nil)
}

func newTestServerWithCache(t *testing.T, c Cache) *testServer {
	t.Helper()
	logger := zerolog.Nop()

	db, err := database.NewDB(filepath.Join(t.TempDir(), "test.db"), &logger)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	files, err := filestore.New(t.TempDir(), logger)
	require.NoError(t, err)

	server := NewHTTPServer(Options{
		Port:   0,
		APIKey: testAPIKey,
		Slots:  config.DefaultSlots,
	}, db, files, c, logger)

	return &testServer{handler: server.Handler(), db: db, files: files}
}

// spyCache records invalidations, always missing on reads.
type spyCache struct {
	invalidated []string
}

func (c *spyCache) Get(_ context.Context, _ string, _ any) bool { return false }

func (c *spyCache) Set(_ context.Context, _ string, _ any) {}

func (c *spyCache) Invalidate(_ context.Context, keys ...string) {
	c.invalidated = append(c.invalidated, keys...)
}

// do sends an authenticated JSON request and returns the recorder.
func (ts *testServer) do(t *testing.T, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", testAPIKey)

	w := httptest.NewRecorder()
	ts.handler.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
