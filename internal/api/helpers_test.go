package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/study-tracker/internal/study"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestSession builds a session over a fresh collection exporting into a
// per-test directory.
func newTestSession(t *testing.T, titles ...string) (*Session, *study.FileExporter) {
	t.Helper()
	exporter := study.NewFileExporter(t.TempDir(), "")
	collection, err := study.NewCollection(titles, exporter, nil, discardLogger())
	require.NoError(t, err)
	return NewSession(collection, discardLogger()), exporter
}

func newTestRouter(session *Session) http.Handler {
	r := chi.NewRouter()
	r.Route("/api", NewStudyHandler(session, discardLogger()).Routes)
	return r
}

func doRequest(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), "body: %s", w.Body.String())
	return v
}
