package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
)

const testAPIKey = "test-admin-key"

// stubService answers the management endpoints with canned statuses and
// records "METHOD /path" for every call.
type stubService struct {
	mu          sync.Mutex
	calls       []string
	indexers    map[string]bool
	indexStatus int
	runStatus   int
}

func newStubService(t *testing.T) (*stubService, *httptest.Server) {
	t.Helper()
	s := &stubService{
		indexers:    make(map[string]bool),
		indexStatus: http.StatusCreated,
		runStatus:   http.StatusAccepted,
	}

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			s.mu.Lock()
			s.calls = append(s.calls, req.Method+" "+req.URL.Path)
			s.mu.Unlock()
			if req.Header.Get("api-key") != testAPIKey {
				stubError(w, http.StatusForbidden, "Access denied")
				return
			}
			next.ServeHTTP(w, req)
		})
	})
	r.Put("/indexes/{name}", func(w http.ResponseWriter, _ *http.Request) {
		if s.indexStatus >= 400 {
			stubError(w, s.indexStatus, "index rejected")
			return
		}
		w.WriteHeader(s.indexStatus)
	})
	r.Put("/datasources/{name}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	r.Get("/indexers/{name}", func(w http.ResponseWriter, req *http.Request) {
		name := chi.URLParam(req, "name")
		s.mu.Lock()
		exists := s.indexers[name]
		s.mu.Unlock()
		if !exists {
			stubError(w, http.StatusNotFound, "No indexer with the name '"+name+"' was found")
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprintf(w, `{"name":%q,"dataSourceName":"ds","targetIndexName":"idx"}`, name)
	})
	r.Put("/indexers/{name}", func(w http.ResponseWriter, req *http.Request) {
		s.mu.Lock()
		s.indexers[chi.URLParam(req, "name")] = true
		s.mu.Unlock()
		w.WriteHeader(http.StatusCreated)
	})
	r.Post("/indexers/{name}/reset", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	r.Post("/indexers/{name}/run", func(w http.ResponseWriter, _ *http.Request) {
		if s.runStatus >= 400 {
			stubError(w, s.runStatus, "Another indexer invocation is currently in progress")
			return
		}
		w.WriteHeader(s.runStatus)
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return s, srv
}

func (s *stubService) snapshot() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

func stubError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]string{"code": "", "message": message},
	})
}

// isolateEnv blanks the settings variables so the host environment cannot
// override the test settings file.
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"SearchServiceUri", "SearchServiceAdminApiKey",
		"CosmosDBConnectionString", "CosmosDBDatabaseName",
		"BlobStorageAccountName", "BlobStorageConnectionString",
		"Mode", "SearchApiVersion", "RequestTimeoutSec",
	} {
		t.Setenv(k, "")
	}
	t.Setenv("ENV", "local")
}

// writeSettings writes an appsettings.json pointing at endpoint and returns its path.
// extra is spliced into the JSON object verbatim.
func writeSettings(t *testing.T, endpoint, extra string) string {
	t.Helper()
	body := fmt.Sprintf(`{
  "SearchServiceUri": %q,
  "SearchServiceAdminApiKey": %q,
  "CosmosDBConnectionString": "AccountEndpoint=https://products.documents.azure.com:443/;AccountKey=c2VjcmV0;",
  "CosmosDBDatabaseName": "products-db",
  "BlobStorageAccountName": "productstorage",
  "BlobStorageConnectionString": "DefaultEndpointsProtocol=https;AccountName=productstorage;AccountKey=c2VjcmV0"%s
}
`, endpoint, testAPIKey, extra)
	path := filepath.Join(t.TempDir(), "appsettings.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	return path
}

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}
