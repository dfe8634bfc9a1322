package testsupport

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// DVRFixture holds the JSON documents a fake Channels DVR server returns.
// Values are marshalled as-is, so raw maps can be used to exercise optional
// keys.
type DVRFixture struct {
	Rules any
	Jobs  any
	Files any
	// MediaInfo maps file IDs to the filename reported by mediainfo.json.
	MediaInfo map[string]string
	// Status overrides the response status for a request path.
	Status map[string]int
}

// DVRServer is a fake Channels DVR server backed by httptest.
type DVRServer struct {
	*httptest.Server

	mu    sync.Mutex
	calls map[string]int
}

// NewDVRServer starts a fake server serving fixture and closes it when the
// test ends.
func NewDVRServer(t testing.TB, fixture DVRFixture) *DVRServer {
	t.Helper()

	srv := &DVRServer{calls: make(map[string]int)}
	srv.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		srv.mu.Lock()
		srv.calls[r.URL.Path]++
		srv.mu.Unlock()

		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if status, ok := fixture.Status[r.URL.Path]; ok {
			http.Error(w, http.StatusText(status), status)
			return
		}

		switch {
		case r.URL.Path == "/dvr/rules":
			writeJSON(w, orEmpty(fixture.Rules))
		case r.URL.Path == "/dvr/jobs":
			writeJSON(w, orEmpty(fixture.Jobs))
		case r.URL.Path == "/dvr/files":
			writeJSON(w, orEmpty(fixture.Files))
		case strings.HasPrefix(r.URL.Path, "/dvr/files/") && strings.HasSuffix(r.URL.Path, "/mediainfo.json"):
			id := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/dvr/files/"), "/mediainfo.json")
			name, ok := fixture.MediaInfo[id]
			if !ok {
				http.NotFound(w, r)
				return
			}
			writeJSON(w, map[string]any{"format": map[string]any{"filename": name}})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

// Calls reports how many requests were made for path.
func (s *DVRServer) Calls(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[path]
}

func orEmpty(v any) any {
	if v == nil {
		return []any{}
	}
	return v
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
