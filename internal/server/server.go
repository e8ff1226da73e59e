// Package server is the read-only serving layer: a server-rendered home
// page, one JSON endpoint per tab, and a health check. It opens the store
// read-only and immutable per fetch, so an import rebuild that swaps the
// database file is picked up at the next cache miss.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"courseboard/internal/schema"
	"courseboard/internal/store"
)

// Server handles HTTP requests against the syllabus store.
type Server struct {
	dbPath string
	cache  *ttlCache
	tables map[string]string // logical tab id -> table
}

// New builds a Server reading from the database at dbPath, caching tab
// results for cacheTTL.
func New(dbPath string, cacheTTL time.Duration) *Server {
	return &Server{
		dbPath: dbPath,
		cache:  newTTLCache(cacheTTL),
		tables: schema.ServingTables(),
	}
}

// Handler returns the route surface.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /api/{tab}", s.handleAPI)
	mux.HandleFunc("GET /{$}", s.handleIndex)
	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, "ok")
}

func (s *Server) handleAPI(w http.ResponseWriter, r *http.Request) {
	tab := strings.ToLower(strings.TrimSpace(r.PathValue("tab")))
	if _, ok := s.tables[tab]; !ok {
		http.NotFound(w, r)
		return
	}

	records, err := s.fetchTab(r.Context(), tab)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	active := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("tab")))
	if _, ok := s.tables[active]; !ok {
		active = schema.HomeTab.ID
	}

	settings, err := s.fetchSettings(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, indexData{
		Settings:  settings,
		Tabs:      tabsConfig(settings),
		ActiveTab: active,
	}); err != nil {
		// Headers are gone by now; nothing useful left to send.
		return
	}
}

// fetchTab returns the rows for a logical tab, newest first, consulting
// the cache before the store.
func (s *Server) fetchTab(ctx context.Context, tab string) ([]store.Record, error) {
	key := "tab:" + tab
	if records, ok := s.cache.get(key); ok {
		return records, nil
	}

	st, err := store.OpenReadOnly(s.dbPath)
	if err != nil {
		return nil, err
	}
	defer st.Close()

	records, err := st.TabRecords(ctx, s.tables[tab])
	if err != nil {
		return nil, err
	}

	s.cache.set(key, records)
	return records, nil
}

// fetchSettings reads main_settings, falling back to defaults when the
// store is absent so the page still renders before the first rebuild.
func (s *Server) fetchSettings(ctx context.Context) (store.Settings, error) {
	st, err := store.OpenReadOnly(s.dbPath)
	if err != nil {
		return store.DefaultSettings(), nil
	}
	defer st.Close()
	return st.Settings(ctx)
}

// writeJSON writes UTF-8 JSON without HTML escaping, keeping Hebrew text
// readable on the wire.
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.Encode(payload)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
