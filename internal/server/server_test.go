package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courseboard/internal/store"
)

func buildTestStore(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "app.db")
	require.NoError(t, store.Rebuild(dbPath,
		filepath.Join("..", "..", "db", "schema.sql"),
		filepath.Join("..", "..", "db", "seed.sql")))
	return dbPath
}

func get(t *testing.T, handler http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	srv := New(buildTestStore(t), time.Minute)
	rec := get(t, srv.Handler(), "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestAPITab(t *testing.T) {
	srv := New(buildTestStore(t), time.Minute)
	rec := get(t, srv.Handler(), "/api/docs")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var records []store.Record
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
	require.Len(t, records, 2)

	// Newest first; booleans and numbers per the API contract.
	assert.Equal(t, "סיפור בתנועה", records[0].CourseName)
	assert.False(t, records[0].AllowValenteres)
	assert.Nil(t, records[0].MaxValetires)
	assert.True(t, records[1].AllowValenteres)
	require.NotNil(t, records[1].MaxValetires)
	assert.Equal(t, int64(2), *records[1].MaxValetires)

	// Hebrew stays readable on the wire.
	assert.Contains(t, rec.Body.String(), "חוג יצירה")
}

func TestAPIHomeTab(t *testing.T) {
	srv := New(buildTestStore(t), time.Minute)
	rec := get(t, srv.Handler(), "/api/home")
	require.Equal(t, http.StatusOK, rec.Code)

	var records []store.Record
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
	assert.Len(t, records, 1)
}

func TestAPIUnknownTab(t *testing.T) {
	srv := New(buildTestStore(t), time.Minute)
	rec := get(t, srv.Handler(), "/api/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPIEmptyTabIsEmptyArray(t *testing.T) {
	// A schema-only store has empty tab tables.
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "app.db")
	emptySeed := filepath.Join(dir, "seed.sql")
	require.NoError(t, os.WriteFile(emptySeed, []byte("-- nothing\n"), 0o644))
	require.NoError(t, store.Rebuild(dbPath,
		filepath.Join("..", "..", "db", "schema.sql"), emptySeed))

	srv := New(dbPath, time.Minute)
	rec := get(t, srv.Handler(), "/api/tasks")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(rec.Body.String()), "["),
		"empty tab must serialize as a JSON array, not null")
}

func TestIndexPage(t *testing.T) {
	srv := New(buildTestStore(t), time.Minute)

	rec := get(t, srv.Handler(), "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	body := rec.Body.String()
	assert.Contains(t, body, "תיכון")
	assert.Contains(t, body, `data-tab="home"`)

	rec = get(t, srv.Handler(), "/?tab=hs")
	assert.Contains(t, rec.Body.String(), `data-tab="hs"`)

	rec = get(t, srv.Handler(), "/?tab=bogus")
	assert.Contains(t, rec.Body.String(), `data-tab="home"`, "unknown tab falls back to home")
}

func TestCacheServesAcrossStoreLoss(t *testing.T) {
	dbPath := buildTestStore(t)
	srv := New(dbPath, time.Hour)

	first := get(t, srv.Handler(), "/api/docs")
	require.Equal(t, http.StatusOK, first.Code)

	// With the store gone, a cached tab still serves until its TTL.
	require.NoError(t, os.Remove(dbPath))
	second := get(t, srv.Handler(), "/api/docs")
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())

	// An uncached tab must hit the store and fail.
	third := get(t, srv.Handler(), "/api/tasks")
	assert.Equal(t, http.StatusInternalServerError, third.Code)
}

func TestCacheExpires(t *testing.T) {
	dbPath := buildTestStore(t)
	srv := New(dbPath, time.Nanosecond)

	first := get(t, srv.Handler(), "/api/docs")
	require.Equal(t, http.StatusOK, first.Code)

	require.NoError(t, os.Remove(dbPath))
	time.Sleep(time.Millisecond)
	second := get(t, srv.Handler(), "/api/docs")
	assert.Equal(t, http.StatusInternalServerError, second.Code,
		"expired entry forces a store read")
}
