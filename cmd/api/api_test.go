package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/farxc/bolsa_atleta_wrapper/internal/db"
	"github.com/farxc/bolsa_atleta_wrapper/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApplication(t *testing.T) *application {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	file, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, file.Close())

	g, err := db.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { g.Close() })

	storage := store.NewStorage(g)
	require.NoError(t, storage.Ingest.Migrate(context.Background()))

	return &application{
		config: config{addr: ":0", dbPath: path, topN: 10},
		store:  *storage,
	}
}

func doRequest(t *testing.T, app *application, path string) *httptest.ResponseRecorder {
	t.Helper()

	mux := app.mount()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", path, nil)
	mux.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApplication(t)

	rec := doRequest(t, app, "/v1/health")

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "available", body["status"])
}

func TestStatsEndpoint(t *testing.T) {
	app := newTestApplication(t)

	rec := doRequest(t, app, "/v1/overview/stats")

	require.Equal(t, http.StatusOK, rec.Code)

	var body GetStatsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Zero(t, body.Data.TotalPayments)
}

func TestStatsEndpointBadDate(t *testing.T) {
	app := newTestApplication(t)

	rec := doRequest(t, app, "/v1/overview/stats?date_from=31/12/2020")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTemporalEndpointBadGrouping(t *testing.T) {
	app := newTestApplication(t)

	rec := doRequest(t, app, "/v1/temporal?group_by=weekly")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAthleteSearchRequiresName(t *testing.T) {
	app := newTestApplication(t)

	rec := doRequest(t, app, "/v1/athletes/search")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRawUnknownTable(t *testing.T) {
	app := newTestApplication(t)

	rec := doRequest(t, app, "/v1/raw/sqlite_master")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRawTablesEndpoint(t *testing.T) {
	app := newTestApplication(t)

	rec := doRequest(t, app, "/v1/raw/tables")

	require.Equal(t, http.StatusOK, rec.Code)

	var body ListTablesResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Contains(t, body.Data, "payments")
}
