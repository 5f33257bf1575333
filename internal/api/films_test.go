package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oswinp/curiodb/internal/database"
	"github.com/oswinp/curiodb/internal/domain"
)

// stubImporter records calls and answers with a canned report.
type stubImporter struct {
	results []domain.ImportResult
	entries []string
}

func (s *stubImporter) ImportBatch(ctx context.Context, entries []string) ([]domain.ImportResult, error) {
	s.entries = entries
	return s.results, nil
}

func (s *stubImporter) ImportRatings(ctx context.Context, r io.Reader) ([]domain.ImportResult, error) {
	return s.results, nil
}

func testServer(t *testing.T, imp *stubImporter) *httptest.Server {
	t.Helper()

	log := zerolog.Nop()
	db, err := database.NewDB(t.TempDir(), log)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	server := NewServer(Deps{
		Log:    log,
		Config: &domain.Config{ListenAddr: ":0"},
		DB:     db,

		FilmRepo: database.NewFilmRepo(log, db),
		BookRepo: database.NewBookRepo(log, db),
		ListRepo: database.NewListRepo(log, db),

		WatchRepo:          database.NewWatchRepo(log, db),
		MusicRepo:          database.NewMusicRepo(log, db),
		FilmCollectionRepo: database.NewFilmCollectionRepo(log, db),
		BookCollectionRepo: database.NewBookCollectionRepo(log, db),
		GameCollectionRepo: database.NewGameCollectionRepo(log, db),
		WardrobeRepo:       database.NewWardrobeRepo(log, db),
		ArtRepo:            database.NewArtRepo(log, db),
		ExtrasCategoryRepo: database.NewExtrasCategoryRepo(log, db),
		ExtraRepo:          database.NewExtraRepo(log, db),
		InstrumentRepo:     database.NewInstrumentRepo(log, db),
		PerformanceRepo:    database.NewPerformanceRepo(log, db),

		Importer: imp,
	})

	srv := httptest.NewServer(server.Handler())
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()

	b, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewReader(b))
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()

	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestHealthz(t *testing.T) {
	log := zerolog.Nop()
	db, err := database.NewDB(t.TempDir(), log)
	require.NoError(t, err)

	server := NewServer(Deps{Log: log, Config: &domain.Config{}, DB: db})
	srv := httptest.NewServer(server.Handler())
	t.Cleanup(srv.Close)

	resp, err := http.Get(srv.URL + "/api/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, db.Close())

	resp, err = http.Get(srv.URL + "/api/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestFilmCRUD(t *testing.T) {
	srv := testServer(t, &stubImporter{})

	resp := postJSON(t, srv.URL+"/api/films", map[string]any{
		"title":    "Parasite",
		"director": "Bong Joon Ho",
		"genre":    []string{"Thriller"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[domain.Film](t, resp)
	require.NotZero(t, created.ID)

	resp, err := http.Get(srv.URL + "/api/films?director=Bong+Joon+Ho")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	films := decode[[]domain.Film](t, resp)
	require.Len(t, films, 1)
	assert.Equal(t, "Parasite", films[0].Title)

	resp, err = http.Get(srv.URL + "/api/films?director=Nobody")
	require.NoError(t, err)
	films = decode[[]domain.Film](t, resp)
	assert.Empty(t, films)
}

func TestCreateFilmValidation(t *testing.T) {
	srv := testServer(t, &stubImporter{})

	resp := postJSON(t, srv.URL+"/api/films", map[string]any{
		"release_date": "30 May 2019",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decode[map[string]map[string]string](t, resp)
	assert.Contains(t, body["errors"], "title")
	assert.Contains(t, body["errors"], "release_date")
}

func TestGetFilmNotFound(t *testing.T) {
	srv := testServer(t, &stubImporter{})

	resp, err := http.Get(srv.URL + "/api/films/999")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestBatchImportRejectsMissingItems(t *testing.T) {
	srv := testServer(t, &stubImporter{})

	for _, body := range []map[string]any{
		{},
		{"items": []string{}},
	} {
		resp := postJSON(t, srv.URL+"/api/films/batch-import", body)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	}
}

func TestBatchImportReturnsReport(t *testing.T) {
	imp := &stubImporter{results: []domain.ImportResult{
		{Item: "Amélie", Status: domain.StatusImported},
		{Item: "999999999999", Status: domain.StatusNotFound},
	}}
	srv := testServer(t, imp)

	resp := postJSON(t, srv.URL+"/api/films/batch-import", map[string]any{
		"items": []string{"Amélie", "999999999999"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[map[string][]domain.ImportResult](t, resp)
	require.Len(t, body["results"], 2)
	assert.Equal(t, domain.StatusImported, body["results"][0].Status)
	assert.Equal(t, []string{"Amélie", "999999999999"}, imp.entries)
}

func TestImportRatingsRequiresFile(t *testing.T) {
	srv := testServer(t, &stubImporter{})

	resp, err := http.Post(srv.URL+"/api/films/import-ratings", "application/json", strings.NewReader("{}"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestResourceRoutes(t *testing.T) {
	srv := testServer(t, &stubImporter{})

	resp := postJSON(t, srv.URL+"/api/watches", map[string]any{
		"brand": "Omega",
		"model": "Speedmaster",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[domain.Watch](t, resp)
	require.NotZero(t, created.ID)

	resp = postJSON(t, srv.URL+"/api/watches", map[string]any{"brand": "Omega"})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err := http.Get(srv.URL + "/api/watches")
	require.NoError(t, err)
	watches := decode[[]domain.Watch](t, resp)
	require.Len(t, watches, 1)
	assert.Equal(t, "Speedmaster", watches[0].Model)
}

func TestListCategoryGuard(t *testing.T) {
	srv := testServer(t, &stubImporter{})

	resp := postJSON(t, srv.URL+"/api/lists", map[string]any{
		"name":     "Favourites",
		"category": "films",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	list := decode[domain.List](t, resp)

	resp = postJSON(t, srv.URL+"/api/books", map[string]any{
		"title":  "Dune",
		"author": "Frank Herbert",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	book := decode[domain.Book](t, resp)

	req, err := http.NewRequest(http.MethodPut, srv.URL+"/api/lists/"+itoa(list.ID)+"/books/"+itoa(book.ID), nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
