package tmdb

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oswinp/curiodb/internal/domain"
)

type fakeTMDB struct {
	searchCalls int
	detailCalls int
	results     []domain.TMDBSearchResult
	details     map[string]domain.FilmDetail
	lastAuth    string
}

func (f *fakeTMDB) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/search/movie", func(w http.ResponseWriter, r *http.Request) {
		f.searchCalls++
		f.lastAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(domain.TMDBSearchResponse{
			Page:         1,
			Results:      f.results,
			TotalResults: len(f.results),
		})
	})

	mux.HandleFunc("/movie/", func(w http.ResponseWriter, r *http.Request) {
		f.detailCalls++
		f.lastAuth = r.Header.Get("Authorization")
		id := r.URL.Path[len("/movie/"):]
		detail, ok := f.details[id]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(detail)
	})

	return mux
}

func testClient(t *testing.T, fake *fakeTMDB) Service {
	t.Helper()

	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)

	return NewService(zerolog.Nop(), &domain.Config{
		TmdbBaseURL:  srv.URL,
		TmdbApiToken: "test-token",
	})
}

func TestResolveNumericQuerySkipsSearch(t *testing.T) {
	fake := &fakeTMDB{details: map[string]domain.FilmDetail{
		"496243": {ID: 496243, Title: "Parasite", Runtime: json.Number("132")},
	}}
	client := testClient(t, fake)

	detail, err := client.Resolve(context.Background(), "496243", 0)
	require.NoError(t, err)
	assert.Equal(t, "Parasite", detail.Title)
	assert.Equal(t, 0, fake.searchCalls)
	assert.Equal(t, 1, fake.detailCalls)
	assert.Equal(t, "Bearer test-token", fake.lastAuth)
}

func TestResolveUnknownIDIsNotFound(t *testing.T) {
	fake := &fakeTMDB{details: map[string]domain.FilmDetail{}}
	client := testClient(t, fake)

	_, err := client.Resolve(context.Background(), "999999999999", 0)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 0, fake.searchCalls)
}

func TestResolveSearchPicksFirstCandidateWithoutYear(t *testing.T) {
	fake := &fakeTMDB{
		results: []domain.TMDBSearchResult{
			{ID: 194, Title: "Amélie", ReleaseDate: "2001-04-25"},
			{ID: 999, Title: "Amélie Remake", ReleaseDate: "2015-01-01"},
		},
		details: map[string]domain.FilmDetail{
			"194": {ID: 194, Title: "Amélie", Runtime: json.Number("122")},
		},
	}
	client := testClient(t, fake)

	detail, err := client.Resolve(context.Background(), "Amélie", 0)
	require.NoError(t, err)
	assert.Equal(t, int64(194), detail.ID)
	assert.Equal(t, 1, fake.searchCalls)
}

func TestResolveSearchFiltersByYear(t *testing.T) {
	fake := &fakeTMDB{
		results: []domain.TMDBSearchResult{
			{ID: 100, Title: "Solaris", ReleaseDate: "2002-11-27"},
			{ID: 200, Title: "Solaris", ReleaseDate: "1972-05-05"},
		},
		details: map[string]domain.FilmDetail{
			"200": {ID: 200, Title: "Solaris", Runtime: json.Number("167")},
		},
	}
	client := testClient(t, fake)

	detail, err := client.Resolve(context.Background(), "Solaris", 1972)
	require.NoError(t, err)
	assert.Equal(t, int64(200), detail.ID)
}

func TestResolveYearMismatchIsNotFound(t *testing.T) {
	fake := &fakeTMDB{
		results: []domain.TMDBSearchResult{
			{ID: 100, Title: "Solaris", ReleaseDate: "2002-11-27"},
		},
	}
	client := testClient(t, fake)

	// candidates exist, but none released in the requested year
	_, err := client.Resolve(context.Background(), "Solaris", 1972)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 0, fake.detailCalls)
}

func TestResolveNoResultsIsNotFound(t *testing.T) {
	fake := &fakeTMDB{}
	client := testClient(t, fake)

	_, err := client.Resolve(context.Background(), "No Such Film", 0)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResolveBlankQueryIsNotFound(t *testing.T) {
	fake := &fakeTMDB{}
	client := testClient(t, fake)

	_, err := client.Resolve(context.Background(), "   ", 0)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 0, fake.searchCalls)
}
