package importer

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oswinp/curiodb/internal/database"
	"github.com/oswinp/curiodb/internal/domain"
)

func testFilmRepo(t *testing.T) domain.FilmRepository {
	t.Helper()

	db, err := database.NewDB(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return database.NewFilmRepo(zerolog.Nop(), db)
}

func storeFilm(t *testing.T, repo domain.FilmRepository, film domain.Film) domain.Film {
	t.Helper()
	require.NoError(t, repo.Store(context.Background(), &film))
	return film
}

func TestReconcileByExternalIDCreatesWhenNoMatch(t *testing.T) {
	repo := testFilmRepo(t)
	r := NewReconciler(zerolog.Nop(), repo)

	candidate := &domain.Film{TmdbID: 194, Title: "Amélie"}
	action, err := r.Reconcile(context.Background(), domain.DedupByExternalID, 194, "Amélie", candidate, nil)

	require.NoError(t, err)
	assert.Equal(t, domain.ActionCreate, action.Type)
	assert.Same(t, candidate, action.Film)
}

func TestReconcileByExternalIDSkipsExisting(t *testing.T) {
	repo := testFilmRepo(t)
	storeFilm(t, repo, domain.Film{TmdbID: 194, Title: "Amélie"})

	r := NewReconciler(zerolog.Nop(), repo)
	action, err := r.Reconcile(context.Background(), domain.DedupByExternalID, 194, "Amélie", &domain.Film{TmdbID: 194, Title: "Amélie"}, nil)

	require.NoError(t, err)
	assert.Equal(t, domain.ActionSkip, action.Type)
	assert.Equal(t, "duplicate", action.Reason)
}

func TestReconcileByTitleUpdatesChangedRating(t *testing.T) {
	repo := testFilmRepo(t)
	old := 7.0
	existing := storeFilm(t, repo, domain.Film{Title: "Parasite", Rating: &old})

	r := NewReconciler(zerolog.Nop(), repo)
	newRating := 9.0
	action, err := r.Reconcile(context.Background(), domain.DedupByTitle, 0, "parasite", nil, &newRating)

	require.NoError(t, err)
	assert.Equal(t, domain.ActionUpdateRating, action.Type)
	assert.Equal(t, existing.ID, action.FilmID)
	assert.Equal(t, 9.0, action.Rating)
}

func TestReconcileByTitleUpdatesUnratedFilm(t *testing.T) {
	repo := testFilmRepo(t)
	existing := storeFilm(t, repo, domain.Film{Title: "Parasite"})

	r := NewReconciler(zerolog.Nop(), repo)
	rating := 9.0
	action, err := r.Reconcile(context.Background(), domain.DedupByTitle, 0, "Parasite", nil, &rating)

	require.NoError(t, err)
	assert.Equal(t, domain.ActionUpdateRating, action.Type)
	assert.Equal(t, existing.ID, action.FilmID)
}

func TestReconcileByTitleSkipsEqualRating(t *testing.T) {
	repo := testFilmRepo(t)
	rating := 9.0
	storeFilm(t, repo, domain.Film{Title: "Parasite", Rating: &rating})

	r := NewReconciler(zerolog.Nop(), repo)
	same := 9.0
	action, err := r.Reconcile(context.Background(), domain.DedupByTitle, 0, "Parasite", nil, &same)

	require.NoError(t, err)
	assert.Equal(t, domain.ActionSkip, action.Type)
	assert.Equal(t, "already up to date", action.Reason)
}

func TestReconcileByTitleSkipsWithoutRating(t *testing.T) {
	repo := testFilmRepo(t)
	storeFilm(t, repo, domain.Film{Title: "Parasite"})

	r := NewReconciler(zerolog.Nop(), repo)
	action, err := r.Reconcile(context.Background(), domain.DedupByTitle, 0, "Parasite", nil, nil)

	require.NoError(t, err)
	assert.Equal(t, domain.ActionSkip, action.Type)
}

func TestReconcileByTitleCreatesWhenNoMatch(t *testing.T) {
	repo := testFilmRepo(t)
	r := NewReconciler(zerolog.Nop(), repo)

	rating := 9.0
	action, err := r.Reconcile(context.Background(), domain.DedupByTitle, 0, "Parasite", nil, &rating)

	require.NoError(t, err)
	assert.Equal(t, domain.ActionCreate, action.Type)
}
