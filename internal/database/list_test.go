package database

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oswinp/curiodb/internal/domain"
)

func TestListMembership(t *testing.T) {
	db := testDB(t)
	listRepo := NewListRepo(zerolog.Nop(), db)
	filmRepo := NewFilmRepo(zerolog.Nop(), db)
	ctx := context.Background()

	film := domain.Film{Title: "Parasite"}
	require.NoError(t, filmRepo.Store(ctx, &film))

	list := domain.List{Name: "Favourites", Category: domain.ListCategoryFilms}
	require.NoError(t, listRepo.Store(ctx, &list))

	require.NoError(t, listRepo.AddFilm(ctx, list.ID, film.ID))

	got, err := listRepo.Get(ctx, list.ID)
	require.NoError(t, err)
	require.Len(t, got.Films, 1)
	assert.Equal(t, "Parasite", got.Films[0].Title)
	assert.Empty(t, got.Books)

	require.NoError(t, listRepo.RemoveFilm(ctx, list.ID, film.ID))

	got, err = listRepo.Get(ctx, list.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Films)

	assert.ErrorIs(t, listRepo.AddFilm(ctx, 999, film.ID), domain.ErrNotFound)
}

func TestListCategoryExclusive(t *testing.T) {
	db := testDB(t)
	listRepo := NewListRepo(zerolog.Nop(), db)
	bookRepo := NewBookRepo(zerolog.Nop(), db)
	ctx := context.Background()

	book := domain.Book{Title: "Dune", Author: "Frank Herbert"}
	require.NoError(t, bookRepo.Store(ctx, &book))

	filmList := domain.List{Name: "Films", Category: domain.ListCategoryFilms}
	require.NoError(t, listRepo.Store(ctx, &filmList))

	assert.ErrorIs(t, listRepo.AddBook(ctx, filmList.ID, book.ID), domain.ErrListCategory)

	bookList := domain.List{Name: "Books", Category: domain.ListCategoryBooks}
	require.NoError(t, listRepo.Store(ctx, &bookList))
	require.NoError(t, listRepo.AddBook(ctx, bookList.ID, book.ID))

	got, err := listRepo.Get(ctx, bookList.ID)
	require.NoError(t, err)
	require.Len(t, got.Books, 1)
	assert.Equal(t, "Dune", got.Books[0].Title)
}

func TestListDeleteCascadesMembership(t *testing.T) {
	db := testDB(t)
	listRepo := NewListRepo(zerolog.Nop(), db)
	filmRepo := NewFilmRepo(zerolog.Nop(), db)
	ctx := context.Background()

	film := domain.Film{Title: "Parasite"}
	require.NoError(t, filmRepo.Store(ctx, &film))

	list := domain.List{Name: "Favourites", Category: domain.ListCategoryFilms}
	require.NoError(t, listRepo.Store(ctx, &list))
	require.NoError(t, listRepo.AddFilm(ctx, list.ID, film.ID))

	require.NoError(t, listRepo.Delete(ctx, list.ID))

	// film itself is untouched
	_, err := filmRepo.Get(ctx, film.ID)
	require.NoError(t, err)
}

func TestResourceRepoCRUD(t *testing.T) {
	repo := NewWatchRepo(zerolog.Nop(), testDB(t))
	ctx := context.Background()

	caseSize := 36.0
	watch := domain.Watch{
		Brand:    "Omega",
		Model:    "Speedmaster",
		CaseSize: &caseSize,
		Owned:    true,
	}
	require.NoError(t, repo.Store(ctx, &watch))
	require.NotZero(t, watch.ID)

	got, err := repo.Get(ctx, watch.ID)
	require.NoError(t, err)
	assert.Equal(t, "Omega", got.Brand)
	require.NotNil(t, got.CaseSize)
	assert.Equal(t, 36.0, *got.CaseSize)

	got.Notes = "serviced 2024"
	require.NoError(t, repo.Update(ctx, got))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "serviced 2024", all[0].Notes)

	require.NoError(t, repo.Delete(ctx, watch.ID))
	_, err = repo.Get(ctx, watch.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
