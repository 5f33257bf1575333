package importer

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oswinp/curiodb/internal/domain"
)

func testMapper() *Mapper {
	return NewMapper(zerolog.Nop(), &domain.Config{
		TmdbImageBaseURL: "https://image.tmdb.org/t/p/original",
	})
}

func TestMapFullDetail(t *testing.T) {
	detail := &domain.FilmDetail{
		ID:               194,
		Title:            "Amélie",
		OriginalTitle:    "Le Fabuleux Destin d'Amélie Poulain",
		Tagline:          "She'll change your life.",
		Overview:         "A shy waitress decides to help those around her.",
		OriginalLanguage: "fr",
		OriginCountry:    []string{"FR", "DE"},
		PosterPath:       "/poster.jpg",
		BackdropPath:     "/backdrop.jpg",
		ReleaseDate:      "2001-04-25",
		Runtime:          json.Number("122"),
		Genres: []domain.TMDBGenre{
			{ID: 35, Name: "Comedy"},
			{ID: 10749, Name: "Romance"},
		},
		BelongsToCollection: &domain.TMDBCollection{ID: 1, Name: "Some Collection"},
		VoteAverage:         7.892,
		Budget:              10000000,
		Revenue:             173921954,
		Credits: domain.TMDBCredits{
			Cast: []domain.TMDBCastCredit{
				{Name: "Audrey Tautou", Character: "Amélie Poulain", Order: 0},
				{Name: "Mathieu Kassovitz", Character: "Nino", Order: 1},
			},
			Crew: []domain.TMDBCrewCredit{
				{Name: "Jean-Pierre Jeunet", OriginalName: "Jean-Pierre Jeunet", Job: "Director"},
				{Name: "Bruno Delbonnel", Job: "Director of Photography"},
			},
		},
	}

	film := testMapper().Map(detail, nil)

	assert.Equal(t, int64(194), film.TmdbID)
	assert.Equal(t, "Amélie", film.Title)
	assert.Equal(t, "Le Fabuleux Destin d'Amélie Poulain", film.AltTitle)
	assert.Equal(t, "Jean-Pierre Jeunet", film.Director)
	assert.Empty(t, film.AltName)
	assert.Equal(t, "She'll change your life.", film.Blurb)
	assert.Equal(t, "fr", film.Language)
	assert.Equal(t, "FR, DE", film.Country)
	assert.Equal(t, "Some Collection", film.Series)
	assert.Equal(t, "https://image.tmdb.org/t/p/original/poster.jpg", film.Poster)
	assert.Equal(t, "https://image.tmdb.org/t/p/original/backdrop.jpg", film.BackgroundPic)
	assert.Equal(t, 122*time.Minute, film.Runtime)
	assert.Equal(t, []string{"Comedy", "Romance"}, film.Genre)
	assert.Equal(t, 7.9, film.IndustryRating)
	assert.Equal(t, int64(10000000), film.Budget)
	assert.Equal(t, int64(173921954), film.BoxOffice)
	assert.Nil(t, film.Rating)

	require.Len(t, film.Cast, 2)
	assert.Equal(t, domain.CastMember{Actor: "Audrey Tautou", Role: "Amélie Poulain"}, film.Cast[0])
	require.Len(t, film.Crew, 2)
	assert.Equal(t, domain.CrewMember{Name: "Bruno Delbonnel", Role: "Director of Photography"}, film.Crew[1])
}

func TestMapAltTitleSuppressedWhenEqual(t *testing.T) {
	detail := &domain.FilmDetail{
		ID:            1,
		Title:         "Parasite",
		OriginalTitle: "Parasite",
	}

	film := testMapper().Map(detail, nil)
	assert.Empty(t, film.AltTitle)
}

func TestMapAltNameFromDirectorOriginalName(t *testing.T) {
	detail := &domain.FilmDetail{
		ID:    496243,
		Title: "Parasite",
		Credits: domain.TMDBCredits{
			Crew: []domain.TMDBCrewCredit{
				{Name: "Bong Joon Ho", OriginalName: "봉준호", Job: "Director"},
				{Name: "Someone Else", OriginalName: "다른 사람", Job: "Director"},
			},
		},
	}

	film := testMapper().Map(detail, nil)

	// first Director crew entry wins
	assert.Equal(t, "Bong Joon Ho", film.Director)
	assert.Equal(t, "봉준호", film.AltName)
}

func TestMapNoPosterPathMeansNoURL(t *testing.T) {
	film := testMapper().Map(&domain.FilmDetail{ID: 1, Title: "Untitled"}, nil)

	assert.Empty(t, film.Poster)
	assert.Empty(t, film.BackgroundPic)
}

func TestMapRuntime(t *testing.T) {
	tests := []struct {
		name    string
		runtime json.Number
		want    time.Duration
	}{
		{"absent", json.Number(""), 0},
		{"zero minutes", json.Number("0"), 0},
		{"unparseable", json.Number("abc"), 0},
		{"valid", json.Number("132"), 132 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			film := testMapper().Map(&domain.FilmDetail{ID: 1, Title: "X", Runtime: tt.runtime}, nil)
			assert.Equal(t, tt.want, film.Runtime)
		})
	}
}

func TestMapEmptyDetailDegradesToDefaults(t *testing.T) {
	film := testMapper().Map(&domain.FilmDetail{}, nil)

	assert.Empty(t, film.Title)
	assert.Empty(t, film.Director)
	assert.Empty(t, film.Country)
	assert.Empty(t, film.Series)
	assert.NotNil(t, film.Genre)
	assert.Empty(t, film.Genre)
	assert.Equal(t, 0.0, film.IndustryRating)
}

func TestMapRatingOverride(t *testing.T) {
	rating := 9.0
	film := testMapper().Map(&domain.FilmDetail{ID: 1, Title: "Parasite"}, &rating)

	require.NotNil(t, film.Rating)
	assert.Equal(t, 9.0, *film.Rating)
}

func TestMapIndustryRatingRounding(t *testing.T) {
	film := testMapper().Map(&domain.FilmDetail{ID: 1, Title: "X", VoteAverage: 8.4499}, nil)
	assert.Equal(t, 8.4, film.IndustryRating)

	film = testMapper().Map(&domain.FilmDetail{ID: 1, Title: "X", VoteAverage: 8.45}, nil)
	assert.Equal(t, 8.5, film.IndustryRating)
}
