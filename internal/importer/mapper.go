package importer

import (
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/oswinp/curiodb/internal/domain"
)

// Mapper turns an external detail record into an internal film. Mapping never
// fails; malformed or missing fields degrade to their zero values.
type Mapper struct {
	log          zerolog.Logger
	imageBaseURL string
}

func NewMapper(log zerolog.Logger, config *domain.Config) *Mapper {
	return &Mapper{
		log:          log.With().Str("module", "mapper").Logger(),
		imageBaseURL: config.TmdbImageBaseURL,
	}
}

// Map builds a film from a detail record. rating is the caller-supplied
// personal rating for this entry, already on the internal 10-point scale;
// nil leaves the film unrated.
func (m *Mapper) Map(detail *domain.FilmDetail, rating *float64) *domain.Film {
	film := &domain.Film{
		TmdbID:         detail.ID,
		Title:          detail.Title,
		Blurb:          detail.Tagline,
		Synopsis:       detail.Overview,
		Language:       detail.OriginalLanguage,
		Country:        strings.Join(detail.OriginCountry, ", "),
		ReleaseDate:    detail.ReleaseDate,
		IndustryRating: math.Round(detail.VoteAverage*10) / 10,
		Budget:         detail.Budget,
		BoxOffice:      detail.Revenue,
		Rating:         rating,
		Genre:          []string{},
	}

	if detail.OriginalTitle != detail.Title {
		film.AltTitle = detail.OriginalTitle
	}

	if detail.BelongsToCollection != nil {
		film.Series = detail.BelongsToCollection.Name
	}

	if detail.PosterPath != "" {
		film.Poster = m.imageBaseURL + detail.PosterPath
	}
	if detail.BackdropPath != "" {
		film.BackgroundPic = m.imageBaseURL + detail.BackdropPath
	}

	if detail.Runtime != "" {
		minutes, err := detail.Runtime.Int64()
		if err != nil {
			m.log.Warn().Err(err).Str("runtime", detail.Runtime.String()).Msg("failed to parse runtime")
		} else if minutes > 0 {
			film.Runtime = time.Duration(minutes) * time.Minute
		}
	}

	for _, g := range detail.Genres {
		film.Genre = append(film.Genre, g.Name)
	}

	for _, c := range detail.Credits.Cast {
		film.Cast = append(film.Cast, domain.CastMember{
			Actor: c.Name,
			Role:  c.Character,
		})
	}

	for _, c := range detail.Credits.Crew {
		film.Crew = append(film.Crew, domain.CrewMember{
			Name: c.Name,
			Role: c.Job,
		})
		if film.Director == "" && c.Job == "Director" {
			film.Director = c.Name
			if c.OriginalName != c.Name {
				film.AltName = c.OriginalName
			}
		}
	}

	return film
}
