package domain

import "encoding/json"

// TMDBSearchResponse is the payload of a TMDB movie search call.
type TMDBSearchResponse struct {
	Page         int                `json:"page"`
	Results      []TMDBSearchResult `json:"results"`
	TotalPages   int                `json:"total_pages"`
	TotalResults int                `json:"total_results"`
}

type TMDBSearchResult struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	OriginalTitle string  `json:"original_title"`
	ReleaseDate   string  `json:"release_date"`
	PosterPath    string  `json:"poster_path"`
	VoteAverage   float64 `json:"vote_average"`
	VoteCount     int     `json:"vote_count"`
}

// FilmDetail is the full per-title payload from the external metadata
// service, fetched with credits appended. Every field is optional on the
// wire; the mapper degrades missing fields to defaults.
type FilmDetail struct {
	ID                  int64            `json:"id"`
	Title               string           `json:"title"`
	OriginalTitle       string           `json:"original_title"`
	Tagline             string           `json:"tagline"`
	Overview            string           `json:"overview"`
	OriginalLanguage    string           `json:"original_language"`
	OriginCountry       []string         `json:"origin_country"`
	PosterPath          string           `json:"poster_path"`
	BackdropPath        string           `json:"backdrop_path"`
	ReleaseDate         string           `json:"release_date"`
	Runtime             json.Number      `json:"runtime"`
	Genres              []TMDBGenre      `json:"genres"`
	BelongsToCollection *TMDBCollection  `json:"belongs_to_collection"`
	VoteAverage         float64          `json:"vote_average"`
	VoteCount           int              `json:"vote_count"`
	Budget              int64            `json:"budget"`
	Revenue             int64            `json:"revenue"`
	Credits             TMDBCredits      `json:"credits"`
}

type TMDBGenre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type TMDBCollection struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type TMDBCredits struct {
	Cast []TMDBCastCredit `json:"cast"`
	Crew []TMDBCrewCredit `json:"crew"`
}

type TMDBCastCredit struct {
	Name         string `json:"name"`
	OriginalName string `json:"original_name"`
	Character    string `json:"character"`
	Order        int    `json:"order"`
}

type TMDBCrewCredit struct {
	Name         string `json:"name"`
	OriginalName string `json:"original_name"`
	Job          string `json:"job"`
	Department   string `json:"department"`
}
