package domain

import "time"

// CastMember is a single credited actor on a film. Role is the character
// played and defaults to an empty string when the source omits it.
type CastMember struct {
	Actor string `json:"actor"`
	Role  string `json:"role"`
}

// CrewMember is a single credited crew person on a film. Role is the job
// title and defaults to an empty string when the source omits it.
type CrewMember struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

type Award struct {
	Award    string `json:"award"`
	Category string `json:"category"`
	Won      bool   `json:"won"`
}

// Film is a catalog entry for a single film. TmdbID is the external metadata
// service's identifier and is unique across all films when present (0 means
// no external identifier); it is the primary dedup key for imports.
type Film struct {
	ID             int64         `json:"id"`
	TmdbID         int64         `json:"tmdb_id,omitempty"`
	Title          string        `json:"title" validate:"required"`
	AltTitle       string        `json:"alt_title,omitempty"`
	Director       string        `json:"director,omitempty"`
	AltName        string        `json:"alt_name,omitempty"`
	Cast           []CastMember  `json:"cast,omitempty"`
	Crew           []CrewMember  `json:"crew,omitempty"`
	Rating         *float64      `json:"rating,omitempty" validate:"omitempty,min=0,max=10"`
	IndustryRating float64       `json:"industry_rating"`
	Review         string        `json:"review,omitempty"`
	Blurb          string        `json:"blurb,omitempty"`
	Synopsis       string        `json:"synopsis,omitempty"`
	Series         string        `json:"series,omitempty"`
	Language       string        `json:"language,omitempty"`
	Country        string        `json:"country,omitempty"`
	Genre          []string      `json:"genre"`
	Tags           []string      `json:"tags,omitempty"`
	AwardsWon      []Award       `json:"awards_won,omitempty"`
	ReleaseDate    string        `json:"release_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Runtime        time.Duration `json:"runtime,omitempty"`
	Budget         int64         `json:"budget"`
	BoxOffice      int64         `json:"box_office"`
	Seen           bool          `json:"seen"`
	Favourite      bool          `json:"favourite"`
	Watchlist      bool          `json:"watchlist"`
	DateWatched    string        `json:"date_watched,omitempty" validate:"omitempty,datetime=2006-01-02"`
	RewatchCount   int           `json:"rewatch_count"`
	Poster         string        `json:"poster,omitempty" validate:"omitempty,url"`
	BackgroundPic  string        `json:"background_pic,omitempty" validate:"omitempty,url"`
	Medium         string        `json:"medium,omitempty"`
	Sound          bool          `json:"sound"`
	Colour         bool          `json:"colour"`
	Festival       string        `json:"festival,omitempty"`
	ExternalLinks  []string      `json:"external_links,omitempty"`
	Notes          string        `json:"notes,omitempty"`
	OwnedID        *int64        `json:"owned,omitempty"`
}

// FilmFilter holds the supported query-parameter filters for film listings.
// Director is an exact match; the rest are case-insensitive substring matches.
type FilmFilter struct {
	Director string
	Genre    string
	Cast     string
	Crew     string
}
