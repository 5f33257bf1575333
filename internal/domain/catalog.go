package domain

import "time"

// The flat catalog entities. These are attribute bags with enumerated choice
// fields and no behavior; each one maps to a single table and a uniform CRUD
// resource.

type Watch struct {
	ID                 int64    `json:"id"`
	Brand              string   `json:"brand" validate:"required"`
	Model              string   `json:"model" validate:"required"`
	ReferenceNumber    string   `json:"reference_number,omitempty"`
	RegistrationNumber string   `json:"registration_number,omitempty"`
	Country            string   `json:"country,omitempty"`
	CaseSize           *float64 `json:"case_size,omitempty"`
	Price              *float64 `json:"price,omitempty"`
	Photo              string   `json:"photo,omitempty" validate:"omitempty,url"`
	Link               string   `json:"link,omitempty" validate:"omitempty,url"`
	Owned              bool     `json:"owned"`
	Notes              string   `json:"notes,omitempty"`
}

type Music struct {
	ID            int64         `json:"id"`
	Owned         bool          `json:"owned"`
	Format        string        `json:"format" validate:"required,oneof=vinyl cd cassette 8cm digital other"`
	Title         string        `json:"title" validate:"required"`
	Artist        string        `json:"artist" validate:"required"`
	ReleaseDate   string        `json:"release_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	CatalogNumber string        `json:"catalog_number,omitempty"`
	Genre         []string      `json:"genre"`
	Length        time.Duration `json:"length,omitempty"`
	Type          string        `json:"type" validate:"required,oneof=album single ep live compilation other"`
	CoverArt      string        `json:"cover_art,omitempty" validate:"omitempty,url"`
	Price         *float64      `json:"price,omitempty"`
	Language      string        `json:"language,omitempty"`
	Country       string        `json:"country,omitempty"`
	Label         string        `json:"label,omitempty"`
	Link          string        `json:"link,omitempty" validate:"omitempty,url"`
	Notes         string        `json:"notes,omitempty"`
}

type FilmCollection struct {
	ID          int64         `json:"id"`
	Owned       bool          `json:"owned"`
	Format      string        `json:"format" validate:"required,oneof=dvd blu-ray 4k vhs laserdisc betamax film digital other"`
	Title       string        `json:"title" validate:"required"`
	Director    string        `json:"director,omitempty"`
	ReleaseYear *int          `json:"release_year,omitempty"`
	Genre       []string      `json:"genre"`
	Length      time.Duration `json:"length,omitempty"`
	Type        string        `json:"type" validate:"required,oneof=movie series documentary short other"`
	CoverArt    string        `json:"cover_art,omitempty" validate:"omitempty,url"`
	Price       *float64      `json:"price,omitempty"`
	Language    string        `json:"language,omitempty"`
	Country     string        `json:"country,omitempty"`
	Studio      string        `json:"studio,omitempty"`
	Runtime     time.Duration `json:"runtime,omitempty"`
	Link        string        `json:"link,omitempty" validate:"omitempty,url"`
	Notes       string        `json:"notes,omitempty"`
}

type BookCollection struct {
	ID              int64    `json:"id"`
	Owned           bool     `json:"owned"`
	Format          string   `json:"format" validate:"required,oneof=hardcover paperback ebook audiobook other"`
	Title           string   `json:"title" validate:"required"`
	Author          string   `json:"author" validate:"required"`
	PublicationDate string   `json:"publication_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ISBN            string   `json:"isbn,omitempty"`
	Genre           []string `json:"genre"`
	PageCount       *int     `json:"page_count,omitempty"`
	CoverImage      string   `json:"cover_image,omitempty" validate:"omitempty,url"`
	Price           *float64 `json:"price,omitempty"`
	Language        string   `json:"language,omitempty"`
	Country         string   `json:"country,omitempty"`
	Publisher       string   `json:"publisher,omitempty"`
	Link            string   `json:"link,omitempty" validate:"omitempty,url"`
	Notes           string   `json:"notes,omitempty"`
}

type GameCollection struct {
	ID          int64    `json:"id"`
	Owned       bool     `json:"owned"`
	Platform    string   `json:"platform" validate:"required,oneof=pc playstation xbox nintendo mobile other"`
	Title       string   `json:"title" validate:"required"`
	Developer   string   `json:"developer,omitempty"`
	ReleaseDate string   `json:"release_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Genre       []string `json:"genre"`
	CoverArt    string   `json:"cover_art,omitempty" validate:"omitempty,url"`
	Price       *float64 `json:"price,omitempty"`
	Language    string   `json:"language,omitempty"`
	Country     string   `json:"country,omitempty"`
	Publisher   string   `json:"publisher,omitempty"`
	Link        string   `json:"link,omitempty" validate:"omitempty,url"`
	Notes       string   `json:"notes,omitempty"`
}

type Wardrobe struct {
	ID                int64    `json:"id"`
	Category          string   `json:"category" validate:"required,oneof=shirts trousers suits coats_jackets shoes neckwear knitwear hosiery underpinnings shirt_accessories leather_goods hats tools_essentials other"`
	Brands            []string `json:"brands,omitempty"`
	Type              string   `json:"type,omitempty"`
	Style             string   `json:"style,omitempty"`
	Colour            []string `json:"colour,omitempty"`
	Pictures          []string `json:"pictures,omitempty"`
	Price             *float64 `json:"price,omitempty"`
	PreferredQuantity *int     `json:"preferred_quantity,omitempty"`
}

type Art struct {
	ID              int64    `json:"id"`
	Owned           bool     `json:"owned"`
	Title           string   `json:"title,omitempty"`
	Year            *int     `json:"year,omitempty"`
	YearSpecificity string   `json:"year_specificity,omitempty" validate:"omitempty,oneof=exact year decade century millennium unknown"`
	Artist          string   `json:"artist,omitempty"`
	Culture         string   `json:"culture,omitempty"`
	Type            string   `json:"type,omitempty"`
	Format          string   `json:"format,omitempty"`
	Info            string   `json:"info,omitempty"`
	Techniques      string   `json:"techniques,omitempty"`
	Price           *float64 `json:"price,omitempty"`
	Photo           string   `json:"photo,omitempty" validate:"omitempty,url"`
	Link            string   `json:"link,omitempty" validate:"omitempty,url"`
}

type ExtrasCategory struct {
	ID          int64  `json:"id"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
}

type Extra struct {
	ID              int64    `json:"id"`
	Owned           bool     `json:"owned"`
	CategoryID      *int64   `json:"category,omitempty"`
	Brand           string   `json:"brand,omitempty"`
	Model           string   `json:"model" validate:"required"`
	Price           *float64 `json:"price,omitempty"`
	Links           []string `json:"links,omitempty"`
	Year            *int     `json:"year,omitempty"`
	YearSpecificity string   `json:"year_specificity,omitempty" validate:"omitempty,oneof=exact year decade century millennium unknown"`
	AdditionalInfo  string   `json:"additional_info,omitempty"`
}

type Book struct {
	ID              int64    `json:"id"`
	Title           string   `json:"title" validate:"required"`
	Author          string   `json:"author" validate:"required"`
	OwnedID         *int64   `json:"owned,omitempty"`
	YearReleased    *int     `json:"year_released,omitempty"`
	YearSpecificity string   `json:"year_specificity,omitempty" validate:"omitempty,oneof=exact year decade century millennium unknown"`
	Rating          *float64 `json:"rating,omitempty" validate:"omitempty,min=0,max=10"`
	Genre           []string `json:"genre"`
	Tags            []string `json:"tags,omitempty"`
	Review          string   `json:"review,omitempty"`
	PageCount       *int     `json:"page_count,omitempty"`
	Format          string   `json:"format,omitempty"`
	Cover           string   `json:"cover,omitempty" validate:"omitempty,url"`
	ExternalLinks   []string `json:"external_links,omitempty"`
	ISBN            string   `json:"isbn,omitempty"`
	Series          string   `json:"series,omitempty"`
	Synopsis        string   `json:"synopsis,omitempty"`
	Publisher       string   `json:"publisher,omitempty"`
	Edition         string   `json:"edition,omitempty"`
	Language        string   `json:"language,omitempty"`
	Country         string   `json:"country,omitempty"`
}

// BookFilter holds the supported query-parameter filters for book listings.
// Author is an exact match, genre a case-insensitive substring match.
type BookFilter struct {
	Author string
	Genre  string
}

type Instrument struct {
	ID         int64    `json:"id"`
	Instrument string   `json:"instrument" validate:"required"`
	Brand      string   `json:"brand,omitempty"`
	Name       string   `json:"name" validate:"required"`
	Maker      string   `json:"maker,omitempty"`
	Category   string   `json:"category" validate:"required,oneof=string keyboard percussion wind brass electronic other"`
	Type       string   `json:"type,omitempty"`
	Year       *int     `json:"year,omitempty"`
	Country    string   `json:"country,omitempty"`
	Owned      bool     `json:"owned"`
	Price      *float64 `json:"price,omitempty"`
	Photo      string   `json:"photo,omitempty" validate:"omitempty,url"`
	Link       string   `json:"link,omitempty" validate:"omitempty,url"`
	Notes      string   `json:"notes,omitempty"`
	DateBought string   `json:"date_bought,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Materials  string   `json:"materials,omitempty"`
}

type Movement struct {
	Number string `json:"number"`
	Title  string `json:"title"`
}

type Piece struct {
	Title     string     `json:"title"`
	Composer  string     `json:"composer"`
	Movements []Movement `json:"movements,omitempty"`
}

type PerformanceCast struct {
	Character string `json:"character"`
	Performer string `json:"performer"`
}

type Writer struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

type Performance struct {
	ID                int64             `json:"id"`
	Title             string            `json:"title" validate:"required"`
	OriginalTitle     string            `json:"original_title,omitempty"`
	PerformanceType   string            `json:"performance_type" validate:"required"`
	OriginalLanguage  string            `json:"original_language,omitempty"`
	LanguageHeard     string            `json:"language_heard,omitempty"`
	Creator           string            `json:"creator" validate:"required"`
	AltName           string            `json:"alt_name,omitempty"`
	Country           string            `json:"country,omitempty"`
	Conductor         string            `json:"conductor,omitempty"`
	Director          string            `json:"director,omitempty"`
	OrchestraEnsemble string            `json:"orchestra_ensemble,omitempty"`
	Seen              bool              `json:"seen"`
	DateSeen          string            `json:"date_seen,omitempty" validate:"omitempty,datetime=2006-01-02"`
	LocationSeen      string            `json:"location_seen,omitempty"`
	LocationPremiered string            `json:"location_premiered,omitempty"`
	DatePremiered     string            `json:"date_premiered,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Pieces            []Piece           `json:"pieces,omitempty"`
	Cast              []PerformanceCast `json:"cast,omitempty"`
	Rating            *float64          `json:"rating,omitempty" validate:"omitempty,min=0,max=10"`
	Review            string            `json:"review,omitempty"`
	Images            []string          `json:"images,omitempty"`
	ExternalLinks     []string          `json:"external_links,omitempty"`
	Year              *int              `json:"year,omitempty"`
	YearSpecificity   string            `json:"year_specificity,omitempty" validate:"omitempty,oneof=exact year decade century millennium unknown"`
	Writers           []Writer          `json:"writers,omitempty"`
}
