package database

import (
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/oswinp/curiodb/internal/domain"
)

// Resource specs for the physical media entities.

func NewWatchRepo(log zerolog.Logger, db *DB) domain.ResourceRepository[domain.Watch] {
	return newResourceRepo(log, db, resourceSpec[domain.Watch]{
		table: "watches",
		columns: []string{
			"brand", "model", "reference_number", "registration_number",
			"country", "case_size", "price", "photo", "link", "owned", "notes",
		},
		values: func(w *domain.Watch) ([]any, error) {
			return []any{
				w.Brand, w.Model, nullString(w.ReferenceNumber),
				nullString(w.RegistrationNumber), nullString(w.Country),
				nullFloatPtr(w.CaseSize), nullFloatPtr(w.Price),
				nullString(w.Photo), nullString(w.Link), w.Owned,
				nullString(w.Notes),
			}, nil
		},
		scan: func(row rowScanner) (*domain.Watch, error) {
			var (
				w                            domain.Watch
				refNum, regNum, country      sql.NullString
				photo, link, notes           sql.NullString
				caseSize, price              sql.NullFloat64
			)
			err := row.Scan(&w.ID, &w.Brand, &w.Model, &refNum, &regNum,
				&country, &caseSize, &price, &photo, &link, &w.Owned, &notes)
			if err != nil {
				return nil, err
			}
			w.ReferenceNumber = refNum.String
			w.RegistrationNumber = regNum.String
			w.Country = country.String
			w.CaseSize = floatPtr(caseSize)
			w.Price = floatPtr(price)
			w.Photo = photo.String
			w.Link = link.String
			w.Notes = notes.String
			return &w, nil
		},
		id:    func(w *domain.Watch) int64 { return w.ID },
		setID: func(w *domain.Watch, id int64) { w.ID = id },
	})
}

func NewMusicRepo(log zerolog.Logger, db *DB) domain.ResourceRepository[domain.Music] {
	return newResourceRepo(log, db, resourceSpec[domain.Music]{
		table: "music",
		columns: []string{
			"owned", "format", "title", "artist", "release_date",
			"catalog_number", "genre", "length_seconds", "type", "cover_art",
			"price", "language", "country", "label", "link", "notes",
		},
		values: func(m *domain.Music) ([]any, error) {
			genre := m.Genre
			if genre == nil {
				genre = []string{}
			}
			genreJSON, err := encodeJSON(genre)
			if err != nil {
				return nil, err
			}
			return []any{
				m.Owned, m.Format, m.Title, m.Artist,
				nullString(m.ReleaseDate), nullString(m.CatalogNumber),
				genreJSON, nullDuration(m.Length), m.Type,
				nullString(m.CoverArt), nullFloatPtr(m.Price),
				nullString(m.Language), nullString(m.Country),
				nullString(m.Label), nullString(m.Link), nullString(m.Notes),
			}, nil
		},
		scan: func(row rowScanner) (*domain.Music, error) {
			var (
				m                                domain.Music
				releaseDate, catalogNumber       sql.NullString
				genreJSON, coverArt, language    sql.NullString
				country, label, link, notes      sql.NullString
				lengthSeconds                    sql.NullInt64
				price                            sql.NullFloat64
			)
			err := row.Scan(&m.ID, &m.Owned, &m.Format, &m.Title, &m.Artist,
				&releaseDate, &catalogNumber, &genreJSON, &lengthSeconds,
				&m.Type, &coverArt, &price, &language, &country, &label,
				&link, &notes)
			if err != nil {
				return nil, err
			}
			m.ReleaseDate = releaseDate.String
			m.CatalogNumber = catalogNumber.String
			m.Length = durationFromSeconds(lengthSeconds)
			m.CoverArt = coverArt.String
			m.Price = floatPtr(price)
			m.Language = language.String
			m.Country = country.String
			m.Label = label.String
			m.Link = link.String
			m.Notes = notes.String
			if err := decodeJSON(genreJSON, &m.Genre); err != nil {
				return nil, err
			}
			if m.Genre == nil {
				m.Genre = []string{}
			}
			return &m, nil
		},
		id:    func(m *domain.Music) int64 { return m.ID },
		setID: func(m *domain.Music, id int64) { m.ID = id },
	})
}

func NewFilmCollectionRepo(log zerolog.Logger, db *DB) domain.ResourceRepository[domain.FilmCollection] {
	return newResourceRepo(log, db, resourceSpec[domain.FilmCollection]{
		table: "film_collections",
		columns: []string{
			"owned", "format", "title", "director", "release_year", "genre",
			"length_seconds", "type", "cover_art", "price", "language",
			"country", "studio", "runtime_seconds", "link", "notes",
		},
		values: func(fc *domain.FilmCollection) ([]any, error) {
			genre := fc.Genre
			if genre == nil {
				genre = []string{}
			}
			genreJSON, err := encodeJSON(genre)
			if err != nil {
				return nil, err
			}
			return []any{
				fc.Owned, fc.Format, fc.Title, nullString(fc.Director),
				nullIntPtr(fc.ReleaseYear), genreJSON, nullDuration(fc.Length),
				fc.Type, nullString(fc.CoverArt), nullFloatPtr(fc.Price),
				nullString(fc.Language), nullString(fc.Country),
				nullString(fc.Studio), nullDuration(fc.Runtime),
				nullString(fc.Link), nullString(fc.Notes),
			}, nil
		},
		scan: func(row rowScanner) (*domain.FilmCollection, error) {
			var (
				fc                               domain.FilmCollection
				director, genreJSON, coverArt    sql.NullString
				language, country, studio        sql.NullString
				link, notes                      sql.NullString
				releaseYear, lengthSeconds       sql.NullInt64
				runtimeSeconds                   sql.NullInt64
				price                            sql.NullFloat64
			)
			err := row.Scan(&fc.ID, &fc.Owned, &fc.Format, &fc.Title,
				&director, &releaseYear, &genreJSON, &lengthSeconds, &fc.Type,
				&coverArt, &price, &language, &country, &studio,
				&runtimeSeconds, &link, &notes)
			if err != nil {
				return nil, err
			}
			fc.Director = director.String
			fc.ReleaseYear = intPtr(releaseYear)
			fc.Length = durationFromSeconds(lengthSeconds)
			fc.CoverArt = coverArt.String
			fc.Price = floatPtr(price)
			fc.Language = language.String
			fc.Country = country.String
			fc.Studio = studio.String
			fc.Runtime = durationFromSeconds(runtimeSeconds)
			fc.Link = link.String
			fc.Notes = notes.String
			if err := decodeJSON(genreJSON, &fc.Genre); err != nil {
				return nil, err
			}
			if fc.Genre == nil {
				fc.Genre = []string{}
			}
			return &fc, nil
		},
		id:    func(fc *domain.FilmCollection) int64 { return fc.ID },
		setID: func(fc *domain.FilmCollection, id int64) { fc.ID = id },
	})
}

func NewBookCollectionRepo(log zerolog.Logger, db *DB) domain.ResourceRepository[domain.BookCollection] {
	return newResourceRepo(log, db, resourceSpec[domain.BookCollection]{
		table: "book_collections",
		columns: []string{
			"owned", "format", "title", "author", "publication_date", "isbn",
			"genre", "page_count", "cover_image", "price", "language",
			"country", "publisher", "link", "notes",
		},
		values: func(bc *domain.BookCollection) ([]any, error) {
			genre := bc.Genre
			if genre == nil {
				genre = []string{}
			}
			genreJSON, err := encodeJSON(genre)
			if err != nil {
				return nil, err
			}
			return []any{
				bc.Owned, bc.Format, bc.Title, bc.Author,
				nullString(bc.PublicationDate), nullString(bc.ISBN), genreJSON,
				nullIntPtr(bc.PageCount), nullString(bc.CoverImage),
				nullFloatPtr(bc.Price), nullString(bc.Language),
				nullString(bc.Country), nullString(bc.Publisher),
				nullString(bc.Link), nullString(bc.Notes),
			}, nil
		},
		scan: func(row rowScanner) (*domain.BookCollection, error) {
			var (
				bc                               domain.BookCollection
				publicationDate, isbn            sql.NullString
				genreJSON, coverImage, language  sql.NullString
				country, publisher, link, notes  sql.NullString
				pageCount                        sql.NullInt64
				price                            sql.NullFloat64
			)
			err := row.Scan(&bc.ID, &bc.Owned, &bc.Format, &bc.Title,
				&bc.Author, &publicationDate, &isbn, &genreJSON, &pageCount,
				&coverImage, &price, &language, &country, &publisher, &link,
				&notes)
			if err != nil {
				return nil, err
			}
			bc.PublicationDate = publicationDate.String
			bc.ISBN = isbn.String
			bc.PageCount = intPtr(pageCount)
			bc.CoverImage = coverImage.String
			bc.Price = floatPtr(price)
			bc.Language = language.String
			bc.Country = country.String
			bc.Publisher = publisher.String
			bc.Link = link.String
			bc.Notes = notes.String
			if err := decodeJSON(genreJSON, &bc.Genre); err != nil {
				return nil, err
			}
			if bc.Genre == nil {
				bc.Genre = []string{}
			}
			return &bc, nil
		},
		id:    func(bc *domain.BookCollection) int64 { return bc.ID },
		setID: func(bc *domain.BookCollection, id int64) { bc.ID = id },
	})
}

func NewGameCollectionRepo(log zerolog.Logger, db *DB) domain.ResourceRepository[domain.GameCollection] {
	return newResourceRepo(log, db, resourceSpec[domain.GameCollection]{
		table: "game_collections",
		columns: []string{
			"owned", "platform", "title", "developer", "release_date",
			"genre", "cover_art", "price", "language", "country", "publisher",
			"link", "notes",
		},
		values: func(gc *domain.GameCollection) ([]any, error) {
			genre := gc.Genre
			if genre == nil {
				genre = []string{}
			}
			genreJSON, err := encodeJSON(genre)
			if err != nil {
				return nil, err
			}
			return []any{
				gc.Owned, gc.Platform, gc.Title, nullString(gc.Developer),
				nullString(gc.ReleaseDate), genreJSON, nullString(gc.CoverArt),
				nullFloatPtr(gc.Price), nullString(gc.Language),
				nullString(gc.Country), nullString(gc.Publisher),
				nullString(gc.Link), nullString(gc.Notes),
			}, nil
		},
		scan: func(row rowScanner) (*domain.GameCollection, error) {
			var (
				gc                               domain.GameCollection
				developer, releaseDate           sql.NullString
				genreJSON, coverArt, language    sql.NullString
				country, publisher, link, notes  sql.NullString
				price                            sql.NullFloat64
			)
			err := row.Scan(&gc.ID, &gc.Owned, &gc.Platform, &gc.Title,
				&developer, &releaseDate, &genreJSON, &coverArt, &price,
				&language, &country, &publisher, &link, &notes)
			if err != nil {
				return nil, err
			}
			gc.Developer = developer.String
			gc.ReleaseDate = releaseDate.String
			gc.CoverArt = coverArt.String
			gc.Price = floatPtr(price)
			gc.Language = language.String
			gc.Country = country.String
			gc.Publisher = publisher.String
			gc.Link = link.String
			gc.Notes = notes.String
			if err := decodeJSON(genreJSON, &gc.Genre); err != nil {
				return nil, err
			}
			if gc.Genre == nil {
				gc.Genre = []string{}
			}
			return &gc, nil
		},
		id:    func(gc *domain.GameCollection) int64 { return gc.ID },
		setID: func(gc *domain.GameCollection, id int64) { gc.ID = id },
	})
}
