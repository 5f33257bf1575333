package database

import (
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/oswinp/curiodb/internal/domain"
)

// Resource specs for the remaining catalog entities.

func NewWardrobeRepo(log zerolog.Logger, db *DB) domain.ResourceRepository[domain.Wardrobe] {
	return newResourceRepo(log, db, resourceSpec[domain.Wardrobe]{
		table: "wardrobe",
		columns: []string{
			"category", "brands", "type", "style", "colour", "pictures",
			"price", "preferred_quantity",
		},
		values: func(w *domain.Wardrobe) ([]any, error) {
			brandsJSON, err := encodeJSON(w.Brands)
			if err != nil {
				return nil, err
			}
			colourJSON, err := encodeJSON(w.Colour)
			if err != nil {
				return nil, err
			}
			picturesJSON, err := encodeJSON(w.Pictures)
			if err != nil {
				return nil, err
			}
			return []any{
				w.Category, brandsJSON, nullString(w.Type),
				nullString(w.Style), colourJSON, picturesJSON,
				nullFloatPtr(w.Price), nullIntPtr(w.PreferredQuantity),
			}, nil
		},
		scan: func(row rowScanner) (*domain.Wardrobe, error) {
			var (
				w                                domain.Wardrobe
				brandsJSON, typ, style           sql.NullString
				colourJSON, picturesJSON         sql.NullString
				price                            sql.NullFloat64
				preferredQuantity                sql.NullInt64
			)
			err := row.Scan(&w.ID, &w.Category, &brandsJSON, &typ, &style,
				&colourJSON, &picturesJSON, &price, &preferredQuantity)
			if err != nil {
				return nil, err
			}
			w.Type = typ.String
			w.Style = style.String
			w.Price = floatPtr(price)
			w.PreferredQuantity = intPtr(preferredQuantity)
			if err := decodeJSON(brandsJSON, &w.Brands); err != nil {
				return nil, err
			}
			if err := decodeJSON(colourJSON, &w.Colour); err != nil {
				return nil, err
			}
			if err := decodeJSON(picturesJSON, &w.Pictures); err != nil {
				return nil, err
			}
			return &w, nil
		},
		id:    func(w *domain.Wardrobe) int64 { return w.ID },
		setID: func(w *domain.Wardrobe, id int64) { w.ID = id },
	})
}

func NewArtRepo(log zerolog.Logger, db *DB) domain.ResourceRepository[domain.Art] {
	return newResourceRepo(log, db, resourceSpec[domain.Art]{
		table: "art",
		columns: []string{
			"owned", "title", "year", "year_specificity", "artist", "culture",
			"type", "format", "info", "techniques", "price", "photo", "link",
		},
		values: func(a *domain.Art) ([]any, error) {
			return []any{
				a.Owned, nullString(a.Title), nullIntPtr(a.Year),
				nullString(a.YearSpecificity), nullString(a.Artist),
				nullString(a.Culture), nullString(a.Type),
				nullString(a.Format), nullString(a.Info),
				nullString(a.Techniques), nullFloatPtr(a.Price),
				nullString(a.Photo), nullString(a.Link),
			}, nil
		},
		scan: func(row rowScanner) (*domain.Art, error) {
			var (
				a                                 domain.Art
				title, yearSpecificity, artist    sql.NullString
				culture, typ, format, info        sql.NullString
				techniques, photo, link           sql.NullString
				year                              sql.NullInt64
				price                             sql.NullFloat64
			)
			err := row.Scan(&a.ID, &a.Owned, &title, &year, &yearSpecificity,
				&artist, &culture, &typ, &format, &info, &techniques, &price,
				&photo, &link)
			if err != nil {
				return nil, err
			}
			a.Title = title.String
			a.Year = intPtr(year)
			a.YearSpecificity = yearSpecificity.String
			a.Artist = artist.String
			a.Culture = culture.String
			a.Type = typ.String
			a.Format = format.String
			a.Info = info.String
			a.Techniques = techniques.String
			a.Price = floatPtr(price)
			a.Photo = photo.String
			a.Link = link.String
			return &a, nil
		},
		id:    func(a *domain.Art) int64 { return a.ID },
		setID: func(a *domain.Art, id int64) { a.ID = id },
	})
}

func NewExtrasCategoryRepo(log zerolog.Logger, db *DB) domain.ResourceRepository[domain.ExtrasCategory] {
	return newResourceRepo(log, db, resourceSpec[domain.ExtrasCategory]{
		table:   "extras_categories",
		columns: []string{"name", "description"},
		values: func(c *domain.ExtrasCategory) ([]any, error) {
			return []any{c.Name, nullString(c.Description)}, nil
		},
		scan: func(row rowScanner) (*domain.ExtrasCategory, error) {
			var (
				c           domain.ExtrasCategory
				description sql.NullString
			)
			if err := row.Scan(&c.ID, &c.Name, &description); err != nil {
				return nil, err
			}
			c.Description = description.String
			return &c, nil
		},
		id:    func(c *domain.ExtrasCategory) int64 { return c.ID },
		setID: func(c *domain.ExtrasCategory, id int64) { c.ID = id },
	})
}

func NewExtraRepo(log zerolog.Logger, db *DB) domain.ResourceRepository[domain.Extra] {
	return newResourceRepo(log, db, resourceSpec[domain.Extra]{
		table: "extras",
		columns: []string{
			"owned", "category_id", "brand", "model", "price", "links",
			"year", "year_specificity", "additional_info",
		},
		values: func(e *domain.Extra) ([]any, error) {
			linksJSON, err := encodeJSON(e.Links)
			if err != nil {
				return nil, err
			}
			return []any{
				e.Owned, nullInt64Ptr(e.CategoryID), nullString(e.Brand),
				e.Model, nullFloatPtr(e.Price), linksJSON, nullIntPtr(e.Year),
				nullString(e.YearSpecificity), nullString(e.AdditionalInfo),
			}, nil
		},
		scan: func(row rowScanner) (*domain.Extra, error) {
			var (
				e                                 domain.Extra
				brand, linksJSON                  sql.NullString
				yearSpecificity, additionalInfo   sql.NullString
				categoryID, year                  sql.NullInt64
				price                             sql.NullFloat64
			)
			err := row.Scan(&e.ID, &e.Owned, &categoryID, &brand, &e.Model,
				&price, &linksJSON, &year, &yearSpecificity, &additionalInfo)
			if err != nil {
				return nil, err
			}
			e.CategoryID = int64Ptr(categoryID)
			e.Brand = brand.String
			e.Price = floatPtr(price)
			e.Year = intPtr(year)
			e.YearSpecificity = yearSpecificity.String
			e.AdditionalInfo = additionalInfo.String
			if err := decodeJSON(linksJSON, &e.Links); err != nil {
				return nil, err
			}
			return &e, nil
		},
		id:    func(e *domain.Extra) int64 { return e.ID },
		setID: func(e *domain.Extra, id int64) { e.ID = id },
	})
}

func NewInstrumentRepo(log zerolog.Logger, db *DB) domain.ResourceRepository[domain.Instrument] {
	return newResourceRepo(log, db, resourceSpec[domain.Instrument]{
		table: "instruments",
		columns: []string{
			"instrument", "brand", "name", "maker", "category", "type", "year",
			"country", "owned", "price", "photo", "link", "notes",
			"date_bought", "materials",
		},
		values: func(i *domain.Instrument) ([]any, error) {
			return []any{
				i.Instrument, nullString(i.Brand), i.Name,
				nullString(i.Maker), i.Category, nullString(i.Type),
				nullIntPtr(i.Year), nullString(i.Country), i.Owned,
				nullFloatPtr(i.Price), nullString(i.Photo),
				nullString(i.Link), nullString(i.Notes),
				nullString(i.DateBought), nullString(i.Materials),
			}, nil
		},
		scan: func(row rowScanner) (*domain.Instrument, error) {
			var (
				i                              domain.Instrument
				brand, maker, typ, country     sql.NullString
				photo, link, notes             sql.NullString
				dateBought, materials          sql.NullString
				year                           sql.NullInt64
				price                          sql.NullFloat64
			)
			err := row.Scan(&i.ID, &i.Instrument, &brand, &i.Name, &maker,
				&i.Category, &typ, &year, &country, &i.Owned, &price, &photo,
				&link, &notes, &dateBought, &materials)
			if err != nil {
				return nil, err
			}
			i.Brand = brand.String
			i.Maker = maker.String
			i.Type = typ.String
			i.Year = intPtr(year)
			i.Country = country.String
			i.Price = floatPtr(price)
			i.Photo = photo.String
			i.Link = link.String
			i.Notes = notes.String
			i.DateBought = dateBought.String
			i.Materials = materials.String
			return &i, nil
		},
		id:    func(i *domain.Instrument) int64 { return i.ID },
		setID: func(i *domain.Instrument, id int64) { i.ID = id },
	})
}

func NewPerformanceRepo(log zerolog.Logger, db *DB) domain.ResourceRepository[domain.Performance] {
	return newResourceRepo(log, db, resourceSpec[domain.Performance]{
		table: "performances",
		columns: []string{
			"title", "original_title", "performance_type", "original_language",
			"language_heard", "creator", "alt_name", "country", "conductor",
			"director", "orchestra_ensemble", "seen", "date_seen",
			"location_seen", "location_premiered", "date_premiered", "pieces",
			"cast_members", "rating", "review", "images", "external_links",
			"year", "year_specificity", "writers",
		},
		values: func(p *domain.Performance) ([]any, error) {
			piecesJSON, err := encodeJSON(p.Pieces)
			if err != nil {
				return nil, err
			}
			castJSON, err := encodeJSON(p.Cast)
			if err != nil {
				return nil, err
			}
			imagesJSON, err := encodeJSON(p.Images)
			if err != nil {
				return nil, err
			}
			linksJSON, err := encodeJSON(p.ExternalLinks)
			if err != nil {
				return nil, err
			}
			writersJSON, err := encodeJSON(p.Writers)
			if err != nil {
				return nil, err
			}
			return []any{
				p.Title, nullString(p.OriginalTitle), p.PerformanceType,
				nullString(p.OriginalLanguage), nullString(p.LanguageHeard),
				p.Creator, nullString(p.AltName), nullString(p.Country),
				nullString(p.Conductor), nullString(p.Director),
				nullString(p.OrchestraEnsemble), p.Seen,
				nullString(p.DateSeen), nullString(p.LocationSeen),
				nullString(p.LocationPremiered), nullString(p.DatePremiered),
				piecesJSON, castJSON, nullFloatPtr(p.Rating),
				nullString(p.Review), imagesJSON, linksJSON,
				nullIntPtr(p.Year), nullString(p.YearSpecificity), writersJSON,
			}, nil
		},
		scan: func(row rowScanner) (*domain.Performance, error) {
			var (
				p                                      domain.Performance
				originalTitle, originalLanguage        sql.NullString
				languageHeard, altName, country        sql.NullString
				conductor, director                    sql.NullString
				orchestraEnsemble, dateSeen            sql.NullString
				locationSeen, locationPremiered        sql.NullString
				datePremiered, review                  sql.NullString
				yearSpecificity                        sql.NullString
				piecesJSON, castJSON, imagesJSON       sql.NullString
				linksJSON, writersJSON                 sql.NullString
				year                                   sql.NullInt64
				rating                                 sql.NullFloat64
			)
			err := row.Scan(&p.ID, &p.Title, &originalTitle,
				&p.PerformanceType, &originalLanguage, &languageHeard,
				&p.Creator, &altName, &country, &conductor, &director,
				&orchestraEnsemble, &p.Seen, &dateSeen, &locationSeen,
				&locationPremiered, &datePremiered, &piecesJSON, &castJSON,
				&rating, &review, &imagesJSON, &linksJSON, &year,
				&yearSpecificity, &writersJSON)
			if err != nil {
				return nil, err
			}
			p.OriginalTitle = originalTitle.String
			p.OriginalLanguage = originalLanguage.String
			p.LanguageHeard = languageHeard.String
			p.AltName = altName.String
			p.Country = country.String
			p.Conductor = conductor.String
			p.Director = director.String
			p.OrchestraEnsemble = orchestraEnsemble.String
			p.DateSeen = dateSeen.String
			p.LocationSeen = locationSeen.String
			p.LocationPremiered = locationPremiered.String
			p.DatePremiered = datePremiered.String
			p.Rating = floatPtr(rating)
			p.Review = review.String
			p.Year = intPtr(year)
			p.YearSpecificity = yearSpecificity.String
			if err := decodeJSON(piecesJSON, &p.Pieces); err != nil {
				return nil, err
			}
			if err := decodeJSON(castJSON, &p.Cast); err != nil {
				return nil, err
			}
			if err := decodeJSON(imagesJSON, &p.Images); err != nil {
				return nil, err
			}
			if err := decodeJSON(linksJSON, &p.ExternalLinks); err != nil {
				return nil, err
			}
			if err := decodeJSON(writersJSON, &p.Writers); err != nil {
				return nil, err
			}
			return &p, nil
		},
		id:    func(p *domain.Performance) int64 { return p.ID },
		setID: func(p *domain.Performance, id int64) { p.ID = id },
	})
}
