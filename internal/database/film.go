package database

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/oswinp/curiodb/internal/domain"
)

// FilmRepo implements domain.FilmRepository
type FilmRepo struct {
	log zerolog.Logger
	db  *DB
}

func NewFilmRepo(log zerolog.Logger, db *DB) domain.FilmRepository {
	return &FilmRepo{
		log: log.With().Str("repo", "film").Logger(),
		db:  db,
	}
}

var filmColumns = []string{
	"tmdb_id", "title", "alt_title", "director", "alt_name", "cast_members",
	"crew_members", "rating", "industry_rating", "review", "blurb", "synopsis",
	"series", "language", "country", "genre", "tags", "awards_won",
	"release_date", "runtime_seconds", "budget", "box_office", "seen",
	"favourite", "watchlist", "date_watched", "rewatch_count", "poster",
	"background_pic", "medium", "sound", "colour", "festival",
	"external_links", "notes", "owned_id",
}

func filmValues(f *domain.Film) ([]any, error) {
	castJSON, err := encodeJSON(f.Cast)
	if err != nil {
		return nil, err
	}
	crewJSON, err := encodeJSON(f.Crew)
	if err != nil {
		return nil, err
	}
	genre := f.Genre
	if genre == nil {
		genre = []string{}
	}
	genreJSON, err := encodeJSON(genre)
	if err != nil {
		return nil, err
	}
	tagsJSON, err := encodeJSON(f.Tags)
	if err != nil {
		return nil, err
	}
	awardsJSON, err := encodeJSON(f.AwardsWon)
	if err != nil {
		return nil, err
	}
	linksJSON, err := encodeJSON(f.ExternalLinks)
	if err != nil {
		return nil, err
	}

	return []any{
		nullInt64(f.TmdbID), f.Title, nullString(f.AltTitle),
		nullString(f.Director), nullString(f.AltName), castJSON, crewJSON,
		nullFloatPtr(f.Rating), f.IndustryRating, nullString(f.Review),
		nullString(f.Blurb), nullString(f.Synopsis), nullString(f.Series),
		nullString(f.Language), nullString(f.Country), genreJSON, tagsJSON,
		awardsJSON, nullString(f.ReleaseDate), nullDuration(f.Runtime),
		f.Budget, f.BoxOffice, f.Seen, f.Favourite, f.Watchlist,
		nullString(f.DateWatched), f.RewatchCount, nullString(f.Poster),
		nullString(f.BackgroundPic), nullString(f.Medium), f.Sound, f.Colour,
		nullString(f.Festival), linksJSON, nullString(f.Notes),
		nullInt64Ptr(f.OwnedID),
	}, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFilm(row rowScanner) (*domain.Film, error) {
	var (
		f                                             domain.Film
		tmdbID, runtimeSeconds, ownedID               sql.NullInt64
		rating                                        sql.NullFloat64
		altTitle, director, altName                   sql.NullString
		review, blurb, synopsis, series               sql.NullString
		language, country, releaseDate                sql.NullString
		dateWatched, poster, backgroundPic            sql.NullString
		medium, festival, notes                       sql.NullString
		castJSON, crewJSON, genreJSON, tagsJSON       sql.NullString
		awardsJSON, linksJSON                         sql.NullString
	)

	err := row.Scan(
		&f.ID, &tmdbID, &f.Title, &altTitle, &director, &altName, &castJSON,
		&crewJSON, &rating, &f.IndustryRating, &review, &blurb, &synopsis,
		&series, &language, &country, &genreJSON, &tagsJSON, &awardsJSON,
		&releaseDate, &runtimeSeconds, &f.Budget, &f.BoxOffice, &f.Seen,
		&f.Favourite, &f.Watchlist, &dateWatched, &f.RewatchCount, &poster,
		&backgroundPic, &medium, &f.Sound, &f.Colour, &festival, &linksJSON,
		&notes, &ownedID,
	)
	if err != nil {
		return nil, err
	}

	f.TmdbID = tmdbID.Int64
	f.AltTitle = altTitle.String
	f.Director = director.String
	f.AltName = altName.String
	f.Rating = floatPtr(rating)
	f.Review = review.String
	f.Blurb = blurb.String
	f.Synopsis = synopsis.String
	f.Series = series.String
	f.Language = language.String
	f.Country = country.String
	f.ReleaseDate = releaseDate.String
	f.Runtime = durationFromSeconds(runtimeSeconds)
	f.DateWatched = dateWatched.String
	f.Poster = poster.String
	f.BackgroundPic = backgroundPic.String
	f.Medium = medium.String
	f.Festival = festival.String
	f.Notes = notes.String
	f.OwnedID = int64Ptr(ownedID)

	if err := decodeJSON(castJSON, &f.Cast); err != nil {
		return nil, err
	}
	if err := decodeJSON(crewJSON, &f.Crew); err != nil {
		return nil, err
	}
	if err := decodeJSON(genreJSON, &f.Genre); err != nil {
		return nil, err
	}
	if err := decodeJSON(tagsJSON, &f.Tags); err != nil {
		return nil, err
	}
	if err := decodeJSON(awardsJSON, &f.AwardsWon); err != nil {
		return nil, err
	}
	if err := decodeJSON(linksJSON, &f.ExternalLinks); err != nil {
		return nil, err
	}

	// Genre is a set, never null.
	if f.Genre == nil {
		f.Genre = []string{}
	}

	return &f, nil
}

func (r *FilmRepo) selectBuilder() sq.SelectBuilder {
	cols := append([]string{"id"}, filmColumns...)
	return r.db.squirrel.Select(cols...).From("films")
}

func (r *FilmRepo) List(ctx context.Context, filter domain.FilmFilter) ([]domain.Film, error) {
	queryBuilder := r.selectBuilder().OrderBy("id")

	if filter.Director != "" {
		queryBuilder = queryBuilder.Where(sq.Eq{"director": filter.Director})
	}
	if filter.Genre != "" {
		queryBuilder = queryBuilder.Where(sq.Like{"genre": "%" + filter.Genre + "%"})
	}
	if filter.Cast != "" {
		queryBuilder = queryBuilder.Where(sq.Like{"cast_members": "%" + filter.Cast + "%"})
	}
	if filter.Crew != "" {
		queryBuilder = queryBuilder.Where(sq.Like{"crew_members": "%" + filter.Crew + "%"})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "error building query")
	}

	r.log.Trace().Str("query", query).Interface("args", args).Msg("List")

	rows, err := r.db.handler.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "error executing query")
	}
	defer rows.Close()

	films := []domain.Film{}
	for rows.Next() {
		f, err := scanFilm(rows)
		if err != nil {
			return nil, errors.Wrap(err, "error scanning row")
		}
		films = append(films, *f)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "error iterating rows")
	}

	return films, nil
}

func (r *FilmRepo) Get(ctx context.Context, id int64) (*domain.Film, error) {
	return r.getOne(ctx, sq.Eq{"id": id})
}

// FindByTmdbID returns the film with the given external identifier, or
// domain.ErrNotFound.
func (r *FilmRepo) FindByTmdbID(ctx context.Context, tmdbID int64) (*domain.Film, error) {
	return r.getOne(ctx, sq.Eq{"tmdb_id": tmdbID})
}

// FindByTitle matches the title case-insensitively; when several films share
// a title the lowest id wins.
func (r *FilmRepo) FindByTitle(ctx context.Context, title string) (*domain.Film, error) {
	return r.getOne(ctx, sq.Expr("title = ? COLLATE NOCASE", title))
}

func (r *FilmRepo) getOne(ctx context.Context, pred any) (*domain.Film, error) {
	queryBuilder := r.selectBuilder().Where(pred).OrderBy("id").Limit(1)

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "error building query")
	}

	r.log.Trace().Str("query", query).Interface("args", args).Msg("getOne")

	row := r.db.handler.QueryRowContext(ctx, query, args...)
	f, err := scanFilm(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, errors.Wrap(err, "error scanning row")
	}

	return f, nil
}

func (r *FilmRepo) Store(ctx context.Context, film *domain.Film) error {
	values, err := filmValues(film)
	if err != nil {
		return err
	}

	queryBuilder := r.db.squirrel.
		Insert("films").
		Columns(filmColumns...).
		Values(values...)

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return errors.Wrap(err, "error building query")
	}

	r.log.Trace().Str("query", query).Interface("args", args).Msg("Store")

	result, err := r.db.handler.ExecContext(ctx, query, args...)
	if err != nil {
		return errors.Wrap(err, "error executing query")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return errors.Wrap(err, "error retrieving inserted id")
	}

	film.ID = id
	return nil
}

func (r *FilmRepo) Update(ctx context.Context, film *domain.Film) error {
	values, err := filmValues(film)
	if err != nil {
		return err
	}

	setMap := make(map[string]any, len(filmColumns))
	for i, col := range filmColumns {
		setMap[col] = values[i]
	}

	queryBuilder := r.db.squirrel.
		Update("films").
		SetMap(setMap).
		Where(sq.Eq{"id": film.ID})

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return errors.Wrap(err, "error building query")
	}

	r.log.Trace().Str("query", query).Interface("args", args).Msg("Update")

	result, err := r.db.handler.ExecContext(ctx, query, args...)
	if err != nil {
		return errors.Wrap(err, "error executing query")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "error checking affected rows")
	}
	if affected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// UpdateRating overwrites only the personal rating of an existing film.
func (r *FilmRepo) UpdateRating(ctx context.Context, id int64, rating float64) error {
	queryBuilder := r.db.squirrel.
		Update("films").
		Set("rating", rating).
		Where(sq.Eq{"id": id})

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return errors.Wrap(err, "error building query")
	}

	r.log.Trace().Str("query", query).Interface("args", args).Msg("UpdateRating")

	result, err := r.db.handler.ExecContext(ctx, query, args...)
	if err != nil {
		return errors.Wrap(err, "error executing query")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "error checking affected rows")
	}
	if affected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *FilmRepo) Delete(ctx context.Context, id int64) error {
	queryBuilder := r.db.squirrel.
		Delete("films").
		Where(sq.Eq{"id": id})

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return errors.Wrap(err, "error building query")
	}

	r.log.Trace().Str("query", query).Interface("args", args).Msg("Delete")

	result, err := r.db.handler.ExecContext(ctx, query, args...)
	if err != nil {
		return errors.Wrap(err, "error executing query")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "error checking affected rows")
	}
	if affected == 0 {
		return domain.ErrNotFound
	}

	return nil
}
