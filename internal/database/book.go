package database

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/oswinp/curiodb/internal/domain"
)

// BookRepo implements domain.BookRepository
type BookRepo struct {
	log zerolog.Logger
	db  *DB
}

func NewBookRepo(log zerolog.Logger, db *DB) domain.BookRepository {
	return &BookRepo{
		log: log.With().Str("repo", "book").Logger(),
		db:  db,
	}
}

var bookColumns = []string{
	"title", "author", "owned_id", "year_released", "year_specificity",
	"rating", "genre", "tags", "review", "page_count", "format", "cover",
	"external_links", "isbn", "series", "synopsis", "publisher", "edition",
	"language", "country",
}

func bookValues(b *domain.Book) ([]any, error) {
	genre := b.Genre
	if genre == nil {
		genre = []string{}
	}
	genreJSON, err := encodeJSON(genre)
	if err != nil {
		return nil, err
	}
	tagsJSON, err := encodeJSON(b.Tags)
	if err != nil {
		return nil, err
	}
	linksJSON, err := encodeJSON(b.ExternalLinks)
	if err != nil {
		return nil, err
	}

	return []any{
		b.Title, b.Author, nullInt64Ptr(b.OwnedID), nullIntPtr(b.YearReleased),
		nullString(b.YearSpecificity), nullFloatPtr(b.Rating), genreJSON,
		tagsJSON, nullString(b.Review), nullIntPtr(b.PageCount),
		nullString(b.Format), nullString(b.Cover), linksJSON,
		nullString(b.ISBN), nullString(b.Series), nullString(b.Synopsis),
		nullString(b.Publisher), nullString(b.Edition), nullString(b.Language),
		nullString(b.Country),
	}, nil
}

func scanBook(row rowScanner) (*domain.Book, error) {
	var (
		b                                  domain.Book
		ownedID, yearReleased, pageCount   sql.NullInt64
		rating                             sql.NullFloat64
		yearSpecificity, review, format    sql.NullString
		cover, isbn, series, synopsis      sql.NullString
		publisher, edition                 sql.NullString
		language, country                  sql.NullString
		genreJSON, tagsJSON, linksJSON     sql.NullString
	)

	err := row.Scan(
		&b.ID, &b.Title, &b.Author, &ownedID, &yearReleased, &yearSpecificity,
		&rating, &genreJSON, &tagsJSON, &review, &pageCount, &format, &cover,
		&linksJSON, &isbn, &series, &synopsis, &publisher, &edition,
		&language, &country,
	)
	if err != nil {
		return nil, err
	}

	b.OwnedID = int64Ptr(ownedID)
	b.YearReleased = intPtr(yearReleased)
	b.YearSpecificity = yearSpecificity.String
	b.Rating = floatPtr(rating)
	b.Review = review.String
	b.PageCount = intPtr(pageCount)
	b.Format = format.String
	b.Cover = cover.String
	b.ISBN = isbn.String
	b.Series = series.String
	b.Synopsis = synopsis.String
	b.Publisher = publisher.String
	b.Edition = edition.String
	b.Language = language.String
	b.Country = country.String

	if err := decodeJSON(genreJSON, &b.Genre); err != nil {
		return nil, err
	}
	if err := decodeJSON(tagsJSON, &b.Tags); err != nil {
		return nil, err
	}
	if err := decodeJSON(linksJSON, &b.ExternalLinks); err != nil {
		return nil, err
	}

	if b.Genre == nil {
		b.Genre = []string{}
	}

	return &b, nil
}

func (r *BookRepo) List(ctx context.Context, filter domain.BookFilter) ([]domain.Book, error) {
	cols := append([]string{"id"}, bookColumns...)
	queryBuilder := r.db.squirrel.Select(cols...).From("books").OrderBy("id")

	if filter.Author != "" {
		queryBuilder = queryBuilder.Where(sq.Eq{"author": filter.Author})
	}
	if filter.Genre != "" {
		queryBuilder = queryBuilder.Where(sq.Like{"genre": "%" + filter.Genre + "%"})
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

	books := []domain.Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, errors.Wrap(err, "error scanning row")
		}
		books = append(books, *b)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "error iterating rows")
	}

	return books, nil
}

func (r *BookRepo) Get(ctx context.Context, id int64) (*domain.Book, error) {
	cols := append([]string{"id"}, bookColumns...)
	queryBuilder := r.db.squirrel.Select(cols...).From("books").Where(sq.Eq{"id": id})

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "error building query")
	}

	r.log.Trace().Str("query", query).Interface("args", args).Msg("Get")

	row := r.db.handler.QueryRowContext(ctx, query, args...)
	b, err := scanBook(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, errors.Wrap(err, "error scanning row")
	}

	return b, nil
}

func (r *BookRepo) Store(ctx context.Context, book *domain.Book) error {
	values, err := bookValues(book)
	if err != nil {
		return err
	}

	queryBuilder := r.db.squirrel.
		Insert("books").
		Columns(bookColumns...).
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

	book.ID = id
	return nil
}

func (r *BookRepo) Update(ctx context.Context, book *domain.Book) error {
	values, err := bookValues(book)
	if err != nil {
		return err
	}

	setMap := make(map[string]any, len(bookColumns))
	for i, col := range bookColumns {
		setMap[col] = values[i]
	}

	queryBuilder := r.db.squirrel.
		Update("books").
		SetMap(setMap).
		Where(sq.Eq{"id": book.ID})

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

func (r *BookRepo) Delete(ctx context.Context, id int64) error {
	queryBuilder := r.db.squirrel.
		Delete("books").
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
