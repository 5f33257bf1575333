package database

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/oswinp/curiodb/internal/domain"
)

// ListRepo implements domain.ListRepository
type ListRepo struct {
	log zerolog.Logger
	db  *DB
}

func NewListRepo(log zerolog.Logger, db *DB) domain.ListRepository {
	return &ListRepo{
		log: log.With().Str("repo", "list").Logger(),
		db:  db,
	}
}

var listColumns = []string{"name", "description", "category"}

func scanList(row rowScanner) (*domain.List, error) {
	var (
		l           domain.List
		description sql.NullString
		createdAt   sql.NullString
	)

	if err := row.Scan(&l.ID, &l.Name, &description, &l.Category, &createdAt); err != nil {
		return nil, err
	}

	l.Description = description.String
	l.CreatedAt = createdAt.String
	return &l, nil
}

func (r *ListRepo) List(ctx context.Context) ([]domain.List, error) {
	cols := append([]string{"id"}, append(listColumns, "created_at")...)
	queryBuilder := r.db.squirrel.Select(cols...).From("lists").OrderBy("id")

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

	lists := []domain.List{}
	for rows.Next() {
		l, err := scanList(rows)
		if err != nil {
			return nil, errors.Wrap(err, "error scanning row")
		}
		lists = append(lists, *l)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "error iterating rows")
	}

	return lists, nil
}

// Get loads the list together with its member films or books, depending on
// the list's category.
func (r *ListRepo) Get(ctx context.Context, id int64) (*domain.List, error) {
	l, err := r.getOne(ctx, id)
	if err != nil {
		return nil, err
	}

	switch l.Category {
	case domain.ListCategoryFilms:
		films, err := r.memberFilms(ctx, id)
		if err != nil {
			return nil, err
		}
		l.Films = films
	case domain.ListCategoryBooks:
		books, err := r.memberBooks(ctx, id)
		if err != nil {
			return nil, err
		}
		l.Books = books
	}

	return l, nil
}

func (r *ListRepo) getOne(ctx context.Context, id int64) (*domain.List, error) {
	cols := append([]string{"id"}, append(listColumns, "created_at")...)
	queryBuilder := r.db.squirrel.Select(cols...).From("lists").Where(sq.Eq{"id": id})

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "error building query")
	}

	r.log.Trace().Str("query", query).Interface("args", args).Msg("getOne")

	row := r.db.handler.QueryRowContext(ctx, query, args...)
	l, err := scanList(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, errors.Wrap(err, "error scanning row")
	}

	return l, nil
}

func (r *ListRepo) memberFilms(ctx context.Context, listID int64) ([]domain.Film, error) {
	cols := make([]string, 0, len(filmColumns)+1)
	cols = append(cols, "films.id")
	for _, c := range filmColumns {
		cols = append(cols, "films."+c)
	}

	queryBuilder := r.db.squirrel.
		Select(cols...).
		From("films").
		Join("list_films ON list_films.film_id = films.id").
		Where(sq.Eq{"list_films.list_id": listID}).
		OrderBy("films.id")

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "error building query")
	}

	r.log.Trace().Str("query", query).Interface("args", args).Msg("memberFilms")

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

func (r *ListRepo) memberBooks(ctx context.Context, listID int64) ([]domain.Book, error) {
	cols := make([]string, 0, len(bookColumns)+1)
	cols = append(cols, "books.id")
	for _, c := range bookColumns {
		cols = append(cols, "books."+c)
	}

	queryBuilder := r.db.squirrel.
		Select(cols...).
		From("books").
		Join("list_books ON list_books.book_id = books.id").
		Where(sq.Eq{"list_books.list_id": listID}).
		OrderBy("books.id")

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "error building query")
	}

	r.log.Trace().Str("query", query).Interface("args", args).Msg("memberBooks")

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

func (r *ListRepo) Store(ctx context.Context, list *domain.List) error {
	queryBuilder := r.db.squirrel.
		Insert("lists").
		Columns(listColumns...).
		Values(list.Name, nullString(list.Description), list.Category)

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

	list.ID = id
	return nil
}

// Update changes name and description only; the category of an existing list
// is immutable.
func (r *ListRepo) Update(ctx context.Context, list *domain.List) error {
	queryBuilder := r.db.squirrel.
		Update("lists").
		Set("name", list.Name).
		Set("description", nullString(list.Description)).
		Where(sq.Eq{"id": list.ID})

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

func (r *ListRepo) Delete(ctx context.Context, id int64) error {
	queryBuilder := r.db.squirrel.
		Delete("lists").
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

func (r *ListRepo) AddFilm(ctx context.Context, listID, filmID int64) error {
	return r.addMember(ctx, "list_films", "film_id", domain.ListCategoryFilms, listID, filmID)
}

func (r *ListRepo) RemoveFilm(ctx context.Context, listID, filmID int64) error {
	return r.removeMember(ctx, "list_films", "film_id", listID, filmID)
}

func (r *ListRepo) AddBook(ctx context.Context, listID, bookID int64) error {
	return r.addMember(ctx, "list_books", "book_id", domain.ListCategoryBooks, listID, bookID)
}

func (r *ListRepo) RemoveBook(ctx context.Context, listID, bookID int64) error {
	return r.removeMember(ctx, "list_books", "book_id", listID, bookID)
}

// addMember checks the list's category and inserts the membership row inside
// one transaction, so the list cannot disappear between check and insert.
func (r *ListRepo) addMember(ctx context.Context, table, memberCol, want string, listID, memberID int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query, args, err := r.db.squirrel.
		Select("category").
		From("lists").
		Where(sq.Eq{"id": listID}).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "error building query")
	}

	r.log.Trace().Str("query", query).Interface("args", args).Msg("addMember")

	var category string
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&category); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return errors.Wrap(err, "error scanning row")
	}
	if category != want {
		return domain.ErrListCategory
	}

	query, args, err = r.db.squirrel.
		Insert(table).
		Columns("list_id", memberCol).
		Values(listID, memberID).
		Suffix("ON CONFLICT DO NOTHING").
		ToSql()
	if err != nil {
		return errors.Wrap(err, "error building query")
	}

	r.log.Trace().Str("query", query).Interface("args", args).Msg("addMember")

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "error executing query")
	}

	return tx.Commit()
}

func (r *ListRepo) removeMember(ctx context.Context, table, memberCol string, listID, memberID int64) error {
	queryBuilder := r.db.squirrel.
		Delete(table).
		Where(sq.Eq{"list_id": listID, memberCol: memberID})

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return errors.Wrap(err, "error building query")
	}

	r.log.Trace().Str("query", query).Interface("args", args).Msg("removeMember")

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
