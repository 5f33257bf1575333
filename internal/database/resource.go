package database

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/oswinp/curiodb/internal/domain"
)

// resourceSpec describes how one flat catalog entity maps to its table:
// column order is shared by values and scan, scan reads id first.
type resourceSpec[T any] struct {
	table   string
	columns []string
	values  func(*T) ([]any, error)
	scan    func(rowScanner) (*T, error)
	id      func(*T) int64
	setID   func(*T, int64)
}

// ResourceRepo is the uniform squirrel-backed CRUD implementation behind
// every flat catalog entity. Films, books and lists have dedicated repos.
type ResourceRepo[T any] struct {
	log  zerolog.Logger
	db   *DB
	spec resourceSpec[T]
}

func newResourceRepo[T any](log zerolog.Logger, db *DB, spec resourceSpec[T]) *ResourceRepo[T] {
	return &ResourceRepo[T]{
		log:  log.With().Str("repo", spec.table).Logger(),
		db:   db,
		spec: spec,
	}
}

func (r *ResourceRepo[T]) List(ctx context.Context) ([]T, error) {
	cols := append([]string{"id"}, r.spec.columns...)
	queryBuilder := r.db.squirrel.Select(cols...).From(r.spec.table).OrderBy("id")

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

	records := []T{}
	for rows.Next() {
		rec, err := r.spec.scan(rows)
		if err != nil {
			return nil, errors.Wrap(err, "error scanning row")
		}
		records = append(records, *rec)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "error iterating rows")
	}

	return records, nil
}

func (r *ResourceRepo[T]) Get(ctx context.Context, id int64) (*T, error) {
	cols := append([]string{"id"}, r.spec.columns...)
	queryBuilder := r.db.squirrel.Select(cols...).From(r.spec.table).Where(sq.Eq{"id": id})

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "error building query")
	}

	r.log.Trace().Str("query", query).Interface("args", args).Msg("Get")

	row := r.db.handler.QueryRowContext(ctx, query, args...)
	rec, err := r.spec.scan(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, errors.Wrap(err, "error scanning row")
	}

	return rec, nil
}

func (r *ResourceRepo[T]) Store(ctx context.Context, record *T) error {
	values, err := r.spec.values(record)
	if err != nil {
		return err
	}

	queryBuilder := r.db.squirrel.
		Insert(r.spec.table).
		Columns(r.spec.columns...).
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

	r.spec.setID(record, id)
	return nil
}

func (r *ResourceRepo[T]) Update(ctx context.Context, record *T) error {
	values, err := r.spec.values(record)
	if err != nil {
		return err
	}

	setMap := make(map[string]any, len(r.spec.columns))
	for i, col := range r.spec.columns {
		setMap[col] = values[i]
	}

	queryBuilder := r.db.squirrel.
		Update(r.spec.table).
		SetMap(setMap).
		Where(sq.Eq{"id": r.spec.id(record)})

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

func (r *ResourceRepo[T]) Delete(ctx context.Context, id int64) error {
	queryBuilder := r.db.squirrel.
		Delete(r.spec.table).
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
