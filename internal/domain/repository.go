package domain

import "context"

// FilmRepository is the persistence interface for film records.
type FilmRepository interface {
	List(ctx context.Context, filter FilmFilter) ([]Film, error)
	Get(ctx context.Context, id int64) (*Film, error)
	Store(ctx context.Context, film *Film) error
	Update(ctx context.Context, film *Film) error
	Delete(ctx context.Context, id int64) error

	// FindByTmdbID returns the film carrying the given external identifier,
	// or ErrNotFound.
	FindByTmdbID(ctx context.Context, tmdbID int64) (*Film, error)
	// FindByTitle returns the first film whose title matches case-insensitively
	// (lowest id wins), or ErrNotFound.
	FindByTitle(ctx context.Context, title string) (*Film, error)
	// UpdateRating overwrites only the personal rating of an existing film.
	UpdateRating(ctx context.Context, id int64, rating float64) error
}

// BookRepository is the persistence interface for book records.
type BookRepository interface {
	List(ctx context.Context, filter BookFilter) ([]Book, error)
	Get(ctx context.Context, id int64) (*Book, error)
	Store(ctx context.Context, book *Book) error
	Update(ctx context.Context, book *Book) error
	Delete(ctx context.Context, id int64) error
}

// ListRepository is the persistence interface for curated lists and their
// film/book memberships.
type ListRepository interface {
	List(ctx context.Context) ([]List, error)
	Get(ctx context.Context, id int64) (*List, error)
	Store(ctx context.Context, list *List) error
	Update(ctx context.Context, list *List) error
	Delete(ctx context.Context, id int64) error

	AddFilm(ctx context.Context, listID, filmID int64) error
	RemoveFilm(ctx context.Context, listID, filmID int64) error
	AddBook(ctx context.Context, listID, bookID int64) error
	RemoveBook(ctx context.Context, listID, bookID int64) error
}

// ResourceRepository is the uniform persistence interface shared by the flat
// catalog entities.
type ResourceRepository[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int64) (*T, error)
	Store(ctx context.Context, record *T) error
	Update(ctx context.Context, record *T) error
	Delete(ctx context.Context, id int64) error
}

// ReportRepository persists import sidecar reports.
type ReportRepository interface {
	StoreUnresolved(ctx context.Context, path string, report *UnresolvedReport) error
	GetUnresolved(ctx context.Context, path string) (*UnresolvedReport, error)
}

// NotificationService delivers out-of-band notifications about finished
// import batches.
type NotificationService interface {
	SendImportSummary(ctx context.Context, summary ImportSummary) error
	SendError(ctx context.Context, err error) error
}
