package domain

// List categories. A list holds films or books, never both; membership
// operations for the other category are rejected.
const (
	ListCategoryFilms = "films"
	ListCategoryBooks = "books"
)

type List struct {
	ID          int64  `json:"id"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category" validate:"required,oneof=films books"`
	Films       []Film `json:"films,omitempty"`
	Books       []Book `json:"books,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}
