package ports

import (
	"context"

	"github.com/bookverse/bookstore-api/internal/core/domain"
)

// BookInput carries the full replacement field set for a book. AuthorID must
// reference an existing author at create and update time.
type BookInput struct {
	Title       string
	AuthorID    string
	Description string
}

type BookService interface {
	// List returns all books with their owning author eagerly attached.
	List(ctx context.Context) ([]domain.Book, error)
	Create(ctx context.Context, in BookInput) (*domain.Book, error)
	// Get returns one book with its owning author eagerly attached.
	Get(ctx context.Context, id string) (*domain.Book, error)
	Update(ctx context.Context, id string, in BookInput) (*domain.Book, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, query string) ([]domain.Book, error)
}
