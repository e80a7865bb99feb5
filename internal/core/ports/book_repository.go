package ports

import (
	"context"

	"github.com/bookverse/bookstore-api/internal/core/domain"
)

// BookRepository defines the interface for book persistence.
type BookRepository interface {
	Create(ctx context.Context, book *domain.Book) (*domain.Book, error)
	FindAll(ctx context.Context) ([]domain.Book, error)
	FindByID(ctx context.Context, id string) (*domain.Book, error)
	FindByAuthorIDs(ctx context.Context, authorIDs []string) ([]domain.Book, error)
	// Update replaces title, author_id and description of the book with the
	// given id. Returns domain.ErrBookNotFound when no book matches.
	Update(ctx context.Context, book *domain.Book) error
	Delete(ctx context.Context, id string) error
	DeleteByAuthorID(ctx context.Context, authorID string) error
	// Search matches a case-insensitive substring against title or description.
	Search(ctx context.Context, query string) ([]domain.Book, error)
}
