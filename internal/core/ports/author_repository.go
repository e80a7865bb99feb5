package ports

import (
	"context"

	"github.com/bookverse/bookstore-api/internal/core/domain"
)

// AuthorRepository defines the interface for author persistence.
type AuthorRepository interface {
	Create(ctx context.Context, author *domain.Author) (*domain.Author, error)
	FindAll(ctx context.Context) ([]domain.Author, error)
	FindByID(ctx context.Context, id string) (*domain.Author, error)
	FindByIDs(ctx context.Context, ids []string) ([]domain.Author, error)
	// Update replaces name and bio of the author with the given id.
	// Returns domain.ErrAuthorNotFound when no author matches.
	Update(ctx context.Context, author *domain.Author) error
	Delete(ctx context.Context, id string) error
	// Search matches a case-insensitive substring against name or bio.
	Search(ctx context.Context, query string) ([]domain.Author, error)
}
