package ports

import (
	"context"

	"github.com/bookverse/bookstore-api/internal/core/domain"
)

// AuthorInput carries the full replacement field set for an author. Partial
// updates are not supported: Update overwrites both fields.
type AuthorInput struct {
	Name string
	Bio  string
}

type AuthorService interface {
	// List returns all authors with their books eagerly attached.
	List(ctx context.Context) ([]domain.Author, error)
	Create(ctx context.Context, in AuthorInput) (*domain.Author, error)
	// Get returns one author with its books eagerly attached.
	Get(ctx context.Context, id string) (*domain.Author, error)
	Update(ctx context.Context, id string, in AuthorInput) (*domain.Author, error)
	// Delete removes the author and every book it owns.
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, query string) ([]domain.Author, error)
}
