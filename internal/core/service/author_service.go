package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bookverse/bookstore-api/internal/core/domain"
	"github.com/bookverse/bookstore-api/internal/core/ports"
)

// AuthorService implements author CRUD and search. Reads that return authors
// with their books use a second query plus an in-memory join keyed by
// author_id rather than a storage-level join.
type AuthorService struct {
	authors ports.AuthorRepository
	books   ports.BookRepository
	log     zerolog.Logger
}

func NewAuthorService(authors ports.AuthorRepository, books ports.BookRepository, log zerolog.Logger) *AuthorService {
	return &AuthorService{authors: authors, books: books, log: log}
}

// List returns every author with its books attached. Ordering follows
// storage default; no guarantee is made beyond that.
func (s *AuthorService) List(ctx context.Context) ([]domain.Author, error) {
	authors, err := s.authors.FindAll(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list authors")
		return nil, err
	}
	if len(authors) == 0 {
		return authors, nil
	}

	ids := make([]string, 0, len(authors))
	for _, a := range authors {
		ids = append(ids, a.ID)
	}

	books, err := s.books.FindByAuthorIDs(ctx, ids)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to load books for authors")
		return nil, err
	}

	byAuthor := make(map[string][]domain.Book, len(authors))
	for _, b := range books {
		byAuthor[b.AuthorID] = append(byAuthor[b.AuthorID], b)
	}
	for i := range authors {
		authors[i].Books = byAuthor[authors[i].ID]
	}
	return authors, nil
}

func (s *AuthorService) Create(ctx context.Context, in ports.AuthorInput) (*domain.Author, error) {
	created, err := s.authors.Create(ctx, &domain.Author{Name: in.Name, Bio: in.Bio})
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create author")
		return nil, err
	}
	s.log.Info().Str("author_id", created.ID).Msg("author created")
	return created, nil
}

func (s *AuthorService) Get(ctx context.Context, id string) (*domain.Author, error) {
	author, err := s.authors.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	books, err := s.books.FindByAuthorIDs(ctx, []string{author.ID})
	if err != nil {
		s.log.Error().Err(err).Str("author_id", id).Msg("failed to load author books")
		return nil, err
	}
	author.Books = books
	return author, nil
}

// Update is a full-field replace: both name and bio are overwritten.
func (s *AuthorService) Update(ctx context.Context, id string, in ports.AuthorInput) (*domain.Author, error) {
	author := &domain.Author{ID: id, Name: in.Name, Bio: in.Bio}
	if err := s.authors.Update(ctx, author); err != nil {
		return nil, err
	}
	s.log.Info().Str("author_id", id).Msg("author updated")
	return author, nil
}

// Delete removes the author and cascades to every book it owns, so no book is
// left referencing a missing author. The books go first: if the cascade fails
// the author is still reachable and the delete can be retried.
func (s *AuthorService) Delete(ctx context.Context, id string) error {
	if _, err := s.authors.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.books.DeleteByAuthorID(ctx, id); err != nil {
		s.log.Error().Err(err).Str("author_id", id).Msg("failed to cascade-delete books")
		return err
	}
	if err := s.authors.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("author_id", id).Msg("author deleted")
	return nil
}

func (s *AuthorService) Search(ctx context.Context, query string) ([]domain.Author, error) {
	authors, err := s.authors.Search(ctx, query)
	if err != nil {
		s.log.Error().Err(err).Str("query", query).Msg("author search failed")
		return nil, err
	}
	return authors, nil
}
