package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bookverse/bookstore-api/internal/core/domain"
	"github.com/bookverse/bookstore-api/internal/core/ports"
)

// BookService implements book CRUD and search. The author reference is
// resolved against the author repository at create and update time.
type BookService struct {
	books   ports.BookRepository
	authors ports.AuthorRepository
	log     zerolog.Logger
}

func NewBookService(books ports.BookRepository, authors ports.AuthorRepository, log zerolog.Logger) *BookService {
	return &BookService{books: books, authors: authors, log: log}
}

// List returns every book with its owning author attached via a second query
// and an in-memory join keyed by author id.
func (s *BookService) List(ctx context.Context) ([]domain.Book, error) {
	books, err := s.books.FindAll(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list books")
		return nil, err
	}
	if len(books) == 0 {
		return books, nil
	}

	seen := make(map[string]struct{}, len(books))
	ids := make([]string, 0, len(books))
	for _, b := range books {
		if _, ok := seen[b.AuthorID]; ok {
			continue
		}
		seen[b.AuthorID] = struct{}{}
		ids = append(ids, b.AuthorID)
	}

	authors, err := s.authors.FindByIDs(ctx, ids)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to load authors for books")
		return nil, err
	}

	byID := make(map[string]domain.Author, len(authors))
	for _, a := range authors {
		byID[a.ID] = a
	}
	for i := range books {
		if a, ok := byID[books[i].AuthorID]; ok {
			author := a
			books[i].Author = &author
		}
	}
	return books, nil
}

// Create persists a new book. The author reference must resolve and the title
// must be globally unique; either violation rejects the write.
func (s *BookService) Create(ctx context.Context, in ports.BookInput) (*domain.Book, error) {
	if _, err := s.authors.FindByID(ctx, in.AuthorID); err != nil {
		return nil, err
	}

	created, err := s.books.Create(ctx, &domain.Book{
		Title:       in.Title,
		AuthorID:    in.AuthorID,
		Description: in.Description,
	})
	if err != nil {
		if err != domain.ErrTitleTaken {
			s.log.Error().Err(err).Msg("failed to create book")
		}
		return nil, err
	}
	s.log.Info().Str("book_id", created.ID).Str("author_id", in.AuthorID).Msg("book created")
	return created, nil
}

func (s *BookService) Get(ctx context.Context, id string) (*domain.Book, error) {
	book, err := s.books.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	author, err := s.authors.FindByID(ctx, book.AuthorID)
	if err != nil {
		s.log.Error().Err(err).Str("book_id", id).Msg("failed to load book author")
		return nil, err
	}
	book.Author = author
	return book, nil
}

// Update is a full-field replace: title, author_id and description are all
// overwritten. The new author reference is validated first.
func (s *BookService) Update(ctx context.Context, id string, in ports.BookInput) (*domain.Book, error) {
	if _, err := s.books.FindByID(ctx, id); err != nil {
		return nil, err
	}
	if _, err := s.authors.FindByID(ctx, in.AuthorID); err != nil {
		return nil, err
	}

	book := &domain.Book{ID: id, Title: in.Title, AuthorID: in.AuthorID, Description: in.Description}
	if err := s.books.Update(ctx, book); err != nil {
		return nil, err
	}
	s.log.Info().Str("book_id", id).Msg("book updated")
	return book, nil
}

func (s *BookService) Delete(ctx context.Context, id string) error {
	if err := s.books.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("book_id", id).Msg("book deleted")
	return nil
}

func (s *BookService) Search(ctx context.Context, query string) ([]domain.Book, error) {
	books, err := s.books.Search(ctx, query)
	if err != nil {
		s.log.Error().Err(err).Str("query", query).Msg("book search failed")
		return nil, err
	}
	return books, nil
}
