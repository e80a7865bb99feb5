package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookverse/bookstore-api/internal/api/metrics"
	"github.com/bookverse/bookstore-api/internal/core/domain"
	"github.com/bookverse/bookstore-api/internal/core/ports"
)

// BookHandler handles HTTP requests for book CRUD and search.
type BookHandler struct {
	service ports.BookService
}

func NewBookHandler(service ports.BookService) *BookHandler {
	return &BookHandler{service: service}
}

type bookRequest struct {
	Title       string `json:"title" validate:"required"`
	AuthorID    string `json:"author_id" validate:"required"`
	Description string `json:"description"`
}

// List handles GET /books. The book list response carries a status field on
// top of the shared envelope; that shape is part of the route contract.
//
// @Summary      Get all books with their author
// @Tags         books
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Failure      401  {object}  map[string]string
// @Router       /books [get]
func (h *BookHandler) List(c echo.Context) error {
	books, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if books == nil {
		books = []domain.Book{}
	}
	return c.JSON(http.StatusOK, envelope{Status: "success", Data: books})
}

// Create handles POST /add-book. A title already in use or an author_id that
// does not resolve rejects the write; no book is persisted.
//
// @Summary      Create a new book
// @Tags         books
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      bookRequest  true  "Book details"
// @Success      201   {object}  envelope
// @Failure      400   {object}  map[string]string
// @Router       /add-book [post]
func (h *BookHandler) Create(c echo.Context) error {
	var req bookRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": err.Error()})
	}

	book, err := h.service.Create(c.Request().Context(), ports.BookInput{
		Title:       req.Title,
		AuthorID:    req.AuthorID,
		Description: req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAuthorNotFound):
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "the selected author_id is invalid"})
		case errors.Is(err, domain.ErrTitleTaken):
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "the title has already been taken"})
		}
		return err
	}

	metrics.EntitiesCreatedTotal.WithLabelValues("book").Inc()
	return c.JSON(http.StatusCreated, envelope{
		Status:  "success",
		Data:    book,
		Message: "Book Added Successfully",
	})
}

// Get handles GET /book-detail/:id. The book is returned bare, author
// attached, without the usual envelope.
//
// @Summary      Get a book by id
// @Tags         books
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Book id"
// @Success      200  {object}  domain.Book
// @Failure      404  {object}  map[string]string
// @Router       /book-detail/{id} [get]
func (h *BookHandler) Get(c echo.Context) error {
	book, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrBookNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"message": "Book not found."})
		}
		return err
	}
	return c.JSON(http.StatusOK, book)
}

// Update handles PUT /update-book/:id. The book must exist before the
// replacement fields are validated; a missing book is a 404, a bad author
// reference a 400.
//
// @Summary      Update a book (full replace)
// @Tags         books
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Book id"
// @Param        body  body      bookRequest  true  "Replacement fields"
// @Success      200   {object}  envelope
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /update-book/{id} [put]
func (h *BookHandler) Update(c echo.Context) error {
	var req bookRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid payload"})
	}

	// The target must exist before the replacement fields are judged: a
	// missing book is a 404 even when the body is invalid.
	if _, err := h.service.Get(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrBookNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"message": "Book not found."})
		}
		return err
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": err.Error()})
	}

	book, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.BookInput{
		Title:       req.Title,
		AuthorID:    req.AuthorID,
		Description: req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrBookNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"message": "Book not found."})
		case errors.Is(err, domain.ErrAuthorNotFound):
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "the selected author_id is invalid"})
		case errors.Is(err, domain.ErrTitleTaken):
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "the title has already been taken"})
		}
		return err
	}

	return c.JSON(http.StatusOK, envelope{
		Data:    book,
		Message: "Book updated successfully",
	})
}

// Delete handles DELETE /delete-book/:id.
//
// @Summary      Delete a book
// @Tags         books
// @Security     BearerAuth
// @Param        id  path  string  true  "Book id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /delete-book/{id} [delete]
func (h *BookHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrBookNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"message": "Book not found."})
		}
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Search handles GET /books/search?query=. Zero matches are reported as 404,
// not as an empty 200 list.
//
// @Summary      Search books by title or description substring
// @Tags         books
// @Produce      json
// @Security     BearerAuth
// @Param        query  query     string  true  "Search term"
// @Success      200    {object}  envelope
// @Failure      400    {object}  map[string]string
// @Failure      404    {object}  map[string]string
// @Router       /books/search [get]
func (h *BookHandler) Search(c echo.Context) error {
	query := c.QueryParam("query")
	if query == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "please enter your query"})
	}
	if len(query) > maxSearchQueryLen {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "query must not be more than 255 chars long"})
	}

	books, err := h.service.Search(c.Request().Context(), query)
	if err != nil {
		return err
	}
	if len(books) == 0 {
		metrics.SearchesTotal.WithLabelValues("book", "empty").Inc()
		return c.JSON(http.StatusNotFound, map[string]string{"message": "No books found"})
	}

	metrics.SearchesTotal.WithLabelValues("book", "hit").Inc()
	return c.JSON(http.StatusOK, envelope{Data: books})
}
