package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookverse/bookstore-api/internal/api/metrics"
	"github.com/bookverse/bookstore-api/internal/core/domain"
	"github.com/bookverse/bookstore-api/internal/core/ports"
)

// AuthorHandler handles HTTP requests for author CRUD and search.
type AuthorHandler struct {
	service ports.AuthorService
}

func NewAuthorHandler(service ports.AuthorService) *AuthorHandler {
	return &AuthorHandler{service: service}
}

type createAuthorRequest struct {
	Name string `json:"name" validate:"required"`
	Bio  string `json:"bio"`
}

// updateAuthorRequest requires both fields: updates are a full-field replace,
// not a patch.
type updateAuthorRequest struct {
	Name string `json:"name" validate:"required"`
	Bio  string `json:"bio" validate:"required"`
}

// List handles GET /all-authors.
//
// @Summary      Get all authors with their books
// @Tags         authors
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Failure      401  {object}  map[string]string
// @Router       /all-authors [get]
func (h *AuthorHandler) List(c echo.Context) error {
	authors, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if authors == nil {
		authors = []domain.Author{}
	}
	return c.JSON(http.StatusOK, envelope{Data: authors})
}

// Create handles POST /add-author.
//
// @Summary      Create a new author
// @Tags         authors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAuthorRequest  true  "Author details"
// @Success      201   {object}  envelope
// @Failure      400   {object}  map[string]string
// @Router       /add-author [post]
func (h *AuthorHandler) Create(c echo.Context) error {
	var req createAuthorRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": err.Error()})
	}

	author, err := h.service.Create(c.Request().Context(), ports.AuthorInput{Name: req.Name, Bio: req.Bio})
	if err != nil {
		return err
	}

	metrics.EntitiesCreatedTotal.WithLabelValues("author").Inc()
	return c.JSON(http.StatusCreated, envelope{
		Data:    author,
		Message: "Data Created Successfully",
	})
}

// Get handles GET /author-detail/:id. The author is returned bare, books
// attached, without the usual envelope.
//
// @Summary      Get an author by id
// @Tags         authors
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Author id"
// @Success      200  {object}  domain.Author
// @Failure      404  {object}  map[string]string
// @Router       /author-detail/{id} [get]
func (h *AuthorHandler) Get(c echo.Context) error {
	author, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrAuthorNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"message": "Author not found."})
		}
		return err
	}
	return c.JSON(http.StatusOK, author)
}

// Update handles PUT /update-author/:id.
//
// @Summary      Update an author (full replace)
// @Tags         authors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Author id"
// @Param        body  body      updateAuthorRequest  true  "Replacement fields"
// @Success      200   {object}  envelope
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /update-author/{id} [put]
func (h *AuthorHandler) Update(c echo.Context) error {
	var req updateAuthorRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid payload"})
	}

	// The target must exist before the replacement fields are judged: a
	// missing author is a 404 even when the body is invalid.
	if _, err := h.service.Get(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrAuthorNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"message": "Author not found."})
		}
		return err
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": err.Error()})
	}

	author, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.AuthorInput{Name: req.Name, Bio: req.Bio})
	if err != nil {
		if errors.Is(err, domain.ErrAuthorNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"message": "Author not found."})
		}
		return err
	}

	return c.JSON(http.StatusOK, envelope{
		Data:    author,
		Message: "Author updated successfully",
	})
}

// Delete handles DELETE /delete-author/:id. The author's books are deleted
// with it.
//
// @Summary      Delete an author and its books
// @Tags         authors
// @Security     BearerAuth
// @Param        id  path  string  true  "Author id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /delete-author/{id} [delete]
func (h *AuthorHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrAuthorNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"message": "Author not found."})
		}
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Search handles GET /authors/search?query=. Zero matches are reported as
// 404, not as an empty 200 list.
//
// @Summary      Search authors by name or bio substring
// @Tags         authors
// @Produce      json
// @Security     BearerAuth
// @Param        query  query     string  true  "Search term"
// @Success      200    {object}  envelope
// @Failure      400    {object}  map[string]string
// @Failure      404    {object}  map[string]string
// @Router       /authors/search [get]
func (h *AuthorHandler) Search(c echo.Context) error {
	query := c.QueryParam("query")
	if query == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "please enter your query"})
	}
	if len(query) > maxSearchQueryLen {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "query must not be more than 255 chars long"})
	}

	authors, err := h.service.Search(c.Request().Context(), query)
	if err != nil {
		return err
	}
	if len(authors) == 0 {
		metrics.SearchesTotal.WithLabelValues("author", "empty").Inc()
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Author not found"})
	}

	metrics.SearchesTotal.WithLabelValues("author", "hit").Inc()
	return c.JSON(http.StatusOK, envelope{Data: authors})
}
