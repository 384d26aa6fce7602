package books

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shelfkeeper/shelfkeeper/pkg/errcodes"
	"github.com/shelfkeeper/shelfkeeper/pkg/models"
)

type handler struct {
	bookService *Service
}

type bookResponse struct {
	*models.Book
	URL string `json:"url"`
}

func newBookResponse(b *models.Book) bookResponse {
	return bookResponse{Book: b, URL: b.URL()}
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	books, err := h.bookService.ListBooks(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	result := make([]bookResponse, len(books))
	for i, b := range books {
		result[i] = newBookResponse(b)
	}

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{"books": result}))
}

func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Book")
	}

	book, err := h.bookService.RetrieveBook(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, newBookResponse(book)))
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	params := CreateBookPayload{}
	if err := c.Bind(&params); err != nil {
		if e, ok := errcodes.AsValidationFailed(err); ok {
			return errors.WithStack(c.JSON(e.HTTPCode, map[string]any{
				"errors": e.Fields,
				"book":   params,
			}))
		}
		return errors.WithStack(err)
	}

	book := &models.Book{
		Title:    params.Title,
		Summary:  params.Summary,
		ISBN:     params.ISBN,
		AuthorID: params.AuthorID,
	}

	if err := h.bookService.CreateBook(ctx, book, params.GenreIDs); err != nil {
		return errors.WithStack(err)
	}

	// Reload so the response carries the populated author and genres.
	book, err := h.bookService.RetrieveBook(ctx, book.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusCreated, newBookResponse(book)))
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Book")
	}

	params := UpdateBookPayload{}
	if err := c.Bind(&params); err != nil {
		if e, ok := errcodes.AsValidationFailed(err); ok {
			return errors.WithStack(c.JSON(e.HTTPCode, map[string]any{
				"errors": e.Fields,
				"book":   params,
			}))
		}
		return errors.WithStack(err)
	}

	book, err := h.bookService.RetrieveBook(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	book.Title = params.Title
	book.Summary = params.Summary
	book.ISBN = params.ISBN
	book.AuthorID = params.AuthorID

	opts := UpdateBookOptions{
		Columns:  []string{"title", "summary", "isbn", "author_id"},
		GenreIDs: params.GenreIDs,
	}
	if err := h.bookService.UpdateBook(ctx, book, opts); err != nil {
		return errors.WithStack(err)
	}

	book, err = h.bookService.RetrieveBook(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, newBookResponse(book)))
}

func (h *handler) deleteBook(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Book")
	}

	if _, err := h.bookService.RetrieveBook(ctx, id); err != nil {
		return errors.WithStack(err)
	}

	if err := h.bookService.DeleteBook(ctx, id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
