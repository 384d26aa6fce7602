package testutils

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shelfkeeper/shelfkeeper/pkg/models"
	"github.com/uptrace/bun"
)

type handler struct {
	db *bun.DB
}

// seedRequest is the request body for seeding a sample catalog.
type seedRequest struct {
	AuthorFirstName string   `json:"author_first_name"`
	AuthorLastName  string   `json:"author_last_name"`
	BookTitle       string   `json:"book_title"`
	Genres          []string `json:"genres"`
	Copies          int      `json:"copies"`
}

// seedResponse reports the ids of the seeded rows.
type seedResponse struct {
	AuthorID        int   `json:"author_id"`
	BookID          int   `json:"book_id"`
	GenreIDs        []int `json:"genre_ids"`
	BookInstanceIDs []int `json:"book_instance_ids"`
}

// seedCatalog creates an author, a book by them, its genres, and available
// copies in one request so end-to-end suites can start from a known state.
// POST /test/seed.
func (h *handler) seedCatalog(c echo.Context) error {
	ctx := c.Request().Context()

	req := seedRequest{
		AuthorFirstName: "Mary",
		AuthorLastName:  "Shelley",
		BookTitle:       "Frankenstein",
		Genres:          []string{"Gothic"},
		Copies:          1,
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	now := time.Now()

	author := &models.Author{
		CreatedAt:  now,
		UpdatedAt:  now,
		FirstName:  req.AuthorFirstName,
		FamilyName: req.AuthorLastName,
	}
	_, err := h.db.NewInsert().Model(author).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to seed author")
	}

	book := &models.Book{
		CreatedAt: now,
		UpdatedAt: now,
		Title:     req.BookTitle,
		Summary:   "Seeded by the test API.",
		ISBN:      "9780000000000",
		AuthorID:  author.ID,
	}
	_, err = h.db.NewInsert().Model(book).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to seed book")
	}

	genreIDs := make([]int, 0, len(req.Genres))
	for _, name := range req.Genres {
		genre := &models.Genre{CreatedAt: now, UpdatedAt: now, Name: name}
		_, err = h.db.NewInsert().Model(genre).Returning("*").Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to seed genre")
		}
		_, err = h.db.NewInsert().Model(&models.BookGenre{BookID: book.ID, GenreID: genre.ID}).Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to seed book genre")
		}
		genreIDs = append(genreIDs, genre.ID)
	}

	instanceIDs := make([]int, 0, req.Copies)
	for i := 0; i < req.Copies; i++ {
		instance := &models.BookInstance{
			CreatedAt: now,
			UpdatedAt: now,
			BookID:    book.ID,
			Imprint:   "Test Imprint",
			Status:    models.StatusAvailable,
		}
		_, err = h.db.NewInsert().Model(instance).Returning("*").Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to seed book instance")
		}
		instanceIDs = append(instanceIDs, instance.ID)
	}

	return c.JSON(http.StatusCreated, seedResponse{
		AuthorID:        author.ID,
		BookID:          book.ID,
		GenreIDs:        genreIDs,
		BookInstanceIDs: instanceIDs,
	})
}

// deleteAllCatalogData wipes every catalog table, children first.
// DELETE /test/catalog.
func (h *handler) deleteAllCatalogData(c echo.Context) error {
	ctx := c.Request().Context()

	for _, model := range []interface{}{
		(*models.BookInstance)(nil),
		(*models.BookGenre)(nil),
		(*models.Book)(nil),
		(*models.Genre)(nil),
		(*models.Author)(nil),
	} {
		_, err := h.db.NewDelete().Model(model).Where("1 = 1").Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to delete catalog data")
		}
	}

	return c.NoContent(http.StatusNoContent)
}
