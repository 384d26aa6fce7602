package genres

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shelfkeeper/shelfkeeper/pkg/errcodes"
	"github.com/shelfkeeper/shelfkeeper/pkg/models"
)

type handler struct {
	genreService *Service
}

type genreResponse struct {
	*models.Genre
	URL string `json:"url"`
}

func newGenreResponse(g *models.Genre) genreResponse {
	return genreResponse{Genre: g, URL: g.URL()}
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	genres, err := h.genreService.ListGenres(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	result := make([]genreResponse, len(genres))
	for i, g := range genres {
		result[i] = newGenreResponse(g)
	}

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{"genres": result}))
}

func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Genre")
	}

	genre, books, err := h.genreService.RetrieveGenreWithBooks(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{
		"genre": newGenreResponse(genre),
		"books": books,
	}))
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	params := CreateGenrePayload{}
	if err := c.Bind(&params); err != nil {
		if e, ok := errcodes.AsValidationFailed(err); ok {
			return errors.WithStack(c.JSON(e.HTTPCode, map[string]any{
				"errors": e.Fields,
				"genre":  params,
			}))
		}
		return errors.WithStack(err)
	}

	// A genre that already exists under a case-insensitive name match is
	// reused instead of duplicated.
	genre, created, err := h.genreService.FindOrCreateGenre(ctx, params.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}

	return errors.WithStack(c.JSON(status, newGenreResponse(genre)))
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Genre")
	}

	params := UpdateGenrePayload{}
	if err := c.Bind(&params); err != nil {
		if e, ok := errcodes.AsValidationFailed(err); ok {
			return errors.WithStack(c.JSON(e.HTTPCode, map[string]any{
				"errors": e.Fields,
				"genre":  params,
			}))
		}
		return errors.WithStack(err)
	}

	genre, err := h.genreService.RetrieveGenre(ctx, RetrieveGenreOptions{ID: &id})
	if err != nil {
		return errors.WithStack(err)
	}

	genre.Name = params.Name
	opts := UpdateGenreOptions{Columns: []string{"name"}}
	if err := h.genreService.UpdateGenre(ctx, genre, opts); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, newGenreResponse(genre)))
}

func (h *handler) deleteGenre(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Genre")
	}

	genre, decision, err := h.genreService.DeleteGenre(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	if decision.Blocked {
		return errors.WithStack(c.JSON(http.StatusConflict, map[string]any{
			"blocked": true,
			"genre":   newGenreResponse(genre),
			"books":   decision.Dependents,
		}))
	}

	return c.NoContent(http.StatusNoContent)
}
