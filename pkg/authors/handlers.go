package authors

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shelfkeeper/shelfkeeper/pkg/errcodes"
	"github.com/shelfkeeper/shelfkeeper/pkg/models"
)

type handler struct {
	authorService *Service
}

type authorResponse struct {
	*models.Author
	Name           string `json:"name"`
	Lifespan       string `json:"lifespan"`
	URL            string `json:"url"`
	BirthFormatted string `json:"birth_formatted"`
	DeathFormatted string `json:"death_formatted"`
	BirthISO       string `json:"birth_yyyy_mm_dd"`
	DeathISO       string `json:"death_yyyy_mm_dd"`
}

func newAuthorResponse(a *models.Author) authorResponse {
	return authorResponse{
		Author:         a,
		Name:           a.Name(),
		Lifespan:       a.Lifespan(),
		URL:            a.URL(),
		BirthFormatted: a.BirthFormatted(),
		DeathFormatted: a.DeathFormatted(),
		BirthISO:       a.BirthISO(),
		DeathISO:       a.DeathISO(),
	}
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	authors, err := h.authorService.ListAuthors(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	result := make([]authorResponse, len(authors))
	for i, a := range authors {
		result[i] = newAuthorResponse(a)
	}

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{"authors": result}))
}

func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Author")
	}

	author, books, err := h.authorService.RetrieveAuthorWithBooks(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{
		"author": newAuthorResponse(author),
		"books":  books,
	}))
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	params := CreateAuthorPayload{}
	if err := c.Bind(&params); err != nil {
		if e, ok := errcodes.AsValidationFailed(err); ok {
			return errors.WithStack(c.JSON(e.HTTPCode, map[string]any{
				"errors": e.Fields,
				"author": params,
			}))
		}
		return errors.WithStack(err)
	}

	author, err := buildAuthor(&params)
	if err != nil {
		return err
	}

	if err := h.authorService.CreateAuthor(ctx, author); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusCreated, newAuthorResponse(author)))
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Author")
	}

	params := UpdateAuthorPayload{}
	if err := c.Bind(&params); err != nil {
		if e, ok := errcodes.AsValidationFailed(err); ok {
			return errors.WithStack(c.JSON(e.HTTPCode, map[string]any{
				"errors": e.Fields,
				"author": params,
			}))
		}
		return errors.WithStack(err)
	}

	// The id never changes on update, so make sure the record exists first.
	author, err := h.authorService.RetrieveAuthor(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	updated, err := buildAuthor((*CreateAuthorPayload)(&params))
	if err != nil {
		return err
	}
	updated.ID = author.ID
	updated.CreatedAt = author.CreatedAt

	opts := UpdateAuthorOptions{Columns: []string{"first_name", "family_name", "date_of_birth", "date_of_death"}}
	if err := h.authorService.UpdateAuthor(ctx, updated, opts); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, newAuthorResponse(updated)))
}

func (h *handler) deleteAuthor(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Author")
	}

	author, decision, err := h.authorService.DeleteAuthor(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	if decision.Blocked {
		return errors.WithStack(c.JSON(http.StatusConflict, map[string]any{
			"blocked": true,
			"author":  newAuthorResponse(author),
			"books":   decision.Dependents,
		}))
	}

	return c.NoContent(http.StatusNoContent)
}

func buildAuthor(p *CreateAuthorPayload) (*models.Author, error) {
	birth, err := models.ParseDate(p.DateOfBirth)
	if err != nil {
		return nil, errcodes.ValidationFailed([]errcodes.FieldError{{
			Field:   "date_of_birth",
			Code:    errcodes.CodeInvalidDate,
			Message: `"date_of_birth" is not a valid calendar date`,
		}})
	}
	death, err := models.ParseDate(p.DateOfDeath)
	if err != nil {
		return nil, errcodes.ValidationFailed([]errcodes.FieldError{{
			Field:   "date_of_death",
			Code:    errcodes.CodeInvalidDate,
			Message: `"date_of_death" is not a valid calendar date`,
		}})
	}

	return &models.Author{
		FirstName:   p.FirstName,
		FamilyName:  p.FamilyName,
		DateOfBirth: birth,
		DateOfDeath: death,
	}, nil
}
