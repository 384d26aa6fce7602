package bookinstances

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shelfkeeper/shelfkeeper/pkg/errcodes"
	"github.com/shelfkeeper/shelfkeeper/pkg/models"
)

type handler struct {
	instanceService *Service
}

type bookInstanceResponse struct {
	*models.BookInstance
	URL              string `json:"url"`
	DueBackFormatted string `json:"due_back_formatted"`
	DueBackISO       string `json:"due_back_yyyy_mm_dd"`
}

func newBookInstanceResponse(bi *models.BookInstance) bookInstanceResponse {
	return bookInstanceResponse{
		BookInstance:     bi,
		URL:              bi.URL(),
		DueBackFormatted: bi.DueBackFormatted(),
		DueBackISO:       bi.DueBackISO(),
	}
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	instances, err := h.instanceService.ListBookInstances(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	result := make([]bookInstanceResponse, len(instances))
	for i, bi := range instances {
		result[i] = newBookInstanceResponse(bi)
	}

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{"bookinstances": result}))
}

func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Book copy")
	}

	instance, err := h.instanceService.RetrieveBookInstance(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, newBookInstanceResponse(instance)))
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	params := CreateBookInstancePayload{}
	if err := c.Bind(&params); err != nil {
		if e, ok := errcodes.AsValidationFailed(err); ok {
			return errors.WithStack(c.JSON(e.HTTPCode, map[string]any{
				"errors":       e.Fields,
				"bookinstance": params,
			}))
		}
		return errors.WithStack(err)
	}

	instance, err := buildBookInstance(&params)
	if err != nil {
		return err
	}

	if err := h.instanceService.CreateBookInstance(ctx, instance); err != nil {
		return errors.WithStack(err)
	}

	instance, err = h.instanceService.RetrieveBookInstance(ctx, instance.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusCreated, newBookInstanceResponse(instance)))
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Book copy")
	}

	params := UpdateBookInstancePayload{}
	if err := c.Bind(&params); err != nil {
		if e, ok := errcodes.AsValidationFailed(err); ok {
			return errors.WithStack(c.JSON(e.HTTPCode, map[string]any{
				"errors":       e.Fields,
				"bookinstance": params,
			}))
		}
		return errors.WithStack(err)
	}

	existing, err := h.instanceService.RetrieveBookInstance(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	updated, err := buildBookInstance((*CreateBookInstancePayload)(&params))
	if err != nil {
		return err
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt

	opts := UpdateBookInstanceOptions{Columns: []string{"book_id", "imprint", "status", "due_back"}}
	if err := h.instanceService.UpdateBookInstance(ctx, updated, opts); err != nil {
		return errors.WithStack(err)
	}

	updated, err = h.instanceService.RetrieveBookInstance(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, newBookInstanceResponse(updated)))
}

func (h *handler) deleteBookInstance(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Book copy")
	}

	if _, err := h.instanceService.RetrieveBookInstance(ctx, id); err != nil {
		return errors.WithStack(err)
	}

	if err := h.instanceService.DeleteBookInstance(ctx, id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func buildBookInstance(p *CreateBookInstancePayload) (*models.BookInstance, error) {
	dueBack, err := models.ParseDate(p.DueBack)
	if err != nil {
		return nil, errcodes.ValidationFailed([]errcodes.FieldError{{
			Field:   "due_back",
			Code:    errcodes.CodeInvalidDate,
			Message: `"due_back" is not a valid calendar date`,
		}})
	}

	return &models.BookInstance{
		BookID:  p.BookID,
		Imprint: p.Imprint,
		Status:  p.Status,
		DueBack: dueBack,
	}, nil
}
