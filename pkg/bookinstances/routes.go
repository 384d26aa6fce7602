package bookinstances

import (
	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"
)

// RegisterRoutesWithGroup registers book copy routes on the catalog group.
func RegisterRoutesWithGroup(g *echo.Group, db *bun.DB) {
	h := &handler{instanceService: NewService(db)}

	g.GET("/bookinstances", h.list)
	g.GET("/bookinstance/:id", h.retrieve)
	g.POST("/bookinstance", h.create)
	g.PATCH("/bookinstance/:id", h.update)
	g.DELETE("/bookinstance/:id", h.deleteBookInstance)
}
