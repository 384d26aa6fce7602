package authors

import (
	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"
)

// RegisterRoutesWithGroup registers author routes on the catalog group.
func RegisterRoutesWithGroup(g *echo.Group, db *bun.DB) {
	h := &handler{authorService: NewService(db)}

	g.GET("/authors", h.list)
	g.GET("/author/:id", h.retrieve)
	g.POST("/author", h.create)
	g.PATCH("/author/:id", h.update)
	g.DELETE("/author/:id", h.deleteAuthor)
}
