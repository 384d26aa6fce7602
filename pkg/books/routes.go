package books

import (
	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"
)

// RegisterRoutesWithGroup registers book routes on the catalog group.
func RegisterRoutesWithGroup(g *echo.Group, db *bun.DB) {
	h := &handler{bookService: NewService(db)}

	g.GET("/books", h.list)
	g.GET("/book/:id", h.retrieve)
	g.POST("/book", h.create)
	g.PATCH("/book/:id", h.update)
	g.DELETE("/book/:id", h.deleteBook)
}
