package models

import (
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

type Book struct {
	bun.BaseModel `bun:"table:books,alias:b"`

	ID        int       `bun:",pk,nullzero" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Title     string    `bun:",nullzero" json:"title"`
	Summary   string    `bun:",nullzero" json:"summary"`
	ISBN      string    `bun:"isbn,nullzero" json:"isbn"`
	AuthorID  int       `bun:",nullzero" json:"author_id"`
	Author    *Author   `bun:"rel:belongs-to,join:author_id=id" json:"author,omitempty"`
	Genres    []*Genre  `bun:"m2m:book_genres,join:Book=Genre" json:"genres,omitempty"`
}

func (b *Book) URL() string {
	return fmt.Sprintf("/catalog/book/%d", b.ID)
}
