package models

import (
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

// Loan status values for a book copy.
const (
	StatusAvailable   = "Available"
	StatusMaintenance = "Maintenance"
	StatusLoaned      = "Loaned"
	StatusReserved    = "Reserved"
)

type BookInstance struct {
	bun.BaseModel `bun:"table:book_instances,alias:bi"`

	ID        int        `bun:",pk,nullzero" json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	BookID    int        `bun:",nullzero" json:"book_id"`
	Book      *Book      `bun:"rel:belongs-to,join:book_id=id" json:"book,omitempty"`
	Imprint   string     `bun:",nullzero" json:"imprint"`
	Status    string     `bun:",nullzero" json:"status"`
	DueBack   *time.Time `json:"due_back"`
}

func (bi *BookInstance) URL() string {
	return fmt.Sprintf("/catalog/bookinstance/%d", bi.ID)
}

func (bi *BookInstance) DueBackFormatted() string {
	return FormatDate(bi.DueBack)
}

func (bi *BookInstance) DueBackISO() string {
	return FormatDateISO(bi.DueBack)
}
