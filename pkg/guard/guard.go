// Package guard decides whether an Author or Genre can be deleted. An entity
// that is still referenced by Books must not be removed; the blocking Books are
// returned so the caller can present them instead.
package guard

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shelfkeeper/shelfkeeper/pkg/models"
	"github.com/uptrace/bun"
)

type Kind string

const (
	KindAuthor Kind = "author"
	KindGenre  Kind = "genre"
)

// Decision is the outcome of a delete check. Dependents is empty when the
// delete may proceed.
type Decision struct {
	Blocked    bool
	Dependents []*models.Book
}

type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

// CanDelete reports whether the entity may be deleted and, when it may not,
// the Books that block the delete. It's evaluated fresh on every call; there's
// no lock between a preview check and the delete itself.
func (svc *Service) CanDelete(ctx context.Context, kind Kind, id int) (*Decision, error) {
	var books []*models.Book
	var err error

	switch kind {
	case KindAuthor:
		books, err = svc.BooksByAuthor(ctx, id)
	case KindGenre:
		books, err = svc.BooksByGenre(ctx, id)
	default:
		return nil, errors.Errorf("unknown entity kind: %s", kind)
	}
	if err != nil {
		return nil, err
	}

	return &Decision{
		Blocked:    len(books) > 0,
		Dependents: books,
	}, nil
}

// BooksByAuthor returns the Books written by the given author, selected down
// to the fields a delete or detail page presents.
func (svc *Service) BooksByAuthor(ctx context.Context, authorID int) ([]*models.Book, error) {
	var books []*models.Book

	err := svc.db.NewSelect().
		Model(&books).
		Column("b.id", "b.title", "b.summary").
		Where("b.author_id = ?", authorID).
		Order("b.title ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return books, nil
}

// BooksByGenre returns the Books whose genre set contains the given genre.
func (svc *Service) BooksByGenre(ctx context.Context, genreID int) ([]*models.Book, error) {
	var books []*models.Book

	err := svc.db.NewSelect().
		Model(&books).
		Column("b.id", "b.title", "b.summary").
		Join("INNER JOIN book_genres bg ON bg.book_id = b.id").
		Where("bg.genre_id = ?", genreID).
		Order("b.title ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return books, nil
}
