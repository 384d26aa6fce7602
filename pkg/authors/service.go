package authors

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	"github.com/shelfkeeper/shelfkeeper/pkg/errcodes"
	"github.com/shelfkeeper/shelfkeeper/pkg/guard"
	"github.com/shelfkeeper/shelfkeeper/pkg/models"
	"github.com/uptrace/bun"
	"golang.org/x/sync/errgroup"
)

type UpdateAuthorOptions struct {
	Columns []string
}

type Service struct {
	db    *bun.DB
	guard *guard.Service
}

func NewService(db *bun.DB) *Service {
	return &Service{db: db, guard: guard.NewService(db)}
}

func (svc *Service) CreateAuthor(ctx context.Context, author *models.Author) error {
	now := time.Now()
	if author.CreatedAt.IsZero() {
		author.CreatedAt = now
	}
	author.UpdatedAt = author.CreatedAt

	_, err := svc.db.
		NewInsert().
		Model(author).
		Returning("*").
		Exec(ctx)
	return errors.WithStack(err)
}

func (svc *Service) RetrieveAuthor(ctx context.Context, id int) (*models.Author, error) {
	author := &models.Author{}

	err := svc.db.
		NewSelect().
		Model(author).
		Where("a.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Author")
		}
		return nil, errors.WithStack(err)
	}

	return author, nil
}

// RetrieveAuthorWithBooks loads an author and the books they wrote. The two
// reads are independent, so they're issued concurrently.
func (svc *Service) RetrieveAuthorWithBooks(ctx context.Context, id int) (*models.Author, []*models.Book, error) {
	var author *models.Author
	var books []*models.Book

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		author, err = svc.RetrieveAuthor(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		books, err = svc.guard.BooksByAuthor(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return author, books, nil
}

func (svc *Service) ListAuthors(ctx context.Context) ([]*models.Author, error) {
	var authors []*models.Author

	err := svc.db.
		NewSelect().
		Model(&authors).
		Order("a.family_name ASC", "a.first_name ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return authors, nil
}

func (svc *Service) UpdateAuthor(ctx context.Context, author *models.Author, opts UpdateAuthorOptions) error {
	if len(opts.Columns) == 0 {
		return nil
	}

	author.UpdatedAt = time.Now()
	columns := append(opts.Columns, "updated_at")

	_, err := svc.db.
		NewUpdate().
		Model(author).
		Column(columns...).
		WherePK().
		Exec(ctx)
	return errors.WithStack(err)
}

// DeleteAuthor checks the delete against the books that still reference the
// author before removing anything. A blocked decision leaves the author
// untouched.
func (svc *Service) DeleteAuthor(ctx context.Context, id int) (*models.Author, *guard.Decision, error) {
	var author *models.Author
	var decision *guard.Decision

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		author, err = svc.RetrieveAuthor(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		decision, err = svc.guard.CanDelete(gctx, guard.KindAuthor, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	if decision.Blocked {
		return author, decision, nil
	}

	_, err := svc.db.
		NewDelete().
		Model((*models.Author)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	return author, decision, nil
}
