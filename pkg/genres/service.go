package genres

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

type RetrieveGenreOptions struct {
	ID   *int
	Name *string
}

type UpdateGenreOptions struct {
	Columns []string
}

type Service struct {
	db    *bun.DB
	guard *guard.Service
}

func NewService(db *bun.DB) *Service {
	return &Service{db: db, guard: guard.NewService(db)}
}

func (svc *Service) RetrieveGenre(ctx context.Context, opts RetrieveGenreOptions) (*models.Genre, error) {
	genre := &models.Genre{}

	q := svc.db.
		NewSelect().
		Model(genre)

	if opts.ID != nil {
		q = q.Where("g.id = ?", *opts.ID)
	}
	if opts.Name != nil {
		// Case-insensitive match
		q = q.Where("LOWER(g.name) = LOWER(?)", *opts.Name)
	}

	err := q.Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Genre")
		}
		return nil, errors.WithStack(err)
	}

	return genre, nil
}

// RetrieveGenreWithBooks loads a genre and the books tagged with it, issued
// concurrently since neither read depends on the other.
func (svc *Service) RetrieveGenreWithBooks(ctx context.Context, id int) (*models.Genre, []*models.Book, error) {
	var genre *models.Genre
	var books []*models.Book

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		genre, err = svc.RetrieveGenre(gctx, RetrieveGenreOptions{ID: &id})
		return err
	})
	g.Go(func() error {
		var err error
		books, err = svc.guard.BooksByGenre(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return genre, books, nil
}

// FindOrCreateGenre returns the existing genre under a case-insensitive name
// match, or creates a new one. The boolean reports whether a row was inserted.
func (svc *Service) FindOrCreateGenre(ctx context.Context, name string) (*models.Genre, bool, error) {
	genre, err := svc.RetrieveGenre(ctx, RetrieveGenreOptions{Name: &name})
	if err == nil {
		return genre, false, nil
	}
	if !errors.Is(err, errcodes.NotFound("Genre")) {
		return nil, false, err
	}

	genre = &models.Genre{Name: name}
	now := time.Now()
	genre.CreatedAt = now
	genre.UpdatedAt = now

	_, err = svc.db.
		NewInsert().
		Model(genre).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, false, errors.WithStack(err)
	}

	return genre, true, nil
}

func (svc *Service) ListGenres(ctx context.Context) ([]*models.Genre, error) {
	var genres []*models.Genre

	err := svc.db.
		NewSelect().
		Model(&genres).
		Order("g.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return genres, nil
}

func (svc *Service) UpdateGenre(ctx context.Context, genre *models.Genre, opts UpdateGenreOptions) error {
	if len(opts.Columns) == 0 {
		return nil
	}

	genre.UpdatedAt = time.Now()
	columns := append(opts.Columns, "updated_at")

	_, err := svc.db.
		NewUpdate().
		Model(genre).
		Column(columns...).
		WherePK().
		Exec(ctx)
	return errors.WithStack(err)
}

// DeleteGenre refuses to remove a genre that books still reference and
// returns the blocking set instead.
func (svc *Service) DeleteGenre(ctx context.Context, id int) (*models.Genre, *guard.Decision, error) {
	var genre *models.Genre
	var decision *guard.Decision

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		genre, err = svc.RetrieveGenre(gctx, RetrieveGenreOptions{ID: &id})
		return err
	})
	g.Go(func() error {
		var err error
		decision, err = svc.guard.CanDelete(gctx, guard.KindGenre, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	if decision.Blocked {
		return genre, decision, nil
	}

	_, err := svc.db.
		NewDelete().
		Model((*models.Genre)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	return genre, decision, nil
}
