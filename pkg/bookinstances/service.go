package bookinstances

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	"github.com/shelfkeeper/shelfkeeper/pkg/errcodes"
	"github.com/shelfkeeper/shelfkeeper/pkg/models"
	"github.com/uptrace/bun"
)

type UpdateBookInstanceOptions struct {
	Columns []string
}

type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

func (svc *Service) CreateBookInstance(ctx context.Context, instance *models.BookInstance) error {
	now := time.Now()
	if instance.CreatedAt.IsZero() {
		instance.CreatedAt = now
	}
	instance.UpdatedAt = instance.CreatedAt

	_, err := svc.db.
		NewInsert().
		Model(instance).
		Returning("*").
		Exec(ctx)
	return errors.WithStack(err)
}

// RetrieveBookInstance returns the copy with its book populated.
func (svc *Service) RetrieveBookInstance(ctx context.Context, id int) (*models.BookInstance, error) {
	instance := &models.BookInstance{}

	err := svc.db.
		NewSelect().
		Model(instance).
		Relation("Book").
		Where("bi.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Book copy")
		}
		return nil, errors.WithStack(err)
	}

	return instance, nil
}

func (svc *Service) ListBookInstances(ctx context.Context) ([]*models.BookInstance, error) {
	var instances []*models.BookInstance

	err := svc.db.
		NewSelect().
		Model(&instances).
		Relation("Book").
		Order("bi.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return instances, nil
}

func (svc *Service) UpdateBookInstance(ctx context.Context, instance *models.BookInstance, opts UpdateBookInstanceOptions) error {
	if len(opts.Columns) == 0 {
		return nil
	}

	instance.UpdatedAt = time.Now()
	columns := append(opts.Columns, "updated_at")

	_, err := svc.db.
		NewUpdate().
		Model(instance).
		Column(columns...).
		WherePK().
		Exec(ctx)
	return errors.WithStack(err)
}

// DeleteBookInstance removes the copy unconditionally; nothing references a
// copy.
func (svc *Service) DeleteBookInstance(ctx context.Context, id int) error {
	_, err := svc.db.
		NewDelete().
		Model((*models.BookInstance)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	return errors.WithStack(err)
}
