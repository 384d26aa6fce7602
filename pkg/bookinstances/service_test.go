package bookinstances

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/shelfkeeper/shelfkeeper/pkg/errcodes"
	"github.com/shelfkeeper/shelfkeeper/pkg/migrations"
	"github.com/shelfkeeper/shelfkeeper/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

func newTestDB(t *testing.T) *bun.DB {
	t.Helper()

	sqldb, err := sql.Open(sqliteshim.ShimName, ":memory:")
	require.NoError(t, err)

	db := bun.NewDB(sqldb, sqlitedialect.New())
	db.RegisterModel((*models.BookGenre)(nil))

	_, err = migrations.BringUpToDate(context.Background(), db)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func seedBook(ctx context.Context, t *testing.T, db *bun.DB) *models.Book {
	t.Helper()

	author := &models.Author{FirstName: "Mary", FamilyName: "Shelley"}
	_, err := db.NewInsert().Model(author).Returning("*").Exec(ctx)
	require.NoError(t, err)

	book := &models.Book{Title: "Frankenstein", Summary: "A summary.", ISBN: "9780141439471", AuthorID: author.ID}
	_, err = db.NewInsert().Model(book).Returning("*").Exec(ctx)
	require.NoError(t, err)
	return book
}

func TestServiceCreateBookInstance(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	book := seedBook(ctx, t, db)
	due := time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC)

	instance := &models.BookInstance{
		BookID:  book.ID,
		Imprint: "Penguin Classics, 2003",
		Status:  models.StatusLoaned,
		DueBack: &due,
	}
	err := svc.CreateBookInstance(ctx, instance)
	require.NoError(t, err)
	assert.NotZero(t, instance.ID)

	found, err := svc.RetrieveBookInstance(ctx, instance.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusLoaned, found.Status)
	require.NotNil(t, found.DueBack)
	assert.Equal(t, "2026-09-15", found.DueBack.UTC().Format("2006-01-02"))
	require.NotNil(t, found.Book)
	assert.Equal(t, "Frankenstein", found.Book.Title)
}

func TestServiceRetrieveBookInstanceNotFound(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)

	_, err := svc.RetrieveBookInstance(context.Background(), 9999)
	assert.True(t, errors.Is(err, errcodes.NotFound("Book copy")))
}

func TestServiceListBookInstances(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	book := seedBook(ctx, t, db)
	for _, status := range []string{models.StatusAvailable, models.StatusMaintenance} {
		instance := &models.BookInstance{BookID: book.ID, Imprint: "Penguin Classics", Status: status}
		require.NoError(t, svc.CreateBookInstance(ctx, instance))
	}

	instances, err := svc.ListBookInstances(ctx)
	require.NoError(t, err)
	require.Len(t, instances, 2)
	assert.Equal(t, models.StatusAvailable, instances[0].Status)
	assert.Equal(t, models.StatusMaintenance, instances[1].Status)
	require.NotNil(t, instances[0].Book)
}

func TestServiceUpdateBookInstanceKeepsID(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	book := seedBook(ctx, t, db)
	instance := &models.BookInstance{BookID: book.ID, Imprint: "Penguin Classics", Status: models.StatusAvailable}
	require.NoError(t, svc.CreateBookInstance(ctx, instance))
	originalID := instance.ID

	due := time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)
	instance.Status = models.StatusLoaned
	instance.DueBack = &due
	err := svc.UpdateBookInstance(ctx, instance, UpdateBookInstanceOptions{Columns: []string{"status", "due_back"}})
	require.NoError(t, err)

	found, err := svc.RetrieveBookInstance(ctx, originalID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusLoaned, found.Status)
	require.NotNil(t, found.DueBack)

	instances, err := svc.ListBookInstances(ctx)
	require.NoError(t, err)
	assert.Len(t, instances, 1)
}

func TestServiceDeleteBookInstance(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	book := seedBook(ctx, t, db)
	instance := &models.BookInstance{BookID: book.ID, Imprint: "Penguin Classics", Status: models.StatusAvailable}
	require.NoError(t, svc.CreateBookInstance(ctx, instance))

	// Copies delete unconditionally; nothing references them.
	require.NoError(t, svc.DeleteBookInstance(ctx, instance.ID))

	_, err := svc.RetrieveBookInstance(ctx, instance.ID)
	assert.True(t, errors.Is(err, errcodes.NotFound("Book copy")))
}
