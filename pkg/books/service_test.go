package books

import (
	"context"
	"database/sql"
	"testing"

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

func seedAuthor(ctx context.Context, t *testing.T, db *bun.DB) *models.Author {
	t.Helper()

	author := &models.Author{FirstName: "Mary", FamilyName: "Shelley"}
	_, err := db.NewInsert().Model(author).Returning("*").Exec(ctx)
	require.NoError(t, err)
	return author
}

func seedGenre(ctx context.Context, t *testing.T, db *bun.DB, name string) *models.Genre {
	t.Helper()

	genre := &models.Genre{Name: name}
	_, err := db.NewInsert().Model(genre).Returning("*").Exec(ctx)
	require.NoError(t, err)
	return genre
}

func countBookGenres(ctx context.Context, t *testing.T, db *bun.DB, bookID int) int {
	t.Helper()

	count, err := db.NewSelect().
		Model((*models.BookGenre)(nil)).
		Where("book_id = ?", bookID).
		Count(ctx)
	require.NoError(t, err)
	return count
}

func TestServiceCreateBook(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	author := seedAuthor(ctx, t, db)
	gothic := seedGenre(ctx, t, db, "Gothic")
	scifi := seedGenre(ctx, t, db, "Science Fiction")

	book := &models.Book{Title: "Frankenstein", Summary: "A scientist animates a creature.", ISBN: "9780141439471", AuthorID: author.ID}
	err := svc.CreateBook(ctx, book, []int{gothic.ID, scifi.ID})
	require.NoError(t, err)
	assert.NotZero(t, book.ID)

	found, err := svc.RetrieveBook(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, "Frankenstein", found.Title)
	require.NotNil(t, found.Author)
	assert.Equal(t, "Shelley, Mary", found.Author.Name())
	require.Len(t, found.Genres, 2)
}

func TestServiceRetrieveBookNotFound(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)

	_, err := svc.RetrieveBook(context.Background(), 9999)
	assert.True(t, errors.Is(err, errcodes.NotFound("Book")))
}

func TestServiceListBooksPopulatesAuthor(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	author := seedAuthor(ctx, t, db)
	first := &models.Book{Title: "Frankenstein", Summary: "A summary.", ISBN: "1", AuthorID: author.ID}
	require.NoError(t, svc.CreateBook(ctx, first, nil))
	second := &models.Book{Title: "The Last Man", Summary: "A summary.", ISBN: "2", AuthorID: author.ID}
	require.NoError(t, svc.CreateBook(ctx, second, nil))

	books, err := svc.ListBooks(ctx)
	require.NoError(t, err)
	require.Len(t, books, 2)
	// Insertion order, not title order.
	assert.Equal(t, "Frankenstein", books[0].Title)
	assert.Equal(t, "The Last Man", books[1].Title)
	require.NotNil(t, books[0].Author)
	assert.Equal(t, "Shelley, Mary", books[0].Author.Name())
}

func TestServiceUpdateBookReplacesGenres(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	author := seedAuthor(ctx, t, db)
	gothic := seedGenre(ctx, t, db, "Gothic")
	scifi := seedGenre(ctx, t, db, "Science Fiction")

	book := &models.Book{Title: "Frankenstein", Summary: "A summary.", ISBN: "9780141439471", AuthorID: author.ID}
	require.NoError(t, svc.CreateBook(ctx, book, []int{gothic.ID}))
	originalID := book.ID

	book.Title = "Frankenstein; or, The Modern Prometheus"
	err := svc.UpdateBook(ctx, book, UpdateBookOptions{
		Columns:  []string{"title", "summary", "isbn", "author_id"},
		GenreIDs: []int{scifi.ID},
	})
	require.NoError(t, err)

	found, err := svc.RetrieveBook(ctx, originalID)
	require.NoError(t, err)
	assert.Equal(t, "Frankenstein; or, The Modern Prometheus", found.Title)
	require.Len(t, found.Genres, 1)
	assert.Equal(t, "Science Fiction", found.Genres[0].Name)
}

func TestServiceDeleteBook(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	author := seedAuthor(ctx, t, db)
	gothic := seedGenre(ctx, t, db, "Gothic")

	book := &models.Book{Title: "Frankenstein", Summary: "A summary.", ISBN: "9780141439471", AuthorID: author.ID}
	require.NoError(t, svc.CreateBook(ctx, book, []int{gothic.ID}))

	instance := &models.BookInstance{BookID: book.ID, Imprint: "Penguin Classics", Status: models.StatusAvailable}
	_, err := db.NewInsert().Model(instance).Returning("*").Exec(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteBook(ctx, book.ID))

	_, err = svc.RetrieveBook(ctx, book.ID)
	assert.True(t, errors.Is(err, errcodes.NotFound("Book")))

	// Genre associations are cleaned up with the book.
	assert.Zero(t, countBookGenres(ctx, t, db, book.ID))

	// Copies are not cascaded; they stay until deleted through their own path.
	count, err := db.NewSelect().
		Model((*models.BookInstance)(nil)).
		Where("book_id = ?", book.ID).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
