package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestAuthorName(t *testing.T) {
	t.Parallel()

	a := &Author{FirstName: "Jane", FamilyName: "Austen"}
	assert.Equal(t, "Austen, Jane", a.Name())

	assert.Equal(t, "", (&Author{FirstName: "Jane"}).Name())
	assert.Equal(t, "", (&Author{FamilyName: "Austen"}).Name())
	assert.Equal(t, "", (&Author{}).Name())
}

func TestAuthorURL(t *testing.T) {
	t.Parallel()

	a := &Author{ID: 42}
	assert.Equal(t, "/catalog/author/42", a.URL())
}

func TestAuthorLifespan_MissingDates(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Alive", (&Author{}).Lifespan())
	assert.Equal(t, "Alive", (&Author{DateOfBirth: date(1920, time.January, 2)}).Lifespan())
	assert.Equal(t, "Alive", (&Author{DateOfDeath: date(2000, time.January, 2)}).Lifespan())
}

func TestAuthorLifespan_ZeroDifference(t *testing.T) {
	t.Parallel()

	a := &Author{
		DateOfBirth: date(1920, time.January, 2),
		DateOfDeath: date(1920, time.January, 2),
	}
	assert.Equal(t, "Alive", a.Lifespan())
}

func TestAuthorLifespan_WholeUnits(t *testing.T) {
	t.Parallel()

	a := &Author{
		DateOfBirth: date(1920, time.January, 2),
		DateOfDeath: date(2000, time.March, 10),
	}
	assert.Equal(t, "80 years and 2 months and 8 days from death", a.Lifespan())
}

func TestAuthorLifespan_BorrowsDaysAndMonths(t *testing.T) {
	t.Parallel()

	// Dying before the birthday borrows a month; dying earlier in the month
	// borrows days from the previous month.
	a := &Author{
		DateOfBirth: date(1920, time.March, 31),
		DateOfDeath: date(2000, time.March, 1),
	}
	assert.Equal(t, "79 years and 11 months and 1 days from death", a.Lifespan())
}

func TestAuthorFormattedDates(t *testing.T) {
	t.Parallel()

	a := &Author{DateOfBirth: date(1920, time.January, 2)}
	assert.Equal(t, "Jan 2, 1920", a.BirthFormatted())
	assert.Equal(t, "1920-01-02", a.BirthISO())
	assert.Equal(t, "", a.DeathFormatted())
	assert.Equal(t, "", a.DeathISO())
}
