package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBookInstanceURL(t *testing.T) {
	t.Parallel()

	bi := &BookInstance{ID: 7}
	assert.Equal(t, "/catalog/bookinstance/7", bi.URL())
}

func TestBookInstanceDueBack(t *testing.T) {
	t.Parallel()

	bi := &BookInstance{Status: StatusLoaned, DueBack: date(2026, time.September, 15)}
	assert.Equal(t, "Sep 15, 2026", bi.DueBackFormatted())
	assert.Equal(t, "2026-09-15", bi.DueBackISO())

	available := &BookInstance{Status: StatusAvailable}
	assert.Equal(t, "", available.DueBackFormatted())
	assert.Equal(t, "", available.DueBackISO())
}

func TestBookURL(t *testing.T) {
	t.Parallel()

	b := &Book{ID: 3}
	assert.Equal(t, "/catalog/book/3", b.URL())
}

func TestGenreURL(t *testing.T) {
	t.Parallel()

	g := &Genre{ID: 9}
	assert.Equal(t, "/catalog/genre/9", g.URL())
}
