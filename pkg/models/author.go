package models

import (
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

type Author struct {
	bun.BaseModel `bun:"table:authors,alias:a"`

	ID          int        `bun:",pk,nullzero" json:"id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	FirstName   string     `bun:",nullzero" json:"first_name"`
	FamilyName  string     `bun:",nullzero" json:"family_name"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	DateOfDeath *time.Time `json:"date_of_death"`
}

// Name returns the display name in "Family, First" form. It's the empty string
// when either part is missing.
func (a *Author) Name() string {
	if a.FirstName == "" || a.FamilyName == "" {
		return ""
	}
	return fmt.Sprintf("%s, %s", a.FamilyName, a.FirstName)
}

func (a *Author) URL() string {
	return fmt.Sprintf("/catalog/author/%d", a.ID)
}

// Lifespan returns the time between birth and death broken down into whole
// calendar years, months, and days. Authors without both dates, or with a zero
// difference, are reported as "Alive".
func (a *Author) Lifespan() string {
	if a.DateOfBirth == nil || a.DateOfDeath == nil {
		return "Alive"
	}

	years, months, days := calendarDiff(*a.DateOfBirth, *a.DateOfDeath)
	if years == 0 && months == 0 && days == 0 {
		return "Alive"
	}

	return fmt.Sprintf("%d years and %d months and %d days from death", years, months, days)
}

func (a *Author) BirthFormatted() string {
	return FormatDate(a.DateOfBirth)
}

func (a *Author) DeathFormatted() string {
	return FormatDate(a.DateOfDeath)
}

func (a *Author) BirthISO() string {
	return FormatDateISO(a.DateOfBirth)
}

func (a *Author) DeathISO() string {
	return FormatDateISO(a.DateOfDeath)
}

// calendarDiff computes the whole-unit calendar difference between two dates:
// the largest number of whole months that fits between them (split into years
// and months), then the days left over.
func calendarDiff(from, to time.Time) (years, months, days int) {
	from = midnightUTC(from)
	to = midnightUTC(to)

	totalMonths := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	anchor := addMonths(from, totalMonths)
	if anchor.After(to) {
		totalMonths--
		anchor = addMonths(from, totalMonths)
	}

	years = totalMonths / 12
	months = totalMonths % 12
	days = int(to.Sub(anchor).Hours() / 24)

	return years, months, days
}

// addMonths adds n months, clamping the day to the end of the target month
// (Jan 31 + 1 month is Feb 28/29, not Mar 2/3).
func addMonths(t time.Time, n int) time.Time {
	year := t.Year()
	month := int(t.Month()) - 1 + n
	year += month / 12
	month %= 12
	if month < 0 {
		month += 12
		year--
	}

	day := t.Day()
	if last := lastDayOfMonth(year, time.Month(month+1)); day > last {
		day = last
	}

	return time.Date(year, time.Month(month+1), day, 0, 0, 0, 0, time.UTC)
}

func lastDayOfMonth(year int, month time.Month) int {
	// Day 0 of the following month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func midnightUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
