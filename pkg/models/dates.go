package models

import (
	"time"

	"github.com/pkg/errors"
)

const (
	dateLayout        = "2006-01-02"
	displayDateLayout = "Jan 2, 2006"
)

// ParseDate parses a YYYY-MM-DD form value. The empty string means the field
// wasn't submitted and yields a nil date.
func ParseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return &t, nil
}

func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(displayDateLayout)
}

func FormatDateISO(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}
