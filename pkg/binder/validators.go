package binder

import (
	"context"
	"html"
	"regexp"

	"github.com/go-playground/mold/v4"
	"github.com/go-playground/validator/v10"
)

var (
	dateRE = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])-(0[1-9]|[1-2][0-9]|3[0-1])$`)
)

// dateValidator ensures the value matches the format YYYY-MM-DD or the empty
// string. The empty string is allowed so that optional date fields can be left
// out; pair it with `required` when the date must be present.
func dateValidator(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return dateRE.MatchString(value)
}

// escapeModifier HTML-escapes string fields so freeform text is neutralized
// before it's stored.
func escapeModifier(_ context.Context, fl mold.FieldLevel) error {
	fl.Field().SetString(html.EscapeString(fl.Field().String()))
	return nil
}
