package binder

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"
	"github.com/segmentio/encoding/json"
	"github.com/shelfkeeper/shelfkeeper/pkg/errcodes"
)

const (
	alphanum = "alphanum"
	date     = "date"
	mx       = "max"
	mn       = "min"
	oneof    = "oneof"
	required = "required"
)

func formatUnmarshalTypeError(err *json.UnmarshalTypeError) string {
	return fmt.Sprintf("%q should be of type %s", strings.Trim(err.Field, "."), err.Type)
}

func formatSchemaConversionError(err schema.ConversionError) string {
	return fmt.Sprintf("%q should be of type %s", err.Key, err.Type)
}

// formatFieldError converts a validator error into a field error with a stable
// machine code and a human message.
func formatFieldError(err validator.FieldError) errcodes.FieldError {
	field := err.Field()

	switch err.Tag() {
	case required:
		return errcodes.FieldError{
			Field:   field,
			Code:    errcodes.CodeMissingField,
			Message: fmt.Sprintf("%q must be specified", field),
		}
	case mn:
		if isNumericKind(err.Kind()) {
			return errcodes.FieldError{
				Field:   field,
				Code:    errcodes.CodeInvalidValue,
				Message: fmt.Sprintf("%q must be greater than or equal to %s", field, err.Param()),
			}
		}
		return errcodes.FieldError{
			Field:   field,
			Code:    errcodes.CodeLengthViolation,
			Message: fmt.Sprintf("%q length must be greater than or equal to %s %s", field, err.Param(), characters(err.Param())),
		}
	case mx:
		if isNumericKind(err.Kind()) {
			return errcodes.FieldError{
				Field:   field,
				Code:    errcodes.CodeInvalidValue,
				Message: fmt.Sprintf("%q must be less than or equal to %s", field, err.Param()),
			}
		}
		return errcodes.FieldError{
			Field:   field,
			Code:    errcodes.CodeLengthViolation,
			Message: fmt.Sprintf("%q length must be less than or equal to %s %s", field, err.Param(), characters(err.Param())),
		}
	case alphanum:
		return errcodes.FieldError{
			Field:   field,
			Code:    errcodes.CodeInvalidCharacters,
			Message: fmt.Sprintf("%q has non-alphanumeric characters", field),
		}
	case date:
		return errcodes.FieldError{
			Field:   field,
			Code:    errcodes.CodeInvalidDate,
			Message: fmt.Sprintf("%q should be in the format of YYYY-MM-DD", field),
		}
	case oneof:
		valids := []string{}
		for _, p := range strings.Fields(err.Param()) {
			valids = append(valids, fmt.Sprintf("%q", p))
		}
		return errcodes.FieldError{
			Field:   field,
			Code:    errcodes.CodeInvalidValue,
			Message: fmt.Sprintf("%q must be one of the following: %s", field, strings.Join(valids, ", ")),
		}
	default:
		return errcodes.FieldError{
			Field:   field,
			Code:    errcodes.CodeInvalidValue,
			Message: fmt.Sprintf("%q is invalid", field),
		}
	}
}

func characters(param string) string {
	if param == "1" {
		return "character"
	}
	return "characters"
}

func isNumericKind(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
