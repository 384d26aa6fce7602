package binder

import (
	"reflect"
	"testing"

	ut "github.com/go-playground/universal-translator"
	"github.com/shelfkeeper/shelfkeeper/pkg/errcodes"
	"github.com/stretchr/testify/assert"
)

type mockFieldError struct {
	tag   string
	field string
	param string
	kind  reflect.Kind
}

func (e *mockFieldError) Error() string           { return "Mock Field Error" }
func (e *mockFieldError) Tag() string             { return e.tag }
func (e *mockFieldError) ActualTag() string       { return e.tag }
func (e *mockFieldError) Namespace() string       { return "" }
func (e *mockFieldError) StructNamespace() string { return "" }
func (e *mockFieldError) Field() string           { return e.field }
func (e *mockFieldError) StructField() string     { return "" }
func (e *mockFieldError) Value() interface{}      { return "" }
func (e *mockFieldError) Param() string           { return e.param }
func (e *mockFieldError) Kind() reflect.Kind {
	if e.kind == 0 {
		return reflect.String
	}
	return e.kind
}
func (e *mockFieldError) Type() reflect.Type               { return reflect.TypeOf("") }
func (e *mockFieldError) Translate(_ ut.Translator) string { return "" }

func TestFormatFieldError(t *testing.T) {
	t.Parallel()

	cases := []struct {
		tag   string
		param string
		kind  reflect.Kind
		code  string
		msg   string
	}{
		{required, "", 0, errcodes.CodeMissingField, `"first_name" must be specified`},
		{alphanum, "", 0, errcodes.CodeInvalidCharacters, `"first_name" has non-alphanumeric characters`},
		{date, "", 0, errcodes.CodeInvalidDate, `"first_name" should be in the format of YYYY-MM-DD`},
		// String min/max
		{mx, "100", reflect.String, errcodes.CodeLengthViolation, `"first_name" length must be less than or equal to 100 characters`},
		{mx, "1", reflect.String, errcodes.CodeLengthViolation, `"first_name" length must be less than or equal to 1 character`},
		{mn, "3", reflect.String, errcodes.CodeLengthViolation, `"first_name" length must be greater than or equal to 3 characters`},
		// Numeric min/max
		{mn, "1", reflect.Int, errcodes.CodeInvalidValue, `"first_name" must be greater than or equal to 1`},
		{mx, "50", reflect.Int, errcodes.CodeInvalidValue, `"first_name" must be less than or equal to 50`},
		// Enumerations
		{oneof, "Available Maintenance Loaned Reserved", 0, errcodes.CodeInvalidValue, `"first_name" must be one of the following: "Available", "Maintenance", "Loaned", "Reserved"`},
		// Anything unmapped
		{"email", "", 0, errcodes.CodeInvalidValue, `"first_name" is invalid`},
	}

	for _, tc := range cases {
		fe := formatFieldError(&mockFieldError{tag: tc.tag, field: "first_name", param: tc.param, kind: tc.kind})
		assert.Equal(t, "first_name", fe.Field)
		assert.Equal(t, tc.code, fe.Code, tc.tag)
		assert.Equal(t, tc.msg, fe.Message, tc.tag)
	}
}
