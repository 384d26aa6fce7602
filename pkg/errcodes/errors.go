package errcodes

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// Field-level validation error codes.
const (
	CodeMissingField      = "missing_field"
	CodeLengthViolation   = "length_violation"
	CodeInvalidCharacters = "invalid_characters"
	CodeInvalidDate       = "invalid_date"
	CodeInvalidValue      = "invalid_value"
)

// FieldError is a single validation failure tied to one submitted field.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Error struct {
	HTTPCode int
	Message  string
	Code     string
	Fields   []FieldError
}

func (err *Error) Error() string {
	return err.Message
}

func (err *Error) As(target interface{}) bool {
	te, ok := target.(*Error)
	if !ok {
		return false
	}
	te.HTTPCode = err.HTTPCode
	te.Message = err.Message
	te.Code = err.Code
	te.Fields = err.Fields
	return true
}

func (err *Error) Is(target error) bool {
	te, ok := target.(*Error)
	if !ok {
		return false
	}
	return te.HTTPCode == err.HTTPCode &&
		te.Message == err.Message &&
		te.Code == err.Code
}

// NotFound returns a 404 error with a message indicating the given resource.
func NotFound(resource string) error {
	return &Error{
		HTTPCode: http.StatusNotFound,
		Message:  resource + " not found.",
		Code:     "not_found",
	}
}

func UnsupportedMediaType() error {
	return &Error{
		HTTPCode: http.StatusUnsupportedMediaType,
		Message:  "Unsupported Media Type",
		Code:     "unsupported_media_type",
	}
}

func UnknownParameter(param string) error {
	return &Error{
		HTTPCode: http.StatusUnprocessableEntity,
		Message:  fmt.Sprintf("Unknown Parameter %q", param),
		Code:     "unknown_parameter",
	}
}

func ValidationTypeError(msg string) error {
	return &Error{
		HTTPCode: http.StatusUnprocessableEntity,
		Message:  msg,
		Code:     "validation_type_error",
	}
}

func ValidationError(msg string) error {
	return &Error{
		HTTPCode: http.StatusUnprocessableEntity,
		Message:  msg,
		Code:     "validation_error",
	}
}

// ValidationFailed returns a 422 error carrying every violated field rule, in
// the order the fields were declared.
func ValidationFailed(fields []FieldError) error {
	msg := "Validation failed."
	if len(fields) > 0 {
		msg = fields[0].Message
	}
	return &Error{
		HTTPCode: http.StatusUnprocessableEntity,
		Message:  msg,
		Code:     "validation_failed",
		Fields:   fields,
	}
}

// AsValidationFailed reports whether err is a validation failure carrying
// field errors, so callers can echo the attempted payload back to the
// operator.
func AsValidationFailed(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) && len(e.Fields) > 0 {
		return e, true
	}
	return nil, false
}

func MalformedPayload() error {
	return &Error{
		HTTPCode: http.StatusBadRequest,
		Message:  "Malformed Payload",
		Code:     "malformed_payload",
	}
}

func EmptyRequestBody() error {
	return &Error{
		HTTPCode: http.StatusBadRequest,
		Message:  "Request body can't be empty.",
		Code:     "empty_request_body",
	}
}
