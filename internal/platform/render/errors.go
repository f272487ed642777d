package render

import (
	"errors"
	"fmt"
)

// NotFoundMessage is the uniform not-found text. A missing row and a row
// hidden behind a deleted patient are deliberately indistinguishable.
const NotFoundMessage = "Not Found"

// ErrNotFound marks a resource that is absent or not visible.
var ErrNotFound = errors.New("not found")

// ValidationError reports a missing or malformed request field. Its
// message names the offending concept and is returned to the caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
