package render

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

type errorBody struct {
	Message string `json:"message"`
}

// ErrorEnvelope is the uniform failure shape: {"error":{"message":"..."}}.
type ErrorEnvelope struct {
	Error errorBody `json:"error"`
}

// Error writes the error envelope with the given status and message.
func Error(c echo.Context, status int, message string) error {
	return c.JSON(status, ErrorEnvelope{Error: errorBody{Message: message}})
}

// NotFound writes the uniform 404 response.
func NotFound(c echo.Context) error {
	return Error(c, http.StatusNotFound, NotFoundMessage)
}

// BadRequest writes a 400 response with the given message.
func BadRequest(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, message)
}

// Err maps a service error onto the wire: ErrNotFound becomes the
// uniform 404, ValidationError a 400 naming the field, anything else a
// plain 500.
func Err(c echo.Context, err error) error {
	var verr *ValidationError
	switch {
	case errors.Is(err, ErrNotFound):
		return NotFound(c)
	case errors.As(err, &verr):
		return BadRequest(c, verr.Message)
	default:
		return Error(c, http.StatusInternalServerError, "Internal Server Error")
	}
}
