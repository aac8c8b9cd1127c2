package handler

import (
	"errors"
	"net/http"
)

var ErrNilResponse = errors.New("handler returned nil response")

// HTTPError carries a status code and a client-facing message.
type HTTPError struct {
	Code int
	Key  string
}

func (e HTTPError) Error() string {
	return e.Key
}

// NewHTTPError returns an HTTPError. An empty key falls back to the status text.
func NewHTTPError(code int, key string) HTTPError {
	if key == "" {
		key = http.StatusText(code)
	}
	return HTTPError{Code: code, Key: key}
}

var (
	ErrBadRequest           = NewHTTPError(http.StatusBadRequest, "")
	ErrNotFound             = NewHTTPError(http.StatusNotFound, "")
	ErrMethodNotAllowed     = NewHTTPError(http.StatusMethodNotAllowed, "")
	ErrUnsupportedMediaType = NewHTTPError(http.StatusUnsupportedMediaType, "")
	ErrInternalServerError  = NewHTTPError(http.StatusInternalServerError, "")
)
