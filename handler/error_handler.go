package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/publication/pkg/logger"
)

// ErrorInfo is the classified form of an error.
type ErrorInfo struct {
	StatusCode int
	Message    string
	LogLevel   slog.Level
}

// ClassifyError maps err to a status code and a message safe to show the client.
// Errors that are not HTTPError become 500 with a generic message.
func ClassifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: http.StatusInternalServerError,
		Message:    http.StatusText(http.StatusInternalServerError),
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		info.StatusCode = httpErr.Code
		info.Message = httpErr.Key
	}

	info.LogLevel = slog.LevelError
	if info.StatusCode >= 400 && info.StatusCode < 500 {
		info.LogLevel = slog.LevelWarn
	}
	return info
}

// NewErrorHandler logs the error with the request's context and answers with
// a plain-text body.
func NewErrorHandler(log *slog.Logger) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		info := ClassifyError(err)

		log.LogAttrs(r.Context(), info.LogLevel, "request error",
			logger.Error(err),
			logger.StatusCode(info.StatusCode),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Component("error_handler"),
		)

		http.Error(ctx.ResponseWriter(), info.Message, info.StatusCode)
	}
}
