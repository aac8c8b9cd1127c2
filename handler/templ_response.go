package handler

import (
	"bytes"
	"net/http"

	"github.com/a-h/templ"
)

type templResponse struct {
	component templ.Component
	status    int
	header    http.Header
}

// Render buffers the component so a rendering error can still produce a
// clean error response.
func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	var buf bytes.Buffer
	if err := t.component.Render(r.Context(), &buf); err != nil {
		return err
	}

	for k, v := range t.header {
		w.Header()[k] = v
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(t.status)
	_, err := buf.WriteTo(w)
	return err
}

// TemplOption configures a templ response.
type TemplOption func(*templResponse)

// WithTemplStatus sets the status code. Default is 200.
func WithTemplStatus(status int) TemplOption {
	return func(t *templResponse) { t.status = status }
}

// WithHeader adds a response header.
func WithHeader(key, value string) TemplOption {
	return func(t *templResponse) { t.header.Set(key, value) }
}

// Templ renders a templ component as an HTML page.
//
//	return handler.Templ(views.Sample(sentence), handler.WithHeader("ETag", etag))
func Templ(component templ.Component, opts ...TemplOption) Response {
	t := &templResponse{component: component, status: http.StatusOK, header: http.Header{}}
	for _, opt := range opts {
		opt(t)
	}
	return t
}
