package binder

import (
	"fmt"
	"mime"
	"net/http"
	"net/url"
)

// DefaultMaxMemory caps the memory used when parsing multipart forms.
const DefaultMaxMemory = 10 << 20 // 10 MB

// Form binds url-encoded and multipart form fields into struct fields tagged `form:"name"`.
//
// GET and HEAD requests return ErrBinderNotApplicable so Form can be combined
// with Query. A body-carrying request without a Content-Type binds nothing,
// leaving the target at its zero value. Any other media type is
// ErrUnsupportedMediaType.
//
//	type ValidateRequest struct {
//		Config         string `form:"config"`
//		Endpoint       string `form:"endpoint"`
//		SubscriptionID string `form:"subscription_id"`
//	}
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if r.Method == http.MethodGet || r.Method == http.MethodHead {
			return ErrBinderNotApplicable
		}

		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return bindToStruct(v, "form", url.Values{}, ErrInvalidForm)
		}

		mediaType, params, err := mime.ParseMediaType(contentType)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrUnsupportedMediaType, err)
		}

		var values url.Values
		switch mediaType {
		case "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidForm, err)
			}
			values = r.PostForm

		case "multipart/form-data":
			if params["boundary"] == "" {
				return fmt.Errorf("%w: missing boundary in content type", ErrInvalidForm)
			}
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidForm, err)
			}
			values = r.MultipartForm.Value

		default:
			return fmt.Errorf("%w: got %s, expected application/x-www-form-urlencoded or multipart/form-data", ErrUnsupportedMediaType, mediaType)
		}

		return bindToStruct(v, "form", values, ErrInvalidForm)
	}
}

// Query binds URL query parameters into struct fields tagged `query:"name"`.
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "query", r.URL.Query(), ErrInvalidQuery)
	}
}
