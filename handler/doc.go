// Package handler turns typed request handlers into http.HandlerFunc.
//
// A HandlerFunc receives a Context and a request value filled by binders
// and returns a Response. Wrap runs the binders, the decorators and the
// handler, and routes every failure to an ErrorHandler:
//
//	type ValidateRequest struct {
//		Config string `form:"config"`
//	}
//
//	h := func(ctx handler.Context, req ValidateRequest) handler.Response {
//		if req.Config == "" {
//			return handler.Text(http.StatusBadRequest, "missing config")
//		}
//		return handler.JSON(map[string]bool{"valid": true})
//	}
//
//	r.Post("/validate_config/", handler.Wrap(h,
//		handler.WithBinders[handler.Context, ValidateRequest](binder.Form()),
//		handler.WithErrorHandler[handler.Context, ValidateRequest](handler.NewErrorHandler(log)),
//	))
//
// Responses: JSON, Text, Templ, Empty, EmptyWithStatus and NotModified.
// Return HTTPError from a Render or a binder to choose the status the error
// handler answers with; any other error becomes a 500.
package handler
