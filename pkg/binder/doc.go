// Package binder maps HTTP request parameters onto tagged struct fields.
//
// Binders have the signature func(*http.Request, any) error and plug into
// handler.Wrap through handler.WithBinders. A binder that does not apply to
// a request returns ErrBinderNotApplicable and is skipped.
//
//	type Request struct {
//		Config string `form:"config"`
//		Page   int    `query:"page"`
//	}
//
//	http.Handle("/validate_config/", handler.Wrap(h,
//		handler.WithBinders[handler.Context, Request](binder.Form(), binder.Query()),
//	))
package binder
