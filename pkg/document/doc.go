// Package document renders the printed greeting edition and derives the entity
// tags used to cache it.
//
// Documents are github.com/a-h/templ components, so the HTTP layer can stream
// them straight into a response while the push dispatcher renders them into a
// byte slice for delivery.
//
//	body, err := document.Bytes(ctx, "Hello, Alice")
//	etag := document.DailyETag("english", "Alice", time.Now())
package document
