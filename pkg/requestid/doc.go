// Package requestid attaches a correlation id to every request and to
// background push runs so their log records can be grouped.
//
// Middleware reuses a client-supplied X-Request-ID when it is well formed
// and generates a UUID otherwise. The id is stored in the request context
// and echoed in the response header. LoggerExtractor plugs into
// logger.WithContextExtractors so the id shows up as "request_id" on every
// record logged with that context.
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
package requestid
