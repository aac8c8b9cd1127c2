// Package logger builds the service's *slog.Logger and provides attribute
// constructors so that log keys stay consistent between the HTTP layer, the
// push dispatcher and the CLI.
//
// New assembles a text or JSON handler from functional options and wraps it so
// that registered ContextExtractor callbacks run on every record. That is how request ids set by the requestid middleware end up in log
// lines written deep inside the dispatcher.
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Production, "publication"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "subscription removed",
//		logger.SubscriptionID(id),
//		logger.StatusCode(http.StatusGone),
//	)
package logger
