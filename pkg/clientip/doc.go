// Package clientip resolves the address of the caller behind reverse proxies.
//
// The printer platform calls /validate_config/ through its own proxies, so the
// middleware records the forwarded address rather than the proxy's:
//
//	r.Use(clientip.Middleware)
//	log := logger.New(logger.WithContextExtractors(clientip.LoggerExtractor()))
package clientip
