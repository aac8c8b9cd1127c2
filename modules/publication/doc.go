// Package publication wires the HTTP surface of the greeting publication.
//
// Routes served by Service:
//
//	GET  /                  informational text
//	GET  /sample/           sample edition for "Little Printer" in English, with ETag
//	POST /validate_config/  validates and stores a subscription, answers {"valid":..,"errors":[..]}
//	GET  /push/             confirmation form
//	POST /push/             pushes the edition to every subscriber and shows the counts
//
// HealthService adds /health/live and /health/ready. Router mounts both
// behind request-id and panic-recovery middleware.
package publication
