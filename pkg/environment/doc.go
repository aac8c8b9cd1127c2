// Package environment names the deployment environments the service knows
// about and normalizes the short aliases operators tend to type into APP_ENV.
//
//	env := environment.Parse(os.Getenv("APP_ENV")) // "prod" -> Production
//	if env.IsProduction() {
//		// ...
//	}
//
// Unknown or empty values resolve to Development.
package environment
