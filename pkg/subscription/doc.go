// Package subscription stores printer subscriptions and validates the
// configuration a user submits when subscribing.
//
// Subscriptions live in a single hash table keyed by subscription id. The
// value is a JSON object with the subscriber's name, language and delivery
// endpoint:
//
//	{"name":"Ada","lang":"english","endpoint":"https://api.example.com/subscriptions/1"}
//
// Any backend implementing HashStore can hold them; this repository ships a
// Redis and a Postgres implementation plus MemoryHashStore for tests and
// local runs.
//
// # Validation
//
// Validator checks a submitted configuration against the greeting table and
// writes the subscription only when every rule passes:
//
//	v := subscription.NewValidator(greeting.Default(), store)
//	res, err := v.Validate(ctx, subscription.Input{
//		Config:         `{"lang":"english","name":"Ada"}`,
//		Endpoint:       endpoint,
//		SubscriptionID: id,
//	})
//
// A missing or malformed config yields ErrMissingConfig or ErrMalformedConfig
// and nothing is stored.
package subscription
