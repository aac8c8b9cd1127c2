package subscription

import "errors"

var (
	ErrMissingConfig   = errors.New("subscription config is missing")
	ErrMalformedConfig = errors.New("subscription config is not a JSON object")

	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrInvalidSubscription  = errors.New("invalid subscription")
	ErrMalformedEntry       = errors.New("stored subscription is malformed")

	ErrFailedToSave   = errors.New("failed to save subscription")
	ErrFailedToLoad   = errors.New("failed to load subscriptions")
	ErrFailedToDelete = errors.New("failed to delete subscription")
)
