package push

import "errors"

var (
	ErrLoadSubscriptions = errors.New("push: failed to load subscriptions")
	ErrRender            = errors.New("push: failed to render document")
	ErrGreeting          = errors.New("push: failed to pick greeting")
	ErrRemove            = errors.New("push: failed to remove gone subscription")
)
