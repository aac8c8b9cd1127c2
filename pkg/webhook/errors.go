package webhook

import "errors"

var (
	ErrDeliveryFailed   = errors.New("document delivery failed")
	ErrUnexpectedStatus = errors.New("endpoint returned unexpected status")
	ErrGone             = errors.New("endpoint is gone")
	ErrInvalidPayload   = errors.New("invalid delivery payload")
	ErrInvalidURL       = errors.New("invalid delivery URL")
	ErrTimeout          = errors.New("delivery request timeout")
)

// IsGone reports whether err means the remote subscription no longer exists.
func IsGone(err error) bool {
	return errors.Is(err, ErrGone)
}
