package oauth

import "errors"

var (
	ErrMissingConsumerCredentials = errors.New("oauth: consumer token and secret are required")
	ErrMissingAccessToken         = errors.New("oauth: access token and secret are required")
	ErrMissingSite                = errors.New("oauth: site is required")
	ErrUnsupportedMode            = errors.New("oauth: unsupported mode")
	ErrInvalidTokenURL            = errors.New("oauth: invalid token URL")
)
