package greeting

import "errors"

var (
	ErrUnknownLanguage = errors.New("unknown language")
	ErrEmptyTable      = errors.New("greeting table has no languages")
	ErrEmptyGreetings  = errors.New("language has no greetings")
)
