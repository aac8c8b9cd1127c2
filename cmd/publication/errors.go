package main

import "errors"

var (
	ErrUnknownStoreDriver = errors.New("unknown store driver")
	ErrMissingEndpoint    = errors.New("push endpoint URL is needed")
)
