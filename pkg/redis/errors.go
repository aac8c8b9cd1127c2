package redis

import "errors"

var (
	ErrEmptyConnectionURL           = errors.New("redis: empty connection URL, set REDIS_URL")
	ErrFailedToParseRedisConnString = errors.New("redis: failed to parse connection URL")
	ErrRedisNotReady                = errors.New("redis: server did not answer within the retry window")
	ErrHealthcheckFailed            = errors.New("redis: subscription store is not ready")
	ErrEmptyKey                     = errors.New("redis: empty hash table or field name")
)
