package pg

import "errors"

var (
	ErrEmptyConnectionString    = errors.New("pg: empty connection string, set PG_CONN_URL")
	ErrFailedToParseDBConfig    = errors.New("pg: failed to parse connection string")
	ErrFailedToOpenDBConnection = errors.New("pg: database did not become reachable")
	ErrFailedToApplyMigrations  = errors.New("pg: failed to apply subscription store migrations")
	ErrHealthcheckFailed        = errors.New("pg: subscription store is not ready")
	ErrSchemaMissing            = errors.New("pg: kv_hash table does not exist, run migrations")
	ErrEmptyKey                 = errors.New("pg: empty hash table or field name")
)
