// Package redis connects to Redis and exposes the hash-table operations the
// subscription store is built on.
//
// The package wraps github.com/redis/go-redis/v9 and adds:
//
//   - Connect, which pings the server and retries according to Config.
//   - HashStorage, a field/value view over Redis hashes (HSET, HGETALL, HDEL).
//   - Healthcheck, a closure suitable for readiness probes.
//
// Configuration is read from the environment via github.com/caarlos0/env:
//
//	cfg := redis.Config{
//		ConnectionURL:  "redis://localhost:6379/0",
//		RetryAttempts:  3,
//		RetryInterval:  5 * time.Second,
//		ConnectTimeout: 30 * time.Second,
//	}
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		// terminate the application
//	}
//	defer client.Close()
//
//	store := redis.NewHashStorage(client)
//	_ = store.Set(ctx, "push_example:subscriptions", "sub-1", []byte(`{"name":"Alice"}`))
//
// Sentinel errors wrap the underlying go-redis errors with errors.Join.
package redis
