package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/publication/pkg/clientip"
	"github.com/dmitrymomot/publication/pkg/greeting"
	"github.com/dmitrymomot/publication/pkg/httpserver"
	"github.com/dmitrymomot/publication/pkg/logger"
	"github.com/dmitrymomot/publication/pkg/oauth"
	"github.com/dmitrymomot/publication/pkg/pg"
	"github.com/dmitrymomot/publication/pkg/push"
	"github.com/dmitrymomot/publication/pkg/redis"
	"github.com/dmitrymomot/publication/pkg/requestid"
	"github.com/dmitrymomot/publication/pkg/subscription"
	"github.com/dmitrymomot/publication/pkg/webhook"
)

// app holds the dependencies shared by the commands.
type app struct {
	cfg       AppConfig
	log       *slog.Logger
	greetings *greeting.Table
	store     *subscription.Store
	ready     httpserver.Check
	close     func()
}

// newApp loads configuration, builds the logger and connects the subscription store.
// A store that cannot be reached aborts startup.
func newApp(cmd *cobra.Command) (*app, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := loadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.New(
		logger.WithEnvironment(cfg.Env(), cfg.AppName),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	a := &app{cfg: cfg, log: log, greetings: greeting.Default(), close: func() {}}
	if err := a.connectStore(cmd.Context()); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *app) connectStore(ctx context.Context) error {
	log := a.log.With(slog.String("driver", a.cfg.StoreDriver))

	switch a.cfg.StoreDriver {
	case DriverRedis:
		client, err := redis.Connect(ctx, a.cfg.Redis)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		hash := redis.NewHashStorage(client)
		a.store = subscription.NewStore(hash)
		a.ready = redis.Healthcheck(client)
		a.close = func() { _ = hash.Close() }

	case DriverPostgres:
		pool, err := pg.Connect(ctx, a.cfg.Postgres)
		if err != nil {
			return fmt.Errorf("failed to connect to postgres: %w", err)
		}
		if err := pg.Migrate(ctx, pool, a.cfg.Postgres, log); err != nil {
			pool.Close()
			return err
		}
		a.store = subscription.NewStore(pg.NewHashStorage(pool))
		a.ready = pg.Healthcheck(pool)
		a.close = pool.Close

	default:
		hash := subscription.NewMemoryHashStore()
		a.store = subscription.NewStore(hash)
		a.ready = hash.Healthcheck
		log.WarnContext(ctx, "subscriptions are kept in memory and lost on exit")
	}

	log.InfoContext(ctx, "subscription store connected")
	return nil
}

// sender builds the OAuth-signing delivery client.
func (a *app) sender(ctx context.Context) (*webhook.Sender, error) {
	client, err := oauth.NewClient(ctx, a.cfg.OAuth, &http.Client{Timeout: a.cfg.Push.Timeout})
	if err != nil {
		return nil, fmt.Errorf("failed to build oauth client: %w", err)
	}
	return webhook.NewSenderWithClient(client), nil
}

func (a *app) dispatcher(ctx context.Context) (*push.Dispatcher, error) {
	sender, err := a.sender(ctx)
	if err != nil {
		return nil, err
	}
	return push.NewDispatcher(a.store, a.greetings, sender,
		push.WithTimeout(a.cfg.Push.Timeout),
		push.WithLogger(a.log),
	), nil
}
