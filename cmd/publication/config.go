package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/dmitrymomot/publication/modules/publication"
	"github.com/dmitrymomot/publication/pkg/config"
	"github.com/dmitrymomot/publication/pkg/environment"
	"github.com/dmitrymomot/publication/pkg/httpserver"
	"github.com/dmitrymomot/publication/pkg/oauth"
	"github.com/dmitrymomot/publication/pkg/pg"
	"github.com/dmitrymomot/publication/pkg/push"
	"github.com/dmitrymomot/publication/pkg/redis"
)

const defaultConfigFile = "config.yml"

// Store drivers.
const (
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// AppConfig is the whole process configuration.
type AppConfig struct {
	AppName     string `env:"APP_NAME" envDefault:"publication" yaml:"app_name"`
	Environment string `env:"APP_ENV" envDefault:"development" yaml:"env"`
	StoreDriver string `env:"STORE_DRIVER" envDefault:"redis" yaml:"store_driver"`

	HTTP        httpserver.Config  `yaml:"http"`
	Redis       redis.Config       `yaml:"redis"`
	Postgres    pg.Config          `yaml:"postgres"`
	OAuth       oauth.Config       `yaml:"bergcloud"`
	Push        push.Config        `yaml:"push"`
	Publication publication.Config `yaml:"publication"`
}

// flatConfig holds the top-level keys of the original config.yml layout.
// Non-empty values take precedence over the nested sections.
type flatConfig struct {
	ConsumerToken       string `yaml:"bergcloud_consumer_token"`
	ConsumerTokenSecret string `yaml:"bergcloud_consumer_token_secret"`
	AccessToken         string `yaml:"bergcloud_access_token"`
	AccessTokenSecret   string `yaml:"bergcloud_access_token_secret"`
	Site                string `yaml:"bergcloud_site"`
	RedisURL            string `yaml:"redis_url"`
}

func (f flatConfig) applyTo(cfg *AppConfig) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&cfg.OAuth.ConsumerKey, f.ConsumerToken)
	set(&cfg.OAuth.ConsumerSecret, f.ConsumerTokenSecret)
	set(&cfg.OAuth.AccessToken, f.AccessToken)
	set(&cfg.OAuth.AccessSecret, f.AccessTokenSecret)
	set(&cfg.OAuth.Site, f.Site)
	set(&cfg.Redis.ConnectionURL, f.RedisURL)
}

func (c AppConfig) Env() environment.Environment {
	return environment.Parse(c.Environment)
}

// loadConfig reads path when it exists and the environment otherwise.
// The file may use the nested sections of AppConfig, the flat
// bergcloud_* and redis_url keys of the original layout, or both.
func loadConfig(path string) (AppConfig, error) {
	var cfg AppConfig

	if path != "" {
		_, err := os.Stat(path)
		switch {
		case err == nil:
			if err := config.LoadFile(path, &cfg); err != nil {
				return AppConfig{}, err
			}
			var flat flatConfig
			if err := config.LoadFile(path, &flat); err != nil {
				return AppConfig{}, err
			}
			flat.applyTo(&cfg)
			return cfg, validateConfig(cfg)
		case !errors.Is(err, fs.ErrNotExist):
			return AppConfig{}, err
		}
	}

	if err := config.Load(&cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, validateConfig(cfg)
}

func validateConfig(cfg AppConfig) error {
	switch cfg.StoreDriver {
	case DriverRedis, DriverPostgres, DriverMemory:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStoreDriver, cfg.StoreDriver)
	}
	return nil
}
