package oauth

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/dghubble/oauth1"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// NewClient returns an HTTP client that authenticates every request it sends.
// In oauth1 mode requests are signed with the consumer and access tokens.
// In oauth2 mode a client-credentials token is fetched from Site+TokenPath
// and refreshed when it expires. base supplies the underlying transport; nil
// means http.DefaultClient.
func NewClient(ctx context.Context, cfg Config, base *http.Client) (*http.Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if base == nil {
		base = http.DefaultClient
	}

	switch cfg.Mode {
	case ModeOAuth2:
		tokenURL, err := TokenURL(cfg)
		if err != nil {
			return nil, err
		}
		cc := &clientcredentials.Config{
			ClientID:     cfg.ConsumerKey,
			ClientSecret: cfg.ConsumerSecret,
			TokenURL:     tokenURL,
			AuthStyle:    oauth2.AuthStyleInHeader,
		}
		return cc.Client(context.WithValue(ctx, oauth2.HTTPClient, base)), nil
	default:
		conf := oauth1.NewConfig(cfg.ConsumerKey, cfg.ConsumerSecret)
		token := oauth1.NewToken(cfg.AccessToken, cfg.AccessSecret)
		return conf.Client(context.WithValue(ctx, oauth1.HTTPClient, base), token), nil
	}
}

// TokenURL resolves the oauth2 token endpoint against the configured site.
func TokenURL(cfg Config) (string, error) {
	site, err := url.Parse(cfg.Site)
	if err != nil {
		return "", errors.Join(ErrInvalidTokenURL, err)
	}
	if site.Scheme == "" || site.Host == "" {
		return "", ErrInvalidTokenURL
	}

	path, err := url.Parse(cfg.TokenPath)
	if err != nil {
		return "", errors.Join(ErrInvalidTokenURL, err)
	}
	return site.ResolveReference(path).String(), nil
}
