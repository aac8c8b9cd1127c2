package oauth

// Mode selects how outbound requests are authenticated.
type Mode string

const (
	ModeOAuth1 Mode = "oauth1"
	ModeOAuth2 Mode = "oauth2"
)

// Config holds the credentials the publication was issued by the printer platform.
type Config struct {
	Mode Mode `env:"OAUTH_MODE" envDefault:"oauth1" yaml:"mode"` // Mode is "oauth1" (signed requests) or "oauth2" (client credentials).

	ConsumerKey    string `env:"BERGCLOUD_CONSUMER_TOKEN" yaml:"consumer_token"`
	ConsumerSecret string `env:"BERGCLOUD_CONSUMER_TOKEN_SECRET" yaml:"consumer_token_secret"`
	AccessToken    string `env:"BERGCLOUD_ACCESS_TOKEN" yaml:"access_token"`
	AccessSecret   string `env:"BERGCLOUD_ACCESS_TOKEN_SECRET" yaml:"access_token_secret"`

	Site      string `env:"BERGCLOUD_SITE" envDefault:"http://api.bergcloud.com" yaml:"site"` // Site is the platform base URL.
	TokenPath string `env:"OAUTH_TOKEN_PATH" envDefault:"/oauth/token" yaml:"token_path"`     // TokenPath is joined with Site in oauth2 mode.
}

// Validate reports missing credentials for the selected mode.
func (c Config) Validate() error {
	switch c.Mode {
	case ModeOAuth1, "":
		if c.ConsumerKey == "" || c.ConsumerSecret == "" {
			return ErrMissingConsumerCredentials
		}
		if c.AccessToken == "" || c.AccessSecret == "" {
			return ErrMissingAccessToken
		}
	case ModeOAuth2:
		if c.ConsumerKey == "" || c.ConsumerSecret == "" {
			return ErrMissingConsumerCredentials
		}
		if c.Site == "" {
			return ErrMissingSite
		}
	default:
		return ErrUnsupportedMode
	}
	return nil
}
