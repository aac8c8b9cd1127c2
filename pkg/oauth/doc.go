// Package oauth builds the authenticated HTTP client used to deliver
// documents to the printer platform.
//
// The platform issues a consumer key/secret pair to the publication and an
// access token/secret pair for it. By default requests are signed with
// OAuth 1.0a. Setting Mode to "oauth2" switches to the client-credentials
// grant, using the consumer pair as client id and secret.
//
//	client, err := oauth.NewClient(ctx, cfg, nil)
//	if err != nil {
//		return err
//	}
//	sender := webhook.NewSenderWithClient(client)
package oauth
