// Package webhook delivers rendered documents to printer endpoints with a
// single HTTP POST per call.
//
// There are no retries. A 410 Gone answer is surfaced as ErrGone so callers
// can drop the subscription; every other non-2xx answer is ErrUnexpectedStatus.
//
// # Usage
//
//	sender := webhook.NewSenderWithClient(oauthClient)
//
//	res, err := sender.Send(ctx, endpoint, html, webhook.WithTimeout(10*time.Second))
//	switch {
//	case webhook.IsGone(err):
//	    // endpoint no longer exists
//	case err != nil:
//	    log.Warn("push failed", "status", res.StatusCode, "error", err)
//	}
//
// The body is sent as "text/html; charset=utf-8" unless WithContentType
// overrides it.
package webhook
