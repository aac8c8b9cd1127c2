package webhook

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultContentType is sent unless WithContentType overrides it.
const DefaultContentType = "text/html; charset=utf-8"

const userAgent = "publication-push/1.0"

// Sender POSTs documents to printer endpoints. Every Send is a single attempt.
// Zero value is not usable; use NewSender to create instances.
type Sender struct {
	client *http.Client
}

// NewSender creates a sender with a pooled default HTTP client.
func NewSender() *Sender {
	return &Sender{
		client: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// NewSenderWithClient creates a sender using client, typically one that signs
// requests with OAuth credentials.
func NewSenderWithClient(client *http.Client) *Sender {
	if client == nil {
		return NewSender()
	}
	return &Sender{client: client}
}

// Send POSTs payload to endpoint and returns the outcome.
// A 2xx answer returns a nil error. 410 returns an error matching ErrGone.
// Any other status returns ErrUnexpectedStatus; network failures return
// ErrDeliveryFailed or ErrTimeout. The result always carries the status code
// when a response was received.
//
// Example:
//
//	res, err := sender.Send(ctx, endpoint, html, webhook.WithTimeout(10*time.Second))
//	if webhook.IsGone(err) {
//		// remove the subscription
//	}
func (s *Sender) Send(ctx context.Context, endpoint string, payload []byte, opts ...SendOption) (DeliveryResult, error) {
	if err := validateInputs(endpoint, payload); err != nil {
		return DeliveryResult{Error: err}, err
	}

	options := defaultSendOptions()
	for _, opt := range opts {
		opt(options)
	}

	return s.attemptDelivery(ctx, endpoint, payload, options)
}

func validateInputs(endpoint string, payload []byte) error {
	if endpoint == "" {
		return fmt.Errorf("%w: URL is required", ErrInvalidURL)
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: only http and https schemes are supported", ErrInvalidURL)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: host is required", ErrInvalidURL)
	}

	if len(payload) == 0 {
		return fmt.Errorf("%w: payload cannot be empty", ErrInvalidPayload)
	}
	return nil
}

func (s *Sender) attemptDelivery(ctx context.Context, endpoint string, payload []byte, options *sendOptions) (DeliveryResult, error) {
	start := time.Now()
	result := DeliveryResult{}

	reqCtx, cancel := context.WithTimeout(ctx, options.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		result.Duration = time.Since(start)
		result.Error = fmt.Errorf("failed to create request: %w", err)
		return result, result.Error
	}

	req.Header.Set("Content-Type", options.contentType)
	req.Header.Set("User-Agent", userAgent)
	for k, v := range options.headers {
		req.Header.Set(k, v)
	}

	resp, err := s.client.Do(req)
	result.Duration = time.Since(start)
	if err != nil {
		if errors.Is(reqCtx.Err(), context.DeadlineExceeded) {
			result.Error = fmt.Errorf("%w: %w", ErrTimeout, err)
		} else {
			result.Error = fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
		}
		return result, result.Error
	}
	defer func() { _ = resp.Body.Close() }()

	result.StatusCode = resp.StatusCode
	result.Success = resp.StatusCode >= 200 && resp.StatusCode < 300

	// 64KB cap on the body kept for error context.
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024*64))

	if result.Success {
		return result, nil
	}

	sentinel := ErrUnexpectedStatus
	if result.StatusCode == http.StatusGone {
		sentinel = ErrGone
	}
	result.Error = fmt.Errorf("%w: status %d%s", sentinel, resp.StatusCode, bodySnippet(body))
	return result, result.Error
}

// bodySnippet sanitizes a response body for logging.
func bodySnippet(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	s := strings.ReplaceAll(string(body), "\n", " ")
	if len(s) > 200 {
		s = s[:200] + "..."
	}
	return ": " + s
}
