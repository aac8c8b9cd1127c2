package webhook

import "time"

// DeliveryResult describes a single POST to an endpoint.
type DeliveryResult struct {
	Success    bool
	StatusCode int
	Duration   time.Duration
	Error      error
}

type sendOptions struct {
	timeout     time.Duration
	contentType string
	headers     map[string]string
}

func defaultSendOptions() *sendOptions {
	return &sendOptions{
		timeout:     10 * time.Second,
		contentType: DefaultContentType,
		headers:     make(map[string]string),
	}
}

// SendOption is a functional option for configuring a send.
type SendOption func(*sendOptions)

// WithTimeout sets the request timeout. Default is 10 seconds.
func WithTimeout(timeout time.Duration) SendOption {
	return func(o *sendOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithContentType overrides the Content-Type header.
func WithContentType(contentType string) SendOption {
	return func(o *sendOptions) {
		if contentType != "" {
			o.contentType = contentType
		}
	}
}

// WithHeader adds a custom header to the request.
func WithHeader(key, value string) SendOption {
	return func(o *sendOptions) {
		if key != "" && value != "" {
			o.headers[key] = value
		}
	}
}
