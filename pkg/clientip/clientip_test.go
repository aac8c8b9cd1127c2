package clientip_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/publication/pkg/clientip"
	"github.com/dmitrymomot/publication/pkg/logger"
)

func TestGetIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		want       string
	}{
		{name: "remote addr", remoteAddr: "192.0.2.10:4242", want: "192.0.2.10"},
		{name: "remote addr without port", remoteAddr: "192.0.2.11", want: "192.0.2.11"},
		{
			name:       "forwarded for first valid",
			headers:    map[string]string{"X-Forwarded-For": "garbage, 203.0.113.5, 10.0.0.1"},
			remoteAddr: "10.0.0.2:80",
			want:       "203.0.113.5",
		},
		{
			name:       "real ip",
			headers:    map[string]string{"X-Real-IP": " 198.51.100.7 "},
			remoteAddr: "10.0.0.2:80",
			want:       "198.51.100.7",
		},
		{
			name:       "forwarded for wins over real ip",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.5", "X-Real-IP": "198.51.100.7"},
			remoteAddr: "10.0.0.2:80",
			want:       "203.0.113.5",
		},
		{
			name:       "invalid headers fall back",
			headers:    map[string]string{"X-Forwarded-For": "nope", "X-Real-IP": "also-nope"},
			remoteAddr: "[2001:db8::1]:443",
			want:       "2001:db8::1",
		},
		{name: "unparseable", remoteAddr: "pipe", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, clientip.GetIP(req))
		})
	}
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	var got string
	h := clientip.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = clientip.FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodPost, "/validate_config/", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "203.0.113.9", got)
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithFormat(logger.FormatJSON),
		logger.WithContextExtractors(clientip.LoggerExtractor()),
	)

	log.InfoContext(clientip.WithContext(context.Background(), "203.0.113.9"), "hello")
	assert.Contains(t, buf.String(), `"client_ip":"203.0.113.9"`)

	buf.Reset()
	log.InfoContext(context.Background(), "hello")
	assert.NotContains(t, buf.String(), "client_ip")
}
