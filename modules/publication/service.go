package publication

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/publication/handler"
	"github.com/dmitrymomot/publication/pkg/binder"
	"github.com/dmitrymomot/publication/pkg/document"
	"github.com/dmitrymomot/publication/pkg/greeting"
	"github.com/dmitrymomot/publication/pkg/push"
	"github.com/dmitrymomot/publication/pkg/subscription"
)

// MsgMissingConfig is the 400 body for a validation request without a usable config.
const MsgMissingConfig = "You did not post any config to validate"

// Greeter composes greeting sentences.
type Greeter interface {
	Greet(lang, name string, pick greeting.Picker) (string, error)
}

// ConfigValidator validates and stores subscription configs.
type ConfigValidator interface {
	Validate(ctx context.Context, in subscription.Input) (subscription.Result, error)
}

// Pusher delivers the current edition to every subscriber.
type Pusher interface {
	PushAll(ctx context.Context) (push.Report, error)
}

// Service serves the publication endpoints the printer platform calls.
type Service struct {
	cfg          Config
	greeter      Greeter
	validator    ConfigValidator
	pusher       Pusher
	views        *Views
	errorHandler handler.ErrorHandler[handler.Context]
	now          func() time.Time
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

func WithViews(v *Views) ServiceOption {
	return func(s *Service) {
		if v != nil && v.PushPage != nil {
			s.views = v
		}
	}
}

func WithErrorHandler(h handler.ErrorHandler[handler.Context]) ServiceOption {
	return func(s *Service) {
		if h != nil {
			s.errorHandler = h
		}
	}
}

// WithClock overrides the time source used for the sample ETag.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService creates the publication service. Panics if a dependency is nil.
func NewService(cfg Config, greeter Greeter, validator ConfigValidator, pusher Pusher, opts ...ServiceOption) *Service {
	if greeter == nil || validator == nil || pusher == nil {
		panic("publication: greeter, validator and pusher are required")
	}

	defaults := DefaultConfig()
	if cfg.SampleName == "" {
		cfg.SampleName = defaults.SampleName
	}
	if cfg.SampleLanguage == "" {
		cfg.SampleLanguage = defaults.SampleLanguage
	}

	s := &Service{
		cfg:          cfg,
		greeter:      greeter,
		validator:    validator,
		pusher:       pusher,
		views:        DefaultViews(),
		errorHandler: handler.NewErrorHandler(nil),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(s.index,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))

	r.Get("/sample/", handler.Wrap(s.sample,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))

	r.Post("/validate_config/", handler.Wrap(s.validateConfig,
		handler.WithBinders[handler.Context, ValidateConfigRequest](binder.Form()),
		handler.WithErrorHandler[handler.Context, ValidateConfigRequest](s.errorHandler),
	))

	r.Get("/push/", handler.Wrap(s.pushForm,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))
	r.Post("/push/", handler.Wrap(s.pushAll,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))

	return r
}

func (s *Service) index(ctx handler.Context, _ struct{}) handler.Response {
	return handler.Text(http.StatusOK, Index)
}

// sample renders the edition shown when a user asks for a sample print.
// The entity tag changes once per UTC day.
func (s *Service) sample(ctx handler.Context, _ struct{}) handler.Response {
	etag := strconv.Quote(document.DailyETag(s.cfg.SampleLanguage, s.cfg.SampleName, s.now()))
	if etagMatches(ctx.Request().Header.Get("If-None-Match"), etag) {
		return handler.NotModified(etag)
	}

	sentence, err := s.greeter.Greet(s.cfg.SampleLanguage, s.cfg.SampleName, greeting.First)
	if err != nil {
		return failed(err)
	}

	return handler.Templ(document.Greeting(sentence), handler.WithHeader("ETag", etag))
}

// ValidateConfigRequest is posted by the printer platform when a user subscribes.
type ValidateConfigRequest struct {
	Config         string `form:"config"`
	Endpoint       string `form:"endpoint"`
	SubscriptionID string `form:"subscription_id"`
}

func (s *Service) validateConfig(ctx handler.Context, req ValidateConfigRequest) handler.Response {
	res, err := s.validator.Validate(ctx, subscription.Input{
		Config:         req.Config,
		Endpoint:       req.Endpoint,
		SubscriptionID: req.SubscriptionID,
	})
	switch {
	case errors.Is(err, subscription.ErrMissingConfig), errors.Is(err, subscription.ErrMalformedConfig):
		return handler.Text(http.StatusBadRequest, MsgMissingConfig)
	case err != nil:
		return failed(err)
	}

	return handler.JSON(res)
}

func (s *Service) pushForm(ctx handler.Context, _ struct{}) handler.Response {
	return handler.Templ(s.views.PushPage(PushPageParams{}))
}

func (s *Service) pushAll(ctx handler.Context, _ struct{}) handler.Response {
	// A run always reaches every subscriber, even if the caller goes away.
	report, err := s.pusher.PushAll(context.WithoutCancel(ctx))
	if err != nil {
		return failed(err)
	}

	return handler.Templ(s.views.PushPage(PushPageParams{
		Pushed:    true,
		Delivered: report.Delivered,
		Removed:   report.Removed,
	}))
}

// etagMatches implements the If-None-Match comparison, including "*" and weak tags.
func etagMatches(header, etag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimPrefix(strings.TrimSpace(candidate), "W/")
		if candidate == "*" || candidate == etag {
			return true
		}
	}
	return false
}

// errorResponse defers an error to the error handler.
type errorResponse struct{ err error }

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error { return e.err }

func failed(err error) handler.Response {
	return errorResponse{err: err}
}
