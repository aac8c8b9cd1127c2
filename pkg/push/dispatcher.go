package push

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dmitrymomot/publication/pkg/document"
	"github.com/dmitrymomot/publication/pkg/greeting"
	"github.com/dmitrymomot/publication/pkg/logger"
	"github.com/dmitrymomot/publication/pkg/subscription"
	"github.com/dmitrymomot/publication/pkg/webhook"
)

// Store is the part of the subscription store the dispatcher needs.
type Store interface {
	All(ctx context.Context) ([]subscription.Entry, error)
	Delete(ctx context.Context, id string) error
}

// Greeter composes the greeting sentence for a subscriber.
type Greeter interface {
	Greet(lang, name string, pick greeting.Picker) (string, error)
}

// Sender performs one POST of a rendered document.
type Sender interface {
	Send(ctx context.Context, endpoint string, payload []byte, opts ...webhook.SendOption) (webhook.DeliveryResult, error)
}

// Result is the outcome for one subscription.
type Result struct {
	SubscriptionID string
	Endpoint       string
	StatusCode     int
	Removed        bool
	Duration       time.Duration
	Err            error
}

// Report summarises one PushAll run. Delivered + Removed equals len(Results).
type Report struct {
	Delivered int
	Removed   int
	Results   []Result
}

// Dispatcher pushes a freshly rendered document to every subscriber.
type Dispatcher struct {
	store   Store
	greeter Greeter
	sender  Sender
	pick    greeting.Picker
	timeout time.Duration
	logger  *slog.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithTimeout bounds every outbound POST. Default is 10 seconds.
func WithTimeout(d time.Duration) Option {
	return func(p *Dispatcher) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// WithPicker overrides the greeting policy. Default is greeting.Random.
func WithPicker(pick greeting.Picker) Option {
	return func(p *Dispatcher) {
		if pick != nil {
			p.pick = pick
		}
	}
}

// WithLogger sets the logger for per-subscription outcomes.
func WithLogger(l *slog.Logger) Option {
	return func(p *Dispatcher) {
		if l != nil {
			p.logger = l
		}
	}
}

// NewDispatcher creates a Dispatcher. Panics if any dependency is nil.
func NewDispatcher(store Store, greeter Greeter, sender Sender, opts ...Option) *Dispatcher {
	if store == nil || greeter == nil || sender == nil {
		panic("push: store, greeter and sender are required")
	}

	p := &Dispatcher{
		store:   store,
		greeter: greeter,
		sender:  sender,
		pick:    greeting.Random,
		timeout: 10 * time.Second,
		logger:  logger.Discard(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.With(logger.Component("push"))
	return p
}

// PushAll delivers to a snapshot of the store, one subscription at a time.
// A 410 answer removes the subscription and counts it as removed; every
// other outcome, failures included, counts as delivered and is recorded in
// the matching Result. The only error returned is a failure to read the
// snapshot.
func (p *Dispatcher) PushAll(ctx context.Context) (Report, error) {
	entries, err := p.store.All(ctx)
	if err != nil {
		return Report{}, errors.Join(ErrLoadSubscriptions, err)
	}

	report := Report{Results: make([]Result, 0, len(entries))}
	for _, entry := range entries {
		res := p.push(ctx, entry)
		if res.Removed {
			report.Removed++
		} else {
			report.Delivered++
		}
		report.Results = append(report.Results, res)
		p.log(ctx, res)
	}

	p.logger.InfoContext(ctx, "push finished",
		slog.Int("delivered", report.Delivered),
		slog.Int("removed", report.Removed),
	)
	return report, nil
}

func (p *Dispatcher) push(ctx context.Context, entry subscription.Entry) Result {
	sub := entry.Subscription
	res := Result{SubscriptionID: sub.ID, Endpoint: sub.Endpoint}
	if entry.Err != nil {
		res.Err = entry.Err
		return res
	}

	sentence, err := p.greeter.Greet(sub.Language, sub.Name, p.pick)
	if err != nil {
		res.Err = errors.Join(ErrGreeting, err)
		return res
	}

	body, err := document.Bytes(ctx, sentence)
	if err != nil {
		res.Err = errors.Join(ErrRender, err)
		return res
	}

	delivery, err := p.sender.Send(ctx, sub.Endpoint, body,
		webhook.WithTimeout(p.timeout),
		webhook.WithContentType(document.ContentType),
	)
	res.StatusCode = delivery.StatusCode
	res.Duration = delivery.Duration

	if !webhook.IsGone(err) {
		res.Err = err
		return res
	}

	if err := p.store.Delete(ctx, sub.ID); err != nil {
		res.Err = errors.Join(ErrRemove, err)
		return res
	}
	res.Removed = true
	return res
}

func (p *Dispatcher) log(ctx context.Context, res Result) {
	attrs := []any{
		logger.SubscriptionID(res.SubscriptionID),
		logger.Endpoint(res.Endpoint),
		logger.StatusCode(res.StatusCode),
		logger.Duration(res.Duration),
	}

	switch {
	case res.Removed:
		p.logger.InfoContext(ctx, "subscription gone, removed", attrs...)
	case res.Err != nil:
		p.logger.WarnContext(ctx, "push failed", append(attrs, logger.Error(res.Err))...)
	default:
		p.logger.DebugContext(ctx, "document delivered", attrs...)
	}
}
