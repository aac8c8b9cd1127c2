// Package push delivers the greeting document to every stored subscription.
//
// Dispatcher.PushAll reads a snapshot of the subscription store and, for each
// entry in turn, renders a greeting in the subscriber's language and POSTs it
// to the subscriber's endpoint. An endpoint answering 410 Gone has its
// subscription deleted. Nothing is retried; failures are logged and reported
// per subscription without stopping the run.
//
//	d := push.NewDispatcher(store, greeting.Default(), sender,
//		push.WithTimeout(cfg.Timeout),
//		push.WithLogger(log),
//	)
//	report, err := d.PushAll(ctx)
package push
