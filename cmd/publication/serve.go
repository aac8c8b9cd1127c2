package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/publication/handler"
	"github.com/dmitrymomot/publication/modules/publication"
	"github.com/dmitrymomot/publication/pkg/httpserver"
	"github.com/dmitrymomot/publication/pkg/subscription"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the publication endpoints",
	Long: `Serve the sample edition, subscription validation and push endpoints.

The server runs until interrupted (Ctrl+C) or it receives SIGTERM.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	cmd.SetContext(ctx)

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	dispatcher, err := a.dispatcher(ctx)
	if err != nil {
		return err
	}

	svc := publication.NewService(a.cfg.Publication, a.greetings,
		subscription.NewValidator(a.greetings, a.store), dispatcher,
		publication.WithErrorHandler(handler.NewErrorHandler(a.log)),
	)

	router := publication.Router(publication.RouterOptions{
		Publication: svc,
		Health:      publication.NewHealthService(a.log, a.ready),
		Logger:      a.log,
	})

	srv := httpserver.NewFromConfig(a.cfg.HTTP, httpserver.WithLogger(a.log))
	return srv.Run(ctx, router)
}
