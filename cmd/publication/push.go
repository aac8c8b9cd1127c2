package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/publication/pkg/requestid"
)

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Push the edition to every subscriber once",
	Long: `Render a greeting for every stored subscription and POST it to the
subscriber's endpoint. Subscriptions whose endpoint answers 410 Gone are
removed. Suitable for running from cron.`,
	RunE: runPush,
}

func init() {
	rootCmd.AddCommand(pushCmd)
}

func runPush(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	ctx := requestid.Ensure(cmd.Context())
	dispatcher, err := a.dispatcher(ctx)
	if err != nil {
		return err
	}

	report, err := dispatcher.PushAll(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "delivered: %d\nremoved: %d\n", report.Delivered, report.Removed)
	return nil
}
