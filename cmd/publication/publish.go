package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/publication/pkg/config"
	"github.com/dmitrymomot/publication/pkg/document"
	"github.com/dmitrymomot/publication/pkg/oauth"
	"github.com/dmitrymomot/publication/pkg/webhook"
)

var publishCmd = &cobra.Command{
	Use:   "publish <endpoint>",
	Short: "POST one document to a subscription endpoint",
	Long: `Read an HTML document from stdin (or --file) and POST it, signed with the
configured OAuth credentials, to the given endpoint. Prints the response status.

Credentials come from the file given by --auth (consumer_token,
consumer_token_secret, access_token, access_token_secret, site) or from the
BERGCLOUD_* environment variables.

Example:
  publication publish http://api.bergcloud.com/v1/subscriptions/abc/publish < edition.html`,
	RunE: runPublish,
}

func init() {
	rootCmd.AddCommand(publishCmd)

	publishCmd.Flags().StringP("file", "f", "", "read the document from a file instead of stdin")
	publishCmd.Flags().String("auth", "", "YAML file with OAuth credentials")
}

func runPublish(cmd *cobra.Command, args []string) error {
	if len(args) == 0 || args[0] == "" {
		return ErrMissingEndpoint
	}
	endpoint := args[0]

	cfg, err := loadOAuthConfig(cmd)
	if err != nil {
		return err
	}

	content, err := readDocument(cmd)
	if err != nil {
		return err
	}

	client, err := oauth.NewClient(cmd.Context(), cfg, nil)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Pushing to %s\n", endpoint)

	res, err := webhook.NewSenderWithClient(client).Send(cmd.Context(), endpoint, content,
		webhook.WithContentType(document.ContentType),
	)
	if res.StatusCode != 0 {
		fmt.Fprintf(out, "response: %d\n", res.StatusCode)
		return nil
	}
	return err
}

func loadOAuthConfig(cmd *cobra.Command) (oauth.Config, error) {
	var cfg oauth.Config

	path, _ := cmd.Flags().GetString("auth")
	if path != "" {
		if err := config.LoadFile(path, &cfg); err != nil {
			return oauth.Config{}, err
		}
		return cfg, nil
	}

	if err := config.Load(&cfg); err != nil {
		return oauth.Config{}, err
	}
	return cfg, nil
}

func readDocument(cmd *cobra.Command) ([]byte, error) {
	path, _ := cmd.Flags().GetString("file")
	if path != "" {
		return os.ReadFile(path)
	}
	return io.ReadAll(cmd.InOrStdin())
}
