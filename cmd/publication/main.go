// Package main is the entry point for the publication binary.
//
// Usage:
//
//	publication serve                       # serve the publication endpoints
//	publication push                        # push the edition to every subscriber once
//	publication publish <endpoint> < doc    # POST one document to an endpoint
//	publication version                     # show version info
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Set at build time via -ldflags "-X main.version=1.0.0".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "publication",
	Short: "A greeting publication for networked printers",
	Long: `A small publication that greets each subscriber in their language.

Configuration is read from config.yml when present, otherwise from the
environment (and an optional .env file).`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "publication %s\n", version)
		fmt.Fprintf(out, "  commit: %s\n", commit)
		fmt.Fprintf(out, "  built:  %s\n", date)
	},
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", defaultConfigFile, "path to YAML config file, used when it exists")
	rootCmd.AddCommand(versionCmd)
}
