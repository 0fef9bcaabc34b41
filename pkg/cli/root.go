// Package cli implements the comicd command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "comicd",
	Short: "comicd is an in-memory comics catalog REST server",
	Long: `comicd serves a comics catalog over a REST API: CRUD, filtered and
paginated listing, bulk create/delete, keyword search, and aggregate
statistics. The catalog lives in process memory, seeded with three
comics; a restart resets it.

Configuration can be provided via flags or environment variables
(COMICD_PORT, COMICD_LOG_LEVEL, COMICD_LOG_FORMAT, ...).`,
	SilenceUsage:  true,
	SilenceErrors: true, // We handle errors in Execute()
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
