package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/ogmi/internal/logging"
)

const asciiLogo = `                 _
  ___   __ _ _ __ ___ (_)
 / _ \ / _' | '_ ' _ \| |
| (_) | (_| | | | | | | |
 \___/ \__, |_| |_| |_|_|
       |___/`

var rootCmd = &cobra.Command{
	Use:   "ogmi",
	Short: "Open Graph metadata extraction and validation",
	Long: asciiLogo + `

ogmi reads the Open Graph <meta> tags of an HTML document, resolves their
namespaces and groups structured properties (og:image:width, og:locale:alternate)
under the element they describe. Graphs can be validated against the required
elements of each namespace, rendered back to canonical markup, and archived in
PostgreSQL to track how a page's metadata changes over time.

Configuration is read from ogmi.yaml in the working directory (or --config),
then OGMI_USER_AGENT, OGMI_TIMEOUT and OGMI_DATABASE_URL, then flags.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or parameters
  11 - Document could not be fetched
  12 - Required Open Graph element missing (--validate)
  13 - Graph could not be built (make)
  14 - Snapshot store unavailable or no snapshot found`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().String("config", "",
		"Path to ogmi.yaml or the directory containing it (default: ./ogmi.yaml when present)")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}

func newLogger(cmd *cobra.Command) *logging.ConsoleLogger {
	return logging.NewConsoleLoggerTo(cmd.ErrOrStderr(), getVerboseFlag(cmd))
}

// commandContext returns the command's context, which is nil when a RunE
// function is invoked directly rather than through Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
