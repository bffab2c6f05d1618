package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vvka-141/ogmi/internal/config"
	"github.com/vvka-141/ogmi/internal/store"
	"github.com/vvka-141/ogmi/pkg/ogmi"
)

var historyCmd = &cobra.Command{
	Use:   "history <url>",
	Short: "List archived snapshots of a page",
	Long: `History lists the snapshots stored by "ogmi fetch --store" for a URL, newest
first. The URL must match the one passed to fetch.

Examples:
  ogmi history https://example.com/product
  ogmi history https://example.com/product --limit 5 --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runHistory,
}

type historyFlagValues struct {
	limit  int
	format string
}

var historyFlags historyFlagValues

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVarP(&historyFlags.limit, "limit", "n", ogmi.DefaultHistoryLimit,
		"Maximum number of snapshots to list")
	historyCmd.Flags().StringVarP(&historyFlags.format, "format", "f", formatText,
		"Output format: text|json|yaml")
}

func runHistory(cmd *cobra.Command, args []string) error {
	if err := checkFormat(historyFlags.format, formatText, formatJSON, formatYAML); err != nil {
		return err
	}
	if historyFlags.limit < 1 {
		return fmt.Errorf("--limit must be at least 1: %w", ogmi.ErrInvalidConfig)
	}

	cfg, err := loadProjectConfig(cmd)
	if err != nil {
		return err
	}
	retryCfg, err := cfg.RetryConfig()
	if err != nil {
		return err
	}
	storeCfg := ogmi.StoreConfig{DatabaseURL: cfg.DatabaseURL, Retry: retryCfg}
	if err := storeCfg.Validate(); err != nil {
		return fmt.Errorf("history requires database_url in %s or $%s: %w",
			config.ConfigFileName, config.EnvDatabaseURL, err)
	}

	ctx := commandContext(cmd)
	s, err := store.Open(ctx, storeCfg, store.WithLogger(newLogger(cmd)))
	if err != nil {
		return err
	}
	defer s.Close()

	records, err := s.History(ctx, args[0], historyFlags.limit)
	if err != nil {
		return err
	}
	return writeHistory(cmd, args[0], records, historyFlags.format)
}

func writeHistory(cmd *cobra.Command, url string, records []store.Record, format string) error {
	out := cmd.OutOrStdout()
	if format != formatText {
		if records == nil {
			records = []store.Record{}
		}
		return writeStructured(out, records, format)
	}

	if len(records) == 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "No snapshots stored for %s\n", url)
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FETCHED AT\tID\tCHECKSUM\tELEMENTS\tTITLE")
	for _, r := range records {
		sum := r.Checksum
		if len(sum) > 12 {
			sum = sum[:12]
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n",
			r.FetchedAt.UTC().Format("2006-01-02 15:04:05"), r.ID, sum, len(r.Snapshot.Elements), r.Snapshot.Title)
	}
	return tw.Flush()
}
