package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vvka-141/ogmi/internal/config"
	"github.com/vvka-141/ogmi/internal/fetch"
	"github.com/vvka-141/ogmi/internal/store"
	"github.com/vvka-141/ogmi/internal/tui"
	"github.com/vvka-141/ogmi/pkg/ogmi"
	"github.com/vvka-141/ogmi/pkg/opengraph"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <url>",
	Short: "Fetch a page and extract its Open Graph metadata",
	Long: `Fetch retrieves a page over HTTP(S) and prints its Open Graph tree.

The request identifies itself as facebookexternalhit unless --user-agent is given,
since some sites only emit Open Graph tags for that crawler. gzip and deflate
responses are decoded, the charset is taken from the Content-Type header or a
<meta charset> tag, and transient failures (5xx, 429, network errors) are retried
with exponential backoff.

With --store the snapshot is archived in PostgreSQL (database_url in ogmi.yaml or
$OGMI_DATABASE_URL). Unchanged documents are not stored twice.

Examples:
  ogmi fetch https://open.spotify.com/album/5Fl6Zm8lrXLn4fW2k0Vd3Y
  ogmi fetch https://example.com --validate --format json
  ogmi fetch https://example.com --store`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

type fetchFlagValues struct {
	validate  bool
	userAgent string
	referrer  string
	timeout   time.Duration
	format    string
	store     bool
	browse    bool
}

var fetchFlags fetchFlagValues

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().BoolVar(&fetchFlags.validate, "validate", false,
		"Require every required element of each namespace (default: validate from ogmi.yaml)")
	fetchCmd.Flags().StringVar(&fetchFlags.userAgent, "user-agent", ogmi.DefaultUserAgent,
		"User-Agent header\n"+
			"Precedence: --user-agent > $OGMI_USER_AGENT > ogmi.yaml > default")
	fetchCmd.Flags().StringVar(&fetchFlags.referrer, "referrer", "",
		"Referer header sent with the request")
	fetchCmd.Flags().DurationVar(&fetchFlags.timeout, "timeout", ogmi.DefaultFetchTimeout,
		"Timeout for a single fetch attempt\n"+
			"Precedence: --timeout > $OGMI_TIMEOUT > ogmi.yaml > default\n"+
			"Examples: 10s, 1m")
	fetchCmd.Flags().StringVarP(&fetchFlags.format, "format", "f", formatText,
		"Output format: text|meta|json|yaml")
	fetchCmd.Flags().BoolVar(&fetchFlags.store, "store", false,
		"Archive the snapshot in PostgreSQL")
	fetchCmd.Flags().BoolVar(&fetchFlags.browse, "browse", false,
		"Open the graph in a scrollable full-screen view (interactive terminals only)")
}

func runFetch(cmd *cobra.Command, args []string) error {
	if err := checkFormat(fetchFlags.format, graphFormats...); err != nil {
		return err
	}

	cfg, err := loadProjectConfig(cmd)
	if err != nil {
		return err
	}
	reg, err := resolveRegistry(cfg)
	if err != nil {
		return err
	}
	timeout, err := resolveEffectiveTimeout(cmd, cfg, fetchFlags.timeout)
	if err != nil {
		return err
	}
	retryCfg, err := cfg.RetryConfig()
	if err != nil {
		return err
	}

	var storeCfg ogmi.StoreConfig
	if fetchFlags.store {
		storeCfg = ogmi.StoreConfig{DatabaseURL: cfg.DatabaseURL, Retry: retryCfg}
		if err := storeCfg.Validate(); err != nil {
			return fmt.Errorf("--store requires database_url in %s or $%s: %w",
				config.ConfigFileName, config.EnvDatabaseURL, err)
		}
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := newLogger(cmd)
	rawURL := args[0]
	opts := []opengraph.Option{
		opengraph.WithRegistry(reg),
		opengraph.WithLogger(logger),
		opengraph.WithValidation(resolveBool(cmd, "validate", fetchFlags.validate, cfg.Validate)),
		opengraph.WithFetcher(fetch.New(fetch.WithLogger(logger), fetch.WithRetry(retryCfg))),
		opengraph.WithUserAgent(resolveString(cmd, "user-agent", fetchFlags.userAgent, cfg.UserAgent)),
		opengraph.WithReferrer(resolveString(cmd, "referrer", fetchFlags.referrer, cfg.Referrer)),
		opengraph.WithTimeout(timeout),
	}

	g, err := tui.RunWithSpinner(ctx, "Fetching "+rawURL, "Fetched "+rawURL,
		func(ctx context.Context) (*opengraph.OpenGraph, error) {
			return opengraph.ParseURL(ctx, rawURL, opts...)
		})
	if err != nil {
		return err
	}

	if fetchFlags.store {
		if err := saveSnapshot(ctx, cmd, storeCfg, g, logger); err != nil {
			return err
		}
	}

	return showGraph(cmd.OutOrStdout(), g, fetchFlags.format, fetchFlags.browse)
}

func saveSnapshot(ctx context.Context, cmd *cobra.Command, cfg ogmi.StoreConfig, g *opengraph.OpenGraph, logger ogmi.Logger) error {
	s, err := store.Open(ctx, cfg, store.WithLogger(logger))
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.EnsureSchema(ctx); err != nil {
		return err
	}
	rec, inserted, err := s.Save(ctx, g)
	if err != nil {
		return err
	}

	if inserted {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s Stored snapshot %s\n", tui.SymbolCheck, rec.ID)
	} else {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s Snapshot unchanged since last fetch\n", tui.SymbolBullet)
	}
	return nil
}
