package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/ogmi/pkg/ogmi"
	"github.com/vvka-141/ogmi/pkg/opengraph"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file|-]",
	Short: "Extract Open Graph metadata from an HTML file",
	Long: `Parse reads an HTML document from a file, or from stdin when the argument is
omitted or "-", and prints its Open Graph tree.

Namespaces are taken from the head prefix attribute, then from xmlns:* attributes
on the html element, then default to og. Namespaces from ogmi.yaml are added to
the built-in registry.

Examples:
  # Print the tree of a saved page
  ogmi parse page.html

  # Re-render canonical <meta> markup from stdin
  curl -s https://example.com | ogmi parse --format meta

  # Fail (exit 12) when og:title, og:type, og:image or og:url is missing
  ogmi parse page.html --validate`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

type parseFlagValues struct {
	validate    bool
	format      string
	originalURL string
	browse      bool
}

var parseFlags parseFlagValues

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVar(&parseFlags.validate, "validate", false,
		"Require every required element of each namespace (default: validate from ogmi.yaml)")
	parseCmd.Flags().StringVarP(&parseFlags.format, "format", "f", formatText,
		"Output format: text|meta|json|yaml")
	parseCmd.Flags().StringVar(&parseFlags.originalURL, "url", "",
		"URL the document was retrieved from (recorded as original_url)")
	parseCmd.Flags().BoolVar(&parseFlags.browse, "browse", false,
		"Open the graph in a scrollable full-screen view (interactive terminals only)")
}

func runParse(cmd *cobra.Command, args []string) error {
	if err := checkFormat(parseFlags.format, graphFormats...); err != nil {
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

	content, err := readDocument(cmd, args)
	if err != nil {
		return err
	}

	logger := newLogger(cmd)
	g, err := opengraph.ParseHTML(content,
		opengraph.WithRegistry(reg),
		opengraph.WithLogger(logger),
		opengraph.WithValidation(resolveBool(cmd, "validate", parseFlags.validate, cfg.Validate)),
		opengraph.WithOriginalURL(parseFlags.originalURL),
	)
	if err != nil {
		return err
	}

	return showGraph(cmd.OutOrStdout(), g, parseFlags.format, parseFlags.browse)
}

// readDocument reads the file named by args[0], or stdin for "-" or no argument.
func readDocument(cmd *cobra.Command, args []string) (string, error) {
	var (
		r    io.Reader
		name = "stdin"
	)
	if len(args) == 0 || args[0] == "-" {
		r = cmd.InOrStdin()
	} else {
		name = args[0]
		f, err := os.Open(name)
		if err != nil {
			return "", fmt.Errorf("failed to open %s: %w", name, err)
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(io.LimitReader(r, ogmi.MaxDocumentSize+1))
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", name, err)
	}
	if len(data) > ogmi.MaxDocumentSize {
		return "", fmt.Errorf("%s exceeds %d bytes: %w", name, ogmi.MaxDocumentSize, ogmi.ErrInvalidConfig)
	}
	return string(data), nil
}

// resolveBool returns the flag value when set, otherwise flag || configured.
func resolveBool(cmd *cobra.Command, flag string, flagValue, configured bool) bool {
	if cmd.Flags().Changed(flag) {
		return flagValue
	}
	return flagValue || configured
}
