package cli

import (
	"github.com/spf13/cobra"

	"github.com/vvka-141/ogmi/pkg/opengraph"
)

var makeCmd = &cobra.Command{
	Use:   "make",
	Short: "Build Open Graph markup from literal values",
	Long: `Make builds a graph from the four required og elements plus optional ones and
prints it, by default as <meta> markup ready to paste into a page head.

--image and --url must be absolute URLs.

Examples:
  ogmi make --title "Widget" --type product \
    --image https://example.com/w.png --url https://example.com/w

  ogmi make --title "Widget" --type product \
    --image https://example.com/w.png --url https://example.com/w \
    --locale en_US --locale-alternate fr_FR --locale-alternate de_DE`,
	Args: cobra.NoArgs,
	RunE: runMake,
}

type makeFlagValues struct {
	title, typ, image, url           string
	description, siteName            string
	audio, video, locale, determiner string
	localeAlternates                 []string
	format                           string
}

var makeFlags makeFlagValues

func init() {
	rootCmd.AddCommand(makeCmd)

	makeCmd.Flags().StringVar(&makeFlags.title, "title", "", "og:title (required)")
	makeCmd.Flags().StringVar(&makeFlags.typ, "type", "", "og:type (required)")
	makeCmd.Flags().StringVar(&makeFlags.image, "image", "", "og:image, an absolute URL (required)")
	makeCmd.Flags().StringVar(&makeFlags.url, "url", "", "og:url, an absolute URL (required)")
	makeCmd.Flags().StringVar(&makeFlags.description, "description", "", "og:description")
	makeCmd.Flags().StringVar(&makeFlags.siteName, "site-name", "", "og:site_name")
	makeCmd.Flags().StringVar(&makeFlags.audio, "audio", "", "og:audio")
	makeCmd.Flags().StringVar(&makeFlags.video, "video", "", "og:video")
	makeCmd.Flags().StringVar(&makeFlags.locale, "locale", "", "og:locale")
	makeCmd.Flags().StringArrayVar(&makeFlags.localeAlternates, "locale-alternate", nil,
		"og:locale:alternate (repeatable)")
	makeCmd.Flags().StringVar(&makeFlags.determiner, "determiner", "", "og:determiner")
	makeCmd.Flags().StringVarP(&makeFlags.format, "format", "f", formatMeta,
		"Output format: meta|text|json|yaml")

	for _, name := range []string{"title", "type", "image", "url"} {
		_ = makeCmd.MarkFlagRequired(name)
	}
}

func runMake(cmd *cobra.Command, args []string) error {
	if err := checkFormat(makeFlags.format, graphFormats...); err != nil {
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

	g, err := opengraph.MakeGraph(makeFlags.title, makeFlags.typ, makeFlags.image, makeFlags.url,
		opengraph.WithGraphRegistry(reg),
		opengraph.WithDescription(makeFlags.description),
		opengraph.WithSiteName(makeFlags.siteName),
		opengraph.WithAudio(makeFlags.audio),
		opengraph.WithVideo(makeFlags.video),
		opengraph.WithLocale(makeFlags.locale),
		opengraph.WithLocaleAlternates(makeFlags.localeAlternates...),
		opengraph.WithDeterminer(makeFlags.determiner),
	)
	if err != nil {
		return err
	}

	return writeGraph(cmd.OutOrStdout(), g, makeFlags.format, false)
}
