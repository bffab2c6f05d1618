package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/ogmi/internal/tui"
)

var namespacesCmd = &cobra.Command{
	Use:   "namespaces",
	Short: "List the known namespaces and their required elements",
	Long: `Namespaces prints the registry used by parse, fetch and make: the built-in og
namespace and ogp.me verticals plus any namespaces declared in ogmi.yaml.

Unknown prefixes are dropped during parsing unless the document binds them in its
head prefix attribute or an xmlns:* attribute.`,
	Args: cobra.NoArgs,
	RunE: runNamespaces,
}

var namespacesFormat string

type namespaceEntry struct {
	Prefix    string   `json:"prefix" yaml:"prefix"`
	SchemaURI string   `json:"schema_uri" yaml:"schema_uri"`
	Required  []string `json:"required,omitempty" yaml:"required,omitempty"`
}

func init() {
	rootCmd.AddCommand(namespacesCmd)
	namespacesCmd.Flags().StringVarP(&namespacesFormat, "format", "f", formatText,
		"Output format: text|json|yaml")
}

func runNamespaces(cmd *cobra.Command, args []string) error {
	if err := checkFormat(namespacesFormat, formatText, formatJSON, formatYAML); err != nil {
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

	entries := make([]namespaceEntry, 0, reg.Len())
	for _, ns := range reg.Namespaces() {
		entries = append(entries, namespaceEntry{
			Prefix:    ns.Prefix,
			SchemaURI: ns.SchemaURI,
			Required:  ns.RequiredElements(),
		})
	}

	out := cmd.OutOrStdout()
	if namespacesFormat != formatText {
		return writeStructured(out, entries, namespacesFormat)
	}

	styled := tui.IsInteractive()
	for _, e := range entries {
		prefix := e.Prefix + ":"
		if styled {
			prefix = tui.KeyStyle.Render(prefix)
		}
		fmt.Fprintf(out, "%s %s\n", prefix, e.SchemaURI)
		if len(e.Required) > 0 {
			fmt.Fprintf(out, "    required: %s\n", strings.Join(e.Required, ", "))
		}
	}
	return nil
}
