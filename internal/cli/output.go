package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/ogmi/internal/tui"
	"github.com/vvka-141/ogmi/pkg/ogmi"
	"github.com/vvka-141/ogmi/pkg/opengraph"
)

// Output formats accepted by --format.
const (
	formatText = "text"
	formatMeta = "meta"
	formatJSON = "json"
	formatYAML = "yaml"
)

var graphFormats = []string{formatText, formatMeta, formatJSON, formatYAML}

func checkFormat(format string, allowed ...string) error {
	for _, f := range allowed {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("unsupported format %q (expected one of %s): %w",
		format, strings.Join(allowed, ", "), ogmi.ErrInvalidConfig)
}

// writeGraph renders g in the requested format.
func writeGraph(w io.Writer, g *opengraph.OpenGraph, format string, styled bool) error {
	switch format {
	case formatText:
		_, err := io.WriteString(w, tui.RenderGraph(g.Snapshot(), styled))
		return err
	case formatMeta:
		_, err := fmt.Fprintln(w, g.String())
		return err
	default:
		return writeStructured(w, g.Snapshot(), format)
	}
}

// writeStructured encodes v as json or yaml.
func writeStructured(w io.Writer, v any, format string) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q: %w", format, ogmi.ErrInvalidConfig)
	}
}

// showGraph writes the graph, or opens the full-screen browser when browse
// is requested in an interactive terminal.
func showGraph(w io.Writer, g *opengraph.OpenGraph, format string, browse bool) error {
	interactive := tui.IsInteractive()
	if browse && interactive {
		title := g.Title()
		if title == "" {
			title = g.OriginalURL()
		}
		return tui.Browse(title, tui.RenderGraph(g.Snapshot(), true))
	}
	return writeGraph(w, g, format, interactive)
}
