package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vvka-141/ogmi/internal/config"
	"github.com/vvka-141/ogmi/internal/tui"
)

const widgetHTML = `<!DOCTYPE html>
<html><head>
<title>Widget</title>
<meta property="og:title" content="Widget">
<meta property="og:type" content="product">
<meta property="og:image" content="https://example.com/w.png">
<meta property="og:image:width" content="300">
<meta property="og:url" content="https://example.com/w">
<meta property="gah:pea_brain:size" content="small">
</head><body></body></html>`

const widgetMeta = `<meta property="og:title" content="Widget">` +
	`<meta property="og:type" content="product">` +
	`<meta property="og:image" content="https://example.com/w.png">` +
	`<meta property="og:image:width" content="300">` +
	`<meta property="og:url" content="https://example.com/w">` + "\n"

const gahConfig = `namespaces:
  - prefix: gah
    uri: http://www.geoffhorsey.com/ogp/pea_brain#
    required: [pea_brain:size]
`

// resetFlags restores every flag of cmd and its subcommands to its default
// so that command tests do not leak state through the shared rootCmd.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// executeCommand runs rootCmd with args and returns stdout and stderr.
func executeCommand(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	return executeCommandEnv(t, stdin, nil, args...)
}

// executeCommandEnv is executeCommand with OGMI_* variables taken from env
// instead of the surrounding environment.
func executeCommandEnv(t *testing.T, stdin string, env map[string]string, args ...string) (string, string, error) {
	t.Helper()

	t.Setenv(tui.EnvNonInteractive, "1")
	for _, name := range []string{config.EnvUserAgent, config.EnvTimeout, config.EnvDatabaseURL} {
		t.Setenv(name, env[name])
	}
	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}
