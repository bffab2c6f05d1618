package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/ogmi/internal/config"
	"github.com/vvka-141/ogmi/pkg/ogmi"
	"github.com/vvka-141/ogmi/pkg/opengraph"
)

// loadProjectConfig loads .env and the project configuration, then applies
// OGMI_* environment overrides. A missing ./ogmi.yaml yields an empty
// config; a missing file named by --config is an error.
func loadProjectConfig(cmd *cobra.Command) (*config.ProjectConfig, error) {
	_ = godotenv.Load()

	path, _ := cmd.Flags().GetString("config")
	cfg, err := readProjectConfig(path)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv(os.Getenv)
	return cfg, nil
}

func readProjectConfig(path string) (*config.ProjectConfig, error) {
	if path == "" {
		cfg, err := config.Load(".")
		if errors.Is(err, config.ErrConfigNotFound) {
			return &config.ProjectConfig{}, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w: %w", config.ConfigFileName, ogmi.ErrInvalidConfig, err)
		}
		return cfg, nil
	}

	var (
		cfg *config.ProjectConfig
		err error
	)
	if info, statErr := os.Stat(path); statErr == nil && info.IsDir() {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.LoadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w: %w", path, ogmi.ErrInvalidConfig, err)
	}
	return cfg, nil
}

// resolveEffectiveTimeout returns the --timeout flag when set, otherwise the
// configured timeout (ogmi.yaml or OGMI_TIMEOUT), otherwise the flag default.
func resolveEffectiveTimeout(cmd *cobra.Command, cfg *config.ProjectConfig, flagTimeout time.Duration) (time.Duration, error) {
	if cmd.Flags().Changed("timeout") || cfg.Timeout == "" {
		return flagTimeout, nil
	}
	return cfg.TimeoutDuration()
}

// resolveString returns the flag value when set, otherwise the configured one.
func resolveString(cmd *cobra.Command, flag, flagValue, configured string) string {
	if cmd.Flags().Changed(flag) || configured == "" {
		return flagValue
	}
	return configured
}

// resolveRegistry returns the default registry extended with the configured namespaces.
func resolveRegistry(cfg *config.ProjectConfig) (*opengraph.Registry, error) {
	return cfg.Registry(opengraph.DefaultRegistry())
}
