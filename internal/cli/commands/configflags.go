package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/schedtrace/tracesplit/pkg/config"
)

// ConfigFlags are the configuration flags shared by split and check.
type ConfigFlags struct {
	ConfigFile string
	Mode       string
}

func (f *ConfigFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.ConfigFile, "config", "c", "", "Configuration file (.yaml, .yml or .toml)")
	cmd.Flags().StringVar(&f.Mode, "mode", "", "Grouping mode (bucket|process)")
}

// load reads the config file if one was given, otherwise the defaults plus
// environment, then applies flag overrides and validates the result.
func (f *ConfigFlags) load(ctx context.Context, cmd *cobra.Command, overrides ...func(*config.Config)) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if f.ConfigFile != "" {
		cfg, err = config.Load(ctx, f.ConfigFile)
	} else {
		cfg, err = config.FromEnvironment()
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if cmd.Flags().Changed("mode") {
		cfg.Mode = config.Mode(f.Mode)
	}
	for _, override := range overrides {
		override(cfg)
	}

	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	return cfg, nil
}
