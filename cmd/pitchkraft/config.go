package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/pitchkraft/internal/config"
)

// flagOverride copies a flag value into cfg when the flag was set explicitly.
type flagOverride struct {
	name  string
	apply func(cfg *config.Config)
}

// resolveConfig layers CLI flags over the config file, then the environment,
// then built-in defaults.
func resolveConfig(cmd *cobra.Command, overrides ...flagOverride) (config.Config, error) {
	var cfg config.Config
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	for _, o := range overrides {
		if cmd.Flags().Changed(o.name) {
			o.apply(&cfg)
		}
	}

	env := config.FromEnv()
	env = env.MergeWithDefaults(config.Defaults())
	cfg = cfg.MergeWithDefaults(env)

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
