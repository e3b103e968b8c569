// Package config provides CLI command implementations for the config command group.
package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdkit/mdnew/internal/cmdtypes"
	"github.com/mdkit/mdnew/internal/config"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  `Configuration management for the mdnew CLI.`,
	}

	c.AddCommand(NewConfigInitCmd(cfg))
	c.AddCommand(NewConfigVetCmd(cfg))
	c.AddCommand(NewConfigViewCmd(cfg))

	return c
}

// configFilePath returns the expanded config file path for cfg.
func configFilePath(cfg *cmdtypes.GlobalConfig) (string, error) {
	configFile := cfg.ConfigPath()
	if configFile == "" {
		var err error
		configFile, err = config.GetConfigFile()
		if err != nil {
			return "", fmt.Errorf("getting config file path: %w", err)
		}
	}

	expandedPath, err := config.ExpandPath(configFile)
	if err != nil {
		return "", fmt.Errorf("expanding config path: %w", err)
	}
	return expandedPath, nil
}
