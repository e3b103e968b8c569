package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mdkit/mdnew/internal/cmdtypes"
	"github.com/mdkit/mdnew/internal/cmdutil"
	"github.com/mdkit/mdnew/internal/config"
	oerrors "github.com/mdkit/mdnew/internal/errors"
	"github.com/mdkit/mdnew/internal/output"
)

const configHeader = "# mdnew configuration\n# Environment variables MDNEW_* and command-line flags override these values.\n\n"

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a new mdnew configuration file",
		Long: `Create a new mdnew configuration file with default values.

The configuration file is created at ~/.mdnew/config.yaml by default.
Use --config flag to specify a different location.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runInit(c, cfg, force)
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config file")

	return c
}

func runInit(cmd *cobra.Command, cfg *cmdtypes.GlobalConfig, force bool) error {
	expandedPath, err := configFilePath(cfg)
	if err != nil {
		return cmdutil.ExitWith(err)
	}

	exists, err := config.FileExists(expandedPath)
	if err != nil {
		return cmdutil.ExitWith(fmt.Errorf("checking config file: %w", err))
	}
	if exists && !force {
		return cmdutil.ExitWith(oerrors.NewExistsError(
			fmt.Sprintf("config file already exists: %s", expandedPath),
			expandedPath,
			"Use --force to overwrite it.",
		))
	}

	if err := os.MkdirAll(filepath.Dir(expandedPath), 0o755); err != nil {
		return cmdutil.ExitWith(fmt.Errorf("creating config directory: %w", err))
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return cmdutil.ExitWith(fmt.Errorf("marshaling config: %w", err))
	}
	data = append([]byte(configHeader), data...)

	if err := os.WriteFile(expandedPath, data, 0o644); err != nil {
		return cmdutil.ExitWith(fmt.Errorf("writing config file: %w", err))
	}

	output.Debug("wrote config file", "path", expandedPath, "bytes", len(data))
	fmt.Fprintln(cmd.OutOrStdout(), output.FormatCheckmark("Config file created: "+expandedPath))
	return nil
}
