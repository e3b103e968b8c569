package config

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mdkit/mdnew/internal/cmdtypes"
	"github.com/mdkit/mdnew/internal/cmdutil"
	"github.com/mdkit/mdnew/internal/config"
)

// NewConfigViewCmd creates the config view command.
func NewConfigViewCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var sources bool

	c := &cobra.Command{
		Use:   "view",
		Short: "Show the effective configuration",
		Long: `Show the effective configuration as YAML.

Values are resolved with precedence flag > environment > config file > default.
Use --sources to print where each value came from.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runView(c, cfg, sources)
		},
	}

	c.Flags().BoolVar(&sources, "sources", false, "Show the source of each value")

	return c
}

func runView(cmd *cobra.Command, cfg *cmdtypes.GlobalConfig, sources bool) error {
	resolved := cfg.Resolved
	if resolved == nil {
		var err error
		resolved, err = config.ResolveAll(config.ResolveAllOptions{
			ConfigFlag: cfg.ConfigFlag,
			Config:     cfg.Config,
		})
		if err != nil {
			return cmdutil.ExitWith(err)
		}
	}

	w := cmd.OutOrStdout()

	if sources {
		rows := []struct {
			key string
			r   config.Resolved
		}{
			{"config", resolved.ConfigPath},
			{"toolchain.dir", resolved.ToolchainDir},
			{"toolchain.prefix", resolved.ToolchainPrefix},
			{"gdk.dir", resolved.GDKDir},
			{"templates.dir", resolved.TemplateDir},
			{"emulator.command", resolved.Emulator},
		}
		for _, row := range rows {
			fmt.Fprintf(w, "%-18s %-30s (%s)\n", row.key, row.r.Value, row.r.Source)
		}
		return nil
	}

	data, err := yaml.Marshal(resolved.Effective())
	if err != nil {
		return cmdutil.ExitWith(fmt.Errorf("marshaling config: %w", err))
	}
	_, err = w.Write(data)
	return err
}
