// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mdkit/mdnew/internal/cmd/config"
	"github.com/mdkit/mdnew/internal/cmdtypes"
	"github.com/mdkit/mdnew/internal/cmdutil"
	mdconfig "github.com/mdkit/mdnew/internal/config"
	"github.com/mdkit/mdnew/internal/output"
)

// NewRootCmd creates the root command for the mdnew CLI.
// The root command itself generates a project; everything else hangs off it
// as a subcommand.
func NewRootCmd() *cobra.Command {
	var (
		configFlag     string
		verboseFlag    bool
		timestampsFlag bool
		genFlags       cmdutil.GeneratorFlags
	)

	cfg := &cmdtypes.GlobalConfig{}

	rootCmd := &cobra.Command{
		Use:   "mdnew <project_name> [project_directory]",
		Short: "Scaffold SGDK projects for the Sega Mega Drive",
		Long: `mdnew creates a ready-to-build SGDK project for the Sega Mega Drive.

The project is created as <project_directory>/<project_name> and contains:
  boot/        Startup code and ROM header copied from the template directory
  src/ inc/ res/
  main.c       Entry point printing a welcome message
  Makefile     Build, clean, test and run targets
  README.md
  .gitignore

The project name must start with a letter or underscore and may contain
letters, digits, '_' and '-'. project_directory defaults to the current
directory and must already exist.

Examples:
  # Create ./shmup
  mdnew shmup

  # Create ~/dev/md/shmup using a custom template directory
  mdnew shmup ~/dev/md -t ~/dev/md/template

  # Names that match a subcommand (build, run, config, templates, version,
  # help) need "--" before them; flags go before the "--"
  mdnew -t ~/dev/md/template -- run ~/dev/md`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			cfg.ConfigFlag = configFlag
			cfg.Verbose = verboseFlag
			return initializeGlobals(c, cfg, &genFlags, timestampsFlag)
		},
		RunE: func(c *cobra.Command, args []string) error {
			return runGenerate(c, args, cfg, genFlags.Git)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Path to config file (env: MDNEW_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")

	genFlags.AddTo(rootCmd)

	// "completion" would shadow a project of that name.
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(config.NewConfigCmd(cfg))
	rootCmd.AddCommand(NewBuildCmd(cfg))
	rootCmd.AddCommand(NewRunCmd(cfg))
	rootCmd.AddCommand(NewTemplatesCmd(cfg))
	rootCmd.AddCommand(NewVersionCmd(cfg))

	return rootCmd
}

// initializeGlobals loads configuration, resolves every setting and sets up logging.
func initializeGlobals(cmd *cobra.Command, cfg *cmdtypes.GlobalConfig, gen *cmdutil.GeneratorFlags, timestamps bool) error {
	// A broken config file must not block commands that can run on defaults;
	// `config vet` reports the details.
	fileCfg, loadErr := mdconfig.NewLoader().Load(cfg.ConfigFlag)
	if loadErr != nil {
		fileCfg = &mdconfig.Config{}
	}
	cfg.Config = fileCfg

	resolved, err := mdconfig.ResolveAll(mdconfig.ResolveAllOptions{
		ConfigFlag:      cfg.ConfigFlag,
		ToolchainFlag:   gen.Toolchain,
		GDKFlag:         gen.GDK,
		TemplateDirFlag: gen.TemplateDir,
		EmulatorFlag:    cmdutil.StringFlag(cmd, "emulator"),
		Config:          fileCfg,
	})
	if err != nil {
		return cmdutil.ExitWith(err)
	}
	cfg.Resolved = resolved

	// Timestamps: flag (if explicitly set) > config > default (nil = true)
	logCfg := output.LogConfig{Verbose: cfg.Verbose}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestamps)
	} else if fileCfg.Log.Timestamps != nil {
		logCfg.Timestamps = fileCfg.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	if loadErr != nil {
		output.Warn("ignoring config file", "error", loadErr)
	}

	output.Debug("initializing CLI",
		"config", resolved.ConfigPath.Value,
		"toolchain", resolved.ToolchainDir.Value,
		"toolchain-source", resolved.ToolchainDir.Source,
		"prefix", resolved.ToolchainPrefix.Value,
		"gdk", resolved.GDKDir.Value,
		"gdk-source", resolved.GDKDir.Source,
		"template-dir", resolved.TemplateDir.Value,
		"template-dir-source", resolved.TemplateDir.Source,
		"emulator", resolved.Emulator.Value,
	)

	return nil
}
