package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mdkit/mdnew/internal/cmdtypes"
	"github.com/mdkit/mdnew/internal/cmdutil"
	mdconfig "github.com/mdkit/mdnew/internal/config"
	oerrors "github.com/mdkit/mdnew/internal/errors"
	"github.com/mdkit/mdnew/internal/output"
	"github.com/mdkit/mdnew/internal/runner"
)

// NewRunCmd creates the run command.
func NewRunCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var romFlag string

	c := &cobra.Command{
		Use:   "run [project_dir]",
		Short: "Run a built project in an emulator",
		Long: `Launch the configured emulator on a project's ROM.

The ROM defaults to <project_dir>/out/<name>.bin, where name is the base name
of project_dir. The emulator is resolved from --emulator, MDNEW_EMULATOR,
emulator.command in the config file, or blastem. emulator.args from the
config file are passed before the ROM path.

Examples:
  # Run the project in the current directory
  mdnew run

  # Run with a different emulator
  mdnew run shmup --emulator gens`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runRun(c, args, cfg, runner.New(), romFlag)
		},
	}

	// Read back by initializeGlobals through the resolver.
	c.Flags().String("emulator", "", "Emulator command (env: MDNEW_EMULATOR)")
	c.Flags().StringVar(&romFlag, "rom", "", "ROM to load (default: out/<name>.bin)")

	return c
}

func runRun(cmd *cobra.Command, args []string, cfg *cmdtypes.GlobalConfig, r *runner.Runner, rom string) error {
	ref, err := cmdutil.ResolveProject(args)
	if err != nil {
		return cmdutil.ExitWith(err)
	}

	if rom == "" {
		rom = ref.ROMPath()
	}
	if _, err := os.Stat(rom); err != nil {
		return cmdutil.ExitWith(oerrors.NewNotFoundError(
			fmt.Sprintf("ROM not found: %s", rom),
			rom,
			fmt.Sprintf("Build it first with 'mdnew build %s'.", ref.Dir),
		))
	}

	emulator := mdconfig.DefaultEmulator
	var emuArgs []string
	if cfg.Resolved != nil {
		emulator = cfg.Resolved.Emulator.Value
		emuArgs = append(emuArgs, cfg.Resolved.EmulatorArgs...)
	}

	runCmd := runner.Command{
		Name: emulator,
		Args: append(emuArgs, rom),
		Dir:  ref.Dir,
	}

	output.ProjectLogger(ref.Name).Info("launching emulator", "command", runCmd.String())

	err = output.RunWithSpinner(cmd.Context(), func(ctx context.Context) error {
		_, err := r.Run(ctx, runCmd)
		return err
	}, output.WithTitle(fmt.Sprintf("Running %s in %s...", ref.Name, emulator)))
	if err != nil {
		if cmdutil.PrintRunFailure(cmd.ErrOrStderr(), err) {
			return cmdutil.ExitPrinted(err)
		}
		return cmdutil.ExitWith(err)
	}

	return nil
}
