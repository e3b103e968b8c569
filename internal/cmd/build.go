package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mdkit/mdnew/internal/cmdtypes"
	"github.com/mdkit/mdnew/internal/cmdutil"
	"github.com/mdkit/mdnew/internal/output"
	"github.com/mdkit/mdnew/internal/runner"
)

// NewBuildCmd creates the build command.
func NewBuildCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var (
		debugFlag bool
		makeFlag  string
	)

	c := &cobra.Command{
		Use:   "build [project_dir]",
		Short: "Build a generated project",
		Long: `Build a generated project by running its Makefile.

Runs 'make release' (or 'make debug' with --debug) in project_dir, which
defaults to the current directory. The ROM is written to out/<name>.bin.

Examples:
  # Build the project in the current directory
  mdnew build

  # Debug build of ./shmup
  mdnew build shmup --debug`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runBuild(c, args, cfg, runner.New(), makeFlag, debugFlag)
		},
	}

	c.Flags().BoolVar(&debugFlag, "debug", false, "Build the debug profile")
	c.Flags().StringVar(&makeFlag, "make", "make", "make executable to invoke")

	return c
}

func runBuild(cmd *cobra.Command, args []string, cfg *cmdtypes.GlobalConfig, r *runner.Runner, makeBin string, debug bool) error {
	ref, err := cmdutil.ResolveProject(args)
	if err != nil {
		return cmdutil.ExitWith(err)
	}

	target := "release"
	if debug {
		target = "debug"
	}

	buildCmd := runner.Command{
		Name: makeBin,
		Args: []string{target},
		Dir:  ref.Dir,
	}
	// Verbose builds stream make's output instead of hiding it behind the spinner.
	if cfg.Verbose {
		buildCmd.Stdout = cmd.ErrOrStderr()
	}

	logger := output.ProjectLogger(ref.Name)
	logger.Debug("building", "command", buildCmd.String(), "dir", ref.Dir)

	action := func(ctx context.Context) error {
		_, err := r.Run(ctx, buildCmd)
		return err
	}

	if cfg.Verbose {
		err = action(cmd.Context())
	} else {
		err = output.RunWithSpinner(cmd.Context(), action,
			output.WithTitle(fmt.Sprintf("Building %s (%s)...", ref.Name, target)))
	}
	if err != nil {
		if !cfg.Verbose && cmdutil.PrintRunFailure(cmd.ErrOrStderr(), err) {
			return cmdutil.ExitPrinted(err)
		}
		return cmdutil.ExitWith(err)
	}

	rom := ref.ROMPath()
	msg := fmt.Sprintf("Built %s", output.StyleNoun.Render(ref.Name))
	if _, statErr := os.Stat(rom); statErr == nil {
		rel, relErr := filepath.Rel(ref.Dir, rom)
		if relErr != nil {
			rel = rom
		}
		msg += " → " + filepath.ToSlash(rel)
	} else {
		logger.Warn("build finished but ROM not found", "path", rom)
	}
	fmt.Fprintln(cmd.OutOrStdout(), output.FormatCheckmark(msg))

	return nil
}
