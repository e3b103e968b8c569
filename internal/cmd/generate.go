package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gertd/go-pluralize"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/mdkit/mdnew/internal/cmdtypes"
	"github.com/mdkit/mdnew/internal/cmdutil"
	"github.com/mdkit/mdnew/internal/output"
	"github.com/mdkit/mdnew/internal/project"
	"github.com/mdkit/mdnew/internal/version"
)

var plural = pluralize.NewClient()

func runGenerate(cmd *cobra.Command, args []string, cfg *cmdtypes.GlobalConfig, initGit bool) error {
	opts := project.GenerateOptions{
		Name:             args[0],
		GeneratorVersion: version.Version,
		InitGit:          initGit,
	}
	if len(args) > 1 {
		opts.TargetDir = args[1]
	}
	if r := cfg.Resolved; r != nil {
		opts.TemplateDir = r.TemplateDir.Value
		opts.ToolchainDir = r.ToolchainDir.Value
		opts.ToolchainPrefix = r.ToolchainPrefix.Value
		opts.GDKDir = r.GDKDir.Value
		opts.Emulator = r.Emulator.Value
		opts.EmulatorArgs = r.EmulatorArgs
	}

	result, err := project.NewGenerator(opts).Generate()
	if err != nil {
		return cmdutil.ExitWith(err)
	}

	writeSummary(cmd.OutOrStdout(), result)
	return nil
}

// writeSummary prints the created tree, totals and next steps.
func writeSummary(w io.Writer, result *project.GenerateResult) {
	fmt.Fprintln(w, output.FormatCheckmark(
		fmt.Sprintf("Created project %s in %s", output.StyleNoun.Render(result.Name), result.ProjectDir)))
	fmt.Fprintln(w)

	entries := make([]output.FileEntry, 0, len(result.Dirs)+len(result.Files))
	for _, d := range result.Dirs {
		entries = append(entries, output.FileEntry{Path: d, IsDir: true})
	}
	for _, f := range result.Files {
		entries = append(entries, output.FileEntry{Path: f.Path, Description: f.Description})
	}
	fmt.Fprint(w, output.RenderFileTree(result.Name, entries))
	fmt.Fprintln(w)

	totals := fmt.Sprintf("Wrote %s (%s)",
		plural.Pluralize("file", len(result.Files), true),
		humanize.Bytes(uint64(result.TotalSize())))
	if n := len(result.Warnings); n > 0 {
		totals += output.StyleWarning.Render(fmt.Sprintf(" with %s", plural.Pluralize("warning", n, true)))
	}
	fmt.Fprintln(w, totals)

	for _, warn := range result.Warnings {
		fmt.Fprintln(w, "  "+output.FormatWarning(fmt.Sprintf("%s: %s", warn.Path, warn.Message)))
	}
	if result.GitInitialized {
		fmt.Fprintln(w, "Initialized git repository with all files staged")
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Next steps:")
	for _, step := range nextSteps(result) {
		fmt.Fprintln(w, "  "+step)
	}
}

func nextSteps(result *project.GenerateResult) []string {
	steps := []string{
		"cd " + result.ProjectDir,
		"make            " + output.StyleDim.Render("# builds "+filepath.ToSlash(filepath.Join("out", result.Name+".bin"))),
		"make run        " + output.StyleDim.Render("# launches the emulator"),
	}
	if len(result.Warnings) > 0 {
		missing := lo.Map(result.Warnings, func(w project.Warning, _ int) string { return w.Path })
		steps = append([]string{"copy " + strings.Join(missing, ", ") + " into the project"}, steps...)
	}
	return steps
}
