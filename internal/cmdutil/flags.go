// Package cmdutil provides shared command utilities.
// It centralizes flag groups, project directory arguments and
// error-to-exit-code mapping.
package cmdutil

import (
	"github.com/spf13/cobra"
)

// GeneratorFlags holds the flags that steer project generation.
type GeneratorFlags struct {
	TemplateDir string
	Toolchain   string
	GDK         string
	Git         bool
}

// AddTo registers the generator flags on the given cobra command.
func (f *GeneratorFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.TemplateDir, "template-dir", "t", "",
		"Reference template directory holding boot/ (env: MDNEW_TEMPLATE_DIR)")
	cmd.Flags().StringVar(&f.Toolchain, "toolchain", "",
		"Toolchain root referenced by the generated Makefile (env: MDNEW_TOOLCHAIN_DIR)")
	cmd.Flags().StringVar(&f.GDK, "gdk", "",
		"SGDK root referenced by the generated Makefile (env: MDNEW_GDK_DIR)")
	cmd.Flags().BoolVar(&f.Git, "git", false,
		"Initialize a git repository in the new project")
}

// StringFlag returns the value of a string flag visible to cmd, or "" when
// cmd does not define it.
func StringFlag(cmd *cobra.Command, name string) string {
	f := cmd.Flags().Lookup(name)
	if f == nil {
		return ""
	}
	return f.Value.String()
}
