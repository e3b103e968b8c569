package cmd

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mdkit/mdnew/internal/cmdtypes"
	"github.com/mdkit/mdnew/internal/output"
	"github.com/mdkit/mdnew/internal/project"
	"github.com/mdkit/mdnew/internal/templates"
)

// NewTemplatesCmd creates the templates command.
func NewTemplatesCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List the files a generated project contains",
		Long: `List the files a generated project contains.

Rendered files are built into mdnew. Boot assets are copied from the
template directory; each is marked when it is missing there.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			templateDir := ""
			if cfg.Resolved != nil {
				templateDir = cfg.Resolved.TemplateDir.Value
			}
			writeTemplateListing(c, templateDir)
			return nil
		},
	}
}

func writeTemplateListing(cmd *cobra.Command, templateDir string) {
	w := cmd.OutOrStdout()

	entries := make([]output.FileEntry, 0, len(project.SkeletonDirs)+len(project.BootAssets)+len(templates.Artifacts()))
	for _, d := range project.SkeletonDirs {
		entries = append(entries, output.FileEntry{Path: d, IsDir: true})
	}

	missing := 0
	for _, asset := range project.BootAssets {
		desc := asset.Description
		if templateDir != "" {
			src := filepath.Join(templateDir, "boot", asset.Name)
			if _, err := os.Stat(src); err != nil {
				desc += " " + output.StyleWarning.Render("(missing)")
				missing++
			}
		}
		entries = append(entries, output.FileEntry{Path: path.Join("boot", asset.Name), Description: desc})
	}

	for _, a := range templates.Artifacts() {
		entries = append(entries, output.FileEntry{Path: a.Target, Description: a.Description})
	}

	fmt.Fprint(w, output.RenderFileTree("<project_name>", entries))

	if templateDir != "" {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Template directory: %s\n", templateDir)
		if missing > 0 {
			fmt.Fprintln(w, output.FormatWarning(fmt.Sprintf("%s will be reported as missing", plural.Pluralize("boot asset", missing, true))))
		}
	}
}
