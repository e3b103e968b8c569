package cmdutil

import (
	"fmt"
	"os"
	"path/filepath"

	oerrors "github.com/mdkit/mdnew/internal/errors"
)

// ProjectRef points at an existing generated project.
type ProjectRef struct {
	// Dir is the absolute project directory.
	Dir string

	// Name is the project name, taken from the directory base name.
	Name string
}

// ROMPath returns the ROM produced by `make` for this project.
func (p ProjectRef) ROMPath() string {
	return filepath.Join(p.Dir, "out", p.Name+".bin")
}

// ResolveProject turns an optional [project_dir] argument into a ProjectRef.
// The directory must exist and contain a Makefile.
func ResolveProject(args []string) (ProjectRef, error) {
	dir := "."
	if len(args) > 0 && args[0] != "" {
		dir = args[0]
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return ProjectRef{}, fmt.Errorf("resolving project directory: %w", err)
	}

	info, err := os.Stat(absDir)
	if err != nil {
		if os.IsNotExist(err) {
			return ProjectRef{}, oerrors.NewNotFoundError(
				fmt.Sprintf("project directory not found: %s", absDir),
				absDir,
				"Pass the directory created by mdnew.",
			)
		}
		return ProjectRef{}, fmt.Errorf("checking project directory: %w", err)
	}
	if !info.IsDir() {
		return ProjectRef{}, oerrors.NewValidationError(
			fmt.Sprintf("not a directory: %s", absDir),
			absDir,
			"Pass the directory created by mdnew.",
		)
	}

	makefile := filepath.Join(absDir, "Makefile")
	if _, err := os.Stat(makefile); err != nil {
		return ProjectRef{}, oerrors.NewNotFoundError(
			fmt.Sprintf("no Makefile in %s", absDir),
			makefile,
			"Run this command from a project generated by mdnew, or pass its directory.",
		)
	}

	return ProjectRef{Dir: absDir, Name: filepath.Base(absDir)}, nil
}
