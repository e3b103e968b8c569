package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	oerrors "github.com/mdkit/mdnew/internal/errors"
)

// NewDescriptor validates name and targetDir. It performs no writes except a
// transient file that checks targetDir is writable, and only after the
// pre-existence check has passed.
func NewDescriptor(name, targetDir string) (*Descriptor, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	if targetDir == "" {
		targetDir = "."
	}

	absDir, err := filepath.Abs(targetDir)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", targetDir, err)
	}

	info, err := os.Stat(absDir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, oerrors.NewNotFoundError(
			fmt.Sprintf("target directory does not exist: %s", targetDir),
			absDir,
			"Create the directory first or pass an existing one.")
	}
	if err != nil {
		return nil, fmt.Errorf("checking target directory: %w", err)
	}
	if !info.IsDir() {
		return nil, oerrors.NewValidationError(
			fmt.Sprintf("target is not a directory: %s", targetDir), absDir, "")
	}

	d := &Descriptor{Name: name, TargetDir: absDir}

	if _, err := os.Lstat(d.ProjectDir()); err == nil {
		return nil, oerrors.NewExistsError(
			fmt.Sprintf("directory already exists: %s", d.ProjectDir()),
			d.ProjectDir(),
			"Choose a different project name or remove the existing directory.")
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("checking project directory: %w", err)
	}

	if err := checkWritable(absDir); err != nil {
		return nil, err
	}

	return d, nil
}

// ProjectDir returns the directory the project is generated into.
func (d *Descriptor) ProjectDir() string {
	return filepath.Join(d.TargetDir, d.Name)
}

// checkWritable creates and removes a scratch file in dir.
func checkWritable(dir string) error {
	f, err := os.CreateTemp(dir, ".mdnew-write-check-*")
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return oerrors.NewPermissionError(
				fmt.Sprintf("target directory is not writable: %s", dir),
				dir,
				"Check the directory permissions or choose another target.")
		}
		return fmt.Errorf("checking target directory is writable: %w", err)
	}
	name := f.Name()
	_ = f.Close()
	return os.Remove(name)
}

// checkTemplateDir verifies the reference template directory exists.
func checkTemplateDir(dir string) error {
	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return oerrors.NewNotFoundError(
			fmt.Sprintf("template directory not found: %s", dir),
			dir,
			"Pass --template-dir, set MDNEW_TEMPLATE_DIR, or set templates.dir in the config file.")
	}
	if err != nil {
		return fmt.Errorf("checking template directory: %w", err)
	}
	if !info.IsDir() {
		return oerrors.NewValidationError(
			fmt.Sprintf("template path is not a directory: %s", dir), dir, "")
	}
	return nil
}
