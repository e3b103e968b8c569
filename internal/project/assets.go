package project

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// BootAsset is a file copied verbatim from the template directory's boot/.
type BootAsset struct {
	Name        string
	Description string
}

// BootAssets are the startup files every project needs.
var BootAssets = []BootAsset{
	{Name: "sega.s", Description: "Startup code and vector table"},
	{Name: "rom_head.c", Description: "ROM header"},
}

// bootDir is the asset directory both in the template directory and the project.
const bootDir = "boot"

// errSourceMissing marks a copy whose source file does not exist.
var errSourceMissing = errors.New("source missing")

// CopyBootAssets copies BootAssets from templateDir/boot into projectDir/boot.
// A missing source is a warning; any other I/O failure is an error.
func CopyBootAssets(templateDir, projectDir string) ([]FileInfo, []Warning, error) {
	var (
		copied   []FileInfo
		warnings []Warning
	)

	for _, asset := range BootAssets {
		src := filepath.Join(templateDir, bootDir, asset.Name)
		dst := filepath.Join(projectDir, bootDir, asset.Name)
		rel := path.Join(bootDir, asset.Name)

		n, err := copyFile(src, dst)
		if errors.Is(err, errSourceMissing) {
			warnings = append(warnings, Warning{
				Path:    rel,
				Message: fmt.Sprintf("boot asset not found at %s; copy it into the project manually", src),
			})
			continue
		}
		if err != nil {
			return copied, warnings, fmt.Errorf("copying %s: %w", rel, err)
		}

		copied = append(copied, FileInfo{
			Path:        rel,
			Description: asset.Description,
			Size:        n,
		})
	}

	return copied, warnings, nil
}

// copyFile copies src to a new file dst. A missing src yields errSourceMissing.
func copyFile(src, dst string) (int64, error) {
	in, err := os.Open(src)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, fmt.Errorf("%w: %w", errSourceMissing, err)
	}
	if err != nil {
		return 0, err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, fileMode)
	if err != nil {
		return 0, fmt.Errorf("creating %s: %w", dst, err)
	}

	n, err := io.Copy(out, in)
	if err != nil {
		_ = out.Close()
		return n, fmt.Errorf("writing %s: %w", dst, err)
	}

	return n, out.Close()
}
