package project

import (
	"fmt"
	"os"
	"path/filepath"
)

// SkeletonDirs are created inside every project, in this order.
var SkeletonDirs = []string{"boot", "src", "inc", "res"}

// dirMode is used for every created directory.
const dirMode = 0o755

// BuildSkeleton creates the project subdirectories. projectDir must already exist.
func BuildSkeleton(projectDir string) ([]string, error) {
	created := make([]string, 0, len(SkeletonDirs))
	for _, dir := range SkeletonDirs {
		path := filepath.Join(projectDir, dir)
		if err := os.Mkdir(path, dirMode); err != nil {
			return created, fmt.Errorf("creating directory %s: %w", path, err)
		}
		created = append(created, dir)
	}
	return created, nil
}
