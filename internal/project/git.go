package project

import (
	"fmt"

	"github.com/go-git/go-git/v5"
)

// InitRepository creates a git repository in projectDir and stages every
// generated file. Nothing is committed; the first commit is left to the user.
func InitRepository(projectDir string) error {
	repo, err := git.PlainInit(projectDir, false)
	if err != nil {
		return fmt.Errorf("initializing git repository: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("opening worktree: %w", err)
	}

	if err := wt.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return fmt.Errorf("staging files: %w", err)
	}

	return nil
}
