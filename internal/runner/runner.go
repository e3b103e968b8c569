// Package runner spawns external tools (make, emulators) for generated projects.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	oerrors "github.com/mdkit/mdnew/internal/errors"
)

// Command describes one process invocation.
type Command struct {
	// Name is the binary name or path, resolved through PATH.
	Name string

	// Args are passed to the binary.
	Args []string

	// Dir is the working directory. Empty means the current directory.
	Dir string

	// Stdout receives output as it is produced, in addition to the capture (optional).
	Stdout io.Writer
}

// String returns the command line for display.
func (c Command) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// Result is the outcome of a successful run.
type Result struct {
	// Path is the resolved binary path.
	Path string

	// Output is the combined stdout and stderr.
	Output []byte
}

// RunError reports a process that started but exited non-zero.
type RunError struct {
	Command  string
	ExitCode int
	Output   []byte
}

// Error implements the error interface.
func (e *RunError) Error() string {
	return fmt.Sprintf("%s exited with code %d", e.Command, e.ExitCode)
}

// waitDelay bounds how long Wait drains output after the process is killed.
const waitDelay = 2 * time.Second

// Runner runs commands. The zero value is ready to use.
type Runner struct {
	// LookPath resolves binaries; defaults to exec.LookPath.
	LookPath func(file string) (string, error)
}

// New returns a Runner using exec.LookPath.
func New() *Runner {
	return &Runner{LookPath: exec.LookPath}
}

// Run starts cmd and waits for it. Cancelling ctx kills the process.
func (r *Runner) Run(ctx context.Context, cmd Command) (*Result, error) {
	lookPath := r.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}

	path, err := lookPath(cmd.Name)
	if err != nil {
		return nil, oerrors.NewNotFoundError(
			fmt.Sprintf("executable not found: %s", cmd.Name),
			cmd.Name,
			"Install it or set its path in the mdnew config file.")
	}

	var out bytes.Buffer
	var w io.Writer = &out
	if cmd.Stdout != nil {
		w = io.MultiWriter(&out, cmd.Stdout)
	}

	c := exec.CommandContext(ctx, path, cmd.Args...)
	c.Dir = cmd.Dir
	c.Stdout = w
	c.Stderr = w
	// Children that outlive a killed process must not hold Wait on the output pipe.
	c.WaitDelay = waitDelay

	if err := c.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%s: %w", cmd, ctxErr)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, &RunError{
				Command:  cmd.String(),
				ExitCode: exitErr.ExitCode(),
				Output:   out.Bytes(),
			}
		}
		return nil, fmt.Errorf("running %s: %w", cmd, err)
	}

	return &Result{Path: path, Output: out.Bytes()}, nil
}
