package output

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/huh/spinner"
)

// SpinnerOption configures a spinner.
type SpinnerOption func(*spinnerConfig)

type spinnerConfig struct {
	title   string
	timeout time.Duration
}

// WithTitle sets the spinner title.
func WithTitle(title string) SpinnerOption {
	return func(c *spinnerConfig) {
		c.title = title
	}
}

// WithTimeout sets the spinner timeout.
func WithTimeout(timeout time.Duration) SpinnerOption {
	return func(c *spinnerConfig) {
		c.timeout = timeout
	}
}

// RunWithSpinner executes action while a spinner animates.
// Without a TTY the action runs directly. Returns the action's error if any.
func RunWithSpinner(ctx context.Context, action func(ctx context.Context) error, opts ...SpinnerOption) error {
	cfg := &spinnerConfig{
		title: "Working...",
	}

	for _, opt := range opts {
		opt(cfg)
	}

	actionCtx := ctx
	if cfg.timeout > 0 {
		var cancel context.CancelFunc
		actionCtx, cancel = context.WithTimeout(ctx, cfg.timeout)
		defer cancel()
	}

	if !IsTTY() {
		return action(actionCtx)
	}

	var actionErr error
	finished := make(chan struct{})

	go func() {
		actionErr = action(actionCtx)
		close(finished)
	}()

	s := spinner.New().Title(cfg.title).Context(actionCtx)
	spinnerErr := s.Action(func() {
		<-finished
	}).Run()

	// The spinner stops early when the context is cancelled; the action is
	// expected to observe the same context and return.
	<-finished

	if actionErr != nil {
		return actionErr
	}
	if spinnerErr != nil {
		return fmt.Errorf("spinner error: %w", spinnerErr)
	}
	return nil
}
