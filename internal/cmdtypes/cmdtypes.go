// Package cmdtypes provides shared types for the cmd package and its sub-packages.
// It is separate from internal/cmd to avoid import cycles between internal/cmd
// and internal/cmd/config.
package cmdtypes

import (
	"github.com/mdkit/mdnew/internal/config"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed explicitly into every sub-command
// constructor.
type GlobalConfig struct {
	// Config is the config file content; empty when no file exists.
	Config *config.Config

	// Resolved holds every setting after flag > env > config > default.
	Resolved *config.ResolvedConfig

	// ConfigFlag is the raw --config flag value.
	ConfigFlag string

	Verbose bool
}

// ConfigPath returns the resolved config file path.
func (g *GlobalConfig) ConfigPath() string {
	if g.Resolved != nil {
		return g.Resolved.ConfigPath.Value
	}
	return g.ConfigFlag
}
