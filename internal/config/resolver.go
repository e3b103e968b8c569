package config

import (
	"os"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// Environment variables for individual settings.
const (
	EnvToolchainDir    = "MDNEW_TOOLCHAIN_DIR"
	EnvToolchainPrefix = "MDNEW_TOOLCHAIN_PREFIX"
	EnvGDKDir          = "MDNEW_GDK_DIR"
	EnvTemplateDir     = "MDNEW_TEMPLATE_DIR"
	EnvEmulator        = "MDNEW_EMULATOR"
)

// Resolved is a value together with its source.
type Resolved struct {
	Value  string
	Source ConfigSource
}

// ResolveOptions describes one setting to resolve.
type ResolveOptions struct {
	// FlagValue is the flag value (empty if not set).
	FlagValue string
	// EnvVar is the environment variable name (optional).
	EnvVar string
	// ConfigValue is the value from the config file (empty if not set).
	ConfigValue string
	// Default is the built-in default.
	Default string
}

// Resolve applies precedence: flag > env > config > default.
func Resolve(opts ResolveOptions) Resolved {
	if opts.FlagValue != "" {
		return Resolved{Value: opts.FlagValue, Source: SourceFlag}
	}
	if opts.EnvVar != "" {
		if env := os.Getenv(opts.EnvVar); env != "" {
			return Resolved{Value: env, Source: SourceEnv}
		}
	}
	if opts.ConfigValue != "" {
		return Resolved{Value: opts.ConfigValue, Source: SourceConfig}
	}
	return Resolved{Value: opts.Default, Source: SourceDefault}
}

// ResolveAllOptions carries flag values and the loaded file config.
type ResolveAllOptions struct {
	ConfigFlag      string
	ToolchainFlag   string
	GDKFlag         string
	TemplateDirFlag string
	EmulatorFlag    string
	Config          *Config
}

// ResolvedConfig is the effective configuration for one invocation.
type ResolvedConfig struct {
	ConfigPath      Resolved
	ToolchainDir    Resolved
	ToolchainPrefix Resolved
	GDKDir          Resolved
	TemplateDir     Resolved
	Emulator        Resolved
	EmulatorArgs    []string
	Timestamps      *bool
}

// ResolveAll resolves every setting.
func ResolveAll(opts ResolveAllOptions) (*ResolvedConfig, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = &Config{}
	}

	defaultConfigPath, err := defaultConfigFile()
	if err != nil {
		return nil, err
	}

	return &ResolvedConfig{
		ConfigPath: Resolve(ResolveOptions{
			FlagValue: opts.ConfigFlag,
			EnvVar:    EnvConfig,
			Default:   defaultConfigPath,
		}),
		ToolchainDir: Resolve(ResolveOptions{
			FlagValue:   opts.ToolchainFlag,
			EnvVar:      EnvToolchainDir,
			ConfigValue: cfg.Toolchain.Dir,
			Default:     DefaultToolchainDir,
		}),
		ToolchainPrefix: Resolve(ResolveOptions{
			EnvVar:      EnvToolchainPrefix,
			ConfigValue: cfg.Toolchain.Prefix,
			Default:     DefaultToolchainPrefix,
		}),
		GDKDir: Resolve(ResolveOptions{
			FlagValue:   opts.GDKFlag,
			EnvVar:      EnvGDKDir,
			ConfigValue: cfg.GDK.Dir,
			Default:     DefaultGDKDir,
		}),
		TemplateDir: Resolve(ResolveOptions{
			FlagValue:   opts.TemplateDirFlag,
			EnvVar:      EnvTemplateDir,
			ConfigValue: cfg.Templates.Dir,
			Default:     DefaultTemplateDir,
		}),
		Emulator: Resolve(ResolveOptions{
			FlagValue:   opts.EmulatorFlag,
			EnvVar:      EnvEmulator,
			ConfigValue: cfg.Emulator.Command,
			Default:     DefaultEmulator,
		}),
		EmulatorArgs: cfg.Emulator.Args,
		Timestamps:   cfg.Log.Timestamps,
	}, nil
}

// Effective returns the resolved values as a Config, e.g. for `config view`.
func (r *ResolvedConfig) Effective() *Config {
	return &Config{
		Toolchain: ToolchainConfig{
			Dir:    r.ToolchainDir.Value,
			Prefix: r.ToolchainPrefix.Value,
		},
		GDK:       GDKConfig{Dir: r.GDKDir.Value},
		Templates: TemplatesConfig{Dir: r.TemplateDir.Value},
		Emulator: EmulatorConfig{
			Command: r.Emulator.Value,
			Args:    r.EmulatorArgs,
		},
		Log: LogConfig{Timestamps: r.Timestamps},
	}
}

// defaultConfigFile returns the default config path without env override.
func defaultConfigFile() (string, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}
	return paths.ConfigFile, nil
}
