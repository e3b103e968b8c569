// Package config provides configuration loading, resolution and validation.
package config

// ToolchainConfig locates the m68k cross toolchain.
type ToolchainConfig struct {
	// Dir is the toolchain root as seen from a generated project.
	// Env: MDNEW_TOOLCHAIN_DIR, Default: ../toolchain
	Dir string `json:"dir,omitempty" yaml:"dir,omitempty" mapstructure:"dir"`

	// Prefix is the binary prefix, e.g. "m68k-elf-".
	// Env: MDNEW_TOOLCHAIN_PREFIX, Default: m68k-elf-
	Prefix string `json:"prefix,omitempty" yaml:"prefix,omitempty" mapstructure:"prefix"`
}

// GDKConfig locates the SGDK installation.
type GDKConfig struct {
	// Dir is the SGDK root as seen from a generated project.
	// Env: MDNEW_GDK_DIR, Default: ../SGDK
	Dir string `json:"dir,omitempty" yaml:"dir,omitempty" mapstructure:"dir"`
}

// TemplatesConfig locates the reference template directory.
type TemplatesConfig struct {
	// Dir holds boot/sega.s and boot/rom_head.c.
	// Env: MDNEW_TEMPLATE_DIR, Default: template
	Dir string `json:"dir,omitempty" yaml:"dir,omitempty" mapstructure:"dir"`
}

// EmulatorConfig describes the emulator launched by `mdnew run`.
type EmulatorConfig struct {
	// Command is the emulator binary name or path.
	// Env: MDNEW_EMULATOR, Default: blastem
	Command string `json:"command,omitempty" yaml:"command,omitempty" mapstructure:"command"`

	// Args are passed before the ROM path.
	Args []string `json:"args,omitempty" yaml:"args,omitempty" mapstructure:"args"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `json:"timestamps,omitempty" yaml:"timestamps,omitempty" mapstructure:"timestamps"`
}

// Config is the on-disk configuration (~/.mdnew/config.yaml).
type Config struct {
	Toolchain ToolchainConfig `json:"toolchain" yaml:"toolchain" mapstructure:"toolchain"`
	GDK       GDKConfig       `json:"gdk" yaml:"gdk" mapstructure:"gdk"`
	Templates TemplatesConfig `json:"templates" yaml:"templates" mapstructure:"templates"`
	Emulator  EmulatorConfig  `json:"emulator" yaml:"emulator" mapstructure:"emulator"`
	Log       LogConfig       `json:"log" yaml:"log" mapstructure:"log"`
}

// Built-in defaults.
const (
	DefaultToolchainDir    = "../toolchain"
	DefaultToolchainPrefix = "m68k-elf-"
	DefaultGDKDir          = "../SGDK"
	DefaultTemplateDir     = "template"
	DefaultEmulator        = "blastem"
)

// DefaultConfig returns a Config with all default values populated.
// Used by `mdnew config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		Toolchain: ToolchainConfig{
			Dir:    DefaultToolchainDir,
			Prefix: DefaultToolchainPrefix,
		},
		GDK: GDKConfig{
			Dir: DefaultGDKDir,
		},
		Templates: TemplatesConfig{
			Dir: DefaultTemplateDir,
		},
		Emulator: EmulatorConfig{
			Command: DefaultEmulator,
		},
	}
}
