package config_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdkit/mdnew/internal/cmd"
	cmdconfig "github.com/mdkit/mdnew/internal/cmd/config"
	"github.com/mdkit/mdnew/internal/cmdtypes"
	"github.com/mdkit/mdnew/internal/config"
	oerrors "github.com/mdkit/mdnew/internal/errors"
	"github.com/mdkit/mdnew/internal/testutil"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	rootCmd := cmd.NewRootCmd()
	var outBuf, errBuf bytes.Buffer
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetArgs(args)
	err = rootCmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func TestNewConfigCmd(t *testing.T) {
	c := cmdconfig.NewConfigCmd(&cmdtypes.GlobalConfig{})

	assert.Equal(t, "config", c.Use)
	var names []string
	for _, sub := range c.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"init", "vet", "view"}, names)
}

func TestConfigInit_DefaultLocation(t *testing.T) {
	home := testutil.IsolateEnv(t)

	stdout, _, err := execute(t, "config", "init")
	require.NoError(t, err)

	configFile := filepath.Join(home, ".mdnew", "config.yaml")
	assert.FileExists(t, configFile)
	assert.Contains(t, stdout, "Config file created")

	cfg, err := config.NewLoader().Load(configFile)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestConfigInit_RefusesOverwrite(t *testing.T) {
	testutil.IsolateEnv(t)
	configFile := filepath.Join(t.TempDir(), "nested", "config.yaml")

	_, _, err := execute(t, "config", "init", "--config", configFile)
	require.NoError(t, err)

	_, _, err = execute(t, "config", "init", "--config", configFile)
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrExists)
	assert.Contains(t, err.Error(), "--force")

	require.NoError(t, os.WriteFile(configFile, []byte("gdk:\n  dir: /custom\n"), 0o644))
	_, _, err = execute(t, "config", "init", "--config", configFile, "--force")
	require.NoError(t, err)

	data, err := os.ReadFile(configFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), config.DefaultGDKDir)
	assert.NotContains(t, string(data), "/custom")
}

func TestConfigInit_EnvLocation(t *testing.T) {
	testutil.IsolateEnv(t)
	configFile := filepath.Join(t.TempDir(), "env.yaml")
	t.Setenv(config.EnvConfig, configFile)

	_, _, err := execute(t, "config", "init")
	require.NoError(t, err)
	assert.FileExists(t, configFile)
}

func TestConfigVet_Valid(t *testing.T) {
	testutil.IsolateEnv(t)
	configFile := filepath.Join(t.TempDir(), "config.yaml")

	_, _, err := execute(t, "config", "init", "-c", configFile)
	require.NoError(t, err)

	stdout, _, err := execute(t, "config", "vet", "-c", configFile)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Config file is valid")
}

func TestConfigVet_Invalid(t *testing.T) {
	testutil.IsolateEnv(t)
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(
		"toolchain:\n  prefix: m68k-elf\nemulatr:\n  command: blastem\n"), 0o644))

	_, stderr, err := execute(t, "config", "vet", "-c", configFile)
	require.Error(t, err)

	var exitErr *oerrors.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, oerrors.ExitGeneralError, exitErr.Code)
	assert.True(t, exitErr.Printed)

	assert.Contains(t, stderr, "config validation failed")
	assert.Contains(t, stderr, "toolchain.prefix")
	assert.Contains(t, stderr, "emulatr")
}

func TestConfigVet_MissingFile(t *testing.T) {
	testutil.IsolateEnv(t)

	_, _, err := execute(t, "config", "vet")
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrNotFound)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestConfigView_Defaults(t *testing.T) {
	testutil.IsolateEnv(t)

	stdout, _, err := execute(t, "config", "view")
	require.NoError(t, err)
	assert.Contains(t, stdout, "gdk:")
	assert.Contains(t, stdout, config.DefaultGDKDir)
	assert.Contains(t, stdout, config.DefaultToolchainPrefix)
	assert.Contains(t, stdout, config.DefaultEmulator)
}

func TestConfigView_Sources(t *testing.T) {
	testutil.IsolateEnv(t)
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("toolchain:\n  dir: /opt/m68k\n"), 0o644))
	t.Setenv(config.EnvGDKDir, "/env/sgdk")

	stdout, _, err := execute(t, "config", "view", "--sources", "-c", configFile)
	require.NoError(t, err)

	assert.Regexp(t, `config\s+\S+config\.yaml\s+\(flag\)`, stdout)
	assert.Regexp(t, `toolchain\.dir\s+/opt/m68k\s+\(config\)`, stdout)
	assert.Regexp(t, `gdk\.dir\s+/env/sgdk\s+\(env\)`, stdout)
	assert.Regexp(t, `emulator\.command\s+blastem\s+\(default\)`, stdout)
}
