package project

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	ignore "github.com/sabhiram/go-gitignore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/mdkit/mdnew/internal/errors"
)

const (
	segaSource    = "; startup\n\t.org 0x00000000\n"
	romHeadSource = "const struct { char console[16]; } rom_header = { \"SEGA MEGA DRIVE \" };\n"
)

// newTemplateDir creates a reference template directory with the given boot assets.
func newTemplateDir(t *testing.T, assets map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "boot"), 0o755))
	for name, content := range assets {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "boot", name), []byte(content), 0o644))
	}
	return dir
}

func fullTemplateDir(t *testing.T) string {
	return newTemplateDir(t, map[string]string{
		"sega.s":     segaSource,
		"rom_head.c": romHeadSource,
	})
}

func testOptions(name, targetDir, templateDir string) GenerateOptions {
	return GenerateOptions{
		Name:             name,
		TargetDir:        targetDir,
		TemplateDir:      templateDir,
		ToolchainDir:     "../toolchain",
		ToolchainPrefix:  "m68k-elf-",
		GDKDir:           "../SGDK",
		Emulator:         "blastem",
		GeneratorVersion: "v0.0.0-test",
	}
}

// listEntries returns the sorted top-level entries of dir, directories suffixed with "/".
func listEntries(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() {
			name += "/"
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func TestGenerate_FreshDirectory(t *testing.T) {
	target := t.TempDir()

	result, err := NewGenerator(testOptions("demo_game", target, fullTemplateDir(t))).Generate()
	require.NoError(t, err)

	projectDir := filepath.Join(target, "demo_game")
	assert.Equal(t, projectDir, result.ProjectDir)
	assert.Equal(t, "demo_game", result.Name)
	assert.Empty(t, result.Warnings)

	// Four files and four directories at the top level, nothing else
	assert.Equal(t,
		[]string{".gitignore", "Makefile", "README.md", "boot/", "inc/", "main.c", "res/", "src/"},
		listEntries(t, projectDir))
	assert.Equal(t, []string{"boot", "src", "inc", "res"}, result.Dirs)

	// Boot assets copied verbatim
	sega, err := os.ReadFile(filepath.Join(projectDir, "boot", "sega.s"))
	require.NoError(t, err)
	assert.Equal(t, segaSource, string(sega))

	romHead, err := os.ReadFile(filepath.Join(projectDir, "boot", "rom_head.c"))
	require.NoError(t, err)
	assert.Equal(t, romHeadSource, string(romHead))

	// Nothing leaks into the target directory
	assert.Equal(t, []string{"demo_game/"}, listEntries(t, target))
}

func TestGenerate_NameSubstitution(t *testing.T) {
	target := t.TempDir()

	_, err := NewGenerator(testOptions("Sonic-Clone_2", target, fullTemplateDir(t))).Generate()
	require.NoError(t, err)

	projectDir := filepath.Join(target, "Sonic-Clone_2")

	makefile, err := os.ReadFile(filepath.Join(projectDir, "Makefile"))
	require.NoError(t, err)
	assert.Contains(t, string(makefile), "TARGET    := Sonic-Clone_2")
	assert.Contains(t, string(makefile), "GDK       ?= ../SGDK")

	mainC, err := os.ReadFile(filepath.Join(projectDir, "main.c"))
	require.NoError(t, err)
	assert.Contains(t, string(mainC), "Welcome to Sonic-Clone_2!")

	readme, err := os.ReadFile(filepath.Join(projectDir, "README.md"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(readme), "# Sonic-Clone_2\n"))
}

func TestGenerate_ResultFiles(t *testing.T) {
	target := t.TempDir()

	result, err := NewGenerator(testOptions("demo_game", target, fullTemplateDir(t))).Generate()
	require.NoError(t, err)

	paths := make([]string, 0, len(result.Files))
	for _, f := range result.Files {
		paths = append(paths, f.Path)
		assert.NotEmpty(t, f.Description, f.Path)

		info, err := os.Stat(filepath.Join(result.ProjectDir, filepath.FromSlash(f.Path)))
		require.NoError(t, err)
		assert.Equal(t, info.Size(), f.Size, f.Path)
	}

	assert.Equal(t, []string{"boot/sega.s", "boot/rom_head.c", "Makefile", "main.c", "README.md", ".gitignore"}, paths)
	assert.Positive(t, result.TotalSize())
}

func TestGenerate_GitignoreCoversBuildOutput(t *testing.T) {
	target := t.TempDir()

	_, err := NewGenerator(testOptions("demo_game", target, fullTemplateDir(t))).Generate()
	require.NoError(t, err)

	gi, err := ignore.CompileIgnoreFile(filepath.Join(target, "demo_game", ".gitignore"))
	require.NoError(t, err)

	for _, p := range []string{"out/demo_game.bin", "out/rom.out", "out/boot/sega.o", "out/symbol.txt", "main.o"} {
		assert.True(t, gi.MatchesPath(p), "%s should be ignored", p)
	}
	for _, p := range []string{"main.c", "Makefile", "boot/sega.s", "boot/rom_head.c", "src/player.c", "inc/player.h"} {
		assert.False(t, gi.MatchesPath(p), "%s should be tracked", p)
	}
}

func TestGenerate_AlreadyExists(t *testing.T) {
	target := t.TempDir()
	existing := filepath.Join(target, "demo_game")
	require.NoError(t, os.Mkdir(existing, 0o755))
	marker := filepath.Join(existing, "keep.txt")
	require.NoError(t, os.WriteFile(marker, []byte("mine"), 0o644))

	_, err := NewGenerator(testOptions("demo_game", target, fullTemplateDir(t))).Generate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrExists))
	assert.Contains(t, err.Error(), "already exists")

	// No writes
	assert.Equal(t, []string{"keep.txt"}, listEntries(t, existing))
	assert.Equal(t, []string{"demo_game/"}, listEntries(t, target))
}

func TestGenerate_ExistingFileWithSameName(t *testing.T) {
	target := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(target, "demo_game"), nil, 0o644))

	_, err := NewGenerator(testOptions("demo_game", target, fullTemplateDir(t))).Generate()
	assert.True(t, errors.Is(err, oerrors.ErrExists))
}

func TestGenerate_Twice(t *testing.T) {
	target := t.TempDir()
	templateDir := fullTemplateDir(t)

	_, err := NewGenerator(testOptions("demo_game", target, templateDir)).Generate()
	require.NoError(t, err)

	projectDir := filepath.Join(target, "demo_game")
	mainPath := filepath.Join(projectDir, "main.c")
	require.NoError(t, os.WriteFile(mainPath, []byte("// edited\n"), 0o644))
	before := listEntries(t, projectDir)

	_, err = NewGenerator(testOptions("demo_game", target, templateDir)).Generate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrExists))

	// First run's output untouched
	assert.Equal(t, before, listEntries(t, projectDir))
	content, err := os.ReadFile(mainPath)
	require.NoError(t, err)
	assert.Equal(t, "// edited\n", string(content))
}

func TestGenerate_InvalidName(t *testing.T) {
	target := t.TempDir()

	for _, name := range []string{"", "9lives", "-dash", "has space", "dot.ted"} {
		t.Run(name, func(t *testing.T) {
			_, err := NewGenerator(testOptions(name, target, fullTemplateDir(t))).Generate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, oerrors.ErrValidation))
			assert.Empty(t, listEntries(t, target), "nothing may be created")
		})
	}
}

func TestGenerate_MissingBootAsset(t *testing.T) {
	target := t.TempDir()
	templateDir := newTemplateDir(t, map[string]string{"rom_head.c": romHeadSource})

	result, err := NewGenerator(testOptions("demo_game", target, templateDir)).Generate()
	require.NoError(t, err)

	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "boot/sega.s", result.Warnings[0].Path)
	assert.Contains(t, result.Warnings[0].Message, "not found")

	bootDir := filepath.Join(target, "demo_game", "boot")
	assert.DirExists(t, bootDir)
	assert.Equal(t, []string{"rom_head.c"}, listEntries(t, bootDir))
	assert.FileExists(t, filepath.Join(target, "demo_game", "Makefile"))
}

func TestGenerate_EmptyBootDirectory(t *testing.T) {
	target := t.TempDir()
	templateDir := t.TempDir()

	result, err := NewGenerator(testOptions("demo_game", target, templateDir)).Generate()
	require.NoError(t, err)

	assert.Len(t, result.Warnings, 2)
	assert.Empty(t, listEntries(t, filepath.Join(target, "demo_game", "boot")))
}

func TestGenerate_MissingTemplateDir(t *testing.T) {
	target := t.TempDir()

	_, err := NewGenerator(testOptions("demo_game", target, filepath.Join(target, "no-such-template"))).Generate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrNotFound))
	assert.Contains(t, err.Error(), "template directory not found")
	assert.Empty(t, listEntries(t, target))
}

func TestGenerate_MissingTargetDir(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nope")

	_, err := NewGenerator(testOptions("demo_game", target, fullTemplateDir(t))).Generate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrNotFound))
	assert.NoDirExists(t, target)
}

func TestGenerate_TargetIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	_, err := NewGenerator(testOptions("demo_game", file, fullTemplateDir(t))).Generate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrValidation))
}

func TestGenerate_UnwritableTarget(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root bypasses directory permissions")
	}

	target := t.TempDir()
	require.NoError(t, os.Chmod(target, 0o555))
	t.Cleanup(func() { _ = os.Chmod(target, 0o755) })

	_, err := NewGenerator(testOptions("demo_game", target, fullTemplateDir(t))).Generate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrPermission))
	assert.Empty(t, listEntries(t, target))
}

func TestGenerate_FailureRemovesPartialProject(t *testing.T) {
	target := t.TempDir()
	templateDir := newTemplateDir(t, map[string]string{"rom_head.c": romHeadSource})
	// A directory where a file is expected makes the copy fail after the skeleton exists
	require.NoError(t, os.Mkdir(filepath.Join(templateDir, "boot", "sega.s"), 0o755))

	_, err := NewGenerator(testOptions("demo_game", target, templateDir)).Generate()
	require.Error(t, err)
	assert.False(t, errors.Is(err, oerrors.ErrNotFound))
	assert.NoDirExists(t, filepath.Join(target, "demo_game"))
}

func TestGenerate_DefaultTargetIsWorkingDirectory(t *testing.T) {
	target := t.TempDir()
	templateDir := fullTemplateDir(t)
	t.Chdir(target)

	result, err := NewGenerator(testOptions("demo_game", "", templateDir)).Generate()
	require.NoError(t, err)

	resolved, err := filepath.EvalSymlinks(result.ProjectDir)
	require.NoError(t, err)
	want, err := filepath.EvalSymlinks(filepath.Join(target, "demo_game"))
	require.NoError(t, err)
	assert.Equal(t, want, resolved)
}

func TestGenerate_InitGit(t *testing.T) {
	target := t.TempDir()
	opts := testOptions("demo", target, fullTemplateDir(t))
	opts.InitGit = true

	result, err := NewGenerator(opts).Generate()
	require.NoError(t, err)
	assert.True(t, result.GitInitialized)

	projectDir := filepath.Join(target, "demo")
	assert.DirExists(t, filepath.Join(projectDir, ".git"))
	assert.Contains(t, listEntries(t, projectDir), ".git/")
}
