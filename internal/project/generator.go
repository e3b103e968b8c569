package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	oerrors "github.com/mdkit/mdnew/internal/errors"
	"github.com/mdkit/mdnew/internal/output"
	"github.com/mdkit/mdnew/internal/templates"
)

// fileMode is used for every written file.
const fileMode = 0o644

// Generator creates a project from GenerateOptions.
type Generator struct {
	opts GenerateOptions
}

// NewGenerator creates a new generator with the given options.
func NewGenerator(opts GenerateOptions) *Generator {
	return &Generator{opts: opts}
}

// Generate validates the descriptor and writes the project.
//
// Every check runs before the first mutation. Once the project directory has
// been created, a later failure removes it again so no half-built project is
// left behind. A missing boot asset is reported in the result, not as an error.
func (g *Generator) Generate() (*GenerateResult, error) {
	desc, err := NewDescriptor(g.opts.Name, g.opts.TargetDir)
	if err != nil {
		return nil, err
	}

	if err := checkTemplateDir(g.opts.TemplateDir); err != nil {
		return nil, err
	}

	logger := output.ProjectLogger(desc.Name)
	projectDir := desc.ProjectDir()

	logger.Debug("generating project",
		"target", desc.TargetDir,
		"templates", g.opts.TemplateDir,
		"toolchain", g.opts.ToolchainDir,
		"gdk", g.opts.GDKDir)

	if err := os.Mkdir(projectDir, dirMode); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil, oerrors.NewExistsError(
				fmt.Sprintf("directory already exists: %s", projectDir), projectDir, "")
		}
		return nil, fmt.Errorf("creating project directory: %w", err)
	}

	result, err := g.populate(logger, desc, projectDir)
	if err != nil {
		if rmErr := os.RemoveAll(projectDir); rmErr != nil {
			logger.Warn("could not remove partially generated project", "path", projectDir, "error", rmErr)
		} else {
			logger.Debug("removed partially generated project", "path", projectDir)
		}
		return nil, err
	}

	return result, nil
}

func (g *Generator) populate(logger *log.Logger, desc *Descriptor, projectDir string) (*GenerateResult, error) {
	result := &GenerateResult{
		Name:       desc.Name,
		ProjectDir: projectDir,
	}

	dirs, err := BuildSkeleton(projectDir)
	if err != nil {
		return nil, err
	}
	result.Dirs = dirs
	logger.Debug("created skeleton", "dirs", dirs)

	copied, warnings, err := CopyBootAssets(g.opts.TemplateDir, projectDir)
	if err != nil {
		return nil, err
	}
	result.Files = append(result.Files, copied...)
	result.Warnings = append(result.Warnings, warnings...)
	for _, w := range warnings {
		logger.Warn("boot asset missing", "file", w.Path, "template", g.opts.TemplateDir)
	}

	renderer := templates.NewRenderer(g.templateData(desc.Name))
	files, err := renderer.Render()
	if err != nil {
		return nil, fmt.Errorf("rendering templates: %w", err)
	}

	for _, f := range files {
		path := filepath.Join(projectDir, filepath.FromSlash(f.Target))
		if err := os.WriteFile(path, f.Content, fileMode); err != nil {
			return nil, fmt.Errorf("writing %s: %w", f.Target, err)
		}
		logger.Debug("wrote file", "path", f.Target, "bytes", len(f.Content))

		result.Files = append(result.Files, FileInfo{
			Path:        f.Target,
			Description: f.Description,
			Size:        int64(len(f.Content)),
		})
	}

	if g.opts.InitGit {
		if err := InitRepository(projectDir); err != nil {
			return nil, err
		}
		result.GitInitialized = true
		logger.Debug("initialized git repository")
	}

	return result, nil
}

func (g *Generator) templateData(name string) templates.TemplateData {
	return templates.TemplateData{
		ProjectName:      name,
		ToolchainDir:     g.opts.ToolchainDir,
		ToolchainPrefix:  g.opts.ToolchainPrefix,
		GDKDir:           g.opts.GDKDir,
		Emulator:         g.opts.Emulator,
		EmulatorArgs:     g.opts.EmulatorArgs,
		GeneratorVersion: g.opts.GeneratorVersion,
	}
}
