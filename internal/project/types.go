package project

// GenerateOptions configures project generation.
type GenerateOptions struct {
	// Name is the project name; also the project directory name.
	Name string

	// TargetDir is the existing parent directory. Empty means ".".
	TargetDir string

	// TemplateDir is the reference template directory holding boot/.
	TemplateDir string

	// ToolchainDir is the toolchain root as referenced from the generated Makefile.
	ToolchainDir string

	// ToolchainPrefix is the cross binary prefix.
	ToolchainPrefix string

	// GDKDir is the SGDK root as referenced from the generated Makefile.
	GDKDir string

	// Emulator is the command behind `make run`.
	Emulator string

	// EmulatorArgs are passed to Emulator before the ROM path.
	EmulatorArgs []string

	// GeneratorVersion is stamped into generated file headers.
	GeneratorVersion string

	// InitGit creates a git repository in the project and stages its files.
	InitGit bool
}

// Descriptor is a validated {name, target directory} pair.
type Descriptor struct {
	// Name is the project name.
	Name string

	// TargetDir is the absolute parent directory.
	TargetDir string
}

// FileInfo describes a file written into the project.
type FileInfo struct {
	// Path is relative to the project root, slash separated.
	Path string

	// Description is shown in the summary.
	Description string

	// Size is the number of bytes written.
	Size int64
}

// Warning is a soft failure that did not stop generation.
type Warning struct {
	// Path is the affected project path, relative to the project root.
	Path string

	// Message describes what is missing.
	Message string
}

// GenerateResult contains the result of project generation.
type GenerateResult struct {
	// Name is the project name.
	Name string

	// ProjectDir is the absolute path of the created project.
	ProjectDir string

	// Dirs lists the created subdirectories, relative to ProjectDir.
	Dirs []string

	// Files lists the written files, boot assets first.
	Files []FileInfo

	// Warnings lists soft failures.
	Warnings []Warning

	// GitInitialized reports whether a git repository was created.
	GitInitialized bool
}

// TotalSize returns the number of bytes written.
func (r *GenerateResult) TotalSize() int64 {
	var total int64
	for _, f := range r.Files {
		total += f.Size
	}
	return total
}
