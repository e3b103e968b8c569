package templates

// TemplateData holds the values substituted into every template.
type TemplateData struct {
	// ProjectName is the validated project name, used verbatim.
	ProjectName string

	// ToolchainDir is the toolchain root relative to the generated project.
	ToolchainDir string

	// ToolchainPrefix is the cross binary prefix (e.g. "m68k-elf-").
	ToolchainPrefix string

	// GDKDir is the SGDK root relative to the generated project.
	GDKDir string

	// Emulator is the command used by the Makefile's run target.
	Emulator string

	// EmulatorArgs precede the ROM path in the run target.
	EmulatorArgs []string

	// GeneratorVersion is stamped into file headers.
	GeneratorVersion string
}

// Artifact maps an embedded template to a file in the generated project.
type Artifact struct {
	// Source is the path within TemplateFS.
	Source string

	// Target is the path relative to the project root.
	Target string

	// Description is shown in the generation summary.
	Description string
}

// File is a rendered artifact.
type File struct {
	// Target is the path relative to the project root.
	Target string

	// Description is shown in the generation summary.
	Description string

	// Content is the rendered content.
	Content []byte
}
