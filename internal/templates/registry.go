package templates

// artifacts lists the templated files of a generated project, in write order.
var artifacts = []Artifact{
	{Source: "project/Makefile.tmpl", Target: "Makefile", Description: "Build configuration"},
	{Source: "project/main.c.tmpl", Target: "main.c", Description: "Entry point"},
	{Source: "project/README.md.tmpl", Target: "README.md", Description: "Project documentation"},
	{Source: "project/gitignore.tmpl", Target: ".gitignore", Description: "Ignored build byproducts"},
}

// Artifacts returns the templated files of a generated project.
func Artifacts() []Artifact {
	out := make([]Artifact, len(artifacts))
	copy(out, artifacts)
	return out
}
