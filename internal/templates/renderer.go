package templates

import (
	"bytes"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

var funcs = template.FuncMap{
	"join": strings.Join,
}

// Renderer handles template rendering with data substitution.
type Renderer struct {
	data TemplateData
	fsys fs.FS
}

// NewRenderer creates a renderer over the embedded templates.
func NewRenderer(data TemplateData) *Renderer {
	return &Renderer{data: data, fsys: TemplateFS}
}

// RenderFile renders a single template body and returns the content.
// Unknown fields are an error rather than "<no value>".
func (r *Renderer) RenderFile(name string, content []byte) ([]byte, error) {
	tmpl, err := template.New(name).Funcs(funcs).Option("missingkey=error").Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, r.data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}

	return buf.Bytes(), nil
}

// Render renders every artifact. Nothing is written to disk.
func (r *Renderer) Render() ([]File, error) {
	files := make([]File, 0, len(artifacts))

	for _, a := range artifacts {
		content, err := fs.ReadFile(r.fsys, a.Source)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", a.Source, err)
		}

		rendered, err := r.RenderFile(a.Source, content)
		if err != nil {
			return nil, err
		}

		files = append(files, File{
			Target:      a.Target,
			Description: a.Description,
			Content:     rendered,
		})
	}

	return files, nil
}
