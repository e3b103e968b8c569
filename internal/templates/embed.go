// Package templates provides the embedded project templates and their rendering.
package templates

import "embed"

// TemplateFS holds the text template bodies for generated projects.
//
//go:embed project/*.tmpl
var TemplateFS embed.FS
