// Package project generates new Mega Drive projects: it validates the project
// descriptor, builds the directory skeleton, copies boot assets and writes the
// rendered templates.
package project

import (
	"fmt"
	"regexp"

	oerrors "github.com/mdkit/mdnew/internal/errors"
)

// nameRegex is the project name grammar.
var nameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

const nameHint = "Project names start with a letter or underscore and contain only letters, digits, '_' and '-'."

// ValidateName checks a project name against the name grammar.
func ValidateName(name string) error {
	if name == "" {
		return oerrors.NewValidationError("project name cannot be empty", "", nameHint)
	}

	if nameRegex.MatchString(name) {
		return nil
	}

	for _, r := range name {
		if !isNameChar(r) {
			return oerrors.NewValidationError(
				fmt.Sprintf("invalid project name %q: contains invalid character %q", name, r), "", nameHint)
		}
	}

	return oerrors.NewValidationError(
		fmt.Sprintf("invalid project name %q: must start with a letter or underscore", name), "", nameHint)
}

func isNameChar(r rune) bool {
	return r >= 'a' && r <= 'z' ||
		r >= 'A' && r <= 'Z' ||
		r >= '0' && r <= '9' ||
		r == '_' || r == '-'
}
