package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	cueyaml "cuelang.org/go/encoding/yaml"
)

//go:embed schema/config.cue
var configSchemaCUE []byte

// ValidationError is a single configuration field error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Validator validates configuration against the embedded CUE schema.
type Validator struct {
	ctx    *cue.Context
	schema cue.Value
}

// NewValidator compiles the embedded schema.
func NewValidator() (*Validator, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileBytes(configSchemaCUE, cue.Filename("config.cue"))
	if schema.Err() != nil {
		return nil, fmt.Errorf("compiling schema: %w", schema.Err())
	}

	def := schema.LookupPath(cue.ParsePath("#Config"))
	if !def.Exists() {
		return nil, fmt.Errorf("schema has no #Config definition")
	}

	return &Validator{
		ctx:    ctx,
		schema: def,
	}, nil
}

// Validate checks a decoded configuration.
func (v *Validator) Validate(cfg *Config) error {
	val := v.ctx.Encode(cfg)
	if val.Err() != nil {
		return fmt.Errorf("encoding config: %w", val.Err())
	}
	return v.check(val)
}

// ValidateFile checks a YAML config file. Unknown keys are reported, since
// #Config is closed.
func (v *Validator) ValidateFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	return v.ValidateBytes(path, data)
}

// ValidateBytes checks YAML content; filename is used in positions only.
func (v *Validator) ValidateBytes(filename string, data []byte) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	file, err := cueyaml.Extract(filename, data)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", filename, err)
	}

	val := v.ctx.BuildFile(file)
	if val.Err() != nil {
		return fmt.Errorf("building %s: %w", filename, val.Err())
	}

	return v.check(val)
}

func (v *Validator) check(val cue.Value) error {
	unified := v.schema.Unify(val)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return toValidationErrors(err)
	}
	return nil
}

func toValidationErrors(err error) ValidationErrors {
	var errs ValidationErrors
	for _, e := range cueerrors.Errors(err) {
		field := strings.Join(e.Path(), ".")
		if field == "" {
			field = "(root)"
		}
		format, args := e.Msg()
		errs = append(errs, ValidationError{
			Field:   field,
			Message: fmt.Sprintf(format, args...),
		})
	}
	if len(errs) == 0 {
		errs = append(errs, ValidationError{Field: "(root)", Message: err.Error()})
	}
	return errs
}
