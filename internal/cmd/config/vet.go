package config

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdkit/mdnew/internal/cmdtypes"
	"github.com/mdkit/mdnew/internal/cmdutil"
	"github.com/mdkit/mdnew/internal/config"
	oerrors "github.com/mdkit/mdnew/internal/errors"
	"github.com/mdkit/mdnew/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the mdnew configuration file",
		Long: `Validate the mdnew configuration file against the internal schema.

Unknown keys, wrong types and malformed values are reported per field.
The command validates ~/.mdnew/config.yaml by default.
Use --config flag to specify a different location.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runVet(c, cfg)
		},
	}
}

func runVet(cmd *cobra.Command, cfg *cmdtypes.GlobalConfig) error {
	expandedPath, err := configFilePath(cfg)
	if err != nil {
		return cmdutil.ExitWith(err)
	}

	exists, err := config.FileExists(expandedPath)
	if err != nil {
		return cmdutil.ExitWith(fmt.Errorf("checking config file: %w", err))
	}
	if !exists {
		return cmdutil.ExitWith(oerrors.NewNotFoundError(
			fmt.Sprintf("config file not found: %s", expandedPath),
			expandedPath,
			"Create one with 'mdnew config init'.",
		))
	}

	validator, err := config.NewValidator()
	if err != nil {
		return cmdutil.ExitWith(fmt.Errorf("creating validator: %w", err))
	}

	if err := validator.ValidateFile(expandedPath); err != nil {
		var validationErrs config.ValidationErrors
		if errors.As(err, &validationErrs) {
			w := cmd.ErrOrStderr()
			fmt.Fprintln(w, output.FormatFailure("config validation failed"))
			fmt.Fprintf(w, "  File: %s\n\n", expandedPath)
			for _, e := range validationErrs {
				fmt.Fprintf(w, "  %s: %s\n", output.StyleNoun.Render(e.Field), e.Message)
			}
			return cmdutil.ExitPrinted(err)
		}
		return cmdutil.ExitWith(fmt.Errorf("validating config: %w", err))
	}

	fmt.Fprintln(cmd.OutOrStdout(), output.FormatCheckmark("Config file is valid: "+expandedPath))
	return nil
}
