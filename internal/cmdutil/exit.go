package cmdutil

import (
	"errors"

	oerrors "github.com/mdkit/mdnew/internal/errors"
)

// ExitWith wraps err in an ExitError carrying the general failure code.
// An err that already is an ExitError is returned unchanged.
func ExitWith(err error) error {
	if err == nil {
		return nil
	}
	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	return oerrors.NewExitError(err, oerrors.ExitGeneralError)
}

// ExitPrinted wraps err in an ExitError that main will not print again.
func ExitPrinted(err error) error {
	exitErr := oerrors.NewExitError(err, oerrors.ExitGeneralError)
	exitErr.Printed = true
	return exitErr
}
