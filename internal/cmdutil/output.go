package cmdutil

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mdkit/mdnew/internal/output"
	"github.com/mdkit/mdnew/internal/runner"
)

// PrintRunFailure writes a failed external command and its captured output to w.
// It reports whether err was a runner failure.
func PrintRunFailure(w io.Writer, err error) bool {
	var runErr *runner.RunError
	if !errors.As(err, &runErr) {
		return false
	}

	fmt.Fprintln(w, output.FormatFailure(runErr.Error()))
	if out := strings.TrimRight(string(runErr.Output), "\n"); out != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, out)
	}
	return true
}
