package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	gferrors "github.com/smessmer/git-feature/internal/errors"
	"github.com/smessmer/git-feature/internal/output"
)

// Classify returns the error kind shown in the one-line classification.
// Partial removal is checked first: it wraps the error that broke the
// removal, and the wrapper is the more useful classification.
func Classify(err error) string {
	var partial *gferrors.PartialRemovalError
	if errors.As(err, &partial) {
		return "partial removal"
	}

	switch {
	case errors.Is(err, gferrors.ErrBranchExists):
		return "branch exists"
	case errors.Is(err, gferrors.ErrBranchNotFound):
		return "branch not found"
	case errors.Is(err, gferrors.ErrRemoteUnavailable):
		return "remote unavailable"
	case errors.Is(err, gferrors.ErrRebaseConflict):
		return "rebase conflict"
	case errors.Is(err, gferrors.ErrNonFastForward):
		return "non-fast-forward"
	case errors.Is(err, gferrors.ErrRemoteMisconfigured):
		return "remote misconfigured"
	}

	var cmdErr *gferrors.GitCommandError
	if errors.As(err, &cmdErr) {
		return "git failure"
	}
	return "failure"
}

// PrintError writes the single-line error classification followed by the
// underlying tool's raw diagnostic output to stderr
func PrintError(err error) {
	summary := err.Error()
	if idx := strings.IndexByte(summary, '\n'); idx >= 0 {
		summary = summary[:idx]
	}
	fmt.Fprintln(os.Stderr, output.RenderError(fmt.Sprintf("Error (%s): %s", Classify(err), summary)))

	var cmdErr *gferrors.GitCommandError
	if errors.As(err, &cmdErr) {
		if cmdErr.Stderr != "" {
			fmt.Fprintln(os.Stderr, strings.TrimRight(cmdErr.Stderr, "\n"))
		}
		if cmdErr.Stdout != "" {
			fmt.Fprintln(os.Stderr, strings.TrimRight(cmdErr.Stdout, "\n"))
		}
	}
}
