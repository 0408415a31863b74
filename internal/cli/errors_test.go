package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	gferrors "github.com/smessmer/git-feature/internal/errors"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"branch exists", gferrors.NewBranchExistsError("x"), "branch exists"},
		{"branch not found", gferrors.NewBranchNotFoundError("x"), "branch not found"},
		{"remote unavailable", gferrors.NewRemoteUnavailableError("upstream", nil), "remote unavailable"},
		{"rebase conflict", gferrors.NewRebaseConflictError("x", "upstream/main"), "rebase conflict"},
		{"non-fast-forward", gferrors.NewNonFastForwardError("x", "origin"), "non-fast-forward"},
		{"remote misconfigured", gferrors.NewRemoteMisconfiguredError("upstream", "missing"), "remote misconfigured"},
		{"partial removal", gferrors.NewPartialRemovalError("x", true, false, nil), "partial removal"},
		{
			// A partial removal wraps the error that broke it; the wrapper
			// wins over the wrapped cause's classification
			"partial removal with cause",
			gferrors.NewPartialRemovalError("x", true, false, gferrors.NewRemoteUnavailableError("origin", errors.New("connection refused"))),
			"partial removal",
		},
		{"git failure", gferrors.NewGitCommandError("git", []string{"status"}, "", "boom", errors.New("exit status 128")), "git failure"},
		{"other failure", errors.New("accepts 1 arg(s), received 0"), "failure"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
			// Wrapping must not change the classification
			assert.Equal(t, tt.want, Classify(fmt.Errorf("wrapped: %w", tt.err)))
		})
	}
}
