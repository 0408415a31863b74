package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	gferrors "github.com/smessmer/git-feature/internal/errors"
)

// CLIService implements Service by shelling out to the git binary
type CLIService struct {
	runner *CommandRunner
}

// NewCLIService creates a Service backed by git commands running in workingDir.
// An empty workingDir means the current directory.
func NewCLIService(workingDir string) *CLIService {
	return &CLIService{runner: NewCommandRunner(workingDir)}
}

var _ Service = (*CLIService)(nil)

// FetchRemote fetches the latest state of the named remote
func (s *CLIService) FetchRemote(ctx context.Context, remote string) error {
	_, err := s.runner.RunInteractive(ctx, "fetch", remote)
	if err != nil {
		var cmdErr *gferrors.GitCommandError
		if errors.As(err, &cmdErr) && IsRemoteFailure(cmdErr.Stderr) {
			return gferrors.NewRemoteUnavailableError(remote, err)
		}
		return err
	}
	return nil
}

// CreateBranch creates a new branch at startPoint without tracking it and checks it out
func (s *CLIService) CreateBranch(ctx context.Context, name, startPoint string) error {
	_, err := s.runner.Run(ctx, "checkout", "-b", name, startPoint, "--no-track")
	if err != nil {
		return fmt.Errorf("failed to create branch %s from %s: %w", name, startPoint, err)
	}
	return nil
}

// CheckoutBranch checks out an existing local branch
func (s *CLIService) CheckoutBranch(ctx context.Context, name string) error {
	_, err := s.runner.Run(ctx, "checkout", name)
	if err != nil {
		return fmt.Errorf("failed to checkout branch %s: %w", name, err)
	}
	return nil
}

// CheckoutDetached checks out a revision in detached HEAD state
func (s *CLIService) CheckoutDetached(ctx context.Context, rev string) error {
	_, err := s.runner.Run(ctx, "checkout", "--detach", rev)
	if err != nil {
		return fmt.Errorf("failed to checkout %s in detached state: %w", rev, err)
	}
	return nil
}

// RebaseOnto replays the checked out branch's commits on top of onto.
// On conflict the repository keeps git's conflict state so the user can
// resolve and `git rebase --continue`, or `git rebase --abort`.
func (s *CLIService) RebaseOnto(ctx context.Context, branch, onto string) error {
	_, err := s.runner.RunInteractive(ctx, "rebase", onto)
	if err != nil {
		if s.isRebaseInProgress(ctx) {
			return gferrors.NewRebaseConflictError(branch, onto)
		}
		return err
	}
	return nil
}

// isRebaseInProgress checks for .git/rebase-merge or .git/rebase-apply,
// which is more reliable than REBASE_HEAD. The git dir must be resolved as
// an absolute path since the process cwd is not the repository dir.
func (s *CLIService) isRebaseInProgress(ctx context.Context) bool {
	gitDir, err := s.runner.Run(ctx, "rev-parse", "--absolute-git-dir")
	if err != nil {
		return false
	}
	if _, err := os.Stat(filepath.Join(gitDir, "rebase-merge")); err == nil {
		return true
	}
	if _, err := os.Stat(filepath.Join(gitDir, "rebase-apply")); err == nil {
		return true
	}
	return false
}

// PushBranch publishes a local branch to the named remote
func (s *CLIService) PushBranch(ctx context.Context, remote, branch string, opts PushOptions) error {
	args := []string{"push"}
	if opts.SetUpstream {
		args = append(args, "--set-upstream")
	}
	if opts.ForceWithLease {
		args = append(args, "--force-with-lease")
	}
	args = append(args, remote, branch)

	stderr, err := s.runner.RunInteractive(ctx, args...)
	if err != nil {
		switch {
		case IsNonFastForwardRejection(stderr):
			return gferrors.NewNonFastForwardError(branch, remote)
		case IsRemoteFailure(stderr):
			return gferrors.NewRemoteUnavailableError(remote, err)
		}
		return err
	}
	return nil
}

// DeleteLocalBranch deletes a local branch
func (s *CLIService) DeleteLocalBranch(ctx context.Context, name string, force bool) error {
	flag := "-d"
	if force {
		flag = "-D"
	}
	_, err := s.runner.Run(ctx, "branch", flag, name)
	if err != nil {
		return fmt.Errorf("failed to delete branch %s: %w", name, err)
	}
	return nil
}

// DeleteRemoteBranch deletes a branch from the named remote
func (s *CLIService) DeleteRemoteBranch(ctx context.Context, remote, name string) error {
	stderr, err := s.runner.RunInteractive(ctx, "push", remote, ":"+name)
	if err != nil {
		if IsRemoteFailure(stderr) {
			return gferrors.NewRemoteUnavailableError(remote, err)
		}
		return err
	}
	return nil
}

// LocalBranchExists reports whether a local branch with this name exists
func (s *CLIService) LocalBranchExists(ctx context.Context, name string) (bool, error) {
	_, err := s.runner.Run(ctx, "rev-parse", "--verify", "--quiet", "refs/heads/"+name)
	if err != nil {
		// rev-parse --verify --quiet exits non-zero with empty stderr when
		// the ref does not exist
		var cmdErr *gferrors.GitCommandError
		if errors.As(err, &cmdErr) && cmdErr.Stderr == "" {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// RemoteBranchExists queries the remote for a branch with this name
func (s *CLIService) RemoteBranchExists(ctx context.Context, remote, name string) (bool, error) {
	output, err := s.runner.Run(ctx, "ls-remote", "--heads", remote, name)
	if err != nil {
		var cmdErr *gferrors.GitCommandError
		if errors.As(err, &cmdErr) && IsRemoteFailure(cmdErr.Stderr) {
			return false, gferrors.NewRemoteUnavailableError(remote, err)
		}
		return false, err
	}
	return output != "", nil
}

// CurrentBranch returns the checked out branch name, or "" for detached HEAD
func (s *CLIService) CurrentBranch(ctx context.Context) (string, error) {
	output, err := s.runner.Run(ctx, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	if output == "HEAD" {
		// Detached HEAD
		return "", nil
	}
	return output, nil
}

// SyncSubmodules updates submodules to the commits recorded in the current checkout
func (s *CLIService) SyncSubmodules(ctx context.Context) error {
	_, err := s.runner.RunInteractive(ctx, "submodule", "update", "--init", "--recursive")
	return err
}
