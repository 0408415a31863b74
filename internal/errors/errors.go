// Package errors provides sentinel errors and custom error types for git-feature.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrBranchExists indicates that a branch already exists locally
	ErrBranchExists = errors.New("branch already exists")

	// ErrBranchNotFound indicates that a branch does not exist
	ErrBranchNotFound = errors.New("branch not found")

	// ErrRemoteUnavailable indicates that a remote repository could not be reached
	ErrRemoteUnavailable = errors.New("remote unavailable")

	// ErrRebaseConflict indicates that a rebase operation encountered a conflict
	ErrRebaseConflict = errors.New("rebase conflict")

	// ErrNonFastForward indicates that a push was rejected because the remote
	// branch has diverged
	ErrNonFastForward = errors.New("non-fast-forward")

	// ErrRemoteMisconfigured indicates that a required remote is missing or
	// does not point at an official upstream project
	ErrRemoteMisconfigured = errors.New("remote misconfigured")
)

// BranchExistsError represents an error when a branch to be created already exists
type BranchExistsError struct {
	BranchName string
}

func (e *BranchExistsError) Error() string {
	return fmt.Sprintf("branch %s already exists", e.BranchName)
}

// Is returns true if the target error is ErrBranchExists
func (e *BranchExistsError) Is(target error) bool {
	return target == ErrBranchExists
}

// NewBranchExistsError creates a new BranchExistsError
func NewBranchExistsError(branchName string) *BranchExistsError {
	return &BranchExistsError{BranchName: branchName}
}

// BranchNotFoundError represents an error when a branch is not found
type BranchNotFoundError struct {
	BranchName string
}

func (e *BranchNotFoundError) Error() string {
	return fmt.Sprintf("branch %s does not exist", e.BranchName)
}

// Is returns true if the target error is ErrBranchNotFound
func (e *BranchNotFoundError) Is(target error) bool {
	return target == ErrBranchNotFound
}

// NewBranchNotFoundError creates a new BranchNotFoundError
func NewBranchNotFoundError(branchName string) *BranchNotFoundError {
	return &BranchNotFoundError{BranchName: branchName}
}

// RemoteUnavailableError represents an error when a remote cannot be reached
type RemoteUnavailableError struct {
	Remote string
	Err    error
}

func (e *RemoteUnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("remote %s could not be reached: %v", e.Remote, e.Err)
	}
	return fmt.Sprintf("remote %s could not be reached", e.Remote)
}

func (e *RemoteUnavailableError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrRemoteUnavailable
func (e *RemoteUnavailableError) Is(target error) bool {
	return target == ErrRemoteUnavailable
}

// NewRemoteUnavailableError creates a new RemoteUnavailableError
func NewRemoteUnavailableError(remote string, err error) *RemoteUnavailableError {
	return &RemoteUnavailableError{Remote: remote, Err: err}
}

// RebaseConflictError represents an error when a rebase encounters a conflict.
// The repository is left in its conflicted state for the user to resolve or abort.
type RebaseConflictError struct {
	BranchName string
	Onto       string
}

func (e *RebaseConflictError) Error() string {
	if e.Onto != "" {
		return fmt.Sprintf("rebase of %s onto %s stopped due to conflicts", e.BranchName, e.Onto)
	}
	return fmt.Sprintf("rebase of %s stopped due to conflicts", e.BranchName)
}

// Is returns true if the target error is ErrRebaseConflict
func (e *RebaseConflictError) Is(target error) bool {
	return target == ErrRebaseConflict
}

// NewRebaseConflictError creates a new RebaseConflictError
func NewRebaseConflictError(branchName, onto string) *RebaseConflictError {
	return &RebaseConflictError{BranchName: branchName, Onto: onto}
}

// NonFastForwardError represents a push rejected because the remote branch
// has commits not present locally
type NonFastForwardError struct {
	BranchName string
	Remote     string
}

func (e *NonFastForwardError) Error() string {
	return fmt.Sprintf("push of %s to %s rejected (non-fast-forward): the remote branch has diverged", e.BranchName, e.Remote)
}

// Is returns true if the target error is ErrNonFastForward
func (e *NonFastForwardError) Is(target error) bool {
	return target == ErrNonFastForward
}

// NewNonFastForwardError creates a new NonFastForwardError
func NewNonFastForwardError(branchName, remote string) *NonFastForwardError {
	return &NonFastForwardError{BranchName: branchName, Remote: remote}
}

// RemoteMisconfiguredError represents a missing or unexpected remote configuration
type RemoteMisconfiguredError struct {
	Remote string
	Reason string
}

func (e *RemoteMisconfiguredError) Error() string {
	return fmt.Sprintf("remote repository '%s' not setup correctly: %s", e.Remote, e.Reason)
}

// Is returns true if the target error is ErrRemoteMisconfigured
func (e *RemoteMisconfiguredError) Is(target error) bool {
	return target == ErrRemoteMisconfigured
}

// NewRemoteMisconfiguredError creates a new RemoteMisconfiguredError
func NewRemoteMisconfiguredError(remote, reason string) *RemoteMisconfiguredError {
	return &RemoteMisconfiguredError{Remote: remote, Reason: reason}
}

// PartialRemovalError reports a remove operation where one half succeeded and
// the other failed. It always names which deletions went through.
type PartialRemovalError struct {
	BranchName    string
	LocalDeleted  bool
	RemoteDeleted bool
	Err           error
}

func (e *PartialRemovalError) Error() string {
	var done, failed string
	switch {
	case e.LocalDeleted && !e.RemoteDeleted:
		done, failed = "local branch deleted", "deleting it from the remote failed"
	case e.RemoteDeleted && !e.LocalDeleted:
		done, failed = "remote branch deleted", "deleting it locally failed"
	default:
		done, failed = "no deletion succeeded", "removal failed"
	}
	msg := fmt.Sprintf("partial removal of %s: %s, %s", e.BranchName, done, failed)
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

func (e *PartialRemovalError) Unwrap() error {
	return e.Err
}

// NewPartialRemovalError creates a new PartialRemovalError
func NewPartialRemovalError(branchName string, localDeleted, remoteDeleted bool, err error) *PartialRemovalError {
	return &PartialRemovalError{
		BranchName:    branchName,
		LocalDeleted:  localDeleted,
		RemoteDeleted: remoteDeleted,
		Err:           err,
	}
}

// GitCommandError represents an error from a git command execution. It is the
// catch-all for any non-zero git exit that no more specific error classifies.
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %s", strings.Join(e.Args, " "))
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}
