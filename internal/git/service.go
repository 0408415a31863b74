package git

import "context"

// PushOptions controls how a branch is pushed
type PushOptions struct {
	// SetUpstream sets the remote branch as the upstream tracking target
	SetUpstream bool
	// ForceWithLease overrides a non-fast-forward rejection, but only if the
	// remote branch still points where our remote-tracking ref says it does
	ForceWithLease bool
}

// Service is the narrow set of git capabilities the feature-branch actions
// depend on. Actions never shell out themselves; they go through this
// interface so they can be tested against a fake.
type Service interface {
	// FetchRemote fetches the latest state of the named remote
	FetchRemote(ctx context.Context, remote string) error

	// CreateBranch creates a new branch at startPoint without tracking it,
	// and checks it out
	CreateBranch(ctx context.Context, name, startPoint string) error

	// CheckoutBranch checks out an existing local branch
	CheckoutBranch(ctx context.Context, name string) error

	// CheckoutDetached checks out a revision in detached HEAD state
	CheckoutDetached(ctx context.Context, rev string) error

	// RebaseOnto replays the currently checked out branch's commits on top of
	// onto. On conflict the repository is left in its conflicted state.
	RebaseOnto(ctx context.Context, branch, onto string) error

	// PushBranch publishes a local branch to the named remote
	PushBranch(ctx context.Context, remote, branch string, opts PushOptions) error

	// DeleteLocalBranch deletes a local branch. force deletes even if the
	// branch is not merged.
	DeleteLocalBranch(ctx context.Context, name string, force bool) error

	// DeleteRemoteBranch deletes a branch from the named remote
	DeleteRemoteBranch(ctx context.Context, remote, name string) error

	// LocalBranchExists reports whether a local branch with this name exists
	LocalBranchExists(ctx context.Context, name string) (bool, error)

	// RemoteBranchExists reports whether the named remote has a branch with
	// this name. This queries the remote, not the local remote-tracking refs.
	RemoteBranchExists(ctx context.Context, remote, name string) (bool, error)

	// CurrentBranch returns the name of the currently checked out branch, or
	// an empty string when HEAD is detached
	CurrentBranch(ctx context.Context) (string, error)

	// SyncSubmodules updates submodules to the commits recorded in the
	// current checkout
	SyncSubmodules(ctx context.Context) error
}
