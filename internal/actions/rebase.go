package actions

import (
	"context"
	"fmt"

	gferrors "github.com/smessmer/git-feature/internal/errors"
	"github.com/smessmer/git-feature/internal/runtime"
)

// RebaseOptions holds options for the rebase action
type RebaseOptions struct {
	BranchName string
}

// Rebase replays a feature branch's commits on top of the current upstream
// mainline. On conflict the repository is left in git's conflict state so the
// user can resolve and continue, or abort.
func Rebase(ctx context.Context, rctx *runtime.Context, opts RebaseOptions) error {
	name := opts.BranchName
	if name == "" {
		return fmt.Errorf("branch name must not be empty")
	}

	exists, err := rctx.Git.LocalBranchExists(ctx, name)
	if err != nil {
		return err
	}
	if !exists {
		return gferrors.NewBranchNotFoundError(name)
	}

	cfg := rctx.Config
	rctx.Splog.Banner("Rebasing feature %s on top of %s", name, cfg.MainlineRef())

	steps := []step{
		{
			label: fmt.Sprintf("git fetch %s", cfg.UpstreamRemote),
			run: func(ctx context.Context) error {
				return rctx.Git.FetchRemote(ctx, cfg.UpstreamRemote)
			},
		},
		{
			label: fmt.Sprintf("git checkout %s", name),
			run: func(ctx context.Context) error {
				return rctx.Git.CheckoutBranch(ctx, name)
			},
		},
		{
			label: fmt.Sprintf("git rebase %s", cfg.MainlineRef()),
			run: func(ctx context.Context) error {
				return rctx.Git.RebaseOnto(ctx, name, cfg.MainlineRef())
			},
		},
		{
			label: "git submodule update --init --recursive",
			run: func(ctx context.Context) error {
				return rctx.Git.SyncSubmodules(ctx)
			},
		},
	}

	return runPlan(ctx, rctx.Splog, steps)
}
