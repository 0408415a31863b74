package actions

import (
	"context"
	"fmt"

	gferrors "github.com/smessmer/git-feature/internal/errors"
	"github.com/smessmer/git-feature/internal/git"
	"github.com/smessmer/git-feature/internal/runtime"
)

// CreateOptions holds options for the create action
type CreateOptions struct {
	BranchName string

	// NoPublish skips pushing the new branch to origin
	NoPublish bool
}

// Create creates a new feature branch based on the upstream mainline and
// checks it out. By default the branch is also published to origin with
// upstream tracking, so a pull request can be opened right away.
func Create(ctx context.Context, rctx *runtime.Context, opts CreateOptions) error {
	name := opts.BranchName
	if name == "" {
		return fmt.Errorf("branch name must not be empty")
	}

	exists, err := rctx.Git.LocalBranchExists(ctx, name)
	if err != nil {
		return err
	}
	if exists {
		return gferrors.NewBranchExistsError(name)
	}

	cfg := rctx.Config
	rctx.Splog.Banner("Creating feature %s", name)

	steps := []step{
		{
			label: fmt.Sprintf("git fetch %s", cfg.UpstreamRemote),
			run: func(ctx context.Context) error {
				return rctx.Git.FetchRemote(ctx, cfg.UpstreamRemote)
			},
		},
		{
			label: fmt.Sprintf("git checkout -b %s %s --no-track", name, cfg.MainlineRef()),
			run: func(ctx context.Context) error {
				return rctx.Git.CreateBranch(ctx, name, cfg.MainlineRef())
			},
		},
		{
			label: "git submodule update --init --recursive",
			run: func(ctx context.Context) error {
				return rctx.Git.SyncSubmodules(ctx)
			},
		},
	}

	if !opts.NoPublish {
		steps = append(steps, step{
			label: fmt.Sprintf("git push --set-upstream %s %s", cfg.OriginRemote, name),
			run: func(ctx context.Context) error {
				return rctx.Git.PushBranch(ctx, cfg.OriginRemote, name, git.PushOptions{SetUpstream: true})
			},
		})
	}

	return runPlan(ctx, rctx.Splog, steps)
}
