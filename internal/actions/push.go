package actions

import (
	"context"
	"fmt"

	gferrors "github.com/smessmer/git-feature/internal/errors"
	"github.com/smessmer/git-feature/internal/git"
	"github.com/smessmer/git-feature/internal/github"
	"github.com/smessmer/git-feature/internal/runtime"
)

// PushOptions holds options for the push action
type PushOptions struct {
	BranchName string

	// ForceWithLease overrides a non-fast-forward rejection when the
	// remote-tracking ref is still current
	ForceWithLease bool

	// CreatePR opens a pull request into the upstream mainline after pushing
	CreatePR bool

	// NewGitHubClient overrides GitHub client construction, used by tests
	NewGitHubClient func(ctx context.Context) (github.Client, error)
}

// Push publishes a feature branch to origin with upstream tracking, so a
// pull request against the upstream project can be opened.
func Push(ctx context.Context, rctx *runtime.Context, opts PushOptions) error {
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
	rctx.Splog.Banner("Pushing feature %s to %s", name, cfg.OriginRemote)

	label := fmt.Sprintf("git push --set-upstream %s %s", cfg.OriginRemote, name)
	if opts.ForceWithLease {
		label = fmt.Sprintf("git push --set-upstream --force-with-lease %s %s", cfg.OriginRemote, name)
	}

	steps := []step{
		{
			label: label,
			run: func(ctx context.Context) error {
				return rctx.Git.PushBranch(ctx, cfg.OriginRemote, name, git.PushOptions{
					SetUpstream:    true,
					ForceWithLease: opts.ForceWithLease,
				})
			},
		},
	}

	if err := runPlan(ctx, rctx.Splog, steps); err != nil {
		return err
	}

	if opts.CreatePR {
		return openPullRequest(ctx, rctx, name, opts.NewGitHubClient)
	}
	return nil
}

// openPullRequest opens a PR from the origin fork's branch into the upstream
// project's mainline. A missing token downgrades to a warning since the push
// itself already succeeded.
func openPullRequest(ctx context.Context, rctx *runtime.Context, name string, newClient func(ctx context.Context) (github.Client, error)) error {
	if rctx.Project == nil {
		rctx.Splog.Warn("Skipping pull request creation: upstream project unknown")
		return nil
	}
	if newClient == nil {
		newClient = func(ctx context.Context) (github.Client, error) {
			return github.NewRealClient(ctx)
		}
	}

	client, err := newClient(ctx)
	if err != nil {
		rctx.Splog.Warn("Skipping pull request creation: %v", err)
		return nil
	}

	head := name
	if rctx.OriginOwner != "" && rctx.OriginOwner != rctx.Project.Owner {
		head = rctx.OriginOwner + ":" + name
	}

	pr, err := client.CreatePullRequest(ctx, rctx.Project.Owner, rctx.Project.Repo, github.CreatePROptions{
		Title: name,
		Head:  head,
		Base:  rctx.Config.Mainline,
		Draft: true,
	})
	if err != nil {
		return err
	}

	rctx.Splog.Info("Opened pull request #%d: %s", pr.Number, pr.HTMLURL)
	return nil
}
