package actions

import (
	"context"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"

	gferrors "github.com/smessmer/git-feature/internal/errors"
	"github.com/smessmer/git-feature/internal/output"
	"github.com/smessmer/git-feature/internal/runtime"
)

// RemoveOptions holds options for the remove action
type RemoveOptions struct {
	BranchName string

	// Force deletes the local branch even if it is not merged
	Force bool

	// Yes skips the confirmation prompt
	Yes bool
}

// Remove deletes a feature branch locally and from origin. When only one of
// the two deletions succeeds, the failure names which half went through.
func Remove(ctx context.Context, rctx *runtime.Context, opts RemoveOptions) error {
	name := opts.BranchName
	if name == "" {
		return fmt.Errorf("branch name must not be empty")
	}

	cfg := rctx.Config

	localExists, err := rctx.Git.LocalBranchExists(ctx, name)
	if err != nil {
		return err
	}
	remoteExists, err := rctx.Git.RemoteBranchExists(ctx, cfg.OriginRemote, name)
	if err != nil {
		return err
	}
	if !localExists && !remoteExists {
		return gferrors.NewBranchNotFoundError(name)
	}

	if !opts.Yes && interactiveAllowed() {
		confirmed := false
		prompt := &survey.Confirm{
			Message: fmt.Sprintf("Remove branch %s locally and from %s?", output.RenderBranchName(name), cfg.OriginRemote),
		}
		if err := survey.AskOne(prompt, &confirmed); err != nil {
			return fmt.Errorf("canceled")
		}
		if !confirmed {
			rctx.Splog.Info("Aborted, branch %s was not removed", name)
			return nil
		}
	}

	rctx.Splog.Banner("Removing feature %s", name)

	localDeleted := false
	var steps []step

	if localExists {
		currentBranch, err := rctx.Git.CurrentBranch(ctx)
		if err != nil {
			return err
		}
		if currentBranch == name {
			steps = append(steps, step{
				label: fmt.Sprintf("git checkout --detach %s", cfg.MainlineRef()),
				run: func(ctx context.Context) error {
					return rctx.Git.CheckoutDetached(ctx, cfg.MainlineRef())
				},
			})
		}

		deleteLabel := fmt.Sprintf("git branch -d %s", name)
		if opts.Force {
			deleteLabel = fmt.Sprintf("git branch -D %s", name)
		}
		steps = append(steps, step{
			label: deleteLabel,
			run: func(ctx context.Context) error {
				if err := rctx.Git.DeleteLocalBranch(ctx, name, opts.Force); err != nil {
					return err
				}
				localDeleted = true
				return nil
			},
		})
	}

	if remoteExists {
		steps = append(steps, step{
			label: fmt.Sprintf("git push %s :%s", cfg.OriginRemote, name),
			run: func(ctx context.Context) error {
				return rctx.Git.DeleteRemoteBranch(ctx, cfg.OriginRemote, name)
			},
		})
	}

	if err := runPlan(ctx, rctx.Splog, steps); err != nil {
		if localDeleted {
			return gferrors.NewPartialRemovalError(name, true, false, err)
		}
		return err
	}
	return nil
}

// interactiveAllowed reports whether a confirmation prompt can be shown
func interactiveAllowed() bool {
	if os.Getenv("GIT_FEATURE_NO_INTERACTIVE") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}
