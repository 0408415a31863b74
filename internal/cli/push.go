package cli

import (
	"github.com/spf13/cobra"

	"github.com/smessmer/git-feature/internal/actions"
	"github.com/smessmer/git-feature/internal/runtime"
)

// newPushCmd creates the push command
func newPushCmd() *cobra.Command {
	var (
		forceWithLease bool
		createPR       bool
	)

	cmd := &cobra.Command{
		Use:   "push <name>",
		Short: "Push a feature branch to origin for creation of a pull request",
		Long: `Push a feature branch to origin with upstream tracking.

A push rejected because the remote branch has diverged is never forced;
use --force-with-lease to overwrite the remote branch as long as it still
points where your last fetch saw it.

With --pr, a draft pull request into the upstream mainline is opened after
the push, using the token from GITHUB_TOKEN or GH_TOKEN.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeBranches,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(rctx *runtime.Context) error {
				return actions.Push(cmd.Context(), rctx, actions.PushOptions{
					BranchName:     args[0],
					ForceWithLease: forceWithLease,
					CreatePR:       createPR,
				})
			})
		},
	}

	cmd.Flags().BoolVar(&forceWithLease, "force-with-lease", false, "Overwrite the remote branch if it has not changed since the last fetch")
	cmd.Flags().BoolVar(&createPR, "pr", false, "Open a draft pull request into the upstream mainline after pushing")

	return cmd
}
