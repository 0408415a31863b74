package cli

import (
	"github.com/spf13/cobra"

	"github.com/smessmer/git-feature/internal/actions"
	"github.com/smessmer/git-feature/internal/runtime"
)

// newRebaseCmd creates the rebase command
func newRebaseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rebase <name>",
		Short: "Rebase a feature branch on top of the upstream mainline",
		Long: `Rebase a feature branch on top of the current upstream mainline.

Fetches the latest state of the upstream remote, checks out the branch and
replays its commits onto the upstream tip. If the rebase stops on a conflict,
the conflict state is left in place: resolve it and run 'git rebase
--continue', or run 'git rebase --abort' to give up.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeBranches,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(rctx *runtime.Context) error {
				return actions.Rebase(cmd.Context(), rctx, actions.RebaseOptions{
					BranchName: args[0],
				})
			})
		},
	}

	return cmd
}
