package cli

import (
	"github.com/spf13/cobra"

	"github.com/smessmer/git-feature/internal/actions"
	"github.com/smessmer/git-feature/internal/runtime"
)

// newRemoveCmd creates the remove command
func newRemoveCmd() *cobra.Command {
	var (
		force bool
		yes   bool
	)

	cmd := &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a feature branch locally and from origin",
		Long: `Remove a feature branch from the local repository and from origin.

If the branch is currently checked out, the working tree is detached onto the
upstream mainline first. The local deletion refuses to delete an unmerged
branch unless --force is given. If only one of the two deletions succeeds,
the error names which half went through.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeBranches,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(rctx *runtime.Context) error {
				return actions.Remove(cmd.Context(), rctx, actions.RemoveOptions{
					BranchName: args[0],
					Force:      force,
					Yes:        yes,
				})
			})
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Delete the local branch even if it is not merged")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
