package cli

import (
	"github.com/spf13/cobra"

	"github.com/smessmer/git-feature/internal/actions"
	"github.com/smessmer/git-feature/internal/runtime"
)

// newCreateCmd creates the create command
func newCreateCmd() *cobra.Command {
	var noPublish bool

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new feature branch based on the upstream mainline",
		Long: `Create a new feature branch based on the upstream mainline and check it out.

Fetches the latest state of the upstream remote first, so the new branch
starts at the current upstream tip. The branch is pushed to origin with
upstream tracking unless --no-publish is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(rctx *runtime.Context) error {
				return actions.Create(cmd.Context(), rctx, actions.CreateOptions{
					BranchName: args[0],
					NoPublish:  noPublish,
				})
			})
		},
	}

	cmd.Flags().BoolVar(&noPublish, "no-publish", false, "Do not push the new branch to origin")

	return cmd
}
