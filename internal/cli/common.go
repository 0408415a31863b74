package cli

import (
	"github.com/spf13/cobra"

	"github.com/smessmer/git-feature/internal/git"
	"github.com/smessmer/git-feature/internal/runtime"
)

// run is a helper that builds a runtime context for a command's execution function
func run(fn func(ctx *runtime.Context) error) error {
	rctx, err := runtime.NewContext()
	if err != nil {
		return err
	}
	defer rctx.Splog.Close()
	return fn(rctx)
}

// completeBranches is a helper for cobra.ValidArgsFunction that returns all
// local branch names in the repository
func completeBranches(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	if err := git.InitDefaultRepo(); err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	branches, err := git.GetAllBranchNames()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return branches, cobra.ShellCompDirectiveNoFileComp
}
