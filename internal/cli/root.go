// Package cli wires the git-feature subcommands to the feature-branch actions.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "git-feature",
		Short: "Create, rebase, push and remove git feature branches",
		Long: `Create, rebase, push and remove git feature branches.

git-feature standardizes the feature-branch workflow for repositories forked
from an official upstream project. It expects two remotes to be configured:
'upstream' pointing at the official repository and 'origin' pointing at your
fork.

Examples:
  $> git-feature create myfeature   # Creates and checks out new feature 'myfeature'
  $> git-feature rebase myfeature   # Rebases 'myfeature' on top of the upstream mainline
  $> git-feature push myfeature     # Pushes 'myfeature' to origin for creation of a pull request
  $> git-feature remove myfeature   # Removes 'myfeature' from local and 'origin' remote`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newCreateCmd())
	rootCmd.AddCommand(newRebaseCmd())
	rootCmd.AddCommand(newPushCmd())
	rootCmd.AddCommand(newRemoveCmd())

	return rootCmd
}
