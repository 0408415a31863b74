// Package actions implements the feature-branch operations: create, rebase,
// push and remove. Each action validates its preconditions, announces the
// git command sequence it is about to run, and executes it step by step.
package actions

import (
	"context"

	"github.com/smessmer/git-feature/internal/output"
)

// step is one git operation in an action's command sequence. The label is the
// equivalent git command line, shown to the user before and during execution.
type step struct {
	label string
	run   func(ctx context.Context) error
}

// runPlan announces and executes a command sequence. On a mid-sequence
// failure it prints the remaining commands so the user can finish the action
// by hand after fixing the problem, then returns the step's error unchanged.
func runPlan(ctx context.Context, splog *output.Splog, steps []step) error {
	splog.Info("# Will run command sequence:")
	for _, s := range steps {
		splog.Info("#   $> %s", s.label)
	}
	splog.Newline()

	for i, s := range steps {
		splog.Command(s.label)
		if err := s.run(ctx); err != nil {
			splog.Newline()
			splog.Warn("This command failed:")
			splog.Command(s.label)
			if i == len(steps)-1 {
				splog.Info("Please fix it and rerun it, then the action is finished.")
			} else {
				splog.Info("Please fix it and rerun it, then finish the action by running:")
				for _, remaining := range steps[i+1:] {
					splog.Command(remaining.label)
				}
			}
			return err
		}
	}
	return nil
}
