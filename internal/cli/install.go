package cli

import (
	"context"

	"pacplan/pkg/plan"

	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:     "install [packages...]",
	Aliases: []string{"add"},
	Short:   "Plan and install an explicit list of packages",
	Long: `Plan the installation of the named packages, resolving conflicts
under the configured policy, then execute the plan.

Examples:
  pacplan install exim                   # Install, prompting on conflicts
  pacplan install exim --conflict yes    # Remove whatever blocks it
  pacplan install exim postfix --prefer first
  pacplan install exim -n                # Print the plan, change nothing`,
	Args: cobra.ArbitraryArgs,
	RunE: runInstall,
}

func runInstall(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return usagef("no packages specified")
	}

	targets := plan.NewTargetSet(args...)
	return runPlan(context.Background(), targets)
}
