package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pacplan/internal/tui"
	"pacplan/internal/ui"
	"pacplan/pkg/backend"
	"pacplan/pkg/plan"

	"github.com/spf13/cobra"
)

var (
	searchIndices     []int
	searchNames       []string
	searchRegex       string
	searchFirst       int
	searchInteractive bool
	searchTUI         bool
)

var searchCmd = &cobra.Command{
	Use:   "search [terms...]",
	Short: "Search for packages and plan installing a selection",
	Long: `Search the backend for packages matching the given terms, select
targets with the selection flags, then plan and install them.

Selection flags are additive: a candidate is selected if it matches any
of them. With no selection flag at all, nothing is installed — the
numbered candidate list is printed so you can re-run with a selection.

Examples:
  pacplan search smtp --index 2,5          # Pick by list position
  pacplan search smtp --name exim          # Pick by exact name
  pacplan search editor --regex 'vi(m|le)' # Pick by pattern
  pacplan search smtp --first 3            # Pick the first three hits
  pacplan search smtp --interactive        # Prompt for "1 3 5-7"
  pacplan search smtp --tui                # Full-screen picker`,
	Args: cobra.ArbitraryArgs,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntSliceVar(&searchIndices, "index", nil, "select by 1-based result positions")
	searchCmd.Flags().StringSliceVar(&searchNames, "name", nil, "select by exact package name")
	searchCmd.Flags().StringVar(&searchRegex, "regex", "", "select by case-insensitive pattern on name or description")
	searchCmd.Flags().IntVar(&searchFirst, "first", 0, "select the first N candidates")
	searchCmd.Flags().BoolVar(&searchInteractive, "interactive", false, "prompt for an enumerated selection")
	searchCmd.Flags().BoolVar(&searchTUI, "tui", false, "pick candidates in a full-screen list")
}

func runSearch(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return usagef("no search terms specified")
	}

	ctx := context.Background()

	var candidates []backend.Candidate
	err := ui.WithSpinner(fmt.Sprintf("Searching for %s...", strings.Join(args, " ")), func() error {
		var searchErr error
		candidates, searchErr = be.Search(ctx, args)
		return searchErr
	})
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		return fmt.Errorf("%w for %q", plan.ErrNoCandidates, strings.Join(args, " "))
	}

	// The full list is always printed, selection or not, for auditability.
	ui.PrintCandidates(candidates)

	sel := plan.Selection{
		Indices: searchIndices,
		Names:   searchNames,
		Pattern: searchRegex,
		First:   searchFirst,
	}

	if searchInteractive {
		indices, err := promptSelection(len(candidates))
		if err != nil {
			return err
		}
		sel.Indices = append(sel.Indices, indices...)
	}

	if searchTUI {
		picked, err := tui.PickCandidates(candidates)
		if err != nil {
			return err
		}
		for _, c := range picked {
			sel.Indices = append(sel.Indices, c.SourceIndex)
		}
	}

	selected, err := plan.Select(candidates, sel)
	if err != nil {
		if errors.Is(err, plan.ErrNoSelection) || errors.Is(err, plan.ErrNoCandidates) {
			return err
		}
		// Bad pattern etc.
		return &UsageError{Err: err}
	}

	names := make([]string, len(selected))
	for i, c := range selected {
		names[i] = c.Name
	}

	ui.InfoMsg("Selected %d target(s): %s", len(names), strings.Join(names, ", "))

	return runPlan(ctx, plan.NewTargetSet(names...))
}

// promptSelection reads and parses an enumerated selection string.
func promptSelection(max int) ([]int, error) {
	spec, err := ui.SelectionInput()
	if err != nil {
		return nil, err
	}
	if spec == "" {
		return nil, nil
	}

	indices, err := plan.ParseIndexSpec(spec, max)
	if err != nil {
		return nil, &UsageError{Err: err}
	}
	return indices, nil
}
