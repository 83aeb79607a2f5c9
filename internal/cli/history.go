package cli

import (
	"pacplan/internal/history"
	"pacplan/internal/ui"

	"github.com/spf13/cobra"
)

var (
	historyLimit int
	historyClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show previously executed plans",
	Long: `Show the plans pacplan has executed, newest first.

Examples:
  pacplan history          # Show recent plans
  pacplan history -l 50    # Show more
  pacplan history --clear  # Forget everything`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 20, "number of entries to show")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "delete all history entries")
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := history.Open()
	if err != nil {
		return err
	}
	defer store.Close()

	if historyClear {
		if err := store.Clear(); err != nil {
			return err
		}
		ui.SuccessMsg("History cleared")
		return nil
	}

	records, err := store.List(historyLimit)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		ui.InfoMsg("No plans recorded yet")
		return nil
	}

	ui.HeaderMsg("Plan history (%d)", len(records))
	for _, r := range records {
		if r.Success {
			ui.Println("  %s", r.Summary())
		} else {
			ui.Println("  %s", ui.Red(r.Summary()))
		}
		if r.Error != "" && verbose {
			ui.MutedMsg("      %s", r.Error)
		}
	}

	return nil
}
