// Package cli implements the command-line interface for pacplan.
package cli

import (
	"pacplan/internal/config"
	"pacplan/internal/executor"
	"pacplan/internal/ui"
	"pacplan/pkg/backend"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile      string
	dryRun       bool
	yes          bool
	verbose      bool
	noColor      bool
	conflictFlag string
	preferFlag   string

	// Global state
	cfg *config.Config
	be  backend.Backend
)

// Build metadata - set at build time via ldflags
var (
	Version   = "0.1.0-dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "pacplan",
	Short: "Conflict-aware package installation planner",
	Long: `Pacplan plans package installations before performing them: it probes
the package manager without committing anything, parses conflict
diagnostics, resolves each conflict under a configurable policy, and
only then executes the resulting remove-then-install plan.

Examples:
  pacplan install exim                       # Plan and install
  pacplan install exim --conflict yes        # Remove whatever blocks it
  pacplan search smtp --first 5              # Search, take first 5 hits
  pacplan search editor --regex 'vim|emacs'  # Select by pattern
  pacplan install exim -n                    # Dry run: print the plan only`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeApp()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "n", false, "print the plan without executing it")
	rootCmd.PersistentFlags().BoolVarP(&yes, "yes", "y", false, "assume yes to all prompts")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&conflictFlag, "conflict", "", "conflict mode: yes, no or prompt")
	rootCmd.PersistentFlags().StringVar(&preferFlag, "prefer", "", "target preference: installed, target, first or package=<name>")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(historyCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// initializeApp sets up the application state.
func initializeApp() error {
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadFrom(cfgFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	// Apply global flag overrides
	if yes {
		cfg.General.AutoConfirm = true
	}
	if dryRun {
		cfg.General.DryRun = true
	}
	if verbose {
		cfg.Output.Verbose = true
	}
	if noColor {
		cfg.Output.Color = false
	}
	if conflictFlag != "" {
		cfg.Policy.Conflict = conflictFlag
	}
	if preferFlag != "" {
		cfg.Policy.Prefer = preferFlag
	}

	ui.Init(cfg.ShouldUseColor(), cfg.Output.Unicode)

	be = backend.NewPacman(executor.New(false, cfg.Output.Verbose))
	if !be.IsAvailable() {
		ui.WarningMsg("backend %s not found on PATH", be.Name())
	}

	return nil
}

// Version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print pacplan version",
	Run: func(cmd *cobra.Command, args []string) {
		ui.InfoMsg("pacplan version %s", Version)
		if Commit != "unknown" {
			ui.MutedMsg("  Commit: %s", Commit)
		}
		if BuildTime != "unknown" {
			ui.MutedMsg("  Built:  %s", BuildTime)
		}
	},
}
