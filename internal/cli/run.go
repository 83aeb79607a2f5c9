package cli

import (
	"context"
	"errors"
	"fmt"

	"pacplan/internal/executor"
	"pacplan/internal/history"
	"pacplan/internal/ui"
	"pacplan/pkg/plan"
)

// buildPolicy constructs the resolution policy from config and flags.
// Invalid values are rejected here, before any backend call.
func buildPolicy() (plan.Policy, error) {
	mode, err := plan.ParseConflictMode(cfg.Policy.Conflict)
	if err != nil {
		return plan.Policy{}, &UsageError{Err: err}
	}

	pref, err := plan.ParsePreference(cfg.Policy.Prefer)
	if err != nil {
		return plan.Policy{}, &UsageError{Err: err}
	}

	return plan.Policy{ConflictMode: mode, Preference: pref}, nil
}

// runPlan drives the plan loop over targets and executes the result.
// Shared by install and search modes.
func runPlan(ctx context.Context, targets *plan.TargetSet) error {
	policy, err := buildPolicy()
	if err != nil {
		return err
	}

	prompt := func(pkg string) (bool, error) {
		return ui.Confirm(fmt.Sprintf("Remove installed package %s?", pkg), false)
	}
	if cfg.General.AutoConfirm {
		// -y also answers removal prompts
		prompt = func(string) (bool, error) { return true, nil }
	}

	loop := &plan.Loop{
		Backend:       be,
		Resolver:      plan.NewResolver(be, policy, prompt),
		MaxIterations: cfg.General.MaxIterations,
		Logf:          ui.MutedMsg,
	}

	requested := targets.Names()

	p, err := loop.Run(ctx, targets)
	if err != nil {
		var unparsable *plan.UnparsableError
		if errors.As(err, &unparsable) {
			// Surface the raw diagnostic verbatim for manual triage.
			ui.ErrorMsg("probe failed and the output is not a package conflict:")
			ui.Println("%s", unparsable.Diagnostic)
		}
		return err
	}

	if cfg.General.DryRun {
		exec := &plan.Executor{Backend: be, DryRun: true, Printf: ui.Println}
		if p.IsNoop() {
			ui.InfoMsg("Nothing to do")
		}
		return exec.Execute(ctx, p)
	}

	ui.PrintPlan(p)
	if p.IsNoop() {
		return nil
	}

	if !executor.CanElevate() {
		return fmt.Errorf("executing this plan requires root privileges, but sudo is not available")
	}

	if !cfg.General.AutoConfirm {
		confirmed, err := ui.Confirm("Proceed with this plan?", true)
		if err != nil {
			return err
		}
		if !confirmed {
			return ErrAborted
		}
	}

	record := history.NewRecord(be.Name(), requested, p.Removals, p.Install.Names(), false)

	exec := &plan.Executor{Backend: be, Printf: ui.Println}
	err = exec.Execute(ctx, p)

	if err != nil {
		record.MarkFailed(err)
	} else {
		record.MarkSuccess()
		ui.SuccessMsg("Plan executed: %d removal(s), %d install(s)", len(p.Removals), p.Install.Len())
	}

	// Record in history (ignore errors)
	if cfg.General.History {
		if store, storeErr := history.Open(); storeErr == nil {
			_ = store.Record(record) //nolint:errcheck
			_ = store.Close()        //nolint:errcheck
		}
	}

	return err
}
