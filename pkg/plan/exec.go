package plan

import (
	"context"
	"fmt"
	"strings"

	"pacplan/pkg/backend"
)

// Executor carries out a completed plan: removals one at a time in queued
// order, then a single install. In dry-run mode it prints the ordered
// action list and performs no backend mutation at all.
type Executor struct {
	Backend backend.Backend
	DryRun  bool

	// Printf receives the action lines. Defaults to fmt.Printf.
	Printf func(format string, args ...any)
}

// Execute runs the plan. Removal and install failures are fatal as-is;
// there is no rollback of removals already applied in this run.
func (e *Executor) Execute(ctx context.Context, p *Plan) error {
	printf := e.Printf
	if printf == nil {
		printf = func(format string, args ...any) { fmt.Printf(format+"\n", args...) }
	}

	if e.DryRun {
		for _, name := range p.Removals {
			printf("Remove %s", name)
		}
		if p.Install.Len() > 0 {
			printf("Install {%s}", strings.Join(p.Install.Names(), ", "))
		}
		return nil
	}

	for _, name := range p.Removals {
		if err := e.Backend.Remove(ctx, name); err != nil {
			return fmt.Errorf("removing %s: %w", name, err)
		}
	}

	// Every target may have been dropped during resolution; never invoke
	// the backend with an empty install set.
	if p.Install.Len() == 0 {
		return nil
	}

	if err := e.Backend.Install(ctx, p.Install.Names()); err != nil {
		return fmt.Errorf("installing %s: %w", strings.Join(p.Install.Names(), ", "), err)
	}
	return nil
}
