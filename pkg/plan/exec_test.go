package plan

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func TestExecuteDryRunTouchesNothing(t *testing.T) {
	ctx := context.Background()
	fb := newFakeBackend()

	var lines []string
	e := &Executor{
		Backend: fb,
		DryRun:  true,
		Printf: func(format string, args ...any) {
			lines = append(lines, fmt.Sprintf(format, args...))
		},
	}

	p := &Plan{
		Removals: []string{"smtpd", "ssmtp"},
		Install:  NewTargetSet("exim", "mutt"),
	}
	if err := e.Execute(ctx, p); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if len(fb.removed) != 0 || len(fb.installs) != 0 {
		t.Errorf("dry run touched the backend: removed=%v installs=%v", fb.removed, fb.installs)
	}

	want := []string{
		"Remove smtpd",
		"Remove ssmtp",
		"Install {exim, mutt}",
	}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("printed %v, want %v", lines, want)
	}
}

func TestExecuteRemovalsBeforeInstall(t *testing.T) {
	ctx := context.Background()
	fb := newFakeBackend()

	e := &Executor{Backend: fb, Printf: func(string, ...any) {}}
	p := &Plan{
		Removals: []string{"smtpd", "ssmtp"},
		Install:  NewTargetSet("exim"),
	}
	if err := e.Execute(ctx, p); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if !reflect.DeepEqual(fb.removed, []string{"smtpd", "ssmtp"}) {
		t.Errorf("removed %v, want [smtpd ssmtp] in queue order", fb.removed)
	}
	if len(fb.installs) != 1 || !reflect.DeepEqual(fb.installs[0], []string{"exim"}) {
		t.Errorf("installs = %v, want one call with [exim]", fb.installs)
	}
}

func TestExecuteSkipsEmptyInstall(t *testing.T) {
	ctx := context.Background()
	fb := newFakeBackend()

	e := &Executor{Backend: fb, Printf: func(string, ...any) {}}
	p := &Plan{Removals: []string{"smtpd"}, Install: NewTargetSet()}
	if err := e.Execute(ctx, p); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if !reflect.DeepEqual(fb.removed, []string{"smtpd"}) {
		t.Errorf("removed %v, want [smtpd]", fb.removed)
	}
	if len(fb.installs) != 0 {
		t.Errorf("installs = %v, want none for an empty target set", fb.installs)
	}
}

func TestExecuteRemovalFailureStops(t *testing.T) {
	ctx := context.Background()
	fb := newFakeBackend()
	fb.removeErr = errors.New("target not found")

	e := &Executor{Backend: fb, Printf: func(string, ...any) {}}
	p := &Plan{Removals: []string{"smtpd"}, Install: NewTargetSet("exim")}

	err := e.Execute(ctx, p)
	if err == nil || !errors.Is(err, fb.removeErr) {
		t.Fatalf("Execute error = %v, want wrapped removal error", err)
	}
	if !strings.Contains(err.Error(), "smtpd") {
		t.Errorf("error %q should name the failing package", err)
	}
	if len(fb.installs) != 0 {
		t.Error("install must not run after a removal failure")
	}
}

func TestExecuteInstallFailure(t *testing.T) {
	ctx := context.Background()
	fb := newFakeBackend()
	fb.installErr = errors.New("download failed")

	e := &Executor{Backend: fb, Printf: func(string, ...any) {}}
	p := &Plan{Install: NewTargetSet("exim")}

	err := e.Execute(ctx, p)
	if err == nil || !errors.Is(err, fb.installErr) {
		t.Fatalf("Execute error = %v, want wrapped install error", err)
	}
}
