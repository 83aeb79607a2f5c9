// Package executor handles command execution with privilege escalation support.
package executor

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Executor runs backend commands, elevating with sudo where required.
type Executor struct {
	dryRun  bool
	verbose bool
}

// New creates a new Executor with the given options.
func New(dryRun, verbose bool) *Executor {
	return &Executor{
		dryRun:  dryRun,
		verbose: verbose,
	}
}

// RunSudo executes a command with sudo if not already root.
func (e *Executor) RunSudo(ctx context.Context, name string, args ...string) error {
	if e.dryRun {
		e.printDryRunSudo(name, args)
		return nil
	}

	cmd, err := e.sudoCommand(ctx, name, args)
	if err != nil {
		return err
	}

	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	e.trace(true, name, args)
	return cmd.Run()
}

// RunSudoWithStderr executes a command with sudo while capturing stderr.
// Both stdout and stderr still stream to the terminal; the captured stderr
// is returned for error analysis.
func (e *Executor) RunSudoWithStderr(ctx context.Context, name string, args ...string) (string, error) {
	if e.dryRun {
		e.printDryRunSudo(name, args)
		return "", nil
	}

	cmd, err := e.sudoCommand(ctx, name, args)
	if err != nil {
		return "", err
	}

	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	var stderrBuf bytes.Buffer
	cmd.Stderr = io.MultiWriter(os.Stderr, &stderrBuf)

	e.trace(true, name, args)
	err = cmd.Run()
	return stderrBuf.String(), err
}

// Output runs a command and returns its stdout.
func (e *Executor) Output(ctx context.Context, name string, args ...string) (string, error) {
	if e.dryRun {
		e.printDryRun(name, args)
		return "", nil
	}

	cmd := exec.CommandContext(ctx, name, args...)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = os.Stderr

	e.trace(false, name, args)
	err := cmd.Run()
	return stdout.String(), err
}

// OutputQuiet runs a command and returns its stdout, suppressing stderr.
func (e *Executor) OutputQuiet(ctx context.Context, name string, args ...string) (string, error) {
	if e.dryRun {
		e.printDryRun(name, args)
		return "", nil
	}

	cmd := exec.CommandContext(ctx, name, args...)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	// Suppress stderr

	e.trace(false, name, args)
	err := cmd.Run()
	return stdout.String(), err
}

// OutputCombined runs a command and returns stdout and stderr combined,
// without echoing anything to the terminal. Used for speculative probes
// whose diagnostics are parsed rather than shown.
func (e *Executor) OutputCombined(ctx context.Context, name string, args ...string) (string, error) {
	if e.dryRun {
		e.printDryRun(name, args)
		return "", nil
	}

	cmd := exec.CommandContext(ctx, name, args...)
	var combined bytes.Buffer
	cmd.Stdout = &combined
	cmd.Stderr = &combined

	e.trace(false, name, args)
	err := cmd.Run()
	return combined.String(), err
}

// sudoCommand builds the command, prefixing sudo when not running as root.
func (e *Executor) sudoCommand(ctx context.Context, name string, args []string) (*exec.Cmd, error) {
	if isRoot() {
		return exec.CommandContext(ctx, name, args...), nil
	}
	if hasSudo() {
		sudoArgs := append([]string{name}, args...)
		return exec.CommandContext(ctx, "sudo", sudoArgs...), nil
	}
	return nil, fmt.Errorf("this operation requires root privileges, but sudo is not available")
}

func (e *Executor) trace(sudo bool, name string, args []string) {
	if !e.verbose {
		return
	}
	switch {
	case sudo && isRoot():
		fmt.Printf("Executing (as root): %s %s\n", name, strings.Join(args, " "))
	case sudo:
		fmt.Printf("Executing (with sudo): %s %s\n", name, strings.Join(args, " "))
	default:
		fmt.Printf("Executing: %s %s\n", name, strings.Join(args, " "))
	}
}

func (e *Executor) printDryRun(name string, args []string) {
	fmt.Printf("[dry-run] Would execute: %s %s\n", name, strings.Join(args, " "))
}

func (e *Executor) printDryRunSudo(name string, args []string) {
	if isRoot() {
		fmt.Printf("[dry-run] Would execute (as root): %s %s\n", name, strings.Join(args, " "))
	} else {
		fmt.Printf("[dry-run] Would execute (with sudo): sudo %s %s\n", name, strings.Join(args, " "))
	}
}
