package backend

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"pacplan/internal/executor"
)

// Pacman drives Arch Linux's pacman package manager.
type Pacman struct {
	binary string
	exec   *executor.Executor
}

// NewPacman creates a pacman backend using the given executor.
func NewPacman(exe *executor.Executor) *Pacman {
	return &Pacman{
		binary: "pacman",
		exec:   exe,
	}
}

// Name returns the backend identifier.
func (p *Pacman) Name() string {
	return "pacman"
}

// IsAvailable returns true if the pacman binary is on PATH.
func (p *Pacman) IsAvailable() bool {
	_, err := exec.LookPath(p.binary)
	return err == nil
}

// Search finds packages matching the given terms via pacman -Ss.
func (p *Pacman) Search(ctx context.Context, terms []string) ([]Candidate, error) {
	args := append([]string{"-Ss"}, terms...)
	output, err := p.exec.Output(ctx, p.binary, args...)
	if err != nil {
		// Pacman exits non-zero when there are no results.
		return nil, nil
	}
	return p.parseSearchOutput(output), nil
}

// parseSearchOutput parses pacman -Ss output into ordered candidates.
func (p *Pacman) parseSearchOutput(output string) []Candidate {
	var candidates []Candidate
	lines := strings.Split(output, "\n")

	for i := 0; i < len(lines); i++ {
		line := lines[i]

		// Repository/package line: repo/package version [installed]
		if !strings.Contains(line, "/") || strings.HasPrefix(line, " ") {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) < 2 {
			continue
		}

		repoPkg := strings.SplitN(parts[0], "/", 2)
		if len(repoPkg) < 2 {
			continue
		}

		name := repoPkg[1]
		version := parts[1]

		// Description is on the following indented line.
		var description string
		if i+1 < len(lines) && strings.HasPrefix(lines[i+1], " ") {
			description = strings.TrimSpace(lines[i+1])
			i++
		}

		installed := false
		for _, part := range parts {
			if strings.HasPrefix(part, "[installed") {
				installed = true
				break
			}
		}

		candidates = append(candidates, Candidate{
			Name:        name,
			Version:     version,
			Description: description,
			Installed:   installed,
			SourceIndex: len(candidates) + 1,
		})
	}

	return candidates
}

// IsInstalled checks whether a package is installed via pacman -Qi.
func (p *Pacman) IsInstalled(ctx context.Context, name string) (bool, error) {
	_, err := p.exec.OutputQuiet(ctx, p.binary, "-Qi", name)
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ResolveCanonicalName reports whether token names a package pacman knows,
// either in the sync databases or the local one.
func (p *Pacman) ResolveCanonicalName(ctx context.Context, token string) (string, bool) {
	if token == "" {
		return "", false
	}
	if _, err := p.exec.OutputQuiet(ctx, p.binary, "-Si", token); err == nil {
		return token, true
	}
	if _, err := p.exec.OutputQuiet(ctx, p.binary, "-Qi", token); err == nil {
		return token, true
	}
	return "", false
}

// ProbeInstall resolves the transaction for targets without committing it,
// using pacman's print mode. The combined output is returned as the
// diagnostic on failure.
func (p *Pacman) ProbeInstall(ctx context.Context, targets []string) (ProbeResult, error) {
	args := append([]string{"-S", "--print", "--noconfirm"}, targets...)
	output, err := p.exec.OutputCombined(ctx, p.binary, args...)
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return ProbeResult{OK: false, Diagnostic: output}, nil
		}
		// Not a transaction failure: the probe itself could not run.
		return ProbeResult{}, err
	}
	return ProbeResult{OK: true}, nil
}

// Remove uninstalls exactly the named package. Dependencies are left alone;
// a queued removal must never widen into a sweep.
func (p *Pacman) Remove(ctx context.Context, name string) error {
	return p.exec.RunSudo(ctx, p.binary, "-R", "--noconfirm", name)
}

// Install installs all targets in a single transaction.
func (p *Pacman) Install(ctx context.Context, targets []string) error {
	args := append([]string{"-S", "--noconfirm"}, targets...)
	stderr, err := p.exec.RunSudoWithStderr(ctx, p.binary, args...)
	if err != nil {
		if msg := strings.TrimSpace(stderr); msg != "" {
			return fmt.Errorf("pacman install failed: %s: %w", firstLine(msg), err)
		}
		return fmt.Errorf("pacman install failed: %w", err)
	}
	return nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
