// Package history provides plan execution history backed by BoltDB.
package history

import (
	"strings"
	"time"
)

// Record describes one executed (or dry-run) installation plan.
type Record struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Backend   string    `json:"backend"`
	Targets   []string  `json:"targets"`   // Requested targets before resolution
	Removals  []string  `json:"removals"`  // Queued removals, in executed order
	Installed []string  `json:"installed"` // Final install set
	DryRun    bool      `json:"dry_run"`
	Success   bool      `json:"success"`
	Error     string    `json:"error,omitempty"`
}

// NewRecord creates a record for a plan about to be executed.
func NewRecord(backendName string, targets, removals, installed []string, dryRun bool) *Record {
	return &Record{
		ID:        generateID(),
		Timestamp: time.Now(),
		Backend:   backendName,
		Targets:   targets,
		Removals:  removals,
		Installed: installed,
		DryRun:    dryRun,
	}
}

// MarkSuccess marks the record as successful.
func (r *Record) MarkSuccess() {
	r.Success = true
}

// MarkFailed marks the record as failed with an error message.
func (r *Record) MarkFailed(err error) {
	r.Success = false
	if err != nil {
		r.Error = err.Error()
	}
}

// generateID generates a unique ID for the record.
func generateID() string {
	return time.Now().Format("20060102150405.000000")
}

// FormatTime returns a human-readable timestamp.
func (r *Record) FormatTime() string {
	return r.Timestamp.Format("2006-01-02 15:04:05")
}

// Summary returns a brief one-line summary of the plan.
func (r *Record) Summary() string {
	status := "success"
	if !r.Success {
		status = "failed"
	}
	if r.DryRun {
		status = "dry-run"
	}

	var b strings.Builder
	b.WriteString(r.FormatTime())
	if len(r.Removals) > 0 {
		b.WriteString(" -" + strings.Join(r.Removals, " -"))
	}
	if len(r.Installed) > 0 {
		b.WriteString(" +" + strings.Join(r.Installed, " +"))
	}
	b.WriteString(" [" + r.Backend + "] (" + status + ")")
	return b.String()
}
