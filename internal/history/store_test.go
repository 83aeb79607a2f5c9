package history

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenAt(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("OpenAt: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreRecordAndList(t *testing.T) {
	store := openTestStore(t)

	first := NewRecord("pacman", []string{"exim"}, []string{"smtpd"}, []string{"exim"}, false)
	first.MarkSuccess()
	if err := store.Record(first); err != nil {
		t.Fatalf("Record: %v", err)
	}

	// Distinct timestamps keep the chronological key order stable.
	second := NewRecord("pacman", []string{"mutt"}, nil, []string{"mutt"}, true)
	second.Timestamp = first.Timestamp.Add(time.Second)
	second.MarkFailed(errors.New("download failed"))
	if err := store.Record(second); err != nil {
		t.Fatalf("Record: %v", err)
	}

	records, err := store.List(10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("List returned %d records, want 2", len(records))
	}

	// Newest first.
	if records[0].Targets[0] != "mutt" || records[1].Targets[0] != "exim" {
		t.Errorf("List order wrong: %v then %v", records[0].Targets, records[1].Targets)
	}
	if records[0].Success || records[0].Error != "download failed" {
		t.Errorf("failure state not preserved: %+v", records[0])
	}
	if !records[1].Success {
		t.Error("success state not preserved")
	}
	if got := records[1].Removals; len(got) != 1 || got[0] != "smtpd" {
		t.Errorf("Removals = %v, want [smtpd]", got)
	}
}

func TestStoreListLimit(t *testing.T) {
	store := openTestStore(t)

	base := time.Now()
	for i := 0; i < 5; i++ {
		r := NewRecord("pacman", []string{"pkg"}, nil, []string{"pkg"}, false)
		r.Timestamp = base.Add(time.Duration(i) * time.Second)
		if err := store.Record(r); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	records, err := store.List(3)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 3 {
		t.Errorf("List(3) returned %d records", len(records))
	}
}

func TestStoreLast(t *testing.T) {
	store := openTestStore(t)

	last, err := store.Last()
	if err != nil {
		t.Fatalf("Last: %v", err)
	}
	if last != nil {
		t.Errorf("Last on empty store = %+v, want nil", last)
	}

	r := NewRecord("pacman", []string{"exim"}, nil, []string{"exim"}, false)
	if err := store.Record(r); err != nil {
		t.Fatalf("Record: %v", err)
	}

	last, err = store.Last()
	if err != nil {
		t.Fatalf("Last: %v", err)
	}
	if last == nil || last.ID != r.ID {
		t.Errorf("Last = %+v, want the recorded plan", last)
	}
}

func TestStoreClear(t *testing.T) {
	store := openTestStore(t)

	r := NewRecord("pacman", []string{"exim"}, nil, []string{"exim"}, false)
	if err := store.Record(r); err != nil {
		t.Fatalf("Record: %v", err)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	count, err := store.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 0 {
		t.Errorf("Count after Clear = %d, want 0", count)
	}

	// The store must stay usable after a clear.
	if err := store.Record(r); err != nil {
		t.Errorf("Record after Clear: %v", err)
	}
}

func TestRecordSummary(t *testing.T) {
	r := NewRecord("pacman", []string{"exim"}, []string{"smtpd"}, []string{"exim"}, false)
	r.MarkSuccess()

	s := r.Summary()
	for _, want := range []string{"-smtpd", "+exim", "[pacman]", "(success)"} {
		if !strings.Contains(s, want) {
			t.Errorf("Summary %q missing %q", s, want)
		}
	}

	dry := NewRecord("pacman", []string{"exim"}, nil, []string{"exim"}, true)
	if !strings.Contains(dry.Summary(), "(dry-run)") {
		t.Errorf("Summary %q should mark dry runs", dry.Summary())
	}
}
