package backend

import "testing"

func TestParseSearchOutput(t *testing.T) {
	output := `extra/exim 4.98-1
    Message Transfer Agent
extra/postfix 3.9.0-1 [installed]
    Fast, easy to administer, secure mail server
extra/msmtp 1.8.25-1 [installed: 1.8.24-1]
    A mini SMTP client
community/opensmtpd 7.5.0-1
    Free implementation of the server-side SMTP protocol`

	p := NewPacman(nil)
	candidates := p.parseSearchOutput(output)

	if len(candidates) != 4 {
		t.Fatalf("parsed %d candidates, want 4", len(candidates))
	}

	tests := []struct {
		name        string
		version     string
		description string
		installed   bool
		sourceIndex int
	}{
		{"exim", "4.98-1", "Message Transfer Agent", false, 1},
		{"postfix", "3.9.0-1", "Fast, easy to administer, secure mail server", true, 2},
		{"msmtp", "1.8.25-1", "A mini SMTP client", true, 3},
		{"opensmtpd", "7.5.0-1", "Free implementation of the server-side SMTP protocol", false, 4},
	}

	for i, tt := range tests {
		c := candidates[i]
		if c.Name != tt.name {
			t.Errorf("candidate %d: Name = %q, want %q", i, c.Name, tt.name)
		}
		if c.Version != tt.version {
			t.Errorf("candidate %d: Version = %q, want %q", i, c.Version, tt.version)
		}
		if c.Description != tt.description {
			t.Errorf("candidate %d: Description = %q, want %q", i, c.Description, tt.description)
		}
		if c.Installed != tt.installed {
			t.Errorf("candidate %d: Installed = %v, want %v", i, c.Installed, tt.installed)
		}
		if c.SourceIndex != tt.sourceIndex {
			t.Errorf("candidate %d: SourceIndex = %d, want %d", i, c.SourceIndex, tt.sourceIndex)
		}
	}
}

func TestParseSearchOutputEmpty(t *testing.T) {
	p := NewPacman(nil)
	if got := p.parseSearchOutput(""); len(got) != 0 {
		t.Errorf("parsed %d candidates from empty output, want 0", len(got))
	}
}

func TestParseSearchOutputSkipsMalformedLines(t *testing.T) {
	output := `warning: database file for 'extra' does not exist
extra/exim 4.98-1
    Message Transfer Agent
loose text without a slash`

	p := NewPacman(nil)
	candidates := p.parseSearchOutput(output)

	if len(candidates) != 1 || candidates[0].Name != "exim" {
		t.Errorf("candidates = %+v, want just exim", candidates)
	}
}
