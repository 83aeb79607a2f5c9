package ui

import (
	"strings"

	"pacplan/pkg/backend"
	"pacplan/pkg/plan"
)

// PrintCandidates prints the full numbered candidate list. The whole list
// is always shown, selected or not, so the run is auditable afterwards.
func PrintCandidates(candidates []backend.Candidate) {
	HeaderMsg("Candidates (%d)", len(candidates))

	for _, c := range candidates {
		installed := ""
		if c.Installed {
			installed = Installed.Sprint(" [installed]")
		}

		Println("%3d. %s %s%s", c.SourceIndex, Bold(c.Name), Green(c.Version), installed)

		if c.Description != "" {
			desc := c.Description
			if len(desc) > 70 {
				desc = desc[:67] + "..."
			}
			MutedMsg("      %s", desc)
		}
	}
}

// PrintPlan prints the ordered action list of a completed plan.
func PrintPlan(p *plan.Plan) {
	if p.IsNoop() {
		InfoMsg("Nothing to do")
		return
	}

	HeaderMsg("Plan")
	for _, name := range p.Removals {
		Println("  %s %s", Red("remove"), name)
	}
	if p.Install.Len() > 0 {
		Println("  %s %s", Green("install"), strings.Join(p.Install.Names(), " "))
	}
}
