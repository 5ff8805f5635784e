package ui

import (
	"fmt"
	"strings"

	"github.com/raphi011/sweep/internal/engine"
	"github.com/raphi011/sweep/internal/git"
)

// FormatPlan renders the plan: a mode header, the branches selected for
// deletion, and the protection set in effect.
func FormatPlan(p *engine.Plan) string {
	var b strings.Builder

	noun := "branch"
	if len(p.Selected) != 1 {
		noun = "branches"
	}
	if p.Mode == engine.Apply {
		fmt.Fprintf(&b, "%s\n", boldStyle.Render(fmt.Sprintf("Deleting %d %s %s:", len(p.Selected), p.Scope, noun)))
	} else {
		fmt.Fprintf(&b, "%s\n", boldStyle.Render(fmt.Sprintf("Would delete %d %s %s:", len(p.Selected), p.Scope, noun)))
	}

	for _, name := range p.Selected {
		fmt.Fprintf(&b, "  %s\n", accentStyle.Render(name))
	}

	if len(p.Skipped) > 0 {
		fmt.Fprintf(&b, "%s\n", mutedStyle.Render("Protected: "+strings.Join(p.Skipped, ", ")))
	}

	return b.String()
}

// FormatResults renders per-branch deletion outcomes.
func FormatResults(results []git.DeleteResult) string {
	var b strings.Builder
	for _, r := range results {
		if r.Ok() {
			fmt.Fprintf(&b, "  %s %s\n", successStyle.Render("✓"), r.Branch)
		} else {
			fmt.Fprintf(&b, "  %s %s: %v\n", dangerStyle.Render("✗"), r.Branch, r.Err)
		}
	}
	return b.String()
}

// FormatSummary renders the closing line for a run.
func FormatSummary(deleted, failed int, dryRun bool) string {
	noun := "branch"
	if deleted != 1 {
		noun = "branches"
	}
	if dryRun {
		return fmt.Sprintf("Would delete %d %s\n", deleted, noun)
	}
	if failed > 0 {
		return fmt.Sprintf("Deleted %d %s, %d failed\n", deleted, noun, failed)
	}
	return fmt.Sprintf("Deleted %d %s\n", deleted, noun)
}

// FormatCountdown renders the cancellation notice shown before apply-mode
// deletions are issued.
func FormatCountdown(seconds int) string {
	return mutedStyle.Render(fmt.Sprintf("Deleting in %ds, press Ctrl-C to cancel...", seconds)) + "\n"
}
