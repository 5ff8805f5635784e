package engine

// Mode distinguishes a preview run from one that actually deletes.
type Mode int

const (
	// DryRun reports what would be deleted without touching anything.
	DryRun Mode = iota
	// Apply performs the deletions.
	Apply
)

func (m Mode) String() string {
	if m == Apply {
		return "apply"
	}
	return "dry-run"
}

// Plan is the final, immutable decision of which branches to delete. It is
// built once per invocation and handed to the reporting/execution layer; the
// Plan itself never deletes anything.
type Plan struct {
	Scope    Scope
	Mode     Mode
	Selected []string // branches to delete, candidate order preserved
	Skipped  []string // the protection set in effect
}

// BuildPlan filters the candidates through spec and assembles the Plan.
// An empty selection yields ErrNoCandidates instead of a Plan, so callers
// can report "nothing to delete" distinctly from real failures.
func BuildPlan(candidates []string, spec FilterSpec, scope Scope, mode Mode) (*Plan, error) {
	selected := Filter(candidates, spec)
	if len(selected) == 0 {
		return nil, ErrNoCandidates
	}
	return &Plan{
		Scope:    scope,
		Mode:     mode,
		Selected: selected,
		Skipped:  spec.ProtectedNames(),
	}, nil
}
