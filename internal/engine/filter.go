package engine

// stageOp tags a pipeline stage: drop matching candidates or keep only
// matching candidates.
type stageOp int

const (
	opDrop stageOp = iota
	opKeep
)

// stage is one predicate application in the filter pipeline.
type stage struct {
	op    stageOp
	match Predicate
}

// stages returns the pipeline in its fixed order. The order is load-bearing:
// protection must win over inclusion even when a protected name matches the
// include pattern, and exclusion runs last over whatever survived.
func (s FilterSpec) stages() []stage {
	return []stage{
		{opDrop, s.protected},
		{opKeep, s.include},
		{opDrop, s.exclude},
	}
}

// Filter runs the candidate list through the three-stage pipeline and returns
// the surviving names in their original relative order. Pure and idempotent:
// filtering an already-filtered result with the same spec is a no-op.
func Filter(candidates []string, spec FilterSpec) []string {
	out := candidates
	for _, st := range spec.stages() {
		kept := make([]string, 0, len(out))
		for _, name := range out {
			matched := st.match(name)
			if (st.op == opDrop && !matched) || (st.op == opKeep && matched) {
				kept = append(kept, name)
			}
		}
		out = kept
	}
	return out
}
