package warmup

// Outcome classifies one bootstrap read.
type Outcome int

const (
	// OutcomeSuccess means the read returned a non-empty role with no error.
	OutcomeSuccess Outcome = iota
	// OutcomePartial means the platform reported "cannot complete at this
	// time": the tree is presumed incompletely built but not absent. Never
	// conflated with other errors, and never retried within a run.
	OutcomePartial
	// OutcomeFailure covers every other error, binding-layer problems, and
	// an empty role with no explicit error code.
	OutcomeFailure
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomePartial:
		return "partial"
	case OutcomeFailure:
		return "failure"
	default:
		return "unknown"
	}
}
