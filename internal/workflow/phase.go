package workflow

// Phase is the mutually exclusive lifecycle state of the workflow.
type Phase string

const (
	// PhaseIdle is the initial phase; nothing has been submitted yet.
	PhaseIdle Phase = "idle"
	// PhaseInFlight means exactly one request is outstanding.
	PhaseInFlight Phase = "in_flight"
	// PhaseSucceeded means the last request settled with a result set.
	PhaseSucceeded Phase = "succeeded"
	// PhaseFailed means the last request settled with an error message.
	PhaseFailed Phase = "failed"
)

// isValidTransition enforces the workflow state machine edges.
func isValidTransition(from, to Phase) bool {
	switch from {
	case PhaseIdle, PhaseSucceeded, PhaseFailed:
		return to == PhaseInFlight
	case PhaseInFlight:
		return to == PhaseSucceeded || to == PhaseFailed
	default:
		return false
	}
}
