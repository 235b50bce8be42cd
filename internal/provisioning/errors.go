package provisioning

import "fmt"

// PhaseError wraps a phase failure with the phase name so callers can
// tell which step of the bootstrap broke.
type PhaseError struct {
	Phase string
	Err   error
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("%s phase failed: %v", e.Phase, e.Err)
}

func (e *PhaseError) Unwrap() error { return e.Err }
