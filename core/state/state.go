// Package state defines the analysis state machine for the application shell.
package state

import "fmt"

// AnalysisState represents what the application is currently doing with the
// loaded spectrum.
type AnalysisState int

const (
	// StateEmpty is the initial state before any data file has been loaded.
	StateEmpty AnalysisState = iota
	// StateLoaded indicates a spectrum is loaded and can be analyzed.
	StateLoaded
	// StatePickingBackground indicates the user is selecting the two points
	// that define the linear background.
	StatePickingBackground
	// StatePickingRange indicates the user is selecting the two points that
	// bound the integration range.
	StatePickingRange
)

// String returns the string representation of the state.
func (s AnalysisState) String() string {
	switch s {
	case StateEmpty:
		return "Empty"
	case StateLoaded:
		return "Loaded"
	case StatePickingBackground:
		return "PickingBackground"
	case StatePickingRange:
		return "PickingRange"
	default:
		return fmt.Sprintf("Unknown(%d)", s)
	}
}

// validTransitions defines the allowed state transitions.
// Key is the current state, value is a list of valid target states.
// Loaded -> Loaded covers replacing the spectrum with a newly loaded file.
var validTransitions = map[AnalysisState][]AnalysisState{
	StateEmpty:             {StateLoaded},
	StateLoaded:            {StateLoaded, StatePickingBackground, StatePickingRange},
	StatePickingBackground: {StateLoaded},
	StatePickingRange:      {StateLoaded},
}

// CanTransitionTo checks if transitioning from the current state to the
// target state is valid.
func (s AnalysisState) CanTransitionTo(target AnalysisState) bool {
	allowed, ok := validTransitions[s]
	if !ok {
		return false
	}
	for _, t := range allowed {
		if t == target {
			return true
		}
	}
	return false
}

// ValidTransitions returns the list of valid target states from the current state.
func (s AnalysisState) ValidTransitions() []AnalysisState {
	return validTransitions[s]
}

// HasData returns true if a spectrum is available for analysis or plotting.
func (s AnalysisState) HasData() bool {
	return s != StateEmpty
}

// IsPicking returns true if the application is waiting for plot clicks.
func (s AnalysisState) IsPicking() bool {
	return s == StatePickingBackground || s == StatePickingRange
}

// CanAnalyze returns true if an analysis operation may start in this state.
func (s AnalysisState) CanAnalyze() bool {
	return s == StateLoaded
}

// TransitionError represents an invalid state transition attempt.
type TransitionError struct {
	From   AnalysisState
	To     AnalysisState
	Reason string
}

func (e *TransitionError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid state transition from %s to %s: %s", e.From, e.To, e.Reason)
	}
	return fmt.Sprintf("invalid state transition from %s to %s", e.From, e.To)
}

// NewTransitionError creates a new TransitionError.
func NewTransitionError(from, to AnalysisState, reason string) *TransitionError {
	return &TransitionError{From: from, To: to, Reason: reason}
}
