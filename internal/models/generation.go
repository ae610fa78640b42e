package models

// GenerationPhase is the current stage of the blueprint pipeline. It is
// process-wide: only one pipeline run is in flight at a time.
type GenerationPhase string

const (
	PhaseIdle     GenerationPhase = "idle"
	PhaseSections GenerationPhase = "sections"
	PhaseTitles   GenerationPhase = "titles"
	PhaseDetails  GenerationPhase = "details"
	PhaseDone     GenerationPhase = "done"
	PhaseError    GenerationPhase = "error"
)

// InFlight reports whether a pipeline run is currently executing
func (p GenerationPhase) InFlight() bool {
	return p == PhaseSections || p == PhaseTitles || p == PhaseDetails
}
