package ports

import "time"

type ARDPhase string

const (
	ARDPhaseSetup  ARDPhase = "setup"
	ARDPhaseUpdate ARDPhase = "update"
)

type EvaluationRecorder interface {
	ObserveEvaluation(elapsed time.Duration, reset bool)
	ObserveARD(phase ARDPhase, fard float64)
}

// NopRecorder discards every observation.
type NopRecorder struct{}

func (NopRecorder) ObserveEvaluation(time.Duration, bool) {}

func (NopRecorder) ObserveARD(ARDPhase, float64) {}
