package domain

type DiagnosticKind string

const (
	KindNonFiniteSignal DiagnosticKind = "non_finite_signal"
)

// Diagnostic describes a recoverable numerical event observed while
// evaluating a model. It never carries an error; the value it accompanies is
// already sanitized.
type Diagnostic struct {
	Kind    DiagnosticKind
	Message string
	Params  []float64
	Raw     []float64
}

// Prediction is the outcome of one forward-model evaluation.
type Prediction struct {
	Signal     []float64
	Diagnostic *Diagnostic
}

func (p Prediction) Reset() bool {
	return p.Diagnostic != nil && p.Diagnostic.Kind == KindNonFiniteSignal
}
