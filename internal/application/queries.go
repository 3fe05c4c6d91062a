package application

import "github.com/bnema/dscfwd/internal/ports"

// ParamInfo describes one slot of the parameter vector with its initial
// distributions.
type ParamInfo struct {
	Index              int     `json:"index" yaml:"index"`
	Name               string  `json:"name" yaml:"name"`
	ARD                bool    `json:"ard" yaml:"ard"`
	PriorMean          float64 `json:"prior_mean" yaml:"prior_mean"`
	PriorPrecision     float64 `json:"prior_precision" yaml:"prior_precision"`
	PosteriorMean      float64 `json:"posterior_mean" yaml:"posterior_mean"`
	PosteriorPrecision float64 `json:"posterior_precision" yaml:"posterior_precision"`
}

// ARDStep is the outcome of one ARD phase.
type ARDStep struct {
	Phase          ports.ARDPhase `json:"phase" yaml:"phase"`
	Iteration      int            `json:"iteration" yaml:"iteration"`
	FreeEnergy     float64        `json:"free_energy" yaml:"free_energy"`
	PriorVariances []float64      `json:"prior_variances" yaml:"prior_variances"`
}

// Evaluation pairs a parameter vector with its predicted signal.
type Evaluation struct {
	Params []float64 `json:"params" yaml:"params"`
	Signal []float64 `json:"signal" yaml:"signal"`
	Reset  bool      `json:"reset" yaml:"reset"`
}

// BatchProgress is reported after each vector of a batch. Reset counts the
// predictions that came back zeroed so far.
type BatchProgress struct {
	Done  int
	Total int
	Reset int
}
