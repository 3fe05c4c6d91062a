package ports

import "github.com/bnema/dscfwd/internal/domain"

// ForwardModel is the contract an inference engine consumes. Model variants
// other than DSC implement the same interface.
type ForwardModel interface {
	NumParams() int
	NameParams() []string
	Evaluate(params []float64) domain.Prediction
	HardcodedInitialDists() (prior, posterior *domain.MVN)
	ARDIndices() []int
	SetupARD(posterior, prior *domain.MVN) (float64, error)
	UpdateARD(posterior, prior *domain.MVN) (float64, error)
	DumpParameters(params []float64, indent string) string
	ModelVersion() string
}
