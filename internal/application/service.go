package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/dscfwd/internal/domain"
	"github.com/bnema/dscfwd/internal/dsc"
	"github.com/bnema/dscfwd/internal/logging"
	"github.com/bnema/dscfwd/internal/ports"
	"github.com/go-logr/logr"
)

var ErrEmptyAIFRef = errors.New("arterial signal reference is empty")

var _ ports.ForwardModel = (*dsc.Model)(nil)

type Service struct {
	source   ports.AIFSource
	recorder ports.EvaluationRecorder
	clock    ports.Clock
	log      logr.Logger
}

func NewService(source ports.AIFSource, recorder ports.EvaluationRecorder, clock ports.Clock, log logr.Logger) *Service {
	if recorder == nil {
		recorder = ports.NopRecorder{}
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Service{
		source:   source,
		recorder: recorder,
		clock:    clock,
		log:      log,
	}
}

// BuildModel loads the arterial signal named by cfg and constructs the model.
func (s *Service) BuildModel(ctx context.Context, cfg domain.ModelConfig) (*dsc.Model, error) {
	if strings.TrimSpace(cfg.AIFRef) == "" {
		return nil, ErrEmptyAIFRef
	}

	artsig, err := s.source.Load(ctx, cfg.AIFRef)
	if err != nil {
		return nil, fmt.Errorf("load arterial signal: %w", err)
	}

	model, err := dsc.New(cfg.Options, artsig)
	if err != nil {
		return nil, fmt.Errorf("build dsc model: %w", err)
	}

	s.log.V(logging.DEBUG).Info("built dsc model",
		"aif", cfg.AIFRef,
		"timepoints", len(artsig),
		"params", model.NameParams(),
		"convmtx", string(model.Options().Convolution),
		"ard", model.ARDIndices(),
	)

	return model, nil
}

// Evaluate runs one forward evaluation. Non-finite predictions come back as
// zeros and are logged, never returned as an error.
func (s *Service) Evaluate(ctx context.Context, model ports.ForwardModel, params []float64) (Evaluation, error) {
	if err := ctx.Err(); err != nil {
		return Evaluation{}, err
	}
	if len(params) != model.NumParams() {
		return Evaluation{}, fmt.Errorf("%w: got %d values, want %d (%s)",
			domain.ErrParamCount, len(params), model.NumParams(), strings.Join(model.NameParams(), ", "))
	}

	start := s.clock.Now()
	pred := model.Evaluate(params)
	s.recorder.ObserveEvaluation(s.clock.Now().Sub(start), pred.Reset())

	if d := pred.Diagnostic; d != nil {
		s.log.Info("non-finite prediction replaced with zeros",
			"kind", string(d.Kind),
			"reason", d.Message,
			"params", d.Params,
			"result", d.Raw,
		)
	}

	return Evaluation{Params: params, Signal: pred.Signal, Reset: pred.Reset()}, nil
}

// EvaluateBatch evaluates every vector in order and stops at the first
// failure. onProgress, when set, is called after each vector.
func (s *Service) EvaluateBatch(ctx context.Context, model ports.ForwardModel, batch [][]float64, onProgress func(BatchProgress)) ([]Evaluation, error) {
	out := make([]Evaluation, 0, len(batch))
	progress := BatchProgress{Total: len(batch)}
	for i, params := range batch {
		ev, err := s.Evaluate(ctx, model, params)
		if err != nil {
			return nil, fmt.Errorf("vector %d: %w", i+1, err)
		}
		out = append(out, ev)

		progress.Done++
		if ev.Reset {
			progress.Reset++
		}
		if onProgress != nil {
			onProgress(progress)
		}
	}

	return out, nil
}

// Params lists the slots of model with their hardcoded initial distributions.
func (s *Service) Params(model ports.ForwardModel) []ParamInfo {
	prior, posterior := model.HardcodedInitialDists()
	priorPrec := prior.Precisions()
	postPrec := posterior.Precisions()

	ard := map[int]bool{}
	for _, k := range model.ARDIndices() {
		ard[k] = true
	}

	names := model.NameParams()
	out := make([]ParamInfo, 0, len(names))
	for i, name := range names {
		out = append(out, ParamInfo{
			Index:              i,
			Name:               name,
			ARD:                ard[i],
			PriorMean:          prior.Mean(i),
			PriorPrecision:     priorPrec.At(i, i),
			PosteriorMean:      posterior.Mean(i),
			PosteriorPrecision: postPrec.At(i, i),
		})
	}

	return out
}

// RunARD performs the setup phase followed by iterations update phases
// against a fixed posterior. The prior is mutated in place.
func (s *Service) RunARD(ctx context.Context, model ports.ForwardModel, posterior, prior *domain.MVN, iterations int) ([]ARDStep, error) {
	if iterations < 0 {
		return nil, fmt.Errorf("ard iterations must not be negative, got %d", iterations)
	}

	fard, err := model.SetupARD(posterior, prior)
	if err != nil {
		return nil, err
	}
	steps := []ARDStep{s.ardStep(ports.ARDPhaseSetup, 0, fard, prior)}

	for i := 1; i <= iterations; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		fard, err := model.UpdateARD(posterior, prior)
		if err != nil {
			return nil, fmt.Errorf("ard iteration %d: %w", i, err)
		}
		steps = append(steps, s.ardStep(ports.ARDPhaseUpdate, i, fard, prior))
	}

	return steps, nil
}

func (s *Service) ardStep(phase ports.ARDPhase, iteration int, fard float64, prior *domain.MVN) ARDStep {
	s.recorder.ObserveARD(phase, fard)
	s.log.V(logging.DEBUG).Info("ard step", "phase", string(phase), "iteration", iteration, "fard", fard)

	variances := make([]float64, prior.Len())
	for i := range variances {
		variances[i] = prior.Variance(i)
	}

	return ARDStep{Phase: phase, Iteration: iteration, FreeEnergy: fard, PriorVariances: variances}
}
