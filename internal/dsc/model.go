// Package dsc implements a convolution-based forward model for dynamic
// susceptibility contrast (DSC) perfusion imaging.
//
// A Model predicts the DSC signal of one measurement unit from a parameter
// vector: the arterial input is time shifted, convolved with a Gamma residue
// function, scaled by perfusion and mapped to signal through the echo time.
// A Model is immutable after New and Evaluate may be called concurrently.
package dsc

import (
	"fmt"
	"math"
	"strings"

	"github.com/bnema/dscfwd/internal/domain"
	"gonum.org/v1/gonum/mat"
)

const modelVersion = "dsc-convolution 1.8"

type Model struct {
	opts   domain.Options
	layout domain.Layout
	grid   Grid
	aif    []float64
}

// New builds a model from its options and the raw arterial signal, one
// sample per observed time point.
func New(opts domain.Options, artsig []float64) (*Model, error) {
	if opts.Upsample == 0 {
		opts.Upsample = 1
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	scheme, err := domain.ParseConvolutionScheme(string(opts.Convolution))
	if err != nil {
		return nil, err
	}
	opts.Convolution = scheme

	if len(artsig) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 samples, got %d", domain.ErrInvalidArterialSignal, len(artsig))
	}

	grid := NewGrid(len(artsig), opts.Delt, opts.Upsample)
	aif, err := NewAIF(artsig, opts.TE, grid)
	if err != nil {
		return nil, err
	}

	return &Model{
		opts:   opts,
		layout: domain.NewLayout(opts.Toggles),
		grid:   grid,
		aif:    aif,
	}, nil
}

func (m *Model) Options() domain.Options { return m.opts }

func (m *Model) Layout() domain.Layout { return m.layout }

func (m *Model) Grid() Grid { return m.grid }

// AIF returns a copy of the upsampled arterial input function.
func (m *Model) AIF() []float64 {
	return append([]float64(nil), m.aif...)
}

func (m *Model) NumParams() int { return m.layout.Count() }

func (m *Model) NameParams() []string { return m.layout.Names() }

func (m *Model) ModelVersion() string { return modelVersion }

// ARDIndices returns the slots SetupARD and UpdateARD act on.
func (m *Model) ARDIndices() []int { return m.layout.ARDIndices() }

// params is the decoded, sanitized parameter vector.
type params struct {
	cbf       float64
	logMTT    float64
	logLambda float64
	delta     float64
	sig0      float64
	artMag    float64
	artDelay  float64
	ret       float64
}

func (m *Model) decode(vec []float64) params {
	l := m.layout
	p := params{
		cbf:  nonNegative(vec[l.CBF]),
		sig0: nonNegative(vec[l.Sig0]),
	}
	if l.Has(l.TransitMean) {
		p.logMTT = vec[l.TransitMean]
	}
	if l.Has(l.Dispersion) {
		p.logLambda = vec[l.Dispersion]
	}
	if l.Has(l.Delay) {
		p.delta = vec[l.Delay]
	}
	if l.Has(l.ArtMag) {
		p.artMag = nonNegative(vec[l.ArtMag])
		p.artDelay = vec[l.ArtDelay]
	}
	if l.Has(l.Retention) {
		p.ret = math.Tanh(nonNegative(vec[l.Retention]))
	}

	limit := float64(m.grid.N()/2) * m.grid.Delt
	p.delta = math.Max(math.Min(p.delta, limit), -limit)

	return p
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// concentration returns the tissue concentration on the internal grid and,
// when the arterial component is inferred, the arterial contribution.
func (m *Model) concentration(p params) ([]float64, []float64) {
	hdelt := m.grid.HDelt
	shifted := Shift(m.aif, p.delta, hdelt)
	residue := Residue(m.grid.HTimes, p.logMTT, p.logLambda, p.ret)
	a := ConvolutionMatrix(shifted, m.opts.Convolution)
	c := Concentration(a, residue, p.cbf, hdelt)

	if !m.opts.InferArt {
		return c, nil
	}

	art := Shift(m.aif, p.artDelay, hdelt)
	for i := range art {
		art[i] *= p.artMag
	}
	return c, art
}

// Evaluate predicts the signal on the observed grid. A prediction containing
// NaN or Inf is replaced by zeros and carries a Diagnostic.
//
// Evaluate panics if len(vec) != NumParams(); callers check the length first.
// application.Service does so and returns domain.ErrParamCount instead.
func (m *Model) Evaluate(vec []float64) domain.Prediction {
	if len(vec) != m.layout.Count() {
		panic(fmt.Sprintf("dsc: %v: got %d, want %d", domain.ErrParamCount, len(vec), m.layout.Count()))
	}

	p := m.decode(vec)
	c, art := m.concentration(p)
	low := Downsample(c, art, m.grid.N(), m.grid.Upsample)
	raw := Signal(low, p.sig0, m.opts.TE)
	if Finite(raw) {
		return domain.Prediction{Signal: raw}
	}

	return domain.Prediction{
		Signal: make([]float64, len(raw)),
		Diagnostic: &domain.Diagnostic{
			Kind:    domain.KindNonFiniteSignal,
			Message: "NaN or Inf in result",
			Params:  append([]float64(nil), vec...),
			Raw:     raw,
		},
	}
}

// HardcodedInitialDists returns the default prior and the initial posterior.
func (m *Model) HardcodedInitialDists() (*domain.MVN, *domain.MVN) {
	l := m.layout
	n := l.Count()

	prior := domain.NewMVN(n)
	prec := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		prec.SetSym(i, i, 1e-12)
	}

	set := func(slot int, mean, precision float64) {
		prior.SetMean(slot, mean)
		prec.SetSym(slot, slot, precision)
	}

	set(l.CBF, 0, 1e-12)
	if m.opts.ImagePrior {
		prec.SetSym(l.CBF, l.CBF, 100)
	}
	if l.Has(l.TransitMean) {
		set(l.TransitMean, 1.5, 10)
		if m.opts.ImagePrior {
			prec.SetSym(l.TransitMean, l.TransitMean, 100)
		}
	}
	if l.Has(l.Dispersion) {
		set(l.Dispersion, 2, 1)
	}
	if l.Has(l.Delay) {
		set(l.Delay, 0, 1)
	}
	set(l.Sig0, 100, 1e-6)
	if l.Has(l.ArtMag) {
		set(l.ArtMag, 0, 1e-12)
		set(l.ArtDelay, 0, 0.04)
	}
	if l.Has(l.Retention) {
		set(l.Retention, 0, 1e4)
	}
	mustSetPrecisions(prior, prec)

	// Uninformative priors get a more sensible starting posterior.
	posterior := prior.Clone()
	posterior.SetMean(l.CBF, 0.1)
	prec.SetSym(l.CBF, l.CBF, 10)
	if l.Has(l.ArtMag) {
		posterior.SetMean(l.ArtMag, 0)
		prec.SetSym(l.ArtMag, l.ArtMag, 10)
	}
	mustSetPrecisions(posterior, prec)

	return prior, posterior
}

// mustSetPrecisions panics on failure; callers only pass positive diagonals.
func mustSetPrecisions(d *domain.MVN, prec *mat.SymDense) {
	if err := d.SetPrecisions(prec); err != nil {
		panic(fmt.Sprintf("dsc: initial precisions: %v", err))
	}
}

// SetupARD prepares the prior for ARD and returns the free-energy delta.
func (m *Model) SetupARD(posterior, prior *domain.MVN) (float64, error) {
	return SetupARD(posterior, prior, m.layout.ARDIndices())
}

// UpdateARD runs one ARD iteration and returns the free-energy delta.
func (m *Model) UpdateARD(posterior, prior *domain.MVN) (float64, error) {
	return UpdateARD(posterior, prior, m.layout.ARDIndices())
}

// DumpParameters formats vec as one "name = value" line per slot.
func (m *Model) DumpParameters(vec []float64, indent string) string {
	var b strings.Builder
	for i, name := range m.layout.Names() {
		if i >= len(vec) {
			break
		}
		fmt.Fprintf(&b, "%s%s = %g\n", indent, name, vec[i])
	}
	return b.String()
}

// Usage describes the options understood by the DSC model.
func Usage() string {
	return `DSC convolution model

Required:
  --te=<sec>          echo time
  --delt=<sec>        time between volumes
  --aif=<file|s3uri>  arterial signal, ASCII column vector

Optional:
  --scan-params=cmdline  only cmdline is supported
  --upsample=<n>         internal grid refinement (default 1)
  --convmtx=<scheme>     simple|voltera (default simple)
  --infermtt             infer transit-time mean
  --inferlambda          infer transit-time dispersion
  --inferdelay           infer bolus delay
  --inferart             infer arterial component (enables ARD)
  --inferret             infer tracer retention
  --imageprior           tighten cbf and transitm priors
`
}
