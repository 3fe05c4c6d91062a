package domain

import (
	"fmt"
	"strings"
)

// ScanParamsCmdline is the only supported source of scan parameters.
const ScanParamsCmdline = "cmdline"

type ConvolutionScheme string

const (
	ConvolutionSimple  ConvolutionScheme = "simple"
	ConvolutionVoltera ConvolutionScheme = "voltera"
)

func ParseConvolutionScheme(raw string) (ConvolutionScheme, error) {
	switch scheme := ConvolutionScheme(strings.ToLower(strings.TrimSpace(raw))); scheme {
	case "":
		return ConvolutionSimple, nil
	case ConvolutionSimple, ConvolutionVoltera:
		return scheme, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownConvolution, raw)
	}
}

// Toggles selects which optional slots are part of the parameter vector.
type Toggles struct {
	InferMTT    bool
	InferLambda bool
	InferDelay  bool
	InferArt    bool
	InferRet    bool
}

// Options holds the construction-time configuration of a DSC model.
type Options struct {
	ScanParams  string
	TE          float64
	Delt        float64
	Upsample    int
	Convolution ConvolutionScheme
	ImagePrior  bool
	Toggles
}

// ModelConfig is Options plus the reference to the arterial signal.
type ModelConfig struct {
	Options
	AIFRef string
}

func (o Options) Validate() error {
	if o.ScanParams != ScanParamsCmdline {
		return fmt.Errorf("%w: %q", ErrUnsupportedScanParams, o.ScanParams)
	}
	if !(o.TE > 0) {
		return fmt.Errorf("%w: te must be positive, got %v", ErrInvalidOption, o.TE)
	}
	if !(o.Delt > 0) {
		return fmt.Errorf("%w: delt must be positive, got %v", ErrInvalidOption, o.Delt)
	}
	if o.Upsample < 1 {
		return fmt.Errorf("%w: upsample must be at least 1, got %d", ErrInvalidOption, o.Upsample)
	}
	if _, err := ParseConvolutionScheme(string(o.Convolution)); err != nil {
		return err
	}

	return nil
}
