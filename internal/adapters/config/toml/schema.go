package toml

import (
	"fmt"
	"io"

	"github.com/bnema/dscfwd/internal/domain"
	toml "github.com/pelletier/go-toml/v2"
)

type fileSchema struct {
	ScanParams  string  `toml:"scan-params"`
	TE          float64 `toml:"te"`
	Delt        float64 `toml:"delt"`
	Upsample    int     `toml:"upsample"`
	ConvMtx     string  `toml:"convmtx"`
	AIF         string  `toml:"aif"`
	InferMTT    bool    `toml:"infermtt"`
	InferLambda bool    `toml:"inferlambda"`
	InferDelay  bool    `toml:"inferdelay"`
	InferArt    bool    `toml:"inferart"`
	InferRet    bool    `toml:"inferret"`
	ImagePrior  bool    `toml:"imageprior"`
}

func toSchema(cfg domain.ModelConfig) fileSchema {
	return fileSchema{
		ScanParams:  cfg.ScanParams,
		TE:          cfg.TE,
		Delt:        cfg.Delt,
		Upsample:    cfg.Upsample,
		ConvMtx:     string(cfg.Convolution),
		AIF:         cfg.AIFRef,
		InferMTT:    cfg.InferMTT,
		InferLambda: cfg.InferLambda,
		InferDelay:  cfg.InferDelay,
		InferArt:    cfg.InferArt,
		InferRet:    cfg.InferRet,
		ImagePrior:  cfg.ImagePrior,
	}
}

// ExampleConfig is a typical gradient-echo DSC setup.
func ExampleConfig() domain.ModelConfig {
	return domain.ModelConfig{
		Options: domain.Options{
			ScanParams:  domain.ScanParamsCmdline,
			TE:          0.065,
			Delt:        1.5,
			Upsample:    1,
			Convolution: domain.ConvolutionSimple,
			Toggles: domain.Toggles{
				InferMTT:    true,
				InferLambda: true,
				InferDelay:  true,
			},
		},
		AIFRef: "aif.txt",
	}
}

// Write encodes cfg as a TOML model configuration.
func Write(w io.Writer, cfg domain.ModelConfig) error {
	enc := toml.NewEncoder(w)
	if err := enc.Encode(toSchema(cfg)); err != nil {
		return fmt.Errorf("encode model config: %w", err)
	}
	return nil
}
