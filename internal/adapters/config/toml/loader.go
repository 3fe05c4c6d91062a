package toml

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/dscfwd/internal/domain"
	"github.com/spf13/viper"
)

const (
	envPrefix  = "DSCFWD"
	configType = "toml"
)

const (
	KeyScanParams  = "scan-params"
	KeyTE          = "te"
	KeyDelt        = "delt"
	KeyUpsample    = "upsample"
	KeyInferMTT    = "infermtt"
	KeyInferLambda = "inferlambda"
	KeyInferDelay  = "inferdelay"
	KeyInferArt    = "inferart"
	KeyInferRet    = "inferret"
	KeyConvMtx     = "convmtx"
	KeyAIF         = "aif"
	KeyImagePrior  = "imageprior"
)

var ErrMissingKey = errors.New("required model option not set")

// NewViper returns a viper instance reading DSCFWD_* environment variables,
// with the model defaults applied.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyScanParams, domain.ScanParamsCmdline)
	v.SetDefault(KeyUpsample, 1)
	v.SetDefault(KeyConvMtx, string(domain.ConvolutionSimple))
}

// Load resolves the model configuration. configPath names an optional TOML
// file; flags and environment variables bound to v take precedence over it.
func Load(v *viper.Viper, configPath string) (domain.ModelConfig, error) {
	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType(configType)
		if err := v.ReadInConfig(); err != nil {
			return domain.ModelConfig{}, fmt.Errorf("read model config %q: %w", configPath, err)
		}
	}

	scanParams := v.GetString(KeyScanParams)
	if scanParams != domain.ScanParamsCmdline {
		return domain.ModelConfig{}, fmt.Errorf("%w: %q", domain.ErrUnsupportedScanParams, scanParams)
	}

	var missing []error
	for _, key := range []string{KeyTE, KeyDelt, KeyAIF} {
		if !v.IsSet(key) {
			missing = append(missing, fmt.Errorf("%w: %s", ErrMissingKey, key))
		}
	}
	if err := errors.Join(missing...); err != nil {
		return domain.ModelConfig{}, err
	}

	scheme, err := domain.ParseConvolutionScheme(v.GetString(KeyConvMtx))
	if err != nil {
		return domain.ModelConfig{}, err
	}

	cfg := domain.ModelConfig{
		Options: domain.Options{
			ScanParams:  scanParams,
			TE:          v.GetFloat64(KeyTE),
			Delt:        v.GetFloat64(KeyDelt),
			Upsample:    v.GetInt(KeyUpsample),
			Convolution: scheme,
			ImagePrior:  v.GetBool(KeyImagePrior),
			Toggles: domain.Toggles{
				InferMTT:    v.GetBool(KeyInferMTT),
				InferLambda: v.GetBool(KeyInferLambda),
				InferDelay:  v.GetBool(KeyInferDelay),
				InferArt:    v.GetBool(KeyInferArt),
				InferRet:    v.GetBool(KeyInferRet),
			},
		},
		AIFRef: strings.TrimSpace(v.GetString(KeyAIF)),
	}
	if err := cfg.Options.Validate(); err != nil {
		return domain.ModelConfig{}, err
	}

	return cfg, nil
}
