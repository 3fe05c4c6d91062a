package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/dscfwd/internal/adapters/aif/file"
	"github.com/bnema/dscfwd/internal/adapters/aif/router"
	s3source "github.com/bnema/dscfwd/internal/adapters/aif/s3"
	tomlconfig "github.com/bnema/dscfwd/internal/adapters/config/toml"
	promrecorder "github.com/bnema/dscfwd/internal/adapters/metrics/prometheus"
	"github.com/bnema/dscfwd/internal/adapters/render/report"
	"github.com/bnema/dscfwd/internal/application"
	"github.com/bnema/dscfwd/internal/dsc"
	"github.com/bnema/dscfwd/internal/logging"
	"github.com/bnema/dscfwd/internal/ports"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type app struct {
	v           *viper.Viper
	configPath  string
	verbose     bool
	metricsFile string

	newSource func() (ports.AIFSource, error)
	render    func(report.Report) (string, error)
	clock     ports.Clock
}

func newApp() *app {
	return &app{
		v:         tomlconfig.NewViper(),
		newSource: newAIFSource,
		render:    report.Render,
		clock:     ports.SystemClock{},
	}
}

// newAIFSource reads local files by default and opens an S3 client only on
// the first s3:// reference.
func newAIFSource() (ports.AIFSource, error) {
	r, err := router.New(file.NewSource(""))
	if err != nil {
		return nil, fmt.Errorf("wire arterial signal router: %w", err)
	}

	r.HandleLazy(s3source.Scheme, func(ctx context.Context) (ports.AIFSource, error) {
		src, err := s3source.New(ctx, s3source.ConfigFromEnv())
		if err != nil {
			return nil, err
		}
		return src, nil
	})

	return r, nil
}

// session is one command invocation against a constructed model.
type session struct {
	service     *application.Service
	model       *dsc.Model
	recorder    *promrecorder.Recorder
	metricsFile string
}

func (a *app) open(cmd *cobra.Command) (*session, error) {
	cfg, err := tomlconfig.Load(a.v, a.configPath)
	if err != nil {
		return nil, err
	}

	source, err := a.newSource()
	if err != nil {
		return nil, err
	}

	recorder := promrecorder.NewRecorder()
	log := logging.New(cmd.ErrOrStderr(), a.verbose)
	service := application.NewService(source, recorder, a.clock, log)

	model, err := service.BuildModel(cmd.Context(), cfg)
	if err != nil {
		return nil, err
	}

	return &session{
		service:     service,
		model:       model,
		recorder:    recorder,
		metricsFile: a.metricsFile,
	}, nil
}

// close flushes metrics when --metrics-file is set.
func (s *session) close() error {
	if s.metricsFile == "" {
		return nil
	}
	if err := s.recorder.WriteTextfile(s.metricsFile); err != nil {
		return fmt.Errorf("write metrics file: %w", err)
	}
	return nil
}
