// Package logging builds the logr.Logger used outside the numeric core.
package logging

import (
	"io"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DEBUG is the logr verbosity for per-evaluation detail.
const DEBUG = 1

// New returns a console logger writing to w. verbose enables V(DEBUG).
func New(w io.Writer, verbose bool) logr.Logger {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		level.SetLevel(zapcore.Level(-DEBUG))
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), level)

	return zapr.NewLogger(zap.New(core))
}

// NewTestLogger writes at every verbosity to w.
func NewTestLogger(w io.Writer) logr.Logger {
	return New(w, true)
}
