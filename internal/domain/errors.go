package domain

import "errors"

var (
	ErrUnsupportedScanParams = errors.New("only --scan-params=cmdline is accepted at the moment")
	ErrUnknownConvolution    = errors.New("unknown convolution scheme")
	ErrInvalidOption         = errors.New("invalid model option")
	ErrInvalidArterialSignal = errors.New("invalid arterial signal")
	ErrParamCount            = errors.New("parameter count mismatch")
	ErrNotPositiveDefinite   = errors.New("matrix is not positive definite")
)
