package domain

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// MVN is a multivariate normal distribution over the parameter vector. The
// precision and covariance matrices are kept in sync on every set; the matrix
// that was set is stored verbatim so reading back an entry just written is exact.
//
// An MVN is not safe for concurrent mutation.
type MVN struct {
	means      *mat.VecDense
	precisions *mat.SymDense
	covariance *mat.SymDense
}

// NewMVN returns a zero-mean, unit-covariance distribution of size n.
func NewMVN(n int) *MVN {
	eye := make([]float64, n*n)
	for i := 0; i < n; i++ {
		eye[i*n+i] = 1
	}

	return &MVN{
		means:      mat.NewVecDense(n, nil),
		precisions: mat.NewSymDense(n, append([]float64(nil), eye...)),
		covariance: mat.NewSymDense(n, eye),
	}
}

func (d *MVN) Len() int {
	return d.means.Len()
}

func (d *MVN) Mean(i int) float64 {
	return d.means.AtVec(i)
}

func (d *MVN) SetMean(i int, v float64) {
	d.means.SetVec(i, v)
}

// Means returns a copy of the mean vector.
func (d *MVN) Means() []float64 {
	out := make([]float64, d.Len())
	for i := range out {
		out[i] = d.means.AtVec(i)
	}
	return out
}

// Variance returns the marginal variance of slot i.
func (d *MVN) Variance(i int) float64 {
	return d.covariance.At(i, i)
}

// Precisions returns a copy of the precision matrix.
func (d *MVN) Precisions() *mat.SymDense {
	return mat.NewSymDense(d.Len(), append([]float64(nil), d.precisions.RawSymmetric().Data...))
}

// Covariance returns a copy of the covariance matrix.
func (d *MVN) Covariance() *mat.SymDense {
	return mat.NewSymDense(d.Len(), append([]float64(nil), d.covariance.RawSymmetric().Data...))
}

func (d *MVN) SetPrecisions(p mat.Symmetric) error {
	prec, err := d.copyChecked(p)
	if err != nil {
		return err
	}
	cov, err := invertSym(prec)
	if err != nil {
		return fmt.Errorf("derive covariance: %w", err)
	}

	d.precisions, d.covariance = prec, cov
	return nil
}

func (d *MVN) SetCovariance(c mat.Symmetric) error {
	cov, err := d.copyChecked(c)
	if err != nil {
		return err
	}
	prec, err := invertSym(cov)
	if err != nil {
		return fmt.Errorf("derive precisions: %w", err)
	}

	d.precisions, d.covariance = prec, cov
	return nil
}

func (d *MVN) Clone() *MVN {
	return &MVN{
		means:      mat.VecDenseCopyOf(d.means),
		precisions: d.Precisions(),
		covariance: d.Covariance(),
	}
}

func (d *MVN) copyChecked(s mat.Symmetric) (*mat.SymDense, error) {
	if n := s.SymmetricDim(); n != d.Len() {
		return nil, fmt.Errorf("%w: matrix is %dx%d, distribution has %d parameters", ErrParamCount, n, n, d.Len())
	}
	out := mat.NewSymDense(d.Len(), nil)
	out.CopySym(s)
	return out, nil
}

// invertSym inverts a symmetric positive definite matrix. Ill-conditioned
// inputs are accepted; gonum still computes the inverse in that case.
func invertSym(s *mat.SymDense) (*mat.SymDense, error) {
	var chol mat.Cholesky
	if ok := chol.Factorize(s); !ok {
		return nil, ErrNotPositiveDefinite
	}

	inv := mat.NewSymDense(s.SymmetricDim(), nil)
	if err := chol.InverseTo(inv); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return nil, err
		}
	}

	return inv, nil
}
