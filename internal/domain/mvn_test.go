package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestNewMVNIsStandard(t *testing.T) {
	d := NewMVN(3)

	assert.Equal(t, 3, d.Len())
	assert.Equal(t, []float64{0, 0, 0}, d.Means())
	for i := 0; i < 3; i++ {
		assert.Equal(t, 1.0, d.Variance(i))
		assert.Equal(t, 1.0, d.Precisions().At(i, i))
	}
}

func TestMVNSetPrecisionsDerivesCovariance(t *testing.T) {
	d := NewMVN(2)

	require.NoError(t, d.SetPrecisions(mat.NewSymDense(2, []float64{4, 0, 0, 1e-12})))
	assert.InDelta(t, 0.25, d.Variance(0), 1e-15)
	assert.InEpsilon(t, 1e12, d.Variance(1), 1e-9)
	assert.Equal(t, 4.0, d.Precisions().At(0, 0))
}

func TestMVNSetCovarianceStoresMatrixVerbatim(t *testing.T) {
	d := NewMVN(2)

	cov := mat.NewSymDense(2, []float64{0.3, 0.1, 0.1, 0.7})
	require.NoError(t, d.SetCovariance(cov))
	assert.Equal(t, 0.3, d.Variance(0))
	assert.Equal(t, 0.1, d.Covariance().At(0, 1))

	var product mat.Dense
	product.Mul(d.Precisions(), cov)
	assert.True(t, mat.EqualApprox(&product, eye(2), 1e-12))
}

func TestMVNRejectsBadMatrices(t *testing.T) {
	d := NewMVN(2)

	err := d.SetPrecisions(mat.NewSymDense(3, nil))
	require.ErrorIs(t, err, ErrParamCount)

	err = d.SetCovariance(mat.NewSymDense(2, []float64{1, 2, 2, 1}))
	require.ErrorIs(t, err, ErrNotPositiveDefinite)
	assert.Equal(t, 1.0, d.Variance(0), "failed set must leave the distribution untouched")
}

func TestMVNAccessorsReturnCopies(t *testing.T) {
	d := NewMVN(2)

	d.Precisions().SetSym(0, 0, 42)
	d.Covariance().SetSym(0, 0, 42)
	d.Means()[0] = 42

	assert.Equal(t, 1.0, d.Precisions().At(0, 0))
	assert.Equal(t, 1.0, d.Variance(0))
	assert.Equal(t, 0.0, d.Mean(0))
}

func TestMVNCloneIsIndependent(t *testing.T) {
	d := NewMVN(2)
	d.SetMean(1, 5)

	c := d.Clone()
	c.SetMean(1, 7)
	require.NoError(t, c.SetPrecisions(mat.NewSymDense(2, []float64{10, 0, 0, 10})))

	assert.Equal(t, 5.0, d.Mean(1))
	assert.Equal(t, 1.0, d.Variance(1))
	assert.Equal(t, 7.0, c.Mean(1))
	assert.InDelta(t, 0.1, c.Variance(1), 1e-15)
}

func eye(n int) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}
