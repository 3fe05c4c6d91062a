package dsc

import (
	"testing"

	"github.com/bnema/dscfwd/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestConvolutionMatrixSimple(t *testing.T) {
	a := ConvolutionMatrix([]float64{1, 2, 3}, domain.ConvolutionSimple)

	want := mat.NewDense(3, 3, []float64{
		1, 0, 0,
		2, 1, 0,
		3, 2, 1,
	})
	assert.True(t, mat.Equal(want, a))
}

func TestConvolutionMatrixVoltera(t *testing.T) {
	a := ConvolutionMatrix([]float64{1, 2, 3}, domain.ConvolutionVoltera)

	want := mat.NewDense(3, 3, []float64{
		2.0 / 6, 0, 0,
		5.0 / 6, 4.0 / 6, 0,
		8.0 / 6, 1, 4.0 / 6,
	})
	assert.True(t, mat.EqualApprox(want, a, 1e-15))
}

func TestConcentrationScalesWithFlow(t *testing.T) {
	a := ConvolutionMatrix([]float64{1, 0, 0, 0}, domain.ConvolutionSimple)
	residue := []float64{1, 0.5, 0.25, 0.125}

	c := Concentration(a, residue, 2, 0.5)
	assert.Empty(t, cmp.Diff([]float64{1, 0.5, 0.25, 0.125}, c, approx))

	a = ConvolutionMatrix([]float64{0.3, 1.2, 0.7, 0.1}, domain.ConvolutionVoltera)
	c1 := Concentration(a, residue, 1, 1.5)
	c3 := Concentration(a, residue, 3, 1.5)
	for i := range c1 {
		assert.InDelta(t, 3*c1[i], c3[i], 1e-12)
	}
}
