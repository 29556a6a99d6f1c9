package nn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilyaukin/tinynn/internal/nn"
	"github.com/ilyaukin/tinynn/internal/tensor"
)

func TestParameter(t *testing.T) {
	value, err := tensor.FromSlice([]float64{1, 2, 3}, tensor.Shape{3})
	require.NoError(t, err)

	param := nn.NewParameter("weight", value)

	assert.Equal(t, "weight", param.Name())
	assert.Same(t, value, param.Tensor())
	assert.Nil(t, param.Grad(), "gradient should start nil")

	grad, err := tensor.FromSlice([]float64{0.1, 0.2, 0.3}, tensor.Shape{3})
	require.NoError(t, err)

	param.SetGrad(grad)
	assert.Same(t, grad, param.Grad())

	param.ZeroGrad()
	assert.Nil(t, param.Grad(), "ZeroGrad should clear the gradient")
}

func TestParamsOrder(t *testing.T) {
	w := nn.NewParameter("w", tensor.Zeros(tensor.Shape{2, 2}))
	b := nn.NewParameter("b", tensor.Zeros(tensor.Shape{2}))

	w.SetGrad(tensor.Full(tensor.Shape{2, 2}, 1))
	b.SetGrad(tensor.Full(tensor.Shape{2}, 2))

	pairs := nn.Params{w, b}.ParamsAndGrads()
	require.Len(t, pairs, 2)

	// Pairs come back in list order with the right tensors.
	assert.Same(t, w.Tensor(), pairs[0].Param)
	assert.Same(t, w.Grad(), pairs[0].Grad)
	assert.Same(t, b.Tensor(), pairs[1].Param)
	assert.Same(t, b.Grad(), pairs[1].Grad)
}

func TestParamsSkipsMissingGrads(t *testing.T) {
	w := nn.NewParameter("w", tensor.Zeros(tensor.Shape{2}))
	frozen := nn.NewParameter("frozen", tensor.Zeros(tensor.Shape{2}))

	w.SetGrad(tensor.Full(tensor.Shape{2}, 1))
	// frozen never receives a gradient.

	pairs := nn.Params{frozen, w, nil}.ParamsAndGrads()
	require.Len(t, pairs, 1)
	assert.Same(t, w.Tensor(), pairs[0].Param)
}
