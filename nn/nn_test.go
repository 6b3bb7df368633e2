// Copyright 2025 Lattice ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lattice-ml/lattice/backend/cpu"
	"github.com/lattice-ml/lattice/nn"
	"github.com/lattice-ml/lattice/tensor"
)

func matrix(t *testing.T, data []float32, rows, cols int) *tensor.Matrix {
	t.Helper()
	m, err := tensor.FromSlice(data, rows, cols)
	require.NoError(t, err)
	return m
}

// gradients runs one full backward step, Backpropagate followed by
// ComputeGradient, and returns copies of the results.
func gradients(t *testing.T, layer nn.Layer, delta, pre, activationInput *tensor.Matrix) (downstream, weightGrad, biasGrad []float32) {
	t.Helper()

	down, err := layer.Backpropagate(delta, pre, layer.Activation().Derivative())
	require.NoError(t, err)
	defer down.Release()

	wg, bg, err := layer.ComputeGradient(activationInput, delta)
	require.NoError(t, err)
	defer wg.Release()
	defer bg.Release()

	downstream = append(downstream, down.Data()...)
	weightGrad = append(weightGrad, wg.Data()...)
	biasGrad = append(biasGrad, bg.Data()...)
	return downstream, weightGrad, biasGrad
}

func TestClone_IndependentParameters(t *testing.T) {
	layer := nn.NewDense(2, 2, nn.Sigmoid, cpu.New())

	clone := layer.Clone().(*nn.Dense)
	require.Equal(t, layer.Weights().Data(), clone.Weights().Data())

	// Mutating the clone must not leak into the original.
	original := append([]float32(nil), layer.Weights().Data()...)
	for i := range clone.Weights().Data() {
		clone.Weights().Data()[i] = -1
	}
	clone.Bias().Data()[0] = 42

	assert.Equal(t, original, layer.Weights().Data())
	assert.Equal(t, float32(0), layer.Bias().Data()[0])
}

func TestCloneRoundTrip_DeterministicGradients(t *testing.T) {
	backend := cpu.New()
	layer := nn.NewDense(3, 2, nn.Tanh, backend)
	clone := layer.Clone()

	input := matrix(t, []float32{0.1, -0.2, 0.3, 0.4, 0.5, -0.6}, 2, 3)
	delta := matrix(t, []float32{0.7, -0.8, 0.9, 1.0}, 2, 2)
	pre := matrix(t, []float32{0.2, 0.4, -0.1, 0.3, -0.5, 0.6}, 2, 3)

	down1, wg1, bg1 := gradients(t, layer, delta, pre, input)
	down2, wg2, bg2 := gradients(t, clone, delta, pre, input)

	// Identical parameters and identical inputs must yield identical
	// gradients: the contract math has no hidden randomness.
	assert.Equal(t, down1, down2)
	assert.Equal(t, wg1, wg2)
	assert.Equal(t, bg1, bg2)
}

func TestForward_PureInParameters(t *testing.T) {
	layer := nn.NewDense(2, 2, nn.ReLU, cpu.New())
	before := append([]float32(nil), layer.Weights().Data()...)

	input := matrix(t, []float32{1, 2}, 1, 2)
	pre, activated, err := layer.Forward(input)
	require.NoError(t, err)
	pre.Release()
	activated.Release()

	assert.Equal(t, before, layer.Weights().Data())
}

func TestOutput_ImplementsMarker(t *testing.T) {
	var layer nn.Layer = nn.NewOutput(4, 2, nn.Sigmoid, cpu.New())
	_, ok := layer.(nn.OutputLayer)
	assert.True(t, ok)
}
