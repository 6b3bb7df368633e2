// Copyright 2025 Lattice ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/lattice-ml/lattice/internal/nn"
	"github.com/lattice-ml/lattice/tensor"
)

// Layer is the uniform contract every processable unit implements:
// forward evaluation, error backpropagation, gradient computation, and
// deep cloning.
type Layer = nn.Layer

// OutputLayer marks a layer as an output head with no outgoing
// computation.
type OutputLayer = nn.OutputLayer

// Activation is an element-wise activation function paired with its
// derivative.
type Activation = nn.Activation

// Derivative is the element-wise derivative of an activation function.
type Derivative = nn.Derivative

// Built-in activation functions.
var (
	Sigmoid  = nn.Sigmoid
	Tanh     = nn.Tanh
	ReLU     = nn.ReLU
	Identity = nn.Identity
)

// Dense is a fully connected layer: y = act(x @ W + b).
type Dense = nn.Dense

// Output is a fully connected output head.
type Output = nn.Output

// NewDense creates a fully connected layer with Xavier-initialized
// weights and zero biases.
//
// Example:
//
//	backend := cpu.New()
//	hidden := nn.NewDense(784, 128, nn.ReLU, backend)
func NewDense(inputs, outputs int, activation Activation, backend tensor.Backend) *Dense {
	return nn.NewDense(inputs, outputs, activation, backend)
}

// NewOutput creates a fully connected output layer.
func NewOutput(inputs, outputs int, activation Activation, backend tensor.Backend) *Output {
	return nn.NewOutput(inputs, outputs, activation, backend)
}

// Xavier returns fanIn*fanOut weights drawn from the Glorot uniform
// distribution.
func Xavier(fanIn, fanOut int) []float32 {
	return nn.Xavier(fanIn, fanOut)
}
