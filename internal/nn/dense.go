package nn

import (
	"fmt"

	"github.com/lattice-ml/lattice/internal/tensor"
)

// Dense implements a fully connected layer.
//
// Performs the transformation: y = act(x @ W + b)
// where:
//   - x is the input with shape [samples, inputs]
//   - W is the weight matrix with shape [inputs, outputs]
//   - b is the bias row with shape [1, outputs]
//
// Weights are initialized with Xavier/Glorot uniform distribution and
// biases with zeros.
type Dense struct {
	inputs     int
	outputs    int
	weights    *tensor.Matrix // [inputs, outputs]
	bias       *tensor.Matrix // [1, outputs]
	activation Activation
	backend    tensor.Backend
}

// NewDense creates a fully connected layer with Xavier-initialized
// weights and zero biases.
func NewDense(inputs, outputs int, activation Activation, backend tensor.Backend) *Dense {
	weights, err := tensor.FromSlice(Xavier(inputs, outputs), inputs, outputs)
	if err != nil {
		panic(fmt.Sprintf("nn: dense weight init: %v", err))
	}
	bias, err := tensor.FromSlice(make([]float32, outputs), 1, outputs)
	if err != nil {
		panic(fmt.Sprintf("nn: dense bias init: %v", err))
	}

	return &Dense{
		inputs:     inputs,
		outputs:    outputs,
		weights:    weights,
		bias:       bias,
		activation: activation,
		backend:    backend,
	}
}

// Inputs returns the fixed input width.
func (d *Dense) Inputs() int { return d.inputs }

// Outputs returns the fixed output width.
func (d *Dense) Outputs() int { return d.outputs }

// Activation returns the layer's activation function.
func (d *Dense) Activation() Activation { return d.activation }

// Weights returns the [inputs, outputs] weight matrix.
func (d *Dense) Weights() *tensor.Matrix { return d.weights }

// Bias returns the [1, outputs] bias row.
func (d *Dense) Bias() *tensor.Matrix { return d.bias }

// Forward computes the pre-activation x @ W + b and the activated output.
// Both results are pooled temporaries the caller releases.
func (d *Dense) Forward(input *tensor.Matrix) (*tensor.Matrix, *tensor.Matrix, error) {
	if input.Cols() != d.inputs {
		return nil, nil, fmt.Errorf("%w: dense forward: input has %d features, layer expects %d",
			tensor.ErrShapeMismatch, input.Cols(), d.inputs)
	}

	preActivation, err := d.backend.MatMulWithBias(input, d.weights, d.bias)
	if err != nil {
		return nil, nil, fmt.Errorf("dense forward: %w", err)
	}

	activated := d.backend.Apply(preActivation, d.activation.fn)
	return preActivation, activated, nil
}

// Backpropagate computes (upstreamDelta @ Wᵀ) ⊙ derivative(preActivation).
// The transposed-weight temporary is released on every exit path.
func (d *Dense) Backpropagate(upstreamDelta, preActivation *tensor.Matrix, derivative Derivative) (*tensor.Matrix, error) {
	if upstreamDelta.Cols() != d.outputs {
		return nil, fmt.Errorf("%w: dense backpropagate: delta has %d features, layer produces %d",
			tensor.ErrShapeMismatch, upstreamDelta.Cols(), d.outputs)
	}

	wT := d.backend.Transpose(d.weights) // [outputs, inputs]
	defer wT.Release()

	propagated, err := d.backend.MatMul(upstreamDelta, wT)
	if err != nil {
		return nil, fmt.Errorf("dense backpropagate: %w", err)
	}

	derivatives := d.backend.Apply(preActivation, derivative)
	defer derivatives.Release()

	downstream, err := d.backend.Hadamard(propagated, derivatives)
	propagated.Release()
	if err != nil {
		return nil, fmt.Errorf("dense backpropagate: %w", err)
	}
	return downstream, nil
}

// ComputeGradient computes the weight gradient activationInputᵀ @ delta
// and the bias gradient as the column sum of delta.
func (d *Dense) ComputeGradient(activationInput, delta *tensor.Matrix) (*tensor.Matrix, *tensor.Matrix, error) {
	if activationInput.Cols() != d.inputs {
		return nil, nil, fmt.Errorf("%w: dense gradient: input has %d features, layer expects %d",
			tensor.ErrShapeMismatch, activationInput.Cols(), d.inputs)
	}
	if delta.Cols() != d.outputs {
		return nil, nil, fmt.Errorf("%w: dense gradient: delta has %d features, layer produces %d",
			tensor.ErrShapeMismatch, delta.Cols(), d.outputs)
	}

	inputT := d.backend.Transpose(activationInput) // [inputs, samples]
	defer inputT.Release()

	weightGradient, err := d.backend.MatMul(inputT, delta) // [inputs, outputs]
	if err != nil {
		return nil, nil, fmt.Errorf("dense gradient: %w", err)
	}

	biasGradient := d.backend.ColumnSum(delta) // [1, outputs]
	return weightGradient, biasGradient, nil
}

// Clone deep-copies the parameters into an independent layer sharing no
// mutable state with the original.
func (d *Dense) Clone() Layer {
	return d.clone()
}

func (d *Dense) clone() *Dense {
	return &Dense{
		inputs:     d.inputs,
		outputs:    d.outputs,
		weights:    d.weights.CloneData(),
		bias:       d.bias.CloneData(),
		activation: d.activation,
		backend:    d.backend,
	}
}
