package nn

import (
	"github.com/lattice-ml/lattice/internal/tensor"
)

// Layer is the uniform contract every processable unit satisfies so that
// a generic forward/backward driver can treat all layer kinds alike.
//
// A layer's input and output widths are fixed at construction; every call
// whose tensors disagree with them fails with tensor.ErrShapeMismatch.
type Layer interface {
	// Forward computes the affine pre-activation and the activated output
	// for a [samples, Inputs()] input. Parameters are read, never
	// mutated. Both returned matrices are pooled temporaries the caller
	// releases.
	Forward(input *tensor.Matrix) (preActivation, activated *tensor.Matrix, err error)

	// Backpropagate turns the error signal arriving from the next layer
	// into the error signal for the previous one:
	//
	//	downstream = (upstreamDelta @ Wᵀ) ⊙ derivative(preActivation)
	//
	// Any transposed-weight temporary is released before returning,
	// success or not. The returned delta is a pooled temporary.
	Backpropagate(upstreamDelta, preActivation *tensor.Matrix, derivative Derivative) (*tensor.Matrix, error)

	// ComputeGradient produces parameter gradients for an update step:
	// weight gradient = activationInputᵀ @ delta, bias gradient = the
	// column-wise sum of delta across samples. Shapes match the owned
	// parameters. Both results are pooled temporaries.
	ComputeGradient(activationInput, delta *tensor.Matrix) (weightGradient, biasGradient *tensor.Matrix, err error)

	// Clone deep-copies the trainable parameters into an independent
	// layer of the same kind, activation, and dimensionality.
	Clone() Layer

	// Inputs returns the fixed input width (weight-matrix rows).
	Inputs() int

	// Outputs returns the fixed output width (weight-matrix columns).
	Outputs() int

	// Activation returns the layer's activation function, so a driver
	// can obtain the derivative Backpropagate expects.
	Activation() Activation
}

// OutputLayer marks a layer as an output head: a terminal unit with no
// outgoing computation. Graph validation requires output layers to sit on
// childless processing nodes.
type OutputLayer interface {
	Layer

	// OutputLayer is a marker method with no behavior.
	OutputLayer()
}
