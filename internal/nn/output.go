package nn

import "github.com/lattice-ml/lattice/internal/tensor"

// Output is a fully connected output head: a Dense layer with no
// outgoing computation. Graph validation treats processing nodes wrapping
// an Output as terminal and requires them to be childless.
type Output struct {
	Dense
}

// NewOutput creates a fully connected output layer.
func NewOutput(inputs, outputs int, activation Activation, backend tensor.Backend) *Output {
	return &Output{Dense: *NewDense(inputs, outputs, activation, backend)}
}

// OutputLayer marks Output as an output head.
func (o *Output) OutputLayer() {}

// Clone deep-copies the parameters into an independent output layer.
func (o *Output) Clone() Layer {
	return &Output{Dense: *o.Dense.clone()}
}
