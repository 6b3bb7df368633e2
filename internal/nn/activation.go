package nn

import "math"

// Derivative is the element-wise derivative of an activation function,
// evaluated on pre-activation values during backpropagation.
type Derivative func(float32) float32

// Activation is an element-wise activation function paired with its
// derivative.
type Activation struct {
	name  string
	fn    func(float32) float32
	deriv Derivative
}

// Name returns the activation's name.
func (a Activation) Name() string { return a.name }

// Apply evaluates the activation at x.
func (a Activation) Apply(x float32) float32 { return a.fn(x) }

// Func returns the element-wise activation function.
func (a Activation) Func() func(float32) float32 { return a.fn }

// Derivative returns the element-wise derivative function.
func (a Activation) Derivative() Derivative { return a.deriv }

// Sigmoid squashes values to (0, 1): σ(x) = 1 / (1 + exp(-x)).
var Sigmoid = Activation{
	name: "sigmoid",
	fn:   sigmoid,
	deriv: func(x float32) float32 {
		s := sigmoid(x)
		return s * (1 - s)
	},
}

// Tanh squashes values to (-1, 1).
var Tanh = Activation{
	name: "tanh",
	fn: func(x float32) float32 {
		return float32(math.Tanh(float64(x)))
	},
	deriv: func(x float32) float32 {
		t := float32(math.Tanh(float64(x)))
		return 1 - t*t
	},
}

// ReLU is the rectified linear unit: f(x) = max(0, x).
var ReLU = Activation{
	name: "relu",
	fn: func(x float32) float32 {
		if x > 0 {
			return x
		}
		return 0
	},
	deriv: func(x float32) float32 {
		if x > 0 {
			return 1
		}
		return 0
	},
}

// Identity passes values through unchanged. Useful for linear output
// heads and for testing the contract math in isolation.
var Identity = Activation{
	name:  "identity",
	fn:    func(x float32) float32 { return x },
	deriv: func(float32) float32 { return 1 },
}

func sigmoid(x float32) float32 {
	return float32(1.0 / (1.0 + math.Exp(-float64(x))))
}
