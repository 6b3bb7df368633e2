// Copyright 2025 Lattice ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the layer contract and the built-in layer kinds of
// the Lattice engine.
//
// # The layer contract
//
// Every processable layer implements Layer: Forward produces the
// pre-activation and activated tensors, Backpropagate turns the error
// signal from the next layer into the error signal for the previous one,
// ComputeGradient produces parameter gradients, and Clone deep-copies
// the layer. The contract is what lets a generic driver run forward and
// backward passes over heterogeneous layers without knowing their math.
//
// # Built-in layers
//
//	backend := cpu.New()
//	hidden := nn.NewDense(2, 4, nn.Sigmoid, backend)
//	head := nn.NewOutput(4, 1, nn.Sigmoid, backend)
//
// Output layers implement the OutputLayer marker; graph validation uses
// it to recognize terminal nodes.
//
// # Resource discipline
//
// Layer operations return pooled temporaries; the driver releases each
// one once the pass no longer needs it. Backpropagate releases its own
// internal temporaries (such as the transposed weight matrix) on every
// exit path.
package nn
