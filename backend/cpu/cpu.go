// Copyright 2025 Lattice ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the pure Go CPU backend.
package cpu

import (
	internalcpu "github.com/lattice-ml/lattice/internal/backend/cpu"
	"github.com/lattice-ml/lattice/tensor"
)

// Backend is the CPU implementation of the tensor primitives.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend.
//
// Example:
//
//	backend := cpu.New()
//	layer := nn.NewDense(2, 4, nn.Sigmoid, backend)
func New() *Backend {
	return internalcpu.New()
}
