// Copyright 2025 Lattice ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/lattice-ml/lattice/internal/tensor"
)

// Matrix is a non-owning view over a row-major 2D float32 buffer.
// Rows index samples, columns index features.
type Matrix = tensor.Matrix

// Backend is the interface numeric backends implement to supply the
// tensor primitives used by layers.
type Backend = tensor.Backend

// ErrShapeMismatch is returned when tensor dimensions are incompatible
// with the requested operation.
var ErrShapeMismatch = tensor.ErrShapeMismatch

// FromSlice wraps caller-owned data as a rows×cols matrix without
// copying.
//
// Example:
//
//	x, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, 2, 3)
func FromSlice(data []float32, rows, cols int) (*Matrix, error) {
	return tensor.FromSlice(data, rows, cols)
}

// NewTemp returns a zeroed rows×cols matrix backed by a pooled buffer.
// Backend implementations use it for their results; the consumer must
// call Release when done.
func NewTemp(rows, cols int) *Matrix {
	return tensor.NewTemp(rows, cols)
}
