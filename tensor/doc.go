// Copyright 2025 Lattice ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the 2D tensor view and backend primitives for
// the Lattice engine.
//
// # Overview
//
// A Matrix is a lightweight, non-owning reference to a row-major
// float32 buffer plus its shape: rows are samples, columns are
// features. Matrices created by operations (Transpose, backend results)
// are short-lived temporaries backed by a buffer pool and must be
// released:
//
//	x, _ := tensor.FromSlice(data, batch, features)
//	xT := x.Transpose()
//	defer xT.Release()
//
// Release is a no-op on views over caller-owned memory, so it is always
// safe to call.
//
// # Backends
//
// The Backend interface names the handful of primitives the layer
// contract is written against: matrix multiply (with and without bias),
// transpose, Hadamard product, column-wise sum, and element-wise map.
// The reference implementation is backend/cpu; alternative backends only
// need to honor the primitives' mathematical results.
package tensor
