// Package cpu implements the pure Go CPU backend for the tensor primitives.
package cpu

import (
	"fmt"

	"github.com/lattice-ml/lattice/internal/tensor"
)

// CPUBackend implements tensor.Backend with straightforward pure Go loops.
type CPUBackend struct{}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// MatMul performs matrix multiplication: (M, K) @ (K, N) -> (M, N).
// Uses a naive O(n³) implementation.
func (cpu *CPUBackend) MatMul(a, b *tensor.Matrix) (*tensor.Matrix, error) {
	if a.Cols() != b.Rows() {
		return nil, fmt.Errorf("%w: matmul [%d,%d] @ [%d,%d]",
			tensor.ErrShapeMismatch, a.Rows(), a.Cols(), b.Rows(), b.Cols())
	}

	m, k, n := a.Rows(), a.Cols(), b.Cols()
	result := tensor.NewTemp(m, n)
	matmulFloat32(result.Data(), a.Data(), b.Data(), m, k, n)
	return result, nil
}

// MatMulWithBias performs a @ w + bias, broadcasting the [1, N] bias row
// across every row of the product.
func (cpu *CPUBackend) MatMulWithBias(a, w, bias *tensor.Matrix) (*tensor.Matrix, error) {
	if a.Cols() != w.Rows() {
		return nil, fmt.Errorf("%w: matmul [%d,%d] @ [%d,%d]",
			tensor.ErrShapeMismatch, a.Rows(), a.Cols(), w.Rows(), w.Cols())
	}
	if bias.Rows() != 1 || bias.Cols() != w.Cols() {
		return nil, fmt.Errorf("%w: bias [%d,%d] incompatible with weight [%d,%d]",
			tensor.ErrShapeMismatch, bias.Rows(), bias.Cols(), w.Rows(), w.Cols())
	}

	m, k, n := a.Rows(), a.Cols(), w.Cols()
	result := tensor.NewTemp(m, n)
	matmulFloat32(result.Data(), a.Data(), w.Data(), m, k, n)

	out := result.Data()
	b := bias.Data()
	for i := 0; i < m; i++ {
		row := out[i*n : (i+1)*n]
		for j := range row {
			row[j] += b[j]
		}
	}
	return result, nil
}

// Transpose returns a transposed copy of x.
func (cpu *CPUBackend) Transpose(x *tensor.Matrix) *tensor.Matrix {
	return x.Transpose()
}

// Hadamard performs the element-wise product of two equally shaped matrices.
func (cpu *CPUBackend) Hadamard(a, b *tensor.Matrix) (*tensor.Matrix, error) {
	if !a.SameShape(b) {
		return nil, fmt.Errorf("%w: hadamard [%d,%d] ⊙ [%d,%d]",
			tensor.ErrShapeMismatch, a.Rows(), a.Cols(), b.Rows(), b.Cols())
	}

	result := tensor.NewTemp(a.Rows(), a.Cols())
	out, ad, bd := result.Data(), a.Data(), b.Data()
	for i := range out {
		out[i] = ad[i] * bd[i]
	}
	return result, nil
}

// ColumnSum sums x across the sample dimension into a [1, cols] matrix.
func (cpu *CPUBackend) ColumnSum(x *tensor.Matrix) *tensor.Matrix {
	rows, cols := x.Rows(), x.Cols()
	result := tensor.NewTemp(1, cols)
	out, data := result.Data(), x.Data()
	for i := 0; i < rows; i++ {
		row := data[i*cols : (i+1)*cols]
		for j := range row {
			out[j] += row[j]
		}
	}
	return result
}

// Apply maps f over every element of x into a new matrix.
func (cpu *CPUBackend) Apply(x *tensor.Matrix, f func(float32) float32) *tensor.Matrix {
	result := tensor.NewTemp(x.Rows(), x.Cols())
	out, data := result.Data(), x.Data()
	for i := range data {
		out[i] = f(data[i])
	}
	return result
}

// matmulFloat32 computes C[i,j] = sum_k A[i,k] * B[k,j].
func matmulFloat32(c, a, b []float32, m, k, n int) {
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			sum := float32(0)
			for kIdx := 0; kIdx < k; kIdx++ {
				sum += a[i*k+kIdx] * b[kIdx*n+j]
			}
			c[i*n+j] = sum
		}
	}
}
