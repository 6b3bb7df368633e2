package tensor

// Backend supplies the numeric primitives the layer contract is written
// against. Implementations live under internal/backend; the core never
// assumes anything about a primitive beyond its mathematical result.
//
// Every returned matrix is backed by a pooled buffer and must be
// Released by the caller.
type Backend interface {
	// MatMul computes a @ b for a [m,k] and b [k,n].
	MatMul(a, b *Matrix) (*Matrix, error)

	// MatMulWithBias computes a @ w + bias with bias [1,n] broadcast
	// across the rows of the product. This is the affine forward step.
	MatMulWithBias(a, w, bias *Matrix) (*Matrix, error)

	// Transpose returns a copy of x with rows and columns exchanged.
	Transpose(x *Matrix) *Matrix

	// Hadamard computes the element-wise product of two equally shaped
	// matrices.
	Hadamard(a, b *Matrix) (*Matrix, error)

	// ColumnSum compresses x across the sample dimension, returning a
	// [1,cols] matrix of per-column sums.
	ColumnSum(x *Matrix) *Matrix

	// Apply maps f over every element of x into a new matrix.
	Apply(x *Matrix, f func(float32) float32) *Matrix

	// Name identifies the backend (e.g. "CPU").
	Name() string
}
