package tensor

import (
	"errors"
	"fmt"
	"sync"
)

// ErrShapeMismatch is returned when tensor dimensions are incompatible
// with the requested operation.
var ErrShapeMismatch = errors.New("tensor: shape mismatch")

// bufferPool recycles the float32 buffers behind short-lived intermediate
// matrices (transposes, matmul results) so that a forward/backward pass
// does not churn the allocator.
var bufferPool = sync.Pool{
	New: func() any {
		buf := make([]float32, 0, 256)
		return &buf
	},
}

// Matrix is a non-owning view over a row-major 2D float32 buffer.
// Rows index samples, columns index features.
//
// A Matrix created with FromSlice references caller-owned memory and
// Release is a no-op. A Matrix created with NewTemp (directly or through
// Transpose or a Backend operation) owns a pooled buffer that must be
// returned with Release once the value is no longer needed.
type Matrix struct {
	data   []float32
	rows   int
	cols   int
	pooled bool
}

// FromSlice wraps caller-owned data as a rows×cols matrix without copying.
// The data length must be exactly rows*cols.
func FromSlice(data []float32, rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: invalid dimensions %dx%d", ErrShapeMismatch, rows, cols)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%w: %d elements cannot view as %dx%d", ErrShapeMismatch, len(data), rows, cols)
	}
	return &Matrix{data: data, rows: rows, cols: cols}, nil
}

// NewTemp returns a zeroed rows×cols matrix backed by a pooled buffer.
// The caller must call Release when done with it.
func NewTemp(rows, cols int) *Matrix {
	n := rows * cols
	bufp := bufferPool.Get().(*[]float32)
	buf := *bufp
	if cap(buf) < n {
		buf = make([]float32, n)
	} else {
		buf = buf[:n]
		for i := range buf {
			buf[i] = 0
		}
	}
	*bufp = buf
	return &Matrix{data: buf, rows: rows, cols: cols, pooled: true}
}

// Rows returns the number of rows (samples).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns (features).
func (m *Matrix) Cols() int { return m.cols }

// Data returns the underlying row-major buffer.
func (m *Matrix) Data() []float32 { return m.data }

// At returns the element at row i, column j.
func (m *Matrix) At(i, j int) float32 { return m.data[i*m.cols+j] }

// Set stores v at row i, column j.
func (m *Matrix) Set(i, j int, v float32) { m.data[i*m.cols+j] = v }

// Row returns the i-th row as a slice sharing the matrix's memory.
func (m *Matrix) Row(i int) []float32 { return m.data[i*m.cols : (i+1)*m.cols] }

// Transpose returns a cols×rows copy of the matrix backed by a pooled
// buffer. The caller must Release the result.
func (m *Matrix) Transpose() *Matrix {
	t := NewTemp(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			t.data[j*m.rows+i] = m.data[i*m.cols+j]
		}
	}
	return t
}

// CloneData returns an independent copy of the matrix backed by freshly
// allocated (non-pooled) memory. Used for long-lived parameters.
func (m *Matrix) CloneData() *Matrix {
	data := make([]float32, len(m.data))
	copy(data, m.data)
	return &Matrix{data: data, rows: m.rows, cols: m.cols}
}

// Release returns a pooled buffer to the pool. It is a no-op for views
// over caller-owned memory, and safe to call on nil.
func (m *Matrix) Release() {
	if m == nil || !m.pooled {
		return
	}
	buf := m.data
	m.data = nil
	m.pooled = false
	bufferPool.Put(&buf)
}

// SameShape reports whether m and other have identical dimensions.
func (m *Matrix) SameShape(other *Matrix) bool {
	return m.rows == other.rows && m.cols == other.cols
}
