// Copyright 2026 go-mvblas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mv

import "fmt"

// Matrix is a rank-2 strided view over caller-owned storage. Element (i, j)
// lives at data[i*rstride + j*cstride], so the same type covers row-major
// and column-major layouts. The zero Matrix is an empty 0x0 view.
//
// Matrix does not own data and never copies it; Col returns a rank-1 view
// sharing the same backing slice.
type Matrix[T Number] struct {
	data       []T
	rows, cols int
	rstride    int
	cstride    int
}

// NewMatrixColMajor wraps data as a rows x cols column-major matrix
// (consecutive elements of one column are adjacent in memory).
// Panics if data is shorter than rows*cols.
func NewMatrixColMajor[T Number](data []T, rows, cols int) Matrix[T] {
	checkMatrixArgs(len(data), rows, cols)
	return Matrix[T]{data: data, rows: rows, cols: cols, rstride: 1, cstride: rows}
}

// NewMatrixRowMajor wraps data as a rows x cols row-major matrix
// (consecutive elements of one row are adjacent in memory).
// Panics if data is shorter than rows*cols.
func NewMatrixRowMajor[T Number](data []T, rows, cols int) Matrix[T] {
	checkMatrixArgs(len(data), rows, cols)
	return Matrix[T]{data: data, rows: rows, cols: cols, rstride: cols, cstride: 1}
}

func checkMatrixArgs(n, rows, cols int) {
	if rows < 0 || cols < 0 {
		panic("mv: negative matrix dimension")
	}
	if n < rows*cols {
		panic(fmt.Sprintf("mv: matrix storage too short: %d elements for %dx%d", n, rows, cols))
	}
}

// Dim returns the extent along axis: 0 for rows, 1 for columns.
func (m Matrix[T]) Dim(axis int) int {
	switch axis {
	case 0:
		return m.rows
	case 1:
		return m.cols
	}
	panic("mv: matrix axis out of range")
}

// Rows returns the number of rows.
func (m Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m Matrix[T]) Cols() int { return m.cols }

// At returns the address of element (i, j). No bounds check beyond the
// backing slice's own.
func (m Matrix[T]) At(i, j int) *T {
	return &m.data[i*m.rstride+j*m.cstride]
}

// Col returns column j as a rank-1 view sharing the backing storage.
// Panics if j is out of range.
func (m Matrix[T]) Col(j int) Vector[T] {
	if j < 0 || j >= m.cols {
		panic(fmt.Sprintf("mv: column %d out of range [0, %d)", j, m.cols))
	}
	if m.rows == 0 {
		// The backing slice may be empty; keep the view empty too.
		return Vector[T]{n: 0, stride: m.rstride}
	}
	return Vector[T]{data: m.data[j*m.cstride:], n: m.rows, stride: m.rstride}
}

// Vector is a rank-1 strided view over caller-owned storage. Element i
// lives at data[i*stride]. The zero Vector is an empty view.
type Vector[T Number] struct {
	data   []T
	n      int
	stride int
}

// NewVector wraps the first n contiguous elements of data as a vector.
// Panics if data is shorter than n.
func NewVector[T Number](data []T, n int) Vector[T] {
	if n < 0 {
		panic("mv: negative vector length")
	}
	if len(data) < n {
		panic(fmt.Sprintf("mv: vector storage too short: %d elements for length %d", len(data), n))
	}
	return Vector[T]{data: data, n: n, stride: 1}
}

// Len returns the number of elements.
func (v Vector[T]) Len() int { return v.n }

// At returns the address of element i.
func (v Vector[T]) At(i int) *T {
	return &v.data[i*v.stride]
}

// Sub returns the rank-0 view of element i.
// Panics if i is out of range.
func (v Vector[T]) Sub(i int) Scalar[T] {
	if i < 0 || i >= v.n {
		panic(fmt.Sprintf("mv: index %d out of range [0, %d)", i, v.n))
	}
	return Scalar[T]{p: v.At(i)}
}

// Scalar is a rank-0 view: a handle to a single element of caller-owned
// storage. It is the output shape of single-vector reductions.
type Scalar[T Number] struct {
	p *T
}

// NewScalar wraps p as a rank-0 view.
func NewScalar[T Number](p *T) Scalar[T] {
	if p == nil {
		panic("mv: nil scalar storage")
	}
	return Scalar[T]{p: p}
}

// Get reads the element.
func (s Scalar[T]) Get() T { return *s.p }

// Set writes the element.
func (s Scalar[T]) Set(v T) { *s.p = v }
