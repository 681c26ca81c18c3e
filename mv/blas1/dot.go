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

package blas1

//go:generate go run ../../cmd/mvgen -op dot -max 16 -output .

import (
	"fmt"

	"github.com/ajroetker/go-mvblas/mv"
	"github.com/ajroetker/go-mvblas/mv/exec"
)

// vecDot is the single-vector inner-product functor. The accumulator is one
// element-typed sum; the result lands in a rank-0 output view.
type vecDot[T mv.Number, I exec.Size] struct {
	r    mv.Scalar[T]
	x, y mv.Vector[T]
}

func (f vecDot[T, I]) Init(acc *T) {
	var zero T
	*acc = zero
}

func (f vecDot[T, I]) Accumulate(i I, acc *T) {
	*acc += mv.DotTerm(*f.x.At(int(i)), *f.y.At(int(i)))
}

func (f vecDot[T, I]) Join(acc, other *T) {
	*acc += *other
}

func (f vecDot[T, I]) Final(acc *T) {
	f.r.Set(*acc)
}

// colDot carries the shared state and accumulator plumbing for all
// column-batch dot functors: one sum per column, joined element-wise,
// written to a rank-1 output view. The Accumulate step is supplied by
// colDotGeneric (runtime column loop) or by a generated unrolled variant
// embedding colDot.
type colDot[T mv.Number, I exec.Size] struct {
	numVecs int
	r       mv.Vector[T]
	x, y    mv.Matrix[T]
}

func (f colDot[T, I]) Init(acc *[]T) {
	*acc = make([]T, f.numVecs)
}

func (f colDot[T, I]) Join(acc, other *[]T) {
	sum, src := *acc, *other
	for k := range src {
		sum[k] += src[k]
	}
}

func (f colDot[T, I]) Final(acc *[]T) {
	for k, v := range *acc {
		*f.r.At(k) = v
	}
}

// colDotGeneric is the runtime-loop column-batch dot functor, used above
// maxUnroll columns and as the reference the unrolled variants are tested
// against.
type colDotGeneric[T mv.Number, I exec.Size] struct {
	colDot[T, I]
}

func (f colDotGeneric[T, I]) Accumulate(i I, acc *[]T) {
	row := int(i)
	sum := *acc
	for k := 0; k < f.numVecs; k++ {
		sum[k] += mv.DotTerm(*f.x.At(row, k), *f.y.At(row, k))
	}
}

// Dot computes the column-wise inner products of X and Y, storing
// r[k] = sum_i conj(X[i,k]) * Y[i,k] for every column k. For real element
// types the conjugation is the identity.
//
// r must have one entry per column of X; X and Y must have identical
// shapes with at least one column. Zero rows is valid and yields zeros.
func Dot[T mv.Number](ex exec.Executor, r mv.Vector[T], X, Y mv.Matrix[T]) {
	rows := X.Dim(0)
	numVecs := X.Dim(1)
	if Y.Dim(0) != rows || Y.Dim(1) != numVecs {
		panic(fmt.Sprintf("blas1: Dot shape mismatch: X is %dx%d, Y is %dx%d",
			rows, numVecs, Y.Dim(0), Y.Dim(1)))
	}
	if r.Len() != numVecs {
		panic(fmt.Sprintf("blas1: Dot output length %d, want %d", r.Len(), numVecs))
	}
	if numVecs == 0 {
		panic("blas1: Dot requires at least one column")
	}
	if fitsNarrow(rows, numVecs) {
		dotDispatch[T, int32](ex, r, X, Y, rows, numVecs)
	} else {
		dotDispatch[T, int64](ex, r, X, Y, rows, numVecs)
	}
}

// dotDispatch selects the column-specialization path with the index type
// already fixed: generic runtime loop above maxUnroll, single-vector
// subviews for one column, generated unrolled functors in between.
func dotDispatch[T mv.Number, I exec.Size](ex exec.Executor, r mv.Vector[T], X, Y mv.Matrix[T], rows, numVecs int) {
	switch {
	case numVecs > maxUnroll:
		f := colDotGeneric[T, I]{colDot[T, I]{numVecs: numVecs, r: r, x: X, y: Y}}
		exec.ParallelReduce[I, []T](ex, I(rows), f)
	case numVecs == 1:
		// Batch accumulators are wasted on one column; collapse the views
		// by one rank and run the single-vector functor.
		f := vecDot[T, I]{r: r.Sub(0), x: X.Col(0), y: Y.Col(0)}
		exec.ParallelReduce[I, T](ex, I(rows), f)
	default:
		reduceDotUnrolled[T, I](ex, I(rows), numVecs, r, X, Y)
	}
}

// DotCols computes the inner product of column xcol of X with column ycol
// of Y, storing the result in the rank-0 view r.
//
// The narrow/wide index choice uses the full column count of X, matching
// the batch form's conservative overflow bound even though only one column
// participates.
func DotCols[T mv.Number](ex exec.Executor, r mv.Scalar[T], X mv.Matrix[T], xcol int, Y mv.Matrix[T], ycol int) {
	rows := X.Dim(0)
	if Y.Dim(0) != rows {
		panic(fmt.Sprintf("blas1: DotCols row mismatch: X has %d, Y has %d", rows, Y.Dim(0)))
	}
	x := X.Col(xcol)
	y := Y.Col(ycol)
	if fitsNarrow(rows, X.Dim(1)) {
		exec.ParallelReduce[int32, T](ex, int32(rows), vecDot[T, int32]{r: r, x: x, y: y})
	} else {
		exec.ParallelReduce[int64, T](ex, int64(rows), vecDot[T, int64]{r: r, x: x, y: y})
	}
}

// DotVec computes the inner product of the vectors x and y, storing the
// result in the rank-0 view r.
func DotVec[T mv.Number](ex exec.Executor, r mv.Scalar[T], x, y mv.Vector[T]) {
	n := x.Len()
	if y.Len() != n {
		panic(fmt.Sprintf("blas1: DotVec length mismatch: %d vs %d", n, y.Len()))
	}
	if fitsNarrow(n, 1) {
		exec.ParallelReduce[int32, T](ex, int32(n), vecDot[T, int32]{r: r, x: x, y: y})
	} else {
		exec.ParallelReduce[int64, T](ex, int64(n), vecDot[T, int64]{r: r, x: x, y: y})
	}
}
