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

//go:generate go run ../../cmd/mvgen -op nrm2 -max 16 -output .

import (
	"fmt"

	"github.com/ajroetker/go-mvblas/mv"
	"github.com/ajroetker/go-mvblas/mv/exec"
)

// vecNrm2 is the single-vector squared-2-norm functor. The accumulator is
// one real magnitude; the result lands in a rank-0 output view.
type vecNrm2[T mv.Number, M mv.Real, I exec.Size] struct {
	r mv.Scalar[M]
	x mv.Vector[T]
}

func (f vecNrm2[T, M, I]) Init(acc *M) {
	*acc = 0
}

func (f vecNrm2[T, M, I]) Accumulate(i I, acc *M) {
	t := mv.Norm[T, M](*f.x.At(int(i)))
	*acc += t * t
}

func (f vecNrm2[T, M, I]) Join(acc, other *M) {
	*acc += *other
}

func (f vecNrm2[T, M, I]) Final(acc *M) {
	f.r.Set(*acc)
}

// colNrm2 carries the shared state and accumulator plumbing for all
// column-batch squared-norm functors: one real magnitude per column. The
// Accumulate step comes from colNrm2Generic or a generated unrolled
// variant embedding colNrm2.
type colNrm2[T mv.Number, M mv.Real, I exec.Size] struct {
	numVecs int
	r       mv.Vector[M]
	x       mv.Matrix[T]
}

func (f colNrm2[T, M, I]) Init(acc *[]M) {
	*acc = make([]M, f.numVecs)
}

func (f colNrm2[T, M, I]) Join(acc, other *[]M) {
	sum, src := *acc, *other
	for k := range src {
		sum[k] += src[k]
	}
}

func (f colNrm2[T, M, I]) Final(acc *[]M) {
	for k, v := range *acc {
		*f.r.At(k) = v
	}
}

// colNrm2Generic is the runtime-loop column-batch squared-norm functor.
type colNrm2Generic[T mv.Number, M mv.Real, I exec.Size] struct {
	colNrm2[T, M, I]
}

func (f colNrm2Generic[T, M, I]) Accumulate(i I, acc *[]M) {
	row := int(i)
	sum := *acc
	for k := 0; k < f.numVecs; k++ {
		t := mv.Norm[T, M](*f.x.At(row, k))
		sum[k] += t * t
	}
}

// Nrm2Squared computes the squared 2-norm of every column of X, storing
// r[k] = sum_i |X[i,k]|^2. M is the real magnitude type of T.
//
// r must have one entry per column of X, and X must have at least one
// column. Zero rows is valid and yields zeros.
func Nrm2Squared[T mv.Number, M mv.Real](ex exec.Executor, r mv.Vector[M], X mv.Matrix[T]) {
	rows := X.Dim(0)
	numVecs := X.Dim(1)
	if r.Len() != numVecs {
		panic(fmt.Sprintf("blas1: Nrm2Squared output length %d, want %d", r.Len(), numVecs))
	}
	if numVecs == 0 {
		panic("blas1: Nrm2Squared requires at least one column")
	}
	if fitsNarrow(rows, numVecs) {
		nrm2Dispatch[T, M, int32](ex, r, X, rows, numVecs)
	} else {
		nrm2Dispatch[T, M, int64](ex, r, X, rows, numVecs)
	}
}

// nrm2Dispatch mirrors dotDispatch for the squared-norm functor family.
func nrm2Dispatch[T mv.Number, M mv.Real, I exec.Size](ex exec.Executor, r mv.Vector[M], X mv.Matrix[T], rows, numVecs int) {
	switch {
	case numVecs > maxUnroll:
		f := colNrm2Generic[T, M, I]{colNrm2[T, M, I]{numVecs: numVecs, r: r, x: X}}
		exec.ParallelReduce[I, []M](ex, I(rows), f)
	case numVecs == 1:
		f := vecNrm2[T, M, I]{r: r.Sub(0), x: X.Col(0)}
		exec.ParallelReduce[I, M](ex, I(rows), f)
	default:
		reduceNrm2Unrolled[T, M, I](ex, I(rows), numVecs, r, X)
	}
}

// Nrm2SquaredVec computes the squared 2-norm of the vector x, storing the
// result in the rank-0 view r.
func Nrm2SquaredVec[T mv.Number, M mv.Real](ex exec.Executor, r mv.Scalar[M], x mv.Vector[T]) {
	n := x.Len()
	if fitsNarrow(n, 1) {
		exec.ParallelReduce[int32, M](ex, int32(n), vecNrm2[T, M, int32]{r: r, x: x})
	} else {
		exec.ParallelReduce[int64, M](ex, int64(n), vecNrm2[T, M, int64]{r: r, x: x})
	}
}

// Nrm2 computes the 2-norm of every column of X: the square root of
// Nrm2Squared, taken per column after the reduction.
func Nrm2[T mv.Number, M mv.Real](ex exec.Executor, r mv.Vector[M], X mv.Matrix[T]) {
	Nrm2Squared(ex, r, X)
	for k := 0; k < r.Len(); k++ {
		*r.At(k) = mv.Sqrt(*r.At(k))
	}
}
