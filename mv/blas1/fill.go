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

import (
	"github.com/ajroetker/go-mvblas/mv"
	"github.com/ajroetker/go-mvblas/mv/exec"
)

// fill is not a reduction: each row is written independently, so the
// functors satisfy exec.ForEacher and carry no accumulator.

type colFill[T mv.Number, I exec.Size] struct {
	numCols int
	val     T
	x       mv.Matrix[T]
}

func (f colFill[T, I]) Visit(i I) {
	row := int(i)
	for j := 0; j < f.numCols; j++ {
		*f.x.At(row, j) = f.val
	}
}

type vecFill[T mv.Number, I exec.Size] struct {
	val T
	x   mv.Vector[T]
}

func (f vecFill[T, I]) Visit(i I) {
	*f.x.At(int(i)) = f.val
}

// Fill sets every element of X to val. The narrow/wide index choice uses
// the same rows and rows*cols bound as the reductions. Zero rows or zero
// columns is a no-op.
func Fill[T mv.Number](ex exec.Executor, X mv.Matrix[T], val T) {
	rows := X.Dim(0)
	numCols := X.Dim(1)
	if numCols == 0 {
		return
	}
	if fitsNarrow(rows, numCols) {
		exec.ParallelFor[int32](ex, int32(rows), colFill[T, int32]{numCols: numCols, val: val, x: X})
	} else {
		exec.ParallelFor[int64](ex, int64(rows), colFill[T, int64]{numCols: numCols, val: val, x: X})
	}
}

// FillVec sets every element of x to val.
func FillVec[T mv.Number](ex exec.Executor, x mv.Vector[T], val T) {
	n := x.Len()
	if fitsNarrow(n, 1) {
		exec.ParallelFor[int32](ex, int32(n), vecFill[T, int32]{val: val, x: x})
	} else {
		exec.ParallelFor[int64](ex, int64(n), vecFill[T, int64]{val: val, x: x})
	}
}
