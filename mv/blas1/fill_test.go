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
	"testing"

	"github.com/ajroetker/go-mvblas/mv"
	"github.com/ajroetker/go-mvblas/mv/exec"
)

func TestFillWritesEveryElement(t *testing.T) {
	for _, ex := range testExecutors() {
		for _, numVecs := range []int{1, 2, 7, 33} {
			const rows = 129
			data := make([]float64, rows*numVecs)
			X := mv.NewMatrixColMajor(data, rows, numVecs)

			Fill(ex, X, 9)
			for i, v := range data {
				if v != 9 {
					t.Fatalf("%s numVecs=%d: data[%d] = %v, want 9", ex.Name(), numVecs, i, v)
				}
			}
		}
	}
}

func TestFillConcrete(t *testing.T) {
	// fill([[1,2],[3,4],[5,6]], 9) -> [[9,9],[9,9],[9,9]]
	data := []float64{1, 3, 5, 2, 4, 6}
	X := mv.NewMatrixColMajor(data, 3, 2)
	Fill(exec.Sequential{}, X, 9)
	for i, v := range data {
		if v != 9 {
			t.Errorf("data[%d] = %v, want 9", i, v)
		}
	}
}

func TestFillRowMajor(t *testing.T) {
	data := make([]float64, 12)
	X := mv.NewMatrixRowMajor(data, 4, 3)
	Fill(exec.Sequential{}, X, -2.5)
	for i, v := range data {
		if v != -2.5 {
			t.Errorf("data[%d] = %v, want -2.5", i, v)
		}
	}
}

func TestFillComplex(t *testing.T) {
	data := make([]complex128, 6)
	X := mv.NewMatrixColMajor(data, 3, 2)
	Fill(exec.Sequential{}, X, complex(1, -1))
	for i, v := range data {
		if v != complex(1, -1) {
			t.Errorf("data[%d] = %v, want (1-1i)", i, v)
		}
	}
}

func TestFillZeroRowsAndCols(t *testing.T) {
	// Neither shape may fault or write anything.
	Fill(exec.Sequential{}, mv.NewMatrixColMajor[float64](nil, 0, 5), 1)
	Fill(exec.Sequential{}, mv.NewMatrixColMajor[float64](nil, 3, 0), 1)
}

func TestFillVec(t *testing.T) {
	for _, ex := range testExecutors() {
		data := make([]float64, 100)
		FillVec(ex, mv.NewVector(data, 100), 3.25)
		for i, v := range data {
			if v != 3.25 {
				t.Fatalf("%s: data[%d] = %v, want 3.25", ex.Name(), i, v)
			}
		}
	}
}

func TestFillVecZeroLen(t *testing.T) {
	FillVec(exec.Sequential{}, mv.NewVector[float64](nil, 0), 1)
}
