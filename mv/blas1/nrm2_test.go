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
	"math"
	"math/rand"
	"testing"

	"github.com/ajroetker/go-mvblas/mv"
	"github.com/ajroetker/go-mvblas/mv/exec"
)

func TestNrm2SquaredConcrete(t *testing.T) {
	// X = [[1,2],[3,4],[5,6]] -> nrm2sq = [35, 56], same as dot(X, X).
	X := mv.NewMatrixColMajor([]float64{1, 3, 5, 2, 4, 6}, 3, 2)
	for _, ex := range testExecutors() {
		out := []float64{-1, -1}
		Nrm2Squared(ex, mv.NewVector(out, 2), X)
		if out[0] != 35 || out[1] != 56 {
			t.Errorf("%s: Nrm2Squared = %v, want [35 56]", ex.Name(), out)
		}
	}
}

// TestNrm2SquaredEqualsSelfDot covers every specialization path and pins
// the norm to the dot-product oracle: nrm2sq(X)[k] == dot(X,X)[k] for real
// elements.
func TestNrm2SquaredEqualsSelfDot(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	const rows = 113
	for _, numVecs := range []int{1, 2, 8, 15, 16, 17, 100} {
		X, _ := randomMatrix(rng, rows, numVecs)

		norms := make([]float64, numVecs)
		dots := make([]float64, numVecs)
		Nrm2Squared(exec.Sequential{}, mv.NewVector(norms, numVecs), X)
		Dot(exec.Sequential{}, mv.NewVector(dots, numVecs), X, X)

		for k := 0; k < numVecs; k++ {
			// |x|^2 and x*x may round differently per element; allow a
			// tiny relative slack.
			if diff := math.Abs(norms[k] - dots[k]); diff > 1e-12*math.Abs(dots[k]) {
				t.Errorf("numVecs=%d: nrm2sq[%d] = %v, dot = %v", numVecs, k, norms[k], dots[k])
			}
			if norms[k] < 0 {
				t.Errorf("numVecs=%d: nrm2sq[%d] = %v, negative", numVecs, k, norms[k])
			}
		}
	}
}

func TestNrm2SquaredIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	X, _ := randomMatrix(rng, 300, 4)

	first := make([]float64, 4)
	second := make([]float64, 4)
	Nrm2Squared(exec.Sequential{}, mv.NewVector(first, 4), X)
	Nrm2Squared(exec.Sequential{}, mv.NewVector(second, 4), X)
	for k := range first {
		if first[k] != second[k] {
			t.Errorf("column %d: first %v, second %v", k, first[k], second[k])
		}
	}
}

func TestNrm2IndexWidthIrrelevant(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	for _, numVecs := range []int{1, 3, 16, 25} {
		X, _ := randomMatrix(rng, 89, numVecs)

		narrow := make([]float64, numVecs)
		wide := make([]float64, numVecs)
		nrm2Dispatch[float64, float64, int32](exec.Sequential{}, mv.NewVector(narrow, numVecs), X, 89, numVecs)
		nrm2Dispatch[float64, float64, int64](exec.Sequential{}, mv.NewVector(wide, numVecs), X, 89, numVecs)
		for k := range narrow {
			if narrow[k] != wide[k] {
				t.Errorf("numVecs=%d col %d: narrow %v, wide %v", numVecs, k, narrow[k], wide[k])
			}
		}
	}
}

func TestNrm2SquaredZeroRows(t *testing.T) {
	for _, numVecs := range []int{1, 2, 16, 17} {
		X := mv.NewMatrixColMajor[float64](nil, 0, numVecs)
		out := make([]float64, numVecs)
		for k := range out {
			out[k] = math.NaN()
		}
		Nrm2Squared(exec.Sequential{}, mv.NewVector(out, numVecs), X)
		for k, v := range out {
			if v != 0 {
				t.Errorf("numVecs=%d: nrm2sq[%d] = %v, want 0", numVecs, k, v)
			}
		}
	}
}

func TestNrm2SquaredComplex(t *testing.T) {
	data := []complex64{complex(3, 4), complex(0, 2), complex(1, 1), complex(-2, 0)}
	X := mv.NewMatrixColMajor(data, 2, 2)

	out := make([]float32, 2)
	Nrm2Squared(exec.Sequential{}, mv.NewVector(out, 2), X)

	want := []float32{25 + 4, 2 + 4}
	for k := range out {
		if math.Abs(float64(out[k]-want[k])) > 1e-5 {
			t.Errorf("nrm2sq[%d] = %v, want %v", k, out[k], want[k])
		}
	}
}

func TestNrm2SquaredNamedElementType(t *testing.T) {
	// A named float element must still yield |x|^2, not the zero magnitude.
	X := mv.NewMatrixColMajor([]volts{3, 4}, 2, 1)
	out := []volts{-1}
	Nrm2Squared(exec.Sequential{}, mv.NewVector(out, 1), X)
	if out[0] != 25 {
		t.Errorf("Nrm2Squared = %v, want 25", out[0])
	}
}

func TestNrm2TakesSquareRoot(t *testing.T) {
	X := mv.NewMatrixColMajor([]float64{3, 4, 5, 12}, 2, 2)
	out := make([]float64, 2)
	Nrm2(exec.Sequential{}, mv.NewVector(out, 2), X)
	if out[0] != 5 || out[1] != 13 {
		t.Errorf("Nrm2 = %v, want [5 13]", out)
	}
}

func TestNrm2SquaredVec(t *testing.T) {
	x := mv.NewVector([]float64{1, 2, 2}, 3)
	var r float64 = -1
	Nrm2SquaredVec(exec.Sequential{}, mv.NewScalar(&r), x)
	if r != 9 {
		t.Errorf("Nrm2SquaredVec = %v, want 9", r)
	}
}

func TestNrm2Panics(t *testing.T) {
	X := mv.NewMatrixColMajor(make([]float64, 6), 3, 2)
	tests := []struct {
		name string
		fn   func()
	}{
		{"output length", func() { Nrm2Squared(exec.Sequential{}, mv.NewVector(make([]float64, 1), 1), X) }},
		{"zero columns", func() {
			Z := mv.NewMatrixColMajor[float64](nil, 3, 0)
			Nrm2Squared(exec.Sequential{}, mv.NewVector[float64](nil, 0), Z)
		}},
		{"unrolled table miss", func() {
			reduceNrm2Unrolled[float64, float64, int32](exec.Sequential{}, 3, 20, mv.NewVector(make([]float64, 2), 2), X)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.fn()
		})
	}
}
