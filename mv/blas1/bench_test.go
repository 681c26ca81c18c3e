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
	"fmt"
	"math/rand"
	"testing"

	"github.com/ajroetker/go-mvblas/mv"
	"github.com/ajroetker/go-mvblas/mv/exec"
)

// The numVecs values straddle the unroll boundary so the generated and
// generic paths can be compared from the same benchmark run.
var benchShapes = []struct {
	rows, numVecs int
}{
	{1 << 12, 1},
	{1 << 12, 4},
	{1 << 12, 16},
	{1 << 12, 17},
	{1 << 18, 4},
	{1 << 18, 16},
	{1 << 18, 17},
}

func benchExecutors() []exec.Executor {
	return []exec.Executor{exec.Sequential{}, &exec.Pool{}}
}

func BenchmarkDot(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	for _, shape := range benchShapes {
		X, _ := randomMatrix(rng, shape.rows, shape.numVecs)
		Y, _ := randomMatrix(rng, shape.rows, shape.numVecs)
		r := mv.NewVector(make([]float64, shape.numVecs), shape.numVecs)
		for _, ex := range benchExecutors() {
			name := fmt.Sprintf("%s/rows=%d/numVecs=%d", ex.Name(), shape.rows, shape.numVecs)
			b.Run(name, func(b *testing.B) {
				b.SetBytes(int64(2 * shape.rows * shape.numVecs * 8))
				for i := 0; i < b.N; i++ {
					Dot(ex, r, X, Y)
				}
			})
		}
	}
}

func BenchmarkNrm2Squared(b *testing.B) {
	rng := rand.New(rand.NewSource(43))
	for _, shape := range benchShapes {
		X, _ := randomMatrix(rng, shape.rows, shape.numVecs)
		r := mv.NewVector(make([]float64, shape.numVecs), shape.numVecs)
		for _, ex := range benchExecutors() {
			name := fmt.Sprintf("%s/rows=%d/numVecs=%d", ex.Name(), shape.rows, shape.numVecs)
			b.Run(name, func(b *testing.B) {
				b.SetBytes(int64(shape.rows * shape.numVecs * 8))
				for i := 0; i < b.N; i++ {
					Nrm2Squared(ex, r, X)
				}
			})
		}
	}
}

func BenchmarkFill(b *testing.B) {
	for _, shape := range benchShapes {
		data := make([]float64, shape.rows*shape.numVecs)
		X := mv.NewMatrixColMajor(data, shape.rows, shape.numVecs)
		for _, ex := range benchExecutors() {
			name := fmt.Sprintf("%s/rows=%d/numVecs=%d", ex.Name(), shape.rows, shape.numVecs)
			b.Run(name, func(b *testing.B) {
				b.SetBytes(int64(shape.rows * shape.numVecs * 8))
				for i := 0; i < b.N; i++ {
					Fill(ex, X, 1)
				}
			})
		}
	}
}
