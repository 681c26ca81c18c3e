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

// Package exec provides the parallel execution substrate for the go-mvblas
// kernels: the functor protocols (Reducer, ForEacher) and the drivers
// (ParallelReduce, ParallelFor) that run them over an index range on an
// interchangeable Executor backend.
//
// Kernels never create goroutines themselves; they supply functors and the
// chosen Executor decides how the index range is partitioned and whether
// chunks run concurrently. Both drivers are synchronous: all chunk work has
// completed when they return.
package exec

// Size constrains the loop index type. Kernels select int32 (narrow) for
// small problems and int64 (wide) otherwise; the same functor code is
// instantiated for both.
type Size interface {
	~int32 | ~int64
}

// Reducer is the contract a functor must satisfy to be run as a parallel
// reduction. I is the loop index type and A the accumulator type.
//
// Init sets the accumulator to the additive identity. Accumulate folds the
// contribution of row i into acc; calls for distinct rows may run
// concurrently on independent partial accumulators. Join merges two partial
// accumulators by element-wise addition and must be associative and
// commutative, since the driver may merge in any order. Final runs exactly
// once, after every Accumulate has been merged, and writes the result to
// the functor's output view.
type Reducer[I Size, A any] interface {
	Init(acc *A)
	Accumulate(i I, acc *A)
	Join(acc, other *A)
	Final(acc *A)
}

// ForEacher is the contract for non-reducing kernels (fill and friends).
// Visit calls for distinct rows may run concurrently.
type ForEacher[I Size] interface {
	Visit(i I)
}

// Executor schedules chunked work. Split reports how many chunks a problem
// of n rows should be divided into; Launch runs body(0..chunks-1), possibly
// concurrently, and returns only after every chunk has completed.
//
// Implementations must tolerate chunks == 1 (run inline) and must not
// retain body after Launch returns.
type Executor interface {
	Name() string
	Split(n int) int
	Launch(chunks int, body func(chunk int))
}

// Range returns the half-open row span [lo, hi) of chunk c when n rows are
// divided into chunks near-equal parts. The spans of all chunks partition
// [0, n) exactly, with earlier chunks taking the remainder.
func Range(c, chunks, n int) (lo, hi int) {
	base := n / chunks
	rem := n % chunks
	lo = c*base + min(c, rem)
	hi = lo + base
	if c < rem {
		hi++
	}
	return lo, hi
}

// ParallelReduce runs f as a reduction over the index range [0, n) on ex.
// Each chunk accumulates into a private partial; partials are joined after
// all chunks complete, then Final runs once. n <= 0 is valid and produces
// the additive identity without invoking Accumulate.
func ParallelReduce[I Size, A any](ex Executor, n I, f Reducer[I, A]) {
	if n <= 0 {
		var acc A
		f.Init(&acc)
		f.Final(&acc)
		return
	}
	chunks := clampChunks(ex.Split(int(n)), int(n))
	partials := make([]A, chunks)
	ex.Launch(chunks, func(c int) {
		acc := &partials[c]
		f.Init(acc)
		lo, hi := Range(c, chunks, int(n))
		for i := lo; i < hi; i++ {
			f.Accumulate(I(i), acc)
		}
	})
	acc := &partials[0]
	for c := 1; c < chunks; c++ {
		f.Join(acc, &partials[c])
	}
	f.Final(acc)
}

// ParallelFor runs f over the index range [0, n) on ex. n <= 0 is a no-op.
func ParallelFor[I Size](ex Executor, n I, f ForEacher[I]) {
	if n <= 0 {
		return
	}
	chunks := clampChunks(ex.Split(int(n)), int(n))
	ex.Launch(chunks, func(c int) {
		lo, hi := Range(c, chunks, int(n))
		for i := lo; i < hi; i++ {
			f.Visit(I(i))
		}
	})
}

func clampChunks(chunks, n int) int {
	if chunks < 1 {
		return 1
	}
	if chunks > n {
		return n
	}
	return chunks
}
