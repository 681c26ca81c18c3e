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

// Package blas1 provides dense column-oriented level-1 kernels over
// multivectors: inner product (Dot), squared Euclidean norm (Nrm2Squared)
// and constant fill (Fill), plus their single-vector and explicit-column
// forms.
//
// Every operation is written once as a functor satisfying the exec package
// protocols and runs unchanged on any exec.Executor. Per call, the dispatch
// layer picks
//
//   - a narrow (int32) or wide (int64) loop index, depending on whether
//     rows and rows*cols fit below the int32 limit, and
//   - for column-batch reductions, a generated unrolled functor when the
//     column count is between 2 and 16, the runtime-loop functor above 16,
//     or the cheaper single-vector functor over column-0 subviews when the
//     column count is 1.
//
// All paths are numerically identical up to floating-point associativity of
// the partial-sum merge order chosen by the executor.
//
// Input views are never written; output views are write-only. Callers must
// not alias an input and the output of one call, and must not mutate an
// input concurrently with the call. Shape mismatches and a column count of
// zero are programming errors and panic.
package blas1
