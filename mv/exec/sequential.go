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

package exec

// Sequential is the single-threaded Executor: one chunk, run inline on the
// calling goroutine. It is the reference backend the parallel backends are
// tested against.
type Sequential struct{}

// Name implements Executor.
func (Sequential) Name() string { return "sequential" }

// Split implements Executor. A sequential run is always a single chunk.
func (Sequential) Split(n int) int { return 1 }

// Launch implements Executor, running every chunk inline in order.
func (Sequential) Launch(chunks int, body func(chunk int)) {
	for c := 0; c < chunks; c++ {
		body(c)
	}
}
