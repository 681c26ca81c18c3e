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

import (
	"runtime"
	"sync"
)

// DefaultGrain is the minimum number of rows per chunk before Pool splits
// work across goroutines. Below 2*DefaultGrain the goroutine handoff costs
// more than the loop itself.
const DefaultGrain = 1024

// Pool is the multi-threaded CPU Executor: chunks fan out across
// goroutines and Launch blocks until all of them finish.
//
// The zero value is ready to use and picks runtime.NumCPU() workers and
// DefaultGrain rows per chunk. A Pool carries no state between calls and
// is safe for concurrent use.
type Pool struct {
	// Workers caps the number of concurrent chunks. 0 means
	// runtime.NumCPU().
	Workers int
	// Grain is the minimum number of rows per chunk. 0 means DefaultGrain.
	Grain int
}

// Name implements Executor.
func (p *Pool) Name() string { return "pool" }

// Split implements Executor. Small problems stay on one chunk; larger ones
// get at most one chunk per worker, never smaller than the grain.
func (p *Pool) Split(n int) int {
	workers := p.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	grain := p.Grain
	if grain <= 0 {
		grain = DefaultGrain
	}
	if workers < 2 || n < 2*grain {
		return 1
	}
	chunks := n / grain
	if chunks > workers {
		chunks = workers
	}
	return chunks
}

// Launch implements Executor.
func (p *Pool) Launch(chunks int, body func(chunk int)) {
	if chunks <= 1 {
		body(0)
		return
	}
	var wg sync.WaitGroup
	wg.Add(chunks)
	for c := 0; c < chunks; c++ {
		go func(c int) {
			defer wg.Done()
			body(c)
		}(c)
	}
	wg.Wait()
}
