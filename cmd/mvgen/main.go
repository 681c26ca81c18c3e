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

// mvgen generates the unrolled column-batch functor specializations for
// the blas1 reduction kernels. For a reduction op it emits one functor
// type per column count in [2, max], each embedding the op's shared
// accumulator plumbing and overriding Accumulate with a fixed, fully
// unrolled per-row body, plus the dispatch switch mapping a runtime
// column count onto those types.
//
// Usage:
//
//	mvgen -op dot -max 16 -output .
//	mvgen -op nrm2 -max 16 -output .
//
// Invoked from mv/blas1 via go:generate.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("mvgen: ")

	op := flag.String("op", "", "operation to generate: dot or nrm2")
	maxCols := flag.Int("max", 16, "largest unrolled column count")
	output := flag.String("output", ".", "output directory")
	flag.Parse()

	spec, ok := ops[*op]
	if !ok {
		log.Fatalf("unknown -op %q (want dot or nrm2)", *op)
	}
	if *maxCols < 2 {
		log.Fatalf("-max must be at least 2, got %d", *maxCols)
	}

	src, err := generate(spec, *maxCols)
	if err != nil {
		log.Fatalf("generating %s: %v", *op, err)
	}

	path := filepath.Join(*output, fmt.Sprintf("zz_%s_unroll.go", *op))
	if err := os.WriteFile(path, src, 0o644); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("mvgen: wrote %s\n", path)
}
