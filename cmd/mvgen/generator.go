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

package main

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"
)

// opSpec describes one reduction operation's generated family: the shared
// base functor it embeds, the generic type parameters, and the per-column
// accumulate statement(s).
type opSpec struct {
	name    string // operation name, e.g. "dot"
	base    string // base functor type in package blas1, e.g. "colDot"
	tparams string // type parameter list of the functor family
	targs   string // matching type argument list
	accType string // accumulator type, e.g. "[]T"
	// dispatchParams is the value parameter list of the dispatch helper,
	// after the executor, row count and column count.
	dispatchParams string
	// baseLit is the composite literal constructing the base functor from
	// the dispatch helper's parameters.
	baseLit string
	// accum appends the accumulate statement(s) for column k.
	accum func(w *strings.Builder, k int)
}

var ops = map[string]opSpec{
	"dot": {
		name:           "dot",
		base:           "colDot",
		tparams:        "T mv.Number, I exec.Size",
		targs:          "T, I",
		accType:        "[]T",
		dispatchParams: "r mv.Vector[T], x, y mv.Matrix[T]",
		baseLit:        "colDot[T, I]{numVecs: numVecs, r: r, x: x, y: y}",
		accum: func(w *strings.Builder, k int) {
			fmt.Fprintf(w, "\tsum[%d] += mv.DotTerm(*f.x.At(row, %d), *f.y.At(row, %d))\n", k, k, k)
		},
	},
	"nrm2": {
		name:           "nrm2",
		base:           "colNrm2",
		tparams:        "T mv.Number, M mv.Real, I exec.Size",
		targs:          "T, M, I",
		accType:        "[]M",
		dispatchParams: "r mv.Vector[M], x mv.Matrix[T]",
		baseLit:        "colNrm2[T, M, I]{numVecs: numVecs, r: r, x: x}",
		accum: func(w *strings.Builder, k int) {
			fmt.Fprintf(w, "\tt%d := mv.Norm[T, M](*f.x.At(row, %d))\n", k, k)
			fmt.Fprintf(w, "\tsum[%d] += t%d * t%d\n", k, k, k)
		},
	},
}

// generate renders the unrolled functor family and its dispatch switch for
// spec, with column counts 2..maxCols, and returns gofmt-formatted source.
func generate(spec opSpec, maxCols int) ([]byte, error) {
	title := cases.Title(language.English).String(spec.name)

	var w strings.Builder
	fmt.Fprintf(&w, "// Code generated by mvgen -op %s -max %d -output .; DO NOT EDIT.\n", spec.name, maxCols)
	w.WriteString("\npackage blas1\n\n")
	w.WriteString("import (\n\t\"fmt\"\n\n\t\"github.com/ajroetker/go-mvblas/mv\"\n\t\"github.com/ajroetker/go-mvblas/mv/exec\"\n)\n")

	for n := 2; n <= maxCols; n++ {
		fmt.Fprintf(&w, "\n// %sUnroll%d is the unrolled column-batch %s functor for exactly %d columns.\n",
			spec.base, n, spec.name, n)
		fmt.Fprintf(&w, "type %sUnroll%d[%s] struct {\n\t%s[%s]\n}\n\n", spec.base, n, spec.tparams, spec.base, spec.targs)
		fmt.Fprintf(&w, "func (f %sUnroll%d[%s]) Accumulate(i I, acc *%s) {\n", spec.base, n, spec.targs, spec.accType)
		w.WriteString("\trow := int(i)\n\tsum := *acc\n")
		for k := 0; k < n; k++ {
			spec.accum(&w, k)
		}
		w.WriteString("}\n")
	}

	fmt.Fprintf(&w, "\n// reduce%sUnrolled dispatches numVecs in [2, %d] to the matching unrolled\n", title, maxCols)
	fmt.Fprintf(&w, "// %s functor. An unmatched count is a dispatch-table defect and panics.\n", spec.name)
	fmt.Fprintf(&w, "func reduce%sUnrolled[%s](ex exec.Executor, rows I, numVecs int, %s) {\n",
		title, spec.tparams, spec.dispatchParams)
	fmt.Fprintf(&w, "\tbase := %s\n", spec.baseLit)
	w.WriteString("\tswitch numVecs {\n")
	for n := maxCols; n >= 2; n-- {
		fmt.Fprintf(&w, "\tcase %d:\n\t\texec.ParallelReduce[I, %s](ex, rows, %sUnroll%d[%s]{base})\n",
			n, spec.accType, spec.base, n, spec.targs)
	}
	w.WriteString("\tdefault:\n")
	fmt.Fprintf(&w, "\t\tpanic(fmt.Sprintf(\"blas1: no unrolled %s kernel for %%d columns\", numVecs))\n", spec.name)
	w.WriteString("\t}\n}\n")

	return imports.Process(fmt.Sprintf("zz_%s_unroll.go", spec.name), []byte(w.String()), nil)
}
