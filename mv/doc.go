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

// Package mv provides the element model and dense array views used by the
// go-mvblas kernels.
//
// A multivector is a rectangular 2-D array treated as a set of column
// vectors processed together. The views in this package (Matrix, Vector,
// Scalar) are non-owning handles over caller-provided storage: subviews
// share the backing slice, and no view method copies elements.
//
// The element model supports real and complex scalars. DotTerm supplies the
// inner-product contribution (conjugated on the left for complex elements)
// and Norm the real magnitude, so kernel bodies are written once for all
// element types.
package mv
