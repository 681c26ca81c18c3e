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

package mv

// Number is the set of element types the kernels operate on.
// All four types support addition and multiplication; the complex types
// additionally get a conjugated inner-product contribution via DotTerm.
type Number interface {
	~float32 | ~float64 | ~complex64 | ~complex128
}

// Real is the set of magnitude types. Norms and the squared 2-norm of any
// Number element are Real valued; for real elements the magnitude type is
// the element type itself, for complex64 it is float32 and for complex128
// it is float64.
type Real interface {
	~float32 | ~float64
}
