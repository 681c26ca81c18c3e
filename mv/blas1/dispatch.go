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

import "math"

// maxUnroll is the largest column count served by a generated unrolled
// functor. Counts in 2..maxUnroll dispatch through the switches in the
// zz_*_unroll.go files; larger counts use the runtime-loop functors.
// Retunable, but both families must stay numerically equivalent.
const maxUnroll = 16

// fitsNarrow reports whether rows and rows*cols both stay below the int32
// limit, so a narrow loop index cannot overflow anywhere in the kernel.
// The first condition bounds rows before the int64 product in the second,
// so the check itself cannot overflow.
func fitsNarrow(rows, cols int) bool {
	if rows < 0 || cols < 0 {
		return false
	}
	if int64(rows) >= math.MaxInt32 {
		return false
	}
	return int64(rows)*int64(cols) < math.MaxInt32
}
