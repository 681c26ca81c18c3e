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

import (
	"math"
	"math/cmplx"
	"reflect"
)

// This file defines the inner-product space operations the kernels are
// written against: DotTerm (per-element inner-product contribution), Norm
// (real magnitude) and Sqrt. Keeping these as free generic functions lets a
// single kernel body serve every element type; the type switches compile to
// straight-line code per instantiation. Named element types (the ~ in the
// Number constraint) miss the exact-type cases and resolve their kind
// through reflect instead.

// DotTerm returns the inner-product contribution of the element pair (x, y):
// x*y for real elements, conj(x)*y for complex elements.
func DotTerm[T Number](x, y T) T {
	switch xv := any(x).(type) {
	case complex64:
		p := complex64(cmplx.Conj(complex128(xv))) * any(y).(complex64)
		return any(p).(T)
	case complex128:
		p := cmplx.Conj(xv) * any(y).(complex128)
		return any(p).(T)
	case float32, float64:
		return x * y
	default:
		xr := reflect.ValueOf(x)
		switch xr.Kind() {
		case reflect.Complex64, reflect.Complex128:
			p := cmplx.Conj(xr.Complex()) * reflect.ValueOf(y).Complex()
			return reflect.ValueOf(p).Convert(xr.Type()).Interface().(T)
		}
		return x * y
	}
}

// Conj returns the complex conjugate of x. Real elements are returned
// unchanged.
func Conj[T Number](x T) T {
	switch xv := any(x).(type) {
	case complex64:
		return any(complex64(cmplx.Conj(complex128(xv)))).(T)
	case complex128:
		return any(cmplx.Conj(xv)).(T)
	case float32, float64:
		return x
	default:
		xr := reflect.ValueOf(x)
		switch xr.Kind() {
		case reflect.Complex64, reflect.Complex128:
			c := cmplx.Conj(xr.Complex())
			return reflect.ValueOf(c).Convert(xr.Type()).Interface().(T)
		}
		return x
	}
}

// Norm returns the magnitude of x as the Real type M: |x| for real
// elements, the complex modulus for complex elements.
//
// M must be the magnitude type matching T (float32 for float32/complex64,
// float64 for float64/complex128).
func Norm[T Number, M Real](x T) M {
	switch xv := any(x).(type) {
	case float32:
		return M(math.Abs(float64(xv)))
	case float64:
		return M(math.Abs(xv))
	case complex64:
		return M(cmplx.Abs(complex128(xv)))
	case complex128:
		return M(cmplx.Abs(xv))
	default:
		xr := reflect.ValueOf(x)
		switch xr.Kind() {
		case reflect.Complex64, reflect.Complex128:
			return M(cmplx.Abs(xr.Complex()))
		}
		return M(math.Abs(xr.Float()))
	}
}

// Sqrt returns the square root of the magnitude m.
func Sqrt[M Real](m M) M {
	return M(math.Sqrt(float64(m)))
}
