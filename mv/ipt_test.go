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
	"testing"
)

func TestDotTermReal(t *testing.T) {
	if got := DotTerm(3.0, 4.0); got != 12.0 {
		t.Errorf("DotTerm(3, 4) = %v, want 12", got)
	}
	if got := DotTerm(float32(-2), float32(5)); got != -10 {
		t.Errorf("DotTerm(-2, 5) = %v, want -10", got)
	}
}

func TestDotTermComplexConjugatesLeft(t *testing.T) {
	x := complex(1.0, 2.0)
	y := complex(3.0, -1.0)
	// conj(1+2i) * (3-1i) = (1-2i)(3-1i) = 1 - 7i
	want := complex(1.0, -7.0)
	if got := DotTerm(x, y); got != want {
		t.Errorf("DotTerm(%v, %v) = %v, want %v", x, y, got, want)
	}

	// Self inner product must be real and non-negative: conj(x)*x = |x|^2.
	self := DotTerm(x, x)
	if imag(self) != 0 || real(self) != 5 {
		t.Errorf("DotTerm(x, x) = %v, want (5+0i)", self)
	}
}

func TestDotTermComplex64(t *testing.T) {
	x := complex64(complex(0, 1))
	y := complex64(complex(0, 1))
	if got := DotTerm(x, y); got != 1 {
		t.Errorf("DotTerm(i, i) = %v, want 1", got)
	}
}

// Named element types are admitted by the ~ constraints but bypass the
// exact-type switch cases; the traits must still resolve their kind.
type (
	volts float64
	gain  float32
	phase complex128
	spin  complex64
)

func TestDotTermNamedReal(t *testing.T) {
	if got := DotTerm(volts(3), volts(4)); got != 12 {
		t.Errorf("DotTerm(volts(3), volts(4)) = %v, want 12", got)
	}
	if got := DotTerm(gain(-2), gain(5)); got != -10 {
		t.Errorf("DotTerm(gain(-2), gain(5)) = %v, want -10", got)
	}
}

func TestDotTermNamedComplexConjugatesLeft(t *testing.T) {
	x := phase(complex(1, 2))
	y := phase(complex(3, -1))
	if got, want := DotTerm(x, y), phase(complex(1, -7)); got != want {
		t.Errorf("DotTerm(%v, %v) = %v, want %v", x, y, got, want)
	}
	// conj(i)*i = 1, not i*i = -1.
	if got := DotTerm(spin(complex(0, 1)), spin(complex(0, 1))); got != 1 {
		t.Errorf("DotTerm(spin(i), spin(i)) = %v, want 1", got)
	}
}

func TestNormNamedTypes(t *testing.T) {
	if got := Norm[volts, volts](-3); got != 3 {
		t.Errorf("Norm(volts(-3)) = %v, want 3", got)
	}
	if got := Norm[gain, gain](-0.5); got != 0.5 {
		t.Errorf("Norm(gain(-0.5)) = %v, want 0.5", got)
	}
	if got := Norm[phase, float64](phase(complex(3, 4))); got != 5 {
		t.Errorf("Norm(phase(3+4i)) = %v, want 5", got)
	}
	if got := Norm[spin, float32](spin(complex(0, 2))); got != 2 {
		t.Errorf("Norm(spin(2i)) = %v, want 2", got)
	}
}

func TestConjNamedComplex(t *testing.T) {
	if got, want := Conj(phase(complex(1, 2))), phase(complex(1, -2)); got != want {
		t.Errorf("Conj(phase(1+2i)) = %v, want %v", got, want)
	}
	if got, want := Conj(spin(complex(0, 1))), spin(complex(0, -1)); got != want {
		t.Errorf("Conj(spin(i)) = %v, want %v", got, want)
	}
	if got := Conj(volts(2.5)); got != 2.5 {
		t.Errorf("Conj(volts(2.5)) = %v, want 2.5", got)
	}
}

func TestConj(t *testing.T) {
	if got := Conj(2.5); got != 2.5 {
		t.Errorf("Conj(2.5) = %v", got)
	}
	if got := Conj(complex(1.0, 2.0)); got != complex(1.0, -2.0) {
		t.Errorf("Conj(1+2i) = %v, want 1-2i", got)
	}
}

func TestNorm(t *testing.T) {
	if got := Norm[float64, float64](-3); got != 3 {
		t.Errorf("Norm(-3) = %v, want 3", got)
	}
	if got := Norm[float32, float32](-0.5); got != 0.5 {
		t.Errorf("Norm(-0.5) = %v, want 0.5", got)
	}
	if got := Norm[complex128, float64](complex(3, 4)); got != 5 {
		t.Errorf("Norm(3+4i) = %v, want 5", got)
	}
	if got := Norm[complex64, float32](complex(0, 2)); got != 2 {
		t.Errorf("Norm(2i) = %v, want 2", got)
	}
}

func TestSqrt(t *testing.T) {
	if got := Sqrt(25.0); got != 5 {
		t.Errorf("Sqrt(25) = %v, want 5", got)
	}
	if got := Sqrt(float32(2)); math.Abs(float64(got)-math.Sqrt2) > 1e-6 {
		t.Errorf("Sqrt(2) = %v", got)
	}
}
