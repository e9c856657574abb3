/*
Copyright © 2025 the fbp authors.
This file is part of fbp.

fbp is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

fbp is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with fbp.  If not, see <http://www.gnu.org/licenses/>.
*/

package fbp

import (
	"math"
	"testing"
)

// allFuels lists every burnable fuel type.
var allFuels = []FuelType{
	FuelC1, FuelC2, FuelC3, FuelC4, FuelC5, FuelC6, FuelC7,
	FuelD1, FuelM1, FuelM2, FuelM3, FuelM4,
	FuelS1, FuelS2, FuelS3, FuelO1A, FuelO1B,
}

// blendFuels are the mixedwood types whose spread curve is a blend of
// other curves rather than their own.
func isBlendOnly(f FuelType) bool { return f == FuelM1 || f == FuelM2 }

func different(a, b, tolerance float64) bool {
	if 2*math.Abs(a-b)/math.Abs(a+b) > tolerance || math.IsNaN(a) || math.IsNaN(b) {
		return true
	}
	return false
}

func absDifferent(a, b, tolerance float64) bool {
	return math.Abs(a-b) > tolerance
}

func TestFuelParamsPopulated(t *testing.T) {
	for _, f := range allFuels {
		p := f.Params()
		if p.Q <= 0 || p.BUI0 <= 0 {
			t.Errorf("%v: buildup parameters not populated: Q=%g BUI0=%g", f, p.Q, p.BUI0)
		}
		if !isBlendOnly(f) && (p.A <= 0 || p.B <= 0 || p.C <= 0) {
			t.Errorf("%v: curve parameters not populated: a=%g b=%g c=%g", f, p.A, p.B, p.C)
		}
	}
	if (FuelNone.Params() != Params{}) {
		t.Errorf("non-fuel should carry no parameters, got %+v", FuelNone.Params())
	}
}

func TestParseFuelType(t *testing.T) {
	cases := []struct {
		in   string
		want FuelType
	}{
		{"C2", FuelC2},
		{"c-2", FuelC2},
		{" m3 ", FuelM3},
		{"O1a", FuelO1A},
		{"o1B", FuelO1B},
		{"NF", FuelNone},
		{"WA", FuelNone},
	}
	for _, c := range cases {
		got, err := ParseFuelType(c.in)
		if err != nil {
			t.Errorf("ParseFuelType(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseFuelType(%q) = %v, want %v", c.in, got, c.want)
		}
	}
	if _, err := ParseFuelType("C9"); err == nil {
		t.Error("ParseFuelType(\"C9\") should fail")
	}
	for _, f := range allFuels { // round trip through the label
		got, err := ParseFuelType(f.String())
		if err != nil || got != f {
			t.Errorf("round trip of %v failed: got %v, err %v", f, got, err)
		}
	}
}
