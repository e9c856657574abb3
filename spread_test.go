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

// testInput returns an observation that exercises every fuel-type family:
// the blend percentages and curing only matter for the types that read them.
func testInput(f FuelType, isi, bui float64) SpreadInput {
	return SpreadInput{
		Fuel: f, ISI: isi, BUI: bui,
		FMC: 97, SFC: 2, PC: 50, PDF: 35, CC: 80,
	}
}

func TestRateOfSpreadZeroISI(t *testing.T) {
	// At ISI = 0 the curve term vanishes and the floor applies.
	for _, f := range allFuels {
		r := RateOfSpread(testInput(f, 0, 60))
		if r.ROS != minSpreadRate {
			t.Errorf("%v: ROS at ISI=0 = %g, want the %g floor", f, r.ROS, minSpreadRate)
		}
	}
}

func TestRateOfSpreadMonotonicInISI(t *testing.T) {
	for _, f := range allFuels {
		prev := 0.0
		for isi := 0.0; isi <= 40; isi += 0.5 {
			ros := RateOfSpread(testInput(f, isi, 60)).ROS
			if ros < prev {
				t.Errorf("%v: ROS decreased from %g to %g at ISI=%g", f, prev, ros, isi)
				break
			}
			prev = ros
		}
	}
}

func TestRateOfSpreadC2(t *testing.T) {
	const tolerance = 1e-6
	// Closed-form composition for a simple conifer type.
	rsi := 110 * math.Pow(1-math.Exp(-0.0282*10), 1.5)
	want := rsi * math.Exp(50*math.Log(0.7)*(1.0/60-1.0/64))
	got := RateOfSpread(testInput(FuelC2, 10, 60)).ROS
	if different(got, want, tolerance) {
		t.Errorf("ROS(C2, ISI=10, BUI=60) = %g, want %g", got, want)
	}
}

func TestMixedwoodBlend(t *testing.T) {
	const tolerance = 1e-9
	in := testInput(FuelM1, 10, 60)

	// At PC=50 the raw M1 curve is exactly the average of the raw C2 and
	// D1 curves; the blended rate is then damped once, by M1's own
	// buildup response.
	rawC2 := spreadIndex(FuelC2, in, false)
	rawD1 := spreadIndex(FuelD1, in, false)
	rawM1 := spreadIndex(FuelM1, in, false)
	if different(rawM1, 0.5*rawC2+0.5*rawD1, tolerance) {
		t.Errorf("raw M1 = %g, want the C2/D1 average %g", rawM1, 0.5*rawC2+0.5*rawD1)
	}
	want := rawM1 * BuildupEffect(FuelM1, 60)
	if got := RateOfSpread(in).ROS; different(got, want, tolerance) {
		t.Errorf("ROS(M1) = %g, want %g (buildup damping applied once)", got, want)
	}

	// The green mixedwood damps the deciduous contribution to a fifth.
	in.Fuel = FuelM2
	rawM2 := spreadIndex(FuelM2, in, false)
	if different(rawM2, 0.5*rawC2+0.2*0.5*rawD1, tolerance) {
		t.Errorf("raw M2 = %g, want %g", rawM2, 0.5*rawC2+0.2*0.5*rawD1)
	}

	// Dead-fir blends use their own curve against D1.
	in.Fuel = FuelM3
	rawM3 := spreadIndex(FuelM3, in, false)
	own := baseCurve(FuelM3.Params(), in.ISI)
	if different(rawM3, 0.35*own+0.65*rawD1, tolerance) {
		t.Errorf("raw M3 = %g, want %g", rawM3, 0.35*own+0.65*rawD1)
	}
}

func TestGrassCuring(t *testing.T) {
	const tolerance = 1e-9
	// Below the 58.8% breakpoint the exponential branch applies.
	cf := CuringFactor(40)
	want := 0.005 * (math.Exp(0.061*40) - 1)
	if different(cf, want, tolerance) {
		t.Errorf("CuringFactor(40) = %g, want %g", cf, want)
	}
	// Above it the linear branch applies, continuously.
	if absDifferent(CuringFactor(58.8), 0.176, 1e-9) {
		t.Errorf("CuringFactor(58.8) = %g, want 0.176", CuringFactor(58.8))
	}

	in := testInput(FuelO1A, 10, 60)
	in.CC = 40
	wantROS := 190 * math.Pow(1-math.Exp(-0.0310*10), 1.4) * cf
	if got := RateOfSpread(in).ROS; different(got, wantROS, tolerance) {
		t.Errorf("ROS(O1a, CC=40, ISI=10) = %g, want %g", got, wantROS)
	}
}

func TestRateOfSpreadNonFuel(t *testing.T) {
	if r := RateOfSpread(testInput(FuelNone, 10, 60)); r != (SpreadResult{}) {
		t.Errorf("non-fuel spread result should be zero, got %+v", r)
	}
}
