/*
Copyright © 2026 the fbp authors.
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
	"testing"

	"github.com/wildfiremodel/fbp/fwi"
)

func TestLengthToBreadth(t *testing.T) {
	// A windless fire is circular.
	if lb := LengthToBreadth(FuelC2, 0); lb != 1 {
		t.Errorf("LB(C2, calm) = %g, want 1", lb)
	}
	if lb := LengthToBreadth(FuelO1A, 0.5); lb != 1 {
		t.Errorf("LB(O1a, light air) = %g, want 1", lb)
	}
	// Elongation grows with wind, and grass fires elongate more at high
	// wind than timber fires.
	prev := 1.0
	for wsv := 5.0; wsv <= 60; wsv += 5 {
		lb := LengthToBreadth(FuelC2, wsv)
		if lb <= prev {
			t.Fatalf("timber LB not increasing at wsv=%g", wsv)
		}
		prev = lb
	}
	if LengthToBreadth(FuelO1B, 60) <= LengthToBreadth(FuelC2, 60) {
		t.Error("grass should elongate more than timber at 60 km/h")
	}
}

func TestBackRateOfSpread(t *testing.T) {
	in := testInput(FuelC2, 0, 60)
	head := in
	head.ISI = fwi.InitialSpreadIndex(90, 20, true)
	bros := BackRateOfSpread(in, 90, 20)
	if !(bros > 0) {
		t.Fatalf("BROS = %g, want > 0", bros)
	}
	if ros := RateOfSpread(head).ROS; bros >= ros {
		t.Errorf("BROS %g should be below the head rate %g", bros, ros)
	}
	// More wind pushes the back of the fire slower.
	if b := BackRateOfSpread(in, 90, 40); b >= bros {
		t.Errorf("BROS should fall with wind: %g at 40 km/h vs %g at 20", b, bros)
	}
}

func TestFlankRateOfSpread(t *testing.T) {
	// With no wind the ellipse is a circle and all rates agree.
	if got := FlankRateOfSpread(5, 5, 1); got != 5 {
		t.Errorf("calm flank rate = %g, want 5", got)
	}
	if got := FlankRateOfSpread(12, 2, 3.5); got != 2 {
		t.Errorf("flank rate = %g, want 2", got)
	}
}

func TestSpreadAcceleration(t *testing.T) {
	const rosEq = 10.0
	// The spread rate approaches equilibrium from below.
	prev := 0.0
	for _, tmin := range []float64{1, 5, 15, 30, 60} {
		ros := RateOfSpreadAtTime(FuelC2, rosEq, 0, tmin)
		if ros <= prev || ros >= rosEq {
			t.Fatalf("ROS(t=%g) = %g, want increasing toward %g", tmin, ros, rosEq)
		}
		prev = ros
	}
	// Crown involvement slows acceleration in closed-canopy fuels but not
	// in open ones.
	if RateOfSpreadAtTime(FuelC2, rosEq, 0.5, 10) >= RateOfSpreadAtTime(FuelC2, rosEq, 0, 10) {
		t.Error("crowning should slow closed-canopy acceleration")
	}
	if RateOfSpreadAtTime(FuelO1A, rosEq, 0.5, 10) != RateOfSpreadAtTime(FuelO1A, rosEq, 0, 10) {
		t.Error("open-fuel acceleration should not depend on CFB")
	}
	// Distance is below the equilibrium projection but grows with time.
	d30 := SpreadDistance(FuelC2, rosEq, 0, 30)
	d60 := SpreadDistance(FuelC2, rosEq, 0, 60)
	if !(0 < d30 && d30 < d60 && d60 < rosEq*60) {
		t.Errorf("spread distances implausible: d30=%g d60=%g", d30, d60)
	}
}
