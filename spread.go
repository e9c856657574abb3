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

import "math"

// minSpreadRate is the floor applied to every returned rate of spread so
// that downstream logarithms and divisions stay finite.
const minSpreadRate = 1e-6

// SpreadInput is one observation for the rate-of-spread calculation.
type SpreadInput struct {
	Fuel FuelType
	ISI  float64 // initial spread index
	BUI  float64 // buildup index
	FMC  float64 // foliar moisture content [%]
	SFC  float64 // surface fuel consumption [kg/m²]
	CBH  float64 // crown base height [m]; 0 means use the fuel-type default
	PC   float64 // percent conifer (M1, M2)
	PDF  float64 // percent dead balsam fir (M3, M4)
	CC   float64 // percent curing (O1a, O1b)
}

// SpreadResult holds the spread rate and the crown-fire quantities derived
// alongside it.
type SpreadResult struct {
	ROS float64 // rate of spread [m/min]
	CFB float64 // crown fraction burned, in [0, 1)
	CSI float64 // critical surface intensity [kW/m]
	RSO float64 // critical surface spread rate for crowning [m/min]
}

// RateOfSpread computes the head fire rate of spread and crown involvement
// for one observation (equations 26-70 of ST-X-3). For FuelNone the result
// is all zeros. The returned ROS is never less than 1e-6 m/min.
func RateOfSpread(in SpreadInput) SpreadResult {
	if in.Fuel == FuelNone {
		return SpreadResult{}
	}
	csi, rso := crownThresholds(in)
	if in.Fuel == FuelC6 {
		c := C6Spread(in)
		return SpreadResult{ROS: c.ROS, CFB: c.CFB, CSI: csi, RSO: rso}
	}
	ros := math.Max(spreadIndex(in.Fuel, in, true), minSpreadRate)
	return SpreadResult{
		ROS: ros,
		CFB: CrownFractionBurned(ros, rso),
		CSI: csi,
		RSO: rso,
	}
}

// crownThresholds computes CSI and RSO, substituting the fuel-type default
// crown base height when the observation does not carry one.
func crownThresholds(in SpreadInput) (csi, rso float64) {
	cbh := in.CBH
	if cbh <= 0 {
		cbh = in.Fuel.Params().CBH
	}
	csi = CriticalSurfaceIntensity(in.FMC, cbh)
	rso = CrowningSpreadRate(csi, in.SFC)
	return csi, rso
}

// spreadIndex evaluates the fuel-type spread-rate curve at in.ISI,
// recursing into the component curves for the mixedwood blends. Buildup
// damping is applied only when applyBuildup is set, so that a blend damps
// exactly once, at the outermost call.
func spreadIndex(f FuelType, in SpreadInput, applyBuildup bool) float64 {
	var rsi float64
	switch f {
	case FuelM1, FuelM2:
		// Conifer/deciduous blend of the pure C2 and D1 curves
		// (equations 27 and 28). Green mixedwood damps the deciduous
		// contribution to a fifth.
		w := 1.0
		if f == FuelM2 {
			w = 0.2
		}
		pc := in.PC / 100
		rsi = pc*spreadIndex(FuelC2, in, false) +
			w*(1-pc)*spreadIndex(FuelD1, in, false)
	case FuelM3, FuelM4:
		// Dead-fir blend of the type's own curve with D1 (2009 revision).
		w := 1.0
		if f == FuelM4 {
			w = 0.2
		}
		pdf := in.PDF / 100
		rsi = pdf*baseCurve(f.Params(), in.ISI) +
			w*(1-pdf)*spreadIndex(FuelD1, in, false)
	case FuelO1A, FuelO1B:
		rsi = baseCurve(f.Params(), in.ISI) * CuringFactor(in.CC)
	default:
		rsi = baseCurve(f.Params(), in.ISI)
	}
	if applyBuildup {
		rsi *= BuildupEffect(f, in.BUI)
	}
	return rsi
}

// baseCurve is the general FBP spread-rate form RSI = a·(1−exp(−b·ISI))^c
// (equation 26).
func baseCurve(p Params, isi float64) float64 {
	return p.A * math.Pow(1-math.Exp(-p.B*isi), p.C)
}

// CuringFactor returns the grass curing multiplier for percent curing cc
// (equation 35, 2009 revision).
func CuringFactor(cc float64) float64 {
	if cc < 58.8 {
		return 0.005 * (math.Exp(0.061*cc) - 1)
	}
	return 0.176 + 0.02*(cc-58.8)
}
