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

	"github.com/wildfiremodel/fbp/fwi"
)

// SlopeInput extends a spread observation with terrain and measured wind.
// Azimuths are radians; WAZ is the direction the wind pushes the fire
// toward, SAZ the upslope direction.
type SlopeInput struct {
	SpreadInput
	FFMC float64 // fine fuel moisture code, for the zero-wind ISI
	WS   float64 // 10 m open wind speed [km/h]
	WAZ  float64 // wind azimuth [rad]
	GS   float64 // ground slope [%]
	SAZ  float64 // slope azimuth [rad]
}

// SlopeResult is the effective wind vector that replaces the measured wind
// in the ISI calculation once slope-driven acceleration is accounted for.
type SlopeResult struct {
	WSV float64 // net effective wind speed [km/h]
	RAZ float64 // net spread azimuth [rad]
}

// SlopeAdjust converts ground slope into an equivalent wind and combines it
// vectorially with the measured wind (equations 39-44 of ST-X-3). The slope
// contribution is found by amplifying the zero-wind flat-ground spread rate
// by the slope factor, analytically inverting the fuel-type spread curve to
// the flat-ground ISI that reproduces it, and then inverting the ISI wind
// function to an equivalent wind speed. The second return value is false
// for FuelNone, for which no spread direction is defined.
func SlopeAdjust(in SlopeInput) (SlopeResult, bool) {
	if in.Fuel == FuelNone {
		return SlopeResult{}, false
	}
	sf := SlopeFactor(in.GS)
	ff := fwi.FineFuelMoistureFunction(in.FFMC)

	// Zero-wind flat-ground spread, without buildup damping: the inversion
	// targets the raw curve.
	zin := in.SpreadInput
	zin.ISI = 0.208 * ff
	isf := invertSpreadIndex(in.Fuel, zin, sf)
	wse := equivalentWind(isf, ff)

	wsx := in.WS*math.Sin(in.WAZ) + wse*math.Sin(in.SAZ)
	wsy := in.WS*math.Cos(in.WAZ) + wse*math.Cos(in.SAZ)
	wsv := math.Sqrt(wsx*wsx + wsy*wsy)
	var raz float64
	if wsv > 0 {
		raz = math.Acos(wsy / wsv)
		if wsx < 0 {
			// acos covers [0, π] only; reflect into the western half.
			raz = 2*math.Pi - raz
		}
	}
	return SlopeResult{WSV: wsv, RAZ: raz}, true
}

// SlopeFactor returns the spread-rate multiplier for a ground slope of gs
// percent (equation 39). Slopes of 70% and steeper plateau at 10.
func SlopeFactor(gs float64) float64 {
	if gs >= 70 {
		return 10
	}
	return math.Exp(3.533 * math.Pow(gs/100, 1.2))
}

// invertSpreadIndex solves the fuel-type curve for the flat-ground ISI that
// reproduces the slope-amplified zero-wind spread rate. zin carries the
// zero-wind ISI; the blends invert their component curves independently and
// recombine them with the conifer/dead-fir percentage split.
func invertSpreadIndex(f FuelType, zin SpreadInput, sf float64) float64 {
	switch f {
	case FuelM1, FuelM2:
		pc := zin.PC / 100
		return pc*invertCurve(FuelC2.Params(), spreadIndex(FuelC2, zin, false)*sf) +
			(1-pc)*invertCurve(FuelD1.Params(), spreadIndex(FuelD1, zin, false)*sf)
	case FuelM3, FuelM4:
		pdf := zin.PDF / 100
		return pdf*invertCurve(f.Params(), baseCurve(f.Params(), zin.ISI)*sf) +
			(1-pdf)*invertCurve(FuelD1.Params(), spreadIndex(FuelD1, zin, false)*sf)
	case FuelO1A, FuelO1B:
		// The curing factor scales the curve's asymptote, so fold it into
		// the amplitude before inverting.
		p := f.Params()
		p.A *= CuringFactor(zin.CC)
		return invertCurve(p, baseCurve(f.Params(), zin.ISI)*CuringFactor(zin.CC)*sf)
	default:
		return invertCurve(f.Params(), spreadIndex(f, zin, false)*sf)
	}
}

// invertCurve solves rsf = a·(1−exp(−b·ISI))^c for ISI (equation 41). The
// log argument is clamped at 0.01 to keep the inversion finite as rsf
// approaches the curve's asymptote a; the negated comparison also routes a
// degenerate 0/0 ratio (fully uncured grass) into the clamp.
func invertCurve(p Params, rsf float64) float64 {
	x := 1 - math.Pow(rsf/p.A, 1/p.C)
	if !(x >= 0.01) {
		x = 0.01
	}
	return -math.Log(x) / p.B
}

// equivalentWind inverts the ISI equation for the wind speed that would
// produce isf on flat ground (equations 43 and 44). Winds above 40 km/h
// re-derive through the saturating high-wind branch of the wind function;
// at and beyond its asymptote the ceiling 112.45 km/h is reported. The
// 0.999·2.496·ff guard reproduces the reference implementation's empirical
// boundary exactly.
func equivalentWind(isf, ff float64) float64 {
	wse := math.Log(isf/(0.208*ff)) / 0.05039
	if wse <= 40 {
		return wse
	}
	if isf >= 0.999*2.496*ff {
		return 112.45
	}
	return 28 - math.Log(1-isf/(2.496*ff))/0.0818
}
