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
	"math"

	"github.com/wildfiremodel/fbp/fwi"
)

// LengthToBreadth returns the ratio of a wind-driven elliptical fire's
// length to its breadth at net effective wind speed wsv [km/h]
// (equations 79 and 80 of ST-X-3). Grass fires elongate faster with wind
// than timber fires.
func LengthToBreadth(f FuelType, wsv float64) float64 {
	if f.grass() {
		if wsv < 1 {
			return 1
		}
		return 1.1 * math.Pow(wsv, 0.464)
	}
	return 1 + 8.729*math.Pow(1-math.Exp(-0.030*wsv), 2.155)
}

// BackRateOfSpread computes the spread rate against the wind [m/min] by
// rebuilding the ISI with the negated wind function and re-running the
// spread model (equations 75 and 76). The observation's ISI field is
// ignored; ffmc and wsv determine the back-fire ISI.
func BackRateOfSpread(in SpreadInput, ffmc, wsv float64) float64 {
	bfW := math.Exp(-0.05039 * wsv)
	in.ISI = 0.208 * bfW * fwi.FineFuelMoistureFunction(ffmc)
	return RateOfSpread(in).ROS
}

// FlankRateOfSpread is the spread rate perpendicular to the wind [m/min]
// for an elliptical fire with the given head and back rates and
// length-to-breadth ratio (equation 89).
func FlankRateOfSpread(ros, bros, lb float64) float64 {
	return (ros + bros) / (lb * 2)
}

// accelerationCoefficient follows equation 72: fires in open fuel types
// accelerate at a fixed rate, while closed-canopy fires accelerate more
// slowly the more crown fuel they involve.
func accelerationCoefficient(f FuelType, cfb float64) float64 {
	switch f {
	case FuelC1, FuelO1A, FuelO1B, FuelS1, FuelS2, FuelS3:
		return 0.115
	}
	return 0.115 - 18.8*math.Pow(cfb, 2.5)*math.Exp(-8*cfb)
}

// RateOfSpreadAtTime scales the equilibrium spread rate for a fire still
// accelerating t minutes after ignition (equation 70).
func RateOfSpreadAtTime(f FuelType, rosEq, cfb, t float64) float64 {
	a := accelerationCoefficient(f, cfb)
	return rosEq * (1 - math.Exp(-a*t))
}

// SpreadDistance integrates the accelerating spread rate over t minutes to
// the head fire spread distance [m] (equation 71).
func SpreadDistance(f FuelType, rosEq, cfb, t float64) float64 {
	a := accelerationCoefficient(f, cfb)
	return rosEq * (t + math.Exp(-a*t)/a - 1/a)
}
