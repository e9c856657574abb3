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

// defaultGrassFuelLoad is the standard grass fuel load [kg/m²] assumed when
// an observation does not provide one.
const defaultGrassFuelLoad = 0.35

// SurfaceFuelConsumption predicts the surface fuel consumed [kg/m²] for
// fuel type f (equations 9-25 of ST-X-3). pc is the percent conifer for the
// M1/M2 blends and gfl the grass fuel load (0 selects the 0.35 kg/m²
// default). The result is floored at 1e-6 so the crowning threshold
// RSO = CSI/(300·SFC) stays finite.
func SurfaceFuelConsumption(f FuelType, ffmc, bui, pc, gfl float64) float64 {
	var sfc float64
	switch f {
	case FuelC1:
		if ffmc > 84 {
			sfc = 0.75 + 0.75*math.Sqrt(1-math.Exp(-0.23*(ffmc-84)))
		} else {
			sfc = 0.75 - 0.75*math.Sqrt(1-math.Exp(-0.23*(84-ffmc)))
		}
	case FuelC2, FuelM3, FuelM4:
		sfc = 5.0 * (1 - math.Exp(-0.0115*bui))
	case FuelC3, FuelC4:
		sfc = 5.0 * math.Pow(1-math.Exp(-0.0164*bui), 2.24)
	case FuelC5, FuelC6:
		sfc = 5.0 * math.Pow(1-math.Exp(-0.0149*bui), 2.48)
	case FuelC7:
		var ffc float64
		if ffmc > 70 {
			ffc = 2 * (1 - math.Exp(-0.104*(ffmc-70)))
		}
		sfc = ffc + 1.5*(1-math.Exp(-0.0201*bui))
	case FuelD1:
		sfc = 1.5 * (1 - math.Exp(-0.0183*bui))
	case FuelM1, FuelM2:
		sfc = pc/100*5.0*(1-math.Exp(-0.0115*bui)) +
			(100-pc)/100*1.5*(1-math.Exp(-0.0183*bui))
	case FuelO1A, FuelO1B:
		if gfl <= 0 {
			gfl = defaultGrassFuelLoad
		}
		sfc = gfl
	case FuelS1:
		sfc = 4.0*(1-math.Exp(-0.025*bui)) + 4.0*(1-math.Exp(-0.034*bui))
	case FuelS2:
		sfc = 10.0*(1-math.Exp(-0.013*bui)) + 6.0*(1-math.Exp(-0.060*bui))
	case FuelS3:
		sfc = 12.0*(1-math.Exp(-0.0166*bui)) + 20.0*(1-math.Exp(-0.0210*bui))
	default:
		return 0
	}
	return math.Max(sfc, 1e-6)
}

// CrownFuelConsumed returns the crown fuel consumed [kg/m²] given the crown
// fuel load and crown fraction burned (equation 66). Only the conifer
// portion of a mixedwood stand carries crown fuel.
func CrownFuelConsumed(f FuelType, cfl, cfb, pc, pdf float64) float64 {
	cfc := cfl * cfb
	switch f {
	case FuelM1, FuelM2:
		cfc *= pc / 100
	case FuelM3, FuelM4:
		cfc *= pdf / 100
	}
	return cfc
}

// TotalFuelConsumption is the surface plus crown fuel consumed [kg/m²]
// (equation 67).
func TotalFuelConsumption(sfc, cfc float64) float64 {
	return sfc + cfc
}
