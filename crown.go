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

// CriticalSurfaceIntensity returns the fire-line intensity [kW/m] above
// which a surface fire ignites the crown layer, from the foliar moisture
// content [%] and crown base height [m] (Van Wagner 1977, equation 56 of
// ST-X-3).
func CriticalSurfaceIntensity(fmc, cbh float64) float64 {
	return 0.001 * math.Pow(cbh, 1.5) * math.Pow(460+25.9*fmc, 1.5)
}

// CrowningSpreadRate returns RSO, the critical surface fire rate of spread
// [m/min] at which crowning begins (equation 57). A zero surface fuel
// consumption yields +Inf: crowning never triggers.
func CrowningSpreadRate(csi, sfc float64) float64 {
	return csi / (300 * sfc)
}

// CrownFractionBurned returns the fraction of crown fuel consumed when the
// fire spreads at ros [m/min] against the crowning threshold rso [m/min]
// (equation 58). The result is 0 when ros does not exceed rso and is
// bounded in [0, 1).
func CrownFractionBurned(ros, rso float64) float64 {
	if ros <= rso {
		return 0
	}
	return 1 - math.Exp(-0.23*(ros-rso))
}
