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

// FireIntensity returns Byram's fire-line intensity [kW/m] from the fuel
// consumed [kg/m²] and the rate of spread [m/min] (equation 69 of ST-X-3).
func FireIntensity(fc, ros float64) float64 {
	return 300 * fc * ros
}

// FireDescription classifies fire behavior by crown involvement.
type FireDescription int

const (
	SurfaceFire FireDescription = iota
	IntermittentCrownFire
	ContinuousCrownFire
)

func (d FireDescription) String() string {
	switch d {
	case SurfaceFire:
		return "S"
	case IntermittentCrownFire:
		return "I"
	case ContinuousCrownFire:
		return "C"
	}
	return "?"
}

// ClassifyFire maps a crown fraction burned to the standard three-class
// fire description: below 10% crown involvement the fire is a surface fire,
// above 90% a continuous crown fire.
func ClassifyFire(cfb float64) FireDescription {
	switch {
	case cfb < 0.1:
		return SurfaceFire
	case cfb < 0.9:
		return IntermittentCrownFire
	default:
		return ContinuousCrownFire
	}
}
