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

// BuildupEffect returns the multiplicative damping that the buildup index
// applies to the raw spread rate of fuel type f (equation 54 of ST-X-3).
// When bui is not positive, or the fuel type has no reference buildup index,
// the factor is exactly 1 and no damping occurs. The grass types carry
// Q = 1, which makes the factor 1 for any bui.
func BuildupEffect(f FuelType, bui float64) float64 {
	p := f.Params()
	if bui <= 0 || p.BUI0 <= 0 {
		return 1
	}
	return math.Exp(50 * math.Log(p.Q) * (1/bui - 1/p.BUI0))
}
