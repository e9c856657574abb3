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

// FoliarMoistureContent estimates conifer foliar moisture [%] from position
// and date (equations 1-3 of ST-X-3). lat is degrees north, lon degrees
// west (positive), elev meters above sea level, and day the Julian day of
// year. Moisture bottoms out around the date of minimum foliar moisture,
// which shifts with effective latitude and elevation.
func FoliarMoistureContent(lat, lon, elev float64, day int) float64 {
	var d0 float64
	if elev <= 0 {
		latn := 46 + 23.4*math.Exp(-0.0360*(150-lon))
		d0 = 151 * lat / latn
	} else {
		latn := 43 + 33.7*math.Exp(-0.0351*(150-lon))
		d0 = 142.1*lat/latn + 0.0172*elev
	}
	nd := math.Abs(float64(day) - math.Round(d0))
	switch {
	case nd < 30:
		return 85 + 0.0189*nd*nd
	case nd < 50:
		return 32.9 + 3.17*nd - 0.0288*nd*nd
	default:
		return 120
	}
}
