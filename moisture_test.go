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

import "testing"

func TestFoliarMoistureContent(t *testing.T) {
	// Mid-boreal site (55°N 105°W at sea level).
	const lat, lon = 55, 105

	// At the date of minimum the moisture bottoms out at 85%.
	var dmin int
	low := 200.0
	for day := 1; day <= 365; day++ {
		if fmc := FoliarMoistureContent(lat, lon, 0, day); fmc < low {
			low, dmin = fmc, day
		}
	}
	if low != 85 {
		t.Errorf("minimum FMC = %g, want 85", low)
	}
	if dmin < 100 || dmin > 250 {
		t.Errorf("date of minimum %d is outside the growing season", dmin)
	}

	// Far from the minimum the moisture saturates at 120%.
	if fmc := FoliarMoistureContent(lat, lon, 0, 1); fmc != 120 {
		t.Errorf("midwinter FMC = %g, want 120", fmc)
	}

	// Elevation delays the minimum.
	dminElev := 0
	low = 200.0
	for day := 1; day <= 365; day++ {
		if fmc := FoliarMoistureContent(lat, lon, 1500, day); fmc < low {
			low, dminElev = fmc, day
		}
	}
	if dminElev <= dmin {
		t.Errorf("date of minimum at 1500 m (%d) should be later than at sea level (%d)", dminElev, dmin)
	}

	// Bounded everywhere.
	for day := 1; day <= 365; day += 7 {
		fmc := FoliarMoistureContent(lat, lon, 500, day)
		if fmc < 85 || fmc > 120 {
			t.Errorf("day %d: FMC = %g outside [85, 120]", day, fmc)
		}
	}
}
