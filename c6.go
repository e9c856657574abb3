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

// fmeAvg is the species-average foliar moisture effect for conifer
// plantation crowns (equation 62).
const fmeAvg = 0.778

// C6Result carries the intermediate and final spread rates of the conifer
// plantation model. RSI is the surface curve before buildup damping, RSC
// the crown-layer spread rate.
type C6Result struct {
	RSI float64
	RSC float64
	CFB float64
	ROS float64
}

// C6Spread evaluates the conifer-plantation fuel type, the only one in the
// FBP system where surface and crown spread are modeled separately and then
// coupled (equations 61-65). Crowning requires the full three-way ordering
// RSC > RSS > RSO: a crown layer that spreads slower than the surface fire,
// or a surface fire below the crowning threshold, leaves CFB at 0.
func C6Spread(in SpreadInput) C6Result {
	var r C6Result
	r.RSI = 30 * math.Pow(1-math.Exp(-0.08*in.ISI), 3)
	rss := r.RSI * BuildupEffect(FuelC6, in.BUI)

	fme := 1000 * math.Pow(1.5-0.00275*in.FMC, 4) / (460 + 25.9*in.FMC)
	r.RSC = 60 * (1 - math.Exp(-0.0497*in.ISI)) * fme / fmeAvg

	_, rso := crownThresholds(in)
	if r.RSC > rss && rss > rso {
		r.CFB = CrownFractionBurned(rss, rso)
	}
	r.ROS = rss
	if r.RSC > rss {
		// Interpolate between surface and crown behavior by the crown
		// fraction burned (equation 65).
		r.ROS = rss + r.CFB*(r.RSC-rss)
	}
	r.ROS = math.Max(r.ROS, minSpreadRate)
	return r
}
