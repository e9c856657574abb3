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

import "github.com/wildfiremodel/fbp/fwi"

// Input is one complete station observation for the primary-output
// calculation: fuel description, site position, terrain, and the fire
// weather codes for the day. Zero values select the documented defaults
// (tabulated crown geometry, 0.35 kg/m² grass load, computed FMC).
type Input struct {
	Fuel FuelType

	// Site, for the foliar moisture date-of-minimum model. Lon is degrees
	// west, positive. Day is the Julian day of year.
	Lat, Lon, Elev float64
	Day            int

	// Stand composition.
	PC  float64 // percent conifer (M1, M2)
	PDF float64 // percent dead balsam fir (M3, M4)
	CC  float64 // percent curing (O1a, O1b)
	GFL float64 // grass fuel load [kg/m²]; 0 means 0.35
	CBH float64 // crown base height [m]; 0 means fuel-type default
	CFL float64 // crown fuel load [kg/m²]; 0 means fuel-type default
	FMC float64 // foliar moisture content [%]; 0 means compute from site

	// Fire weather.
	FFMC float64 // fine fuel moisture code
	BUI  float64 // buildup index
	WS   float64 // 10 m open wind speed [km/h]
	WAZ  float64 // wind azimuth [rad], direction of push
	GS   float64 // ground slope [%]
	SAZ  float64 // upslope azimuth [rad]
}

// Output holds the primary FBP outputs for one observation.
type Output struct {
	FMC float64 // foliar moisture content used [%]
	SFC float64 // surface fuel consumption [kg/m²]
	TFC float64 // total fuel consumption [kg/m²]
	ISI float64 // initial spread index at the effective wind
	WSV float64 // net effective wind speed [km/h]
	RAZ float64 // net spread azimuth [rad]

	ROS float64 // head fire rate of spread [m/min]
	CFB float64 // crown fraction burned
	CSI float64 // critical surface intensity [kW/m]
	RSO float64 // critical surface spread rate [m/min]
	HFI float64 // head fire intensity [kW/m]
	FD  FireDescription

	LB   float64 // length-to-breadth ratio
	BROS float64 // back rate of spread [m/min]
	FROS float64 // flank rate of spread [m/min]
}

// Primary chains the FBP components for one observation: foliar moisture
// and surface fuel consumption from the site and weather, the slope/wind
// adjustment into a net effective wind, the ISI at that wind, and finally
// the spread rate, consumption, intensity, and fire-shape outputs. For
// FuelNone the zero Output is returned.
func Primary(in Input) Output {
	var out Output
	if in.Fuel == FuelNone {
		return out
	}

	out.FMC = in.FMC
	if out.FMC <= 0 {
		out.FMC = FoliarMoistureContent(in.Lat, in.Lon, in.Elev, in.Day)
	}
	out.SFC = SurfaceFuelConsumption(in.Fuel, in.FFMC, in.BUI, in.PC, in.GFL)

	sp := SpreadInput{
		Fuel: in.Fuel,
		BUI:  in.BUI,
		FMC:  out.FMC,
		SFC:  out.SFC,
		CBH:  in.CBH,
		PC:   in.PC,
		PDF:  in.PDF,
		CC:   in.CC,
	}

	out.WSV, out.RAZ = in.WS, in.WAZ
	if in.GS > 0 && in.FFMC > 0 {
		if sl, ok := SlopeAdjust(SlopeInput{
			SpreadInput: sp,
			FFMC:        in.FFMC,
			WS:          in.WS,
			WAZ:         in.WAZ,
			GS:          in.GS,
			SAZ:         in.SAZ,
		}); ok {
			out.WSV, out.RAZ = sl.WSV, sl.RAZ
		}
	}

	out.ISI = fwi.InitialSpreadIndex(in.FFMC, out.WSV, true)
	sp.ISI = out.ISI
	r := RateOfSpread(sp)
	out.ROS, out.CFB, out.CSI, out.RSO = r.ROS, r.CFB, r.CSI, r.RSO

	cfl := in.CFL
	if cfl <= 0 {
		cfl = in.Fuel.Params().CFL
	}
	out.TFC = TotalFuelConsumption(out.SFC, CrownFuelConsumed(in.Fuel, cfl, out.CFB, in.PC, in.PDF))
	out.HFI = FireIntensity(out.TFC, out.ROS)
	out.FD = ClassifyFire(out.CFB)

	out.LB = LengthToBreadth(in.Fuel, out.WSV)
	out.BROS = BackRateOfSpread(sp, in.FFMC, out.WSV)
	out.FROS = FlankRateOfSpread(out.ROS, out.BROS, out.LB)
	return out
}
