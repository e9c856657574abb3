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

// Package fwi implements the daily codes and indexes of the Canadian Forest
// Fire Weather Index System (Van Wagner 1987, Forestry Technical Report 35).
// Each function is a pure closed form; the three moisture codes carry over
// from the previous day's value, which the caller supplies.
package fwi

import "math"

// Standard daily FFMC starting value for a new season.
const DefaultFFMC = 85

// Day-length factors for the duff moisture code, by month, for 46°N
// (table 1.3 of FTR-35).
var dayLength = [12]float64{6.5, 7.5, 9.0, 12.8, 13.9, 13.9, 12.4, 10.9, 9.4, 8.0, 7.0, 6.0}

// Day-length adjustment for the drought code, by month, for 46°N.
var dryingFactor = [12]float64{-1.6, -1.6, -1.6, 0.9, 3.8, 5.8, 6.4, 5.0, 2.4, 0.4, -1.6, -1.6}

// fineFuelMoisture converts an FFMC value to fine fuel moisture content [%].
func fineFuelMoisture(ffmc float64) float64 {
	return 147.2 * (101 - ffmc) / (59.5 + ffmc)
}

// FineFuelMoistureCode advances yesterday's FFMC given noon temperature
// [°C], relative humidity [%], 10 m wind speed [km/h], and 24 h
// precipitation [mm]. The result is bounded in [0, 101].
func FineFuelMoistureCode(prev, temp, rh, ws, prec float64) float64 {
	wmo := fineFuelMoisture(prev)
	if prec > 0.5 {
		ra := prec - 0.5
		if wmo > 150 {
			wmo += 0.0015*(wmo-150)*(wmo-150)*math.Sqrt(ra) +
				42.5*ra*math.Exp(-100/(251-wmo))*(1-math.Exp(-6.93/ra))
		} else {
			wmo += 42.5 * ra * math.Exp(-100/(251-wmo)) * (1 - math.Exp(-6.93/ra))
		}
		if wmo > 250 {
			wmo = 250
		}
	}
	ed := 0.942*math.Pow(rh, 0.679) + 11*math.Exp((rh-100)/10) +
		0.18*(21.1-temp)*(1-math.Exp(-0.115*rh))
	ew := 0.618*math.Pow(rh, 0.753) + 10*math.Exp((rh-100)/10) +
		0.18*(21.1-temp)*(1-math.Exp(-0.115*rh))
	var wm float64
	switch {
	case wmo < ed && wmo < ew:
		// wetting from below the equilibrium
		z := 0.424*(1-math.Pow((100-rh)/100, 1.7)) +
			0.0694*math.Sqrt(ws)*(1-math.Pow((100-rh)/100, 8))
		x := z * 0.581 * math.Exp(0.0365*temp)
		wm = ew - (ew-wmo)/math.Pow(10, x)
	case wmo > ed:
		// drying from above the equilibrium
		z := 0.424*(1-math.Pow(rh/100, 1.7)) +
			0.0694*math.Sqrt(ws)*(1-math.Pow(rh/100, 8))
		x := z * 0.581 * math.Exp(0.0365*temp)
		wm = ed + (wmo-ed)/math.Pow(10, x)
	default:
		wm = wmo
	}
	ffmc := 59.5 * (250 - wm) / (147.2 + wm)
	return math.Min(math.Max(ffmc, 0), 101)
}

// DuffMoistureCode advances yesterday's DMC. month is 1-12; the day-length
// table assumes mid-boreal latitudes.
func DuffMoistureCode(prev, temp, rh, prec float64, month int) float64 {
	var rk float64
	if temp >= -1.1 {
		rk = 1.894 * (temp + 1.1) * (100 - rh) * dayLength[month-1] * 1e-4
	}
	pr := prev
	if prec > 1.5 {
		rw := 0.92*prec - 1.27
		wmi := 20 + 280/math.Exp(0.023*prev)
		var b float64
		switch {
		case prev <= 33:
			b = 100 / (0.5 + 0.3*prev)
		case prev <= 65:
			b = 14 - 1.3*math.Log(prev)
		default:
			b = 6.2*math.Log(prev) - 17.2
		}
		wmr := wmi + 1000*rw/(48.77+b*rw)
		pr = 43.43 * (5.6348 - math.Log(wmr-20))
	}
	if pr < 0 {
		pr = 0
	}
	return pr + rk
}

// DroughtCode advances yesterday's DC. month is 1-12.
func DroughtCode(prev, temp, prec float64, month int) float64 {
	if temp < -2.8 {
		temp = -2.8
	}
	pe := (0.36*(temp+2.8) + dryingFactor[month-1]) / 2
	if pe < 0 {
		pe = 0
	}
	dc := prev
	if prec > 2.8 {
		rw := 0.83*prec - 1.27
		smi := 800 * math.Exp(-prev/400)
		dc = prev - 400*math.Log(1+3.937*rw/smi)
		if dc < 0 {
			dc = 0
		}
	}
	return dc + pe
}

// FineFuelMoistureFunction is the fine-fuel-moisture term f(F) of the
// initial spread index (equation 25 of FTR-35). The FBP slope adjustment
// inverts the ISI equation through this term.
func FineFuelMoistureFunction(ffmc float64) float64 {
	m := fineFuelMoisture(ffmc)
	return 91.9 * math.Exp(-0.1386*m) * (1 + math.Pow(m, 5.31)/4.93e7)
}

// InitialSpreadIndex combines the fine fuel moisture code and wind speed
// [km/h] into the ISI (equations 24-26). With fbpWindCap set, winds of
// 40 km/h and above use the saturating wind function of the FBP system
// (equation 53a of ST-X-3) instead of the unbounded exponential.
func InitialSpreadIndex(ffmc, ws float64, fbpWindCap bool) float64 {
	fW := math.Exp(0.05039 * ws)
	if fbpWindCap && ws >= 40 {
		fW = 12 * (1 - math.Exp(-0.0818*(ws-28)))
	}
	return 0.208 * fW * FineFuelMoistureFunction(ffmc)
}

// BuildupIndex combines the duff moisture code and drought code
// (equation 27).
func BuildupIndex(dmc, dc float64) float64 {
	if dmc == 0 && dc == 0 {
		return 0
	}
	var bui float64
	if dmc <= 0.4*dc {
		bui = 0.8 * dc * dmc / (dmc + 0.4*dc)
	} else {
		bui = dmc - (1-0.8*dc/(dmc+0.4*dc))*(0.92+math.Pow(0.0114*dmc, 1.7))
	}
	if bui < 0 {
		bui = 0
	}
	return bui
}

// FireWeatherIndex combines the ISI and BUI into the FWI (equations 28-30).
func FireWeatherIndex(isi, bui float64) float64 {
	var fD float64
	if bui > 80 {
		fD = 1000 / (25 + 108.64/math.Exp(0.023*bui))
	} else {
		fD = 0.626*math.Pow(bui, 0.809) + 2
	}
	bb := 0.1 * isi * fD
	if bb <= 1 {
		return bb
	}
	return math.Exp(2.72 * math.Pow(0.434*math.Log(bb), 0.647))
}

// DailySeverityRating scales the FWI for averaging over time or area
// (equation 31).
func DailySeverityRating(fwi float64) float64 {
	return 0.0272 * math.Pow(fwi, 1.77)
}
