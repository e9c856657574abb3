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

// Package fbp implements the fire behavior prediction calculations of the
// Canadian Forest Fire Behavior Prediction System: fuel-type-specific rate
// of spread, crown fire coupling, fuel consumption, fire intensity, and the
// slope/wind adjustment that converts terrain into an equivalent wind vector.
// The equations follow Forestry Canada Fire Danger Group Information Report
// ST-X-3 (1992) with the 2009 errata and revisions.
//
// All functions in this package are pure: they carry no state between calls
// and are safe for concurrent use.
package fbp

import (
	"fmt"
	"strings"
)

// Version gives the model version number.
const Version = "0.2.0"

// FuelType identifies one of the benchmark fuel types of the FBP system.
// FuelNone denotes non-fuel (water, rock, urban); spread calculations over
// it are not meaningful.
type FuelType int

// The 17 FBP benchmark fuel types.
const (
	FuelNone FuelType = iota
	FuelC1            // spruce-lichen woodland
	FuelC2            // boreal spruce
	FuelC3            // mature jack or lodgepole pine
	FuelC4            // immature jack or lodgepole pine
	FuelC5            // red and white pine
	FuelC6            // conifer plantation
	FuelC7            // ponderosa pine, Douglas-fir
	FuelD1            // leafless aspen
	FuelM1            // boreal mixedwood, leafless
	FuelM2            // boreal mixedwood, green
	FuelM3            // dead balsam fir mixedwood, leafless
	FuelM4            // dead balsam fir mixedwood, green
	FuelS1            // jack or lodgepole pine slash
	FuelS2            // white spruce and balsam slash
	FuelS3            // coastal cedar, hemlock, Douglas-fir slash
	FuelO1A           // matted grass
	FuelO1B           // standing grass
)

// Params holds the empirical coefficients of a fuel type: the rate-of-spread
// curve shape (a, b, c), the buildup-effect reference index and response
// shape (BUI0, Q), and the default crown geometry and load.
type Params struct {
	A, B, C float64 // spread-rate curve: RSI = a·(1−exp(−b·ISI))^c
	Q       float64 // buildup-response shape
	BUI0    float64 // reference buildup index
	CBH     float64 // default crown base height [m]
	CFL     float64 // default crown fuel load [kg/m²]
}

// Coefficients from tables 6 and 8 of ST-X-3. The mixedwood M1 and M2 types
// carry no curve of their own; their spread rates are blends of the C2 and
// D1 curves (see RateOfSpread).
var fuelParams = [...]Params{
	FuelNone: {},
	FuelC1:   {A: 90, B: 0.0649, C: 4.5, Q: 0.90, BUI0: 72, CBH: 2, CFL: 0.75},
	FuelC2:   {A: 110, B: 0.0282, C: 1.5, Q: 0.70, BUI0: 64, CBH: 3, CFL: 0.80},
	FuelC3:   {A: 110, B: 0.0444, C: 3.0, Q: 0.75, BUI0: 62, CBH: 8, CFL: 1.15},
	FuelC4:   {A: 110, B: 0.0293, C: 1.5, Q: 0.80, BUI0: 66, CBH: 4, CFL: 1.20},
	FuelC5:   {A: 30, B: 0.0697, C: 4.0, Q: 0.80, BUI0: 56, CBH: 18, CFL: 1.20},
	FuelC6:   {A: 30, B: 0.0800, C: 3.0, Q: 0.80, BUI0: 62, CBH: 7, CFL: 1.80},
	FuelC7:   {A: 45, B: 0.0305, C: 2.0, Q: 0.85, BUI0: 106, CBH: 10, CFL: 0.50},
	FuelD1:   {A: 30, B: 0.0232, C: 1.6, Q: 0.90, BUI0: 32},
	FuelM1:   {Q: 0.80, BUI0: 50, CBH: 6, CFL: 0.80},
	FuelM2:   {Q: 0.80, BUI0: 50, CBH: 6, CFL: 0.80},
	FuelM3:   {A: 120, B: 0.0572, C: 1.4, Q: 0.80, BUI0: 50, CBH: 6, CFL: 0.80},
	FuelM4:   {A: 100, B: 0.0404, C: 1.48, Q: 0.80, BUI0: 50, CBH: 6, CFL: 0.80},
	FuelS1:   {A: 75, B: 0.0297, C: 1.3, Q: 0.75, BUI0: 38},
	FuelS2:   {A: 40, B: 0.0438, C: 1.7, Q: 0.75, BUI0: 63},
	FuelS3:   {A: 55, B: 0.0829, C: 3.2, Q: 0.75, BUI0: 31},
	FuelO1A:  {A: 190, B: 0.0310, C: 1.4, Q: 1.00, BUI0: 1},
	FuelO1B:  {A: 250, B: 0.0350, C: 1.7, Q: 1.00, BUI0: 1},
}

var fuelNames = [...]string{
	FuelNone: "NF",
	FuelC1:   "C1", FuelC2: "C2", FuelC3: "C3", FuelC4: "C4",
	FuelC5: "C5", FuelC6: "C6", FuelC7: "C7",
	FuelD1: "D1",
	FuelM1: "M1", FuelM2: "M2", FuelM3: "M3", FuelM4: "M4",
	FuelS1: "S1", FuelS2: "S2", FuelS3: "S3",
	FuelO1A: "O1a", FuelO1B: "O1b",
}

// Params returns the empirical coefficients for fuel type f.
func (f FuelType) Params() Params {
	if f < FuelNone || int(f) >= len(fuelParams) {
		return Params{}
	}
	return fuelParams[f]
}

func (f FuelType) String() string {
	if f < FuelNone || int(f) >= len(fuelNames) {
		return fmt.Sprintf("FuelType(%d)", int(f))
	}
	return fuelNames[f]
}

// grass reports whether f is one of the two grass types.
func (f FuelType) grass() bool { return f == FuelO1A || f == FuelO1B }

// ParseFuelType converts an FBP fuel type label (e.g. "C2", "c-2", "O1a")
// into a FuelType. "NF" and "WA" both denote non-fuel.
func ParseFuelType(s string) (FuelType, error) {
	key := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", ""))
	switch key {
	case "NF", "WA":
		return FuelNone, nil
	case "O1A":
		return FuelO1A, nil
	case "O1B":
		return FuelO1B, nil
	}
	for f := FuelC1; f <= FuelS3; f++ {
		if key == fuelNames[f] {
			return f, nil
		}
	}
	return FuelNone, fmt.Errorf("fbp: '%s' is not a valid fuel type; valid types are C1-C7, D1, M1-M4, S1-S3, O1a, O1b, and NF", s)
}
