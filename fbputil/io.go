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

package fbputil

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
	"github.com/wildfiremodel/fbp"
)

// Observation file columns. Only fuel and ffmc are required; the rest
// default to zero, which selects the model's documented defaults. Azimuths
// (waz, saz) are degrees in the file and radians inside the model.
var obsColumns = []string{
	"fuel", "lat", "lon", "elev", "day",
	"ffmc", "bui", "ws", "waz", "gs", "saz",
	"pc", "pdf", "cc", "gfl", "cbh", "cfl", "fmc",
}

const degToRad = math.Pi / 180

// ReadObservations parses a CSV observation file. The first row must be a
// header naming a subset of the recognized columns in any order.
func ReadObservations(r io.Reader) ([]fbp.Input, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("fbp: reading observation header: %v", err)
	}
	col := make(map[string]int)
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		j, ok := col[name] // detect duplicates before they shadow
		if ok {
			return nil, fmt.Errorf("fbp: observation column '%s' appears twice (columns %d and %d)", name, j+1, i+1)
		}
		if !knownColumn(name) {
			return nil, fmt.Errorf("fbp: unrecognized observation column '%s'; valid columns are %v", name, obsColumns)
		}
		col[name] = i
	}
	if _, ok := col["fuel"]; !ok {
		return nil, fmt.Errorf("fbp: observation file must have a 'fuel' column")
	}

	var obs []fbp.Input
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("fbp: reading observations: %v", err)
		}
		field := func(name string) string {
			if i, ok := col[name]; ok {
				return strings.TrimSpace(rec[i])
			}
			return ""
		}
		num := func(name string) (float64, error) {
			s := field(name)
			if s == "" {
				return 0, nil
			}
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return 0, fmt.Errorf("fbp: line %d, column '%s': %v", line, name, err)
			}
			return v, nil
		}

		var in fbp.Input
		if in.Fuel, err = fbp.ParseFuelType(field("fuel")); err != nil {
			return nil, fmt.Errorf("fbp: line %d: %v", line, err)
		}
		fields := []struct {
			name string
			dst  *float64
			conv float64
		}{
			{"lat", &in.Lat, 1}, {"lon", &in.Lon, 1}, {"elev", &in.Elev, 1},
			{"ffmc", &in.FFMC, 1}, {"bui", &in.BUI, 1},
			{"ws", &in.WS, 1}, {"waz", &in.WAZ, degToRad},
			{"gs", &in.GS, 1}, {"saz", &in.SAZ, degToRad},
			{"pc", &in.PC, 1}, {"pdf", &in.PDF, 1}, {"cc", &in.CC, 1},
			{"gfl", &in.GFL, 1}, {"cbh", &in.CBH, 1}, {"cfl", &in.CFL, 1},
			{"fmc", &in.FMC, 1},
		}
		for _, fl := range fields {
			v, err := num(fl.name)
			if err != nil {
				return nil, err
			}
			*fl.dst = v * fl.conv
		}
		if s := field("day"); s != "" {
			day, err := cast.ToIntE(s)
			if err != nil {
				return nil, fmt.Errorf("fbp: line %d, column 'day': %v", line, err)
			}
			in.Day = day
		}
		obs = append(obs, in)
	}
	return obs, nil
}

func knownColumn(name string) bool {
	for _, c := range obsColumns {
		if c == name {
			return true
		}
	}
	return false
}

// WriteResults writes one CSV row of primary outputs per observation,
// converting azimuths back to degrees.
func WriteResults(w io.Writer, obs []fbp.Input, results []fbp.Output) error {
	cw := csv.NewWriter(w)
	header := []string{
		"fuel", "fmc", "sfc", "tfc", "isi", "wsv", "raz",
		"ros", "cfb", "csi", "rso", "hfi", "fd", "lb", "bros", "fros",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("fbp: writing results: %v", err)
	}
	g := func(v float64) string { return strconv.FormatFloat(v, 'g', 6, 64) }
	for i, r := range results {
		rec := []string{
			obs[i].Fuel.String(),
			g(r.FMC), g(r.SFC), g(r.TFC), g(r.ISI),
			g(r.WSV), g(r.RAZ / degToRad),
			g(r.ROS), g(r.CFB), g(r.CSI), g(r.RSO), g(r.HFI),
			r.FD.String(), g(r.LB), g(r.BROS), g(r.FROS),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("fbp: writing results: %v", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
