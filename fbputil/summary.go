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
	"sort"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"

	"github.com/wildfiremodel/fbp"
)

// Summary holds distribution statistics for one output variable over a
// batch run.
type Summary struct {
	Mean, Median, Max float64
	Crowning          int // observations with any crown involvement
}

// Summarize computes batch statistics of the spread rate, intensity, and
// crown involvement over a set of results.
func Summarize(results []fbp.Output) (ros, hfi Summary) {
	rosv := make([]float64, len(results))
	hfiv := make([]float64, len(results))
	for i, r := range results {
		rosv[i] = r.ROS
		hfiv[i] = r.HFI
		if r.CFB > 0 {
			ros.Crowning++
		}
	}
	hfi.Crowning = ros.Crowning
	fill := func(s *Summary, v []float64) {
		if len(v) == 0 {
			return
		}
		sort.Float64s(v)
		s.Mean = stat.Mean(v, nil)
		s.Median = stat.Quantile(0.5, stat.Empirical, v, nil)
		s.Max = v[len(v)-1]
	}
	fill(&ros, rosv)
	fill(&hfi, hfiv)
	return ros, hfi
}

// LogSummary logs batch statistics of a finished run.
func LogSummary(results []fbp.Output) {
	ros, hfi := Summarize(results)
	log.WithFields(log.Fields{
		"mean":   ros.Mean,
		"median": ros.Median,
		"max":    ros.Max,
	}).Info("rate of spread [m/min]")
	log.WithFields(log.Fields{
		"mean":   hfi.Mean,
		"median": hfi.Median,
		"max":    hfi.Max,
	}).Info("head fire intensity [kW/m]")
	log.WithFields(log.Fields{
		"crowning": ros.Crowning,
		"total":    len(results),
	}).Info("crown involvement")
}
