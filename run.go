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

import (
	"runtime"
	"sync"
)

// EvaluateBatch computes the primary outputs for many independent
// observations, partitioned across GOMAXPROCS goroutines. Results are in
// the same order as the observations. Each observation is independent, so
// no coordination beyond the partitioning is needed.
func EvaluateBatch(obs []Input) []Output {
	out := make([]Output, len(obs))
	nprocs := runtime.GOMAXPROCS(0)
	var wg sync.WaitGroup
	wg.Add(nprocs)
	for pp := 0; pp < nprocs; pp++ {
		go func(pp int) {
			for i := pp; i < len(obs); i += nprocs {
				out[i] = Primary(obs[i])
			}
			wg.Done()
		}(pp)
	}
	wg.Wait()
	return out
}
