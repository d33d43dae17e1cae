// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package label

import "github.com/2dChan/s2districts/raster"

// AbsorbBoundaries returns a copy of g in which unlabeled boundary pixels join
// a neighboring region, leaving no gaps between regions. Each pass gives such
// a pixel the smallest label among its labeled 4-neighbors from the previous
// pass; passes repeat until nothing changes. Unlabeled non-boundary pixels
// are left alone.
func AbsorbBoundaries(g *Grid, boundary *raster.BoundaryGrid) *Grid {
	out := g.clone()
	for {
		prev := out.Labels()
		changed := false
		for i, l := range prev {
			if l != Unassigned || !boundary.AtIndex(i) {
				continue
			}
			best := Unassigned
			out.neighbors(i, func(j int) {
				if n := prev[j]; n != Unassigned && (best == Unassigned || n < best) {
					best = n
				}
			})
			if best != Unassigned {
				out.cells[i] = best
				changed = true
			}
		}
		if !changed {
			return out
		}
	}
}
