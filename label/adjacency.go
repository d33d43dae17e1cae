// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package label

import (
	"slices"

	"github.com/theodesp/unionfind"
)

// Adjacency returns, for every labeled region, the sorted labels of the
// regions it touches. Pixels touch their right neighbor (wrapping around) and
// the one below (not wrapping). Unassigned pixels separate regions.
func Adjacency(g *Grid) map[int][]int {
	sets := make(map[int]map[int]struct{})
	link := func(a, b int) {
		if a == Unassigned || b == Unassigned || a == b {
			return
		}
		for _, p := range [][2]int{{a, b}, {b, a}} {
			s, ok := sets[p[0]]
			if !ok {
				s = make(map[int]struct{})
				sets[p[0]] = s
			}
			s[p[1]] = struct{}{}
		}
	}

	g.forEachLink(func(i, j int) {
		link(g.cells[i], g.cells[j])
	})

	out := make(map[int][]int, len(sets))
	for l, s := range sets {
		ns := make([]int, 0, len(s))
		for n := range s {
			ns = append(ns, n)
		}
		slices.Sort(ns)
		out[l] = ns
	}
	return out
}

// Components returns the number of connected pieces of every labeled region.
// A region produced by a single fill has exactly one; more indicate a region
// split by wraparound artifacts or boundary absorption.
func Components(g *Grid) map[int]int {
	uf := unionfind.New(len(g.cells))
	g.forEachLink(func(i, j int) {
		if l := g.cells[i]; l != Unassigned && l == g.cells[j] {
			uf.Union(i, j)
		}
	})

	roots := make(map[int]map[int]struct{})
	for i, l := range g.cells {
		if l == Unassigned {
			continue
		}
		s, ok := roots[l]
		if !ok {
			s = make(map[int]struct{})
			roots[l] = s
		}
		s[uf.Root(i)] = struct{}{}
	}

	out := make(map[int]int, len(roots))
	for l, s := range roots {
		out[l] = len(s)
	}
	return out
}

// forEachLink calls fn once for every pair of touching pixels: each pixel
// with its right neighbor (wrapping) and its lower neighbor.
func (g *Grid) forEachLink(fn func(i, j int)) {
	for y := range g.Height {
		for x := range g.Width {
			i := g.Index(x, y)
			if g.Width > 1 {
				fn(i, g.Index((x+1)%g.Width, y))
			}
			if y < g.Height-1 {
				fn(i, i+g.Width)
			}
		}
	}
}
