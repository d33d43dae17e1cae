// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package label

import "github.com/2dChan/s2districts/raster"

// Unassigned is the label of pixels that belong to no region.
const Unassigned = 0

// Grid holds one region label per pixel in row-major order. Labels are
// written once by the labeler and never change afterwards.
type Grid struct {
	Width, Height int
	cells         []int
}

func newGrid(width, height int) *Grid {
	return &Grid{Width: width, Height: height, cells: make([]int, width*height)}
}

// Index returns the row-major offset of (x, y).
func (g *Grid) Index(x, y int) int {
	return y*g.Width + x
}

// At returns the label of (x, y).
func (g *Grid) At(x, y int) int {
	return g.cells[g.Index(x, y)]
}

// Labels returns a copy of the labels in row-major order.
func (g *Grid) Labels() []int {
	out := make([]int, len(g.cells))
	copy(out, g.cells)
	return out
}

// Areas returns the number of pixels per label; Areas()[0] counts the
// unassigned pixels. The slice has numRegions+1 entries.
func (g *Grid) Areas(numRegions int) []int {
	out := make([]int, numRegions+1)
	for _, l := range g.cells {
		if l >= 0 && l <= numRegions {
			out[l]++
		}
	}
	return out
}

// Unassigned returns the pixels that carry no label, in row-major order.
func (g *Grid) Unassigned() []raster.PixelCoord {
	var out []raster.PixelCoord
	for i, l := range g.cells {
		if l == Unassigned {
			out = append(out, raster.PixelCoord{X: i % g.Width, Y: i / g.Width})
		}
	}
	return out
}

func (g *Grid) clone() *Grid {
	return &Grid{Width: g.Width, Height: g.Height, cells: g.Labels()}
}

// neighbors calls visit for the 4-neighbors of index i: left and right wrap
// around, up and down stop at the first and last row.
func (g *Grid) neighbors(i int, visit func(j int)) {
	x, y := i%g.Width, i/g.Width
	visit(g.Index(raster.Wrap(x-1, g.Width), y))
	visit(g.Index(raster.Wrap(x+1, g.Width), y))
	if y > 0 {
		visit(i - g.Width)
	}
	if y < g.Height-1 {
		visit(i + g.Width)
	}
}
