// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package raster

import (
	"fmt"

	"github.com/2dChan/s2districts/internal/errs"
)

// BoundaryGrid marks the pixels crossed by cell edges. Marking is idempotent.
type BoundaryGrid struct {
	Width, Height int
	cells         []bool
}

// NewBoundaryGrid returns an empty width x height grid.
func NewBoundaryGrid(width, height int) (*BoundaryGrid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("NewBoundaryGrid: dimensions %dx%d must be positive: %w",
			width, height, errs.ErrInvalidArgument)
	}
	return &BoundaryGrid{Width: width, Height: height, cells: make([]bool, width*height)}, nil
}

// Index returns the row-major offset of (x, y).
func (g *BoundaryGrid) Index(x, y int) int {
	return y*g.Width + x
}

// In reports whether p lies inside the grid.
func (g *BoundaryGrid) In(p PixelCoord) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Mark sets p as a boundary pixel. It panics if p lies outside the grid.
func (g *BoundaryGrid) Mark(p PixelCoord) {
	if !g.In(p) {
		panic(fmt.Sprintf("Mark: pixel %v out of range %dx%d", p, g.Width, g.Height))
	}
	g.cells[g.Index(p.X, p.Y)] = true
}

// At reports whether (x, y) is a boundary pixel.
func (g *BoundaryGrid) At(x, y int) bool {
	return g.cells[g.Index(x, y)]
}

// Count returns the number of boundary pixels.
func (g *BoundaryGrid) Count() int {
	n := 0
	for _, b := range g.cells {
		if b {
			n++
		}
	}
	return n
}

// AtIndex reports whether the pixel at row-major offset i is a boundary pixel.
func (g *BoundaryGrid) AtIndex(i int) bool {
	return g.cells[i]
}

// SealPockets marks as boundary every pixel that no seed can reach through
// non-boundary 4-neighbors, wrapping in x and clamped in y. Junctions of
// traced edges can enclose such pockets; sealing them lets boundary
// absorption hand them to a neighboring region. Seeds outside the grid are
// ignored. It returns the sealed pixels in row-major order.
func (g *BoundaryGrid) SealPockets(seeds []PixelCoord) []PixelCoord {
	reached := make([]bool, len(g.cells))
	queue := make([]int, 0, len(seeds))
	for _, s := range seeds {
		if !g.In(s) {
			continue
		}
		i := g.Index(s.X, s.Y)
		if !reached[i] {
			reached[i] = true
			queue = append(queue, i)
		}
	}

	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		x, y := i%g.Width, i/g.Width
		visit := func(nx, ny int) {
			j := g.Index(nx, ny)
			if !reached[j] && !g.cells[j] {
				reached[j] = true
				queue = append(queue, j)
			}
		}
		visit(Wrap(x-1, g.Width), y)
		visit(Wrap(x+1, g.Width), y)
		if y > 0 {
			visit(x, y-1)
		}
		if y < g.Height-1 {
			visit(x, y+1)
		}
	}

	var sealed []PixelCoord
	for i, b := range g.cells {
		if !b && !reached[i] {
			g.cells[i] = true
			sealed = append(sealed, PixelCoord{X: i % g.Width, Y: i / g.Width})
		}
	}
	return sealed
}
