// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package label partitions a boundary raster into regions by flood fill.
//
// Regions are filled one after another in an explicit order. A pixel belongs
// to the first region whose fill reaches it and is never relabeled, so the
// order decides every tie between regions.
package label

import (
	"fmt"

	"github.com/2dChan/s2districts/internal/errs"
	"github.com/2dChan/s2districts/raster"
)

// IncompletePartitionError lists the non-boundary pixels that no fill
// reached.
type IncompletePartitionError struct {
	Pixels []raster.PixelCoord
}

func (e *IncompletePartitionError) Error() string {
	return fmt.Sprintf("incomplete partition: %d unlabeled pixels, first at (%d, %d)",
		len(e.Pixels), e.Pixels[0].X, e.Pixels[0].Y)
}

func (e *IncompletePartitionError) Unwrap() error {
	return errs.ErrIncompletePartition
}

// AscendingOrder returns the fill order 0, 1, ..., n-1.
func AscendingOrder(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// Fill labels every pixel reachable from a seed without crossing the
// boundary. The region at position i of seeds gets label i+1; order lists the
// positions in the sequence their fills run.
//
// Seed pixels are reserved for their own region before any fill starts. Fills
// move between 4-neighbors, wrapping around horizontally.
//
// If non-boundary pixels remain unlabeled, Fill returns the grid together
// with an *IncompletePartitionError.
func Fill(boundary *raster.BoundaryGrid, seeds []raster.PixelCoord, order []int) (*Grid, error) {
	if err := validate(boundary, seeds, order); err != nil {
		return nil, fmt.Errorf("Fill: %w", err)
	}

	g := newGrid(boundary.Width, boundary.Height)
	for pos, s := range seeds {
		g.cells[g.Index(s.X, s.Y)] = pos + 1
	}

	queue := make([]int, 0, len(g.cells)/len(seeds)+1)
	for _, pos := range order {
		lbl := pos + 1
		queue = append(queue[:0], g.Index(seeds[pos].X, seeds[pos].Y))
		for head := 0; head < len(queue); head++ {
			g.neighbors(queue[head], func(j int) {
				if g.cells[j] != Unassigned || boundary.AtIndex(j) {
					return
				}
				g.cells[j] = lbl
				queue = append(queue, j)
			})
		}
	}

	var missing []raster.PixelCoord
	for i, l := range g.cells {
		if l == Unassigned && !boundary.AtIndex(i) {
			missing = append(missing, raster.PixelCoord{X: i % g.Width, Y: i / g.Width})
		}
	}
	if len(missing) > 0 {
		return g, &IncompletePartitionError{Pixels: missing}
	}

	return g, nil
}

func validate(boundary *raster.BoundaryGrid, seeds []raster.PixelCoord, order []int) error {
	if boundary == nil {
		return fmt.Errorf("nil boundary grid: %w", errs.ErrInvalidArgument)
	}
	if len(seeds) == 0 {
		return fmt.Errorf("no seeds: %w", errs.ErrInvalidArgument)
	}
	if len(order) != len(seeds) {
		return fmt.Errorf("order has %d entries for %d seeds: %w", len(order), len(seeds), errs.ErrInvalidArgument)
	}

	seen := make([]bool, len(seeds))
	for _, pos := range order {
		if pos < 0 || pos >= len(seeds) || seen[pos] {
			return fmt.Errorf("order %v is not a permutation of [0 %d): %w", order, len(seeds), errs.ErrInvalidArgument)
		}
		seen[pos] = true
	}

	owner := make(map[raster.PixelCoord]int, len(seeds))
	for pos, s := range seeds {
		if !boundary.In(s) {
			return fmt.Errorf("seed %d at %v outside %dx%d grid: %w",
				pos, s, boundary.Width, boundary.Height, errs.ErrInvalidArgument)
		}
		if prev, ok := owner[s]; ok {
			return fmt.Errorf("seeds %d and %d share pixel (%d, %d): %w", prev, pos, s.X, s.Y, errs.ErrInvalidArgument)
		}
		owner[s] = pos
	}

	return nil
}
