// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package identity assigns names and colors to regions.
package identity

import (
	"fmt"
	"image/color"

	"github.com/2dChan/s2districts/internal/errs"
	"github.com/2dChan/s2districts/raster"
)

// MaxRegions is the largest region index that has a color of its own.
const MaxRegions = 1<<24 - 1

// Color is a region color. Distinct region indices map to distinct colors.
type Color struct {
	R, G, B uint8
}

// ColorFor returns the color of the region with 1-based index: the index
// written as a three digit base-256 number, most significant digit red.
func ColorFor(index int) (Color, error) {
	if index < 1 || index > MaxRegions {
		return Color{}, fmt.Errorf("ColorFor: index %d out of range [1 %d]: %w", index, MaxRegions, errs.ErrInvalidArgument)
	}
	return Color{
		R: uint8(index >> 16),
		G: uint8(index >> 8),
		B: uint8(index),
	}, nil
}

// NRGBA returns c as an opaque color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Region is one district: its label in the label grid, the pixel of its seed
// point, a unique name and a unique color.
type Region struct {
	Index int
	Seed  raster.PixelCoord
	Name  string
	Color Color
}
