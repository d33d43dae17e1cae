// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package raster

import (
	"math"

	"github.com/golang/geo/s2"
)

// LatLon is a point in spherical coordinates: Theta is the longitude in
// (-π, π], Phi the colatitude in [0, π] measured from the +Z pole.
type LatLon struct {
	Theta float64
	Phi   float64
}

// PixelCoord is a pixel position in an equirectangular grid.
type PixelCoord struct {
	X, Y int
}

// Project converts a point on the unit sphere to spherical coordinates.
func Project(p s2.Point) LatLon {
	return LatLon{
		Theta: math.Atan2(p.Y, p.X),
		Phi:   math.Atan2(math.Hypot(p.X, p.Y), p.Z),
	}
}

// ToPixel maps ll onto a width x height equirectangular grid. Both axes are
// clamped, so θ = -π lands in column 0 and θ = π in column width-1; the two
// columns are neighbors under the grid's horizontal wraparound.
func ToPixel(ll LatLon, width, height int) PixelCoord {
	x := int(math.Round((ll.Theta/math.Pi + 1) * float64(width) / 2))
	y := int(math.Round(ll.Phi / math.Pi * float64(height)))
	return PixelCoord{
		X: clamp(x, 0, width-1),
		Y: clamp(y, 0, height-1),
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// WrapDelta returns the shortest signed horizontal step from x0 to x1 on a
// grid whose columns wrap around.
func WrapDelta(x0, x1, width int) int {
	d := x1 - x0
	if d > width/2 {
		d -= width
	} else if d < -width/2 {
		d += width
	}
	return d
}

// Wrap returns x modulo width in [0, width).
func Wrap(x, width int) int {
	return (x%width + width) % width
}
