// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package raster draws spherical cell boundaries onto an equirectangular
// pixel grid.
//
// The grid is periodic horizontally and clamped vertically: the poles are
// the top and bottom rows, not wrapped. This is an approximation of the
// sphere's topology and can leave artifacts close to the poles.
package raster

import (
	"fmt"
	"math"

	"github.com/2dChan/s2districts/internal/errs"
	"github.com/golang/geo/s2"
)

const (
	// DefaultResolution is the number of interpolation steps per edge.
	DefaultResolution = 256

	minPolygonVertices = 3
)

// Rasterizer samples great-circle edges and marks the pixels they cross.
//
// Resolution trades seam thinness against cost: more steps follow the arc
// more closely, fewer steps are faster. Gaps between consecutive samples are
// always bridged, so a low resolution never opens a seam.
type Rasterizer struct {
	Width, Height int

	opts RasterizerOptions
}

type RasterizerOptions struct {
	Resolution int
}

type RasterizerOption func(*RasterizerOptions) error

// WithResolution sets the number of interpolation steps per edge.
func WithResolution(steps int) RasterizerOption {
	return func(o *RasterizerOptions) error {
		if steps <= 0 {
			return fmt.Errorf("WithResolution: steps must be positive, got %d: %w", steps, errs.ErrInvalidArgument)
		}
		o.Resolution = steps
		return nil
	}
}

// NewRasterizer returns a Rasterizer for a width x height grid.
func NewRasterizer(width, height int, setters ...RasterizerOption) (*Rasterizer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("NewRasterizer: dimensions %dx%d must be positive: %w",
			width, height, errs.ErrInvalidArgument)
	}

	opts := RasterizerOptions{
		Resolution: DefaultResolution,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	return &Rasterizer{Width: width, Height: height, opts: opts}, nil
}

// Resolution returns the number of interpolation steps per edge.
func (r *Rasterizer) Resolution() int {
	return r.opts.Resolution
}

// Pixel returns the grid pixel containing p.
func (r *Rasterizer) Pixel(p s2.Point) PixelCoord {
	return ToPixel(Project(p), r.Width, r.Height)
}

// Rasterize marks every pixel crossed by an edge of polygons. Each polygon is
// closed, its last vertex connects back to the first. All polygons are
// validated before any pixel is marked.
func (r *Rasterizer) Rasterize(polygons []s2.PointVector) (*BoundaryGrid, error) {
	for i, poly := range polygons {
		if err := validatePolygon(poly); err != nil {
			return nil, fmt.Errorf("Rasterize: polygon %d: %w", i, err)
		}
	}

	g, err := NewBoundaryGrid(r.Width, r.Height)
	if err != nil {
		return nil, err
	}

	for _, poly := range polygons {
		n := len(poly)
		for i := range n {
			r.Trace(poly[i], poly[(i+1)%n], g.Mark)
		}
	}

	return g, nil
}

// Trace walks the great-circle arc from a to b and calls visit for each
// pixel on it, starting with a's pixel. Consecutive visited pixels differ by
// at most one column (wrapping around) and one row.
func (r *Rasterizer) Trace(a, b s2.Point, visit func(PixelCoord)) {
	prev := r.Pixel(a)
	visit(prev)

	steps := r.opts.Resolution
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		cur := r.Pixel(s2.Interpolate(t, a, b))
		if cur == prev {
			continue
		}
		r.bridge(prev, cur, visit)
		prev = cur
	}
}

// bridge visits the pixels after from up to and including to along a straight
// grid walk, going the shorter way around horizontally.
func (r *Rasterizer) bridge(from, to PixelCoord, visit func(PixelCoord)) {
	dx := WrapDelta(from.X, to.X, r.Width)
	dy := to.Y - from.Y
	n := max(abs(dx), abs(dy))
	for k := 1; k <= n; k++ {
		f := float64(k) / float64(n)
		visit(PixelCoord{
			X: Wrap(from.X+int(math.Round(float64(dx)*f)), r.Width),
			Y: from.Y + int(math.Round(float64(dy)*f)),
		})
	}
}

func validatePolygon(poly s2.PointVector) error {
	if len(poly) < minPolygonVertices {
		return fmt.Errorf("%d vertices, want at least %d: %w", len(poly), minPolygonVertices, errs.ErrInvalidArgument)
	}
	for j, p := range poly {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsNaN(p.Z) || p.Norm2() == 0 {
			return fmt.Errorf("vertex %d is not on the sphere: %w", j, errs.ErrInvalidArgument)
		}
	}
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
