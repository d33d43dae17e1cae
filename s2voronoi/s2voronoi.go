// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package s2voronoi

import (
	"fmt"

	"github.com/2dChan/s2districts/s2delaunay"
	"github.com/golang/geo/s2"
)

const (
	defaultEps = 1e-12
)

// Diagram is a Voronoi diagram of sites on the unit sphere.
type Diagram struct {
	Sites    s2.PointVector
	Vertices s2.PointVector

	// NOTE: Sort in CCW per Cell(look out of sphere)
	CellVertices []int
	// NOTE: Sort in CCW per Cell(look out of sphere)
	CellNeighbors []int
	CellOffsets   []int

	opts DiagramOptions
}

type DiagramOptions struct {
	Eps float64
}

type DiagramOption func(*DiagramOptions) error

// WithEps sets the tolerance passed to the triangulation. It must be positive.
func WithEps(eps float64) DiagramOption {
	return func(o *DiagramOptions) error {
		if eps <= 0 {
			return fmt.Errorf("WithEps: eps must be positive, got %v", eps)
		}
		o.Eps = eps
		return nil
	}
}

// NewDiagram computes the Voronoi diagram of sites from their Delaunay
// triangulation. At least 4 sites are required.
func NewDiagram(sites s2.PointVector, setters ...DiagramOption) (*Diagram, error) {
	opts := DiagramOptions{
		Eps: defaultEps,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	dt, err := s2delaunay.NewTriangulation(sites, s2delaunay.WithEps(opts.Eps))
	if err != nil {
		return nil, err
	}

	numTriangles := len(dt.Triangles)
	numNeighbors := len(dt.IncidentTriangleIndices)
	d := &Diagram{
		Sites:         dt.Vertices,
		Vertices:      make(s2.PointVector, numTriangles),
		CellVertices:  dt.IncidentTriangleIndices,
		CellNeighbors: make([]int, numNeighbors),
		CellOffsets:   dt.IncidentTriangleOffsets,
		opts:          opts,
	}

	for i := range numTriangles {
		a, b, c := dt.TriangleVertices(i)
		d.Vertices[i] = s2.Point{Vector: triangleCircumcenter(a, b, c).Normalize()}
	}

	for vIdx := range dt.Vertices {
		offset := dt.IncidentTriangleOffsets[vIdx]
		it := dt.IncidentTriangles(vIdx)
		for i, tIdx := range it {
			d.CellNeighbors[offset+i] = s2delaunay.NextVertex(dt.Triangles[tIdx], vIdx)
		}
	}

	return d, nil
}

// NumCells returns the number of cells, one per site.
func (d *Diagram) NumCells() int {
	return len(d.Sites)
}

// Cell returns a view of the i-th cell.
func (d *Diagram) Cell(i int) (Cell, error) {
	if i < 0 || i >= d.NumCells() {
		return Cell{}, fmt.Errorf("Cell: index %d out of range [0 %d)", i, d.NumCells())
	}
	return Cell{idx: i, d: d}, nil
}

// Polygons returns the boundary of every cell as an ordered polygon, indexed
// like Sites.
func (d *Diagram) Polygons() []s2.PointVector {
	out := make([]s2.PointVector, d.NumCells())
	for i := range d.NumCells() {
		out[i] = Cell{idx: i, d: d}.Polygon()
	}
	return out
}

// Relax applies steps rounds of Lloyd relaxation: every site moves to the
// centroid of its cell and the diagram is rebuilt.
func (d *Diagram) Relax(steps int) error {
	if steps < 0 {
		return fmt.Errorf("Relax: steps must be non-negative, got %d", steps)
	}

	for range steps {
		sites := make(s2.PointVector, d.NumCells())
		for i := range d.NumCells() {
			sites[i] = Cell{idx: i, d: d}.Centroid()
		}

		nd, err := NewDiagram(sites, WithEps(d.opts.Eps))
		if err != nil {
			return fmt.Errorf("Relax: %w", err)
		}
		*d = *nd
	}

	return nil
}

func triangleCircumcenter(p1, p2, p3 s2.Point) s2.Point {
	v1 := p1.Sub(p2.Vector)
	v2 := p2.Sub(p3.Vector)

	circumcenter := v1.Cross(v2)

	if circumcenter.Dot(p1.Vector.Add(p2.Vector).Add(p3.Vector)) < 0 {
		circumcenter = circumcenter.Mul(-1)
	}

	return s2.Point{Vector: circumcenter}
}
