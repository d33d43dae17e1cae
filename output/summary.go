// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package output

import (
	"github.com/2dChan/s2districts/label"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the pixel areas of a partition.
type Summary struct {
	Regions    int
	Pixels     int
	Unassigned int
	MeanArea   float64
	StdDevArea float64
	MinArea    float64
	MaxArea    float64
}

// Summarize computes area statistics over the numRegions regions of labels.
func Summarize(labels *label.Grid, numRegions int) Summary {
	areas := labels.Areas(numRegions)
	s := Summary{
		Regions:    numRegions,
		Pixels:     labels.Width * labels.Height,
		Unassigned: areas[label.Unassigned],
	}
	if numRegions == 0 {
		return s
	}

	xs := make([]float64, numRegions)
	for i, a := range areas[1:] {
		xs[i] = float64(a)
	}
	s.MeanArea = stat.Mean(xs, nil)
	if numRegions > 1 {
		s.StdDevArea = stat.StdDev(xs, nil)
	}
	s.MinArea = floats.Min(xs)
	s.MaxArea = floats.Max(xs)
	return s
}
