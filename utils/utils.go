// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides utility functions for generating and manipulating S2 points for Voronoi diagrams.

package utils

import (
	"fmt"
	"math/rand"

	"github.com/2dChan/s2districts/internal/errs"
	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
)

// Draws shorter than this (squared) are redrawn instead of normalized.
const minNorm2 = 1e-12

// RandomPoints draws cnt uniformly distributed points on the S2 sphere from r.
// Each point is three uniform values in [-1, 1] normalized to unit length;
// near-zero draws are rejected and redrawn.
func RandomPoints(r *rand.Rand, cnt int) (s2.PointVector, error) {
	if cnt <= 0 {
		return nil, fmt.Errorf("RandomPoints: count %d must be positive: %w", cnt, errs.ErrInvalidArgument)
	}

	sites := make(s2.PointVector, cnt)
	for i := range cnt {
		var v r3.Vector
		for {
			v = r3.Vector{
				X: r.Float64()*2 - 1,
				Y: r.Float64()*2 - 1,
				Z: r.Float64()*2 - 1,
			}
			if v.Norm2() >= minNorm2 {
				break
			}
		}
		sites[i] = s2.Point{Vector: v.Normalize()}
	}

	return sites, nil
}

// GenerateRandomPoints generates a vector of random points on the S2 sphere.
// The seed parameter ensures reproducibility.
func GenerateRandomPoints(cnt int, seed int64) (s2.PointVector, error) {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	return RandomPoints(random, cnt)
}
