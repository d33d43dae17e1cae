// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package output turns a labeled partition into images and tables.
package output

import (
	"fmt"
	"image"
	"image/color"

	"github.com/2dChan/s2districts/identity"
	"github.com/2dChan/s2districts/internal/errs"
	"github.com/2dChan/s2districts/label"
)

// Unassigned is the color of pixels outside every region. It is fully
// transparent, while region colors are opaque, so the two never coincide.
var Unassigned = color.NRGBA{}

// Render paints every pixel of labels with its region's color.
// regions[i] must be the region with index i+1.
func Render(labels *label.Grid, regions []identity.Region) (*image.NRGBA, error) {
	palette, err := newPalette(regions)
	if err != nil {
		return nil, fmt.Errorf("Render: %w", err)
	}

	img := image.NewNRGBA(image.Rect(0, 0, labels.Width, labels.Height))
	for y := range labels.Height {
		for x := range labels.Width {
			l := labels.At(x, y)
			if l < 0 || l >= len(palette) {
				return nil, fmt.Errorf("Render: pixel (%d, %d) has label %d, want [0 %d]: %w",
					x, y, l, len(regions), errs.ErrInvalidArgument)
			}
			img.SetNRGBA(x, y, palette[l])
		}
	}
	return img, nil
}

// newPalette maps labels to colors; entry 0 is Unassigned.
func newPalette(regions []identity.Region) ([]color.NRGBA, error) {
	palette := make([]color.NRGBA, len(regions)+1)
	palette[label.Unassigned] = Unassigned
	for i, reg := range regions {
		if reg.Index != i+1 {
			return nil, fmt.Errorf("region at position %d has index %d, want %d: %w",
				i, reg.Index, i+1, errs.ErrInvalidArgument)
		}
		palette[reg.Index] = reg.Color.NRGBA()
	}
	return palette, nil
}
