// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package output

import (
	"fmt"
	"image"
	"io"

	"github.com/2dChan/s2districts/identity"
	"github.com/2dChan/s2districts/internal/errs"
	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// WritePreview scales img to the given width (nearest neighbor, keeping the
// aspect ratio), marks every region's seed and writes its name above it, and
// encodes the result as PNG.
func WritePreview(w io.Writer, img image.Image, regions []identity.Region, width int) error {
	if width <= 0 {
		return fmt.Errorf("WritePreview: width %d must be positive: %w", width, errs.ErrInvalidArgument)
	}

	scaled := imaging.Resize(img, width, 0, imaging.NearestNeighbor)
	sx := float64(scaled.Bounds().Dx()) / float64(img.Bounds().Dx())
	sy := float64(scaled.Bounds().Dy()) / float64(img.Bounds().Dy())

	dc := gg.NewContextForImage(scaled)
	dc.SetRGB(0, 0, 0)
	for _, reg := range regions {
		x := (float64(reg.Seed.X) + 0.5) * sx
		y := (float64(reg.Seed.Y) + 0.5) * sy
		dc.DrawCircle(x, y, 2)
		dc.Fill()
		dc.DrawStringAnchored(reg.Name, x, y-4, 0.5, 0)
	}

	return dc.EncodePNG(w)
}
