// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package output

import (
	"fmt"
	"io"
	"math"

	"github.com/2dChan/s2districts/identity"
	"github.com/2dChan/s2districts/internal/errs"
	"github.com/2dChan/s2districts/raster"
	svg "github.com/ajstarks/svgo"
	"github.com/golang/geo/s2"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	svgBackgroundStyle = "fill:rgb(255,255,255)"
	svgStrokeStyle     = "stroke:rgb(170,170,170);stroke-width:1;stroke-opacity:1.0"
	svgSiteStyle       = "fill:rgb(255,0,0)"
	svgTextStyle       = "font-family:sans-serif;font-size:10px;text-anchor:middle;fill:rgb(0,0,0)"
)

// WriteSVG draws the cell polygons filled with their region colors, the
// sites and the region names as an equirectangular SVG. polygons, regions
// and sites are indexed alike.
func WriteSVG(w io.Writer, width, height int, polygons []s2.PointVector, regions []identity.Region, sites s2.PointVector) error {
	if len(polygons) != len(regions) || len(sites) != len(regions) {
		return fmt.Errorf("WriteSVG: %d polygons, %d regions and %d sites: %w",
			len(polygons), len(regions), len(sites), errs.ErrInvalidArgument)
	}

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, svgBackgroundStyle)

	xPoints := make([]int, 0)
	yPoints := make([]int, 0)
	for i, poly := range polygons {
		xPoints = xPoints[:0]
		yPoints = yPoints[:0]

		// Cells reaching more than half a turn in longitude from their site
		// wrap across the seam and are left out.
		draw := true
		sTheta := raster.Project(sites[i]).Theta
		for _, v := range poly {
			ll := raster.Project(v)
			if math.Abs(ll.Theta-sTheta) > math.Pi {
				draw = false
				break
			}

			x, y := toScreen(ll, width, height)
			xPoints = append(xPoints, x)
			yPoints = append(yPoints, y)
		}

		if draw {
			canvas.Polygon(xPoints, yPoints, "fill:"+hexColor(regions[i].Color)+";"+svgStrokeStyle)
		}
	}

	for i, site := range sites {
		p := raster.ToPixel(raster.Project(site), width, height)
		canvas.Circle(p.X, p.Y, 2, svgSiteStyle)
		canvas.Text(p.X, p.Y-4, regions[i].Name, svgTextStyle)
	}
	canvas.End()

	return ew.err
}

// toScreen rounds like raster.ToPixel but does not clamp, so polygons may
// reach just past the edges.
func toScreen(ll raster.LatLon, width, height int) (int, int) {
	x := math.Round((ll.Theta/math.Pi + 1) * float64(width) / 2)
	y := math.Round(ll.Phi / math.Pi * float64(height))
	return int(x), int(y)
}

func hexColor(c identity.Color) string {
	cf, _ := colorful.MakeColor(c.NRGBA())
	return cf.Hex()
}

// errWriter keeps the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
