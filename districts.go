// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package s2districts partitions the unit sphere into named, uniquely colored
// regions and renders the partition as an equirectangular raster.
//
// Generate runs the whole pipeline once: random sites are sampled on the
// sphere, their spherical Voronoi cells are traced onto a boundary raster,
// the raster is flood-filled from every site's pixel, and each region gets a
// name and a color derived from its index.
//
// The raster treats the sphere as a rectangle that wraps around horizontally
// and is clamped at the poles. Regions touching the poles may therefore show
// seam artifacts.
package s2districts

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"math/rand"

	"github.com/2dChan/s2districts/identity"
	"github.com/2dChan/s2districts/internal/errs"
	"github.com/2dChan/s2districts/label"
	"github.com/2dChan/s2districts/output"
	"github.com/2dChan/s2districts/raster"
	"github.com/2dChan/s2districts/s2voronoi"
	"github.com/2dChan/s2districts/utils"
	"github.com/golang/geo/s2"
)

var (
	ErrInvalidArgument         = errs.ErrInvalidArgument
	ErrNameGenerationExhausted = errs.ErrNameGenerationExhausted
	ErrIncompletePartition     = errs.ErrIncompletePartition
)

// MinRegions is the smallest region count the sphere partition accepts.
const MinRegions = 4

// Config holds the parameters of one run.
type Config struct {
	Count  int
	Seed   int64
	Width  int
	Height int

	// Resolution is the number of samples per cell edge. Zero selects
	// raster.DefaultResolution.
	Resolution int
	// RelaxSteps is the number of Lloyd relaxation rounds applied to the
	// sites before rasterization.
	RelaxSteps int

	// KeepBoundaries leaves boundary pixels unassigned instead of merging
	// them into a neighboring region.
	KeepBoundaries bool
	// KeepPockets skips sealing of boundary-enclosed pockets that contain no
	// site. Their pixels then stay unreached by the fill.
	KeepPockets bool
	// AllowIncomplete turns unreached pixels into a warning instead of an
	// error. They are listed in Result.Unlabeled.
	AllowIncomplete bool

	// Scheme names the regions. Nil selects identity.AlnumScheme.
	Scheme identity.Scheme
	// MaxNameAttempts bounds the candidates drawn per region. Zero selects
	// identity.DefaultMaxAttempts.
	MaxNameAttempts int

	// Logger receives progress events. Nil discards them.
	Logger *slog.Logger
}

// Result is the partition produced by Generate.
type Result struct {
	Sites    s2.PointVector
	Polygons []s2.PointVector
	Boundary *raster.BoundaryGrid
	Labels   *label.Grid
	Regions  []identity.Region
	Image    *image.NRGBA
	Table    []output.Row

	// Adjacency lists, per region index, the indices of touching regions.
	// It is taken from the absorbed grid even with KeepBoundaries, since
	// kept boundary pixels would otherwise separate every pair of regions.
	Adjacency map[int][]int
	// Components counts the connected pieces of every region on the
	// absorbed grid.
	Components map[int]int
	// Sealed lists the pocket pixels marked as boundary before the fill.
	Sealed []raster.PixelCoord
	// Unlabeled lists the non-boundary pixels no fill reached.
	Unlabeled []raster.PixelCoord

	Summary output.Summary
}

// Generate partitions the sphere into cfg.Count regions. The same Config
// always yields the same Result.
func Generate(cfg Config) (*Result, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	//nolint:gosec
	rng := rand.New(rand.NewSource(cfg.Seed))

	sites, err := utils.RandomPoints(rng, cfg.Count)
	if err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}
	d, err := s2voronoi.NewDiagram(sites)
	if err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}
	if err := d.Relax(cfg.RelaxSteps); err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}
	log.Debug("diagram_built", "cells", d.NumCells(), "vertices", len(d.Vertices), "relax_steps", cfg.RelaxSteps)

	var ropts []raster.RasterizerOption
	if cfg.Resolution != 0 {
		ropts = append(ropts, raster.WithResolution(cfg.Resolution))
	}
	rz, err := raster.NewRasterizer(cfg.Width, cfg.Height, ropts...)
	if err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}
	polygons := d.Polygons()
	boundary, err := rz.Rasterize(polygons)
	if err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}
	log.Debug("boundary_rasterized", "pixels", boundary.Count(), "resolution", rz.Resolution())

	seeds := make([]raster.PixelCoord, len(d.Sites))
	for i, s := range d.Sites {
		seeds[i] = rz.Pixel(s)
	}

	var sealed []raster.PixelCoord
	if !cfg.KeepPockets {
		sealed = boundary.SealPockets(seeds)
		if len(sealed) > 0 {
			log.Debug("pockets_sealed", "pixels", len(sealed), "first_x", sealed[0].X, "first_y", sealed[0].Y)
		}
	}

	labels, err := label.Fill(boundary, seeds, label.AscendingOrder(len(seeds)))
	unlabeled, err := checkPartition(err, cfg.AllowIncomplete, log)
	if err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}
	absorbed := label.AbsorbBoundaries(labels, boundary)
	if !cfg.KeepBoundaries {
		labels = absorbed
	}

	gopts := []identity.GeneratorOption{}
	if cfg.Scheme != nil {
		gopts = append(gopts, identity.WithScheme(cfg.Scheme))
	}
	if cfg.MaxNameAttempts != 0 {
		gopts = append(gopts, identity.WithMaxAttempts(cfg.MaxNameAttempts))
	}
	gen, err := identity.NewGenerator(rng, gopts...)
	if err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}
	regions, err := gen.Regions(seeds)
	if err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}

	img, err := output.Render(labels, regions)
	if err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}

	res := &Result{
		Sites:      d.Sites,
		Polygons:   polygons,
		Boundary:   boundary,
		Labels:     labels,
		Regions:    regions,
		Image:      img,
		Table:      output.Table(regions),
		Adjacency:  label.Adjacency(absorbed),
		Components: label.Components(absorbed),
		Sealed:     sealed,
		Unlabeled:  unlabeled,
		Summary:    output.Summarize(labels, len(regions)),
	}

	for idx, n := range res.Components {
		if n > 1 {
			log.Warn("region_split", "region", regions[idx-1].Name, "index", idx, "components", n)
		}
	}
	log.Info("districts_generated",
		"regions", len(regions),
		"width", cfg.Width,
		"height", cfg.Height,
		"boundary_pixels", boundary.Count(),
		"sealed", len(sealed),
		"unlabeled", len(unlabeled),
		"mean_area", res.Summary.MeanArea,
	)

	return res, nil
}

// checkPartition turns the fill error into the unreached pixels when
// incomplete partitions are allowed.
func checkPartition(err error, allowIncomplete bool, log *slog.Logger) ([]raster.PixelCoord, error) {
	if err == nil {
		return nil, nil
	}
	var ipe *label.IncompletePartitionError
	if !errors.As(err, &ipe) || !allowIncomplete {
		return nil, err
	}
	log.Warn("partition_incomplete", "pixels", len(ipe.Pixels), "first_x", ipe.Pixels[0].X, "first_y", ipe.Pixels[0].Y)
	return ipe.Pixels, nil
}

func (cfg Config) validate() error {
	if cfg.Count < MinRegions || cfg.Count > identity.MaxRegions {
		return fmt.Errorf("count %d outside [%d %d]: %w", cfg.Count, MinRegions, identity.MaxRegions, ErrInvalidArgument)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("dimensions %dx%d must be positive: %w", cfg.Width, cfg.Height, ErrInvalidArgument)
	}
	if cfg.Resolution < 0 {
		return fmt.Errorf("resolution %d must not be negative: %w", cfg.Resolution, ErrInvalidArgument)
	}
	if cfg.RelaxSteps < 0 {
		return fmt.Errorf("relax steps %d must not be negative: %w", cfg.RelaxSteps, ErrInvalidArgument)
	}
	if cfg.MaxNameAttempts < 0 {
		return fmt.Errorf("max name attempts %d must not be negative: %w", cfg.MaxNameAttempts, ErrInvalidArgument)
	}
	return nil
}
