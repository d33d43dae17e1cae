// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Command s2districts generates a district map of the sphere: an
// equirectangular image with one color per region and a CSV of region names
// and colors.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/2dChan/s2districts"
	"github.com/2dChan/s2districts/identity"
	"github.com/2dChan/s2districts/internal/config"
	"github.com/2dChan/s2districts/internal/logger"
	"github.com/2dChan/s2districts/output"
)

func main() {
	l := setup()

	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		config.Usage(os.Stderr)
		return
	}
	if err != nil {
		l.Error("config_error", "err", err)
		config.Usage(os.Stderr)
		os.Exit(1)
	}

	if err := run(cfg, l); err != nil {
		l.Error("run_error", "err", err)
		os.Exit(1)
	}
}

// setup loads .env before building the logger so that LOG_LEVEL and
// LOG_FORMAT may come from it.
func setup() *slog.Logger {
	config.LoadDotEnv()
	return logger.Setup()
}

func run(cfg config.Config, l *slog.Logger) error {
	format, err := output.FormatFromPath(cfg.Out)
	if err != nil {
		return err
	}

	var scheme identity.Scheme
	if cfg.NamesFile != "" {
		s, err := loadScheme(cfg.NamesFile, cfg.NamesRule)
		if err != nil {
			return err
		}
		scheme = s
	}

	l.Debug("config_loaded",
		"count", cfg.Count,
		"seed", cfg.Seed,
		"width", cfg.Width,
		"height", cfg.Height,
		"relax", cfg.RelaxSteps,
		"keep_pockets", cfg.KeepPockets,
	)
	res, err := s2districts.Generate(s2districts.Config{
		Count:           cfg.Count,
		Seed:            cfg.Seed,
		Width:           cfg.Width,
		Height:          cfg.Height,
		Resolution:      cfg.Resolution,
		RelaxSteps:      cfg.RelaxSteps,
		KeepBoundaries:  cfg.KeepBoundaries,
		KeepPockets:     cfg.KeepPockets,
		AllowIncomplete: cfg.AllowIncomplete,
		Scheme:          scheme,
		Logger:          l,
	})
	if err != nil {
		return err
	}

	if err := writeFile(cfg.Out, func(w io.Writer) error {
		return output.WriteImage(w, res.Image, format)
	}); err != nil {
		return err
	}
	l.Info("image_written", "path", cfg.Out, "format", format)

	if cfg.Table != "" {
		if err := writeFile(cfg.Table, func(w io.Writer) error {
			return output.WriteTable(w, res.Table, cfg.TableHeader)
		}); err != nil {
			return err
		}
		l.Info("table_written", "path", cfg.Table, "rows", len(res.Table))
	}

	if cfg.Adjacency != "" {
		rows := output.AdjacencyTable(res.Adjacency, res.Regions)
		if err := writeFile(cfg.Adjacency, func(w io.Writer) error {
			return output.WriteAdjacency(w, rows, cfg.TableHeader)
		}); err != nil {
			return err
		}
		l.Info("adjacency_written", "path", cfg.Adjacency)
	}

	if cfg.SVG != "" {
		if err := writeFile(cfg.SVG, func(w io.Writer) error {
			return output.WriteSVG(w, cfg.Width, cfg.Height, res.Polygons, res.Regions, res.Sites)
		}); err != nil {
			return err
		}
		l.Info("svg_written", "path", cfg.SVG)
	}

	if cfg.Preview != "" {
		if err := writeFile(cfg.Preview, func(w io.Writer) error {
			return output.WritePreview(w, res.Image, res.Regions, cfg.PreviewWidth)
		}); err != nil {
			return err
		}
		l.Info("preview_written", "path", cfg.Preview, "width", cfg.PreviewWidth)
	}

	s := res.Summary
	l.Info("summary",
		"regions", s.Regions,
		"pixels", s.Pixels,
		"unassigned", s.Unassigned,
		"mean_area", s.MeanArea,
		"stddev_area", s.StdDevArea,
		"min_area", s.MinArea,
		"max_area", s.MaxArea,
	)
	return nil
}

func loadScheme(path, rule string) (*identity.SyllableScheme, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loadScheme: %w", err)
	}
	defer f.Close()
	return identity.LoadSyllableScheme(f, rule)
}

// writeFile creates path and hands it to write. The file is closed before
// returning and a close error is reported when write succeeded.
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writeFile: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("writeFile: %w", cerr)
		}
	}()

	if err := write(f); err != nil {
		return fmt.Errorf("writeFile %s: %w", path, err)
	}
	return nil
}
