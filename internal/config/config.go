// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package config reads the command line settings. Every flag defaults to a
// DISTRICTS_* environment variable, which may also come from a .env file in
// the working directory.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/2dChan/s2districts/internal/errs"
	"github.com/joho/godotenv"
)

const (
	DefaultCount        = 500
	DefaultDims         = "2048x1024"
	DefaultRelaxSteps   = 2
	DefaultOut          = "districts.png"
	DefaultTable        = "districts.csv"
	DefaultPreviewWidth = 1024
)

// Config is one invocation of the command.
type Config struct {
	Count      int
	Seed       int64
	Width      int
	Height     int
	Resolution int
	RelaxSteps int

	KeepBoundaries  bool
	KeepPockets     bool
	AllowIncomplete bool

	// NamesFile is a JSON syllable scheme; empty selects random
	// alphanumeric names.
	NamesFile string
	// NamesRule selects a named rule of the scheme instead of its default.
	NamesRule string

	Out          string
	Table        string
	TableHeader  bool
	Adjacency    string
	SVG          string
	Preview      string
	PreviewWidth int
}

// LoadDotEnv copies the variables of ./.env, if present, into the process
// environment. Variables already set are left alone.
func LoadDotEnv() {
	_ = godotenv.Load()
}

// Load loads .env if present, applies the environment defaults and parses
// args (without the program name) on top of them.
func Load(args []string) (Config, error) {
	LoadDotEnv()

	env := envReader{}
	c := Config{
		Count:           env.atoi("DISTRICTS_COUNT", DefaultCount),
		Seed:            env.parseInt64("DISTRICTS_SEED", 0),
		Resolution:      env.atoi("DISTRICTS_RESOLUTION", 0),
		RelaxSteps:      env.atoi("DISTRICTS_RELAX", DefaultRelaxSteps),
		KeepBoundaries:  env.parseBool("DISTRICTS_KEEP_BOUNDARIES", false),
		KeepPockets:     env.parseBool("DISTRICTS_KEEP_POCKETS", false),
		AllowIncomplete: env.parseBool("DISTRICTS_ALLOW_INCOMPLETE", false),
		NamesFile:       env.lookup("DISTRICTS_NAMES", ""),
		NamesRule:       env.lookup("DISTRICTS_NAMES_RULE", ""),
		Out:             env.lookup("DISTRICTS_OUT", DefaultOut),
		Table:           env.lookup("DISTRICTS_TABLE", DefaultTable),
		TableHeader:     env.parseBool("DISTRICTS_TABLE_HEADER", false),
		Adjacency:       env.lookup("DISTRICTS_ADJACENCY", ""),
		SVG:             env.lookup("DISTRICTS_SVG", ""),
		Preview:         env.lookup("DISTRICTS_PREVIEW", ""),
		PreviewWidth:    env.atoi("DISTRICTS_PREVIEW_WIDTH", DefaultPreviewWidth),
	}
	dims := env.lookup("DISTRICTS_DIMS", DefaultDims)
	if env.err != nil {
		return Config{}, fmt.Errorf("config: %w", env.err)
	}

	fs := newFlagSet(&c, &dims)
	fs.SetOutput(io.Discard)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return Config{}, err
		}
		return Config{}, fmt.Errorf("config: %v: %w", err, errs.ErrInvalidArgument)
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("config: unexpected arguments %q: %w", fs.Args(), errs.ErrInvalidArgument)
	}

	var err error
	if c.Width, c.Height, err = ParseDims(dims); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if c.Out == "" {
		return Config{}, fmt.Errorf("config: empty output path: %w", errs.ErrInvalidArgument)
	}
	return c, nil
}

// Usage writes the flags and their built-in defaults to w.
func Usage(w io.Writer) {
	c := Config{
		Count:        DefaultCount,
		RelaxSteps:   DefaultRelaxSteps,
		Out:          DefaultOut,
		Table:        DefaultTable,
		PreviewWidth: DefaultPreviewWidth,
	}
	dims := DefaultDims
	fs := newFlagSet(&c, &dims)
	fs.SetOutput(w)
	fmt.Fprintln(w, "Usage: s2districts [flags]")
	fs.PrintDefaults()
}

// newFlagSet binds the flags to c and dims, using their current values as
// defaults.
func newFlagSet(c *Config, dims *string) *flag.FlagSet {
	fs := flag.NewFlagSet("s2districts", flag.ContinueOnError)
	fs.IntVar(&c.Count, "count", c.Count, "Number of regions.")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "Random seed; equal seeds give equal maps.")
	fs.StringVar(dims, "dims", *dims, "Raster size as WIDTHxHEIGHT.")
	fs.IntVar(&c.Resolution, "resolution", c.Resolution, "Samples per cell edge; 0 uses the library default.")
	fs.IntVar(&c.RelaxSteps, "relax", c.RelaxSteps, "Lloyd relaxation rounds applied to the sites.")
	fs.BoolVar(&c.KeepBoundaries, "keep-boundaries", c.KeepBoundaries, "Leave boundary pixels transparent instead of merging them into regions.")
	fs.BoolVar(&c.KeepPockets, "keep-pockets", c.KeepPockets, "Do not seal enclosed pockets that hold no site; they stay unlabeled.")
	fs.BoolVar(&c.AllowIncomplete, "allow-incomplete", c.AllowIncomplete, "Warn instead of failing when pixels stay unlabeled.")
	fs.StringVar(&c.NamesFile, "names", c.NamesFile, "JSON syllable scheme for region names.")
	fs.StringVar(&c.NamesRule, "names-rule", c.NamesRule, "Named rule of the syllable scheme; empty uses its default rule.")
	fs.StringVar(&c.Out, "out", c.Out, "Output image (.png or .bmp).")
	fs.StringVar(&c.Table, "table", c.Table, "Output name/color CSV; empty skips it.")
	fs.BoolVar(&c.TableHeader, "table-header", c.TableHeader, "Write a header line to the CSV outputs.")
	fs.StringVar(&c.Adjacency, "adjacency", c.Adjacency, "Output region adjacency CSV.")
	fs.StringVar(&c.SVG, "svg", c.SVG, "Output SVG of the cell polygons.")
	fs.StringVar(&c.Preview, "preview", c.Preview, "Output labeled PNG preview.")
	fs.IntVar(&c.PreviewWidth, "preview-width", c.PreviewWidth, "Width of the preview in pixels.")
	return fs
}

// ParseDims parses "WIDTHxHEIGHT" into two positive integers.
func ParseDims(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return 0, 0, fmt.Errorf("ParseDims: %q is not WIDTHxHEIGHT: %w", s, errs.ErrInvalidArgument)
	}
	w, werr := strconv.Atoi(ws)
	h, herr := strconv.Atoi(hs)
	if werr != nil || herr != nil || w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("ParseDims: %q needs two positive integers: %w", s, errs.ErrInvalidArgument)
	}
	return w, h, nil
}

// envReader reads typed environment variables and keeps the first parse
// error.
type envReader struct {
	err error
}

func (e *envReader) lookup(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func (e *envReader) atoi(key string, def int) int {
	v := e.lookup(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		e.fail(key, v)
		return def
	}
	return n
}

func (e *envReader) parseInt64(key string, def int64) int64 {
	v := e.lookup(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		e.fail(key, v)
		return def
	}
	return n
}

func (e *envReader) parseBool(key string, def bool) bool {
	v := e.lookup(key, "")
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		e.fail(key, v)
		return def
	}
	return b
}

func (e *envReader) fail(key, v string) {
	if e.err == nil {
		e.err = fmt.Errorf("%s=%q: %w", key, v, errs.ErrInvalidArgument)
	}
}
