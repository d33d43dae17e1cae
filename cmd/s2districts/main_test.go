// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package main

import (
	"context"
	"errors"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/2dChan/s2districts/internal/config"
	"github.com/2dChan/s2districts/internal/errs"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	names := filepath.Join(dir, "names.json")
	if err := os.WriteFile(names, []byte(`{"rule": "{a}{b}", "rules": {"port": "Port {a}{b}"}, "syllables": {"a": ["Ka", "Lo", "Mi", "Su", "Te"], "b": ["ria", "dun", "vel", "mar"]}}`), 0o644); err != nil {
		t.Fatalf("WriteFile(%q) error = %v", names, err)
	}

	cfg := config.Config{
		Count:        4,
		Seed:         0,
		Width:        16,
		Height:       8,
		NamesFile:    names,
		NamesRule:    "port",
		Out:          filepath.Join(dir, "map.png"),
		Table:        filepath.Join(dir, "map.csv"),
		Adjacency:    filepath.Join(dir, "adj.csv"),
		SVG:          filepath.Join(dir, "cells.svg"),
		Preview:      filepath.Join(dir, "preview.png"),
		PreviewWidth: 32,
	}
	if err := run(cfg, slog.New(slog.DiscardHandler)); err != nil {
		t.Fatalf("run(...) error = %v, want nil", err)
	}

	f, err := os.Open(cfg.Out)
	if err != nil {
		t.Fatalf("Open(%q) error = %v", cfg.Out, err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode(...) error = %v, want nil", err)
	}
	if w, h := img.Bounds().Dx(), img.Bounds().Dy(); w != 16 || h != 8 {
		t.Errorf("image size = %dx%d, want 16x8", w, h)
	}

	table, err := os.ReadFile(cfg.Table)
	if err != nil {
		t.Fatalf("ReadFile(%q) error = %v", cfg.Table, err)
	}
	if got := strings.Count(string(table), "\n"); got != 4 {
		t.Errorf("table has %d lines, want 4:\n%s", got, table)
	}
	for _, line := range strings.Split(strings.TrimSpace(string(table)), "\n") {
		if !strings.HasPrefix(line, "Port ") {
			t.Errorf("table line %q does not use the port rule", line)
		}
	}

	for _, p := range []string{cfg.Adjacency, cfg.SVG, cfg.Preview} {
		if st, err := os.Stat(p); err != nil || st.Size() == 0 {
			t.Errorf("Stat(%q) = %v, %v, want a non-empty file", p, st, err)
		}
	}
}

func TestRun_UnsupportedImageFormat(t *testing.T) {
	cfg := config.Config{Count: 4, Width: 16, Height: 8, Out: filepath.Join(t.TempDir(), "map.gif")}
	if err := run(cfg, slog.New(slog.DiscardHandler)); !errors.Is(err, errs.ErrInvalidArgument) {
		t.Errorf("run(...) error = %v, want ErrInvalidArgument", err)
	}
}

func TestRun_MissingNamesFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Config{
		Count:     4,
		Width:     16,
		Height:    8,
		NamesFile: filepath.Join(dir, "missing.json"),
		Out:       filepath.Join(dir, "map.png"),
	}
	if err := run(cfg, slog.New(slog.DiscardHandler)); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("run(...) error = %v, want os.ErrNotExist", err)
	}
}

func TestSetup_ReadsDotEnv(t *testing.T) {
	for _, k := range []string{"LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_LEVEL=debug\nLOG_FORMAT=json\n"), 0o644); err != nil {
		t.Fatalf("WriteFile(.env) error = %v", err)
	}
	t.Chdir(dir)

	l := setup()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("setup(): debug level disabled, want LOG_LEVEL from .env")
	}
	if _, ok := l.Handler().(*slog.JSONHandler); !ok {
		t.Error("setup(): handler is not a JSONHandler, want LOG_FORMAT from .env")
	}
}
