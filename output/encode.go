// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package output

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/2dChan/s2districts/internal/errs"
	"golang.org/x/image/bmp"
)

// Format is an image file format.
type Format int

const (
	PNG Format = iota
	BMP
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case BMP:
		return "bmp"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return PNG, nil
	case ".bmp":
		return BMP, nil
	}
	return 0, fmt.Errorf("FormatFromPath: unsupported image extension %q: %w", filepath.Ext(path), errs.ErrInvalidArgument)
}

// WriteImage encodes img to w.
func WriteImage(w io.Writer, img image.Image, f Format) error {
	switch f {
	case PNG:
		return png.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	}
	return fmt.Errorf("WriteImage: unknown format %v: %w", f, errs.ErrInvalidArgument)
}
