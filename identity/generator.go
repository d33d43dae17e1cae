// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package identity

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/2dChan/s2districts/internal/errs"
	"github.com/2dChan/s2districts/raster"
)

const (
	// DefaultMaxAttempts is the number of candidates drawn per region before
	// name generation gives up.
	DefaultMaxAttempts = 64
)

// Generator issues region names that are unique within one run.
type Generator struct {
	r      *rand.Rand
	opts   GeneratorOptions
	issued map[string]struct{}
}

type GeneratorOptions struct {
	Scheme      Scheme
	MaxAttempts int
}

type GeneratorOption func(*GeneratorOptions) error

// WithScheme sets the naming scheme.
func WithScheme(s Scheme) GeneratorOption {
	return func(o *GeneratorOptions) error {
		if s == nil {
			return fmt.Errorf("WithScheme: nil scheme: %w", errs.ErrInvalidArgument)
		}
		o.Scheme = s
		return nil
	}
}

// WithMaxAttempts sets the number of candidates tried per region.
func WithMaxAttempts(n int) GeneratorOption {
	return func(o *GeneratorOptions) error {
		if n <= 0 {
			return fmt.Errorf("WithMaxAttempts: attempts must be positive, got %d: %w", n, errs.ErrInvalidArgument)
		}
		o.MaxAttempts = n
		return nil
	}
}

// NewGenerator returns a Generator drawing from r. The caller keeps
// ownership of r; the generator holds no randomness of its own.
func NewGenerator(r *rand.Rand, setters ...GeneratorOption) (*Generator, error) {
	if r == nil {
		return nil, errors.New("NewGenerator: nil random source")
	}

	opts := GeneratorOptions{
		Scheme:      AlnumScheme{},
		MaxAttempts: DefaultMaxAttempts,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	return &Generator{r: r, opts: opts, issued: make(map[string]struct{})}, nil
}

// Name returns a name for the region with the given index that no earlier
// call has returned. Empty and colliding candidates are redrawn.
func (g *Generator) Name(index int) (string, error) {
	for range g.opts.MaxAttempts {
		name := g.opts.Scheme.Name(g.r)
		if name == "" {
			continue
		}
		if _, ok := g.issued[name]; ok {
			continue
		}
		g.issued[name] = struct{}{}
		return name, nil
	}
	return "", fmt.Errorf("Name: region %d: no unique name after %d attempts: %w",
		index, g.opts.MaxAttempts, errs.ErrNameGenerationExhausted)
}

// Regions returns one region per seed: the seed at position i becomes the
// region with index i+1.
func (g *Generator) Regions(seeds []raster.PixelCoord) ([]Region, error) {
	out := make([]Region, len(seeds))
	for i, s := range seeds {
		c, err := ColorFor(i + 1)
		if err != nil {
			return nil, fmt.Errorf("Regions: %w", err)
		}
		name, err := g.Name(i + 1)
		if err != nil {
			return nil, fmt.Errorf("Regions: %w", err)
		}
		out[i] = Region{Index: i + 1, Seed: s, Name: name, Color: c}
	}
	return out, nil
}
