// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package errs holds the error kinds shared by the district pipeline stages.
package errs

import "errors"

var (
	// ErrInvalidArgument reports non-positive counts or dimensions,
	// degenerate polygons and other unusable input.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNameGenerationExhausted reports that no unique name was found
	// within the retry budget.
	ErrNameGenerationExhausted = errors.New("name generation exhausted")

	// ErrIncompletePartition reports pixels left unlabeled after all fills.
	ErrIncompletePartition = errors.New("incomplete partition")
)
