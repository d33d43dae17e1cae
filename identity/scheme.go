// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package identity

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"slices"
	"strings"

	"github.com/2dChan/s2districts/internal/errs"
)

// Scheme produces candidate region names. Name must draw all randomness from
// r so that runs are reproducible.
type Scheme interface {
	Name(r *rand.Rand) string
}

const alnum = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// AlnumScheme builds names from random uppercase alphanumeric segments, such
// as "K3QZ-8TAM". Zero fields take the defaults 2 segments, 4 characters and
// "-".
type AlnumScheme struct {
	Segments  int
	Length    int
	Separator string
}

func (s AlnumScheme) Name(r *rand.Rand) string {
	segments, length, sep := s.Segments, s.Length, s.Separator
	if segments <= 0 {
		segments = 2
	}
	if length <= 0 {
		length = 4
	}
	if sep == "" {
		sep = "-"
	}

	var b strings.Builder
	for i := range segments {
		if i > 0 {
			b.WriteString(sep)
		}
		for range length {
			b.WriteByte(alnum[r.Intn(len(alnum))])
		}
	}
	return b.String()
}

// SyllableScheme fills the {key} placeholders of Rule with a random entry of
// Syllables[key]. Every key draws once per name, in sorted key order, whether
// or not the rule uses it. Rules holds named alternatives to Rule; Select
// picks one.
type SyllableScheme struct {
	Rule      string              `json:"rule"`
	Rules     map[string]string   `json:"rules,omitempty"`
	Syllables map[string][]string `json:"syllables"`
}

// Select returns a copy of s whose Rule is Rules[name].
func (s SyllableScheme) Select(name string) (*SyllableScheme, error) {
	rule, ok := s.Rules[name]
	if !ok {
		return nil, fmt.Errorf("Select: unknown rule %q: %w", name, errs.ErrInvalidArgument)
	}
	s.Rule = rule
	return &s, nil
}

func (s SyllableScheme) Name(r *rand.Rand) string {
	keys := make([]string, 0, len(s.Syllables))
	for k := range s.Syllables {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	pairs := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		list := s.Syllables[k]
		sy := ""
		if len(list) > 0 {
			sy = list[r.Intn(len(list))]
		}
		pairs = append(pairs, "{"+k+"}", sy)
	}
	return strings.NewReplacer(pairs...).Replace(s.Rule)
}

// LoadSyllableScheme decodes a SyllableScheme from JSON and, when rule is not
// empty, selects the named rule:
//
//	{
//		"rule": "{first}{last}",
//		"rules": {"coastal": "Port {first}", "upland": "{first}{last} Heights"},
//		"syllables": {"first": ["Ka", "Lo"], "last": ["ria", "dun"]}
//	}
func LoadSyllableScheme(r io.Reader, rule string) (*SyllableScheme, error) {
	s := &SyllableScheme{}
	if err := json.NewDecoder(r).Decode(s); err != nil {
		return nil, fmt.Errorf("LoadSyllableScheme: %w", err)
	}
	if rule != "" {
		var err error
		if s, err = s.Select(rule); err != nil {
			return nil, fmt.Errorf("LoadSyllableScheme: %w", err)
		}
	}
	if s.Rule == "" {
		return nil, fmt.Errorf("LoadSyllableScheme: empty rule: %w", errs.ErrInvalidArgument)
	}
	return s, nil
}
