// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package output

import (
	"io"
	"strings"

	"github.com/2dChan/s2districts/identity"
	"github.com/gocarina/gocsv"
)

// Row is one line of the region table: a name and its color.
type Row struct {
	Name string `csv:"name"`
	R    int    `csv:"r"`
	G    int    `csv:"g"`
	B    int    `csv:"b"`
}

// Table lists the regions' names and colors in index order.
func Table(regions []identity.Region) []Row {
	rows := make([]Row, len(regions))
	for i, reg := range regions {
		rows[i] = Row{
			Name: reg.Name,
			R:    int(reg.Color.R),
			G:    int(reg.Color.G),
			B:    int(reg.Color.B),
		}
	}
	return rows
}

// WriteTable writes rows as CSV. Without header the output matches the
// name,r,g,b province definition files read by the map tools.
func WriteTable(w io.Writer, rows []Row, header bool) error {
	if header {
		return gocsv.Marshal(rows, w)
	}
	return gocsv.MarshalWithoutHeaders(rows, w)
}

// AdjacencyRow lists the names of the regions touching one region.
type AdjacencyRow struct {
	Name      string `csv:"name"`
	Neighbors string `csv:"neighbors"`
}

// AdjacencyTable resolves the labels of adj to region names, one row per
// region in index order. Neighbor names are joined with ";".
func AdjacencyTable(adj map[int][]int, regions []identity.Region) []AdjacencyRow {
	rows := make([]AdjacencyRow, len(regions))
	for i, reg := range regions {
		names := make([]string, 0, len(adj[reg.Index]))
		for _, n := range adj[reg.Index] {
			if n >= 1 && n <= len(regions) {
				names = append(names, regions[n-1].Name)
			}
		}
		rows[i] = AdjacencyRow{Name: reg.Name, Neighbors: strings.Join(names, ";")}
	}
	return rows
}

// WriteAdjacency writes rows as CSV.
func WriteAdjacency(w io.Writer, rows []AdjacencyRow, header bool) error {
	if header {
		return gocsv.Marshal(rows, w)
	}
	return gocsv.MarshalWithoutHeaders(rows, w)
}
