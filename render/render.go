// Package render turns comparison results into console text and GeoJSON.
//
// ASCII and Text reproduce the classic console layout: the map with the
// route drawn as '*', then a timing table and a node-count table.
package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/gridroute/compare"
	"github.com/katalvlaran/gridroute/grid"
)

// Overlay returns a copy of g's cells with every path cell that is not Start
// or Goal replaced by grid.Path. Coordinates outside g are ignored.
func Overlay(g *grid.Grid, path []grid.Coord) [][]grid.CellKind {
	cells := g.Kinds()
	for _, c := range path {
		if !g.InBounds(c) {
			continue
		}
		if k := cells[c.Row][c.Col]; k == grid.Start || k == grid.Goal {
			continue
		}
		cells[c.Row][c.Col] = grid.Path
	}
	return cells
}

// ASCII writes the overlaid map, one row per line, symbols separated by a
// single space.
func ASCII(w io.Writer, g *grid.Grid, path []grid.Coord) error {
	bw := bufio.NewWriter(w)
	for _, row := range Rows(g, path) {
		if _, err := fmt.Fprintln(bw, row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Rows returns the overlaid map as space-separated strings.
func Rows(g *grid.Grid, path []grid.Coord) []string {
	cells := Overlay(g, path)
	out := make([]string, len(cells))
	for r, row := range cells {
		buf := make([]byte, 0, 2*len(row))
		for c, k := range row {
			if c > 0 {
				buf = append(buf, ' ')
			}
			buf = append(buf, byte(k))
		}
		out[r] = string(buf)
	}
	return out
}

// Table writes the timing table followed by the node-count table.
// label fills the first column.
func Table(w io.Writer, rep *compare.Report, label string) error {
	_, err := fmt.Fprintf(w,
		"Comparing result (based on Time in millisecond)\n"+
			"Assignment\tGBFS\t\tA star\n"+
			"%s\t\t%.2f ms\t%.2f ms\n\n"+
			"Comparing result (based on number of nodes)\n"+
			"Assignment\tGBFS\tA star\n"+
			"%s\t\t%d\t%d\n",
		label, rep.GBFS.Millis(), rep.AStar.Millis(),
		label, rep.GBFS.Explored, rep.AStar.Explored)
	return err
}

// Text writes the complete console report: the GBFS map, the A* map and
// both tables.
func Text(w io.Writer, rep *compare.Report, label string) error {
	if _, err := fmt.Fprintln(w, "Grid Path (GBFS):"); err != nil {
		return err
	}
	if err := ASCII(w, rep.Grid, rep.GBFS.Path); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "\nGrid Path (A*):"); err != nil {
		return err
	}
	if err := ASCII(w, rep.Grid, rep.AStar.Path); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	return Table(w, rep, label)
}
