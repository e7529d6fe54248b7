// Command gridroute compares Greedy Best-First Search and A* on a delivery
// map and prints both routes plus timing and node-count tables.
//
// Usage:
//
//	gridroute                          # reference city map
//	gridroute -grid map.txt            # one row of R/C/X/. symbols per line
//	gridroute -random -rows 40 -cols 60 -density 0.3 -seed 7
//	gridroute -geojson routes.json     # also write the routes as GeoJSON
//	gridroute -serve :8080             # JSON API instead of a one-shot run
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/katalvlaran/gridroute/compare"
	"github.com/katalvlaran/gridroute/grid"
	"github.com/katalvlaran/gridroute/gridgen"
	"github.com/katalvlaran/gridroute/render"
	"github.com/katalvlaran/gridroute/search"
	"github.com/katalvlaran/gridroute/server"
)

func main() {
	gridFile := flag.String("grid", "", "Read the map from a file (one row per line)")
	random := flag.Bool("random", false, "Generate a random map")
	rows := flag.Int("rows", 20, "Rows of a random map")
	cols := flag.Int("cols", 40, "Columns of a random map")
	density := flag.Float64("density", 0.25, "Obstacle probability of a random map")
	seed := flag.Uint64("seed", 1, "Seed of a random map")
	label := flag.String("label", "3", "Label printed in the first table column")
	geojsonOut := flag.String("geojson", "", "Write the routes as GeoJSON to this file")
	trace := flag.Bool("trace", false, "Log every frontier pop")
	serve := flag.String("serve", "", "Serve the HTTP API on this address instead of running once")
	flag.Parse()

	logger := log.New(os.Stderr, "gridroute: ", log.LstdFlags)

	if *serve != "" {
		c := server.NewController(server.WithCompareOptions(compare.WithLogger(logger)))
		logger.Printf("listening on %s", *serve)
		logger.Fatal(http.ListenAndServe(*serve, server.NewRouter(logger, c)))
	}

	g, err := loadGrid(*gridFile, *random, gridgen.Config{Rows: *rows, Cols: *cols, Density: *density, Seed: *seed})
	if err != nil {
		logger.Fatal(err)
	}

	opts := []compare.Option{}
	if *trace {
		opts = append(opts,
			compare.WithLogger(logger),
			compare.WithSearchOptions(search.WithOnPop(func(c grid.Coord, n int) {
				logger.Printf("pop #%d %v", n, c)
			})))
	}
	rep, err := compare.Run(g, opts...)
	if err != nil {
		logger.Fatal(err)
	}
	if *trace {
		logger.Printf("reachable cells from start: %d", g.Reachable(rep.Start))
	}

	if err := render.Text(os.Stdout, rep, *label); err != nil {
		logger.Fatal(err)
	}

	if *geojsonOut != "" {
		body, err := render.GeoJSON(rep)
		if err != nil {
			logger.Fatal(err)
		}
		if err := os.WriteFile(*geojsonOut, body, 0o644); err != nil {
			logger.Fatal(err)
		}
		logger.Printf("wrote %s", *geojsonOut)
	}
}

// loadGrid picks the map source: file, random generator, or the reference city.
func loadGrid(file string, random bool, cfg gridgen.Config) (*grid.Grid, error) {
	switch {
	case file != "" && random:
		return nil, fmt.Errorf("-grid and -random are mutually exclusive")
	case file != "":
		return readGrid(file)
	case random:
		return gridgen.Generate(cfg)
	}
	return grid.Parse(grid.DefaultCity)
}

// readGrid parses a map file, skipping blank lines and lines starting with '#'.
func readGrid(file string) (*grid.Grid, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rows []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rows = append(rows, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return grid.Parse(rows)
}
