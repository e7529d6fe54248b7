package server

import (
	"github.com/katalvlaran/gridroute/compare"
	"github.com/katalvlaran/gridroute/grid"
	"github.com/katalvlaran/gridroute/render"
)

// CompareRequest carries a map as symbol rows, e.g. ["R..X.", ".X...", "...XC"].
type CompareRequest struct {
	Grid []string `json:"grid"`
}

// AssertCompareRequestRequired checks that the required fields are set.
func AssertCompareRequestRequired(obj CompareRequest) error {
	if len(obj.Grid) == 0 {
		return &RequiredError{Field: "grid"}
	}
	return nil
}

// Point is a grid coordinate on the wire.
type Point struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// AlgorithmResult is one strategy's outcome.
type AlgorithmResult struct {
	Algorithm string   `json:"algorithm"`
	Found     bool     `json:"found"`
	Steps     int      `json:"steps"`
	Explored  int      `json:"explored"`
	ElapsedMs float64  `json:"elapsed_ms"`
	Path      []Point  `json:"path"`
	Rendered  []string `json:"rendered"`
}

// CompareResult is the response body of a comparison.
type CompareResult struct {
	RunID   string            `json:"run_id"`
	Start   Point             `json:"start"`
	Goal    Point             `json:"goal"`
	Results []AlgorithmResult `json:"results"`
}

func toPoint(c grid.Coord) Point {
	return Point{Row: c.Row, Col: c.Col}
}

func newCompareResult(rep *compare.Report) CompareResult {
	res := CompareResult{
		RunID:   rep.RunID,
		Start:   toPoint(rep.Start),
		Goal:    toPoint(rep.Goal),
		Results: make([]AlgorithmResult, 0, 2),
	}
	for _, out := range rep.Outcomes() {
		path := make([]Point, 0, len(out.Path))
		for _, c := range out.Path {
			path = append(path, toPoint(c))
		}
		res.Results = append(res.Results, AlgorithmResult{
			Algorithm: out.Algorithm.String(),
			Found:     out.Found,
			Steps:     out.Steps(),
			Explored:  out.Explored,
			ElapsedMs: out.Millis(),
			Path:      path,
			Rendered:  render.Rows(rep.Grid, out.Path),
		})
	}
	return res
}
