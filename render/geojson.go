package render

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/katalvlaran/gridroute/compare"
	"github.com/katalvlaran/gridroute/grid"
)

// FeatureCollection converts a report into GeoJSON features in grid space:
// x is the column, y is the row. One LineString per strategy, plus Point
// features for the start and goal.
func FeatureCollection(rep *compare.Report) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, out := range rep.Outcomes() {
		f := geojson.NewFeature(lineString(out.Path))
		f.Properties["run_id"] = rep.RunID
		f.Properties["algorithm"] = out.Algorithm.String()
		f.Properties["found"] = out.Found
		f.Properties["steps"] = out.Steps()
		f.Properties["explored"] = out.Explored
		f.Properties["elapsed_ms"] = out.Millis()
		fc.Append(f)
	}
	for _, ep := range []struct {
		role string
		at   grid.Coord
	}{{"start", rep.Start}, {"goal", rep.Goal}} {
		f := geojson.NewFeature(point(ep.at))
		f.Properties["run_id"] = rep.RunID
		f.Properties["role"] = ep.role
		fc.Append(f)
	}
	return fc
}

// GeoJSON marshals FeatureCollection(rep).
func GeoJSON(rep *compare.Report) ([]byte, error) {
	return FeatureCollection(rep).MarshalJSON()
}

func point(c grid.Coord) orb.Point {
	return orb.Point{float64(c.Col), float64(c.Row)}
}

func lineString(path []grid.Coord) orb.LineString {
	ls := make(orb.LineString, 0, len(path))
	for _, c := range path {
		ls = append(ls, point(c))
	}
	return ls
}
