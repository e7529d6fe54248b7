// Package gridroute compares two heuristic route planners, Greedy Best-First
// Search and A*, on a small delivery map where a courier R must reach a
// customer C around blocked cells X.
//
// What is in the box?
//
//   - grid/: immutable map model, neighbor lookup, Manhattan distance
//   - search/: GBFS and A* with deterministic frontier ordering and path
//     reconstruction
//   - compare/: runs both strategies on one map and times them
//   - render/: console maps and tables, GeoJSON export
//   - gridgen/: seeded random maps for benchmarks
//   - server/: JSON HTTP API on gorilla/mux
//   - cmd/gridroute: command-line front end
//
// Quick ASCII example (the reference map and A*'s route):
//
//	R * * X .
//	. X * * *
//	. . . X C
//
// Both planners move in four directions at unit cost. A* always finds a
// minimum-step route; GBFS usually explores fewer cells but can be lured
// into detours.
//
//	go run github.com/katalvlaran/gridroute/cmd/gridroute
package gridroute
