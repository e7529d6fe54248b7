package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridroute/grid"
	"github.com/katalvlaran/gridroute/search"
)

// scenario is a fixed map with the outcome both strategies must reproduce.
type scenario struct {
	name          string
	rows          []string
	gbfsPath      []grid.Coord
	gbfsExplored  int
	astarPath     []grid.Coord
	astarExplored int
}

var scenarios = []scenario{
	{
		name:          "City",
		rows:          grid.DefaultCity,
		gbfsPath:      []grid.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 1, Col: 3}, {Row: 1, Col: 4}, {Row: 2, Col: 4}},
		gbfsExplored:  7,
		astarPath:     []grid.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 1, Col: 3}, {Row: 1, Col: 4}, {Row: 2, Col: 4}},
		astarExplored: 11,
	},
	{
		name:          "OpenField",
		rows:          []string{"R....", ".....", "....C"},
		gbfsPath:      []grid.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3}, {Row: 0, Col: 4}, {Row: 1, Col: 4}, {Row: 2, Col: 4}},
		gbfsExplored:  7,
		astarPath:     []grid.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3}, {Row: 0, Col: 4}, {Row: 1, Col: 4}, {Row: 2, Col: 4}},
		astarExplored: 15,
	},
	{
		name:          "Detour",
		rows:          []string{"R.X..", "..X..", "..X..", ".....", "...XC"},
		gbfsPath:      []grid.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1}, {Row: 3, Col: 1}, {Row: 3, Col: 2}, {Row: 3, Col: 3}, {Row: 3, Col: 4}, {Row: 4, Col: 4}},
		gbfsExplored:  9,
		astarPath:     []grid.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1}, {Row: 3, Col: 1}, {Row: 3, Col: 2}, {Row: 3, Col: 3}, {Row: 3, Col: 4}, {Row: 4, Col: 4}},
		astarExplored: 15,
	},
	{
		name: "GreedyTrap",
		rows: []string{
			"......",
			"R.XXX.",
			"....X.",
			"....XC",
			"....X.",
			"......",
		},
		gbfsPath: []grid.Coord{
			{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 1}, {Row: 2, Col: 2}, {Row: 2, Col: 3}, {Row: 3, Col: 3}, {Row: 4, Col: 3}, {Row: 5, Col: 3}, {Row: 5, Col: 4}, {Row: 5, Col: 5}, {Row: 4, Col: 5}, {Row: 3, Col: 5},
		},
		gbfsExplored: 20,
		astarPath: []grid.Coord{
			{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3}, {Row: 0, Col: 4}, {Row: 0, Col: 5}, {Row: 1, Col: 5}, {Row: 2, Col: 5}, {Row: 3, Col: 5},
		},
		astarExplored: 23,
	},
	{
		name:          "Corridor",
		rows:          []string{"R...C"},
		gbfsPath:      []grid.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3}, {Row: 0, Col: 4}},
		gbfsExplored:  5,
		astarPath:     []grid.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3}, {Row: 0, Col: 4}},
		astarExplored: 5,
	},
	{
		name:          "EnclosedGoal",
		rows:          []string{"R...X", "....X", "XXXXX", "...XC"},
		gbfsExplored:  14,
		astarExplored: 8,
	},
	{
		name:          "WalledCustomer",
		rows:          []string{"R.X.X", "..XXC"},
		gbfsExplored:  5,
		astarExplored: 4,
	},
}

func endpoints(t *testing.T, rows []string) (*grid.Grid, grid.Coord, grid.Coord) {
	t.Helper()
	g, err := grid.Parse(rows)
	require.NoError(t, err)
	start, goal, err := g.Endpoints()
	require.NoError(t, err)
	return g, start, goal
}

//----------------------------------------------------------------------------//
// Fixed scenarios
//----------------------------------------------------------------------------//

func TestGreedyBestFirst_Scenarios(t *testing.T) {
	for _, sc := range scenarios {
		t.Run(sc.name, func(t *testing.T) {
			g, start, goal := endpoints(t, sc.rows)
			res, err := search.GreedyBestFirst(g, start, goal)
			require.NoError(t, err)

			assert.Equal(t, search.AlgorithmGBFS, res.Algorithm)
			assert.Equal(t, sc.gbfsExplored, res.Explored)
			if sc.gbfsPath == nil {
				assert.False(t, res.Found)
				assert.Empty(t, res.Path)
				assert.Equal(t, -1, res.Steps())
				return
			}
			assert.True(t, res.Found)
			assert.Equal(t, sc.gbfsPath, res.Path)
			assert.Equal(t, len(sc.gbfsPath)-1, res.Steps())
		})
	}
}

func TestAStar_Scenarios(t *testing.T) {
	for _, sc := range scenarios {
		t.Run(sc.name, func(t *testing.T) {
			g, start, goal := endpoints(t, sc.rows)
			res, err := search.AStar(g, start, goal)
			require.NoError(t, err)

			assert.Equal(t, search.AlgorithmAStar, res.Algorithm)
			assert.Equal(t, sc.astarExplored, res.Explored)
			if sc.astarPath == nil {
				assert.False(t, res.Found)
				assert.Empty(t, res.Path)
				return
			}
			assert.True(t, res.Found)
			assert.Equal(t, sc.astarPath, res.Path)
		})
	}
}

// TestCity_AStarIsManhattanOptimal: the reference map needs no detour, so A*
// takes exactly the Manhattan distance in moves.
func TestCity_AStarIsManhattanOptimal(t *testing.T) {
	g, start, goal := endpoints(t, grid.DefaultCity)
	res, err := search.AStar(g, start, goal)
	require.NoError(t, err)

	assert.Equal(t, 6, res.Steps())
	assert.Len(t, res.Path, 7)
	assert.Equal(t, grid.Manhattan(start, goal), res.Steps())
}

//----------------------------------------------------------------------------//
// Properties
//----------------------------------------------------------------------------//

// TestPathProperties checks both strategies against every scenario: valid
// routes, A* never longer than GBFS.
func TestPathProperties(t *testing.T) {
	for _, sc := range scenarios {
		t.Run(sc.name, func(t *testing.T) {
			g, start, goal := endpoints(t, sc.rows)
			gr, err := search.GreedyBestFirst(g, start, goal)
			require.NoError(t, err)
			ar, err := search.AStar(g, start, goal)
			require.NoError(t, err)

			assert.NoError(t, search.ValidatePath(g, gr.Path, start, goal))
			assert.NoError(t, search.ValidatePath(g, ar.Path, start, goal))
			assert.Equal(t, gr.Found, ar.Found)
			if ar.Found {
				assert.LessOrEqual(t, ar.Steps(), gr.Steps())
			}
		})
	}
}

// TestEnclosedGoal_AStarExhaustsReachable: with no route, A* pops every
// reachable cell exactly once before giving up.
func TestEnclosedGoal_AStarExhaustsReachable(t *testing.T) {
	for _, rows := range [][]string{
		{"R...X", "....X", "XXXXX", "...XC"},
		{"R.X.X", "..XXC"},
	} {
		g, start, goal := endpoints(t, rows)
		res, err := search.AStar(g, start, goal)
		require.NoError(t, err)
		assert.False(t, res.Found)
		assert.Equal(t, g.Reachable(start), res.Explored)
	}
}

// TestEnclosedGoal_GreedyCountsDuplicatePops: GBFS counts repeated frontier
// entries, so its count is at least the reachable cell count.
func TestEnclosedGoal_GreedyCountsDuplicatePops(t *testing.T) {
	g, start, goal := endpoints(t, []string{"R...X", "....X", "XXXXX", "...XC"})
	res, err := search.GreedyBestFirst(g, start, goal)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.GreaterOrEqual(t, res.Explored, g.Reachable(start))
}

func TestStartEqualsGoal(t *testing.T) {
	g := grid.MustParse("R..", ".X.", "..C")
	at := grid.Coord{Row: 1, Col: 2}
	for _, alg := range search.Algorithms {
		res, err := search.Run(alg, g, at, at)
		require.NoError(t, err)
		assert.Equal(t, []grid.Coord{at}, res.Path, alg.String())
		assert.Equal(t, 1, res.Explored, alg.String())
		assert.True(t, res.Found)
		assert.Zero(t, res.Steps())
	}
}

// TestDeterminism runs each strategy twice on the same grid.
func TestDeterminism(t *testing.T) {
	g, start, goal := endpoints(t, scenarios[3].rows)
	for _, alg := range search.Algorithms {
		first, err := search.Run(alg, g, start, goal)
		require.NoError(t, err)
		second, err := search.Run(alg, g, start, goal)
		require.NoError(t, err)
		assert.Equal(t, first, second, alg.String())
	}
}

//----------------------------------------------------------------------------//
// Hooks and options
//----------------------------------------------------------------------------//

func TestHooks_PopOrder(t *testing.T) {
	g, start, goal := endpoints(t, grid.DefaultCity)

	var pops []grid.Coord
	var counts []int
	onPop := search.WithOnPop(func(c grid.Coord, n int) {
		pops = append(pops, c)
		counts = append(counts, n)
	})
	res, err := search.AStar(g, start, goal, onPop)
	require.NoError(t, err)

	assert.Equal(t, []grid.Coord{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 0, Col: 2}, {Row: 2, Col: 0}, {Row: 1, Col: 2}, {Row: 2, Col: 1}, {Row: 1, Col: 3}, {Row: 2, Col: 2}, {Row: 1, Col: 4}, {Row: 2, Col: 4},
	}, pops)
	assert.Len(t, counts, res.Explored)
	assert.Equal(t, res.Explored, counts[len(counts)-1])

	pops = nil
	_, err = search.GreedyBestFirst(g, start, goal, onPop)
	require.NoError(t, err)
	assert.Equal(t, []grid.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 1, Col: 3}, {Row: 1, Col: 4}, {Row: 2, Col: 4}}, pops)
}

func TestHooks_OnPushPriority(t *testing.T) {
	g, start, goal := endpoints(t, []string{"R..C"})
	var priorities []int
	_, err := search.AStar(g, start, goal, search.WithOnPush(func(_ grid.Coord, p int) {
		priorities = append(priorities, p)
	}))
	require.NoError(t, err)
	// consistent heuristic on a corridor: f stays at the initial estimate
	assert.Equal(t, []int{3, 3, 3, 3}, priorities)
}

// TestWithHeuristic_Zero turns A* into uniform-cost search; the route must
// stay optimal while more cells are explored.
func TestWithHeuristic_Zero(t *testing.T) {
	g, start, goal := endpoints(t, scenarios[3].rows)
	zero := search.WithHeuristic(func(grid.Coord, grid.Coord) int { return 0 })

	informed, err := search.AStar(g, start, goal)
	require.NoError(t, err)
	blind, err := search.AStar(g, start, goal, zero)
	require.NoError(t, err)

	assert.Equal(t, informed.Steps(), blind.Steps())
	assert.GreaterOrEqual(t, blind.Explored, informed.Explored)
	assert.NoError(t, search.ValidatePath(g, blind.Path, start, goal))
}

//----------------------------------------------------------------------------//
// Validation
//----------------------------------------------------------------------------//

func TestSearch_Errors(t *testing.T) {
	g := grid.MustParse(grid.DefaultCity...)
	ok := grid.Coord{Row: 0, Col: 0}
	cases := []struct {
		name        string
		g           *grid.Grid
		start, goal grid.Coord
		opts        []search.Option
		err         error
	}{
		{"NilGrid", nil, ok, ok, nil, search.ErrNilGrid},
		{"StartOutOfBounds", g, grid.Coord{Row: -1, Col: 0}, ok, nil, search.ErrInvalidEndpoint},
		{"GoalBlocked", g, ok, grid.Coord{Row: 0, Col: 3}, nil, search.ErrInvalidEndpoint},
		{"NilHeuristic", g, ok, ok, []search.Option{search.WithHeuristic(nil)}, search.ErrOptionViolation},
	}
	for _, tc := range cases {
		for _, alg := range search.Algorithms {
			t.Run(tc.name+"/"+alg.String(), func(t *testing.T) {
				res, err := search.Run(alg, tc.g, tc.start, tc.goal, tc.opts...)
				assert.Nil(t, res)
				assert.ErrorIs(t, err, tc.err)
			})
		}
	}
}

func TestRun_UnknownAlgorithm(t *testing.T) {
	g := grid.MustParse(grid.DefaultCity...)
	_, err := search.Run(search.Algorithm(9), g, grid.Coord{}, grid.Coord{})
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)
}

func TestParseAlgorithm(t *testing.T) {
	cases := map[string]search.Algorithm{
		"gbfs":   search.AlgorithmGBFS,
		"Greedy": search.AlgorithmGBFS,
		"astar":  search.AlgorithmAStar,
		" A* ":   search.AlgorithmAStar,
		"A star": search.AlgorithmAStar,
	}
	for in, want := range cases {
		got, err := search.ParseAlgorithm(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := search.ParseAlgorithm("dijkstra")
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)
	assert.Equal(t, "Algorithm(7)", search.Algorithm(7).String())
}
