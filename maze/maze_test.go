package maze_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/maze"
)

func TestGenerate_EmptyDimensions(t *testing.T) {
	g, err := maze.Generate(0, 10)
	assert.Nil(t, g)
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
}

// TestGenerate_SmallGridsAllWall covers grids without an interior.
func TestGenerate_SmallGridsAllWall(t *testing.T) {
	sizes := [][2]int{{1, 1}, {1, 7}, {2, 2}, {2, 9}, {9, 2}}
	for _, sz := range sizes {
		g, err := maze.Generate(sz[0], sz[1], maze.WithSeed(1))
		require.NoError(t, err, "size %v", sz)
		assert.Equal(t, g.Len(), g.Count(grid.Wall), "size %v", sz)
		assert.NoError(t, maze.Verify(g))
	}
}

func TestGenerate_Minimal3x3(t *testing.T) {
	g, err := maze.Generate(3, 3, maze.WithSeed(7))
	require.NoError(t, err)
	assert.Equal(t, "###\n#.#\n###\n", g.String())
}

// TestGenerate_PerfectMaze checks the border ring, full reachability from
// (1,1) and acyclicity over many seeds and odd/even sizes.
func TestGenerate_PerfectMaze(t *testing.T) {
	sizes := [][2]int{{5, 5}, {7, 11}, {25, 40}, {10, 10}, {4, 9}, {31, 31}}
	for _, sz := range sizes {
		for seed := int64(1); seed <= 20; seed++ {
			g, err := maze.Generate(sz[0], sz[1], maze.WithSeed(seed))
			require.NoError(t, err)
			require.NoError(t, maze.Verify(g), "size %v seed %d\n%s", sz, seed, g)

			k, _ := g.Kind(maze.Origin)
			assert.Equal(t, grid.Empty, k)
		}
	}
}

// TestGenerate_CarvesEveryOddCell verifies backtracking leaves no unvisited
// stride-2 target behind.
func TestGenerate_CarvesEveryOddCell(t *testing.T) {
	g, err := maze.Generate(21, 33, maze.WithSeed(99))
	require.NoError(t, err)
	for r := 1; r < g.Rows()-1; r += 2 {
		for c := 1; c < g.Cols()-1; c += 2 {
			k, _ := g.Kind(grid.At(r, c))
			assert.Equal(t, grid.Empty, k, "cell (%d,%d)", r, c)
		}
	}
}

func TestGenerate_SeedDeterminism(t *testing.T) {
	a, err := maze.Generate(25, 40, maze.WithSeed(42))
	require.NoError(t, err)
	b, err := maze.Generate(25, 40, maze.WithSeed(42))
	require.NoError(t, err)
	assert.Equal(t, a.String(), b.String())

	c, err := maze.Generate(25, 40, maze.WithRand(rand.New(rand.NewSource(42))))
	require.NoError(t, err)
	assert.Equal(t, a.String(), c.String(), "WithRand and WithSeed must agree for the same seed")
}

func TestGenerate_SeedsDiffer(t *testing.T) {
	seen := map[string]bool{}
	for seed := int64(1); seed <= 10; seed++ {
		g, err := maze.Generate(15, 15, maze.WithSeed(seed))
		require.NoError(t, err)
		seen[g.String()] = true
	}
	assert.Greater(t, len(seen), 1, "different seeds should produce different mazes")
}

func TestGenerate_NilRandIgnored(t *testing.T) {
	g, err := maze.Generate(9, 9, maze.WithRand(nil))
	require.NoError(t, err)
	assert.NoError(t, maze.Verify(g))
}

//----------------------------------------------------------------------------//
// Verify Tests
//----------------------------------------------------------------------------//

func TestVerify_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		err  error
	}{
		{"OpenBorder", "#.#\n#.#\n###\n", maze.ErrBorder},
		{"Disconnected", "#######\n#.#.#.#\n#######\n", maze.ErrDisconnected},
		{"OriginWall", "#####\n###.#\n#####\n", maze.ErrDisconnected},
		{"Cycle", "#####\n#...#\n#.#.#\n#...#\n#####\n", maze.ErrCycle},
		{"OpenRoom", "####\n#..#\n#..#\n####\n", maze.ErrCycle},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, maze.Verify(grid.MustParse(tc.in)), tc.err)
		})
	}
}

func TestVerify_Tree(t *testing.T) {
	g := grid.MustParse(`
#######
#.....#
#.###.#
#.#...#
#######
`)
	assert.NoError(t, maze.Verify(g))
}
