package grid_test

import (
	"testing"

	"github.com/ironveil-games/combat-core/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReachability_IncludesStart(t *testing.T) {
	g, err := grid.NewMapGrid(10, 10)
	require.NoError(t, err)

	start := grid.NewGridPos(5, 5)
	costs := grid.Reachability(start, 3, g)
	cost, ok := costs[start]
	require.True(t, ok)
	assert.Equal(t, int32(0), cost)
}

func TestReachability_RespectsBudget(t *testing.T) {
	g, err := grid.NewMapGrid(10, 10)
	require.NoError(t, err)

	start := grid.NewGridPos(0, 0)
	costs := grid.Reachability(start, 2, g)

	for pos, cost := range costs {
		assert.LessOrEqual(t, cost, int32(2))
		assert.LessOrEqual(t, grid.DistanceChebyshev(start, pos), int32(2))
	}
}

func TestReachability_DifficultTerrainRaisesCost(t *testing.T) {
	g, err := grid.NewMapGrid(10, 10)
	require.NoError(t, err)

	difficult := grid.NewGridPos(1, 0)
	g.SetCell(difficult, grid.CellProperties{Terrain: grid.TerrainDifficult})

	costs := grid.Reachability(grid.NewGridPos(0, 0), 5, g)
	assert.Equal(t, int32(2), costs[difficult])
}

func TestReachability_ObstacleExcludesCell(t *testing.T) {
	g, err := grid.NewMapGrid(10, 10)
	require.NoError(t, err)

	blocked := grid.NewGridPos(1, 0)
	g.SetCell(blocked, grid.CellProperties{HasObstacle: true})

	costs := grid.Reachability(grid.NewGridPos(0, 0), 5, g)
	_, ok := costs[blocked]
	assert.False(t, ok)
}
