package grid_test

import (
	"testing"

	"github.com/ironveil-games/combat-core/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidPath_RejectsNonAdjacentSteps(t *testing.T) {
	g, err := grid.NewMapGrid(10, 10)
	require.NoError(t, err)

	path := []grid.GridPos{grid.NewGridPos(0, 0), grid.NewGridPos(2, 0)}
	assert.False(t, grid.IsValidPath(path, g))
}

func TestIsValidPath_RejectsImpassableInterior(t *testing.T) {
	g, err := grid.NewMapGrid(10, 10)
	require.NoError(t, err)
	g.SetCell(grid.NewGridPos(1, 0), grid.CellProperties{Terrain: grid.TerrainImpassable})

	path := []grid.GridPos{grid.NewGridPos(0, 0), grid.NewGridPos(1, 0), grid.NewGridPos(2, 0)}
	assert.False(t, grid.IsValidPath(path, g))
}

func TestPathCost_ExcludesStart(t *testing.T) {
	g, err := grid.NewMapGrid(10, 10)
	require.NoError(t, err)
	g.SetCell(grid.NewGridPos(0, 0), grid.CellProperties{Terrain: grid.TerrainDifficult})

	path := []grid.GridPos{grid.NewGridPos(0, 0), grid.NewGridPos(1, 0), grid.NewGridPos(2, 0)}
	assert.Equal(t, int32(2), grid.PathCost(path, g))
}

func TestWithinBudget(t *testing.T) {
	g, err := grid.NewMapGrid(10, 10)
	require.NoError(t, err)

	path := []grid.GridPos{grid.NewGridPos(0, 0), grid.NewGridPos(1, 0), grid.NewGridPos(2, 0)}
	assert.True(t, grid.WithinBudget(path, 2, g))
	assert.False(t, grid.WithinBudget(path, 1, g))
}
