package grid

import (
	"fmt"

	"github.com/ironveil-games/combat-core/rpgerr"
)

// TerrainType classifies how expensive a cell is to move through.
type TerrainType string

// Supported terrain types. Occupied is a descriptive terrain marker; the
// functional cost of an occupied cell is governed by CellProperties.OccupiedBy,
// not by this variant.
const (
	TerrainNormal     TerrainType = "NORMAL"
	TerrainDifficult  TerrainType = "DIFFICULT"
	TerrainImpassable TerrainType = "IMPASSABLE"
	TerrainOccupied   TerrainType = "OCCUPIED"
)

// CellProperties describes one grid cell's traversal and targeting
// properties. The zero value is a normal, empty, unoccupied cell.
type CellProperties struct {
	Terrain     TerrainType `json:"terrain"`
	HasObstacle bool        `json:"has_obstacle"`
	OccupiedBy  string      `json:"occupied_by,omitempty"`
}

// MapGrid is a sparse rectangular grid of CellProperties. Cells not present
// in the sparse map are treated as normal, empty, unoccupied terrain.
type MapGrid struct {
	width  int32
	height int32
	cells  map[GridPos]CellProperties
}

// MinGridDimension and MaxGridDimension bound a MapGrid's width and height.
const (
	MinGridDimension = 10
	MaxGridDimension = 100
)

// NewMapGrid constructs a MapGrid with the given dimensions. width and
// height must each lie in [MinGridDimension, MaxGridDimension].
func NewMapGrid(width, height int32) (*MapGrid, error) {
	if width < MinGridDimension || width > MaxGridDimension {
		return nil, rpgerr.InvalidArgument(fmt.Sprintf("grid: width must be in [%d,%d], got %d", MinGridDimension, MaxGridDimension, width))
	}
	if height < MinGridDimension || height > MaxGridDimension {
		return nil, rpgerr.InvalidArgument(fmt.Sprintf("grid: height must be in [%d,%d], got %d", MinGridDimension, MaxGridDimension, height))
	}
	return &MapGrid{width: width, height: height, cells: make(map[GridPos]CellProperties)}, nil
}

// Width returns the grid's width.
func (g *MapGrid) Width() int32 { return g.width }

// Height returns the grid's height.
func (g *MapGrid) Height() int32 { return g.height }

// InBounds reports whether p lies within [0,width) x [0,height).
func (g *MapGrid) InBounds(p GridPos) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// CellAt returns the properties of the cell at p. Cells never explicitly
// set default to normal, empty, unoccupied terrain.
func (g *MapGrid) CellAt(p GridPos) CellProperties {
	if c, ok := g.cells[p]; ok {
		return c
	}
	return CellProperties{Terrain: TerrainNormal}
}

// SetCell overwrites the properties of the cell at p.
func (g *MapGrid) SetCell(p GridPos, props CellProperties) {
	g.cells[p] = props
}

// MovementCost returns the cost of entering pos: Normal->1, Difficult->2.
// Impassable terrain, an obstacle, or an occupied intermediate cell are not
// traversable and return (0, false).
func MovementCost(pos GridPos, g *MapGrid) (cost int32, traversable bool) {
	c := g.CellAt(pos)
	if c.HasObstacle || c.OccupiedBy != "" {
		return 0, false
	}
	switch c.Terrain {
	case TerrainDifficult:
		return 2, true
	case TerrainImpassable:
		return 0, false
	default:
		return 1, true
	}
}
