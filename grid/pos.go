package grid

// GridPos is an integer grid coordinate. One cell is 5 feet.
type GridPos struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
}

// NewGridPos constructs a GridPos.
func NewGridPos(x, y int32) GridPos {
	return GridPos{X: x, Y: y}
}

func absInt32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

func maxInt32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

// DistanceChebyshev returns max(|ax-bx|, |ay-by|).
func DistanceChebyshev(a, b GridPos) int32 {
	return maxInt32(absInt32(a.X-b.X), absInt32(a.Y-b.Y))
}

// DistanceFeet converts Chebyshev distance to feet at 5 ft per cell.
func DistanceFeet(a, b GridPos) int32 {
	return 5 * DistanceChebyshev(a, b)
}

// Neighbors returns all 8 surrounding positions without bounds filtering.
// Callers filter results with MapGrid.InBounds. Order is the fixed
// clockwise-from-north ring starting at N, so it is deterministic.
func Neighbors(p GridPos) [8]GridPos {
	return [8]GridPos{
		{p.X, p.Y - 1},     // N
		{p.X + 1, p.Y - 1}, // NE
		{p.X + 1, p.Y},     // E
		{p.X + 1, p.Y + 1}, // SE
		{p.X, p.Y + 1},     // S
		{p.X - 1, p.Y + 1}, // SW
		{p.X - 1, p.Y},     // W
		{p.X - 1, p.Y - 1}, // NW
	}
}

// IsAdjacent reports whether a and b are 8-adjacent (Chebyshev distance 1)
// and distinct.
func IsAdjacent(a, b GridPos) bool {
	return a != b && DistanceChebyshev(a, b) == 1
}
