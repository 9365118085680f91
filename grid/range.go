package grid

// PositionsWithinRange returns every in-bounds position q with
// DistanceFeet(center, q) <= rangeFeet. The center is included when it is
// in bounds. Order is the deterministic row-major scan of the grid.
func PositionsWithinRange(center GridPos, rangeFeet int32, g *MapGrid) []GridPos {
	var out []GridPos
	for y := int32(0); y < g.height; y++ {
		for x := int32(0); x < g.width; x++ {
			q := GridPos{X: x, Y: y}
			if DistanceFeet(center, q) <= rangeFeet {
				out = append(out, q)
			}
		}
	}
	return out
}

// PositionsWithinRangeAndLOS intersects PositionsWithinRange with
// HasLineOfEffect(center, q, g).
func PositionsWithinRangeAndLOS(center GridPos, rangeFeet int32, g *MapGrid) []GridPos {
	var out []GridPos
	for _, q := range PositionsWithinRange(center, rangeFeet, g) {
		if HasLineOfEffect(center, q, g) {
			out = append(out, q)
		}
	}
	return out
}
