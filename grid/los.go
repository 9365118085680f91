package grid

// BresenhamLine returns the integer rasterization of the segment from a to
// b: a sequence of positions starting with a, ending with b, where each
// consecutive pair differs by at most 1 in each axis. For a==b the result
// is the single position a.
func BresenhamLine(a, b GridPos) []GridPos {
	if a == b {
		return []GridPos{a}
	}

	dx := absInt32(b.X - a.X)
	dy := -absInt32(b.Y - a.Y)
	sx := int32(1)
	if a.X >= b.X {
		sx = -1
	}
	sy := int32(1)
	if a.Y >= b.Y {
		sy = -1
	}
	err := dx + dy

	var out []GridPos
	x, y := a.X, a.Y
	for {
		out = append(out, GridPos{X: x, Y: y})
		if x == b.X && y == b.Y {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
	return out
}

// HasLineOfEffect reports whether no interior position of the line from a
// to b has an obstacle. Endpoints are excluded from the obstacle check:
// a target standing on an obstacle is still targetable, and a caster whose
// own cell is an obstacle does not self-block. occupied_by never blocks
// line-of-effect.
func HasLineOfEffect(a, b GridPos, g *MapGrid) bool {
	line := BresenhamLine(a, b)
	if len(line) <= 2 {
		return true
	}
	for _, p := range line[1 : len(line)-1] {
		if g.CellAt(p).HasObstacle {
			return false
		}
	}
	return true
}
