package grid

// direction is a unit step vector in one of the 8 grid directions.
type direction struct {
	dx, dy int32
}

func intMin(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

// Sphere returns every in-bounds position q with DistanceFeet(origin, q) <=
// radiusFeet. Line-of-effect is not required: the template is spatial, not
// a targeting resolution.
func Sphere(origin GridPos, radiusFeet int32, g *MapGrid) []GridPos {
	if !g.InBounds(origin) {
		return nil
	}
	var out []GridPos
	for y := int32(0); y < g.height; y++ {
		for x := int32(0); x < g.width; x++ {
			q := GridPos{X: x, Y: y}
			if DistanceFeet(origin, q) <= radiusFeet {
				out = append(out, q)
			}
		}
	}
	return out
}

// Cube returns the set {(origin.x+dx, origin.y+dy) | dx,dy in [-half,half]}
// restricted to in-bounds positions, where half = sideFeet/10 (integer
// division; each cell is 5 ft).
func Cube(origin GridPos, sideFeet int32, g *MapGrid) []GridPos {
	if !g.InBounds(origin) {
		return nil
	}
	half := sideFeet / 10
	var out []GridPos
	for dy := -half; dy <= half; dy++ {
		for dx := -half; dx <= half; dx++ {
			q := GridPos{X: origin.X + dx, Y: origin.Y + dy}
			if g.InBounds(q) {
				out = append(out, q)
			}
		}
	}
	return out
}

// Cone returns the affected positions projecting lengthFeet along direction
// from origin. For each step d in [1, lengthFeet/5] along the direction
// vector, positions at the projected centerline receive a perpendicular
// half-width of floor(min(d,3)/2): orthogonal directions offset a single
// perpendicular axis, diagonal directions offset both axes independently.
func Cone(origin GridPos, lengthFeet int32, dir GridPos, g *MapGrid) []GridPos {
	if !g.InBounds(origin) {
		return nil
	}

	dx := signInt32(dir.X - origin.X)
	dy := signInt32(dir.Y - origin.Y)
	if dx == 0 && dy == 0 {
		return nil
	}

	steps := lengthFeet / 5
	seen := make(map[GridPos]bool)
	var out []GridPos

	addIfNew := func(p GridPos) {
		if g.InBounds(p) && !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}

	orthogonal := dx == 0 || dy == 0

	for d := int32(1); d <= steps; d++ {
		cx := origin.X + d*dx
		cy := origin.Y + d*dy
		half := intMin(d, 3) / 2

		if orthogonal {
			for off := -half; off <= half; off++ {
				if dy == 0 {
					addIfNew(GridPos{X: cx, Y: cy + off})
				} else {
					addIfNew(GridPos{X: cx + off, Y: cy})
				}
			}
		} else {
			for offX := -half; offX <= half; offX++ {
				for offY := -half; offY <= half; offY++ {
					addIfNew(GridPos{X: cx + offX, Y: cy + offY})
				}
			}
		}
	}

	return out
}

func signInt32(v int32) int32 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
