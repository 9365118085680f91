package grid

// Reachability returns every position whose minimum movement cost from
// start is <= budget, via Dijkstra over the movement-cost graph. start is
// always included (cost 0).
func Reachability(start GridPos, budget int32, g *MapGrid) map[GridPos]int32 {
	costs := map[GridPos]int32{start: 0}
	visited := map[GridPos]bool{}

	type queued struct {
		pos  GridPos
		cost int32
	}
	frontier := []queued{{pos: start, cost: 0}}

	for len(frontier) > 0 {
		bestIdx := 0
		for i, n := range frontier {
			if n.cost < frontier[bestIdx].cost {
				bestIdx = i
			}
		}
		current := frontier[bestIdx]
		frontier = append(frontier[:bestIdx], frontier[bestIdx+1:]...)

		if visited[current.pos] {
			continue
		}
		visited[current.pos] = true

		for _, neighbor := range Neighbors(current.pos) {
			if !g.InBounds(neighbor) || visited[neighbor] {
				continue
			}
			stepCost, traversable := MovementCost(neighbor, g)
			if !traversable {
				continue
			}
			total := current.cost + stepCost
			if total > budget {
				continue
			}
			existing, seen := costs[neighbor]
			if !seen || total < existing {
				costs[neighbor] = total
				frontier = append(frontier, queued{pos: neighbor, cost: total})
			}
		}
	}

	return costs
}
