package grid

import "sort"

// PathResult is the closed sum type returned by pathfinding operations.
// Exactly one of the Is* predicates is true for any given value.
type PathResult struct {
	kind pathResultKind

	path       []GridPos
	totalCost  int32
	reason     string
	required   int32
	available  int32
}

type pathResultKind int

const (
	pathResultSuccess pathResultKind = iota
	pathResultNoPath
	pathResultExceedsBudget
)

// PathSuccess constructs a successful PathResult.
func PathSuccess(path []GridPos, totalCost int32) PathResult {
	return PathResult{kind: pathResultSuccess, path: path, totalCost: totalCost}
}

// PathNoPathFound constructs a PathResult reporting no path exists.
func PathNoPathFound(reason string) PathResult {
	return PathResult{kind: pathResultNoPath, reason: reason}
}

// PathExceedsMovementBudget constructs a PathResult reporting that the
// cheapest path costs more than the caller's movement budget.
func PathExceedsMovementBudget(required, available int32) PathResult {
	return PathResult{kind: pathResultExceedsBudget, required: required, available: available}
}

// IsSuccess reports whether a path was found.
func (r PathResult) IsSuccess() bool { return r.kind == pathResultSuccess }

// IsNoPathFound reports whether no path exists.
func (r PathResult) IsNoPathFound() bool { return r.kind == pathResultNoPath }

// IsExceedsMovementBudget reports whether a path exists but costs more than
// the available budget.
func (r PathResult) IsExceedsMovementBudget() bool { return r.kind == pathResultExceedsBudget }

// Path returns the successful path, or nil if IsSuccess is false.
func (r PathResult) Path() []GridPos { return r.path }

// TotalCost returns the successful path's total cost.
func (r PathResult) TotalCost() int32 { return r.totalCost }

// Reason returns the NoPathFound explanation.
func (r PathResult) Reason() string { return r.reason }

// RequiredCost returns the cheapest path's cost for an ExceedsMovementBudget result.
func (r PathResult) RequiredCost() int32 { return r.required }

// AvailableCost returns the caller's movement budget for an ExceedsMovementBudget result.
func (r PathResult) AvailableCost() int32 { return r.available }

type openNode struct {
	pos    GridPos
	fScore int32
	hScore int32
	order  int
}

// FindPath runs A* over g's 8-connected movement-cost graph from start to
// goal. Diagonal moves cost the same as orthogonal moves. The destination
// cell may be occupied (to allow ending movement adjacent to a creature);
// intermediate cells may not be.
func FindPath(start, goal GridPos, g *MapGrid) PathResult {
	if start == goal {
		return PathSuccess([]GridPos{start}, 0)
	}
	if !g.InBounds(start) || !g.InBounds(goal) {
		return PathNoPathFound("start or goal is out of bounds")
	}
	if goalCell := g.CellAt(goal); goalCell.HasObstacle || goalCell.Terrain == TerrainImpassable {
		return PathNoPathFound("goal is not traversable")
	}

	cameFrom := make(map[GridPos]GridPos)
	gScore := map[GridPos]int32{start: 0}
	inOpen := map[GridPos]bool{start: true}
	open := []openNode{{pos: start, fScore: DistanceChebyshev(start, goal), hScore: DistanceChebyshev(start, goal), order: 0}}
	counter := 1

	for len(open) > 0 {
		sort.SliceStable(open, func(i, j int) bool {
			if open[i].fScore != open[j].fScore {
				return open[i].fScore < open[j].fScore
			}
			if open[i].hScore != open[j].hScore {
				return open[i].hScore < open[j].hScore
			}
			return open[i].order < open[j].order
		})
		current := open[0]
		open = open[1:]
		delete(inOpen, current.pos)

		if current.pos == goal {
			return PathSuccess(reconstructPath(cameFrom, current.pos), gScore[current.pos])
		}

		for _, neighbor := range Neighbors(current.pos) {
			if !g.InBounds(neighbor) {
				continue
			}

			var stepCost int32
			if neighbor == goal {
				// destination may be occupied; obstacle/impassable still block
				cell := g.CellAt(neighbor)
				if cell.HasObstacle || cell.Terrain == TerrainImpassable {
					continue
				}
				switch cell.Terrain {
				case TerrainDifficult:
					stepCost = 2
				default:
					stepCost = 1
				}
			} else {
				cost, traversable := MovementCost(neighbor, g)
				if !traversable {
					continue
				}
				stepCost = cost
			}

			tentativeG := gScore[current.pos] + stepCost
			existingG, seen := gScore[neighbor]
			if !seen || tentativeG < existingG {
				cameFrom[neighbor] = current.pos
				gScore[neighbor] = tentativeG
				h := DistanceChebyshev(neighbor, goal)
				fScore := tentativeG + h
				if !inOpen[neighbor] {
					open = append(open, openNode{pos: neighbor, fScore: fScore, hScore: h, order: counter})
					counter++
					inOpen[neighbor] = true
				} else {
					for i := range open {
						if open[i].pos == neighbor {
							open[i].fScore = fScore
							open[i].hScore = h
							break
						}
					}
				}
			}
		}
	}

	return PathNoPathFound("no path exists between start and goal")
}

// FindPathWithBudget runs FindPath and converts a successful result costing
// more than budget into an ExceedsMovementBudget result.
func FindPathWithBudget(start, goal GridPos, budget int32, g *MapGrid) PathResult {
	result := FindPath(start, goal, g)
	if result.IsSuccess() && result.TotalCost() > budget {
		return PathExceedsMovementBudget(result.TotalCost(), budget)
	}
	return result
}

func reconstructPath(cameFrom map[GridPos]GridPos, current GridPos) []GridPos {
	reversed := []GridPos{current}
	for {
		prev, ok := cameFrom[current]
		if !ok {
			break
		}
		reversed = append(reversed, prev)
		current = prev
	}
	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}
	return reversed
}
