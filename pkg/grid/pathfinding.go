// pkg/grid/pathfinding.go
package grid

import (
	"container/heap"
)

// WalkableFunc сообщает, проходим ли тайл.
type WalkableFunc func(Tile) bool

// CostFunc — дополнительная аддитивная стоимость входа на тайл.
// Используется "умными" врагами, чтобы обходить плотные скопления башен.
// Никогда не влияет на достижимость, только на стоимость, поэтому
// манхэттенская эвристика остаётся допустимой.
type CostFunc func(Tile) float64

// AStar находит кратчайший путь от start до goal по 4-связной сетке.
// Базовая стоимость шага равна 1, extraCost может быть nil.
// Возвращает nil, если пути нет.
func AStar(start, goal Tile, walkable WalkableFunc, extraCost CostFunc) []Tile {
	if !walkable(start) || !walkable(goal) {
		return nil
	}

	pq := &priorityQueue{}
	heap.Init(pq)
	heap.Push(pq, &node{Tile: start, Priority: 0, Parent: nil})
	costSoFar := map[Tile]float64{start: 0}

	for pq.Len() > 0 {
		current := heap.Pop(pq).(*node)
		if current.Tile == goal {
			return reconstructPath(current)
		}
		for _, dir := range Directions {
			neighbor := current.Tile.Add(dir)
			if !walkable(neighbor) {
				continue
			}
			newCost := costSoFar[current.Tile] + 1
			if extraCost != nil {
				newCost += extraCost(neighbor)
			}
			if old, exists := costSoFar[neighbor]; !exists || newCost < old {
				costSoFar[neighbor] = newCost
				priority := newCost + float64(neighbor.Distance(goal))
				heap.Push(pq, &node{Tile: neighbor, Priority: priority, Parent: current})
			}
		}
	}
	return nil // Нет пути
}

// priorityQueue для A*
type priorityQueue []*node

type node struct {
	Tile     Tile
	Priority float64
	Parent   *node
}

func (pq priorityQueue) Len() int           { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool { return pq[i].Priority < pq[j].Priority }
func (pq priorityQueue) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue) Push(x interface{}) {
	*pq = append(*pq, x.(*node))
}
func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[0 : n-1]
	return item
}

func reconstructPath(n *node) []Tile {
	length := 0
	for cur := n; cur != nil; cur = cur.Parent {
		length++
	}
	path := make([]Tile, length)
	for cur := n; cur != nil; cur = cur.Parent {
		length--
		path[length] = cur.Tile
	}
	return path
}
