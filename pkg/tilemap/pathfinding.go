// pkg/tilemap/pathfinding.go
package tilemap

import (
	"container/heap"
)

// AStar находит кратчайший путь от start до goal по клеткам, для которых passable == true.
func AStar(start, goal Pos, g *Grid, passable func(Pos) bool) []Pos {
	pq := &PriorityQueue{}
	heap.Init(pq)
	heap.Push(pq, &Node{Pos: start, Cost: 0, Parent: nil})
	costSoFar := map[Pos]int{start: 0}
	order := 0
	for pq.Len() > 0 {
		current := heap.Pop(pq).(*Node)
		if current.Pos == goal {
			return reconstructPath(current)
		}
		for _, neighbor := range g.Neighbors(current.Pos) {
			if neighbor != goal && !passable(neighbor) {
				continue
			}
			newCost := costSoFar[current.Pos] + 1
			if old, exists := costSoFar[neighbor]; !exists || newCost < old {
				costSoFar[neighbor] = newCost
				order++
				heap.Push(pq, &Node{
					Pos:    neighbor,
					Cost:   newCost + neighbor.Manhattan(goal),
					Parent: current,
					order:  order,
				})
			}
		}
	}
	return nil // Нет пути
}

// PriorityQueue для A*
type PriorityQueue []*Node

type Node struct {
	Pos    Pos
	Cost   int
	Parent *Node
	order  int
}

// Less при равной стоимости отдаёт узел, добавленный раньше, чтобы путь был детерминирован.
func (pq PriorityQueue) Less(i, j int) bool {
	if pq[i].Cost != pq[j].Cost {
		return pq[i].Cost < pq[j].Cost
	}
	return pq[i].order < pq[j].order
}
func (pq PriorityQueue) Len() int      { return len(pq) }
func (pq PriorityQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *PriorityQueue) Push(x interface{}) {
	*pq = append(*pq, x.(*Node))
}
func (pq *PriorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[0 : n-1]
	return item
}

func reconstructPath(node *Node) []Pos {
	path := []Pos{}
	for node != nil {
		path = append([]Pos{node.Pos}, path...)
		node = node.Parent
	}
	return path
}

// Corners сжимает путь по клеткам до точек поворота, сохраняя первую и последнюю.
func Corners(path []Pos) []Pos {
	if len(path) <= 2 {
		return append([]Pos(nil), path...)
	}
	out := []Pos{path[0]}
	for i := 1; i < len(path)-1; i++ {
		prev, cur, next := path[i-1], path[i], path[i+1]
		d1 := Pos{cur.X - prev.X, cur.Y - prev.Y}
		d2 := Pos{next.X - cur.X, next.Y - cur.Y}
		if d1 != d2 {
			out = append(out, cur)
		}
	}
	return append(out, path[len(path)-1])
}
