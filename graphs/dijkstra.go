package graphs

import (
	"container/heap"
	"math"

	"port-route-server/models"
)

// Dijkstra is a uniform-cost search over a single scalar edge weight. The
// orchestration layer decides which raw measure (monetary cost by default)
// that scalar is. Instances are single-use and never shared.
type Dijkstra struct {
	ports map[string]models.Port
	edges map[string][]arc
}

func NewDijkstra() *Dijkstra {
	return &Dijkstra{
		ports: make(map[string]models.Port),
		edges: make(map[string][]arc),
	}
}

func (d *Dijkstra) AddPort(port models.Port) {
	d.ports[port.Name] = port
	if _, ok := d.edges[port.Name]; !ok {
		d.edges[port.Name] = nil
	}
}

func (d *Dijkstra) AddConnection(from, to string, weight float64) {
	d.edges[from] = append(d.edges[from], arc{to: to, weight: weight})
}

// Compute finds the minimum accumulated weight from origin to destination
// for a payload of exportWeight tons. Stale frontier entries are discarded
// lazily instead of being removed on decrease-key. Returns (+Inf, nil) when
// either endpoint lacks capacity or the destination is unreachable.
func (d *Dijkstra) Compute(origin, destination string, exportWeight float64) (float64, []string) {
	originPort, ok := d.ports[origin]
	if !ok || originPort.Capacity < exportWeight {
		return math.Inf(1), nil
	}
	destinationPort, ok := d.ports[destination]
	if !ok || destinationPort.Capacity < exportWeight {
		return math.Inf(1), nil
	}

	dist := make(map[string]float64, len(d.ports))
	for name := range d.ports {
		dist[name] = math.Inf(1)
	}
	dist[origin] = 0

	cameFrom := make(map[string]string)

	queue := &frontier{}
	heap.Init(queue)
	heap.Push(queue, frontierItem{name: origin})

	for queue.Len() > 0 {
		item := heap.Pop(queue).(frontierItem)
		current, currentDist := item.name, item.priority

		if current == destination {
			return currentDist, rebuildRoute(cameFrom, origin, destination)
		}

		// Stale entry: a shorter distance was already settled.
		if currentDist > dist[current] {
			continue
		}

		for _, e := range d.edges[current] {
			if d.ports[e.to].Capacity < exportWeight {
				continue
			}

			next := currentDist + e.weight
			if next < dist[e.to] {
				dist[e.to] = next
				cameFrom[e.to] = current
				heap.Push(queue, frontierItem{name: e.to, priority: next})
			}
		}
	}

	return math.Inf(1), nil
}
