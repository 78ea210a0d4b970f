package graphs

import (
	"container/heap"
	"math"

	"port-route-server/models"
)

const earthRadiusKm = 6371.0

// arc is one outgoing adjacency entry.
type arc struct {
	to     string
	weight float64
}

// AStar runs best-first search guided by the great-circle distance between
// ports. The heuristic is an admissible lower bound only when edge weights
// are real travel distances in kilometers, which is what the orchestration
// layer feeds it. Each instance owns its own maps and must not be shared
// between computations.
type AStar struct {
	ports map[string]models.Port
	edges map[string][]arc
}

func NewAStar() *AStar {
	return &AStar{
		ports: make(map[string]models.Port),
		edges: make(map[string][]arc),
	}
}

// AddPort registers a port under its name and makes sure it has an adjacency
// list even if no connection ever targets it.
func (a *AStar) AddPort(port models.Port) {
	a.ports[port.Name] = port
	if _, ok := a.edges[port.Name]; !ok {
		a.edges[port.Name] = nil
	}
}

// AddConnection appends a directed arc from -> to with the given weight,
// typically a raw distance in kilometers.
func (a *AStar) AddConnection(from, to string, weight float64) {
	a.edges[from] = append(a.edges[from], arc{to: to, weight: weight})
}

// heuristic returns the haversine distance in kilometers between two ports.
func (a *AStar) heuristic(from, to string) float64 {
	p1 := a.ports[from]
	p2 := a.ports[to]

	phi1 := p1.Latitude * math.Pi / 180
	phi2 := p2.Latitude * math.Pi / 180
	deltaPhi := (p2.Latitude - p1.Latitude) * math.Pi / 180
	deltaLambda := (p2.Longitude - p1.Longitude) * math.Pi / 180

	h := math.Sin(deltaPhi/2)*math.Sin(deltaPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(deltaLambda/2)*math.Sin(deltaLambda/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// Compute finds the best path from origin to destination for a payload of
// exportWeight tons. Ports whose capacity is below exportWeight are never
// traversed. Returns (+Inf, nil) when either endpoint lacks capacity or the
// destination is unreachable.
func (a *AStar) Compute(origin, destination string, exportWeight float64) (float64, []string) {
	originPort, ok := a.ports[origin]
	if !ok || originPort.Capacity < exportWeight {
		return math.Inf(1), nil
	}
	destinationPort, ok := a.ports[destination]
	if !ok || destinationPort.Capacity < exportWeight {
		return math.Inf(1), nil
	}

	gScore := make(map[string]float64, len(a.ports))
	for name := range a.ports {
		gScore[name] = math.Inf(1)
	}
	gScore[origin] = 0

	cameFrom := make(map[string]string)

	openSet := &frontier{}
	heap.Init(openSet)
	heap.Push(openSet, frontierItem{name: origin})

	for openSet.Len() > 0 {
		current := heap.Pop(openSet).(frontierItem).name

		if current == destination {
			return gScore[destination], rebuildRoute(cameFrom, origin, destination)
		}

		for _, e := range a.edges[current] {
			if a.ports[e.to].Capacity < exportWeight {
				continue
			}

			tentative := gScore[current] + e.weight
			if tentative < gScore[e.to] {
				cameFrom[e.to] = current
				gScore[e.to] = tentative
				heap.Push(openSet, frontierItem{
					name:     e.to,
					priority: tentative + a.heuristic(e.to, destination),
				})
			}
		}
	}

	return math.Inf(1), nil
}
