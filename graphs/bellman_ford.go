package graphs

import (
	"errors"
	"math"

	"port-route-server/models"
)

// ErrNegativeCycle reports a reachable negative-weight cycle. The optimum is
// undefined in that case, so the whole computation fails rather than
// returning a finite but wrong distance.
var ErrNegativeCycle = errors.New("negative weight cycle detected")

type edgeTriple struct {
	from   string
	to     string
	weight float64
}

// BellmanFord is a relaxation-based search over an edge list. It is the only
// algorithm fed externally blended multi-criteria weights and therefore the
// only one that must defend against negative cycles. Instances are
// single-use and never shared.
type BellmanFord struct {
	ports map[string]models.Port
	edges []edgeTriple
}

func NewBellmanFord() *BellmanFord {
	return &BellmanFord{
		ports: make(map[string]models.Port),
	}
}

func (b *BellmanFord) AddPort(port models.Port) {
	b.ports[port.Name] = port
}

func (b *BellmanFord) AddConnection(from, to string, weight float64) {
	b.edges = append(b.edges, edgeTriple{from: from, to: to, weight: weight})
}

// Compute finds the minimum accumulated blended weight from origin to
// destination for a payload of exportWeight tons. Up to |ports|-1 relaxation
// passes run over the full edge list, stopping early once a pass makes no
// update; a final scan detects negative cycles. Returns (+Inf, nil, nil)
// when either endpoint lacks capacity or the destination is unreachable.
func (b *BellmanFord) Compute(origin, destination string, exportWeight float64) (float64, []string, error) {
	originPort, ok := b.ports[origin]
	if !ok || originPort.Capacity < exportWeight {
		return math.Inf(1), nil, nil
	}
	destinationPort, ok := b.ports[destination]
	if !ok || destinationPort.Capacity < exportWeight {
		return math.Inf(1), nil, nil
	}

	dist := make(map[string]float64, len(b.ports))
	for name := range b.ports {
		dist[name] = math.Inf(1)
	}
	dist[origin] = 0

	cameFrom := make(map[string]string)

	for i := 0; i < len(b.ports)-1; i++ {
		updated := false

		for _, e := range b.edges {
			// A target below the capacity requirement is skipped in every pass.
			if b.ports[e.to].Capacity < exportWeight {
				continue
			}
			if !math.IsInf(dist[e.from], 1) && dist[e.from]+e.weight < dist[e.to] {
				dist[e.to] = dist[e.from] + e.weight
				cameFrom[e.to] = e.from
				updated = true
			}
		}

		if !updated {
			break
		}
	}

	for _, e := range b.edges {
		if b.ports[e.to].Capacity < exportWeight {
			continue
		}
		if !math.IsInf(dist[e.from], 1) && dist[e.from]+e.weight < dist[e.to] {
			return math.Inf(1), nil, ErrNegativeCycle
		}
	}

	if math.IsInf(dist[destination], 1) {
		return math.Inf(1), nil, nil
	}

	return dist[destination], rebuildRoute(cameFrom, origin, destination), nil
}
