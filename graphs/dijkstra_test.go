package graphs

import (
	"math"
	"testing"
)

func TestDijkstraCostChain(t *testing.T) {
	d := NewDijkstra()
	d.AddPort(testPort("A", 0, 0, 100))
	d.AddPort(testPort("B", 0, 1, 100))
	d.AddPort(testPort("C", 0, 2, 100))
	d.AddConnection("A", "B", 5)
	d.AddConnection("B", "C", 10)

	weight, route := d.Compute("A", "C", 50)
	if weight != 15 {
		t.Errorf("expected accumulated cost 15, got %v", weight)
	}
	if !equalRoute(route, []string{"A", "B", "C"}) {
		t.Errorf("expected route [A B C], got %v", route)
	}
}

func TestDijkstraPicksCheapestOfParallelRoutes(t *testing.T) {
	d := NewDijkstra()
	d.AddPort(testPort("A", 0, 0, 100))
	d.AddPort(testPort("B", 0, 1, 100))
	d.AddPort(testPort("C", 0, 2, 100))
	d.AddPort(testPort("D", 1, 1, 100))
	d.AddConnection("A", "C", 100)
	d.AddConnection("A", "B", 30)
	d.AddConnection("B", "C", 30)
	d.AddConnection("A", "D", 10)
	d.AddConnection("D", "C", 20)

	weight, route := d.Compute("A", "C", 50)
	if weight != 30 {
		t.Errorf("expected accumulated cost 30, got %v", weight)
	}
	if !equalRoute(route, []string{"A", "D", "C"}) {
		t.Errorf("expected route [A D C], got %v", route)
	}
}

// A cheap edge discovered later must supersede the earlier frontier entry;
// the stale entry is dropped lazily on pop.
func TestDijkstraLazyDeletionOfStaleEntries(t *testing.T) {
	d := NewDijkstra()
	d.AddPort(testPort("A", 0, 0, 100))
	d.AddPort(testPort("B", 0, 1, 100))
	d.AddPort(testPort("C", 0, 2, 100))
	d.AddPort(testPort("D", 0, 3, 100))
	d.AddConnection("A", "B", 10)
	d.AddConnection("A", "C", 1)
	d.AddConnection("C", "B", 1)
	d.AddConnection("B", "D", 1)

	weight, route := d.Compute("A", "D", 50)
	if weight != 3 {
		t.Errorf("expected accumulated cost 3, got %v", weight)
	}
	if !equalRoute(route, []string{"A", "C", "B", "D"}) {
		t.Errorf("expected route [A C B D], got %v", route)
	}
}

func TestDijkstraDestinationCapacityTooLow(t *testing.T) {
	d := NewDijkstra()
	d.AddPort(testPort("A", 0, 0, 100))
	d.AddPort(testPort("B", 0, 1, 10))
	d.AddConnection("A", "B", 5)

	weight, route := d.Compute("A", "B", 50)
	if !math.IsInf(weight, 1) || route != nil {
		t.Errorf("expected (+Inf, nil), got (%v, %v)", weight, route)
	}
}

func TestDijkstraCapacityBlockedIntermediate(t *testing.T) {
	d := NewDijkstra()
	d.AddPort(testPort("A", 0, 0, 100))
	d.AddPort(testPort("B", 0, 1, 10))
	d.AddPort(testPort("C", 0, 2, 100))
	d.AddConnection("A", "B", 5)
	d.AddConnection("B", "C", 10)

	weight, route := d.Compute("A", "C", 50)
	if !math.IsInf(weight, 1) || route != nil {
		t.Errorf("expected (+Inf, nil) when B cannot carry the payload, got (%v, %v)", weight, route)
	}
}

func TestDijkstraUnreachableDestination(t *testing.T) {
	d := NewDijkstra()
	d.AddPort(testPort("A", 0, 0, 100))
	d.AddPort(testPort("B", 0, 1, 100))
	d.AddPort(testPort("C", 0, 2, 100))
	d.AddConnection("B", "C", 10)

	weight, route := d.Compute("A", "C", 50)
	if !math.IsInf(weight, 1) || route != nil {
		t.Errorf("expected (+Inf, nil), got (%v, %v)", weight, route)
	}
}

func TestDijkstraOriginEqualsDestination(t *testing.T) {
	d := NewDijkstra()
	d.AddPort(testPort("A", 0, 0, 100))

	weight, route := d.Compute("A", "A", 50)
	if weight != 0 || !equalRoute(route, []string{"A"}) {
		t.Errorf("expected (0, [A]), got (%v, %v)", weight, route)
	}
}
