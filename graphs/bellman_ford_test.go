package graphs

import (
	"errors"
	"math"
	"testing"

	"port-route-server/models"
)

func TestBellmanFordSimpleChain(t *testing.T) {
	b := NewBellmanFord()
	b.AddPort(testPort("A", 0, 0, 100))
	b.AddPort(testPort("B", 0, 1, 100))
	b.AddPort(testPort("C", 0, 2, 100))
	b.AddConnection("A", "B", 16)
	b.AddConnection("B", "C", 32)

	weight, route, err := b.Compute("A", "C", 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if weight != 48 {
		t.Errorf("expected weight 48, got %v", weight)
	}
	if !equalRoute(route, []string{"A", "B", "C"}) {
		t.Errorf("expected route [A B C], got %v", route)
	}
}

func TestBellmanFordHandlesNegativeEdgeWithoutCycle(t *testing.T) {
	// A->B->C with a negative leg is fine as long as no cycle exists.
	b := NewBellmanFord()
	b.AddPort(testPort("A", 0, 0, 100))
	b.AddPort(testPort("B", 0, 1, 100))
	b.AddPort(testPort("C", 0, 2, 100))
	b.AddConnection("A", "B", 10)
	b.AddConnection("B", "C", -4)
	b.AddConnection("A", "C", 8)

	weight, route, err := b.Compute("A", "C", 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if weight != 6 {
		t.Errorf("expected weight 6, got %v", weight)
	}
	if !equalRoute(route, []string{"A", "B", "C"}) {
		t.Errorf("expected route [A B C], got %v", route)
	}
}

func TestBellmanFordNegativeTwoCycle(t *testing.T) {
	b := NewBellmanFord()
	b.AddPort(testPort("A", 0, 0, 100))
	b.AddPort(testPort("B", 0, 1, 100))
	b.AddPort(testPort("C", 0, 2, 100))
	b.AddConnection("A", "B", -5)
	b.AddConnection("B", "A", -5)
	b.AddConnection("B", "C", 1)

	_, _, err := b.Compute("A", "C", 50)
	if !errors.Is(err, ErrNegativeCycle) {
		t.Fatalf("expected ErrNegativeCycle, got %v", err)
	}
}

// A negative cycle whose ports cannot carry the payload is invisible to the
// computation and must not poison an otherwise valid route.
func TestBellmanFordCapacityFilteredNegativeCycle(t *testing.T) {
	b := NewBellmanFord()
	b.AddPort(testPort("A", 0, 0, 100))
	b.AddPort(testPort("B", 0, 1, 100))
	b.AddPort(testPort("X", 1, 0, 5))
	b.AddPort(testPort("Y", 1, 1, 5))
	b.AddConnection("A", "B", 7)
	b.AddConnection("X", "Y", -5)
	b.AddConnection("Y", "X", -5)

	weight, route, err := b.Compute("A", "B", 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if weight != 7 || !equalRoute(route, []string{"A", "B"}) {
		t.Errorf("expected (7, [A B]), got (%v, %v)", weight, route)
	}
}

func TestBellmanFordCapacityAndUnreachable(t *testing.T) {
	b := NewBellmanFord()
	b.AddPort(testPort("A", 0, 0, 100))
	b.AddPort(testPort("B", 0, 1, 10))
	b.AddPort(testPort("C", 0, 2, 100))
	b.AddConnection("A", "B", 5)
	b.AddConnection("B", "C", 5)

	weight, route, err := b.Compute("A", "C", 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsInf(weight, 1) || route != nil {
		t.Errorf("expected (+Inf, nil), got (%v, %v)", weight, route)
	}

	weight, route, err = b.Compute("A", "B", 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsInf(weight, 1) || route != nil {
		t.Errorf("expected (+Inf, nil) for under-capacity destination, got (%v, %v)", weight, route)
	}
}

// Cross-check against exhaustive enumeration of simple paths on a small
// graph with blended weights.
func TestBellmanFordMatchesBruteForce(t *testing.T) {
	ports := []models.Port{
		testPort("A", 0, 0, 100),
		testPort("B", 0, 1, 100),
		testPort("C", 0, 2, 100),
		testPort("D", 1, 1, 100),
		testPort("E", 1, 2, 100),
	}
	edges := []edgeTriple{
		{"A", "B", 4}, {"A", "D", 1}, {"D", "B", 1},
		{"B", "C", 2}, {"D", "E", 6}, {"B", "E", 3},
		{"C", "E", -1}, {"A", "C", 9},
	}

	b := NewBellmanFord()
	for _, p := range ports {
		b.AddPort(p)
	}
	for _, e := range edges {
		b.AddConnection(e.from, e.to, e.weight)
	}

	adjacency := make(map[string][]edgeTriple)
	for _, e := range edges {
		adjacency[e.from] = append(adjacency[e.from], e)
	}

	var bruteForce func(current, target string, visited map[string]bool) float64
	bruteForce = func(current, target string, visited map[string]bool) float64 {
		if current == target {
			return 0
		}
		visited[current] = true
		best := math.Inf(1)
		for _, e := range adjacency[current] {
			if visited[e.to] {
				continue
			}
			if rest := bruteForce(e.to, target, visited); e.weight+rest < best {
				best = e.weight + rest
			}
		}
		visited[current] = false
		return best
	}

	for _, target := range []string{"B", "C", "D", "E"} {
		expected := bruteForce("A", target, map[string]bool{})
		got, _, err := b.Compute("A", target, 50)
		if err != nil {
			t.Fatalf("A->%s: unexpected error: %v", target, err)
		}
		if math.Abs(got-expected) > 1e-9 {
			t.Errorf("A->%s: expected %v, got %v", target, expected, got)
		}
	}
}

func TestBellmanFordOriginEqualsDestination(t *testing.T) {
	b := NewBellmanFord()
	b.AddPort(testPort("A", 0, 0, 100))

	weight, route, err := b.Compute("A", "A", 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if weight != 0 || !equalRoute(route, []string{"A"}) {
		t.Errorf("expected (0, [A]), got (%v, %v)", weight, route)
	}
}
