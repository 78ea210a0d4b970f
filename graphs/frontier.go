package graphs

// frontierItem is one candidate in a priority frontier: a port name and the
// priority key it was pushed with.
type frontierItem struct {
	name     string
	priority float64
}

// frontier is a min-heap of frontierItems for container/heap. Ties on the
// priority key resolve arbitrarily.
type frontier []frontierItem

func (f frontier) Len() int            { return len(f) }
func (f frontier) Less(i, j int) bool  { return f[i].priority < f[j].priority }
func (f frontier) Swap(i, j int)       { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(frontierItem)) }

func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}

// rebuildRoute walks predecessor links from the destination back to the
// origin and returns the route in travel order. The degenerate
// origin == destination case yields a single-element route.
func rebuildRoute(cameFrom map[string]string, origin, destination string) []string {
	route := make([]string, 0, len(cameFrom)+1)

	node := destination
	for {
		prev, ok := cameFrom[node]
		if !ok {
			break
		}
		route = append(route, node)
		node = prev
	}
	route = append(route, origin)

	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}
	return route
}
