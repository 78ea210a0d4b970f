package models

// PortType tells which transport network a port belongs to.
type PortType string

const (
	PortTypeMaritime PortType = "maritime"
	PortTypeAir      PortType = "air"
	PortTypeBoth     PortType = "both"
	PortTypeUnknown  PortType = "unknown"
)

// RouteMode is the network scope recorded on a computed route.
type RouteMode string

const (
	ModeMaritime   RouteMode = "maritime"
	ModeAir        RouteMode = "air"
	ModeMultimodal RouteMode = "multimodal"
)

// AlgorithmName is the canonical label of a supported pathfinding algorithm,
// as stored on route records.
type AlgorithmName string

const (
	AlgorithmAStar       AlgorithmName = "AStar"
	AlgorithmDijkstra    AlgorithmName = "Dijkstra"
	AlgorithmBellmanFord AlgorithmName = "Bellman-Ford"
)

// WeightCriterion selects which raw measure the Dijkstra build feeds the
// algorithm. Historically this flipped between time and cost across
// revisions, so it is a caller choice with cost as the default.
type WeightCriterion string

const (
	CriterionCost     WeightCriterion = "cost"
	CriterionTime     WeightCriterion = "time"
	CriterionDistance WeightCriterion = "distance"
)
