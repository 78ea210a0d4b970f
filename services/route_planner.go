package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"port-route-server/models"
	"port-route-server/repository"
	"port-route-server/utils"
)

// PlanRequest carries everything the planner needs for one computation. The
// multipliers only matter for Bellman-Ford; nil means 1.0.
type PlanRequest struct {
	Source             string
	Destination        string
	Mode               string
	ExportWeight       float64
	AlgorithmName      string
	Criterion          string
	CostMultiplier     *float64
	DistanceMultiplier *float64
	TimeMultiplier     *float64
}

// planKey identifies a computation for the result cache. Route records are
// immutable, so serving a cached record is safe; the graph itself is never
// cached or shared.
type planKey struct {
	origin       string
	destination  string
	algorithm    models.AlgorithmName
	criterion    models.WeightCriterion
	exportWeight float64
	costM        float64
	distM        float64
	timeM        float64
}

// RoutePlanner is the application-level orchestrator: it loads the
// multimodal snapshot, drives the selected algorithm service, re-derives the
// real totals from the snapshot and persists the resulting record.
type RoutePlanner struct {
	ports        repository.PortRepository
	connections  repository.ConnectionRepository
	routes       repository.RouteRepository
	routeService *RouteService
	cache        *lru.Cache[planKey, *models.OptimalRoute]
	logger       *zap.Logger
}

func NewRoutePlanner(
	ports repository.PortRepository,
	connections repository.ConnectionRepository,
	routes repository.RouteRepository,
	cacheSize int,
	logger *zap.Logger,
) (*RoutePlanner, error) {
	planner := &RoutePlanner{
		ports:        ports,
		connections:  connections,
		routes:       routes,
		routeService: NewRouteService(),
		logger:       logger,
	}
	if cacheSize > 0 {
		cache, err := lru.New[planKey, *models.OptimalRoute](cacheSize)
		if err != nil {
			return nil, err
		}
		planner.cache = cache
	}
	return planner, nil
}

func multiplierOrDefault(m *float64) float64 {
	if m == nil {
		return 1.0
	}
	return *m
}

// resolvePort accepts either an opaque id or a display name; the id lookup
// is tried first.
func (p *RoutePlanner) resolvePort(ctx context.Context, identifier string) (*models.Port, error) {
	if strings.TrimSpace(identifier) == "" {
		return nil, fmt.Errorf("%w: empty identifier", ErrPortNotFound)
	}

	port, err := p.ports.FindByID(ctx, identifier)
	if err == nil {
		return port, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	port, err = p.ports.FindByName(ctx, identifier)
	if err == nil {
		return port, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	return nil, fmt.Errorf("%w: %q", ErrPortNotFound, identifier)
}

// resolveRouteLegs maps each consecutive pair of the computed path back onto
// the real connection from the snapshot. A pair without a usable connection
// means the algorithm's graph and the snapshot diverged, which is surfaced
// rather than producing a partial total.
func resolveRouteLegs(connections []models.PortConnection, visited []string) ([]models.PortConnection, error) {
	type pair struct{ from, to string }
	byEndpoints := make(map[pair]models.PortConnection, len(connections))
	for _, conn := range connections {
		if conn.IsRestricted {
			continue
		}
		key := pair{from: conn.PortAName, to: conn.PortBName}
		if _, ok := byEndpoints[key]; !ok {
			byEndpoints[key] = conn
		}
	}

	legs := make([]models.PortConnection, 0, len(visited)-1)
	for i := 0; i < len(visited)-1; i++ {
		conn, ok := byEndpoints[pair{from: visited[i], to: visited[i+1]}]
		if !ok {
			return nil, fmt.Errorf("%w: %s -> %s", ErrMissingConnection, visited[i], visited[i+1])
		}
		legs = append(legs, conn)
	}
	return legs, nil
}

// GenerateRoute runs one full computation and persists the resulting record.
func (p *RoutePlanner) GenerateRoute(ctx context.Context, req PlanRequest) (*models.OptimalRoute, error) {
	algorithm, err := utils.ParseAlgorithmName(req.AlgorithmName)
	if err != nil {
		return nil, err
	}
	criterion, err := utils.ParseWeightCriterion(req.Criterion)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	if req.ExportWeight < 0 {
		return nil, fmt.Errorf("%w: export weight cannot be negative", ErrInvalidInput)
	}

	costM := multiplierOrDefault(req.CostMultiplier)
	distM := multiplierOrDefault(req.DistanceMultiplier)
	timeM := multiplierOrDefault(req.TimeMultiplier)

	origin, err := p.resolvePort(ctx, req.Source)
	if err != nil {
		return nil, err
	}
	destination, err := p.resolvePort(ctx, req.Destination)
	if err != nil {
		return nil, err
	}
	if origin.Name == destination.Name {
		return nil, fmt.Errorf("%w: origin and destination must be different ports", ErrInvalidInput)
	}

	key := planKey{
		origin:       origin.Name,
		destination:  destination.Name,
		algorithm:    algorithm,
		criterion:    criterion,
		exportWeight: req.ExportWeight,
		costM:        costM,
		distM:        distM,
		timeM:        timeM,
	}
	if p.cache != nil {
		if record, ok := p.cache.Get(key); ok {
			p.logger.Debug("route served from cache",
				zap.String("origin", origin.Name),
				zap.String("destination", destination.Name))
			return record, nil
		}
	}

	// Always load the full multimodal snapshot so intermodal paths between
	// maritime and air ports stay possible. The requested mode is kept for
	// record-keeping only.
	ports, err := p.ports.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load ports: %w", err)
	}
	connections, err := p.connections.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load connections: %w", err)
	}

	var service AlgorithmService
	switch algorithm {
	case models.AlgorithmAStar:
		service = NewAStarService()
	case models.AlgorithmDijkstra:
		service = NewDijkstraService(criterion)
	case models.AlgorithmBellmanFord:
		service = NewBellmanFordService(costM, distM, timeM)
	}

	service.BuildGraph(ports, connections)

	total, visited, err := service.ComputePath(origin.Name, destination.Name, req.ExportWeight)
	if err != nil {
		return nil, fmt.Errorf("%s computation failed: %w", algorithm, err)
	}
	if math.IsInf(total, 1) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrNoRouteFound, origin.Name, destination.Name)
	}

	legs, err := resolveRouteLegs(connections, visited)
	if err != nil {
		return nil, err
	}

	// The algorithm's scalar is its own optimization metric; the reported
	// totals always come from the real connections traversed.
	var totalDistance, totalTime, totalCost float64
	for _, leg := range legs {
		totalDistance += leg.DistanceKm
		totalTime += leg.TimeHours
		totalCost += leg.CostUSD
	}

	record, err := p.routeService.Register(
		origin.ID, origin.Name,
		destination.ID, destination.Name,
		utils.ParseRouteMode(req.Mode),
		algorithm,
		totalCost, totalDistance, totalTime,
		visited,
	)
	if err != nil {
		return nil, err
	}

	if err := p.routes.Save(ctx, record); err != nil {
		return nil, fmt.Errorf("could not persist route: %w", err)
	}
	if p.cache != nil {
		p.cache.Add(key, record)
	}

	p.logger.Info("route computed",
		zap.String("origin", origin.Name),
		zap.String("destination", destination.Name),
		zap.String("algorithm", string(algorithm)),
		zap.Float64("total_distance_km", totalDistance),
		zap.Float64("total_time_hours", totalTime),
		zap.Float64("total_cost_usd", totalCost),
		zap.Int("visited_ports", len(visited)))

	return record, nil
}

// GetRoute fetches a previously persisted record.
func (p *RoutePlanner) GetRoute(ctx context.Context, id string) (*models.OptimalRoute, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: route id cannot be empty", ErrInvalidInput)
	}
	return p.routes.FindByID(ctx, id)
}
