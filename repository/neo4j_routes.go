package repository

import (
	"context"
	"time"

	"github.com/saulfrancisco-ruizacevedo/gocypher"

	"port-route-server/models"
)

// Neo4jRouteRepository stores computed route records as (:Route) nodes.
// Records are write-once; Save is only ever called with fresh ids.
type Neo4jRouteRepository struct {
	runner DBRunner
}

func NewNeo4jRouteRepository(runner DBRunner) *Neo4jRouteRepository {
	return &Neo4jRouteRepository{runner: runner}
}

func (r *Neo4jRouteRepository) Save(ctx context.Context, route *models.OptimalRoute) error {
	query, params, err := gocypher.NewQueryBuilder().
		Merge(gocypher.N("n", "Route").WithProperties(map[string]interface{}{"id": route.ID})).
		Set(map[string]interface{}{
			"n.origin_port_id":        route.OriginPortID,
			"n.origin_port_name":      route.OriginPortName,
			"n.destination_port_id":   route.DestinationPortID,
			"n.destination_port_name": route.DestinationPortName,
			"n.route_mode":            string(route.RouteMode),
			"n.algorithm_used":        string(route.AlgorithmUsed),
			"n.total_cost":            route.TotalCost,
			"n.total_distance":        route.TotalDistance,
			"n.total_time":            route.TotalTime,
			"n.visited_ports":         route.VisitedPorts,
			"n.created_at":            route.CreatedAt.Format(time.RFC3339Nano),
		}).
		Return("n").
		Build()
	if err != nil {
		return err
	}
	_, err = r.runner.Run(ctx, query, params)
	return err
}

func (r *Neo4jRouteRepository) FindByID(ctx context.Context, id string) (*models.OptimalRoute, error) {
	query, params, err := gocypher.NewQueryBuilder().
		Match(gocypher.N("n", "Route").WithProperties(map[string]interface{}{"id": id})).
		Return("n").
		Build()
	if err != nil {
		return nil, err
	}
	result, err := r.runner.Run(ctx, query, params)
	if err != nil {
		return nil, err
	}
	node, err := singleNode(result, "n")
	if err != nil {
		return nil, err
	}

	createdAt, _ := time.Parse(time.RFC3339Nano, stringProp(node.Props, "created_at"))
	route := models.OptimalRoute{
		ID:                  stringProp(node.Props, "id"),
		OriginPortID:        stringProp(node.Props, "origin_port_id"),
		OriginPortName:      stringProp(node.Props, "origin_port_name"),
		DestinationPortID:   stringProp(node.Props, "destination_port_id"),
		DestinationPortName: stringProp(node.Props, "destination_port_name"),
		RouteMode:           models.RouteMode(stringProp(node.Props, "route_mode")),
		AlgorithmUsed:       models.AlgorithmName(stringProp(node.Props, "algorithm_used")),
		TotalCost:           floatProp(node.Props, "total_cost"),
		TotalDistance:       floatProp(node.Props, "total_distance"),
		TotalTime:           floatProp(node.Props, "total_time"),
		VisitedPorts:        stringSliceProp(node.Props, "visited_ports"),
		CreatedAt:           createdAt,
	}
	return &route, nil
}
