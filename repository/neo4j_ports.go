package repository

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/saulfrancisco-ruizacevedo/gocypher"

	"port-route-server/models"
)

// Neo4jPortRepository stores ports as (:Port) nodes keyed by their id.
type Neo4jPortRepository struct {
	runner DBRunner
}

func NewNeo4jPortRepository(runner DBRunner) *Neo4jPortRepository {
	return &Neo4jPortRepository{runner: runner}
}

func portFromNode(node neo4j.Node) models.Port {
	return models.Port{
		ID:          stringProp(node.Props, "id"),
		Name:        stringProp(node.Props, "name"),
		Country:     stringProp(node.Props, "country"),
		Latitude:    floatProp(node.Props, "latitude"),
		Longitude:   floatProp(node.Props, "longitude"),
		InGraphType: stringProp(node.Props, "in_graph_type"),
		Capacity:    floatProp(node.Props, "capacity"),
		PortType:    models.PortType(stringProp(node.Props, "port_type")),
	}
}

func (r *Neo4jPortRepository) Save(ctx context.Context, port *models.Port) error {
	query, params, err := gocypher.NewQueryBuilder().
		Merge(gocypher.N("n", "Port").WithProperties(map[string]interface{}{"id": port.ID})).
		Set(map[string]interface{}{
			"n.name":          port.Name,
			"n.country":       port.Country,
			"n.latitude":      port.Latitude,
			"n.longitude":     port.Longitude,
			"n.in_graph_type": port.InGraphType,
			"n.capacity":      port.Capacity,
			"n.port_type":     string(port.PortType),
		}).
		Return("n").
		Build()
	if err != nil {
		return err
	}
	_, err = r.runner.Run(ctx, query, params)
	return err
}

func (r *Neo4jPortRepository) findOne(ctx context.Context, props map[string]interface{}) (*models.Port, error) {
	query, params, err := gocypher.NewQueryBuilder().
		Match(gocypher.N("n", "Port").WithProperties(props)).
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
	port := portFromNode(node)
	return &port, nil
}

func (r *Neo4jPortRepository) FindByID(ctx context.Context, id string) (*models.Port, error) {
	return r.findOne(ctx, map[string]interface{}{"id": id})
}

func (r *Neo4jPortRepository) FindByName(ctx context.Context, name string) (*models.Port, error) {
	return r.findOne(ctx, map[string]interface{}{"name": name})
}

func (r *Neo4jPortRepository) findMany(ctx context.Context, query string, params map[string]interface{}) ([]models.Port, error) {
	result, err := r.runner.Run(ctx, query, params)
	if err != nil {
		return nil, err
	}
	ports := make([]models.Port, 0, len(result.Records))
	for _, record := range result.Records {
		value, ok := record.Get("n")
		if !ok {
			continue
		}
		if node, ok := value.(neo4j.Node); ok {
			ports = append(ports, portFromNode(node))
		}
	}
	return ports, nil
}

func (r *Neo4jPortRepository) FindByType(ctx context.Context, portType models.PortType) ([]models.Port, error) {
	return r.findMany(ctx,
		"MATCH (n:Port {port_type: $port_type}) RETURN n",
		map[string]interface{}{"port_type": string(portType)})
}

func (r *Neo4jPortRepository) FindAll(ctx context.Context) ([]models.Port, error) {
	return r.findMany(ctx, "MATCH (n:Port) RETURN n", map[string]interface{}{})
}

func (r *Neo4jPortRepository) Count(ctx context.Context) (int, error) {
	result, err := r.runner.Run(ctx, "MATCH (n:Port) RETURN count(n) AS total", map[string]interface{}{})
	if err != nil {
		return 0, err
	}
	if len(result.Records) == 0 {
		return 0, nil
	}
	value, ok := result.Records[0].Get("total")
	if !ok {
		return 0, nil
	}
	total, _ := value.(int64)
	return int(total), nil
}
