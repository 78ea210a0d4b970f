package repository

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/saulfrancisco-ruizacevedo/gocypher"

	"port-route-server/models"
)

// Neo4jConnectionRepository stores connections as directed
// (:Port)-[:CONNECTED]->(:Port) relationships carrying the measures as
// properties. The endpoint ids/names live on the port nodes themselves.
type Neo4jConnectionRepository struct {
	runner DBRunner
}

func NewNeo4jConnectionRepository(runner DBRunner) *Neo4jConnectionRepository {
	return &Neo4jConnectionRepository{runner: runner}
}

func (r *Neo4jConnectionRepository) Save(ctx context.Context, conn *models.PortConnection) error {
	query, params, err := gocypher.NewQueryBuilder().
		Match(gocypher.N("a", "Port").WithProperties(map[string]interface{}{"name": conn.PortAName})).
		Match(gocypher.N("b", "Port").WithProperties(map[string]interface{}{"name": conn.PortBName})).
		Create(
			gocypher.N("a", ""),
			gocypher.R("r", "CONNECTED").To().WithProperties(map[string]interface{}{
				"id":            conn.ID,
				"distance_km":   conn.DistanceKm,
				"time_hours":    conn.TimeHours,
				"cost_usd":      conn.CostUSD,
				"route_type":    conn.RouteType,
				"is_restricted": conn.IsRestricted,
			}),
			gocypher.N("b", ""),
		).
		Build()
	if err != nil {
		return err
	}
	_, err = r.runner.Run(ctx, query, params)
	return err
}

func connectionFromRecord(record *neo4j.Record) (models.PortConnection, error) {
	value, ok := record.Get("r")
	if !ok {
		return models.PortConnection{}, fmt.Errorf("could not find return value 'r' in query result")
	}
	rel, ok := value.(neo4j.Relationship)
	if !ok {
		return models.PortConnection{}, fmt.Errorf("return value 'r' is not a relationship")
	}

	conn := models.PortConnection{
		ID:           stringProp(rel.Props, "id"),
		DistanceKm:   floatProp(rel.Props, "distance_km"),
		TimeHours:    floatProp(rel.Props, "time_hours"),
		CostUSD:      floatProp(rel.Props, "cost_usd"),
		RouteType:    stringProp(rel.Props, "route_type"),
		IsRestricted: boolProp(rel.Props, "is_restricted"),
	}

	if v, ok := record.Get("a_id"); ok {
		conn.PortAID, _ = v.(string)
	}
	if v, ok := record.Get("a_name"); ok {
		conn.PortAName, _ = v.(string)
	}
	if v, ok := record.Get("b_id"); ok {
		conn.PortBID, _ = v.(string)
	}
	if v, ok := record.Get("b_name"); ok {
		conn.PortBName, _ = v.(string)
	}
	return conn, nil
}

const connectionReturnClause = " RETURN r, a.id AS a_id, a.name AS a_name, b.id AS b_id, b.name AS b_name"

func (r *Neo4jConnectionRepository) findMany(ctx context.Context, query string, params map[string]interface{}) ([]models.PortConnection, error) {
	result, err := r.runner.Run(ctx, query, params)
	if err != nil {
		return nil, err
	}
	conns := make([]models.PortConnection, 0, len(result.Records))
	for _, record := range result.Records {
		conn, err := connectionFromRecord(record)
		if err != nil {
			return nil, err
		}
		conns = append(conns, conn)
	}
	return conns, nil
}

func (r *Neo4jConnectionRepository) FindByID(ctx context.Context, id string) (*models.PortConnection, error) {
	conns, err := r.findMany(ctx,
		"MATCH (a:Port)-[r:CONNECTED {id: $id}]->(b:Port)"+connectionReturnClause,
		map[string]interface{}{"id": id})
	if err != nil {
		return nil, err
	}
	if len(conns) == 0 {
		return nil, ErrNotFound
	}
	return &conns[0], nil
}

func (r *Neo4jConnectionRepository) FindByPortName(ctx context.Context, name string) ([]models.PortConnection, error) {
	return r.findMany(ctx,
		"MATCH (a:Port)-[r:CONNECTED]->(b:Port) WHERE a.name = $name OR b.name = $name"+connectionReturnClause,
		map[string]interface{}{"name": name})
}

func (r *Neo4jConnectionRepository) FindAll(ctx context.Context) ([]models.PortConnection, error) {
	return r.findMany(ctx,
		"MATCH (a:Port)-[r:CONNECTED]->(b:Port)"+connectionReturnClause,
		map[string]interface{}{})
}

func (r *Neo4jConnectionRepository) SetRestricted(ctx context.Context, id string, restricted bool) error {
	result, err := r.runner.Run(ctx,
		"MATCH ()-[r:CONNECTED {id: $id}]->() SET r.is_restricted = $restricted RETURN r",
		map[string]interface{}{"id": id, "restricted": restricted})
	if err != nil {
		return err
	}
	if len(result.Records) == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Neo4jConnectionRepository) Count(ctx context.Context) (int, error) {
	result, err := r.runner.Run(ctx,
		"MATCH ()-[r:CONNECTED]->() RETURN count(r) AS total",
		map[string]interface{}{})
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
