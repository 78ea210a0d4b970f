// Package repository holds the persistence boundary of the service. The
// planner and the management services only see these interfaces; the backing
// store is either Neo4j or the in-memory fallback.
package repository

import (
	"context"
	"errors"

	"port-route-server/models"
)

// ErrNotFound is the sentinel returned by lookups that match no record.
var ErrNotFound = errors.New("record not found")

type PortRepository interface {
	Save(ctx context.Context, port *models.Port) error
	FindByID(ctx context.Context, id string) (*models.Port, error)
	FindByName(ctx context.Context, name string) (*models.Port, error)
	FindByType(ctx context.Context, portType models.PortType) ([]models.Port, error)
	FindAll(ctx context.Context) ([]models.Port, error)
	Count(ctx context.Context) (int, error)
}

type ConnectionRepository interface {
	Save(ctx context.Context, conn *models.PortConnection) error
	FindByID(ctx context.Context, id string) (*models.PortConnection, error)
	FindByPortName(ctx context.Context, name string) ([]models.PortConnection, error)
	FindAll(ctx context.Context) ([]models.PortConnection, error)
	SetRestricted(ctx context.Context, id string, restricted bool) error
	Count(ctx context.Context) (int, error)
}

type RouteRepository interface {
	Save(ctx context.Context, route *models.OptimalRoute) error
	FindByID(ctx context.Context, id string) (*models.OptimalRoute, error)
}
