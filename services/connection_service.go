package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"port-route-server/models"
	"port-route-server/repository"
)

// ConnectionService validates and persists connections between known ports.
type ConnectionService struct {
	ports       repository.PortRepository
	connections repository.ConnectionRepository
}

func NewConnectionService(ports repository.PortRepository, connections repository.ConnectionRepository) *ConnectionService {
	return &ConnectionService{ports: ports, connections: connections}
}

func (s *ConnectionService) Create(ctx context.Context, req models.CreateConnectionRequest) (*models.PortConnection, error) {
	if req.DistanceKm <= 0 {
		return nil, fmt.Errorf("%w: connection distance must be greater than 0", ErrInvalidInput)
	}
	if req.TimeHours <= 0 {
		return nil, fmt.Errorf("%w: connection time must be greater than 0", ErrInvalidInput)
	}
	if req.CostUSD <= 0 {
		return nil, fmt.Errorf("%w: connection cost must be greater than 0", ErrInvalidInput)
	}

	portA, err := s.resolveEndpoint(ctx, req.PortA)
	if err != nil {
		return nil, err
	}
	portB, err := s.resolveEndpoint(ctx, req.PortB)
	if err != nil {
		return nil, err
	}
	if portA.ID == portB.ID {
		return nil, fmt.Errorf("%w: connection endpoints must be different ports", ErrInvalidInput)
	}

	conn := &models.PortConnection{
		ID:         uuid.NewString(),
		PortAID:    portA.ID,
		PortAName:  portA.Name,
		PortBID:    portB.ID,
		PortBName:  portB.Name,
		DistanceKm: req.DistanceKm,
		TimeHours:  req.TimeHours,
		CostUSD:    req.CostUSD,
		RouteType:  req.RouteType,
	}
	if err := s.connections.Save(ctx, conn); err != nil {
		return nil, err
	}
	return conn, nil
}

func (s *ConnectionService) resolveEndpoint(ctx context.Context, identifier string) (*models.Port, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, fmt.Errorf("%w: empty identifier", ErrPortNotFound)
	}
	if port, err := s.ports.FindByID(ctx, identifier); err == nil {
		return port, nil
	}
	port, err := s.ports.FindByName(ctx, identifier)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrPortNotFound, identifier)
	}
	return port, nil
}

// List returns all connections, or only those touching the named port.
func (s *ConnectionService) List(ctx context.Context, portName string) ([]models.PortConnection, error) {
	if strings.TrimSpace(portName) == "" {
		return s.connections.FindAll(ctx)
	}
	return s.connections.FindByPortName(ctx, portName)
}

// SetRestriction toggles whether a connection is usable for routing.
func (s *ConnectionService) SetRestriction(ctx context.Context, id string, restricted bool) (*models.PortConnection, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: connection id cannot be empty", ErrInvalidInput)
	}
	if err := s.connections.SetRestricted(ctx, id, restricted); err != nil {
		return nil, err
	}
	return s.connections.FindByID(ctx, id)
}
