// Package seed loads the initial port and connection datasets from remote
// CSV files. Rows that fail to parse are logged and skipped so one bad line
// never aborts a whole import.
package seed

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"port-route-server/models"
	"port-route-server/services"
)

type Seeder struct {
	ports       *services.PortService
	connections *services.ConnectionService
	client      *http.Client
	logger      *zap.Logger
}

func NewSeeder(ports *services.PortService, connections *services.ConnectionService, logger *zap.Logger) *Seeder {
	return &Seeder{
		ports:       ports,
		connections: connections,
		client:      &http.Client{Timeout: 30 * time.Second},
		logger:      logger,
	}
}

// fetchCSV downloads and fully parses one CSV document, returning the
// header row separately.
func (s *Seeder) fetchCSV(ctx context.Context, url string) ([]string, [][]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("could not fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("fetching %s: unexpected status %s", url, resp.Status)
	}

	reader := csv.NewReader(resp.Body)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("reading header of %s: %w", url, err)
	}
	for i := range header {
		header[i] = strings.ToLower(strings.TrimSpace(header[i]))
	}

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			s.logger.Warn("skipping unreadable csv row", zap.String("url", url), zap.Error(err))
			continue
		}
		rows = append(rows, row)
	}
	return header, rows, nil
}

// columnIndex maps the wanted column names to their positions in the header.
// Missing required columns fail the whole import.
func columnIndex(header []string, required ...string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	for _, name := range required {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("csv is missing required column %q", name)
		}
	}
	return index, nil
}

func field(row []string, index map[string]int, name string) string {
	i, ok := index[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func floatField(row []string, index map[string]int, name string) (float64, error) {
	raw := field(row, index, name)
	if raw == "" {
		return 0, fmt.Errorf("column %q is empty", name)
	}
	return strconv.ParseFloat(raw, 64)
}

// SeedPorts imports one port dataset. All rows get the given port type.
func (s *Seeder) SeedPorts(ctx context.Context, url, portType string) (int, error) {
	header, rows, err := s.fetchCSV(ctx, url)
	if err != nil {
		return 0, err
	}
	index, err := columnIndex(header, "name", "country", "latitude", "longitude", "capacity")
	if err != nil {
		return 0, err
	}

	imported := 0
	for _, row := range rows {
		lat, latErr := floatField(row, index, "latitude")
		lon, lonErr := floatField(row, index, "longitude")
		capacity, capErr := floatField(row, index, "capacity")
		if latErr != nil || lonErr != nil || capErr != nil {
			s.logger.Warn("skipping malformed port row",
				zap.String("url", url),
				zap.Strings("row", row))
			continue
		}

		_, err := s.ports.Create(ctx, models.CreatePortRequest{
			Name:        field(row, index, "name"),
			Country:     field(row, index, "country"),
			Latitude:    lat,
			Longitude:   lon,
			InGraphType: field(row, index, "in_graph_type"),
			Capacity:    capacity,
			PortType:    portType,
		})
		if err != nil {
			s.logger.Warn("skipping rejected port row",
				zap.String("url", url),
				zap.String("name", field(row, index, "name")),
				zap.Error(err))
			continue
		}
		imported++
	}

	s.logger.Info("ports seeded",
		zap.String("url", url),
		zap.String("port_type", portType),
		zap.Int("imported", imported),
		zap.Int("skipped", len(rows)-imported))
	return imported, nil
}

// SeedConnections imports the connection dataset. Endpoint ports must have
// been seeded first.
func (s *Seeder) SeedConnections(ctx context.Context, url string) (int, error) {
	header, rows, err := s.fetchCSV(ctx, url)
	if err != nil {
		return 0, err
	}
	index, err := columnIndex(header, "port_a", "port_b", "distance_km", "time_hours", "cost_usd")
	if err != nil {
		return 0, err
	}

	imported := 0
	for _, row := range rows {
		distance, distErr := floatField(row, index, "distance_km")
		hours, timeErr := floatField(row, index, "time_hours")
		cost, costErr := floatField(row, index, "cost_usd")
		if distErr != nil || timeErr != nil || costErr != nil {
			s.logger.Warn("skipping malformed connection row",
				zap.String("url", url),
				zap.Strings("row", row))
			continue
		}

		_, err := s.connections.Create(ctx, models.CreateConnectionRequest{
			PortA:      field(row, index, "port_a"),
			PortB:      field(row, index, "port_b"),
			DistanceKm: distance,
			TimeHours:  hours,
			CostUSD:    cost,
			RouteType:  field(row, index, "route_type"),
		})
		if err != nil {
			s.logger.Warn("skipping rejected connection row",
				zap.String("url", url),
				zap.String("port_a", field(row, index, "port_a")),
				zap.String("port_b", field(row, index, "port_b")),
				zap.Error(err))
			continue
		}
		imported++
	}

	s.logger.Info("connections seeded",
		zap.String("url", url),
		zap.Int("imported", imported),
		zap.Int("skipped", len(rows)-imported))
	return imported, nil
}

// Sources names the datasets one full seeding run pulls in. Empty URLs are
// skipped.
type Sources struct {
	MaritimePortsURL string
	AirPortsURL      string
	ConnectionsURL   string
}

// Run imports every configured dataset, ports before connections.
func (s *Seeder) Run(ctx context.Context, src Sources) error {
	if src.MaritimePortsURL != "" {
		if _, err := s.SeedPorts(ctx, src.MaritimePortsURL, "maritime"); err != nil {
			return err
		}
	}
	if src.AirPortsURL != "" {
		if _, err := s.SeedPorts(ctx, src.AirPortsURL, "air"); err != nil {
			return err
		}
	}
	if src.ConnectionsURL != "" {
		if _, err := s.SeedConnections(ctx, src.ConnectionsURL); err != nil {
			return err
		}
	}
	return nil
}
