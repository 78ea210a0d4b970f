// Package config reads the process configuration from the environment, with
// an optional .env file for local development.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddr string

	Neo4jURI      string
	Neo4jUser     string
	Neo4jPassword string
	Neo4jDatabase string

	MaritimePortsCSVURL string
	AirPortsCSVURL      string
	ConnectionsCSVURL   string

	RouteCacheSize int
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// Load reads the configuration. A missing .env file is not an error; the
// real environment always wins.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		ServerAddr: getenv("SERVER_ADDR", ":8080"),

		Neo4jURI:      os.Getenv("NEO4J_URI"),
		Neo4jUser:     getenv("NEO4J_USER", "neo4j"),
		Neo4jPassword: os.Getenv("NEO4J_PASSWORD"),
		Neo4jDatabase: getenv("NEO4J_DATABASE", "neo4j"),

		MaritimePortsCSVURL: os.Getenv("MARITIME_PORTS_CSV_URL"),
		AirPortsCSVURL:      os.Getenv("AIR_PORTS_CSV_URL"),
		ConnectionsCSVURL:   os.Getenv("CONNECTIONS_CSV_URL"),

		RouteCacheSize: getenvInt("ROUTE_CACHE_SIZE", 128),
	}
}

// UseNeo4j reports whether a graph database backend is configured.
func (c Config) UseNeo4j() bool {
	return c.Neo4jURI != ""
}
