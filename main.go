package main

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"port-route-server/config"
	"port-route-server/handlers"
	"port-route-server/repository"
	"port-route-server/seed"
	"port-route-server/services"
)

func buildRepositories(ctx context.Context, cfg config.Config, logger *zap.Logger) (repository.PortRepository, repository.ConnectionRepository, repository.RouteRepository, func()) {
	if !cfg.UseNeo4j() {
		logger.Info("no NEO4J_URI configured, using in-memory store")
		store := repository.NewMemoryStore()
		return store.Ports(), store.Connections(), store.Routes(), func() {}
	}

	executor, err := repository.NewNeo4jExecutor(cfg.Neo4jURI, cfg.Neo4jUser, cfg.Neo4jPassword, cfg.Neo4jDatabase)
	if err != nil {
		logger.Fatal("could not create neo4j driver", zap.Error(err))
	}
	if err := executor.Verify(ctx); err != nil {
		logger.Fatal("could not reach neo4j", zap.String("uri", cfg.Neo4jURI), zap.Error(err))
	}
	logger.Info("connected to neo4j", zap.String("uri", cfg.Neo4jURI), zap.String("database", cfg.Neo4jDatabase))

	closer := func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := executor.Close(shutdownCtx); err != nil {
			logger.Warn("neo4j driver close failed", zap.Error(err))
		}
	}
	return repository.NewNeo4jPortRepository(executor),
		repository.NewNeo4jConnectionRepository(executor),
		repository.NewNeo4jRouteRepository(executor),
		closer
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.Load()
	ctx := context.Background()

	ports, connections, routes, closeRepos := buildRepositories(ctx, cfg, logger)
	defer closeRepos()

	portService := services.NewPortService(ports)
	connectionService := services.NewConnectionService(ports, connections)
	planner, err := services.NewRoutePlanner(ports, connections, routes, cfg.RouteCacheSize, logger)
	if err != nil {
		logger.Fatal("could not build route planner", zap.Error(err))
	}

	// Seed only an empty store so restarts against a populated database
	// never duplicate the datasets.
	portCount, err := ports.Count(ctx)
	if err != nil {
		logger.Fatal("could not count ports", zap.Error(err))
	}
	if portCount == 0 {
		seeder := seed.NewSeeder(portService, connectionService, logger)
		if err := seeder.Run(ctx, seed.Sources{
			MaritimePortsURL: cfg.MaritimePortsCSVURL,
			AirPortsURL:      cfg.AirPortsCSVURL,
			ConnectionsURL:   cfg.ConnectionsCSVURL,
		}); err != nil {
			logger.Fatal("seeding failed", zap.Error(err))
		}
	} else {
		logger.Info("store already populated, skipping seed", zap.Int("ports", portCount))
	}

	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(corsConfig))

	handlers.Register(r,
		handlers.NewRouteHandler(planner, ports, logger),
		handlers.NewPortHandler(portService),
		handlers.NewConnectionHandler(connectionService),
	)

	logger.Info("server listening", zap.String("addr", cfg.ServerAddr))
	if err := r.Run(cfg.ServerAddr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
