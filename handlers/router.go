package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Register mounts every API route on the engine.
func Register(r *gin.Engine, routes *RouteHandler, ports *PortHandler, connections *ConnectionHandler) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	api := r.Group("/api/v1")
	{
		api.POST("/routes", routes.Generate)
		api.GET("/routes/:id", routes.Get)
		api.GET("/algorithms", routes.Algorithms)

		api.POST("/ports", ports.Create)
		api.GET("/ports", ports.List)
		api.GET("/ports/:id", ports.Get)
		api.PATCH("/ports/:id", ports.Update)

		api.POST("/connections", connections.Create)
		api.GET("/connections", connections.List)
		api.PATCH("/connections/:id/restriction", connections.SetRestriction)
	}
}
