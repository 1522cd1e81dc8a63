package platform

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the platforms endpoints under r.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	platforms := r.Group("/platforms")
	{
		platforms.GET("", handler.ListPlatforms)
		platforms.GET("/:id", handler.GetPlatform)
		platforms.GET("/:id/games/count", handler.CountGames)
		platforms.POST("", handler.CreatePlatform)
		platforms.PUT("/:id", handler.UpdatePlatform)
		platforms.DELETE("/:id", handler.DeletePlatform)
	}
}
