package game

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the games endpoints under r.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	games := r.Group("/games")
	{
		games.GET("", handler.ListGames)
		games.GET("/:id", handler.GetGame)
		games.POST("", handler.CreateGame)
		games.PUT("/:id", handler.UpdateGame)
		games.DELETE("/:id", handler.DeleteGame)
	}
}
