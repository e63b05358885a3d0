package incapacity

import (
	"github.com/ProfileJass/Incapacities/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RegisterRoutes mounts the incapacity endpoints. Creation is guarded
// by the idempotency middleware so a retried POST does not file the
// same leave twice.
func RegisterRoutes(api *gin.RouterGroup, handler *Handler, rdb *redis.Client) {
	incapacities := api.Group("/incapacities")
	{
		incapacities.POST("", middleware.Idempotency(rdb), handler.Create)
		incapacities.GET("", handler.GetAll)
		incapacities.GET("/user/:userId", handler.GetByUser)
		incapacities.PUT("/:id", handler.Update)
	}
}
