package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kjc-group/user-service/internal/handlers"
)

// SetupUserRoutes 设置用户相关路由
func SetupUserRoutes(router *gin.Engine, h *handlers.UserHandler) {
	users := router.Group("/users")
	{
		// POST /users
		users.POST("", h.CreateUser)
		// GET /users
		users.GET("", h.ListUsers)
		// GET /users/:id
		users.GET("/:id", h.GetUser)
		// PUT /users/:id
		users.PUT("/:id", h.UpdateUser)
		// DELETE /users/by-username/:username
		users.DELETE("/by-username/:username", h.DeleteUsersByUsername)
	}
}
