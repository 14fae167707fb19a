package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kjc-group/user-service/internal/handlers"
)

// SetupSystemRoutes 设置健康检查与诊断路由
func SetupSystemRoutes(router *gin.Engine, h *handlers.SystemHandler) {
	router.GET("/", h.Root)
	router.GET("/health", h.Health)
	router.GET("/api/data", h.GetData)
	router.GET("/mongodb/test", h.TestMongo)
}
