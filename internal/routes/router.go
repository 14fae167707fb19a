package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kjc-group/user-service/internal/handlers"
)

// SetupRoutes 初始化所有路由
func SetupRoutes(router *gin.Engine, userHandler *handlers.UserHandler, systemHandler *handlers.SystemHandler) {
	SetupSystemRoutes(router, systemHandler) // 健康检查与诊断路由
	SetupUserRoutes(router, userHandler)     // 用户模块路由
}
