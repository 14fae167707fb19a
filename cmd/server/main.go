package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/kjc-group/user-service/docs"
	"github.com/kjc-group/user-service/internal/config"
	"github.com/kjc-group/user-service/internal/handlers"
	"github.com/kjc-group/user-service/internal/middleware"
	"github.com/kjc-group/user-service/internal/repositories"
	"github.com/kjc-group/user-service/internal/routes"
	"github.com/kjc-group/user-service/internal/services"
	"github.com/kjc-group/user-service/pkg/db"
)

// @title KJC User Record Service API
// @version 1.0
// @description 基于 MongoDB 的用户记录管理服务
// @BasePath /
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}

	config.LoadConfig()

	// 初始化 MongoDB 连接池
	db.InitDB()
	defer db.CloseDB() // 确保在 main 函数退出时断开连接

	router := gin.Default()
	router.Use(cors.Default())
	router.Use(middleware.RequestID())

	// 组装用户模块
	userRepo := repositories.NewMongoUserRepository(db.GetDB())
	userService := services.NewUserService(userRepo)
	userHandler := handlers.NewUserHandler(userService)
	systemHandler := handlers.NewSystemHandler()

	routes.SetupRoutes(router, userHandler, systemHandler)

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	addr := config.AppConfig.ServerHost + ":" + config.AppConfig.ServerPort
	log.Printf("Server starting on %s...", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
