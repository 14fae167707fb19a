package db

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/kjc-group/user-service/internal/config"
)

var (
	mongoClient *mongo.Client
	mongoDB     *mongo.Database
)

// ConnectTimeout 限定所有数据库操作（包括初始连接）的最长等待时间，
// 避免 MongoDB 不可达时请求无限挂起。
const ConnectTimeout = 5 * time.Second

// InitDB 初始化共享的 MongoDB 客户端连接池。
// 连接串通过环境变量 MONGODB_URL 获取，数据库名通过 MONGODB_DATABASE 获取（默认 kjc-group-staging）。
func InitDB() {
	cfg := config.AppConfig
	if cfg.MongoURL == "" {
		log.Fatal("MONGODB_URL is not set. Cannot initialize database connection.")
	}

	clientOpts := options.Client().
		ApplyURI(cfg.MongoURL).
		SetServerSelectionTimeout(ConnectTimeout).
		SetConnectTimeout(ConnectTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), ConnectTimeout)
	defer cancel()

	var err error
	mongoClient, err = mongo.Connect(ctx, clientOpts)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	// 启动时主动 Ping 一次，尽早暴露连接串或网络问题
	pingCtx, pingCancel := context.WithTimeout(context.Background(), ConnectTimeout)
	defer pingCancel()
	if err := mongoClient.Ping(pingCtx, readpref.Primary()); err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}

	mongoDB = mongoClient.Database(cfg.DatabaseName)
	log.Printf("Successfully connected to MongoDB, using database: %s", cfg.DatabaseName)
}

// GetDB 返回共享的数据库实例
func GetDB() *mongo.Database {
	if mongoDB == nil {
		log.Fatal("Database not initialized. Call InitDB first.")
	}
	return mongoDB
}

// GetClient 返回底层的 MongoDB 客户端（诊断探针使用）
func GetClient() *mongo.Client {
	if mongoClient == nil {
		log.Fatal("Database not initialized. Call InitDB first.")
	}
	return mongoClient
}

// CloseDB 断开 MongoDB 连接 (通常在应用退出时调用)
func CloseDB() {
	if mongoClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), ConnectTimeout)
		defer cancel()
		if err := mongoClient.Disconnect(ctx); err != nil {
			log.Printf("Error closing MongoDB connection: %v", err)
			return
		}
		log.Println("Database connection closed.")
	}
}
