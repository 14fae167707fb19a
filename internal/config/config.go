package config

import (
	"log"
	"os"
	"sync"
)

// AppConfig holds the application configuration.
// It's populated once by LoadConfig.
var AppConfig Configuration
var once sync.Once

// Configuration defines the structure for application settings.
type Configuration struct {
	MongoURL     string
	DatabaseName string
	ServerHost   string
	ServerPort   string
}

const (
	envMongoURLKey      = "MONGODB_URL"       // MongoDB 连接串环境变量名，无默认值
	defaultDatabaseName = "kjc-group-staging" // 默认数据库名
	envDatabaseNameKey  = "MONGODB_DATABASE"  // 数据库名环境变量名
	defaultServerHost   = "0.0.0.0"           // 默认监听地址，允许外部访问
	envServerHostKey    = "SERVER_HOST"       // 监听地址环境变量名
	defaultServerPort   = "8000"              // 默认服务端口
	envServerPortKey    = "SERVER_PORT"       // 服务端口环境变量名
)

// LoadConfig loads configuration from environment variables or defaults.
// It should be called once at application startup.
func LoadConfig() {
	once.Do(func() {
		mongoURL := os.Getenv(envMongoURLKey)
		if mongoURL == "" {
			log.Printf("警告: %s 环境变量未设置。数据库初始化将会失败，请在启动前配置 MongoDB 连接串。", envMongoURLKey)
		}

		databaseName := os.Getenv(envDatabaseNameKey)
		if databaseName == "" {
			databaseName = defaultDatabaseName
			log.Printf("信息: %s 环境变量未设置。正在使用默认数据库 %s。", envDatabaseNameKey, defaultDatabaseName)
		}

		serverHost := os.Getenv(envServerHostKey)
		if serverHost == "" {
			serverHost = defaultServerHost
		}

		serverPort := os.Getenv(envServerPortKey)
		if serverPort == "" {
			serverPort = defaultServerPort
			log.Printf("信息: %s 环境变量未设置。正在使用默认端口 %s。", envServerPortKey, defaultServerPort)
		}

		AppConfig = Configuration{
			MongoURL:     mongoURL,
			DatabaseName: databaseName,
			ServerHost:   serverHost,
			ServerPort:   serverPort,
		}

		log.Println("应用配置已加载。")
	})
}
