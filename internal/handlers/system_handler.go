package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/kjc-group/user-service/pkg/db"
)

// SystemHandler 封装了健康检查与诊断相关的 HTTP 处理逻辑
type SystemHandler struct{}

// NewSystemHandler 创建一个新的 SystemHandler 实例
func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

// probeCollection 是连通性探针使用的集合，与业务数据隔离
const probeCollection = "api_test"

// Root godoc
// @Summary 服务根路径
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (h *SystemHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "KJC Server API running!"})
}

// Health godoc
// @Summary 健康检查
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "server": "running"})
}

// GetData godoc
// @Summary 示例数据
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/data [get]
func (h *SystemHandler) GetData(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"data":  []string{"item1", "item2", "item3"},
		"count": 3,
	})
}

// TestMongo godoc
// @Summary MongoDB 连通性探针
// @Description Ping 数据库后往探针集合写入并读回一条文档。失败时返回错误详情，状态码仍为 200（探针只上报，不报错）。
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /mongodb/test [get]
func (h *SystemHandler) TestMongo(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), db.ConnectTimeout)
	defer cancel()

	if err := db.GetClient().Ping(ctx, readpref.Primary()); err != nil {
		respondProbeError(c, err)
		return
	}

	collection := db.GetDB().Collection(probeCollection)

	testDoc := bson.M{
		"message":   "Hello MongoDB",
		"timestamp": time.Now(),
		"probeId":   uuid.NewString(),
	}
	result, err := collection.InsertOne(ctx, testDoc)
	if err != nil {
		respondProbeError(c, err)
		return
	}

	// 写入后读回，验证完整的往返链路
	var foundDoc bson.M
	if err := collection.FindOne(ctx, bson.M{"_id": result.InsertedID}).Decode(&foundDoc); err != nil {
		respondProbeError(c, err)
		return
	}

	insertedID := ""
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		insertedID = oid.Hex()
		foundDoc["_id"] = insertedID
	}

	c.JSON(http.StatusOK, gin.H{
		"status":            "success",
		"mongodb_connected": true,
		"inserted_id":       insertedID,
		"document":          foundDoc,
	})
}

func respondProbeError(c *gin.Context, err error) {
	c.JSON(http.StatusOK, gin.H{
		"status":            "error",
		"mongodb_connected": false,
		"error":             err.Error(),
	})
}
