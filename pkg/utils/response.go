package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse 定义了标准的错误响应结构
type ErrorResponse struct {
	Status  string   `json:"status"`            // 固定为 "error"
	Message string   `json:"message"`           // 错误信息
	Details []string `json:"details,omitempty"` // 可选的错误详情
}

// RespondJSON 是一个通用的辅助函数，用于发送 JSON 响应
func RespondJSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// RespondError 发送一个标准的错误 JSON 响应
// status: HTTP 状态码 (例如 http.StatusNotFound, http.StatusInternalServerError)
// message: 主要的错误信息
// details: (可选) 额外的错误详情
func RespondError(c *gin.Context, status int, message string, details ...string) {
	response := ErrorResponse{
		Status:  "error",
		Message: message,
	}
	if len(details) > 0 {
		response.Details = details
	}
	RespondJSON(c, status, response)
}

// RespondValidationError 发送用于处理参数校验错误的特定响应
func RespondValidationError(c *gin.Context, details ...string) {
	RespondError(c, http.StatusBadRequest, "Invalid request payload", details...)
}

// RespondNotFoundError 发送资源未找到错误
func RespondNotFoundError(c *gin.Context, message string) {
	RespondError(c, http.StatusNotFound, message)
}

// RespondInternalServerError 发送服务器内部错误
// errDetails 可以是 err.Error()
func RespondInternalServerError(c *gin.Context, message string, errDetails ...string) {
	RespondError(c, http.StatusInternalServerError, message, errDetails...)
}
