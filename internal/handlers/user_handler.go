package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kjc-group/user-service/internal/models"
	"github.com/kjc-group/user-service/internal/services"
	"github.com/kjc-group/user-service/pkg/utils"
)

// UserHandler 封装了用户相关的 HTTP 处理逻辑
type UserHandler struct {
	service services.UserService
}

// NewUserHandler 创建一个新的 UserHandler 实例
func NewUserHandler(service services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// UserExistsResponse 定义了用户名已存在时的响应结构（200 软冲突，返回既有记录）
type UserExistsResponse struct {
	Message string       `json:"message"`
	User    *models.User `json:"user"`
}

// DeleteUsersResponse 定义了按用户名模式删除的响应结构
type DeleteUsersResponse struct {
	Status                       string `json:"status"`
	Matched                      int64  `json:"matched"`
	UsernameContainsOrStartsWith string `json:"username_contains_or_startswith"`
}

const userExistsMessage = "Username already exists, user not created."

// CreateUser godoc
// @Summary 创建用户
// @Description 按默认模式填充缺省字段后创建用户。用户名已存在时不创建，返回既有记录（仍为 200）。
// @Tags Users
// @Accept json
// @Produce json
// @Param user body models.CreateUserPayload true "用户信息（全部字段可选）"
// @Success 200 {object} models.User "创建成功的用户，或 UserExistsResponse 包装的既有用户"
// @Failure 400 {object} utils.ErrorResponse "请求体不是合法 JSON"
// @Failure 500 {object} utils.ErrorResponse "服务器内部错误"
// @Router /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var payload models.CreateUserPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	user, existed, err := h.service.CreateUser(payload)
	if err != nil {
		utils.RespondInternalServerError(c, "Failed to create user", err.Error())
		return
	}

	if existed {
		utils.RespondJSON(c, http.StatusOK, UserExistsResponse{
			Message: userExistsMessage,
			User:    user,
		})
		return
	}

	utils.RespondJSON(c, http.StatusOK, user)
}

// ListUsers godoc
// @Summary 获取用户列表
// @Description 返回全部未软删除的用户，无分页
// @Tags Users
// @Produce json
// @Success 200 {array} models.User
// @Failure 500 {object} utils.ErrorResponse "服务器内部错误"
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers()
	if err != nil {
		utils.RespondInternalServerError(c, "Failed to list users", err.Error())
		return
	}
	utils.RespondJSON(c, http.StatusOK, users)
}

// GetUser godoc
// @Summary 获取单个用户
// @Description 按 id 在有效记录中查找，软删除或 id 非法均返回 404
// @Tags Users
// @Produce json
// @Param id path string true "用户 id"
// @Success 200 {object} models.User "响应中不含 id 字段"
// @Failure 404 {object} utils.ErrorResponse "用户未找到"
// @Failure 500 {object} utils.ErrorResponse "服务器内部错误"
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.service.GetUser(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			utils.RespondNotFoundError(c, "User not found")
		} else {
			utils.RespondInternalServerError(c, "Failed to get user", err.Error())
		}
		return
	}
	utils.RespondJSON(c, http.StatusOK, user)
}

// UpdateUser godoc
// @Summary 更新用户
// @Description 仅覆盖请求中提供的字段，updatedAt 无条件刷新；软删除的记录同样可以被更新
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "用户 id"
// @Param user body models.UpdateUserPayload true "要更新的字段"
// @Success 200 {object} models.User "更新后的用户，响应中不含 id 字段"
// @Failure 400 {object} utils.ErrorResponse "请求体不是合法 JSON"
// @Failure 404 {object} utils.ErrorResponse "用户未找到"
// @Failure 500 {object} utils.ErrorResponse "服务器内部错误"
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var payload models.UpdateUserPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	user, err := h.service.UpdateUser(c.Param("id"), payload)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			utils.RespondNotFoundError(c, "User not found")
		} else {
			utils.RespondInternalServerError(c, "Failed to update user", err.Error())
		}
		return
	}
	utils.RespondJSON(c, http.StatusOK, user)
}

// DeleteUsersByUsername godoc
// @Summary 按用户名模式软删除用户
// @Description 软删除用户名包含或以给定片段开头（大小写不敏感）的全部用户，无任何命中时返回 404
// @Tags Users
// @Produce json
// @Param username path string true "用户名片段"
// @Success 200 {object} DeleteUsersResponse
// @Failure 404 {object} utils.ErrorResponse "没有用户命中"
// @Failure 500 {object} utils.ErrorResponse "服务器内部错误"
// @Router /users/by-username/{username} [delete]
func (h *UserHandler) DeleteUsersByUsername(c *gin.Context) {
	fragment := c.Param("username")

	matched, err := h.service.DeleteUsersByUsername(fragment)
	if err != nil {
		if errors.Is(err, services.ErrNoUsersMatched) {
			utils.RespondNotFoundError(c, "No user found with username containing or starting with: "+fragment)
		} else {
			utils.RespondInternalServerError(c, "Failed to delete users", err.Error())
		}
		return
	}

	utils.RespondJSON(c, http.StatusOK, DeleteUsersResponse{
		Status:                       "deleted",
		Matched:                      matched,
		UsernameContainsOrStartsWith: fragment,
	})
}
