package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjc-group/user-service/internal/models"
	"github.com/kjc-group/user-service/internal/services"
)

// stubUserService 以固定返回值实现 services.UserService
type stubUserService struct {
	user    *models.User
	users   []models.User
	existed bool
	matched int64
	err     error
}

func (s *stubUserService) CreateUser(models.CreateUserPayload) (*models.User, bool, error) {
	return s.user, s.existed, s.err
}

func (s *stubUserService) ListUsers() ([]models.User, error) {
	return s.users, s.err
}

func (s *stubUserService) GetUser(string) (*models.User, error) {
	return s.user, s.err
}

func (s *stubUserService) UpdateUser(string, models.UpdateUserPayload) (*models.User, error) {
	return s.user, s.err
}

func (s *stubUserService) DeleteUsersByUsername(string) (int64, error) {
	return s.matched, s.err
}

func setupUserRouter(service services.UserService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewUserHandler(service)
	router.POST("/users", h.CreateUser)
	router.GET("/users", h.ListUsers)
	router.GET("/users/:id", h.GetUser)
	router.PUT("/users/:id", h.UpdateUser)
	router.DELETE("/users/by-username/:username", h.DeleteUsersByUsername)
	return router
}

func sampleUser(hexID string) *models.User {
	username := "alice"
	email := "alice@itkjc.com"
	return &models.User{
		HexID:                    hexID,
		Username:                 &username,
		Email:                    &email,
		Phone:                    "0909090909",
		Type:                     "user",
		Status:                   "active",
		ExternalVerifyHistoryIds: []string{},
		CreatedAt:                models.NowStamp(),
		UpdatedAt:                models.NowStamp(),
	}
}

func TestCreateUserReturnsRecord(t *testing.T) {
	router := setupUserRouter(&stubUserService{user: sampleUser("665f1f77bcf86cd799439011")})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/users", bytes.NewBufferString(`{"username": "alice"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"665f1f77bcf86cd799439011"`)
	assert.Contains(t, w.Body.String(), `"username":"alice"`)
}

func TestCreateUserSoftConflict(t *testing.T) {
	router := setupUserRouter(&stubUserService{user: sampleUser("665f1f77bcf86cd799439011"), existed: true})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/users", bytes.NewBufferString(`{"username": "alice"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	// 软冲突仍是 200，响应中带提示消息和既有记录
	assert.Equal(t, http.StatusOK, w.Code)

	var resp UserExistsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Username already exists, user not created.", resp.Message)
	require.NotNil(t, resp.User)
	assert.Equal(t, "665f1f77bcf86cd799439011", resp.User.HexID)
}

func TestCreateUserInvalidJSON(t *testing.T) {
	router := setupUserRouter(&stubUserService{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/users", bytes.NewBufferString(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"error"`)
}

func TestListUsersReturnsArray(t *testing.T) {
	router := setupUserRouter(&stubUserService{users: []models.User{*sampleUser("665f1f77bcf86cd799439011")}})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var users []models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	require.Len(t, users, 1)
	assert.Equal(t, "665f1f77bcf86cd799439011", users[0].HexID)
}

func TestGetUserNotFound(t *testing.T) {
	router := setupUserRouter(&stubUserService{err: services.ErrUserNotFound})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users/665f1f77bcf86cd799439011", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"message":"User not found"`)
}

func TestGetUserOmitsIDInBody(t *testing.T) {
	// 服务层在 Get 路径不会填充 HexID，响应中不应出现 id 字段
	router := setupUserRouter(&stubUserService{user: sampleUser("")})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users/665f1f77bcf86cd799439011", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), `"id":`)
	assert.Contains(t, w.Body.String(), `"username":"alice"`)
}

func TestUpdateUserNotFound(t *testing.T) {
	router := setupUserRouter(&stubUserService{err: services.ErrUserNotFound})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/users/bad-id", bytes.NewBufferString(`{"point": 1}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"message":"User not found"`)
}

func TestDeleteUsersByUsernameSummary(t *testing.T) {
	router := setupUserRouter(&stubUserService{matched: 3})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/users/by-username/bob", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp DeleteUsersResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "deleted", resp.Status)
	assert.Equal(t, int64(3), resp.Matched)
	assert.Equal(t, "bob", resp.UsernameContainsOrStartsWith)
}

func TestDeleteUsersByUsernameNoMatch(t *testing.T) {
	router := setupUserRouter(&stubUserService{err: services.ErrNoUsersMatched})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/users/by-username/zzz", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "No user found with username containing or starting with: zzz")
}
