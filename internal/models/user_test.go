package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToUserDefaults(t *testing.T) {
	now := NowStamp()
	user := (&CreateUserPayload{}).ToUser(now)

	assert.Nil(t, user.Username)
	assert.Nil(t, user.Password)
	assert.Nil(t, user.Email)
	assert.Equal(t, "0909090909", user.Phone)
	assert.Equal(t, "user", user.Type)
	assert.Equal(t, "active", user.Status)
	assert.Equal(t, "", user.AvatarURL)
	assert.Equal(t, 0, user.Point)
	assert.Equal(t, 0, user.TotalPoint)
	assert.Equal(t, "", user.LevelID)
	assert.Equal(t, []string{}, user.ExternalVerifyHistoryIds)
	assert.False(t, user.IsVerifired)
	assert.Equal(t, now, user.CreatedAt)
	assert.Equal(t, now, user.UpdatedAt)
	assert.Nil(t, user.DeletedAt)
}

func TestToUserCallerFieldsWin(t *testing.T) {
	username := "alice"
	phone := "0111111111"
	point := 7
	verified := true

	user := (&CreateUserPayload{
		Username:    &username,
		Phone:       &phone,
		Point:       &point,
		IsVerifired: &verified,
	}).ToUser(NowStamp())

	require.NotNil(t, user.Username)
	assert.Equal(t, "alice", *user.Username)
	assert.Equal(t, "0111111111", user.Phone)
	assert.Equal(t, 7, user.Point)
	assert.True(t, user.IsVerifired)
	assert.Equal(t, "user", user.Type) // 未提供的字段仍为默认值
}

func TestIsActive(t *testing.T) {
	empty := ""
	stamp := NowStamp()

	assert.True(t, (&User{DeletedAt: nil}).IsActive())
	assert.True(t, (&User{DeletedAt: &empty}).IsActive()) // 空字符串同样视为有效
	assert.False(t, (&User{DeletedAt: &stamp}).IsActive())
}

func TestNowStampLayout(t *testing.T) {
	stamp := NowStamp()
	parsed, err := time.Parse(TimeLayout, stamp)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), parsed, time.Minute)
}

func TestUserJSONOmitsEmptyID(t *testing.T) {
	user := (&CreateUserPayload{}).ToUser(NowStamp())

	data, err := json.Marshal(user)
	require.NoError(t, err)

	// HexID 为空时响应中不应出现 id 字段（Get/Update 的既有约定）
	assert.NotContains(t, string(data), `"id":`)

	user.HexID = "665f1f77bcf86cd799439011"
	data, err = json.Marshal(user)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"id":"665f1f77bcf86cd799439011"`)
}
