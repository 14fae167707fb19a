package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TimeLayout 是记录时间戳的存储格式 (ISO-8601, UTC, 微秒精度)
const TimeLayout = "2006-01-02T15:04:05.000000"

// NowStamp 返回当前 UTC 时间的 ISO-8601 字符串
func NowStamp() string {
	return time.Now().UTC().Format(TimeLayout)
}

// User 对应于 users 集合中的一条用户记录。
// username / password / email 允许为 null，其余字段在创建时填充默认值。
// deletedAt 为 null 或空字符串表示记录有效（软删除标记）。
type User struct {
	ID                       primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	HexID                    string             `json:"id,omitempty" bson:"-"` // _id 的字符串形式，部分接口按原有约定不返回
	Username                 *string            `json:"username" bson:"username"`
	Password                 *string            `json:"password" bson:"password"` // 落库前已做 bcrypt 哈希
	Email                    *string            `json:"email" bson:"email"`
	Phone                    string             `json:"phone" bson:"phone"`
	Type                     string             `json:"type" bson:"type"`
	Status                   string             `json:"status" bson:"status"`
	AvatarURL                string             `json:"avatarUrl" bson:"avatarUrl"`
	Point                    int                `json:"point" bson:"point"`
	TotalPoint               int                `json:"totalPoint" bson:"totalPoint"`
	LevelID                  string             `json:"levelId" bson:"levelId"`
	ExternalVerifyHistoryIds []string           `json:"externalVerifyHistoryIds" bson:"externalVerifyHistoryIds"`
	IsVerifired              bool               `json:"isVerifired" bson:"isVerifired"` // 字段名沿用既有数据
	CreatedAt                string             `json:"createdAt" bson:"createdAt"`
	UpdatedAt                string             `json:"updatedAt" bson:"updatedAt"`
	DeletedAt                *string            `json:"deletedAt,omitempty" bson:"deletedAt"`
}

// CollectionName 指定 User 对应的集合名
func (User) CollectionName() string {
	return "users"
}

// IsActive 判断记录是否有效：deletedAt 为 null 或空字符串
func (u *User) IsActive() bool {
	return u.DeletedAt == nil || *u.DeletedAt == ""
}

// CreateUserPayload 定义了创建用户请求的 JSON 结构体。
// 所有字段均可选，未提供的字段使用默认模式填充；createdAt/updatedAt 由服务端统一写入。
type CreateUserPayload struct {
	Username                 *string   `json:"username"`
	Password                 *string   `json:"password"`
	Email                    *string   `json:"email"`
	Phone                    *string   `json:"phone"`
	Type                     *string   `json:"type"`
	Status                   *string   `json:"status"`
	AvatarURL                *string   `json:"avatarUrl"`
	Point                    *int      `json:"point"`
	TotalPoint               *int      `json:"totalPoint"`
	LevelID                  *string   `json:"levelId"`
	ExternalVerifyHistoryIds *[]string `json:"externalVerifyHistoryIds"`
	IsVerifired              *bool     `json:"isVerifired"`
	DeletedAt                *string   `json:"deletedAt"`
}

// ToUser 将请求字段覆盖到默认模式上，调用方字段优先于默认值
func (p *CreateUserPayload) ToUser(now string) *User {
	user := &User{
		Phone:                    "0909090909",
		Type:                     "user",
		Status:                   "active",
		AvatarURL:                "",
		Point:                    0,
		TotalPoint:               0,
		LevelID:                  "",
		ExternalVerifyHistoryIds: []string{},
		IsVerifired:              false,
		CreatedAt:                now,
		UpdatedAt:                now,
	}

	user.Username = p.Username
	user.Password = p.Password
	user.Email = p.Email
	if p.Phone != nil {
		user.Phone = *p.Phone
	}
	if p.Type != nil {
		user.Type = *p.Type
	}
	if p.Status != nil {
		user.Status = *p.Status
	}
	if p.AvatarURL != nil {
		user.AvatarURL = *p.AvatarURL
	}
	if p.Point != nil {
		user.Point = *p.Point
	}
	if p.TotalPoint != nil {
		user.TotalPoint = *p.TotalPoint
	}
	if p.LevelID != nil {
		user.LevelID = *p.LevelID
	}
	if p.ExternalVerifyHistoryIds != nil {
		user.ExternalVerifyHistoryIds = *p.ExternalVerifyHistoryIds
	}
	if p.IsVerifired != nil {
		user.IsVerifired = *p.IsVerifired
	}
	user.DeletedAt = p.DeletedAt

	return user
}

// UpdateUserPayload 定义了更新用户请求的 JSON 结构体。
// 指针为 nil 表示"未提供该字段"，对应字段保持不变；
// deletedAt 也可被更新（包括清空，即恢复软删除的记录）。
type UpdateUserPayload struct {
	Username                 *string   `json:"username"`
	Password                 *string   `json:"password"`
	Email                    *string   `json:"email"`
	Phone                    *string   `json:"phone"`
	Type                     *string   `json:"type"`
	Status                   *string   `json:"status"`
	AvatarURL                *string   `json:"avatarUrl"`
	Point                    *int      `json:"point"`
	TotalPoint               *int      `json:"totalPoint"`
	LevelID                  *string   `json:"levelId"`
	ExternalVerifyHistoryIds *[]string `json:"externalVerifyHistoryIds"`
	IsVerifired              *bool     `json:"isVerifired"`
	CreatedAt                *string   `json:"createdAt"`
	DeletedAt                *string   `json:"deletedAt"`
}
