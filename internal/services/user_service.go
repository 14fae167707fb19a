package services

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kjc-group/user-service/internal/models"
	"github.com/kjc-group/user-service/internal/repositories"
	"github.com/kjc-group/user-service/pkg/utils"
)

// ErrUserNotFound 表示用户未找到的错误
var ErrUserNotFound = errors.New("用户未找到")

// ErrNoUsersMatched 表示按用户名模式删除时没有任何记录命中
var ErrNoUsersMatched = errors.New("没有用户名命中该模式的记录")

// 默认邮箱域名，未提供邮箱时由用户名派生
const defaultEmailDomain = "@itkjc.com"

// UserService 定义了用户服务的接口
type UserService interface {
	// CreateUser 创建用户；existed 为 true 时表示用户名已存在，返回的是既有记录
	CreateUser(payload models.CreateUserPayload) (user *models.User, existed bool, err error)
	ListUsers() ([]models.User, error)
	GetUser(id string) (*models.User, error)
	UpdateUser(id string, payload models.UpdateUserPayload) (*models.User, error)
	DeleteUsersByUsername(fragment string) (int64, error)
}

// userService 是 UserService 的实现
type userService struct {
	repo repositories.UserRepository
}

// NewUserService 创建一个新的 userService 实例
func NewUserService(repo repositories.UserRepository) UserService {
	return &userService{repo: repo}
}

// CreateUser 处理创建用户的业务逻辑：
// 默认模式填充、用户名唯一性检查、邮箱派生、密码哈希、时间戳写入。
func (s *userService) CreateUser(payload models.CreateUserPayload) (*models.User, bool, error) {
	now := models.NowStamp()
	user := payload.ToUser(now)

	// 用户名唯一性检查（仅限有效记录）。先查后插，并发创建同名用户时
	// 两个请求可能同时通过检查，这是接口契约的一部分，见 DESIGN.md。
	if user.Username != nil && *user.Username != "" {
		existing, err := s.repo.FindActiveUserByUsername(*user.Username)
		if err == nil {
			return existing, true, nil
		}
		if !errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, false, err
		}
	}

	// 未提供邮箱时由用户名派生
	if (user.Email == nil || *user.Email == "") && user.Username != nil && *user.Username != "" {
		email := *user.Username + defaultEmailDomain
		user.Email = &email
	}

	// 密码哈希，已经是哈希值的不再处理
	if user.Password != nil && *user.Password != "" && !utils.IsHashedPassword(*user.Password) {
		hashed, err := utils.HashPassword(*user.Password)
		if err != nil {
			return nil, false, err
		}
		user.Password = &hashed
	}

	created, err := s.repo.InsertUser(user)
	if err != nil {
		return nil, false, err
	}
	return created, false, nil
}

// ListUsers 返回全部有效用户
func (s *userService) ListUsers() ([]models.User, error) {
	return s.repo.FindActiveUsers()
}

// GetUser 在有效记录中按 id 查找用户。
// 非法的 id 字符串同样按未找到处理，不向上抛解析错误。
func (s *userService) GetUser(id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrUserNotFound
	}

	user, err := s.repo.FindActiveUserByID(oid)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateUser 对指定用户做部分更新：仅覆盖请求中提供的字段，
// updatedAt 无条件刷新。匹配只按 id，不过滤软删除状态，
// 因此已软删除的记录同样可以被更新（包括清空 deletedAt 使其恢复）。
func (s *userService) UpdateUser(id string, payload models.UpdateUserPayload) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrUserNotFound
	}

	updates := bson.M{}
	if payload.Username != nil {
		updates["username"] = *payload.Username
	}
	if payload.Password != nil {
		updates["password"] = *payload.Password
	}
	if payload.Email != nil {
		updates["email"] = *payload.Email
	}
	if payload.Phone != nil {
		updates["phone"] = *payload.Phone
	}
	if payload.Type != nil {
		updates["type"] = *payload.Type
	}
	if payload.Status != nil {
		updates["status"] = *payload.Status
	}
	if payload.AvatarURL != nil {
		updates["avatarUrl"] = *payload.AvatarURL
	}
	if payload.Point != nil {
		updates["point"] = *payload.Point
	}
	if payload.TotalPoint != nil {
		updates["totalPoint"] = *payload.TotalPoint
	}
	if payload.LevelID != nil {
		updates["levelId"] = *payload.LevelID
	}
	if payload.ExternalVerifyHistoryIds != nil {
		updates["externalVerifyHistoryIds"] = *payload.ExternalVerifyHistoryIds
	}
	if payload.IsVerifired != nil {
		updates["isVerifired"] = *payload.IsVerifired
	}
	if payload.CreatedAt != nil {
		updates["createdAt"] = *payload.CreatedAt
	}
	if payload.DeletedAt != nil {
		updates["deletedAt"] = *payload.DeletedAt
	}
	updates["updatedAt"] = models.NowStamp()

	matched, err := s.repo.UpdateUserFields(oid, updates)
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, ErrUserNotFound
	}

	// 重新读取更新后的记录返回
	updated, err := s.repo.FindUserByID(oid)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return updated, nil
}

// DeleteUsersByUsername 软删除用户名命中模式的全部用户，返回命中数量
func (s *userService) DeleteUsersByUsername(fragment string) (int64, error) {
	now := models.NowStamp()
	matched, err := s.repo.SoftDeleteByUsernamePattern(fragment, now)
	if err != nil {
		return 0, err
	}
	if matched == 0 {
		return 0, ErrNoUsersMatched
	}
	return matched, nil
}
