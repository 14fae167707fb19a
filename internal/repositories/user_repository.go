package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kjc-group/user-service/internal/models"
	"github.com/kjc-group/user-service/pkg/db"
)

// ErrRecordNotFound 表示记录未找到，供服务层转换为业务错误
var ErrRecordNotFound = errors.New("记录未找到")

// UserRepository 定义了用户数据仓库的接口
type UserRepository interface {
	InsertUser(user *models.User) (*models.User, error)
	FindActiveUsers() ([]models.User, error)
	FindActiveUserByUsername(username string) (*models.User, error)
	FindActiveUserByID(id primitive.ObjectID) (*models.User, error)
	FindUserByID(id primitive.ObjectID) (*models.User, error)
	UpdateUserFields(id primitive.ObjectID, updates bson.M) (int64, error)
	SoftDeleteByUsernamePattern(fragment string, deletedAt string) (int64, error)
}

// mongoUserRepository 是 UserRepository 的 MongoDB 实现
type mongoUserRepository struct {
	database *mongo.Database
}

// NewMongoUserRepository 创建一个新的 mongoUserRepository 实例
func NewMongoUserRepository(database *mongo.Database) UserRepository {
	return &mongoUserRepository{database: database}
}

// activeFilter 有效记录的判定条件：deletedAt 为 null (含字段缺失) 或空字符串
func activeFilter() bson.M {
	return bson.M{"deletedAt": bson.M{"$in": bson.A{nil, ""}}}
}

func (r *mongoUserRepository) collection() *mongo.Collection {
	return r.database.Collection(models.User{}.CollectionName())
}

// opContext 为单次数据库操作提供有界的上下文
func opContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), db.ConnectTimeout)
}

// InsertUser 插入一条用户记录并回填生成的 _id
func (r *mongoUserRepository) InsertUser(user *models.User) (*models.User, error) {
	ctx, cancel := opContext()
	defer cancel()

	result, err := r.collection().InsertOne(ctx, user)
	if err != nil {
		return nil, err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
		user.HexID = oid.Hex()
	}
	return user, nil
}

// FindActiveUsers 返回全部有效用户，顺序为存储序，_id 渲染为字符串
func (r *mongoUserRepository) FindActiveUsers() ([]models.User, error) {
	ctx, cancel := opContext()
	defer cancel()

	cursor, err := r.collection().Find(ctx, activeFilter())
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := make([]models.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	for i := range users {
		users[i].HexID = users[i].ID.Hex()
	}
	return users, nil
}

// FindActiveUserByUsername 在有效记录中精确匹配用户名
func (r *mongoUserRepository) FindActiveUserByUsername(username string) (*models.User, error) {
	ctx, cancel := opContext()
	defer cancel()

	filter := activeFilter()
	filter["username"] = username

	var user models.User
	if err := r.collection().FindOne(ctx, filter).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	user.HexID = user.ID.Hex()
	return &user, nil
}

// FindActiveUserByID 在有效记录中按 _id 查找
func (r *mongoUserRepository) FindActiveUserByID(id primitive.ObjectID) (*models.User, error) {
	ctx, cancel := opContext()
	defer cancel()

	filter := activeFilter()
	filter["_id"] = id

	var user models.User
	if err := r.collection().FindOne(ctx, filter).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindUserByID 按 _id 查找，不过滤软删除状态（更新接口按此语义匹配）
func (r *mongoUserRepository) FindUserByID(id primitive.ObjectID) (*models.User, error) {
	ctx, cancel := opContext()
	defer cancel()

	var user models.User
	if err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateUserFields 对指定记录做 $set 部分更新，返回匹配到的记录数
func (r *mongoUserRepository) UpdateUserFields(id primitive.ObjectID, updates bson.M) (int64, error) {
	ctx, cancel := opContext()
	defer cancel()

	result, err := r.collection().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}

// SoftDeleteByUsernamePattern 对用户名命中模式的全部记录写入 deletedAt。
// 匹配条件是"包含"与"以之开头"两个大小写不敏感正则的并集，
// 不过滤软删除状态，已删除的记录会被重新打上时间戳并计入匹配数。
func (r *mongoUserRepository) SoftDeleteByUsernamePattern(fragment string, deletedAt string) (int64, error) {
	ctx, cancel := opContext()
	defer cancel()

	query := bson.M{"$or": bson.A{
		bson.M{"username": primitive.Regex{Pattern: fragment, Options: "i"}},
		bson.M{"username": primitive.Regex{Pattern: "^" + fragment, Options: "i"}},
	}}
	result, err := r.collection().UpdateMany(ctx, query, bson.M{"$set": bson.M{"deletedAt": deletedAt}})
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}
