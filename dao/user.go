package dao

import (
	"context"

	"Scribe/models"

	"gorm.io/gorm"
)

type UserDAO struct {
	Repo[models.User]
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{Repo: NewRepo[models.User](db)}
}

// FindByEmail 邮箱查询
func (d *UserDAO) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return d.Repo.FindByWhere(ctx, "email = ?", email)
}

// IsEmailExist 判断邮箱是否已注册
func (d *UserDAO) IsEmailExist(ctx context.Context, email string) bool {
	exist, _ := d.Repo.IsExist(ctx, "email = ?", email)
	return exist
}

// IsUsernameExist 判断用户名是否已存在
func (d *UserDAO) IsUsernameExist(ctx context.Context, username string) bool {
	exist, _ := d.Repo.IsExist(ctx, "username = ?", username)
	return exist
}

// FindByIDs 批量查询用户
func (d *UserDAO) FindByIDs(ctx context.Context, ids []uint64) (map[uint64]*models.User, error) {
	result := make(map[uint64]*models.User, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	var users []*models.User
	err := d.Db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		result[u.ID] = u
	}
	return result, nil
}

// UpdatePassword 更新密码哈希
func (d *UserDAO) UpdatePassword(ctx context.Context, userID uint64, hash string) error {
	return d.Db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Update("password", hash).Error
}
