package dao

import (
	"context"

	"Scribe/models"

	"gorm.io/gorm"
)

type ProfileDAO struct {
	Repo[models.UserProfile]
}

func NewProfileDAO(db *gorm.DB) *ProfileDAO {
	return &ProfileDAO{Repo: NewRepo[models.UserProfile](db)}
}

// GetOrCreateByUserID 查询用户资料，不存在则创建一条空资料
func (d *ProfileDAO) GetOrCreateByUserID(ctx context.Context, userID uint64) (*models.UserProfile, error) {
	profile := &models.UserProfile{UserID: userID}
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		FirstOrCreate(profile).Error
	return profile, err
}

// FindByUserIDs 批量查询用户资料
func (d *ProfileDAO) FindByUserIDs(ctx context.Context, userIDs []uint64) (map[uint64]*models.UserProfile, error) {
	result := make(map[uint64]*models.UserProfile, len(userIDs))
	if len(userIDs) == 0 {
		return result, nil
	}
	var profiles []*models.UserProfile
	err := d.Db.WithContext(ctx).Where("user_id IN ?", userIDs).Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	for _, p := range profiles {
		result[p.UserID] = p
	}
	return result, nil
}

// UpdateByUserID 部分更新资料字段
func (d *ProfileDAO) UpdateByUserID(ctx context.Context, userID uint64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	return d.Db.WithContext(ctx).
		Model(&models.UserProfile{}).
		Where("user_id = ?", userID).
		Updates(updates).Error
}
