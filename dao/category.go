package dao

import (
	"context"

	"Scribe/models"

	"gorm.io/gorm"
)

type CategoryDAO struct {
	Repo[models.Category]
}

func NewCategoryDAO(db *gorm.DB) *CategoryDAO {
	return &CategoryDAO{Repo: NewRepo[models.Category](db)}
}

// FindAll 全量分类列表
func (d *CategoryDAO) FindAll(ctx context.Context) ([]*models.Category, error) {
	var categories []*models.Category
	err := d.Db.WithContext(ctx).Order("id ASC").Find(&categories).Error
	return categories, err
}

// FindByName 按名称查询分类
func (d *CategoryDAO) FindByName(ctx context.Context, name string) (*models.Category, error) {
	return d.Repo.FindByWhere(ctx, "name = ?", name)
}

// FindByIDs 批量查询分类
func (d *CategoryDAO) FindByIDs(ctx context.Context, ids []uint64) (map[uint64]*models.Category, error) {
	result := make(map[uint64]*models.Category, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	var categories []*models.Category
	err := d.Db.WithContext(ctx).Where("id IN ?", ids).Find(&categories).Error
	if err != nil {
		return nil, err
	}
	for _, c := range categories {
		result[c.ID] = c
	}
	return result, nil
}
