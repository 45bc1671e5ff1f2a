package dao

import (
	"context"

	"Scribe/models"

	"gorm.io/gorm"
)

type TagDAO struct {
	Repo[models.Tag]
}

func NewTagDAO(db *gorm.DB) *TagDAO {
	return &TagDAO{Repo: NewRepo[models.Tag](db)}
}

// FindByIDs 批量查询标签
func (d *TagDAO) FindByIDs(ctx context.Context, ids []uint64) ([]*models.Tag, error) {
	if len(ids) == 0 {
		return []*models.Tag{}, nil
	}
	var tags []*models.Tag
	err := d.Db.WithContext(ctx).Where("id IN ?", ids).Find(&tags).Error
	return tags, err
}

// FindByCategoryID 查询分类下挂的标签
func (d *TagDAO) FindByCategoryID(ctx context.Context, categoryID uint64) ([]*models.Tag, error) {
	var tags []*models.Tag
	err := d.Db.WithContext(ctx).
		Joins("JOIN category_tags ON category_tags.tag_id = tags.id").
		Where("category_tags.category_id = ?", categoryID).
		Order("tags.id ASC").
		Find(&tags).Error
	return tags, err
}

// FindByArticleIDs 批量查询文章的标签名，按文章分组
func (d *TagDAO) FindByArticleIDs(ctx context.Context, articleIDs []uint64) (map[uint64][]string, error) {
	result := make(map[uint64][]string, len(articleIDs))
	if len(articleIDs) == 0 {
		return result, nil
	}

	type row struct {
		ArticleID uint64
		Name      string
	}
	var rows []row
	err := d.Db.WithContext(ctx).
		Model(&models.Tag{}).
		Select("article_tags.article_id, tags.name").
		Joins("JOIN article_tags ON article_tags.tag_id = tags.id").
		Where("article_tags.article_id IN ?", articleIDs).
		Order("tags.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		result[r.ArticleID] = append(result[r.ArticleID], r.Name)
	}
	return result, nil
}
