package dao

import (
	"context"

	"Scribe/models"

	"gorm.io/gorm"
)

type CommentDAO struct {
	Repo[models.Comment]
}

func NewCommentDAO(db *gorm.DB) *CommentDAO {
	return &CommentDAO{Repo: NewRepo[models.Comment](db)}
}

// FindByArticleID 按发布时间正序返回文章的全部评论
func (d *CommentDAO) FindByArticleID(ctx context.Context, articleID uint64) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := d.Db.WithContext(ctx).
		Where("article_id = ?", articleID).
		Order("pub_time ASC").
		Find(&comments).Error
	return comments, err
}

// CountByArticleIDs 批量统计评论数，避免每行一次查询
func (d *CommentDAO) CountByArticleIDs(ctx context.Context, articleIDs []uint64) (map[uint64]int64, error) {
	result := make(map[uint64]int64, len(articleIDs))
	if len(articleIDs) == 0 {
		return result, nil
	}

	type row struct {
		ArticleID uint64
		Total     int64
	}
	var rows []row
	err := d.Db.WithContext(ctx).
		Model(&models.Comment{}).
		Select("article_id, COUNT(DISTINCT id) AS total").
		Where("article_id IN ?", articleIDs).
		Group("article_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		result[r.ArticleID] = r.Total
	}
	return result, nil
}
