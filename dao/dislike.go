package dao

import (
	"context"

	"Scribe/models"

	"gorm.io/gorm"
)

type DislikeDAO struct {
	Repo[models.Dislike]
}

func NewDislikeDAO(db *gorm.DB) *DislikeDAO {
	return &DislikeDAO{Repo: NewRepo[models.Dislike](db)}
}

// Exists 用户是否已点踩
func (d *DislikeDAO) Exists(ctx context.Context, userID, articleID uint64) (bool, error) {
	return d.Repo.IsExist(ctx, "user_id = ? AND article_id = ?", userID, articleID)
}

// Add 写入点踩记录并原子 +1，同一事务
func (d *DislikeDAO) Add(ctx context.Context, userID, articleID uint64) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&models.Dislike{UserID: userID, ArticleID: articleID}).Error; err != nil {
			return err
		}
		return tx.Model(&models.Article{}).
			Where("id = ?", articleID).
			UpdateColumn("dislike_count", gorm.Expr("dislike_count + 1")).Error
	})
}

// Remove 删除点踩记录，只有确实删掉了记录才 -1
func (d *DislikeDAO) Remove(ctx context.Context, userID, articleID uint64) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND article_id = ?", userID, articleID).Delete(&models.Dislike{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		return tx.Model(&models.Article{}).
			Where("id = ? AND dislike_count > 0", articleID).
			UpdateColumn("dislike_count", gorm.Expr("dislike_count - 1")).Error
	})
}
