package dao

import (
	"context"

	"Scribe/models"

	"gorm.io/gorm"
)

type LikeDAO struct {
	Repo[models.Like]
}

func NewLikeDAO(db *gorm.DB) *LikeDAO {
	return &LikeDAO{Repo: NewRepo[models.Like](db)}
}

// Exists 用户是否已点赞
func (d *LikeDAO) Exists(ctx context.Context, userID, articleID uint64) (bool, error) {
	return d.Repo.IsExist(ctx, "user_id = ? AND article_id = ?", userID, articleID)
}

// Add 写入点赞记录并原子 +1，同一事务
// 唯一键冲突原样返回，由 service 层转为业务冲突
func (d *LikeDAO) Add(ctx context.Context, userID, articleID uint64) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&models.Like{UserID: userID, ArticleID: articleID}).Error; err != nil {
			return err
		}
		return tx.Model(&models.Article{}).
			Where("id = ?", articleID).
			UpdateColumn("like_count", gorm.Expr("like_count + 1")).Error
	})
}

// Remove 删除点赞记录，只有确实删掉了记录才 -1，计数不会为负
func (d *LikeDAO) Remove(ctx context.Context, userID, articleID uint64) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND article_id = ?", userID, articleID).Delete(&models.Like{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		return tx.Model(&models.Article{}).
			Where("id = ? AND like_count > 0", articleID).
			UpdateColumn("like_count", gorm.Expr("like_count - 1")).Error
	})
}
