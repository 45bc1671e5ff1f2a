package dao

import (
	"context"
	"strings"

	"Scribe/models"

	"gorm.io/gorm"
)

type ArticleDAO struct {
	Repo[models.Article]
}

func NewArticleDAO(db *gorm.DB) *ArticleDAO {
	return &ArticleDAO{Repo: NewRepo[models.Article](db)}
}

// ArticleQuery 文章列表查询条件
// OrderBy 必须是 service 层校验过的 "列名 方向" 形式
type ArticleQuery struct {
	AuthorID   uint64
	CategoryID uint64
	Search     string
	OrderBy    string
}

// buildListQuery 组装筛选条件
// 搜索时按空白切词，任一关键词命中 标题/正文/作者名/标签名 即匹配（OR 语义）
func (d *ArticleDAO) buildListQuery(ctx context.Context, q ArticleQuery) *gorm.DB {
	db := d.Db.WithContext(ctx).Model(&models.Article{})

	if q.AuthorID > 0 {
		db = db.Where("articles.author_id = ?", q.AuthorID)
	}
	if q.CategoryID > 0 {
		db = db.Where("articles.category_id = ?", q.CategoryID)
	}

	if keywords := strings.Fields(q.Search); len(keywords) > 0 {
		db = db.
			Joins("JOIN users ON users.id = articles.author_id").
			Joins("LEFT JOIN article_tags ON article_tags.article_id = articles.id").
			Joins("LEFT JOIN tags ON tags.id = article_tags.tag_id")

		search := d.Db.Session(&gorm.Session{NewDB: true})
		for _, word := range keywords {
			pattern := "%" + word + "%"
			search = search.Or(
				"articles.title LIKE ? OR articles.content LIKE ? OR users.username LIKE ? OR tags.name LIKE ?",
				pattern, pattern, pattern, pattern,
			)
		}
		db = db.Where(search)
	}

	return db
}

// CountAndList 先统计总数再取一页，搜索联表时去重
func (d *ArticleDAO) CountAndList(ctx context.Context, q ArticleQuery, limit, offset int) ([]*models.Article, int64, error) {
	var total int64
	err := d.buildListQuery(ctx, q).
		Distinct("articles.id").
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var articles []*models.Article
	err = d.buildListQuery(ctx, q).
		Distinct("articles.*").
		Order(q.OrderBy).
		Limit(limit).
		Offset(offset).
		Find(&articles).Error
	if err != nil {
		return nil, 0, err
	}
	return articles, total, nil
}

// IsTitleExist 标题全局唯一性检查，excludeID 用于更新时排除自身
func (d *ArticleDAO) IsTitleExist(ctx context.Context, title string, excludeID uint64) (bool, error) {
	db := d.Db.WithContext(ctx).Model(&models.Article{}).Where("title = ?", title)
	if excludeID > 0 {
		db = db.Where("id <> ?", excludeID)
	}
	var count int64
	if err := db.Limit(1).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// IncrViews 浏览量原子 +1
func (d *ArticleDAO) IncrViews(ctx context.Context, articleID uint64) error {
	return d.Db.WithContext(ctx).
		Model(&models.Article{}).
		Where("id = ?", articleID).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

// CreateWithTags 创建文章并关联标签，同一事务
func (d *ArticleDAO) CreateWithTags(ctx context.Context, article *models.Article, tagIDs []uint64) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(article).Error; err != nil {
			return err
		}
		return replaceTags(tx, article.ID, tagIDs)
	})
}

// UpdateWithTags 部分更新文章字段，tagIDs 非 nil 时整体替换标签集合
func (d *ArticleDAO) UpdateWithTags(ctx context.Context, articleID uint64, updates map[string]interface{}, tagIDs []uint64) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			err := tx.Model(&models.Article{}).
				Where("id = ?", articleID).
				Updates(updates).Error
			if err != nil {
				return err
			}
		}
		if tagIDs != nil {
			return replaceTags(tx, articleID, tagIDs)
		}
		return nil
	})
}

// DeleteCascade 删除文章及其评论、点赞、点踩、标签关联
func (d *ArticleDAO) DeleteCascade(ctx context.Context, articleID uint64) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", articleID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("article_id = ?", articleID).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("article_id = ?", articleID).Delete(&models.Dislike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("article_id = ?", articleID).Delete(&models.ArticleTag{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", articleID).Delete(&models.Article{}).Error
	})
}

func replaceTags(tx *gorm.DB, articleID uint64, tagIDs []uint64) error {
	if err := tx.Where("article_id = ?", articleID).Delete(&models.ArticleTag{}).Error; err != nil {
		return err
	}
	for _, tagID := range tagIDs {
		if err := tx.Create(&models.ArticleTag{ArticleID: articleID, TagID: tagID}).Error; err != nil {
			return err
		}
	}
	return nil
}
