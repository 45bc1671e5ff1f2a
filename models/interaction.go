package models

import "time"

// Like 点赞记录
// 唯一键: user_id + article_id
type Like struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_user_article,priority:1" json:"user_id"`
	ArticleID uint64    `gorm:"column:article_id;not null;uniqueIndex:uk_user_article,priority:2;index:idx_article_id" json:"article_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Like) TableName() string { return "likes" }

// Dislike 点踩记录，与点赞相互独立
// 唯一键: user_id + article_id
type Dislike struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_user_article,priority:1" json:"user_id"`
	ArticleID uint64    `gorm:"column:article_id;not null;uniqueIndex:uk_user_article,priority:2;index:idx_article_id" json:"article_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Dislike) TableName() string { return "dislikes" }
