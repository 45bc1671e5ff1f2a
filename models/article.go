package models

import "time"

// Article 文章
// like_count/dislike_count/views 为冗余计数，只允许通过原子 UPDATE 调整
type Article struct {
	ID           uint64    `gorm:"column:id;primaryKey" json:"id"`
	Title        string    `gorm:"column:title;type:varchar(30);not null;uniqueIndex:uk_title" json:"title"`
	Content      string    `gorm:"column:content;type:text;not null" json:"content"`
	AuthorID     uint64    `gorm:"column:author_id;not null;index:idx_author_id" json:"author_id"`
	CategoryID   uint64    `gorm:"column:category_id;not null;index:idx_category_id" json:"category_id"`
	Views        int64     `gorm:"column:views;not null;default:0" json:"views"`
	LikeCount    int64     `gorm:"column:like_count;not null;default:0" json:"like_count"`
	DislikeCount int64     `gorm:"column:dislike_count;not null;default:0" json:"dislike_count"`
	PubTime      time.Time `gorm:"column:pub_time;index:idx_pub_time" json:"pub_time"`
	UpdatedTime  time.Time `gorm:"column:updated_time" json:"updated_time"`
}

func (Article) TableName() string {
	return "articles"
}

// ArticleTag 文章与标签多对多关联
type ArticleTag struct {
	ID        uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ArticleID uint64 `gorm:"column:article_id;not null;uniqueIndex:uk_article_tag,priority:1" json:"article_id"`
	TagID     uint64 `gorm:"column:tag_id;not null;uniqueIndex:uk_article_tag,priority:2" json:"tag_id"`
}

func (ArticleTag) TableName() string {
	return "article_tags"
}
