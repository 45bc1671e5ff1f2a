package models

import "time"

// Comment 评论，发布时间不可变
type Comment struct {
	ID        uint64    `gorm:"column:id;primaryKey" json:"id"`
	ArticleID uint64    `gorm:"column:article_id;not null;index:idx_article_id" json:"article_id"`
	AuthorID  uint64    `gorm:"column:author_id;not null;index:idx_author_id" json:"author_id"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	PubTime   time.Time `gorm:"column:pub_time" json:"pub_time"`
}

func (Comment) TableName() string {
	return "comments"
}
