package models

import "gorm.io/gorm"

// Migrate 按依赖顺序建表
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&UserProfile{},
		&Category{},
		&Tag{},
		&CategoryTag{},
		&Article{},
		&ArticleTag{},
		&Comment{},
		&Like{},
		&Dislike{},
		&Captcha{},
	)
}
