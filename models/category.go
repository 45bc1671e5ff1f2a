package models

// Category 文章分类
type Category struct {
	ID          uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"column:name;type:varchar(10);not null;uniqueIndex:uk_name" json:"name"`
	Description string `gorm:"column:description;type:varchar(100);not null;default:''" json:"description"`
}

func (Category) TableName() string {
	return "categories"
}

// Tag 标签，名称全局唯一
type Tag struct {
	ID   uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"column:name;type:varchar(10);not null;uniqueIndex:uk_name" json:"name"`
}

func (Tag) TableName() string {
	return "tags"
}

// CategoryTag 分类下挂的标签
type CategoryTag struct {
	ID         uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CategoryID uint64 `gorm:"column:category_id;not null;uniqueIndex:uk_category_tag,priority:1" json:"category_id"`
	TagID      uint64 `gorm:"column:tag_id;not null;uniqueIndex:uk_category_tag,priority:2" json:"tag_id"`
}

func (CategoryTag) TableName() string {
	return "category_tags"
}
