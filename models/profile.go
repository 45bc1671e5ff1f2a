package models

import "time"

// UserProfile 用户资料，与用户一对一
type UserProfile struct {
	ID           uint64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID       uint64     `gorm:"column:user_id;not null;uniqueIndex:uk_user_id" json:"user_id"`
	Introduction string     `gorm:"column:introduction;type:varchar(30);not null;default:''" json:"introduction"`
	Birthday     *time.Time `gorm:"column:birthday" json:"birthday"`
	ProfilePic   string     `gorm:"column:profile_pic;type:varchar(255);not null;default:''" json:"profile_pic"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
