package models

import "time"

// Captcha 验证码，每个邮箱只保留最新一条
type Captcha struct {
	ID       uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Email    string    `gorm:"column:email;type:varchar(100);not null;uniqueIndex:uk_email" json:"email"`
	Code     string    `gorm:"column:code;type:varchar(6);not null" json:"-"`
	IssuedAt time.Time `gorm:"column:issued_at" json:"issued_at"`
}

func (Captcha) TableName() string {
	return "captchas"
}
