package models

import "time"

type User struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Username  string    `gorm:"column:username;type:varchar(30);not null;uniqueIndex:uk_username" json:"username"`
	Email     string    `gorm:"column:email;type:varchar(100);not null;uniqueIndex:uk_email" json:"email"`
	Password  string    `gorm:"column:password;type:varchar(100);not null" json:"-"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
