package dao

import (
	"context"
	"time"

	"Scribe/models"

	"gorm.io/gorm"
)

type CaptchaDAO struct {
	Repo[models.Captcha]
}

func NewCaptchaDAO(db *gorm.DB) *CaptchaDAO {
	return &CaptchaDAO{Repo: NewRepo[models.Captcha](db)}
}

// Upsert 每个邮箱只保留一条验证码，重发时覆盖并刷新签发时间
func (d *CaptchaDAO) Upsert(ctx context.Context, email, code string) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.Captcha
		err := tx.Where("email = ?", email).Limit(1).Find(&item).Error
		if err != nil {
			return err
		}
		if item.ID == 0 {
			return tx.Create(&models.Captcha{
				Email:    email,
				Code:     code,
				IssuedAt: time.Now(),
			}).Error
		}
		return tx.Model(&models.Captcha{}).
			Where("id = ?", item.ID).
			Updates(map[string]interface{}{
				"code":      code,
				"issued_at": time.Now(),
			}).Error
	})
}

// FindByEmail 查询邮箱最新的验证码
func (d *CaptchaDAO) FindByEmail(ctx context.Context, email string) (*models.Captcha, error) {
	var item models.Captcha
	err := d.Db.WithContext(ctx).Where("email = ?", email).Limit(1).Find(&item).Error
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}
