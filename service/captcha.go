package service

import (
	"context"
	"fmt"
	"math/rand"

	"Scribe/dao"
	"Scribe/pkg/log"
	"Scribe/pkg/response"

	"go.uber.org/zap"
)

// Mailer 邮件发送抽象，由 pkg/email.Client 实现
type Mailer interface {
	SendSimple(to string, subject string, body string) error
}

var _ ICaptchaService = (*CaptchaService)(nil)

type ICaptchaService interface {
	Issue(ctx context.Context, email string) error
}

type CaptchaService struct {
	CaptchaDAO *dao.CaptchaDAO
	Mailer     Mailer
}

// Issue 生成6位数字验证码，覆盖该邮箱旧验证码后发邮件
func (s *CaptchaService) Issue(ctx context.Context, email string) error {
	code := fmt.Sprintf("%06d", rand.Intn(1000000))

	if err := s.CaptchaDAO.Upsert(ctx, email, code); err != nil {
		return err
	}

	body := fmt.Sprintf("您的验证码是：%s，10分钟内有效。", code)
	if err := s.Mailer.SendSimple(email, "验证码", body); err != nil {
		log.L.Error("send captcha mail failed", zap.String("email", email), zap.Error(err))
		return response.BadRequest("验证码发送失败")
	}
	return nil
}
