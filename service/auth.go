package service

import (
	"context"
	"errors"
	"time"
	"unicode/utf8"

	"Scribe/config"
	"Scribe/dao"
	"Scribe/models"
	"Scribe/pkg/encrypt"
	"Scribe/pkg/jwt"
	"Scribe/pkg/log"
	"Scribe/pkg/response"
	"Scribe/types"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// 验证码有效期
const captchaTTL = 10 * time.Minute

// 刷新令牌临近过期时轮换
const refreshRotateBuffer = 24 * time.Hour

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *types.LoginRequest) (*types.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*types.RefreshResponse, error)
	ResetPassword(ctx context.Context, req *types.PasswordResetRequest) error
}

type AuthService struct {
	UserDAO    *dao.UserDAO
	ProfileDAO *dao.ProfileDAO
	CaptchaDAO *dao.CaptchaDAO
	Config     *config.Config
}

// checkCaptcha 校验邮箱验证码，以库里的签发时间为准判断过期
func (s *AuthService) checkCaptcha(ctx context.Context, email, code string) error {
	captcha, err := s.CaptchaDAO.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if captcha == nil || captcha.Code != code {
		return response.BadRequest("验证码错误")
	}
	if time.Since(captcha.IssuedAt) > captchaTTL {
		return response.BadRequest("验证码已过期")
	}
	return nil
}

func validatePassword(password, confirm string) error {
	n := utf8.RuneCountInString(password)
	if n < 6 || n > 20 {
		return response.BadRequest("密码长度应在6到20个字符之间")
	}
	if password != confirm {
		return response.BadRequest("密码不匹配")
	}
	return nil
}

// Register 注册用户，成功后创建一条空资料
func (s *AuthService) Register(ctx context.Context, req *types.RegisterRequest) (*models.User, error) {
	if err := validatePassword(req.Password, req.PasswordConfirm); err != nil {
		return nil, err
	}
	if s.UserDAO.IsEmailExist(ctx, req.Email) {
		return nil, response.BadRequest("邮箱已经被注册")
	}
	if s.UserDAO.IsUsernameExist(ctx, req.Username) {
		return nil, response.BadRequest("用户已经存在")
	}
	if err := s.checkCaptcha(ctx, req.Email, req.Captcha); err != nil {
		return nil, err
	}

	hash, err := encrypt.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hash,
	}
	if err := s.UserDAO.Create(ctx, user); err != nil {
		return nil, err
	}
	if err := s.ProfileDAO.Create(ctx, &models.UserProfile{UserID: user.ID}); err != nil {
		return nil, err
	}

	return user, nil
}

// Login 邮箱登录
// 账号不存在和密码错误统一返回同一提示，避免账号枚举
func (s *AuthService) Login(ctx context.Context, req *types.LoginRequest) (*types.LoginResponse, error) {
	user, err := s.UserDAO.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.BadRequest("邮箱或密码错误")
		}
		return nil, err
	}
	if !encrypt.VerifyPassword(user.Password, req.Password) {
		log.L.Info("login failed", zap.String("email", req.Email))
		return nil, response.BadRequest("邮箱或密码错误")
	}

	secret := []byte(s.Config.Jwt.Secret)
	access, err := jwt.GenerateToken(secret, user.ID, user.Username, jwt.TypeAccess, s.Config.Jwt.AccessTTL())
	if err != nil {
		return nil, err
	}
	refresh, err := jwt.GenerateToken(secret, user.ID, user.Username, jwt.TypeRefresh, s.Config.Jwt.RefreshTTL())
	if err != nil {
		return nil, err
	}

	resp := &types.LoginResponse{
		User: types.UserInfo{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
		},
		Access:  access,
		Refresh: refresh,
	}
	profile, err := s.ProfileDAO.GetOrCreateByUserID(ctx, user.ID)
	if err == nil {
		resp.User.ProfilePic = picURL(profile)
	}
	return resp, nil
}

// Refresh 刷新访问令牌，刷新令牌临近过期时一并轮换
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*types.RefreshResponse, error) {
	secret := []byte(s.Config.Jwt.Secret)
	claims, err := jwt.ParseToken(secret, jwt.TypeRefresh, refreshToken)
	if err != nil {
		return nil, response.Unauthorized("无效的刷新令牌")
	}

	access, err := jwt.GenerateToken(secret, claims.UserID, claims.Username, jwt.TypeAccess, s.Config.Jwt.AccessTTL())
	if err != nil {
		return nil, err
	}

	resp := &types.RefreshResponse{Access: access, Refresh: refreshToken}
	if jwt.ShouldRotateRefreshToken(claims, refreshRotateBuffer) {
		rotated, err := jwt.GenerateToken(secret, claims.UserID, claims.Username, jwt.TypeRefresh, s.Config.Jwt.RefreshTTL())
		if err != nil {
			return nil, err
		}
		resp.Refresh = rotated
	}
	return resp, nil
}

// ResetPassword 邮箱验证码重置密码
func (s *AuthService) ResetPassword(ctx context.Context, req *types.PasswordResetRequest) error {
	user, err := s.UserDAO.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.BadRequest("用户不存在")
		}
		return err
	}
	if err := validatePassword(req.Password, req.PasswordConfirm); err != nil {
		return err
	}
	if err := s.checkCaptcha(ctx, req.Email, req.Captcha); err != nil {
		return err
	}

	hash, err := encrypt.HashPassword(req.Password)
	if err != nil {
		return err
	}
	return s.UserDAO.UpdatePassword(ctx, user.ID, hash)
}
