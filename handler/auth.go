package handler

import (
	"Scribe/pkg/context"
	"Scribe/pkg/response"
	"Scribe/service"
	"Scribe/types"

	"github.com/gin-gonic/gin"
)

type Auth struct {
	AuthService    service.IAuthService
	CaptchaService service.ICaptchaService
}

func (h *Auth) RegisterRouter(r gin.IRouter) {
	g := r.Group("/auth")
	g.POST("/login", context.Wrap(h.Login))
	g.POST("/register", context.Wrap(h.Register))
	g.POST("/refresh", context.Wrap(h.Refresh))
	g.POST("/password-reset", context.Wrap(h.ResetPassword))

	r.POST("/captcha", context.Wrap(h.SendCaptcha))
}

func (h *Auth) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("参数格式错误: " + err.Error())
	}

	resp, err := h.AuthService.Login(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Auth) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("参数格式错误: " + err.Error())
	}

	user, err := h.AuthService.Register(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Created(c, types.RegisterResponse{
		User: types.UserInfo{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
		},
	})
	return nil
}

func (h *Auth) Refresh(c *gin.Context) error {
	var req types.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("参数格式错误: " + err.Error())
	}

	resp, err := h.AuthService.Refresh(c.Request.Context(), req.Refresh)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Auth) ResetPassword(c *gin.Context) error {
	var req types.PasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("参数格式错误: " + err.Error())
	}

	if err := h.AuthService.ResetPassword(c.Request.Context(), &req); err != nil {
		return err
	}
	response.Success(c, gin.H{"message": "密码重置成功"})
	return nil
}

func (h *Auth) SendCaptcha(c *gin.Context) error {
	var req types.CaptchaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("邮箱不能为空")
	}

	if err := h.CaptchaService.Issue(c.Request.Context(), req.Email); err != nil {
		return err
	}
	response.Success(c, gin.H{"message": "验证码发送成功"})
	return nil
}
