package middleware

import (
	"net/http"
	"strings"
	"time"

	"Scribe/pkg/jwt"
	"Scribe/pkg/response"

	"github.com/gin-gonic/gin"
)

const renewBuffer = 60 * time.Second

// Auth 访问令牌校验，临近过期时通过响应头下发新令牌
func Auth(secret []byte, accessTTL time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseBearer(c, secret)
		if !ok {
			return
		}

		if time.Until(claims.ExpiresAt.Time) < renewBuffer {
			newToken, err := jwt.GenerateToken(
				secret,
				claims.UserID,
				claims.Username,
				jwt.TypeAccess,
				accessTTL,
			)
			if err == nil {
				c.Header("X-New-Access-Token", newToken)
			}
		}
		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)

		c.Next()
	}
}

// OptionalAuth 令牌可选，带有效令牌时注入用户信息，没带则作为匿名请求放行
func OptionalAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Next()
			return
		}
		claims, err := jwt.ParseToken(secret, jwt.TypeAccess, parts[1])
		if err != nil {
			c.Next()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Next()
	}
}

func parseBearer(c *gin.Context, secret []byte) (*jwt.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Abort(c, http.StatusUnauthorized, "缺少 Authorization")
		return nil, false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		response.Abort(c, http.StatusUnauthorized, "Authorization 格式错误")
		return nil, false
	}

	claims, err := jwt.ParseToken(secret, jwt.TypeAccess, parts[1])
	if err != nil {
		response.Abort(c, http.StatusUnauthorized, "无效的访问令牌")
		return nil, false
	}
	return claims, true
}
