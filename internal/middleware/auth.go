package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"sudooom.chat.web/internal/jwt"
	"sudooom.chat.web/internal/repository"
	apperrors "sudooom.chat.web/pkg/errors"
	"sudooom.chat.web/pkg/response"
)

const (
	ctxUserIDKey      = "user_id"
	ctxAccessTokenKey = "access_token"
)

// SessionReader 读取 Redis 中的会话记录
// 登出或重新登录后记录被删除，对应 token 即刻失效
type SessionReader interface {
	GetTokenInfo(ctx context.Context, accessToken string) (*repository.UserTokenInfo, error)
}

var _ SessionReader = (*repository.TokenRepository)(nil)

// JWTAuth JWT 认证中间件
// 签名校验之外还要求会话记录仍然存在
func JWTAuth(jwtService *jwt.Service, sessions SessionReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c.GetHeader("Authorization"))
		if token == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateAccessToken(token)
		if err != nil {
			if err == jwt.ErrTokenExpired {
				response.Error(c, apperrors.ErrTokenExpired)
			} else {
				response.Error(c, apperrors.ErrTokenInvalid)
			}
			c.Abort()
			return
		}

		info, err := sessions.GetTokenInfo(c.Request.Context(), token)
		if err != nil {
			response.Error(c, apperrors.ErrDBError.Wrap(err))
			c.Abort()
			return
		}
		if info == nil || info.UserID != claims.UserID {
			response.Error(c, apperrors.ErrTokenInvalid)
			c.Abort()
			return
		}

		c.Set(ctxUserIDKey, claims.UserID)
		c.Set(ctxAccessTokenKey, token)
		c.Next()
	}
}

// extractToken 从 Authorization header 提取 token
func extractToken(authHeader string) string {
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return ""
	}

	return parts[1]
}

// GetUserID 从 context 获取 user_id
func GetUserID(c *gin.Context) int64 {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return 0
	}
	return userID.(int64)
}

// GetAccessToken 从 context 获取当前请求的 access token
func GetAccessToken(c *gin.Context) string {
	token, exists := c.Get(ctxAccessTokenKey)
	if !exists {
		return ""
	}
	return token.(string)
}
