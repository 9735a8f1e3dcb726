package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sudooom.chat.web/internal/jwt"
	"sudooom.chat.web/internal/repository"
)

type fakeSessionReader struct {
	GetTokenInfoFunc func(ctx context.Context, accessToken string) (*repository.UserTokenInfo, error)
}

func (f *fakeSessionReader) GetTokenInfo(ctx context.Context, accessToken string) (*repository.UserTokenInfo, error) {
	if f.GetTokenInfoFunc != nil {
		return f.GetTokenInfoFunc(ctx, accessToken)
	}
	return nil, nil
}

var _ SessionReader = (*fakeSessionReader)(nil)

func newAuthTestRouter(jwtService *jwt.Service, sessions SessionReader) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", JWTAuth(jwtService, sessions), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": GetUserID(c)})
	})
	return r
}

func TestJWTAuth(t *testing.T) {
	jwtService := jwt.NewService("test-secret", time.Minute, time.Hour)
	pair, err := jwtService.GenerateTokenPair(1)
	require.NoError(t, err)

	sessions := &fakeSessionReader{
		GetTokenInfoFunc: func(ctx context.Context, accessToken string) (*repository.UserTokenInfo, error) {
			if accessToken == pair.AccessToken {
				return &repository.UserTokenInfo{UserID: 1, Username: "alice"}, nil
			}
			return nil, nil
		},
	}
	r := newAuthTestRouter(jwtService, sessions)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":1`)
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	jwtService := jwt.NewService("test-secret", time.Minute, time.Hour)
	r := newAuthTestRouter(jwtService, &fakeSessionReader{})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_RevokedSession(t *testing.T) {
	jwtService := jwt.NewService("test-secret", time.Minute, time.Hour)
	pair, err := jwtService.GenerateTokenPair(1)
	require.NoError(t, err)

	// 签名有效但会话已被登出删除
	sessions := &fakeSessionReader{
		GetTokenInfoFunc: func(ctx context.Context, accessToken string) (*repository.UserTokenInfo, error) {
			return nil, nil
		},
	}
	r := newAuthTestRouter(jwtService, sessions)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_SessionUserMismatch(t *testing.T) {
	jwtService := jwt.NewService("test-secret", time.Minute, time.Hour)
	pair, err := jwtService.GenerateTokenPair(1)
	require.NoError(t, err)

	sessions := &fakeSessionReader{
		GetTokenInfoFunc: func(ctx context.Context, accessToken string) (*repository.UserTokenInfo, error) {
			return &repository.UserTokenInfo{UserID: 2, Username: "mallory"}, nil
		},
	}
	r := newAuthTestRouter(jwtService, sessions)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_GarbageToken(t *testing.T) {
	jwtService := jwt.NewService("test-secret", time.Minute, time.Hour)
	r := newAuthTestRouter(jwtService, &fakeSessionReader{})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
