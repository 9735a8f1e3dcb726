package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sudooom.chat.web/internal/jwt"
	"sudooom.chat.web/internal/repository"
	"sudooom.chat.web/internal/service"
	"sudooom.chat.web/pkg/snowflake"
)

// 测试配置 - 使用环境变量或默认值
var (
	testDBHost     = getEnv("POSTGRES_HOST", "localhost")
	testDBPort     = getEnv("POSTGRES_PORT", "5432")
	testDBUser     = getEnv("POSTGRES_USER", "postgres")
	testDBPassword = getEnv("POSTGRES_PASSWORD", "password")
	testDBName     = getEnv("POSTGRES_DB", "chat_db")

	testRedisHost = getEnv("REDIS_HOST", "localhost")
	testRedisPort = getEnv("REDIS_PORT", "6379")
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// testDeps 测试依赖
type testDeps struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	authHandler *AuthHandler
	router      *gin.Engine
}

// setupIntegrationTest 初始化集成测试环境
// 缺少 PostgreSQL 或 Redis 时跳过
func setupIntegrationTest(t *testing.T) *testDeps {
	t.Helper()

	ctx := context.Background()

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		testDBUser, testDBPassword, testDBHost, testDBPort, testDBName)

	db, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Skipf("跳过集成测试: 无法连接数据库: %v", err)
	}
	if err := db.Ping(ctx); err != nil {
		db.Close()
		t.Skipf("跳过集成测试: 数据库 ping 失败: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr: testRedisHost + ":" + testRedisPort,
		DB:   15,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		db.Close()
		t.Skipf("跳过集成测试: 无法连接 Redis: %v", err)
	}

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	jwtService := jwt.NewService("integration-test-secret", 15*time.Minute, 24*time.Hour)
	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewTokenRepository(redisClient)
	authService := service.NewAuthService(userRepo, tokenRepo, jwtService, node)
	authHandler := NewAuthHandler(authService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/auth/register", authHandler.Register)
	router.POST("/auth/login", authHandler.Login)

	t.Cleanup(func() {
		db.Close()
		redisClient.Close()
	})

	return &testDeps{
		db:          db,
		redisClient: redisClient,
		authHandler: authHandler,
		router:      router,
	}
}

// apiResponse 用于解析响应体
type apiResponse struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestIntegration_RegisterAndLogin(t *testing.T) {
	deps := setupIntegrationTest(t)

	suffix := time.Now().UnixNano()
	email := fmt.Sprintf("it-%d@example.com", suffix)
	username := fmt.Sprintf("it-user-%d", suffix)

	// 注册
	w := postJSON(t, deps.router, "/auth/register", service.RegisterRequest{
		Email:    email,
		Username: username,
		Password: "secret12",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var reg apiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reg))
	assert.Equal(t, 0, reg.Code)

	// 用用户名登录
	w = postJSON(t, deps.router, "/auth/login", service.LoginRequest{
		Account:  username,
		Password: "secret12",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var login apiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	assert.Equal(t, 0, login.Code)

	var loginData struct {
		Token struct {
			AccessToken  string `json:"access_token"`
			RefreshToken string `json:"refresh_token"`
		} `json:"token"`
	}
	require.NoError(t, json.Unmarshal(login.Data, &loginData))
	assert.NotEmpty(t, loginData.Token.AccessToken)
	assert.NotEmpty(t, loginData.Token.RefreshToken)
}

func TestIntegration_Login_WrongPassword(t *testing.T) {
	deps := setupIntegrationTest(t)

	suffix := time.Now().UnixNano()
	username := fmt.Sprintf("it-user-%d", suffix)

	w := postJSON(t, deps.router, "/auth/register", service.RegisterRequest{
		Email:    fmt.Sprintf("it-%d@example.com", suffix),
		Username: username,
		Password: "secret12",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = postJSON(t, deps.router, "/auth/login", service.LoginRequest{
		Account:  username,
		Password: "wrong-pass",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
