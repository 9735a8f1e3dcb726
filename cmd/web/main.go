package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"sudooom.chat.web/internal/config"
	"sudooom.chat.web/internal/handler"
	"sudooom.chat.web/internal/jwt"
	"sudooom.chat.web/internal/repository"
	"sudooom.chat.web/internal/router"
	"sudooom.chat.web/internal/service"
	"sudooom.chat.web/pkg/snowflake"
)

func main() {
	// 初始化日志
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// 加载配置
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		logger.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 连接数据库
	db, err := connectDatabase(ctx, cfg.Database)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("Connected to PostgreSQL", "host", cfg.Database.Host)

	// 连接 Redis
	redisClient := connectRedis(cfg.Redis)
	defer redisClient.Close()
	logger.Info("Connected to Redis", "host", cfg.Redis.Host)

	// 初始化 JWT 服务
	jwtService := jwt.NewService(
		cfg.JWT.SecretKey,
		cfg.JWT.AccessExpire,
		cfg.JWT.RefreshExpire,
	)

	// 初始化雪花ID生成器
	sfNode, err := snowflake.NewNode(cfg.App.NodeID)
	if err != nil {
		logger.Error("Failed to create snowflake node", "error", err)
		os.Exit(1)
	}

	// 初始化 Repository
	userRepo := repository.NewUserRepository(db)
	friendRepo := repository.NewFriendRepository(db)
	serverRepo := repository.NewServerRepository(db)
	channelRepo := repository.NewChannelRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	tokenRepo := repository.NewTokenRepository(redisClient)

	// 初始化 Service
	authService := service.NewAuthService(userRepo, tokenRepo, jwtService, sfNode)
	userService := service.NewUserService(userRepo)
	friendService := service.NewFriendService(friendRepo, userRepo, sfNode)
	serverService := service.NewServerService(serverRepo, sfNode)
	channelService := service.NewChannelService(serverRepo, channelRepo, sfNode)
	messageService := service.NewMessageService(messageRepo, serverRepo, channelRepo, userRepo, sfNode)

	// 初始化 Handler
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	friendHandler := handler.NewFriendHandler(friendService)
	serverHandler := handler.NewServerHandler(serverService)
	channelHandler := handler.NewChannelHandler(channelService)
	messageHandler := handler.NewMessageHandler(messageService)

	// 设置路由
	r := router.SetupRouter(cfg, jwtService, tokenRepo,
		authHandler, userHandler, friendHandler,
		serverHandler, channelHandler, messageHandler)

	// 启动服务器
	addr := fmt.Sprintf(":%d", cfg.App.Port)
	go func() {
		logger.Info("Web server started", "addr", addr, "mode", cfg.App.Mode)
		if err := r.Run(addr); err != nil {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// 优雅退出
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	cancel()
	logger.Info("Server stopped")
}

// connectDatabase 连接 PostgreSQL
func connectDatabase(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, err
	}

	poolConfig.MaxConns = int32(cfg.MaxOpenConns)
	poolConfig.MaxConnLifetime = cfg.ConnMaxLifetime
	poolConfig.MaxConnIdleTime = 10 * time.Minute

	return pgxpool.NewWithConfig(ctx, poolConfig)
}

// connectRedis 连接 Redis
func connectRedis(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
}
