package router

import (
	"github.com/gin-gonic/gin"

	"sudooom.chat.web/internal/config"
	"sudooom.chat.web/internal/handler"
	"sudooom.chat.web/internal/jwt"
	"sudooom.chat.web/internal/middleware"
)

// SetupRouter 设置路由
func SetupRouter(
	cfg *config.Config,
	jwtService *jwt.Service,
	tokenRepo middleware.SessionReader,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	friendHandler *handler.FriendHandler,
	serverHandler *handler.ServerHandler,
	channelHandler *handler.ChannelHandler,
	messageHandler *handler.MessageHandler,
) *gin.Engine {
	gin.SetMode(cfg.App.Mode)

	r := gin.New()

	// 全局中间件
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(
		cfg.CORS.AllowedOrigins,
		cfg.CORS.AllowedMethods,
		cfg.CORS.AllowCredentials,
	))

	// API v1
	v1 := r.Group("/api/v1")
	{
		// 认证接口（无需登录）
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.Refresh)
		}

		// 需要认证的接口
		authenticated := v1.Group("")
		authenticated.Use(middleware.JWTAuth(jwtService, tokenRepo))
		{
			authenticated.POST("/auth/logout", authHandler.Logout)

			// 用户接口
			users := authenticated.Group("/users")
			{
				users.GET("/profile", userHandler.Profile)
				users.GET("/search", userHandler.Search)
				users.GET("/:id", userHandler.Get)
				users.PUT("/:id", userHandler.Update)
				users.DELETE("/:id", userHandler.Delete)
			}

			// 好友接口
			friends := authenticated.Group("/friends")
			{
				friends.GET("", friendHandler.List)
				friends.GET("/requests/received", friendHandler.ReceivedRequests)
				friends.GET("/requests/sent", friendHandler.SentRequests)
				friends.POST("/:friendId", friendHandler.Add)
				friends.PUT("/:friendId/accept", friendHandler.Accept)
				friends.DELETE("/:friendId", friendHandler.Remove)
			}

			// 服务器与频道接口
			servers := authenticated.Group("/servers")
			{
				servers.POST("", serverHandler.Create)
				servers.GET("", serverHandler.List)
				servers.GET("/:serverId", serverHandler.Get)
				servers.PUT("/:serverId", serverHandler.Update)
				servers.DELETE("/:serverId", serverHandler.Delete)

				servers.POST("/:serverId/channels", channelHandler.Create)
				servers.GET("/:serverId/channels", channelHandler.List)
				servers.GET("/:serverId/channels/:channelId", channelHandler.Get)
				servers.PUT("/:serverId/channels/:channelId", channelHandler.Update)
				servers.DELETE("/:serverId/channels/:channelId", channelHandler.Delete)

				servers.POST("/:serverId/channels/:channelId/messages", messageHandler.WriteToChannel)
				servers.GET("/:serverId/channels/:channelId/messages", messageHandler.ChannelMessages)
				servers.PUT("/:serverId/channels/:channelId/messages/:messageId", messageHandler.UpdateChannelMessage)
				servers.DELETE("/:serverId/channels/:channelId/messages/:messageId", messageHandler.DeleteChannelMessage)
			}

			// 私信接口
			messages := authenticated.Group("/messages")
			{
				messages.GET("", messageHandler.Inbox)
				messages.POST("/user/:userId", messageHandler.WriteToUser)
				messages.PUT("/user/:userId/:messageId", messageHandler.UpdateUserMessage)
				messages.DELETE("/user/:userId/:messageId", messageHandler.DeleteUserMessage)
			}
		}
	}

	return r
}
