package service

import (
	"context"
	"log/slog"
	"regexp"
	"time"

	"golang.org/x/crypto/bcrypt"

	"sudooom.chat.web/internal/jwt"
	"sudooom.chat.web/internal/model"
	"sudooom.chat.web/internal/repository"
	apperrors "sudooom.chat.web/pkg/errors"
	"sudooom.chat.web/pkg/snowflake"
)

// 密码最短长度
const minPasswordLen = 7

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// AuthService 认证服务
type AuthService struct {
	userStore  UserStore
	tokenRepo  SessionStore
	jwtService *jwt.Service
	node       *snowflake.Node
}

// NewAuthService 创建认证服务
func NewAuthService(userStore UserStore, tokenRepo SessionStore, jwtService *jwt.Service, node *snowflake.Node) *AuthService {
	return &AuthService{
		userStore:  userStore,
		tokenRepo:  tokenRepo,
		jwtService: jwtService,
		node:       node,
	}
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Avatar   string `json:"avatar"`
}

// LoginRequest 登录请求
// Account 可以是邮箱或用户名
type LoginRequest struct {
	Account  string `json:"account" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	User  *model.User    `json:"user"`
	Token *jwt.TokenPair `json:"token"`
}

// Register 注册新用户
func (s *AuthService) Register(ctx context.Context, req *RegisterRequest) (*model.User, error) {
	if len(req.Password) < minPasswordLen {
		return nil, apperrors.ErrPasswordTooShort
	}
	if !emailPattern.MatchString(req.Email) {
		return nil, apperrors.ErrEmailInvalid
	}

	if _, err := s.userStore.GetByEmail(ctx, req.Email); err == nil {
		return nil, apperrors.ErrUserExists
	} else if apperrors.GetKind(err) != apperrors.KindNotFound {
		return nil, err
	}
	if _, err := s.userStore.GetByUsername(ctx, req.Username); err == nil {
		return nil, apperrors.ErrUserExists
	} else if apperrors.GetKind(err) != apperrors.KindNotFound {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.ErrServerError.Wrap(err)
	}

	now := time.Now()
	user := &model.User{
		ID:           s.node.Generate().Int64(),
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: string(hash),
		Avatar:       req.Avatar,
		CreateAt:     now,
		UpdateAt:     now,
	}

	// 唯一索引兜底，并发注册时以数据库为准
	if err := s.userStore.Create(ctx, user); err != nil {
		return nil, err
	}

	slog.Info("用户注册成功", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// Login 登录，支持邮箱或用户名
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	user, err := s.userStore.GetByEmailOrUsername(ctx, req.Account, req.Account)
	if err != nil {
		if apperrors.GetKind(err) == apperrors.KindNotFound {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	pair, err := s.jwtService.GenerateTokenPair(user.ID)
	if err != nil {
		return nil, apperrors.ErrServerError.Wrap(err)
	}

	info := &repository.UserTokenInfo{UserID: user.ID, Username: user.Username}
	expire := time.Until(time.Unix(pair.ExpiresAt, 0))
	if err := s.tokenRepo.SaveToken(ctx, info, pair.AccessToken, expire); err != nil {
		return nil, apperrors.ErrDBError.Wrap(err)
	}

	slog.Info("用户登录成功", "user_id", user.ID)
	return &LoginResponse{User: user, Token: pair}, nil
}

// Logout 登出，使当前会话失效
func (s *AuthService) Logout(ctx context.Context, userID int64, accessToken string) error {
	if err := s.tokenRepo.DeleteToken(ctx, userID, accessToken); err != nil {
		return apperrors.ErrDBError.Wrap(err)
	}
	slog.Info("用户登出", "user_id", userID)
	return nil
}

// RefreshToken 用 refresh token 换取新的 token 对
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*jwt.TokenPair, error) {
	claims, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		if err == jwt.ErrTokenExpired {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrTokenInvalid
	}

	user, err := s.userStore.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	pair, err := s.jwtService.GenerateTokenPair(user.ID)
	if err != nil {
		return nil, apperrors.ErrServerError.Wrap(err)
	}

	info := &repository.UserTokenInfo{UserID: user.ID, Username: user.Username}
	expire := time.Until(time.Unix(pair.ExpiresAt, 0))
	if err := s.tokenRepo.SaveToken(ctx, info, pair.AccessToken, expire); err != nil {
		return nil, apperrors.ErrDBError.Wrap(err)
	}

	return pair, nil
}
