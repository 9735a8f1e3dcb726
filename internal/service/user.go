package service

import (
	"context"
	"log/slog"
	"time"

	"sudooom.chat.web/internal/model"
)

// UserService 用户服务
type UserService struct {
	userStore UserStore
}

// NewUserService 创建用户服务
func NewUserService(userStore UserStore) *UserService {
	return &UserService{userStore: userStore}
}

// UpdateProfileRequest 更新资料请求
type UpdateProfileRequest struct {
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

// GetByID 查询用户
func (s *UserService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return s.userStore.GetByID(ctx, id)
}

// UpdateProfile 更新个人资料，只能改自己的
func (s *UserService) UpdateProfile(ctx context.Context, callerID, userID int64, req *UpdateProfileRequest) (*model.User, error) {
	if err := requireSelf(callerID, userID); err != nil {
		return nil, err
	}

	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Username != "" {
		user.Username = req.Username
	}
	if req.Avatar != "" {
		user.Avatar = req.Avatar
	}
	user.UpdateAt = time.Now()

	if err := s.userStore.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete 注销账号，只能删自己
// 软删除，历史消息仍保留作者引用
func (s *UserService) Delete(ctx context.Context, callerID, userID int64) error {
	if err := requireSelf(callerID, userID); err != nil {
		return err
	}
	if err := s.userStore.SoftDelete(ctx, userID); err != nil {
		return err
	}
	slog.Info("用户注销", "user_id", userID)
	return nil
}

// Search 按用户名模糊搜索
func (s *UserService) Search(ctx context.Context, keyword string, limit, offset int) ([]*model.User, error) {
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.userStore.Search(ctx, keyword, limit, offset)
}
