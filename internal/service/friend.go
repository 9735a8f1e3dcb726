package service

import (
	"context"
	"log/slog"
	"time"

	"sudooom.chat.web/internal/model"
	apperrors "sudooom.chat.web/pkg/errors"
	"sudooom.chat.web/pkg/snowflake"
)

// FriendService 好友关系服务
// 一对用户之间至多一条记录，accepted 标记是否已确认
type FriendService struct {
	friendStore FriendStore
	userStore   UserStore
	node        *snowflake.Node
}

// NewFriendService 创建好友服务
func NewFriendService(friendStore FriendStore, userStore UserStore, node *snowflake.Node) *FriendService {
	return &FriendService{
		friendStore: friendStore,
		userStore:   userStore,
		node:        node,
	}
}

// AddFriend 发起好友请求，返回接收方资料
func (s *FriendService) AddFriend(ctx context.Context, callerID, userID, friendID int64) (*model.User, error) {
	if err := requireSelf(callerID, userID); err != nil {
		return nil, err
	}
	if userID == friendID {
		return nil, apperrors.ErrCannotAddSelf
	}

	// 确认对方存在且未注销
	receiver, err := s.userStore.GetByID(ctx, friendID)
	if err != nil {
		return nil, err
	}

	// 任一方向已有记录（待确认或已确认）都不允许重复发起
	existing, err := s.friendStore.GetByPair(ctx, userID, friendID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrAlreadyRelated
	}

	now := time.Now()
	friend := &model.Friend{
		ID:         s.node.Generate().Int64(),
		SenderID:   userID,
		ReceiverID: friendID,
		Accepted:   false,
		CreateAt:   now,
		UpdateAt:   now,
	}

	// 并发发起时由唯一索引兜底
	if err := s.friendStore.Create(ctx, friend); err != nil {
		return nil, err
	}

	slog.Info("好友请求已发起", "sender_id", userID, "receiver_id", friendID)
	return receiver, nil
}

// AcceptFriendRequest 接受好友请求，只有接收方可以接受
func (s *FriendService) AcceptFriendRequest(ctx context.Context, callerID, userID, friendID int64) error {
	if err := requireSelf(callerID, userID); err != nil {
		return err
	}

	friend, err := s.friendStore.GetByPair(ctx, userID, friendID)
	if err != nil {
		return err
	}
	if friend == nil {
		return apperrors.ErrNotRelated
	}
	if friend.Accepted {
		return apperrors.ErrAlreadyRelated
	}
	if friend.ReceiverID != userID {
		return apperrors.ErrNotReceiver
	}

	if err := s.friendStore.Accept(ctx, friend.ID); err != nil {
		return err
	}

	slog.Info("好友请求已接受", "sender_id", friend.SenderID, "receiver_id", friend.ReceiverID)
	return nil
}

// RemoveFriend 删除好友或撤回/拒绝请求
// 任一方都可以删除，记录直接物理删除，之后可重新发起
func (s *FriendService) RemoveFriend(ctx context.Context, callerID, userID, friendID int64) error {
	if err := requireSelf(callerID, userID); err != nil {
		return err
	}

	friend, err := s.friendStore.GetByPair(ctx, userID, friendID)
	if err != nil {
		return err
	}
	if friend == nil {
		return apperrors.ErrNotRelated
	}

	if err := s.friendStore.Delete(ctx, friend.ID); err != nil {
		return err
	}

	slog.Info("好友关系已删除", "user_id", userID, "friend_id", friendID)
	return nil
}

// GetFriendList 查询已确认的好友
func (s *FriendService) GetFriendList(ctx context.Context, callerID, userID int64) ([]*model.User, error) {
	if err := requireSelf(callerID, userID); err != nil {
		return nil, err
	}
	return s.friendStore.GetFriends(ctx, userID)
}

// GetReceivedFriendRequests 查询收到的待确认请求
func (s *FriendService) GetReceivedFriendRequests(ctx context.Context, callerID, userID int64) ([]*model.User, error) {
	if err := requireSelf(callerID, userID); err != nil {
		return nil, err
	}
	return s.friendStore.GetReceivedRequests(ctx, userID)
}

// GetSentFriendRequests 查询发出的待确认请求
func (s *FriendService) GetSentFriendRequests(ctx context.Context, callerID, userID int64) ([]*model.User, error) {
	if err := requireSelf(callerID, userID); err != nil {
		return nil, err
	}
	return s.friendStore.GetSentRequests(ctx, userID)
}
