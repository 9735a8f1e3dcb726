package service

import (
	"context"
	"log/slog"
	"time"

	"sudooom.chat.web/internal/model"
	apperrors "sudooom.chat.web/pkg/errors"
	"sudooom.chat.web/pkg/snowflake"
)

// ChannelService 频道服务
// 频道总是通过所属服务器寻址，serverID 与 channelID 不匹配视为请求无效
type ChannelService struct {
	serverStore  ServerStore
	channelStore ChannelStore
	node         *snowflake.Node
}

// NewChannelService 创建频道服务
func NewChannelService(serverStore ServerStore, channelStore ChannelStore, node *snowflake.Node) *ChannelService {
	return &ChannelService{
		serverStore:  serverStore,
		channelStore: channelStore,
		node:         node,
	}
}

// CreateChannelRequest 创建频道请求
type CreateChannelRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateChannelRequest 更新频道请求
type UpdateChannelRequest struct {
	Name string `json:"name" binding:"required"`
}

// Create 创建频道，仅服务器所有者
func (s *ChannelService) Create(ctx context.Context, callerID, serverID int64, req *CreateChannelRequest) (*model.Channel, error) {
	server, err := s.serverStore.GetByID(ctx, serverID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(server, callerID); err != nil {
		return nil, err
	}

	now := time.Now()
	channel := &model.Channel{
		ID:       s.node.Generate().Int64(),
		ServerID: serverID,
		Name:     req.Name,
		CreateAt: now,
		UpdateAt: now,
	}
	if err := s.channelStore.Create(ctx, channel); err != nil {
		return nil, err
	}

	slog.Info("频道已创建", "channel_id", channel.ID, "server_id", serverID)
	return channel, nil
}

// GetByID 查询频道，仅服务器成员
func (s *ChannelService) GetByID(ctx context.Context, callerID, serverID, channelID int64) (*model.Channel, error) {
	server, err := s.serverStore.GetByID(ctx, serverID)
	if err != nil {
		return nil, err
	}
	if err := requireMember(server, callerID); err != nil {
		return nil, err
	}
	return s.resolveChannel(ctx, serverID, channelID)
}

// ListServerChannels 列出服务器的全部频道，仅服务器成员
func (s *ChannelService) ListServerChannels(ctx context.Context, callerID, serverID int64) ([]*model.Channel, error) {
	server, err := s.serverStore.GetByID(ctx, serverID)
	if err != nil {
		return nil, err
	}
	if err := requireMember(server, callerID); err != nil {
		return nil, err
	}
	return server.Channels, nil
}

// Update 重命名频道，仅服务器所有者
func (s *ChannelService) Update(ctx context.Context, callerID, serverID, channelID int64, req *UpdateChannelRequest) (*model.Channel, error) {
	server, err := s.serverStore.GetByID(ctx, serverID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(server, callerID); err != nil {
		return nil, err
	}

	channel, err := s.resolveChannel(ctx, serverID, channelID)
	if err != nil {
		return nil, err
	}

	channel.Name = req.Name
	channel.UpdateAt = time.Now()
	if err := s.channelStore.Update(ctx, channel); err != nil {
		return nil, err
	}
	return channel, nil
}

// Delete 删除频道，仅服务器所有者，软删除
func (s *ChannelService) Delete(ctx context.Context, callerID, serverID, channelID int64) error {
	server, err := s.serverStore.GetByID(ctx, serverID)
	if err != nil {
		return err
	}
	if err := requireOwner(server, callerID); err != nil {
		return err
	}

	channel, err := s.resolveChannel(ctx, serverID, channelID)
	if err != nil {
		return err
	}

	if err := s.channelStore.SoftDelete(ctx, channel.ID); err != nil {
		return err
	}
	slog.Info("频道已删除", "channel_id", channelID, "server_id", serverID)
	return nil
}

// resolveChannel 校验频道归属后加载频道
// 归属判断不过滤软删除，已删除但确实属于该服务器的频道返回 NotFound
func (s *ChannelService) resolveChannel(ctx context.Context, serverID, channelID int64) (*model.Channel, error) {
	ok, err := s.channelStore.BelongsToServer(ctx, serverID, channelID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrChannelNotInServer
	}
	return s.channelStore.GetByID(ctx, channelID)
}
