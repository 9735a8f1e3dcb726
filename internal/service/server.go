package service

import (
	"context"
	"log/slog"
	"time"

	"sudooom.chat.web/internal/model"
	"sudooom.chat.web/pkg/snowflake"
)

// ServerService 服务器服务
type ServerService struct {
	serverStore ServerStore
	node        *snowflake.Node
}

// NewServerService 创建服务器服务
func NewServerService(serverStore ServerStore, node *snowflake.Node) *ServerService {
	return &ServerService{serverStore: serverStore, node: node}
}

// CreateServerRequest 创建服务器请求
type CreateServerRequest struct {
	Name   string `json:"name" binding:"required"`
	Avatar string `json:"avatar"`
}

// UpdateServerRequest 更新服务器请求
type UpdateServerRequest struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// Create 创建服务器
// 同一事务内写入服务器、默认频道和所有者成员记录
func (s *ServerService) Create(ctx context.Context, callerID int64, req *CreateServerRequest) (*model.Server, error) {
	now := time.Now()

	server := &model.Server{
		ID:       s.node.Generate().Int64(),
		Name:     req.Name,
		OwnerID:  callerID,
		Avatar:   req.Avatar,
		CreateAt: now,
		UpdateAt: now,
	}
	channel := &model.Channel{
		ID:       s.node.Generate().Int64(),
		ServerID: server.ID,
		Name:     model.DefaultChannelName,
		CreateAt: now,
		UpdateAt: now,
	}
	member := &model.ServerMember{
		ID:       s.node.Generate().Int64(),
		ServerID: server.ID,
		UserID:   callerID,
		CreateAt: now,
		UpdateAt: now,
	}

	if err := s.serverStore.Create(ctx, server, channel, member); err != nil {
		return nil, err
	}

	server.Channels = []*model.Channel{channel}
	server.Members = []*model.ServerMember{member}

	slog.Info("服务器已创建", "server_id", server.ID, "owner_id", callerID)
	return server, nil
}

// GetByID 查询服务器详情，仅成员可见
// 先判断存在性，不存在时返回 NotFound 而不是 Forbidden
func (s *ServerService) GetByID(ctx context.Context, callerID, serverID int64) (*model.Server, error) {
	server, err := s.serverStore.GetByID(ctx, serverID)
	if err != nil {
		return nil, err
	}
	if err := requireMember(server, callerID); err != nil {
		return nil, err
	}
	return server, nil
}

// Update 更新服务器，仅所有者
func (s *ServerService) Update(ctx context.Context, callerID, serverID int64, req *UpdateServerRequest) (*model.Server, error) {
	server, err := s.serverStore.GetByID(ctx, serverID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(server, callerID); err != nil {
		return nil, err
	}

	if req.Name != "" {
		server.Name = req.Name
	}
	if req.Avatar != "" {
		server.Avatar = req.Avatar
	}
	server.UpdateAt = time.Now()

	if err := s.serverStore.Update(ctx, server); err != nil {
		return nil, err
	}
	return server, nil
}

// Delete 删除服务器，仅所有者，软删除
func (s *ServerService) Delete(ctx context.Context, callerID, serverID int64) error {
	server, err := s.serverStore.GetByID(ctx, serverID)
	if err != nil {
		return err
	}
	if err := requireOwner(server, callerID); err != nil {
		return err
	}
	if err := s.serverStore.SoftDelete(ctx, serverID); err != nil {
		return err
	}
	slog.Info("服务器已删除", "server_id", serverID, "owner_id", callerID)
	return nil
}

// ListUserServers 查询用户加入的全部服务器
func (s *ServerService) ListUserServers(ctx context.Context, callerID int64) ([]*model.Server, error) {
	return s.serverStore.GetUserServers(ctx, callerID)
}
