package service

import (
	"context"
	"log/slog"

	"sudooom.chat.web/internal/model"
	apperrors "sudooom.chat.web/pkg/errors"
	"sudooom.chat.web/pkg/snowflake"
)

// MessageService 消息服务
// 消息投递目标在创建时确定：频道或单个用户，二者取一
type MessageService struct {
	messageStore MessageStore
	serverStore  ServerStore
	channelStore ChannelStore
	userStore    UserStore
	node         *snowflake.Node
}

// NewMessageService 创建消息服务
func NewMessageService(messageStore MessageStore, serverStore ServerStore, channelStore ChannelStore, userStore UserStore, node *snowflake.Node) *MessageService {
	return &MessageService{
		messageStore: messageStore,
		serverStore:  serverStore,
		channelStore: channelStore,
		userStore:    userStore,
		node:         node,
	}
}

// WriteMessageRequest 发送消息请求
type WriteMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

// UpdateMessageRequest 编辑消息请求
type UpdateMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

// WriteToChannel 向频道发送消息，仅服务器成员
func (s *MessageService) WriteToChannel(ctx context.Context, callerID, serverID, channelID int64, req *WriteMessageRequest) (*model.Message, error) {
	channel, err := s.resolveChannelForMember(ctx, callerID, serverID, channelID)
	if err != nil {
		return nil, err
	}

	message := &model.Message{
		ID:       s.node.Generate().Int64(),
		AuthorID: callerID,
		Content:  req.Content,
	}
	if err := s.messageStore.CreateChannelMessage(ctx, message, channel.ID); err != nil {
		return nil, err
	}

	slog.Info("频道消息已发送", "message_id", message.ID, "channel_id", channel.ID)
	return message, nil
}

// WriteToUser 发送私信
func (s *MessageService) WriteToUser(ctx context.Context, callerID, receiverID int64, req *WriteMessageRequest) (*model.Message, error) {
	if _, err := s.userStore.GetByID(ctx, receiverID); err != nil {
		return nil, err
	}

	message := &model.Message{
		ID:       s.node.Generate().Int64(),
		AuthorID: callerID,
		Content:  req.Content,
	}
	if err := s.messageStore.CreateUserMessage(ctx, message, receiverID); err != nil {
		return nil, err
	}

	slog.Info("私信已发送", "message_id", message.ID, "receiver_id", receiverID)
	return message, nil
}

// GetChannelMessages 查询频道消息，仅服务器成员
func (s *MessageService) GetChannelMessages(ctx context.Context, callerID, serverID, channelID int64) ([]*model.MessageWithAuthor, error) {
	channel, err := s.resolveChannelForMember(ctx, callerID, serverID, channelID)
	if err != nil {
		return nil, err
	}
	return s.messageStore.GetChannelMessages(ctx, channel.ID)
}

// GetUserMessages 查询自己收到的私信
func (s *MessageService) GetUserMessages(ctx context.Context, callerID int64) ([]*model.MessageWithAuthor, error) {
	return s.messageStore.GetUserMessages(ctx, callerID)
}

// UpdateChannelMessage 编辑频道消息
// 先确认频道存在，再按 ID 定位消息；不校验编辑者是否为作者
func (s *MessageService) UpdateChannelMessage(ctx context.Context, serverID, channelID, messageID int64, req *UpdateMessageRequest) (*model.Message, error) {
	if _, err := s.resolveChannel(ctx, serverID, channelID); err != nil {
		return nil, err
	}
	if err := s.messageStore.UpdateContent(ctx, messageID, req.Content); err != nil {
		return nil, err
	}
	return s.messageStore.GetByID(ctx, messageID)
}

// DeleteChannelMessage 删除频道消息，软删除
func (s *MessageService) DeleteChannelMessage(ctx context.Context, serverID, channelID, messageID int64) error {
	if _, err := s.resolveChannel(ctx, serverID, channelID); err != nil {
		return err
	}
	if err := s.messageStore.SoftDelete(ctx, messageID); err != nil {
		return err
	}
	slog.Info("频道消息已删除", "message_id", messageID, "channel_id", channelID)
	return nil
}

// UpdateUserMessage 编辑私信
func (s *MessageService) UpdateUserMessage(ctx context.Context, receiverID, messageID int64, req *UpdateMessageRequest) (*model.Message, error) {
	if _, err := s.userStore.GetByID(ctx, receiverID); err != nil {
		return nil, err
	}
	if err := s.messageStore.UpdateContent(ctx, messageID, req.Content); err != nil {
		return nil, err
	}
	return s.messageStore.GetByID(ctx, messageID)
}

// DeleteUserMessage 删除私信，软删除
func (s *MessageService) DeleteUserMessage(ctx context.Context, receiverID, messageID int64) error {
	if _, err := s.userStore.GetByID(ctx, receiverID); err != nil {
		return err
	}
	if err := s.messageStore.SoftDelete(ctx, messageID); err != nil {
		return err
	}
	slog.Info("私信已删除", "message_id", messageID, "receiver_id", receiverID)
	return nil
}

// resolveChannelForMember 成员校验 + 频道寻址
func (s *MessageService) resolveChannelForMember(ctx context.Context, callerID, serverID, channelID int64) (*model.Channel, error) {
	server, err := s.serverStore.GetByID(ctx, serverID)
	if err != nil {
		return nil, err
	}
	if err := requireMember(server, callerID); err != nil {
		return nil, err
	}
	return s.resolveChannel(ctx, serverID, channelID)
}

// resolveChannel 频道寻址，不校验成员身份
func (s *MessageService) resolveChannel(ctx context.Context, serverID, channelID int64) (*model.Channel, error) {
	if _, err := s.serverStore.GetByID(ctx, serverID); err != nil {
		return nil, err
	}

	ok, err := s.channelStore.BelongsToServer(ctx, serverID, channelID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrChannelNotInServer
	}
	return s.channelStore.GetByID(ctx, channelID)
}
