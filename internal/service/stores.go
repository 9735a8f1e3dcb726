package service

import (
	"context"
	"time"

	"sudooom.chat.web/internal/model"
	"sudooom.chat.web/internal/repository"
)

// 服务层依赖的持久化接口
// 具体实现在 internal/repository，测试中以假实现替代

// UserStore 用户持久化
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByEmailOrUsername(ctx context.Context, email, username string) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
	SoftDelete(ctx context.Context, id int64) error
	Search(ctx context.Context, keyword string, limit, offset int) ([]*model.User, error)
}

// ServerStore 服务器持久化
type ServerStore interface {
	Create(ctx context.Context, server *model.Server, defaultChannel *model.Channel, ownerMember *model.ServerMember) error
	GetByID(ctx context.Context, id int64) (*model.Server, error)
	Update(ctx context.Context, server *model.Server) error
	SoftDelete(ctx context.Context, id int64) error
	GetUserServers(ctx context.Context, userID int64) ([]*model.Server, error)
}

// ChannelStore 频道持久化
type ChannelStore interface {
	Create(ctx context.Context, channel *model.Channel) error
	GetByID(ctx context.Context, id int64) (*model.Channel, error)
	BelongsToServer(ctx context.Context, serverID, channelID int64) (bool, error)
	Update(ctx context.Context, channel *model.Channel) error
	SoftDelete(ctx context.Context, id int64) error
}

// MessageStore 消息持久化
type MessageStore interface {
	CreateChannelMessage(ctx context.Context, message *model.Message, channelID int64) error
	CreateUserMessage(ctx context.Context, message *model.Message, receiverID int64) error
	GetByID(ctx context.Context, id int64) (*model.Message, error)
	UpdateContent(ctx context.Context, id int64, content string) error
	SoftDelete(ctx context.Context, id int64) error
	GetChannelMessages(ctx context.Context, channelID int64) ([]*model.MessageWithAuthor, error)
	GetUserMessages(ctx context.Context, receiverID int64) ([]*model.MessageWithAuthor, error)
}

// FriendStore 好友关系持久化
type FriendStore interface {
	Create(ctx context.Context, friend *model.Friend) error
	GetByPair(ctx context.Context, userID, otherID int64) (*model.Friend, error)
	Accept(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	GetFriends(ctx context.Context, userID int64) ([]*model.User, error)
	GetReceivedRequests(ctx context.Context, userID int64) ([]*model.User, error)
	GetSentRequests(ctx context.Context, userID int64) ([]*model.User, error)
}

// SessionStore 会话存储
type SessionStore interface {
	SaveToken(ctx context.Context, info *repository.UserTokenInfo, accessToken string, expire time.Duration) error
	GetTokenInfo(ctx context.Context, accessToken string) (*repository.UserTokenInfo, error)
	DeleteToken(ctx context.Context, userID int64, accessToken string) error
}

var (
	_ UserStore    = (*repository.UserRepository)(nil)
	_ ServerStore  = (*repository.ServerRepository)(nil)
	_ ChannelStore = (*repository.ChannelRepository)(nil)
	_ MessageStore = (*repository.MessageRepository)(nil)
	_ FriendStore  = (*repository.FriendRepository)(nil)
	_ SessionStore = (*repository.TokenRepository)(nil)
)
