package service

import (
	"context"
	"time"

	"sudooom.chat.web/internal/model"
	"sudooom.chat.web/internal/repository"
	apperrors "sudooom.chat.web/pkg/errors"
)

// 测试用的假存储，未设置的方法返回零值

type fakeUserStore struct {
	CreateFunc                  func(ctx context.Context, user *model.User) error
	GetByIDFunc                 func(ctx context.Context, id int64) (*model.User, error)
	GetByEmailFunc              func(ctx context.Context, email string) (*model.User, error)
	GetByUsernameFunc           func(ctx context.Context, username string) (*model.User, error)
	GetByEmailOrUsernameFunc    func(ctx context.Context, email, username string) (*model.User, error)
	UpdateFunc                  func(ctx context.Context, user *model.User) error
	SoftDeleteFunc              func(ctx context.Context, id int64) error
	SearchFunc                  func(ctx context.Context, keyword string, limit, offset int) ([]*model.User, error)
}

func (f *fakeUserStore) Create(ctx context.Context, user *model.User) error {
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, user)
	}
	return nil
}

func (f *fakeUserStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, id)
	}
	return &model.User{ID: id}, nil
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if f.GetByEmailFunc != nil {
		return f.GetByEmailFunc(ctx, email)
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserStore) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if f.GetByUsernameFunc != nil {
		return f.GetByUsernameFunc(ctx, username)
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserStore) GetByEmailOrUsername(ctx context.Context, email, username string) (*model.User, error) {
	if f.GetByEmailOrUsernameFunc != nil {
		return f.GetByEmailOrUsernameFunc(ctx, email, username)
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserStore) Update(ctx context.Context, user *model.User) error {
	if f.UpdateFunc != nil {
		return f.UpdateFunc(ctx, user)
	}
	return nil
}

func (f *fakeUserStore) SoftDelete(ctx context.Context, id int64) error {
	if f.SoftDeleteFunc != nil {
		return f.SoftDeleteFunc(ctx, id)
	}
	return nil
}

func (f *fakeUserStore) Search(ctx context.Context, keyword string, limit, offset int) ([]*model.User, error) {
	if f.SearchFunc != nil {
		return f.SearchFunc(ctx, keyword, limit, offset)
	}
	return nil, nil
}

type fakeFriendStore struct {
	CreateFunc              func(ctx context.Context, friend *model.Friend) error
	GetByPairFunc           func(ctx context.Context, userID, otherID int64) (*model.Friend, error)
	AcceptFunc              func(ctx context.Context, id int64) error
	DeleteFunc              func(ctx context.Context, id int64) error
	GetFriendsFunc          func(ctx context.Context, userID int64) ([]*model.User, error)
	GetReceivedRequestsFunc func(ctx context.Context, userID int64) ([]*model.User, error)
	GetSentRequestsFunc     func(ctx context.Context, userID int64) ([]*model.User, error)
}

func (f *fakeFriendStore) Create(ctx context.Context, friend *model.Friend) error {
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, friend)
	}
	return nil
}

func (f *fakeFriendStore) GetByPair(ctx context.Context, userID, otherID int64) (*model.Friend, error) {
	if f.GetByPairFunc != nil {
		return f.GetByPairFunc(ctx, userID, otherID)
	}
	return nil, nil
}

func (f *fakeFriendStore) Accept(ctx context.Context, id int64) error {
	if f.AcceptFunc != nil {
		return f.AcceptFunc(ctx, id)
	}
	return nil
}

func (f *fakeFriendStore) Delete(ctx context.Context, id int64) error {
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, id)
	}
	return nil
}

func (f *fakeFriendStore) GetFriends(ctx context.Context, userID int64) ([]*model.User, error) {
	if f.GetFriendsFunc != nil {
		return f.GetFriendsFunc(ctx, userID)
	}
	return nil, nil
}

func (f *fakeFriendStore) GetReceivedRequests(ctx context.Context, userID int64) ([]*model.User, error) {
	if f.GetReceivedRequestsFunc != nil {
		return f.GetReceivedRequestsFunc(ctx, userID)
	}
	return nil, nil
}

func (f *fakeFriendStore) GetSentRequests(ctx context.Context, userID int64) ([]*model.User, error) {
	if f.GetSentRequestsFunc != nil {
		return f.GetSentRequestsFunc(ctx, userID)
	}
	return nil, nil
}

type fakeServerStore struct {
	CreateFunc         func(ctx context.Context, server *model.Server, defaultChannel *model.Channel, ownerMember *model.ServerMember) error
	GetByIDFunc        func(ctx context.Context, id int64) (*model.Server, error)
	UpdateFunc         func(ctx context.Context, server *model.Server) error
	SoftDeleteFunc     func(ctx context.Context, id int64) error
	GetUserServersFunc func(ctx context.Context, userID int64) ([]*model.Server, error)
}

func (f *fakeServerStore) Create(ctx context.Context, server *model.Server, defaultChannel *model.Channel, ownerMember *model.ServerMember) error {
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, server, defaultChannel, ownerMember)
	}
	return nil
}

func (f *fakeServerStore) GetByID(ctx context.Context, id int64) (*model.Server, error) {
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, id)
	}
	return &model.Server{ID: id}, nil
}

func (f *fakeServerStore) Update(ctx context.Context, server *model.Server) error {
	if f.UpdateFunc != nil {
		return f.UpdateFunc(ctx, server)
	}
	return nil
}

func (f *fakeServerStore) SoftDelete(ctx context.Context, id int64) error {
	if f.SoftDeleteFunc != nil {
		return f.SoftDeleteFunc(ctx, id)
	}
	return nil
}

func (f *fakeServerStore) GetUserServers(ctx context.Context, userID int64) ([]*model.Server, error) {
	if f.GetUserServersFunc != nil {
		return f.GetUserServersFunc(ctx, userID)
	}
	return nil, nil
}

type fakeChannelStore struct {
	CreateFunc          func(ctx context.Context, channel *model.Channel) error
	GetByIDFunc         func(ctx context.Context, id int64) (*model.Channel, error)
	BelongsToServerFunc func(ctx context.Context, serverID, channelID int64) (bool, error)
	UpdateFunc          func(ctx context.Context, channel *model.Channel) error
	SoftDeleteFunc      func(ctx context.Context, id int64) error
}

func (f *fakeChannelStore) Create(ctx context.Context, channel *model.Channel) error {
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, channel)
	}
	return nil
}

func (f *fakeChannelStore) GetByID(ctx context.Context, id int64) (*model.Channel, error) {
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, id)
	}
	return &model.Channel{ID: id}, nil
}

func (f *fakeChannelStore) BelongsToServer(ctx context.Context, serverID, channelID int64) (bool, error) {
	if f.BelongsToServerFunc != nil {
		return f.BelongsToServerFunc(ctx, serverID, channelID)
	}
	return true, nil
}

func (f *fakeChannelStore) Update(ctx context.Context, channel *model.Channel) error {
	if f.UpdateFunc != nil {
		return f.UpdateFunc(ctx, channel)
	}
	return nil
}

func (f *fakeChannelStore) SoftDelete(ctx context.Context, id int64) error {
	if f.SoftDeleteFunc != nil {
		return f.SoftDeleteFunc(ctx, id)
	}
	return nil
}

type fakeMessageStore struct {
	CreateChannelMessageFunc func(ctx context.Context, message *model.Message, channelID int64) error
	CreateUserMessageFunc    func(ctx context.Context, message *model.Message, receiverID int64) error
	GetByIDFunc              func(ctx context.Context, id int64) (*model.Message, error)
	UpdateContentFunc        func(ctx context.Context, id int64, content string) error
	SoftDeleteFunc           func(ctx context.Context, id int64) error
	GetChannelMessagesFunc   func(ctx context.Context, channelID int64) ([]*model.MessageWithAuthor, error)
	GetUserMessagesFunc      func(ctx context.Context, receiverID int64) ([]*model.MessageWithAuthor, error)
}

func (f *fakeMessageStore) CreateChannelMessage(ctx context.Context, message *model.Message, channelID int64) error {
	if f.CreateChannelMessageFunc != nil {
		return f.CreateChannelMessageFunc(ctx, message, channelID)
	}
	return nil
}

func (f *fakeMessageStore) CreateUserMessage(ctx context.Context, message *model.Message, receiverID int64) error {
	if f.CreateUserMessageFunc != nil {
		return f.CreateUserMessageFunc(ctx, message, receiverID)
	}
	return nil
}

func (f *fakeMessageStore) GetByID(ctx context.Context, id int64) (*model.Message, error) {
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, id)
	}
	return &model.Message{ID: id}, nil
}

func (f *fakeMessageStore) UpdateContent(ctx context.Context, id int64, content string) error {
	if f.UpdateContentFunc != nil {
		return f.UpdateContentFunc(ctx, id, content)
	}
	return nil
}

func (f *fakeMessageStore) SoftDelete(ctx context.Context, id int64) error {
	if f.SoftDeleteFunc != nil {
		return f.SoftDeleteFunc(ctx, id)
	}
	return nil
}

func (f *fakeMessageStore) GetChannelMessages(ctx context.Context, channelID int64) ([]*model.MessageWithAuthor, error) {
	if f.GetChannelMessagesFunc != nil {
		return f.GetChannelMessagesFunc(ctx, channelID)
	}
	return nil, nil
}

func (f *fakeMessageStore) GetUserMessages(ctx context.Context, receiverID int64) ([]*model.MessageWithAuthor, error) {
	if f.GetUserMessagesFunc != nil {
		return f.GetUserMessagesFunc(ctx, receiverID)
	}
	return nil, nil
}

type fakeSessionStore struct {
	SaveTokenFunc    func(ctx context.Context, info *repository.UserTokenInfo, accessToken string, expire time.Duration) error
	GetTokenInfoFunc func(ctx context.Context, accessToken string) (*repository.UserTokenInfo, error)
	DeleteTokenFunc  func(ctx context.Context, userID int64, accessToken string) error
}

func (f *fakeSessionStore) SaveToken(ctx context.Context, info *repository.UserTokenInfo, accessToken string, expire time.Duration) error {
	if f.SaveTokenFunc != nil {
		return f.SaveTokenFunc(ctx, info, accessToken, expire)
	}
	return nil
}

func (f *fakeSessionStore) GetTokenInfo(ctx context.Context, accessToken string) (*repository.UserTokenInfo, error) {
	if f.GetTokenInfoFunc != nil {
		return f.GetTokenInfoFunc(ctx, accessToken)
	}
	return nil, nil
}

func (f *fakeSessionStore) DeleteToken(ctx context.Context, userID int64, accessToken string) error {
	if f.DeleteTokenFunc != nil {
		return f.DeleteTokenFunc(ctx, userID, accessToken)
	}
	return nil
}

var (
	_ UserStore    = (*fakeUserStore)(nil)
	_ FriendStore  = (*fakeFriendStore)(nil)
	_ ServerStore  = (*fakeServerStore)(nil)
	_ ChannelStore = (*fakeChannelStore)(nil)
	_ MessageStore = (*fakeMessageStore)(nil)
	_ SessionStore = (*fakeSessionStore)(nil)
)
