package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sudooom.chat.web/internal/model"
	apperrors "sudooom.chat.web/pkg/errors"
)

func memberServerStore(ownerID int64, memberIDs ...int64) *fakeServerStore {
	return &fakeServerStore{
		GetByIDFunc: func(ctx context.Context, id int64) (*model.Server, error) {
			members := make([]*model.ServerMember, 0, len(memberIDs))
			for _, uid := range memberIDs {
				members = append(members, &model.ServerMember{UserID: uid})
			}
			return &model.Server{ID: id, OwnerID: ownerID, Members: members}, nil
		},
	}
}

func TestMessageService_WriteToChannel(t *testing.T) {
	var (
		created       *model.Message
		linkedChannel int64
	)
	messageStore := &fakeMessageStore{
		CreateChannelMessageFunc: func(ctx context.Context, message *model.Message, channelID int64) error {
			created = message
			linkedChannel = channelID
			return nil
		},
	}
	svc := NewMessageService(messageStore, memberServerStore(1, 1, 2), &fakeChannelStore{}, &fakeUserStore{}, testNode(t))

	msg, err := svc.WriteToChannel(context.Background(), 2, 100, 200, &WriteMessageRequest{Content: "hello"})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "hello", msg.Content)
	assert.Equal(t, int64(2), msg.AuthorID)
	assert.Equal(t, int64(200), linkedChannel)
}

func TestMessageService_WriteToChannel_NotMember(t *testing.T) {
	svc := NewMessageService(&fakeMessageStore{}, memberServerStore(1, 1), &fakeChannelStore{}, &fakeUserStore{}, testNode(t))

	_, err := svc.WriteToChannel(context.Background(), 3, 100, 200, &WriteMessageRequest{Content: "hello"})
	assert.ErrorIs(t, err, apperrors.ErrNotMember)
}

func TestMessageService_WriteToChannel_WrongServer(t *testing.T) {
	channelStore := &fakeChannelStore{
		BelongsToServerFunc: func(ctx context.Context, serverID, channelID int64) (bool, error) {
			return false, nil
		},
	}
	svc := NewMessageService(&fakeMessageStore{}, memberServerStore(1, 1), channelStore, &fakeUserStore{}, testNode(t))

	_, err := svc.WriteToChannel(context.Background(), 1, 100, 200, &WriteMessageRequest{Content: "hello"})
	assert.ErrorIs(t, err, apperrors.ErrChannelNotInServer)
}

func TestMessageService_WriteToUser(t *testing.T) {
	var linkedReceiver int64
	messageStore := &fakeMessageStore{
		CreateUserMessageFunc: func(ctx context.Context, message *model.Message, receiverID int64) error {
			linkedReceiver = receiverID
			return nil
		},
	}
	svc := NewMessageService(messageStore, &fakeServerStore{}, &fakeChannelStore{}, &fakeUserStore{}, testNode(t))

	msg, err := svc.WriteToUser(context.Background(), 1, 2, &WriteMessageRequest{Content: "hi"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), msg.AuthorID)
	assert.Equal(t, int64(2), linkedReceiver)
}

func TestMessageService_WriteToUser_ReceiverMissing(t *testing.T) {
	userStore := &fakeUserStore{
		GetByIDFunc: func(ctx context.Context, id int64) (*model.User, error) {
			return nil, apperrors.ErrUserNotFound
		},
	}
	svc := NewMessageService(&fakeMessageStore{}, &fakeServerStore{}, &fakeChannelStore{}, userStore, testNode(t))

	_, err := svc.WriteToUser(context.Background(), 1, 2, &WriteMessageRequest{Content: "hi"})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestMessageService_UpdateChannelMessage(t *testing.T) {
	var updatedContent string
	messageStore := &fakeMessageStore{
		UpdateContentFunc: func(ctx context.Context, id int64, content string) error {
			updatedContent = content
			return nil
		},
		GetByIDFunc: func(ctx context.Context, id int64) (*model.Message, error) {
			return &model.Message{ID: id, Content: updatedContent}, nil
		},
	}
	svc := NewMessageService(messageStore, &fakeServerStore{}, &fakeChannelStore{}, &fakeUserStore{}, testNode(t))

	msg, err := svc.UpdateChannelMessage(context.Background(), 100, 200, 300, &UpdateMessageRequest{Content: "edited"})
	require.NoError(t, err)
	assert.Equal(t, "edited", msg.Content)
}

func TestMessageService_UpdateChannelMessage_ChannelGone(t *testing.T) {
	// 目标频道不存在时不触达消息
	channelStore := &fakeChannelStore{
		GetByIDFunc: func(ctx context.Context, id int64) (*model.Channel, error) {
			return nil, apperrors.ErrChannelNotFound
		},
	}
	messageStore := &fakeMessageStore{
		UpdateContentFunc: func(ctx context.Context, id int64, content string) error {
			t.Fatal("message must not be touched when the channel is missing")
			return nil
		},
	}
	svc := NewMessageService(messageStore, &fakeServerStore{}, channelStore, &fakeUserStore{}, testNode(t))

	_, err := svc.UpdateChannelMessage(context.Background(), 100, 200, 300, &UpdateMessageRequest{Content: "edited"})
	assert.ErrorIs(t, err, apperrors.ErrChannelNotFound)
}

func TestMessageService_UpdateChannelMessage_Deleted(t *testing.T) {
	// 已删除的消息不可编辑
	messageStore := &fakeMessageStore{
		UpdateContentFunc: func(ctx context.Context, id int64, content string) error {
			return apperrors.ErrMessageNotFound
		},
	}
	svc := NewMessageService(messageStore, &fakeServerStore{}, &fakeChannelStore{}, &fakeUserStore{}, testNode(t))

	_, err := svc.UpdateChannelMessage(context.Background(), 100, 200, 300, &UpdateMessageRequest{Content: "edited"})
	assert.ErrorIs(t, err, apperrors.ErrMessageNotFound)
}

func TestMessageService_DeleteUserMessage(t *testing.T) {
	var deletedID int64
	messageStore := &fakeMessageStore{
		SoftDeleteFunc: func(ctx context.Context, id int64) error {
			deletedID = id
			return nil
		},
	}
	svc := NewMessageService(messageStore, &fakeServerStore{}, &fakeChannelStore{}, &fakeUserStore{}, testNode(t))

	err := svc.DeleteUserMessage(context.Background(), 2, 300)
	require.NoError(t, err)
	assert.Equal(t, int64(300), deletedID)
}

func TestMessageService_GetChannelMessages_NotMember(t *testing.T) {
	svc := NewMessageService(&fakeMessageStore{}, memberServerStore(1, 1), &fakeChannelStore{}, &fakeUserStore{}, testNode(t))

	_, err := svc.GetChannelMessages(context.Background(), 9, 100, 200)
	assert.ErrorIs(t, err, apperrors.ErrNotMember)
}

func TestMessageService_GetUserMessages(t *testing.T) {
	messageStore := &fakeMessageStore{
		GetUserMessagesFunc: func(ctx context.Context, receiverID int64) ([]*model.MessageWithAuthor, error) {
			assert.Equal(t, int64(7), receiverID)
			return []*model.MessageWithAuthor{
				{Message: model.Message{ID: 1, Content: "hey"}, AuthorUsername: "bob"},
			}, nil
		},
	}
	svc := NewMessageService(messageStore, &fakeServerStore{}, &fakeChannelStore{}, &fakeUserStore{}, testNode(t))

	msgs, err := svc.GetUserMessages(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "bob", msgs[0].AuthorUsername)
}
