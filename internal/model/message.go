package model

import "time"

// Message 消息
// 创建时确定唯一投递目标：频道或单个用户，之后不可变更
type Message struct {
	ID        int64      `json:"id,string" db:"id"`
	AuthorID  int64      `json:"authorId,string" db:"author_id"`
	Content   string     `json:"content" db:"content"`
	CreateAt  time.Time  `json:"createAt" db:"create_at"`
	UpdateAt  time.Time  `json:"updateAt" db:"update_at"`
	DeletedAt *time.Time `json:"-" db:"deleted_at"`
}

// ChannelMessage 消息与频道的投递记录
type ChannelMessage struct {
	MessageID int64 `json:"messageId,string" db:"message_id"`
	ChannelID int64 `json:"channelId,string" db:"channel_id"`
}

// UserMessage 消息与接收用户的投递记录（私信）
type UserMessage struct {
	MessageID  int64 `json:"messageId,string" db:"message_id"`
	ReceiverID int64 `json:"receiverId,string" db:"receiver_id"`
}

// MessageWithAuthor 带作者信息的消息
type MessageWithAuthor struct {
	Message
	AuthorUsername string `json:"authorUsername"`
	AuthorAvatar   string `json:"authorAvatar"`
}
