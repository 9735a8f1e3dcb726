package model

import "time"

// DefaultChannelName 创建服务器时自动附带的默认频道名
const DefaultChannelName = "chat"

// Server 服务器
// GetByID 加载时会一并填充成员集合和未删除的频道
type Server struct {
	ID        int64      `json:"id,string" db:"id"`
	Name      string     `json:"name" db:"name"`
	OwnerID   int64      `json:"ownerId,string" db:"owner_id"`
	Avatar    string     `json:"avatar" db:"avatar"`
	CreateAt  time.Time  `json:"createAt" db:"create_at"`
	UpdateAt  time.Time  `json:"updateAt" db:"update_at"`
	DeletedAt *time.Time `json:"-" db:"deleted_at"`

	Members  []*ServerMember `json:"members,omitempty"`
	Channels []*Channel      `json:"channels,omitempty"`
}

// HasMember 判断用户是否在成员集合中
func (s *Server) HasMember(userID int64) bool {
	for _, m := range s.Members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}

// ServerMember 服务器成员
type ServerMember struct {
	ID       int64     `json:"id,string" db:"id"`
	ServerID int64     `json:"serverId,string" db:"server_id"`
	UserID   int64     `json:"userId,string" db:"user_id"`
	CreateAt time.Time `json:"createAt" db:"create_at"`
	UpdateAt time.Time `json:"updateAt" db:"update_at"`
}

// Channel 频道，属于唯一一个服务器
type Channel struct {
	ID        int64      `json:"id,string" db:"id"`
	ServerID  int64      `json:"serverId,string" db:"server_id"`
	Name      string     `json:"name" db:"name"`
	CreateAt  time.Time  `json:"createAt" db:"create_at"`
	UpdateAt  time.Time  `json:"updateAt" db:"update_at"`
	DeletedAt *time.Time `json:"-" db:"deleted_at"`
}
