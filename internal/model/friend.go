package model

import "time"

// Friend 好友关系
// 一对用户之间最多存在一条记录（不区分方向），Accepted 默认 false，
// 仅接收方可将其置为 true
type Friend struct {
	ID         int64     `json:"id,string" db:"id"`
	SenderID   int64     `json:"senderId,string" db:"sender_id"`
	ReceiverID int64     `json:"receiverId,string" db:"receiver_id"`
	Accepted   bool      `json:"accepted" db:"accepted"`
	CreateAt   time.Time `json:"createAt" db:"create_at"`
	UpdateAt   time.Time `json:"updateAt" db:"update_at"`
}

// OtherParty 返回关系中 userID 的对端用户ID
func (f *Friend) OtherParty(userID int64) int64 {
	if f.SenderID == userID {
		return f.ReceiverID
	}
	return f.SenderID
}

// IsParty 判断 userID 是否为关系双方之一
func (f *Friend) IsParty(userID int64) bool {
	return f.SenderID == userID || f.ReceiverID == userID
}
