package model

import "time"

// User 用户模型
type User struct {
	ID           int64      `json:"id,string" db:"id"`
	Email        string     `json:"email" db:"email"`
	Username     string     `json:"username" db:"username"`
	PasswordHash string     `json:"-" db:"password_hash"`
	Avatar       string     `json:"avatar" db:"avatar"`
	CreateAt     time.Time  `json:"createAt" db:"create_at"`
	UpdateAt     time.Time  `json:"updateAt" db:"update_at"`
	DeletedAt    *time.Time `json:"-" db:"deleted_at"`
}
