package errors

import (
	"errors"
	"fmt"
)

// Kind 错误类别
// 用于将业务错误映射到传输层语义（HTTP 状态码等）
type Kind int

const (
	KindInternal        Kind = iota // 服务器内部错误
	KindNotFound                    // 实体不存在或已被删除
	KindForbidden                   // 已认证但无权操作目标资源
	KindConflict                    // 唯一性冲突
	KindInvalid                     // 请求数据不合法
	KindUnauthenticated             // 未认证
)

// AppError 应用错误类型
// 用于统一管理业务错误，包含错误码、错误类别和错误消息
type AppError struct {
	Code    int    // 错误码
	Kind    Kind   // 错误类别
	Message string // 用户可见的错误消息
	Err     error  // 原始错误（可选，用于调试）
}

// Error 实现 error 接口
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持 errors.Unwrap
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewError 创建新错误
func NewError(code int, kind Kind, message string) *AppError {
	return &AppError{
		Code:    code,
		Kind:    kind,
		Message: message,
	}
}

// Wrap 包装原始错误
func (e *AppError) Wrap(err error) *AppError {
	return &AppError{
		Code:    e.Code,
		Kind:    e.Kind,
		Message: e.Message,
		Err:     err,
	}
}

// Is 判断是否为指定错误
func Is(err error, target *AppError) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == target.Code
	}
	return false
}

// GetCode 获取错误码，如果不是 AppError 返回默认错误码
func GetCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeServerError // 默认返回服务器错误
}

// GetKind 获取错误类别，如果不是 AppError 返回 KindInternal
func GetKind(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// GetMessage 获取错误消息
func GetMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "internal server error"
}

// ============== 错误码定义 ==============

const (
	CodeSuccess = 0

	// 认证相关 10000-10999
	CodeUnauthenticated    = 10001
	CodeInvalidCredentials = 10002
	CodeTokenInvalid       = 10003
	CodeTokenExpired       = 10004

	// 用户相关 11000-11999
	CodeUserNotFound     = 11001
	CodeInvalidParams    = 11002
	CodeUserExists       = 11003
	CodePasswordTooShort = 11004
	CodeEmailInvalid     = 11005
	CodeNotSelf          = 11006

	// 好友相关 12000-12999
	CodeAlreadyRelated = 12001
	CodeNotRelated     = 12002
	CodeCannotAddSelf  = 12003
	CodeNotReceiver    = 12004

	// 服务器相关 13000-13999
	CodeServerNotFound = 13001
	CodeNotMember      = 13002
	CodeNotOwner       = 13003

	// 频道/消息相关 14000-14999
	CodeChannelNotFound    = 14001
	CodeChannelNotInServer = 14002
	CodeMessageNotFound    = 14003

	// 系统错误 50000-50999
	CodeServerError = 50001
	CodeDBError     = 50002
)

// ============== 预定义错误 ==============

// 认证相关
var (
	ErrUnauthenticated    = NewError(CodeUnauthenticated, KindUnauthenticated, "authentication required")
	ErrInvalidCredentials = NewError(CodeInvalidCredentials, KindUnauthenticated, "invalid email, username or password")
	ErrTokenInvalid       = NewError(CodeTokenInvalid, KindUnauthenticated, "token is invalid")
	ErrTokenExpired       = NewError(CodeTokenExpired, KindUnauthenticated, "token has expired")
)

// 用户相关
var (
	ErrUserNotFound     = NewError(CodeUserNotFound, KindNotFound, "user does not exist")
	ErrInvalidParams    = NewError(CodeInvalidParams, KindInvalid, "invalid request parameters")
	ErrUserExists       = NewError(CodeUserExists, KindConflict, "user already exists")
	ErrPasswordTooShort = NewError(CodePasswordTooShort, KindInvalid, "password is too short")
	ErrEmailInvalid     = NewError(CodeEmailInvalid, KindInvalid, "email is not valid")
	ErrNotSelf          = NewError(CodeNotSelf, KindForbidden, "not permitted to act for another user")
)

// 好友相关
var (
	ErrAlreadyRelated = NewError(CodeAlreadyRelated, KindForbidden, "friend relationship already exists")
	ErrNotRelated     = NewError(CodeNotRelated, KindForbidden, "no friend relationship with this user")
	ErrCannotAddSelf  = NewError(CodeCannotAddSelf, KindInvalid, "cannot add yourself as friend")
	ErrNotReceiver    = NewError(CodeNotReceiver, KindForbidden, "only the receiver may accept a friend request")
)

// 服务器相关
var (
	ErrServerNotFound = NewError(CodeServerNotFound, KindNotFound, "server does not exist")
	ErrNotMember      = NewError(CodeNotMember, KindForbidden, "not a member of this server")
	ErrNotOwner       = NewError(CodeNotOwner, KindForbidden, "not the owner of this server")
)

// 频道/消息相关
var (
	ErrChannelNotFound    = NewError(CodeChannelNotFound, KindNotFound, "channel does not exist")
	ErrChannelNotInServer = NewError(CodeChannelNotInServer, KindInvalid, "channel is not part of this server")
	ErrMessageNotFound    = NewError(CodeMessageNotFound, KindNotFound, "message does not exist")
)

// 系统相关
var (
	ErrServerError = NewError(CodeServerError, KindInternal, "internal server error")
	ErrDBError     = NewError(CodeDBError, KindInternal, "database error")
)
