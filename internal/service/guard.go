package service

import (
	"sudooom.chat.web/internal/model"
	apperrors "sudooom.chat.web/pkg/errors"
)

// 访问控制断言，服务层在执行写操作前统一调用

// requireSelf 断言调用者只能操作自己的资源
func requireSelf(callerID, userID int64) error {
	if callerID != userID {
		return apperrors.ErrNotSelf
	}
	return nil
}

// requireOwner 断言调用者是服务器所有者
func requireOwner(server *model.Server, callerID int64) error {
	if server.OwnerID != callerID {
		return apperrors.ErrNotOwner
	}
	return nil
}

// requireMember 断言调用者是服务器成员，所有者视为成员
func requireMember(server *model.Server, callerID int64) error {
	if server.OwnerID == callerID {
		return nil
	}
	if !server.HasMember(callerID) {
		return apperrors.ErrNotMember
	}
	return nil
}
