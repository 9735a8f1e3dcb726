package handler

import (
	"github.com/gin-gonic/gin"

	"sudooom.chat.web/internal/middleware"
	"sudooom.chat.web/internal/service"
	"sudooom.chat.web/pkg/response"
)

// FriendHandler 好友处理器
type FriendHandler struct {
	friendService *service.FriendService
}

// NewFriendHandler 创建好友处理器
func NewFriendHandler(friendService *service.FriendService) *FriendHandler {
	return &FriendHandler{friendService: friendService}
}

// Add 发起好友请求
func (h *FriendHandler) Add(c *gin.Context) {
	friendID, err := parseIDParam(c, "friendId")
	if err != nil {
		response.Error(c, err)
		return
	}

	callerID := middleware.GetUserID(c)
	receiver, err := h.friendService.AddFriend(c.Request.Context(), callerID, callerID, friendID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, receiver)
}

// Accept 接受好友请求
func (h *FriendHandler) Accept(c *gin.Context) {
	friendID, err := parseIDParam(c, "friendId")
	if err != nil {
		response.Error(c, err)
		return
	}

	callerID := middleware.GetUserID(c)
	if err := h.friendService.AcceptFriendRequest(c.Request.Context(), callerID, callerID, friendID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

// Remove 删除好友或撤回请求
func (h *FriendHandler) Remove(c *gin.Context) {
	friendID, err := parseIDParam(c, "friendId")
	if err != nil {
		response.Error(c, err)
		return
	}

	callerID := middleware.GetUserID(c)
	if err := h.friendService.RemoveFriend(c.Request.Context(), callerID, callerID, friendID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

// List 查询好友列表
func (h *FriendHandler) List(c *gin.Context) {
	callerID := middleware.GetUserID(c)
	users, err := h.friendService.GetFriendList(c.Request.Context(), callerID, callerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, users)
}

// ReceivedRequests 查询收到的好友请求
func (h *FriendHandler) ReceivedRequests(c *gin.Context) {
	callerID := middleware.GetUserID(c)
	users, err := h.friendService.GetReceivedFriendRequests(c.Request.Context(), callerID, callerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, users)
}

// SentRequests 查询发出的好友请求
func (h *FriendHandler) SentRequests(c *gin.Context) {
	callerID := middleware.GetUserID(c)
	users, err := h.friendService.GetSentFriendRequests(c.Request.Context(), callerID, callerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, users)
}
