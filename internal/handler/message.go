package handler

import (
	"github.com/gin-gonic/gin"

	"sudooom.chat.web/internal/middleware"
	"sudooom.chat.web/internal/service"
	apperrors "sudooom.chat.web/pkg/errors"
	"sudooom.chat.web/pkg/response"
)

// MessageHandler 消息处理器
type MessageHandler struct {
	messageService *service.MessageService
}

// NewMessageHandler 创建消息处理器
func NewMessageHandler(messageService *service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// WriteToChannel 向频道发送消息
func (h *MessageHandler) WriteToChannel(c *gin.Context) {
	serverID, channelID, err := channelPath(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req service.WriteMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithMsg(c, apperrors.ErrInvalidParams, err.Error())
		return
	}

	msg, err := h.messageService.WriteToChannel(c.Request.Context(), middleware.GetUserID(c), serverID, channelID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, msg)
}

// ChannelMessages 查询频道消息
func (h *MessageHandler) ChannelMessages(c *gin.Context) {
	serverID, channelID, err := channelPath(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	msgs, err := h.messageService.GetChannelMessages(c.Request.Context(), middleware.GetUserID(c), serverID, channelID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, msgs)
}

// WriteToUser 发送私信
func (h *MessageHandler) WriteToUser(c *gin.Context) {
	receiverID, err := parseIDParam(c, "userId")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req service.WriteMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithMsg(c, apperrors.ErrInvalidParams, err.Error())
		return
	}

	msg, err := h.messageService.WriteToUser(c.Request.Context(), middleware.GetUserID(c), receiverID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, msg)
}

// Inbox 查询自己收到的私信
func (h *MessageHandler) Inbox(c *gin.Context) {
	msgs, err := h.messageService.GetUserMessages(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, msgs)
}

// UpdateChannelMessage 编辑频道消息
func (h *MessageHandler) UpdateChannelMessage(c *gin.Context) {
	serverID, channelID, err := channelPath(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	messageID, err := parseIDParam(c, "messageId")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req service.UpdateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithMsg(c, apperrors.ErrInvalidParams, err.Error())
		return
	}

	msg, err := h.messageService.UpdateChannelMessage(c.Request.Context(), serverID, channelID, messageID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, msg)
}

// DeleteChannelMessage 删除频道消息
func (h *MessageHandler) DeleteChannelMessage(c *gin.Context) {
	serverID, channelID, err := channelPath(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	messageID, err := parseIDParam(c, "messageId")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.messageService.DeleteChannelMessage(c.Request.Context(), serverID, channelID, messageID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

// UpdateUserMessage 编辑私信
func (h *MessageHandler) UpdateUserMessage(c *gin.Context) {
	receiverID, err := parseIDParam(c, "userId")
	if err != nil {
		response.Error(c, err)
		return
	}
	messageID, err := parseIDParam(c, "messageId")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req service.UpdateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithMsg(c, apperrors.ErrInvalidParams, err.Error())
		return
	}

	msg, err := h.messageService.UpdateUserMessage(c.Request.Context(), receiverID, messageID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, msg)
}

// DeleteUserMessage 删除私信
func (h *MessageHandler) DeleteUserMessage(c *gin.Context) {
	receiverID, err := parseIDParam(c, "userId")
	if err != nil {
		response.Error(c, err)
		return
	}
	messageID, err := parseIDParam(c, "messageId")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.messageService.DeleteUserMessage(c.Request.Context(), receiverID, messageID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}
