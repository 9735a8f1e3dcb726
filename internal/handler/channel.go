package handler

import (
	"github.com/gin-gonic/gin"

	"sudooom.chat.web/internal/middleware"
	"sudooom.chat.web/internal/service"
	apperrors "sudooom.chat.web/pkg/errors"
	"sudooom.chat.web/pkg/response"
)

// ChannelHandler 频道处理器
type ChannelHandler struct {
	channelService *service.ChannelService
}

// NewChannelHandler 创建频道处理器
func NewChannelHandler(channelService *service.ChannelService) *ChannelHandler {
	return &ChannelHandler{channelService: channelService}
}

// Create 创建频道
func (h *ChannelHandler) Create(c *gin.Context) {
	serverID, err := parseIDParam(c, "serverId")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req service.CreateChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithMsg(c, apperrors.ErrInvalidParams, err.Error())
		return
	}

	channel, err := h.channelService.Create(c.Request.Context(), middleware.GetUserID(c), serverID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, channel)
}

// List 列出服务器的频道
func (h *ChannelHandler) List(c *gin.Context) {
	serverID, err := parseIDParam(c, "serverId")
	if err != nil {
		response.Error(c, err)
		return
	}

	channels, err := h.channelService.ListServerChannels(c.Request.Context(), middleware.GetUserID(c), serverID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, channels)
}

// Get 查询频道
func (h *ChannelHandler) Get(c *gin.Context) {
	serverID, channelID, err := channelPath(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	channel, err := h.channelService.GetByID(c.Request.Context(), middleware.GetUserID(c), serverID, channelID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, channel)
}

// Update 重命名频道
func (h *ChannelHandler) Update(c *gin.Context) {
	serverID, channelID, err := channelPath(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req service.UpdateChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithMsg(c, apperrors.ErrInvalidParams, err.Error())
		return
	}

	channel, err := h.channelService.Update(c.Request.Context(), middleware.GetUserID(c), serverID, channelID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, channel)
}

// Delete 删除频道
func (h *ChannelHandler) Delete(c *gin.Context) {
	serverID, channelID, err := channelPath(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.channelService.Delete(c.Request.Context(), middleware.GetUserID(c), serverID, channelID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

// channelPath 解析服务器与频道路径参数
func channelPath(c *gin.Context) (serverID, channelID int64, err error) {
	serverID, err = parseIDParam(c, "serverId")
	if err != nil {
		return 0, 0, err
	}
	channelID, err = parseIDParam(c, "channelId")
	if err != nil {
		return 0, 0, err
	}
	return serverID, channelID, nil
}
