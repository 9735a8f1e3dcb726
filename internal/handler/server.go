package handler

import (
	"github.com/gin-gonic/gin"

	"sudooom.chat.web/internal/middleware"
	"sudooom.chat.web/internal/service"
	apperrors "sudooom.chat.web/pkg/errors"
	"sudooom.chat.web/pkg/response"
)

// ServerHandler 服务器处理器
type ServerHandler struct {
	serverService *service.ServerService
}

// NewServerHandler 创建服务器处理器
func NewServerHandler(serverService *service.ServerService) *ServerHandler {
	return &ServerHandler{serverService: serverService}
}

// Create 创建服务器
func (h *ServerHandler) Create(c *gin.Context) {
	var req service.CreateServerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithMsg(c, apperrors.ErrInvalidParams, err.Error())
		return
	}

	server, err := h.serverService.Create(c.Request.Context(), middleware.GetUserID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, server)
}

// Get 查询服务器详情
func (h *ServerHandler) Get(c *gin.Context) {
	serverID, err := parseIDParam(c, "serverId")
	if err != nil {
		response.Error(c, err)
		return
	}

	server, err := h.serverService.GetByID(c.Request.Context(), middleware.GetUserID(c), serverID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, server)
}

// Update 更新服务器
func (h *ServerHandler) Update(c *gin.Context) {
	serverID, err := parseIDParam(c, "serverId")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req service.UpdateServerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithMsg(c, apperrors.ErrInvalidParams, err.Error())
		return
	}

	server, err := h.serverService.Update(c.Request.Context(), middleware.GetUserID(c), serverID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, server)
}

// Delete 删除服务器
func (h *ServerHandler) Delete(c *gin.Context) {
	serverID, err := parseIDParam(c, "serverId")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.serverService.Delete(c.Request.Context(), middleware.GetUserID(c), serverID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

// List 查询自己加入的服务器
func (h *ServerHandler) List(c *gin.Context) {
	servers, err := h.serverService.ListUserServers(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, servers)
}
