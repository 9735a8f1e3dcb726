package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"sudooom.chat.web/internal/middleware"
	"sudooom.chat.web/internal/service"
	apperrors "sudooom.chat.web/pkg/errors"
	"sudooom.chat.web/pkg/response"
)

// UserHandler 用户处理器
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler 创建用户处理器
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Profile 查询自己的资料
func (h *UserHandler) Profile(c *gin.Context) {
	user, err := h.userService.GetByID(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, user)
}

// Get 查询用户资料
func (h *UserHandler) Get(c *gin.Context) {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, user)
}

// Update 更新个人资料
func (h *UserHandler) Update(c *gin.Context) {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req service.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithMsg(c, apperrors.ErrInvalidParams, err.Error())
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), middleware.GetUserID(c), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, user)
}

// Delete 注销账号
func (h *UserHandler) Delete(c *gin.Context) {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.userService.Delete(c.Request.Context(), middleware.GetUserID(c), userID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

// Search 按用户名搜索用户
func (h *UserHandler) Search(c *gin.Context) {
	keyword := c.Query("keyword")
	if keyword == "" {
		response.Error(c, apperrors.ErrInvalidParams)
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	users, err := h.userService.Search(c.Request.Context(), keyword, limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, users)
}
