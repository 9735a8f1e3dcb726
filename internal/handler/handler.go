package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "sudooom.chat.web/pkg/errors"
)

// parseIDParam 解析路径中的数字 ID 参数
func parseIDParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.ErrInvalidParams
	}
	return id, nil
}
