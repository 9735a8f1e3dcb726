package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "sudooom.chat.web/pkg/errors"
)

// Response 统一响应结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    apperrors.CodeSuccess,
		Message: "success",
		Data:    data,
	})
}

// Error 根据业务错误生成错误响应
// HTTP 状态码由错误类别决定，响应体携带业务错误码和消息
func Error(c *gin.Context, err error) {
	c.JSON(httpStatus(apperrors.GetKind(err)), Response{
		Code:    apperrors.GetCode(err),
		Message: apperrors.GetMessage(err),
		Data:    nil,
	})
}

// ErrorWithMsg 自定义错误消息
func ErrorWithMsg(c *gin.Context, appErr *apperrors.AppError, message string) {
	c.JSON(httpStatus(appErr.Kind), Response{
		Code:    appErr.Code,
		Message: message,
		Data:    nil,
	})
}

// Unauthorized 未认证
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Response{
		Code:    apperrors.CodeUnauthenticated,
		Message: apperrors.ErrUnauthenticated.Message,
		Data:    nil,
	})
}

// httpStatus 错误类别到 HTTP 状态码的映射
func httpStatus(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindForbidden:
		return http.StatusForbidden
	case apperrors.KindConflict:
		return http.StatusConflict
	case apperrors.KindInvalid:
		return http.StatusBadRequest
	case apperrors.KindUnauthenticated:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
