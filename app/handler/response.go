package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"tour-insight/app/errs"
	"tour-insight/app/logger"
	"tour-insight/app/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// 业务状态码，与 HTTP 状态码无关
const (
	CodeSuccess = 0
	CodeFailure = 1
)

// MsgInvalidID 路径中的 id 不是合法的整数
const MsgInvalidID = "无效的ID"

// ApiResponse 统一响应结构
type ApiResponse struct {
	Code    int    `json:"code"`    // 0 表示成功，1 表示业务失败
	Message string `json:"message"` // 响应消息
	Data    any    `json:"data"`    // 响应数据
}

// MakeResponse 构造统一响应
func MakeResponse(code int, message string, data any) ApiResponse {
	return ApiResponse{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// base 各处理器共用的响应方法
type base struct {
	logger *logger.Logger
}

// 创建成功响应
func (h *base) success(c *gin.Context, data any, message string) {
	c.JSON(http.StatusOK, MakeResponse(CodeSuccess, message, data))
}

// 创建错误响应，业务失败也返回 HTTP 200
func (h *base) error(c *gin.Context, err error) {
	var appErr *errs.Error
	if !errors.As(err, &appErr) {
		appErr = &errs.Error{Kind: errs.KindUnknown, Message: err.Error(), Err: err}
	}

	switch appErr.Kind {
	case errs.KindStorage, errs.KindUnknown:
		h.logger.Error("请求处理失败",
			zap.String("path", c.FullPath()),
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.Error(err),
		)
	default:
		h.logger.Debug("请求被拒绝",
			zap.String("path", c.FullPath()),
			zap.String("kind", appErr.Kind.String()),
			zap.String("message", appErr.Message),
		)
	}

	c.JSON(http.StatusOK, MakeResponse(CodeFailure, appErr.Message, nil))
}

// bindJSON 解析请求体，失败时已写出响应
func (h *base) bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		h.error(c, errs.BadRequest(err))
		return false
	}
	return true
}

// pagingKeys 出现时必须带值，gin 会把空串绑定为 0
var pagingKeys = []string{"page", "limit"}

// bindQuery 解析查询参数，失败时已写出响应
func (h *base) bindQuery(c *gin.Context, dst any) bool {
	for _, key := range pagingKeys {
		if v, ok := c.GetQuery(key); ok && v == "" {
			h.error(c, errs.BadRequest(fmt.Errorf("%s 不能为空", key)))
			return false
		}
	}
	if err := c.ShouldBindQuery(dst); err != nil {
		h.error(c, errs.BadRequest(err))
		return false
	}
	return true
}

// paramID 解析路径中的 id，失败时已写出响应
func (h *base) paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusOK, MakeResponse(CodeFailure, MsgInvalidID, nil))
		return 0, false
	}
	return uint(id), true
}
