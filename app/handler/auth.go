package handler

import (
	"tour-insight/app/logger"
	"tour-insight/app/schema"
	"tour-insight/app/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler 认证处理器
type AuthHandler struct {
	base
	auth *service.AuthService
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(auth *service.AuthService, log *logger.Logger) *AuthHandler {
	return &AuthHandler{base: base{logger: log}, auth: auth}
}

// Register 用户注册
func (h *AuthHandler) Register(c *gin.Context) {
	var req schema.Credentials
	if !h.bindJSON(c, &req) {
		return
	}

	user, err := h.auth.Register(c.Request.Context(), &req)
	if err != nil {
		h.error(c, err)
		return
	}
	h.success(c, schema.DumpUser(user), "注册成功")
}

// Login 用户登录，只校验用户名和密码
func (h *AuthHandler) Login(c *gin.Context) {
	var req schema.Credentials
	if !h.bindJSON(c, &req) {
		return
	}

	user, err := h.auth.Login(c.Request.Context(), &req)
	if err != nil {
		h.error(c, err)
		return
	}
	h.success(c, schema.DumpUser(user), "登录成功")
}
