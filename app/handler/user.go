package handler

import (
	"tour-insight/app/logger"
	"tour-insight/app/schema"
	"tour-insight/app/service"

	"github.com/gin-gonic/gin"
)

// UserHandler 用户信息的增删改查
type UserHandler struct {
	base
	users *service.UserService
}

func NewUserHandler(users *service.UserService, log *logger.Logger) *UserHandler {
	return &UserHandler{base: base{logger: log}, users: users}
}

// GetUsers 用户列表，不包含已删除用户
func (h *UserHandler) GetUsers(c *gin.Context) {
	var q schema.UserQuery
	if !h.bindQuery(c, &q) {
		return
	}

	users, total, err := h.users.List(c.Request.Context(), q)
	if err != nil {
		h.error(c, err)
		return
	}

	h.success(c, schema.Page[schema.UserRecord]{
		Total:   total,
		Records: schema.DumpUsers(users),
	}, "")
}

// GetUser 按 id 获取用户，已删除用户同样返回
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := h.paramID(c)
	if !ok {
		return
	}

	user, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		h.error(c, err)
		return
	}
	h.success(c, schema.DumpUserOrEmpty(user), "")
}

// CreateUser 添加用户
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req schema.UserCreate
	if !h.bindJSON(c, &req) {
		return
	}

	if err := h.users.Create(c.Request.Context(), &req); err != nil {
		h.error(c, err)
		return
	}
	h.success(c, nil, "添加用户成功")
}

// UpdateUser 修改用户资料
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := h.paramID(c)
	if !ok {
		return
	}

	var req schema.UserPatch
	if !h.bindJSON(c, &req) {
		return
	}

	if err := h.users.Update(c.Request.Context(), id, &req); err != nil {
		h.error(c, err)
		return
	}
	h.success(c, nil, "修改用户成功")
}

// DeleteUser 删除用户（逻辑删除）
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := h.paramID(c)
	if !ok {
		return
	}

	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		h.error(c, err)
		return
	}
	h.success(c, nil, "删除用户成功")
}
