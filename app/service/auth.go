package service

import (
	"context"
	"errors"

	"tour-insight/app/auth"
	"tour-insight/app/errs"
	"tour-insight/app/model"
	"tour-insight/app/repository"
	"tour-insight/app/schema"
)

// AuthService 注册与登录校验，不签发令牌
type AuthService struct {
	users  repository.UserRepository
	hasher *auth.PasswordHasher
}

func NewAuthService(users repository.UserRepository, hasher *auth.PasswordHasher) *AuthService {
	return &AuthService{users: users, hasher: hasher}
}

// Register 用户名在所有用户中唯一，包括已删除的用户
func (s *AuthService) Register(ctx context.Context, c *schema.Credentials) (*model.User, error) {
	if err := c.ValidateRegister(); err != nil {
		return nil, err
	}
	username := schema.Normalize(*c.Username)

	_, err := s.users.FindByUsername(ctx, username)
	if err == nil {
		return nil, errs.Conflict(MsgUsernameExists)
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, errs.Storage(err)
	}

	hash, err := s.hasher.Hash(*c.Password)
	if err != nil {
		return nil, &errs.Error{Kind: errs.KindUnknown, Message: MsgPasswordHashFail, Err: err}
	}

	// 注册路径只写入用户名和密码，deleted 保持为空
	user := &model.User{Username: &username, Password: &hash}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, errs.Storage(err)
	}
	return user, nil
}

// Login 用户不存在与密码错误返回同一条消息
func (s *AuthService) Login(ctx context.Context, c *schema.Credentials) (*model.User, error) {
	if c.Username == nil || c.Password == nil {
		return nil, errs.Unauthorized(MsgLoginFailed)
	}

	user, err := s.users.FindByUsername(ctx, schema.Normalize(*c.Username))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, errs.Unauthorized(MsgLoginFailed)
	}
	if err != nil {
		return nil, errs.Storage(err)
	}

	if !s.hasher.Verify(*c.Password, user.Password) {
		return nil, errs.Unauthorized(MsgLoginFailed)
	}
	return user, nil
}
