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

// UserService 用户资料的增删改查
type UserService struct {
	users           repository.UserRepository
	hasher          *auth.PasswordHasher
	defaultPassword string
}

func NewUserService(users repository.UserRepository, hasher *auth.PasswordHasher, defaultPassword string) *UserService {
	return &UserService{users: users, hasher: hasher, defaultPassword: defaultPassword}
}

// List 按用户名模糊查询未删除的用户
func (s *UserService) List(ctx context.Context, q schema.UserQuery) ([]model.User, int64, error) {
	users, total, err := s.users.Search(ctx, schema.Normalize(q.Username), q.Offset(), q.Limit)
	if err != nil {
		return nil, 0, errs.Storage(err)
	}
	return users, total, nil
}

// Get 不过滤已删除用户，用户不存在时返回 nil 而不是错误
func (s *UserService) Get(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.Storage(err)
	}
	return user, nil
}

// Create 后台新增用户，密码统一设为默认密码
func (s *UserService) Create(ctx context.Context, c *schema.UserCreate) error {
	if err := c.Validate(); err != nil {
		return err
	}

	hash, err := s.hasher.Hash(s.defaultPassword)
	if err != nil {
		return &errs.Error{Kind: errs.KindUnknown, Message: MsgPasswordHashFail, Err: err}
	}

	if err := s.users.Create(ctx, c.NewUser(hash)); err != nil {
		return errs.Storage(err)
	}
	return nil
}

// Update 只修改资料字段
func (s *UserService) Update(ctx context.Context, id uint, p *schema.UserPatch) error {
	user, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	p.Apply(user)
	if err := s.users.Save(ctx, user); err != nil {
		return errs.Storage(err)
	}
	return nil
}

// Delete 逻辑删除，记录保留
func (s *UserService) Delete(ctx context.Context, id uint) error {
	user, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	deleted := model.UserDeleted
	user.Deleted = &deleted
	if err := s.users.Save(ctx, user); err != nil {
		return errs.Storage(err)
	}
	return nil
}

func (s *UserService) find(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, errs.NotFound(MsgUserNotFound)
	}
	if err != nil {
		return nil, errs.Storage(err)
	}
	return user, nil
}
