package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher 使用 bcrypt 生成带盐哈希
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher cost 为 0 时使用 bcrypt.DefaultCost
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash 哈希密码
func (h *PasswordHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Verify 验证密码是否匹配哈希值，哈希为空时一律不匹配
func (h *PasswordHasher) Verify(password string, hash *string) bool {
	if hash == nil || *hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(*hash), []byte(password)) == nil
}
