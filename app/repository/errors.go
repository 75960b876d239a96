package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound 表示请求的记录未找到
var ErrNotFound = errors.New("repository: record not found")

// translate 将 gorm 的未找到错误映射为仓库层错误
func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
