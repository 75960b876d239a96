// Package errs 定义处理器与服务层之间传递的结构化错误。
//
// 每个错误带有一个 Kind 和一条面向调用方的消息，处理器据此统一
// 生成 code=1 的响应，而不依赖异常或 HTTP 状态码。
package errs

import (
	"errors"
	"fmt"
)

// Kind 错误类别
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindUnauthorized
	KindStorage
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindUnauthorized:
		return "unauthorized"
	case KindStorage:
		return "storage"
	default:
		return "unknown"
	}
}

// Error 带类别的应用错误
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Missing 请求体缺少必填字段
func Missing(field string) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf("错误,缺少字段: %s", field)}
}

// Empty 必填字段为空或为 null
func Empty(field string) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf("错误,字段不能为空: %s", field)}
}

// TooLong 字段超过允许的字节数
func TooLong(field string, max int) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf("错误,字段长度不能超过%d字节: %s", max, field)}
}

// BadRequest 请求体或查询参数无法解析
func BadRequest(err error) *Error {
	return &Error{Kind: KindValidation, Message: "请求参数错误: " + err.Error(), Err: err}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

// Storage 包装数据库错误，消息保留原始错误文本
func Storage(err error) *Error {
	return &Error{Kind: KindStorage, Message: err.Error(), Err: err}
}

// KindOf 返回错误的类别，非 *Error 视为 KindUnknown
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
