package service

// 面向调用方的业务消息
const (
	MsgTourNotFound     = "景点不存在"
	MsgUserNotFound     = "用户不存在"
	MsgUsernameExists   = "用户名已存在"
	MsgLoginFailed      = "用户名或者密码错误"
	MsgPasswordHashFail = "密码哈希失败"
)
