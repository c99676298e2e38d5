package util

import "errors"

var (
	ErrUserNotFound     = errors.New("用户不存在")
	ErrEmailRegistered  = errors.New("该邮箱已被注册")
	ErrCourseNotFound   = errors.New("course not found")
	ErrQuizNotFound     = errors.New("quiz not found")
	ErrAlreadyAttempted = errors.New("quiz already attempted")
	ErrUnknownQuestion  = errors.New("answer references unknown question")
	ErrInvalidOption    = errors.New("answer option must be one of A-D")
)
