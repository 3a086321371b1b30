package util

import "errors"

var (
	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountSuspended   = errors.New("account suspended")
	ErrUserNotFound       = errors.New("user not found")
	ErrCourseNotFound     = errors.New("course not found")
	ErrTestNotFound       = errors.New("test not found")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrTestHasNoQuestions = errors.New("test has no questions")
	ErrInvalidStatus      = errors.New("invalid progress status")
)
