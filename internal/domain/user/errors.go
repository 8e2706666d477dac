package user

import "errors"

// User domain errors
var (
	ErrUserNotFound           = errors.New("user not found")
	ErrNameTaken              = errors.New("a user with this name already exists")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
)
