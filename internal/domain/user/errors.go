package user

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrAdminAccessRequired = errors.New("administrator access required")
	ErrStaffAccessRequired = errors.New("administrator or supervisor access required")
)
