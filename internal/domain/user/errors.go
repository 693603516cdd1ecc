package user

import "errors"

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrSuperAdminRequired    = errors.New("super admin access required")
	ErrInsufficientRole      = errors.New("insufficient role for this resource")
	ErrPasswordLoginDisabled = errors.New("password login is not enabled for this account")
)
