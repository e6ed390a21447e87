package settings

import "errors"

var (
	ErrInvalidWindow   = errors.New("window start must not be after window end")
	ErrWindowsNotFound = errors.New("time windows have not been configured")
)
