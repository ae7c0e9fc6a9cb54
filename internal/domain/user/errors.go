package user

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrMonitorNotFound         = errors.New("monitor not found or not of type MONITOR")
	ErrUsernameExists          = errors.New("username already in use")
	ErrDirectivoAccessRequired = errors.New("directivo access required")
)
