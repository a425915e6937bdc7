package models

import "errors"

var (
	// credential store errors
	ErrDuplicateUsername  = errors.New("username is already taken")
	ErrMissingField       = errors.New("all fields are required")
	ErrInvalidCredentials = errors.New("incorrect username or password")

	// saved-idea store errors
	ErrAlreadySaved    = errors.New("idea is already saved")
	ErrIndexOutOfRange = errors.New("no saved idea at that position")
)
