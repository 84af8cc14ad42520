package core

import "errors"

// Every registry operation fails with exactly one of these; nothing in this
// package panics or returns an unnamed error.
var (
	ErrInvalidName   = errors.New("room name is empty")
	ErrDuplicateRoom = errors.New("room already exists")
	ErrInvalidCode   = errors.New("join code is empty")
	ErrCodeNotFound  = errors.New("no room with that join code")
	ErrRoomNotFound  = errors.New("room does not exist")
	ErrNotAMember    = errors.New("not a member of that room")
)
