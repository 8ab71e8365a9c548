package session

import "errors"

var (
	ErrStaleSequence = errors.New("stale sequence number")
	ErrRoomNotFound  = errors.New("room not found")
	ErrRoomClosed    = errors.New("room closed")
	ErrUnknownPlayer = errors.New("unknown player")
)
