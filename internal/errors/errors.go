package errors

import "errors"

var ErrNotFound = errors.New("record not found")
var ErrConflict = errors.New("operation conflicts with current state")
var ErrUnauthorized = errors.New("user is not authorized")
var ErrRoomUnavailable = errors.New("room is not available")
