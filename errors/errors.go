package errors

import "fmt"

// Rejections of room operations. A rejected operation leaves every room
// and user untouched.
var (
	ErrNullTarget            = fmt.Errorf("room or user not found")
	ErrEmptyMessage          = fmt.Errorf("message is empty")
	ErrNotAMember            = fmt.Errorf("sender is not a member of the room")
	ErrSenderOffline         = fmt.Errorf("sender is offline")
	ErrDuplicateRegistration = fmt.Errorf("already registered")
	ErrAbsentOnRemoval       = fmt.Errorf("not registered")
)

var (
	ErrRoomMismatch   = fmt.Errorf("command targets another room")
	ErrSearchDisabled = fmt.Errorf("history search is disabled")
	ErrEmptyWords     = fmt.Errorf("no words have been found")
	ErrUnknownKind    = fmt.Errorf("unknown notification kind")
)
