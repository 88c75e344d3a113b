package event

import "fmt"

// Kind is the closed set of room notifications.
type Kind int

const (
	UserJoined Kind = iota + 1
	UserLeft
	MessageSent
	UserOnline
	UserOffline
)

// Kinds lists every notification kind in declaration order.
var Kinds = []Kind{UserJoined, UserLeft, MessageSent, UserOnline, UserOffline}

func (k Kind) String() string {
	switch k {
	case UserJoined:
		return "USER_JOINED"
	case UserLeft:
		return "USER_LEFT"
	case MessageSent:
		return "MESSAGE_SENT"
	case UserOnline:
		return "USER_ONLINE"
	case UserOffline:
		return "USER_OFFLINE"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k Kind) Valid() bool {
	return k >= UserJoined && k <= UserOffline
}

// Presence returns USER_ONLINE or USER_OFFLINE for the given status.
func Presence(online bool) Kind {
	if online {
		return UserOnline
	}
	return UserOffline
}
