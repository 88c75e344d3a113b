package event

import (
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestCounter_Handle(t *testing.T) {
	req := require.New(t)
	counter := NewCounter(logs.GetLoggerFromLevel(slog.LevelDebug))

	// Given two joins and one message
	counter.Handle(UserJoined, "Alice")
	counter.Handle(UserJoined, "Bob")
	counter.Handle(MessageSent, "Hi")

	// And an unknown kind
	counter.Handle(Kind(42), "ignored")

	// Then only known kinds are counted
	snapshot := counter.Snapshot()
	req.Equal(uint64(2), snapshot[UserJoined])
	req.Equal(uint64(1), snapshot[MessageSent])
	req.Len(snapshot, 2)

	// And the snapshot is a copy
	snapshot[UserJoined] = 100
	req.Equal(uint64(2), counter.Snapshot()[UserJoined])
}

func TestKind_String(t *testing.T) {
	req := require.New(t)
	expected := []string{"USER_JOINED", "USER_LEFT", "MESSAGE_SENT", "USER_ONLINE", "USER_OFFLINE"}
	for i, kind := range Kinds {
		req.Equal(expected[i], kind.String())
		req.True(kind.Valid())
	}
	req.Equal("Kind(0)", Kind(0).String())
	req.False(Kind(0).Valid())
	req.Equal(UserOnline, Presence(true))
	req.Equal(UserOffline, Presence(false))
}
