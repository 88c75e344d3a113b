package domain

import (
	"petspace/domain/event"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoom_PostMessage_AddsEntryAndEvent(t *testing.T) {
	req := require.New(t)
	room := NewRoom(1, DefaultProfile)

	entry := room.PostMessage(7, "Alice", "Hello Bob")

	// Check that the entry is added to Room
	req.Equal("[Alice]: Hello Bob\n", entry)
	req.Equal([]string{"[Alice]: Hello Bob\n"}, room.History())

	// Check that the outbox contains a MESSAGE_SENT notification
	events := room.FlushEvents()
	req.Len(events, 1)
	req.Equal(Notification{
		Kind:     event.MessageSent,
		Payload:  "Hello Bob",
		Room:     1,
		RoomName: "DefaultRoom",
		Actor:    7,
	}, events[0])

	// The outbox should be empty after FlushEvents
	req.Empty(room.FlushEvents())
}

func TestRoom_Register_IsIdempotent(t *testing.T) {
	req := require.New(t)
	room := NewRoom(1, CtrlCat)

	// When the same user registers twice
	req.True(room.Register(1, "Alice"))
	req.False(room.Register(1, "Alice"))

	// Then only one member and one USER_JOINED exist
	req.Equal(1, room.MemberCount())
	events := room.FlushEvents()
	req.Len(events, 1)
	req.Equal(event.UserJoined, events[0].Kind)
	req.Equal("Alice", events[0].Payload)
}

func TestRoom_Register_SameNameDifferentIdentity(t *testing.T) {
	req := require.New(t)
	room := NewRoom(1, DefaultProfile)

	// Given two users sharing a display name
	req.True(room.Register(1, "Sam"))
	req.True(room.Register(2, "Sam"))

	// Then both are members
	req.Equal([]UserID{1, 2}, room.Members())

	// And lookup by name returns the first registered one
	names := map[UserID]string{1: "Sam", 2: "Sam"}
	id, ok := room.FindMember("Sam", func(id UserID) string { return names[id] })
	req.True(ok)
	req.Equal(UserID(1), id)

	_, ok = room.FindMember("Nobody", func(id UserID) string { return names[id] })
	req.False(ok)
}

func TestRoom_Remove(t *testing.T) {
	req := require.New(t)
	room := NewRoom(1, DefaultProfile)
	room.Register(1, "Alice")
	room.Register(2, "Bob")
	room.FlushEvents()

	// When an absent user is removed
	req.False(room.Remove(3, "Clara"))
	// Then nothing is recorded
	req.Empty(room.FlushEvents())

	// When a present user is removed
	req.True(room.Remove(1, "Alice"))
	req.Equal([]UserID{2}, room.Members())
	req.False(room.HasMember(1))
	events := room.FlushEvents()
	req.Len(events, 1)
	req.Equal(event.UserLeft, events[0].Kind)
}

func TestRoom_Observers_KeepSubscriptionOrder(t *testing.T) {
	req := require.New(t)
	room := NewRoom(1, DefaultProfile)

	req.True(room.Subscribe(2))
	req.True(room.Subscribe(1))
	req.False(room.Subscribe(2))
	req.Equal([]UserID{2, 1}, room.Observers())

	req.True(room.Unsubscribe(2))
	req.False(room.Unsubscribe(2))
	req.Equal([]UserID{1}, room.Observers())
	req.True(room.IsObserver(1))
}

func TestRoom_Recipients_ExcludeSender(t *testing.T) {
	req := require.New(t)
	room := NewRoom(1, DefaultProfile)
	room.Register(1, "A")
	room.Register(2, "B")
	room.Register(3, "C")

	req.Equal([]UserID{2, 3}, room.Recipients(1))
	req.Equal([]UserID{1, 3}, room.Recipients(2))
	// Members slice is untouched
	req.Equal([]UserID{1, 2, 3}, room.Members())
}

func TestRoom_ClearHistory_IsIdempotent(t *testing.T) {
	req := require.New(t)
	room := NewRoom(1, DefaultProfile)
	room.PostMessage(1, "A", "one")
	room.PostMessage(1, "A", "two")

	room.ClearHistory()
	req.Empty(room.History())
	room.ClearHistory()
	req.Equal(0, room.HistoryLen())
}

func TestRoom_Getters_ReturnCopies(t *testing.T) {
	req := require.New(t)
	room := NewRoom(1, DefaultProfile)
	room.Register(1, "A")
	room.PostMessage(1, "A", "hi")

	members := room.Members()
	members[0] = 99
	history := room.History()
	history[0] = "tampered"

	req.Equal([]UserID{1}, room.Members())
	req.Equal([]string{"[A]: hi\n"}, room.History())
}
