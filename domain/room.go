package domain

import (
	"petspace/domain/event"

	"github.com/samber/lo"
)

type RoomID int

// Room is the mediator state of a single chat room.
// Members and observers are sets over identity kept in insertion order.
// Room does no locking: the runtime serializes every mutation per room.
type Room struct {
	ID        RoomID
	Profile   Profile
	members   []UserID
	history   []string
	observers []UserID
	outbox    []Notification
	Commands  CommandQueue
}

func NewRoom(id RoomID, profile Profile) *Room {
	return &Room{
		ID:      id,
		Profile: profile,
	}
}

func (r *Room) Name() string {
	return r.Profile.Name
}

// Register adds a member and records USER_JOINED.
// Registering a present member is a no-op and records nothing.
func (r *Room) Register(id UserID, name string) bool {
	if lo.Contains(r.members, id) {
		return false
	}
	r.members = append(r.members, id)
	r.Emit(event.UserJoined, name, id)
	return true
}

// Remove drops a member and records USER_LEFT.
// Removing an absent member is a no-op and records nothing.
func (r *Room) Remove(id UserID, name string) bool {
	if !lo.Contains(r.members, id) {
		return false
	}
	r.members = lo.Without(r.members, id)
	r.Emit(event.UserLeft, name, id)
	return true
}

func (r *Room) HasMember(id UserID) bool {
	return lo.Contains(r.members, id)
}

func (r *Room) MemberCount() int {
	return len(r.members)
}

func (r *Room) Members() []UserID {
	return lo.Map(r.members, func(id UserID, _ int) UserID { return id })
}

// FindMember returns the first member whose display name matches.
// Names are not unique, so the earliest registered member wins.
func (r *Room) FindMember(name string, nameOf func(UserID) string) (UserID, bool) {
	return lo.Find(r.members, func(id UserID) bool {
		return nameOf(id) == name
	})
}

// Recipients lists every member except the sender, in membership order.
func (r *Room) Recipients(sender UserID) []UserID {
	return lo.Without(r.members, sender)
}

func (r *Room) Subscribe(id UserID) bool {
	if lo.Contains(r.observers, id) {
		return false
	}
	r.observers = append(r.observers, id)
	return true
}

func (r *Room) Unsubscribe(id UserID) bool {
	if !lo.Contains(r.observers, id) {
		return false
	}
	r.observers = lo.Without(r.observers, id)
	return true
}

func (r *Room) IsObserver(id UserID) bool {
	return lo.Contains(r.observers, id)
}

func (r *Room) Observers() []UserID {
	return lo.Map(r.observers, func(id UserID, _ int) UserID { return id })
}

// PostMessage appends the formatted history entry and records MESSAGE_SENT.
func (r *Room) PostMessage(sender UserID, senderName, content string) string {
	entry := FormatEntry(senderName, content)
	r.history = append(r.history, entry)
	r.Emit(event.MessageSent, content, sender)
	return entry
}

func (r *Room) History() []string {
	return lo.Map(r.history, func(entry string, _ int) string { return entry })
}

func (r *Room) HistoryLen() int {
	return len(r.history)
}

// ClearHistory replaces the log with an empty one.
func (r *Room) ClearHistory() {
	r.history = []string{}
}

// Emit records a notification in the outbox until the next FlushEvents.
func (r *Room) Emit(kind event.Kind, payload string, actor UserID) {
	r.outbox = append(r.outbox, Notification{
		Kind:     kind,
		Payload:  payload,
		Room:     r.ID,
		RoomName: r.Name(),
		Actor:    actor,
	})
}

// FlushEvents returns the pending notifications in emission order and empties the outbox.
func (r *Room) FlushEvents() []Notification {
	events := r.outbox
	r.outbox = nil
	return events
}

func (r *Room) MemberIterator() *Iterator[UserID] {
	return NewIterator(r.members)
}

func (r *Room) HistoryIterator() *Iterator[string] {
	return NewIterator(r.history)
}
