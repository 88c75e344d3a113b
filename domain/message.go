// Package domain contains core concepts of the chat system.
// This file defines history entries and the values handed to participants.
// History entries are immutable once appended.
package domain

import (
	"petspace/domain/event"
	"time"

	"github.com/google/uuid"
)

// FormatEntry renders a history entry as "[sender]: text\n".
func FormatEntry(senderName, content string) string {
	return "[" + senderName + "]: " + content + "\n"
}

// Delivery is what a recipient receives when a message is broadcast.
type Delivery struct {
	Room     RoomID
	RoomName string
	From     UserID
	FromName string
	Content  string
}

// Notification is a room event handed to observers.
// Payload is the acting user's display name, or the message text for MESSAGE_SENT.
// Actor is zero when the event was published from outside a user action.
type Notification struct {
	Kind     event.Kind
	Payload  string
	Room     RoomID
	RoomName string
	Actor    UserID
}

// AuditRecord is produced by the log command of every accepted send.
type AuditRecord struct {
	ID         uuid.UUID
	Room       RoomID
	RoomName   string
	Sender     UserID
	SenderName string
	Content    string
	Language   string
	At         time.Time
}
