//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"petspace/domain"
)

// Participant is the callback side of a user.
// It is invoked while the room is serialized and must not call back
// into the mediator for the same room synchronously.
type Participant interface {
	OnReceive(delivery domain.Delivery)
	OnNotify(notification domain.Notification)
}

// AuditSink consumes the records produced by log commands.
type AuditSink interface {
	Consume(ctx context.Context, record domain.AuditRecord) error
}

// HistoryIndex makes delivered history searchable per room.
type HistoryIndex interface {
	Index(ctx context.Context, room domain.RoomID, content, entry string) error
	Search(ctx context.Context, room domain.RoomID, terms string, limit int) ([]string, error)
	Clear(room domain.RoomID) error
}
