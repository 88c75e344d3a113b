package runtime

import (
	"context"
	"petspace/domain"
	"petspace/errors"
	"petspace/repositories"
)

// WithAuditTrail enables AuditTrail. The repository is usually the one
// behind the disk sink.
func (m *Mediator) WithAuditTrail(trail repositories.IAuditRepository) *Mediator {
	m.trail = trail
	return m
}

// History returns a copy of the room's formatted entries.
func (m *Mediator) History(roomID domain.RoomID) []string {
	var history []string
	_ = m.registry.View(func(tx Tx) error {
		if room, ok := tx.Room(roomID); ok {
			history = room.History()
		}
		return nil
	})
	return history
}

// ClearHistory empties the room's search index, then its log. Clearing an
// empty history is a no-op. When the index refuses, the log is left untouched.
func (m *Mediator) ClearHistory(roomID domain.RoomID) error {
	err := m.serialize(roomID, func(_ *roomSlot) error {
		if _, ok := m.registry.roomSlot(roomID); !ok {
			return errors.ErrNullTarget
		}
		if m.index != nil {
			if err := m.index.Clear(roomID); err != nil {
				return err
			}
		}
		return m.registry.Update(func(tx Tx) error {
			room, ok := tx.Room(roomID)
			if !ok {
				return errors.ErrNullTarget
			}
			room.ClearHistory()
			return nil
		})
	})
	if err != nil {
		return m.reject("clear history", roomID, 0, err)
	}
	m.log.Debug("history cleared", "room", int(roomID))
	return nil
}

// SearchHistory returns up to limit history entries of the room matching
// terms, oldest first.
func (m *Mediator) SearchHistory(ctx context.Context, roomID domain.RoomID, terms string, limit int) ([]string, error) {
	if m.index == nil {
		return nil, errors.ErrSearchDisabled
	}
	if _, ok := m.RoomName(roomID); !ok {
		return nil, m.reject("search history", roomID, 0, errors.ErrNullTarget)
	}
	return m.index.Search(ctx, roomID, terms, limit)
}

// AuditTrail lists the audit records of a room in chronological order.
func (m *Mediator) AuditTrail(roomID domain.RoomID) ([]domain.AuditRecord, error) {
	if m.trail == nil {
		return nil, nil
	}
	return m.trail.List(roomID)
}

// MemberIterator snapshots the room's members. Later changes to the room
// are not seen by the iterator.
func (m *Mediator) MemberIterator(roomID domain.RoomID) (*domain.Iterator[domain.UserID], error) {
	var it *domain.Iterator[domain.UserID]
	err := m.registry.View(func(tx Tx) error {
		room, ok := tx.Room(roomID)
		if !ok {
			return errors.ErrNullTarget
		}
		it = room.MemberIterator()
		return nil
	})
	if err != nil {
		return nil, m.reject("member iterator", roomID, 0, err)
	}
	return it, nil
}

func (m *Mediator) HistoryIterator(roomID domain.RoomID) (*domain.Iterator[string], error) {
	var it *domain.Iterator[string]
	err := m.registry.View(func(tx Tx) error {
		room, ok := tx.Room(roomID)
		if !ok {
			return errors.ErrNullTarget
		}
		it = room.HistoryIterator()
		return nil
	})
	if err != nil {
		return nil, m.reject("history iterator", roomID, 0, err)
	}
	return it, nil
}
