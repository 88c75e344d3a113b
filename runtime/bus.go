package runtime

import (
	"petspace/domain"
	"petspace/domain/event"
	"petspace/errors"
)

// outgoing is a notification together with the observers captured when it was flushed.
type outgoing struct {
	notification domain.Notification
	observers    []recipient
}

// flush drains the room outbox. Observers are captured once every mutation
// of the operation has been applied.
func (tx Tx) flush(room *domain.Room) []outgoing {
	events := room.FlushEvents()
	if len(events) == 0 {
		return nil
	}
	observers := tx.recipients(room.Observers())
	out := make([]outgoing, 0, len(events))
	for _, n := range events {
		out = append(out, outgoing{notification: n, observers: observers})
	}
	return out
}

// dispatch hands every notification to its observers in subscription order,
// then to the registered handlers. Must be called with the room serialized
// and the registry unlocked.
func (m *Mediator) dispatch(out []outgoing) {
	for _, o := range out {
		for _, obs := range o.observers {
			m.notify(obs, o.notification)
		}
		for _, h := range m.handlers {
			h.Handle(o.notification.Kind, o.notification.Payload)
		}
	}
}

// notify skips the actor of the event and anyone offline.
func (m *Mediator) notify(obs recipient, n domain.Notification) {
	if obs.participant == nil || !obs.online || obs.id == n.Actor {
		return
	}
	obs.participant.OnNotify(n)
}

// Subscribe adds an observer without making it a member.
func (m *Mediator) Subscribe(roomID domain.RoomID, userID domain.UserID) error {
	err := m.serialize(roomID, func(_ *roomSlot) error {
		return m.registry.Update(func(tx Tx) error {
			room, _, err := tx.Pair(roomID, userID)
			if err != nil {
				return err
			}
			if !room.Subscribe(userID) {
				return errors.ErrDuplicateRegistration
			}
			return nil
		})
	})
	if err != nil {
		return m.reject("subscribe", roomID, userID, err)
	}
	return nil
}

func (m *Mediator) Unsubscribe(roomID domain.RoomID, userID domain.UserID) error {
	err := m.serialize(roomID, func(_ *roomSlot) error {
		return m.registry.Update(func(tx Tx) error {
			room, _, err := tx.Pair(roomID, userID)
			if err != nil {
				return err
			}
			if !room.Unsubscribe(userID) {
				return errors.ErrAbsentOnRemoval
			}
			return nil
		})
	})
	if err != nil {
		return m.reject("unsubscribe", roomID, userID, err)
	}
	return nil
}

// Publish notifies every online observer of the room. The event has no
// actor, so nobody is filtered out.
func (m *Mediator) Publish(roomID domain.RoomID, kind event.Kind, payload string) error {
	if !kind.Valid() {
		return m.reject("publish", roomID, 0, errors.ErrUnknownKind)
	}
	err := m.serialize(roomID, func(_ *roomSlot) error {
		var out []outgoing
		err := m.registry.Update(func(tx Tx) error {
			room, ok := tx.Room(roomID)
			if !ok {
				return errors.ErrNullTarget
			}
			room.Emit(kind, payload, 0)
			out = tx.flush(room)
			return nil
		})
		if err != nil {
			return err
		}
		m.dispatch(out)
		return nil
	})
	if err != nil {
		return m.reject("publish", roomID, 0, err)
	}
	return nil
}

func (m *Mediator) Observers(roomID domain.RoomID) []domain.UserID {
	var observers []domain.UserID
	_ = m.registry.View(func(tx Tx) error {
		if room, ok := tx.Room(roomID); ok {
			observers = room.Observers()
		}
		return nil
	})
	return observers
}

// Stats returns how many notifications of each kind have been published.
func (m *Mediator) Stats() map[event.Kind]uint64 {
	return m.counter.Snapshot()
}
