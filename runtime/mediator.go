// Package runtime coordinates rooms and users: membership, notifications,
// the command pipeline behind every send, and snapshot iteration.
//
// Every operation runs synchronously. Operations on the same room are
// serialized, so deliveries and notifications of a room are always handed
// out in membership and subscription order.
package runtime

import (
	"fmt"
	"log/slog"
	"petspace/contract"
	"petspace/domain"
	"petspace/domain/event"
	"petspace/errors"
	"petspace/moderation"
	"petspace/repositories"
)

type Mediator struct {
	log       *slog.Logger
	registry  *Registry
	audit     contract.AuditSink
	index     contract.HistoryIndex
	trail     repositories.IAuditRepository
	moderator *moderation.Moderator
	counter   *event.Counter
	handlers  []event.Handler
}

// NewMediator wires a mediator over the registry.
// A nil audit sink leaves the audit trail to the mediator's own log.
func NewMediator(log *slog.Logger, registry *Registry, audit contract.AuditSink) *Mediator {
	counter := event.NewCounter(log)
	return &Mediator{
		log:      log,
		registry: registry,
		audit:    audit,
		counter:  counter,
		handlers: []event.Handler{counter},
	}
}

// WithIndex enables SearchHistory.
func (m *Mediator) WithIndex(index contract.HistoryIndex) *Mediator {
	m.index = index
	return m
}

// WithModerator censors message content before it is queued.
func (m *Mediator) WithModerator(moderator *moderation.Moderator) *Mediator {
	m.moderator = moderator
	return m
}

// AddHandlers registers handlers called after the observers of every notification.
func (m *Mediator) AddHandlers(handlers ...event.Handler) *Mediator {
	m.handlers = append(m.handlers, handlers...)
	return m
}

func (m *Mediator) CreateRoom(profile domain.Profile) (domain.RoomID, error) {
	if err := profile.Validate(); err != nil {
		return 0, err
	}
	id := m.registry.AddRoom(profile)
	m.log.Info(fmt.Sprintf("%s room created", profile.Name), "room", int(id))
	return id, nil
}

// CreateUser registers an offline user. A nil participant logs what the user receives.
func (m *Mediator) CreateUser(name string, participant contract.Participant) (domain.UserID, error) {
	if err := domain.ValidateDisplayName(name); err != nil {
		return 0, err
	}
	if participant == nil {
		participant = NewLogParticipant(m.log, name)
	}
	id := m.registry.AddUser(name, participant)
	m.log.Debug("user created", "user", int(id), "name", name)
	return id, nil
}

// RemoveUser leaves every joined room, drops remaining subscriptions and frees the handle.
func (m *Mediator) RemoveUser(userID domain.UserID) error {
	rooms := m.JoinedRooms(userID)
	for _, roomID := range rooms {
		if err := m.Leave(userID, roomID); err != nil {
			m.log.Debug("leave during removal", "room", int(roomID), "user", int(userID), "error", err)
		}
	}
	err := m.registry.Update(func(tx Tx) error {
		if _, ok := tx.User(userID); !ok {
			return errors.ErrNullTarget
		}
		tx.eachRoom(func(room *domain.Room) {
			room.Unsubscribe(userID)
		})
		tx.deleteUser(userID)
		return nil
	})
	if err != nil {
		return m.reject("remove user", 0, userID, err)
	}
	return nil
}

// RemoveRoom detaches the room from every member and frees the handle.
// Members are not notified.
func (m *Mediator) RemoveRoom(roomID domain.RoomID) error {
	err := m.serialize(roomID, func(_ *roomSlot) error {
		return m.registry.Update(func(tx Tx) error {
			room, ok := tx.Room(roomID)
			if !ok {
				return errors.ErrNullTarget
			}
			for _, id := range room.Members() {
				if user, ok := tx.User(id); ok {
					user.Detach(roomID)
				}
			}
			tx.deleteRoom(roomID)
			m.log.Info(fmt.Sprintf("%s room destroyed", room.Name()), "room", int(roomID))
			return nil
		})
	})
	if err != nil {
		return m.reject("remove room", roomID, 0, err)
	}
	return nil
}

func (m *Mediator) RoomName(roomID domain.RoomID) (string, bool) {
	var name string
	err := m.registry.View(func(tx Tx) error {
		room, ok := tx.Room(roomID)
		if !ok {
			return errors.ErrNullTarget
		}
		name = room.Name()
		return nil
	})
	return name, err == nil
}

func (m *Mediator) UserName(userID domain.UserID) (string, bool) {
	var name string
	err := m.registry.View(func(tx Tx) error {
		user, ok := tx.User(userID)
		if !ok {
			return errors.ErrNullTarget
		}
		name = user.Name
		return nil
	})
	return name, err == nil
}

// serialize runs fn while holding the room's serial lock.
func (m *Mediator) serialize(roomID domain.RoomID, fn func(slot *roomSlot) error) error {
	slot, ok := m.registry.roomSlot(roomID)
	if !ok {
		return errors.ErrNullTarget
	}
	slot.serial.Lock()
	defer slot.serial.Unlock()
	return fn(slot)
}

// reject reports a refused operation. Nothing was mutated.
func (m *Mediator) reject(op string, roomID domain.RoomID, userID domain.UserID, err error) error {
	m.log.Warn(op+" rejected", "room", int(roomID), "user", int(userID), "error", err)
	return fmt.Errorf("%s: %w", op, err)
}
