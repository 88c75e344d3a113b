package runtime

import (
	"fmt"
	"petspace/domain"
	"petspace/domain/event"
	"petspace/errors"
)

// Join registers the user as member and observer of the room, then publishes USER_JOINED.
// Joining a room twice is rejected with ErrDuplicateRegistration.
func (m *Mediator) Join(userID domain.UserID, roomID domain.RoomID) error {
	var flavor []string
	err := m.serialize(roomID, func(_ *roomSlot) error {
		var out []outgoing
		err := m.registry.Update(func(tx Tx) error {
			room, user, err := tx.Pair(roomID, userID)
			if err != nil {
				return err
			}
			if user.InRoom(roomID) || room.HasMember(userID) {
				return errors.ErrDuplicateRegistration
			}
			user.Attach(roomID)
			room.Register(userID, user.Name)
			room.Subscribe(userID)
			flavor = []string{
				room.Profile.JoinMessage(user.Name, room.MemberCount()),
				room.Profile.CensusMessage(room.MemberCount()),
			}
			out = tx.flush(room)
			return nil
		})
		if err != nil {
			return err
		}
		m.logFlavor(roomID, flavor)
		m.dispatch(out)
		return nil
	})
	if err != nil {
		return m.reject("join", roomID, userID, err)
	}
	return nil
}

// Leave is the inverse of Join and publishes USER_LEFT to the remaining observers.
func (m *Mediator) Leave(userID domain.UserID, roomID domain.RoomID) error {
	var flavor []string
	err := m.serialize(roomID, func(_ *roomSlot) error {
		var out []outgoing
		err := m.registry.Update(func(tx Tx) error {
			room, user, err := tx.Pair(roomID, userID)
			if err != nil {
				return err
			}
			if !user.InRoom(roomID) {
				return errors.ErrAbsentOnRemoval
			}
			user.Detach(roomID)
			room.Remove(userID, user.Name)
			room.Unsubscribe(userID)
			flavor = []string{
				room.Profile.LeaveMessage(user.Name, room.MemberCount()),
				room.Profile.CensusMessage(room.MemberCount()),
			}
			out = tx.flush(room)
			return nil
		})
		if err != nil {
			return err
		}
		m.logFlavor(roomID, flavor)
		m.dispatch(out)
		return nil
	})
	if err != nil {
		return m.reject("leave", roomID, userID, err)
	}
	return nil
}

// SetOnline flips the presence flag. When it changes, USER_ONLINE or
// USER_OFFLINE is published on every joined room, one room at a time.
func (m *Mediator) SetOnline(userID domain.UserID, online bool) error {
	var (
		name    string
		rooms   []domain.RoomID
		changed bool
	)
	err := m.registry.Update(func(tx Tx) error {
		user, ok := tx.User(userID)
		if !ok {
			return errors.ErrNullTarget
		}
		changed = user.SetOnline(online)
		name = user.Name
		rooms = user.JoinedRooms()
		return nil
	})
	if err != nil {
		return m.reject("set online", 0, userID, err)
	}
	if !changed {
		return nil
	}

	status := "offline"
	if online {
		status = "online"
	}
	m.log.Info(fmt.Sprintf("%s is now %s", name, status), "user", int(userID))

	kind := event.Presence(online)
	for _, roomID := range rooms {
		err := m.serialize(roomID, func(_ *roomSlot) error {
			var out []outgoing
			err := m.registry.Update(func(tx Tx) error {
				room, ok := tx.Room(roomID)
				if !ok {
					return errors.ErrNullTarget
				}
				room.Emit(kind, name, userID)
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
			m.log.Debug("presence not published", "room", int(roomID), "user", int(userID), "error", err)
		}
	}
	return nil
}

func (m *Mediator) IsOnline(userID domain.UserID) bool {
	var online bool
	_ = m.registry.View(func(tx Tx) error {
		if user, ok := tx.User(userID); ok {
			online = user.Online
		}
		return nil
	})
	return online
}

func (m *Mediator) JoinedRooms(userID domain.UserID) []domain.RoomID {
	var rooms []domain.RoomID
	_ = m.registry.View(func(tx Tx) error {
		if user, ok := tx.User(userID); ok {
			rooms = user.JoinedRooms()
		}
		return nil
	})
	return rooms
}

func (m *Mediator) Members(roomID domain.RoomID) []domain.UserID {
	var members []domain.UserID
	_ = m.registry.View(func(tx Tx) error {
		if room, ok := tx.Room(roomID); ok {
			members = room.Members()
		}
		return nil
	})
	return members
}

func (m *Mediator) MemberCount(roomID domain.RoomID) int {
	var count int
	_ = m.registry.View(func(tx Tx) error {
		if room, ok := tx.Room(roomID); ok {
			count = room.MemberCount()
		}
		return nil
	})
	return count
}

func (m *Mediator) HasMember(roomID domain.RoomID, userID domain.UserID) bool {
	var ok bool
	_ = m.registry.View(func(tx Tx) error {
		if room, found := tx.Room(roomID); found {
			ok = room.HasMember(userID)
		}
		return nil
	})
	return ok
}

// FindMember returns the first member with this display name.
// Display names are not unique: with duplicates the earliest member wins.
func (m *Mediator) FindMember(roomID domain.RoomID, name string) (domain.UserID, bool) {
	var (
		id    domain.UserID
		found bool
	)
	_ = m.registry.View(func(tx Tx) error {
		if room, ok := tx.Room(roomID); ok {
			id, found = room.FindMember(name, tx.UserName)
		}
		return nil
	})
	return id, found
}

func (m *Mediator) logFlavor(roomID domain.RoomID, lines []string) {
	for _, line := range lines {
		if line != "" {
			m.log.Info(line, "room", int(roomID))
		}
	}
}
