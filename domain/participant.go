// Package domain contains core concepts of the chat system.
// This file defines User entities and the rooms they belong to.
// No runtime, network, or UI logic should be added here.
package domain

import "github.com/samber/lo"

// UserID is a stable handle into the runtime arena, never reused.
type UserID int

type User struct {
	ID       UserID
	Name     string
	Online   bool
	rooms    []RoomID
	Commands CommandQueue
}

// NewUser creates an offline user without any room.
func NewUser(id UserID, name string) *User {
	return &User{ID: id, Name: name}
}

func (u *User) InRoom(id RoomID) bool {
	return lo.Contains(u.rooms, id)
}

// Attach records the room in the joined set, false if already present.
func (u *User) Attach(id RoomID) bool {
	if u.InRoom(id) {
		return false
	}
	u.rooms = append(u.rooms, id)
	return true
}

// Detach removes the room from the joined set, false if absent.
func (u *User) Detach(id RoomID) bool {
	if !u.InRoom(id) {
		return false
	}
	u.rooms = lo.Without(u.rooms, id)
	return true
}

func (u *User) JoinedRooms() []RoomID {
	return lo.Map(u.rooms, func(id RoomID, _ int) RoomID { return id })
}

// SetOnline reports whether the status actually changed.
func (u *User) SetOnline(online bool) bool {
	if u.Online == online {
		return false
	}
	u.Online = online
	return true
}
