package runtime

import (
	"petspace/contract"
	"petspace/domain"
	"petspace/errors"
	"sync"
)

// roomSlot pairs a room with the lock serializing every operation on it,
// participant callbacks included.
type roomSlot struct {
	serial sync.Mutex
	room   *domain.Room
}

// userSlot pairs a user with the lock guarding its command queue.
type userSlot struct {
	serial      sync.Mutex
	user        *domain.User
	participant contract.Participant
}

// Registry is the arena owning every room and user.
// Rooms and users only reference each other through handles, so removing
// either side never leaves a dangling pointer behind.
//
// Lock order: a room serial lock, then a user serial lock, then mu.
// mu is never held while waiting on a serial lock.
type Registry struct {
	mu       sync.RWMutex
	rooms    map[domain.RoomID]*roomSlot
	users    map[domain.UserID]*userSlot
	nextRoom domain.RoomID
	nextUser domain.UserID
}

func NewRegistry() *Registry {
	return &Registry{
		rooms: make(map[domain.RoomID]*roomSlot),
		users: make(map[domain.UserID]*userSlot),
	}
}

// AddRoom allocates a new handle, handles are never reused.
func (r *Registry) AddRoom(profile domain.Profile) domain.RoomID {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextRoom++
	r.rooms[r.nextRoom] = &roomSlot{room: domain.NewRoom(r.nextRoom, profile)}
	return r.nextRoom
}

func (r *Registry) AddUser(name string, participant contract.Participant) domain.UserID {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextUser++
	r.users[r.nextUser] = &userSlot{
		user:        domain.NewUser(r.nextUser, name),
		participant: participant,
	}
	return r.nextUser
}

func (r *Registry) roomSlot(id domain.RoomID) (*roomSlot, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	slot, ok := r.rooms[id]
	return slot, ok
}

func (r *Registry) userSlot(id domain.UserID) (*userSlot, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	slot, ok := r.users[id]
	return slot, ok
}

// View runs fn with shared access to the arena.
func (r *Registry) View(fn func(tx Tx) error) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return fn(Tx{r: r})
}

// Update runs fn with exclusive access to the arena.
// fn must validate everything before its first mutation so a rejected
// operation leaves the arena untouched.
func (r *Registry) Update(fn func(tx Tx) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(Tx{r: r})
}

// Tx is the arena as seen from inside View or Update.
// It must not escape the callback.
type Tx struct {
	r *Registry
}

func (tx Tx) Room(id domain.RoomID) (*domain.Room, bool) {
	slot, ok := tx.r.rooms[id]
	if !ok {
		return nil, false
	}
	return slot.room, true
}

func (tx Tx) User(id domain.UserID) (*domain.User, bool) {
	slot, ok := tx.r.users[id]
	if !ok {
		return nil, false
	}
	return slot.user, true
}

// Pair resolves both handles or fails with ErrNullTarget.
func (tx Tx) Pair(roomID domain.RoomID, userID domain.UserID) (*domain.Room, *domain.User, error) {
	room, ok := tx.Room(roomID)
	if !ok {
		return nil, nil, errors.ErrNullTarget
	}
	user, ok := tx.User(userID)
	if !ok {
		return nil, nil, errors.ErrNullTarget
	}
	return room, user, nil
}

func (tx Tx) UserName(id domain.UserID) string {
	if user, ok := tx.User(id); ok {
		return user.Name
	}
	return ""
}

func (tx Tx) deleteRoom(id domain.RoomID) {
	delete(tx.r.rooms, id)
}

func (tx Tx) deleteUser(id domain.UserID) {
	delete(tx.r.users, id)
}

func (tx Tx) eachRoom(fn func(room *domain.Room)) {
	for _, slot := range tx.r.rooms {
		fn(slot.room)
	}
}

// recipient is a user as captured at emission time.
type recipient struct {
	id          domain.UserID
	online      bool
	participant contract.Participant
}

func (tx Tx) recipients(ids []domain.UserID) []recipient {
	res := make([]recipient, 0, len(ids))
	for _, id := range ids {
		slot, ok := tx.r.users[id]
		if !ok {
			continue
		}
		res = append(res, recipient{id: id, online: slot.user.Online, participant: slot.participant})
	}
	return res
}
