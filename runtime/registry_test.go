package runtime

import (
	"petspace/domain"
	"petspace/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry_HandlesAreNeverReused(t *testing.T) {
	req := require.New(t)
	r := NewRegistry()

	first := r.AddRoom(domain.DefaultProfile)
	second := r.AddRoom(domain.CtrlCat)
	req.Equal(domain.RoomID(1), first)
	req.Equal(domain.RoomID(2), second)

	req.NoError(r.Update(func(tx Tx) error {
		tx.deleteRoom(second)
		return nil
	}))
	req.Equal(domain.RoomID(3), r.AddRoom(domain.Dogorithm))

	user := r.AddUser("Rachel", nil)
	req.Equal(domain.UserID(1), user)
}

func TestRegistry_Pair(t *testing.T) {
	req := require.New(t)
	r := NewRegistry()
	roomID := r.AddRoom(domain.DefaultProfile)
	userID := r.AddUser("Rachel", nil)

	req.NoError(r.View(func(tx Tx) error {
		room, user, err := tx.Pair(roomID, userID)
		req.NoError(err)
		req.Equal("DefaultRoom", room.Name())
		req.Equal("Rachel", user.Name)
		req.Equal("Rachel", tx.UserName(userID))
		req.Empty(tx.UserName(42))
		return nil
	}))

	err := r.View(func(tx Tx) error {
		_, _, err := tx.Pair(roomID, 42)
		return err
	})
	req.ErrorIs(err, errors.ErrNullTarget)
}

func TestRegistry_FlushCapturesObservers(t *testing.T) {
	req := require.New(t)
	r := NewRegistry()
	roomID := r.AddRoom(domain.DefaultProfile)
	online := r.AddUser("online", nil)
	offline := r.AddUser("offline", nil)

	var out []outgoing
	req.NoError(r.Update(func(tx Tx) error {
		room, _ := tx.Room(roomID)
		user, _ := tx.User(online)
		user.SetOnline(true)
		room.Subscribe(online)
		room.Subscribe(offline)
		room.Subscribe(99)
		room.Register(online, "online")
		out = tx.flush(room)
		return nil
	}))

	req.Len(out, 1)
	req.Equal(online, out[0].notification.Actor)
	req.Equal([]recipient{
		{id: online, online: true},
		{id: offline, online: false},
	}, out[0].observers)

	// A second flush has nothing left
	req.NoError(r.Update(func(tx Tx) error {
		room, _ := tx.Room(roomID)
		req.Empty(tx.flush(room))
		return nil
	}))
}
