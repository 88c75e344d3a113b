package repositories

import (
	"log/slog"
	"petspace/domain"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func newRecord(room domain.RoomID, sender string, at time.Time) domain.AuditRecord {
	return domain.AuditRecord{
		ID:         uuid.New(),
		Room:       room,
		RoomName:   "CtrlCat",
		Sender:     1,
		SenderName: sender,
		Content:    "this message will self destruct in 5 seconds",
		Language:   "en",
		At:         at,
	}
}

func Test_Record_Multiple_Audits(t *testing.T) {
	req := require.New(t)
	db, err := OpenInMemory()
	req.NoError(err)
	defer db.Close()

	repository := NewAuditRepository(db, slog.Default(), nil)
	at := time.Now().UTC()
	records := []domain.AuditRecord{
		newRecord(1, "Alice", at),
		newRecord(1, "Bob", at.Add(1*time.Minute)),
		newRecord(1, "Clara", at.Add(2*time.Minute)),
	}
	// Given records stored out of order
	for _, i := range []int{2, 0, 1} {
		req.NoError(repository.Store(records[i]))
	}
	// And a record in another room
	req.NoError(repository.Store(newRecord(2, "Dan", at)))

	// When the room is listed
	fetched, err := repository.List(1)

	// Then records come back chronologically and intact
	req.NoError(err)
	req.Equal(records, fetched)
}

func Test_Record_Multiple_Audits_And_Limit(t *testing.T) {
	req := require.New(t)
	db, err := OpenInMemory()
	req.NoError(err)
	defer db.Close()

	repository := NewAuditRepository(db, slog.Default(), lo.ToPtr(2))
	at := time.Now().UTC()
	for i := 0; i < 3; i++ {
		req.NoError(repository.Store(newRecord(1, "Alice", at.Add(time.Duration(i)*time.Second))))
	}

	fetched, err := repository.List(1)
	req.NoError(err)
	req.Len(fetched, 2)
}

func Test_List_Unknown_Room(t *testing.T) {
	req := require.New(t)
	db, err := OpenInMemory()
	req.NoError(err)
	defer db.Close()

	fetched, err := NewAuditRepository(db, slog.Default(), nil).List(42)
	req.NoError(err)
	req.Empty(fetched)
}
