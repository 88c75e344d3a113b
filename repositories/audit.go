//go:generate go run go.uber.org/mock/mockgen -source=audit.go -destination=../mocks/mock_audit_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"
	"petspace/domain"
	"strconv"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

type IAuditRepository interface {
	Store(record domain.AuditRecord) error
	List(room domain.RoomID) ([]domain.AuditRecord, error)
}

type AuditRepository struct {
	db    *badger.DB
	log   *slog.Logger
	limit *int
}

func NewAuditRepository(db *badger.DB, log *slog.Logger, limit *int) AuditRepository {
	return AuditRepository{db: db, log: log, limit: limit}
}

// OpenInMemory opens a Badger instance that lives only as long as the process.
func OpenInMemory() (*badger.DB, error) {
	return badger.Open(badger.DefaultOptions("").
		WithInMemory(true).
		WithLoggingLevel(badger.ERROR))
}

// Store persists an audit record.
// The key is formatted as "audit:{room_id}:{timestamp_padded}:{uuid}" so a
// prefix scan returns a room's records in chronological order, the uuid
// separating records created in the same nanosecond.
func (a AuditRepository) Store(record domain.AuditRecord) error {
	key := fmt.Sprintf("audit:%d:%019d:%s",
		record.Room,
		record.At.UnixNano(),
		record.ID,
	)
	row, err := FromAuditRecord(record)
	if err != nil {
		return err
	}
	bytes, err := proto.Marshal(row)
	if err != nil {
		return err
	}
	return a.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// List returns the oldest records of a room first, up to the configured limit.
func (a AuditRepository) List(room domain.RoomID) ([]domain.AuditRecord, error) {
	var rows [][]byte
	err := a.db.View(func(txn *badger.Txn) error {
		prefix := []byte(fmt.Sprintf("audit:%d:", room))
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if a.limit != nil && len(rows) == *a.limit {
				a.log.Debug(fmt.Sprintf("Maximum of %d audit records reached", *a.limit))
				break
			}
			value, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			rows = append(rows, value)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	records := make([]domain.AuditRecord, 0, len(rows))
	for _, b := range rows {
		var row structpb.Struct
		if err := proto.Unmarshal(b, &row); err != nil {
			return nil, err
		}
		record, err := ToAuditRecord(&row)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// FromAuditRecord encodes a record as the row stored in Badger.
func FromAuditRecord(record domain.AuditRecord) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		"id":          record.ID.String(),
		"room":        strconv.Itoa(int(record.Room)),
		"room_name":   record.RoomName,
		"sender":      strconv.Itoa(int(record.Sender)),
		"sender_name": record.SenderName,
		"content":     record.Content,
		"language":    record.Language,
		"at":          strconv.FormatInt(record.At.UnixNano(), 10),
	})
}

func ToAuditRecord(row *structpb.Struct) (domain.AuditRecord, error) {
	field := func(name string) string {
		return row.GetFields()[name].GetStringValue()
	}
	id, err := uuid.Parse(field("id"))
	if err != nil {
		return domain.AuditRecord{}, err
	}
	room, err := strconv.Atoi(field("room"))
	if err != nil {
		return domain.AuditRecord{}, err
	}
	sender, err := strconv.Atoi(field("sender"))
	if err != nil {
		return domain.AuditRecord{}, err
	}
	at, err := strconv.ParseInt(field("at"), 10, 64)
	if err != nil {
		return domain.AuditRecord{}, err
	}
	return domain.AuditRecord{
		ID:         id,
		Room:       domain.RoomID(room),
		RoomName:   field("room_name"),
		Sender:     domain.UserID(sender),
		SenderName: field("sender_name"),
		Content:    field("content"),
		Language:   field("language"),
		At:         time.Unix(0, at).UTC(),
	}, nil
}
