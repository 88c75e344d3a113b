// Package search keeps an in-memory full-text index of delivered room history.
package search

import (
	"context"
	"fmt"
	"log/slog"
	"petspace/domain"
	"strconv"
	"strings"
	"sync"

	"github.com/blugelabs/bluge"
)

const (
	roomField    = "room"
	contentField = "content"
	entryField   = "entry"
	seqField     = "seq"

	defaultLimit = 10
)

// HistoryIndex indexes message text and returns formatted history entries.
// Results are ordered by delivery, oldest first.
type HistoryIndex struct {
	mu     sync.Mutex
	log    *slog.Logger
	writer *bluge.Writer
	docs   map[domain.RoomID][]string
	next   uint64
}

func NewHistoryIndex(log *slog.Logger) (*HistoryIndex, error) {
	writer, err := bluge.OpenWriter(bluge.InMemoryOnlyConfig())
	if err != nil {
		return nil, err
	}
	return &HistoryIndex{
		log:    log,
		writer: writer,
		docs:   make(map[domain.RoomID][]string),
	}, nil
}

func (h *HistoryIndex) Index(ctx context.Context, room domain.RoomID, content, entry string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	h.next++
	seq := fmt.Sprintf("%019d", h.next)
	id := roomKey(room) + ":" + seq
	doc := bluge.NewDocument(id).
		AddField(bluge.NewKeywordField(roomField, roomKey(room))).
		AddField(bluge.NewTextField(contentField, content)).
		AddField(bluge.NewStoredOnlyField(entryField, []byte(entry))).
		AddField(bluge.NewKeywordField(seqField, seq).StoreValue().Sortable())
	if err := h.writer.Update(doc.ID(), doc); err != nil {
		return err
	}
	h.docs[room] = append(h.docs[room], id)
	return nil
}

// Search matches any of the terms against the room's message text and
// returns the oldest matching entries first, at most limit of them.
func (h *HistoryIndex) Search(ctx context.Context, room domain.RoomID, terms string, limit int) ([]string, error) {
	if strings.TrimSpace(terms) == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = defaultLimit
	}

	reader, err := h.writer.Reader()
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := reader.Close(); err != nil {
			h.log.Warn("closing index reader", "error", err)
		}
	}()

	query := bluge.NewBooleanQuery().
		AddMust(bluge.NewMatchQuery(terms).SetField(contentField)).
		AddMust(bluge.NewTermQuery(roomKey(room)).SetField(roomField))
	request := bluge.NewTopNSearch(limit, query).SortBy([]string{seqField})
	iterator, err := reader.Search(ctx, request)
	if err != nil {
		return nil, err
	}

	var entries []string
	match, err := iterator.Next()
	for err == nil && match != nil {
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			if field == entryField {
				entries = append(entries, string(value))
			}
			return true
		})
		if err != nil {
			return nil, err
		}
		match, err = iterator.Next()
	}
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Clear forgets every indexed entry of the room.
func (h *HistoryIndex) Clear(room domain.RoomID) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	ids := h.docs[room]
	if len(ids) == 0 {
		return nil
	}
	batch := bluge.NewBatch()
	for _, id := range ids {
		batch.Delete(bluge.Identifier(id))
	}
	if err := h.writer.Batch(batch); err != nil {
		return err
	}
	delete(h.docs, room)
	h.log.Debug("history index cleared", "room", int(room), "entries", len(ids))
	return nil
}

func (h *HistoryIndex) Close() error {
	return h.writer.Close()
}

func roomKey(room domain.RoomID) string {
	return strconv.Itoa(int(room))
}
