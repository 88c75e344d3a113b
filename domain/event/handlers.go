package event

import (
	"log/slog"
	"sync"
)

// Handler reacts to every notification published on a room, whoever observes it.
type Handler interface {
	Handle(kind Kind, payload string)
}

// Counter tallies published notifications per kind.
// It is safe for concurrent use.
type Counter struct {
	log    *slog.Logger
	mu     sync.Mutex
	counts map[Kind]uint64
}

func NewCounter(log *slog.Logger) *Counter {
	return &Counter{log: log, counts: make(map[Kind]uint64)}
}

func (c *Counter) Handle(kind Kind, payload string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !kind.Valid() {
		c.log.Error("unknown notification kind", "kind", kind.String())
		return
	}
	c.counts[kind]++
	c.log.Debug("notification published", "kind", kind.String(), "payload", payload)
}

// Snapshot returns a copy of the counters.
func (c *Counter) Snapshot() map[Kind]uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	res := make(map[Kind]uint64, len(c.counts))
	for k, v := range c.counts {
		res[k] = v
	}
	return res
}
