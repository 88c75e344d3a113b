package sink

import (
	"context"
	"log/slog"
	"petspace/contract"
	"petspace/domain"
	"time"
)

// Fanout hands each audit record to every sink, in registration order.
//
// A failing or slow sink never prevents the next ones from running: each
// sink gets its own deadline and failures are logged. The first failure is
// returned once every sink has been called.
type Fanout struct {
	log         *slog.Logger
	sinks       []contract.AuditSink
	sinkTimeout time.Duration
}

func NewFanout(log *slog.Logger, sinkTimeout time.Duration, sinks ...contract.AuditSink) *Fanout {
	return &Fanout{log: log, sinks: sinks, sinkTimeout: sinkTimeout}
}

func (f *Fanout) Add(sinks ...contract.AuditSink) *Fanout {
	f.sinks = append(f.sinks, sinks...)
	return f
}

func (f *Fanout) Consume(ctx context.Context, record domain.AuditRecord) error {
	var first error
	for _, s := range f.sinks {
		if err := f.consume(ctx, s, record); err != nil {
			f.log.Error("audit sink failed", "audit_id", record.ID.String(), "error", err)
			if first == nil {
				first = err
			}
		}
	}
	return first
}

func (f *Fanout) consume(ctx context.Context, s contract.AuditSink, record domain.AuditRecord) error {
	if f.sinkTimeout <= 0 {
		return s.Consume(ctx, record)
	}
	sinkCtx, cancel := context.WithTimeout(ctx, f.sinkTimeout)
	defer cancel()
	return s.Consume(sinkCtx, record)
}
