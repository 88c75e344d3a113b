package sink

import (
	"context"
	"petspace/domain"
	"petspace/repositories"
)

// DiskSink stores audit records in the audit repository.
type DiskSink struct {
	repository repositories.IAuditRepository
}

func NewDiskSink(repository repositories.IAuditRepository) DiskSink {
	return DiskSink{repository: repository}
}

func (d DiskSink) Consume(ctx context.Context, record domain.AuditRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return d.repository.Store(record)
}
