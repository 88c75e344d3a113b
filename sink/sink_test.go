package sink

import (
	"context"
	"fmt"
	"log/slog"
	"petspace/domain"
	"petspace/mocks"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func record() domain.AuditRecord {
	return domain.AuditRecord{
		ID:         uuid.New(),
		Room:       1,
		RoomName:   "Dogorithm",
		Sender:     2,
		SenderName: "Sofia",
		Content:    "Hi",
		At:         time.Now().UTC(),
	}
}

func TestDiskSink_Consume_StoresRecord(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repository := mocks.NewMockIAuditRepository(ctrl)
	rec := record()

	// Given the repository accepts the record
	repository.EXPECT().Store(rec).Return(nil).Times(1)

	// When the sink consumes it
	err := NewDiskSink(repository).Consume(context.Background(), rec)

	// Then no error is raised
	req.NoError(err)
}

func TestDiskSink_Consume_CanceledContext(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repository := mocks.NewMockIAuditRepository(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Then the repository is never reached
	err := NewDiskSink(repository).Consume(ctx, record())
	req.ErrorIs(err, context.Canceled)
}

func TestFanout_Consume_EverySinkInOrder(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	first := mocks.NewMockAuditSink(ctrl)
	second := mocks.NewMockAuditSink(ctrl)
	rec := record()
	boom := fmt.Errorf("boom")

	// Given a failing first sink and a healthy second one
	gomock.InOrder(
		first.EXPECT().Consume(gomock.Any(), rec).Return(boom),
		second.EXPECT().Consume(gomock.Any(), rec).Return(nil),
	)

	// When the fanout consumes a record
	err := NewFanout(log, 10*time.Millisecond, first).Add(second).Consume(context.Background(), rec)

	// Then both sinks ran and the first failure is reported
	req.ErrorIs(err, boom)
}

func TestFanout_Consume_SinkTimeout(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	slow := mocks.NewMockAuditSink(ctrl)
	slow.EXPECT().Consume(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ domain.AuditRecord) error {
			<-ctx.Done()     // Waiting for timeout to trigger cancellation
			return ctx.Err() // Sending back "context deadline exceeded"
		}).
		Times(1)

	err := NewFanout(log, 20*time.Millisecond, slow).Consume(context.Background(), record())
	req.ErrorIs(err, context.DeadlineExceeded)
}

func TestLogSink_Consume(t *testing.T) {
	req := require.New(t)
	err := NewLogSink(logs.GetLoggerFromLevel(slog.LevelDebug)).Consume(context.Background(), record())
	req.NoError(err)
}
