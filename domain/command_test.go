package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCommandQueue_DrainAndExecute_FIFO(t *testing.T) {
	req := require.New(t)
	var queue CommandQueue

	// Given a deliver then a log command
	req.True(queue.Enqueue(NewDeliverCommand(1, 2, "Hi")))
	req.True(queue.Enqueue(NewLogCommand(1, 2, "Hi")))
	req.Equal(2, queue.Len())

	// When the queue is drained
	var executed []CommandKind
	n := queue.DrainAndExecute(func(cmd Command) {
		executed = append(executed, cmd.Kind)
	})

	// Then commands ran in insertion order and the queue is empty
	req.Equal(2, n)
	req.Equal([]CommandKind{DeliverCommand, LogCommand}, executed)
	req.Equal(0, queue.Len())
	req.Empty(queue.Drain())
}

func TestCommandQueue_Enqueue_IgnoresAbsentCommand(t *testing.T) {
	req := require.New(t)
	var queue CommandQueue

	req.False(queue.Enqueue(Command{}))
	req.Equal(0, queue.Len())
}

func TestCommandQueue_DrainAndExecute_ReentrantEnqueue(t *testing.T) {
	req := require.New(t)
	var queue CommandQueue
	queue.Enqueue(NewDeliverCommand(1, 1, "first"))

	// When a command enqueues more work while running
	calls := 0
	queue.DrainAndExecute(func(cmd Command) {
		calls++
		queue.Enqueue(NewLogCommand(1, 1, "later"))
	})

	// Then the new work waits for the next drain
	req.Equal(1, calls)
	req.Equal(1, queue.Len())
}

func TestCommand_RoomID(t *testing.T) {
	req := require.New(t)
	cmd := NewLogCommand(4, 2, "x")
	req.Equal(RoomID(4), cmd.RoomID())
	req.False(cmd.IsZero())
	req.Equal("log", cmd.Kind.String())
	req.Equal("deliver", DeliverCommand.String())
	req.Equal("unknown", CommandKind(0).String())
}
