package domain

import "time"

type CommandKind int

const (
	DeliverCommand CommandKind = iota + 1
	LogCommand
)

func (k CommandKind) String() string {
	switch k {
	case DeliverCommand:
		return "deliver"
	case LogCommand:
		return "log"
	default:
		return "unknown"
	}
}

// Command is a one-shot unit of deferred work tied to a single send.
// It only holds handles: it never owns the room or the user it targets.
type Command struct {
	Kind      CommandKind
	Room      RoomID
	Sender    UserID
	Content   string
	CreatedAt time.Time
}

func NewDeliverCommand(room RoomID, sender UserID, content string) Command {
	return Command{Kind: DeliverCommand, Room: room, Sender: sender, Content: content, CreatedAt: time.Now().UTC()}
}

func NewLogCommand(room RoomID, sender UserID, content string) Command {
	return Command{Kind: LogCommand, Room: room, Sender: sender, Content: content, CreatedAt: time.Now().UTC()}
}

func (c Command) RoomID() RoomID {
	return c.Room
}

// IsZero reports an absent command.
func (c Command) IsZero() bool {
	return c.Kind == 0
}

// CommandQueue is a FIFO of pending commands owned by a single room or user.
type CommandQueue struct {
	pending []Command
}

// Enqueue appends the command, an absent command is ignored.
func (q *CommandQueue) Enqueue(cmd Command) bool {
	if cmd.IsZero() {
		return false
	}
	q.pending = append(q.pending, cmd)
	return true
}

func (q *CommandQueue) Len() int {
	return len(q.pending)
}

// Drain hands over the pending commands in insertion order and empties the queue.
func (q *CommandQueue) Drain() []Command {
	cmds := q.pending
	q.pending = nil
	return cmds
}

// DrainAndExecute runs every pending command in insertion order.
// The queue is emptied before the first command runs, so a command
// enqueuing new work never sees its own batch again.
func (q *CommandQueue) DrainAndExecute(exec func(Command)) int {
	cmds := q.Drain()
	for _, cmd := range cmds {
		exec(cmd)
	}
	return len(cmds)
}
