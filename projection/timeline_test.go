package projection

import (
	"petspace/domain"
	"petspace/domain/event"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTimeline_RecordsInOrder(t *testing.T) {
	req := require.New(t)
	timeline := NewTimeline("Bob")

	timeline.OnReceive(domain.Delivery{FromName: "Alice", Content: "Hello Bob"})
	timeline.OnReceive(domain.Delivery{FromName: "Clara", Content: "Hi Bob"})
	timeline.OnNotify(domain.Notification{Kind: event.UserJoined, Payload: "Clara"})

	received := timeline.Received()
	req.Len(received, 2)
	req.Equal("Alice", received[0].FromName)
	req.Equal("Clara", received[1].FromName)

	notifications := timeline.Notifications()
	req.Len(notifications, 1)
	req.Equal(event.UserJoined, notifications[0].Kind)

	// Returned slices are copies
	received[0].Content = "tampered"
	req.Equal("Hello Bob", timeline.Received()[0].Content)
}
