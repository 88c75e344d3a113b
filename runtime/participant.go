package runtime

import (
	"fmt"
	"log/slog"
	"petspace/domain"
	"petspace/domain/event"
)

// LogParticipant is the default participant of a user: it writes what the
// user receives to the application logger.
type LogParticipant struct {
	logger *slog.Logger
	name   string
}

func NewLogParticipant(logger *slog.Logger, name string) *LogParticipant {
	return &LogParticipant{logger: logger, name: name}
}

func (p *LogParticipant) OnReceive(d domain.Delivery) {
	p.logger.Info(fmt.Sprintf("[%s] Received in %s from %s: %s", p.name, d.RoomName, d.FromName, d.Content))
}

func (p *LogParticipant) OnNotify(n domain.Notification) {
	var msg string
	switch n.Kind {
	case event.UserJoined:
		msg = fmt.Sprintf("%s joined %s", n.Payload, n.RoomName)
	case event.UserLeft:
		msg = fmt.Sprintf("%s left %s", n.Payload, n.RoomName)
	case event.MessageSent:
		msg = fmt.Sprintf("new message in %s: %s", n.RoomName, n.Payload)
	case event.UserOnline:
		msg = fmt.Sprintf("%s is online", n.Payload)
	case event.UserOffline:
		msg = fmt.Sprintf("%s is offline", n.Payload)
	default:
		p.logger.Error("unknown notification kind", "user", p.name, "kind", n.Kind.String())
		return
	}
	p.logger.Info(fmt.Sprintf("[NOTIFICATION] %s", msg), "user", p.name)
}
