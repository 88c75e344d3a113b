package runtime

import (
	"context"
	"petspace/domain"
	"petspace/errors"

	"github.com/abadojack/whatlanggo"
	"github.com/google/uuid"
)

// SendMessage validates the send, then queues a deliver and a log command on
// the sender's own queue and drains it right away. Deliver always runs
// before log.
func (m *Mediator) SendMessage(ctx context.Context, userID domain.UserID, roomID domain.RoomID, text string) error {
	err := m.serialize(roomID, func(_ *roomSlot) error {
		if err := m.registry.View(func(tx Tx) error {
			return validateSend(tx, roomID, userID, text)
		}); err != nil {
			return err
		}

		content := m.moderate(userID, text)

		slot, ok := m.registry.userSlot(userID)
		if !ok {
			return errors.ErrNullTarget
		}
		slot.serial.Lock()
		defer slot.serial.Unlock()

		slot.user.Commands.Enqueue(domain.NewDeliverCommand(roomID, userID, content))
		slot.user.Commands.Enqueue(domain.NewLogCommand(roomID, userID, content))
		slot.user.Commands.DrainAndExecute(func(cmd domain.Command) {
			m.execute(ctx, cmd)
		})
		return nil
	})
	if err != nil {
		return m.reject("send message", roomID, userID, err)
	}
	return nil
}

// Enqueue queues a command on the room's own queue until ExecuteAll.
// An absent command is ignored.
func (m *Mediator) Enqueue(roomID domain.RoomID, cmd domain.Command) error {
	if cmd.IsZero() {
		return nil
	}
	if cmd.RoomID() != roomID {
		return m.reject("enqueue", roomID, cmd.Sender, errors.ErrRoomMismatch)
	}
	err := m.serialize(roomID, func(_ *roomSlot) error {
		return m.registry.Update(func(tx Tx) error {
			room, ok := tx.Room(roomID)
			if !ok {
				return errors.ErrNullTarget
			}
			room.Commands.Enqueue(cmd)
			return nil
		})
	})
	if err != nil {
		return m.reject("enqueue", roomID, cmd.Sender, err)
	}
	return nil
}

// ExecuteAll drains the room's queue in insertion order and returns how many
// commands were taken. A command whose room or sender is gone is skipped.
func (m *Mediator) ExecuteAll(ctx context.Context, roomID domain.RoomID) int {
	var executed int
	err := m.serialize(roomID, func(_ *roomSlot) error {
		var cmds []domain.Command
		if err := m.registry.Update(func(tx Tx) error {
			room, ok := tx.Room(roomID)
			if !ok {
				return errors.ErrNullTarget
			}
			cmds = room.Commands.Drain()
			return nil
		}); err != nil {
			return err
		}
		for _, cmd := range cmds {
			m.execute(ctx, cmd)
		}
		executed = len(cmds)
		return nil
	})
	if err != nil {
		m.log.Debug("execute all skipped", "room", int(roomID), "error", err)
	}
	return executed
}

// execute runs a single command. The caller holds the room serial lock.
func (m *Mediator) execute(ctx context.Context, cmd domain.Command) {
	switch cmd.Kind {
	case domain.DeliverCommand:
		m.deliver(ctx, cmd)
	case domain.LogCommand:
		m.auditCommand(ctx, cmd)
	default:
		m.log.Debug("unknown command skipped", "kind", cmd.Kind.String())
	}
}

// deliver appends the history entry, hands the message to every other member
// in membership order and then publishes MESSAGE_SENT.
// The send is checked again so a stale command is a no-op.
func (m *Mediator) deliver(ctx context.Context, cmd domain.Command) {
	var (
		delivery   domain.Delivery
		entry      string
		recipients []recipient
		out        []outgoing
	)
	err := m.registry.Update(func(tx Tx) error {
		if err := validateSend(tx, cmd.Room, cmd.Sender, cmd.Content); err != nil {
			return err
		}
		room, sender, _ := tx.Pair(cmd.Room, cmd.Sender)
		entry = room.PostMessage(sender.ID, sender.Name, cmd.Content)
		delivery = domain.Delivery{
			Room:     room.ID,
			RoomName: room.Name(),
			From:     sender.ID,
			FromName: sender.Name,
			Content:  cmd.Content,
		}
		recipients = tx.recipients(room.Recipients(sender.ID))
		out = tx.flush(room)
		return nil
	})
	if err != nil {
		m.log.Debug("deliver skipped", "room", int(cmd.Room), "user", int(cmd.Sender), "error", err)
		return
	}

	for _, r := range recipients {
		if r.participant == nil || !r.online {
			continue
		}
		r.participant.OnReceive(delivery)
	}
	if m.index != nil {
		if err := m.index.Index(ctx, cmd.Room, cmd.Content, entry); err != nil {
			m.log.Error("unable to index history entry", "room", int(cmd.Room), "error", err)
		}
	}
	m.dispatch(out)
}

// auditCommand turns a log command into an audit record. It never touches the room.
// A send that deliver would refuse leaves no audit record either.
func (m *Mediator) auditCommand(ctx context.Context, cmd domain.Command) {
	var record domain.AuditRecord
	err := m.registry.View(func(tx Tx) error {
		if err := validateSend(tx, cmd.Room, cmd.Sender, cmd.Content); err != nil {
			return err
		}
		room, sender, _ := tx.Pair(cmd.Room, cmd.Sender)
		record = domain.AuditRecord{
			ID:         uuid.New(),
			Room:       room.ID,
			RoomName:   room.Name(),
			Sender:     sender.ID,
			SenderName: sender.Name,
			Content:    cmd.Content,
			Language:   detectLanguage(cmd.Content),
			At:         cmd.CreatedAt,
		}
		return nil
	})
	if err != nil {
		m.log.Debug("log skipped", "room", int(cmd.Room), "user", int(cmd.Sender), "error", err)
		return
	}

	if m.audit == nil {
		m.log.Info("[LOG] message sent",
			"room", record.RoomName,
			"sender", record.SenderName,
			"content", record.Content,
		)
		return
	}
	if err := m.audit.Consume(ctx, record); err != nil {
		m.log.Error("audit sink failed", "room", int(cmd.Room), "error", err)
	}
}

// moderate censors the text when a moderator is configured.
func (m *Mediator) moderate(userID domain.UserID, text string) string {
	if m.moderator == nil {
		return text
	}
	censored, words := m.moderator.Censor(text)
	if len(words) > 0 {
		m.log.Info("message censored", "user", int(userID), "words", words)
	}
	return censored
}

// validateSend checks, in order: both handles resolve, the text is not
// empty, the sender is a member and the sender is online.
func validateSend(tx Tx, roomID domain.RoomID, userID domain.UserID, text string) error {
	room, user, err := tx.Pair(roomID, userID)
	if err != nil {
		return err
	}
	if text == "" {
		return errors.ErrEmptyMessage
	}
	if !room.HasMember(userID) {
		return errors.ErrNotAMember
	}
	if !user.Online {
		return errors.ErrSenderOffline
	}
	return nil
}

// minLanguageConfidence below which the language of a message is left empty.
const minLanguageConfidence = 0.5

// detectLanguage returns the ISO 639-1 code of the text, or "" when the guess is too weak.
func detectLanguage(text string) string {
	info := whatlanggo.Detect(text)
	if info.Confidence < minLanguageConfidence {
		return ""
	}
	return info.Lang.Iso6391()
}
