package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"petspace/domain"
	"petspace/domain/event"
	appErrors "petspace/errors"
	"petspace/runtime"
	"strings"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

type report struct {
	out     io.Writer
	colours bool
}

func newReport(out io.Writer, colours bool) report {
	return report{out: out, colours: colours}
}

func (r report) header(title string) {
	header := fmt.Sprintf("  ====== %s ======", title)
	if r.colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	fmt.Fprintln(r.out, header)
}

func (r report) table(headers []string) *tablewriter.Table {
	table := tablewriter.NewWriter(r.out)
	table.SetHeader(headers)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

// room prints the members, the history walked through a snapshot iterator,
// the audit trail and a sample search.
func (r report) room(ctx context.Context, m *runtime.Mediator, roomID domain.RoomID, searchLimit int) error {
	name, _ := m.RoomName(roomID)
	r.header(name)

	members, err := m.MemberIterator(roomID)
	if err != nil {
		return err
	}
	var names []string
	for ; members.HasNext(); members.Next() {
		id, _ := members.Current()
		userName, _ := m.UserName(id)
		status := "offline"
		if m.IsOnline(id) {
			status = "online"
		}
		names = append(names, fmt.Sprintf("%s (%s)", userName, status))
	}
	fmt.Fprintf(r.out, "members: %s\n", strings.Join(names, ", "))

	history, err := m.HistoryIterator(roomID)
	if err != nil {
		return err
	}
	for ; history.HasNext(); history.Next() {
		entry, _ := history.Current()
		fmt.Fprint(r.out, entry)
	}

	records, err := m.AuditTrail(roomID)
	if err != nil {
		return err
	}
	table := r.table([]string{"At", "Sender", "Language", "Content", "ID"})
	for _, record := range records {
		table.Append([]string{
			record.At.Format("15:04:05.000"),
			record.SenderName,
			record.Language,
			record.Content,
			record.ID.String()[:8],
		})
	}
	table.Render()

	found, err := m.SearchHistory(ctx, roomID, "logs lunch", searchLimit)
	switch {
	case errors.Is(err, appErrors.ErrSearchDisabled):
		return nil
	case err != nil:
		return err
	}
	fmt.Fprintf(r.out, "search %q: %d hit(s)\n", "logs lunch", len(found))
	for _, entry := range found {
		fmt.Fprint(r.out, "  ", entry)
	}
	return nil
}

func (r report) stats(counts map[event.Kind]uint64) {
	r.header("Notifications")
	table := r.table([]string{"Kind", "Count"})
	for _, kind := range event.Kinds {
		table.Append([]string{kind.String(), fmt.Sprintf("%d", counts[kind])})
	}
	table.Render()
}
