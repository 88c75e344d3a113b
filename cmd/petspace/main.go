package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"petspace/domain"
	"petspace/moderation"
	"petspace/repositories"
	"petspace/runtime"
	"petspace/search"
	"petspace/sink"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "petspace terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires the mediator with its stores, plays the pet rooms and prints a report.
// Every deferred close runs before main exits.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	charReplacement, err := config.CharacterRune()
	if err != nil {
		return exitConfig, err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Audit store (BadgerDB, in memory)
	db, err := repositories.OpenInMemory()
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Debug("Closing BadgerDB...")
		_ = db.Close()
	}()
	auditRepository := repositories.NewAuditRepository(db, log, config.AuditLimit)
	audit := sink.NewFanout(log, config.SinkTimeout,
		sink.NewDiskSink(auditRepository),
		sink.NewLogSink(log),
	)

	// 3. Mediator
	mediator := runtime.NewMediator(log, runtime.NewRegistry(), audit).
		WithAuditTrail(auditRepository)

	if words := config.Words(); len(words) > 0 {
		moderator, err := moderation.NewModerator(words, charReplacement, log)
		if err != nil {
			return exitConfig, fmt.Errorf("moderation dictionary: %w", err)
		}
		mediator.WithModerator(moderator)
	}

	if config.EnableSearch {
		index, err := search.NewHistoryIndex(log)
		if err != nil {
			return exitRuntime, fmt.Errorf("history index: %w", err)
		}
		defer func() { _ = index.Close() }()
		mediator.WithIndex(index)
	}

	// 4. Play
	rooms, err := play(ctx, log, mediator)
	if err != nil {
		return exitRuntime, err
	}

	// 5. Report
	r := newReport(os.Stdout, config.Colours)
	for _, roomID := range rooms {
		if err := r.room(ctx, mediator, roomID, config.SearchLimit); err != nil {
			return exitRuntime, err
		}
	}
	r.stats(mediator.Stats())
	return exitOK, nil
}

// play runs the CtrlCat and Dogorithm conversations and returns the rooms it created.
func play(ctx context.Context, log *slog.Logger, m *runtime.Mediator) ([]domain.RoomID, error) {
	cats, err := m.CreateRoom(domain.CtrlCat)
	if err != nil {
		return nil, err
	}
	dogs, err := m.CreateRoom(domain.Dogorithm)
	if err != nil {
		return nil, err
	}

	users := make(map[string]domain.UserID)
	for _, name := range []string{"Whiskers", "Mittens", "Rex", "Fido", "Rachel"} {
		id, err := m.CreateUser(name, nil)
		if err != nil {
			return nil, err
		}
		users[name] = id
	}

	steps := []func() error{
		func() error { return m.SetOnline(users["Whiskers"], true) },
		func() error { return m.SetOnline(users["Mittens"], true) },
		func() error { return m.SetOnline(users["Rex"], true) },
		func() error { return m.SetOnline(users["Rachel"], true) },
		func() error { return m.Join(users["Whiskers"], cats) },
		func() error { return m.Join(users["Mittens"], cats) },
		func() error { return m.Join(users["Rachel"], cats) },
		func() error { return m.Join(users["Rex"], dogs) },
		func() error { return m.Join(users["Fido"], dogs) },
		func() error { return m.Join(users["Rachel"], dogs) },
		func() error { return m.SendMessage(ctx, users["Whiskers"], cats, "Who pushed my mug off the desk?") },
		func() error { return m.SendMessage(ctx, users["Mittens"], cats, "Not me, I was coughing up a hairball") },
		func() error { return m.SendMessage(ctx, users["Rachel"], cats, "Lunch at noon, everyone") },
		func() error { return m.SendMessage(ctx, users["Rex"], dogs, "Anyone chasing the squirrel today?") },
		func() error { return m.SetOnline(users["Fido"], true) },
		func() error { return m.SendMessage(ctx, users["Fido"], dogs, "Fetch the logs, good boy") },
		func() error { return m.Leave(users["Rachel"], dogs) },
		func() error { return m.SetOnline(users["Mittens"], false) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, err
		}
	}

	// Rejected on purpose: an offline sender leaves no trace.
	if err := m.SendMessage(ctx, users["Mittens"], cats, "meow?"); err != nil {
		log.Debug("offline send ignored", "error", err)
	}
	return []domain.RoomID{cats, dogs}, nil
}
