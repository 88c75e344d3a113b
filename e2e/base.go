// Package e2e plays whole conversations against a fully wired mediator:
// Badger audit store, Bluge history index and moderation included.
package e2e

import (
	"fmt"
	"log/slog"
	"petspace/domain"
	"petspace/moderation"
	"petspace/projection"
	"petspace/repositories"
	"petspace/runtime"
	"petspace/search"
	"petspace/sink"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
	"google.golang.org/protobuf/encoding/protojson"
)

type BaseSuite struct {
	suite.Suite
	Config Config

	db       *badger.DB
	index    *search.HistoryIndex
	Audit    repositories.AuditRepository
	Mediator *runtime.Mediator
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
}

// SetupTest wires a fresh mediator for every test.
func (s *BaseSuite) SetupTest() {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	db, err := repositories.OpenInMemory()
	s.Require().NoError(err)
	s.db = db

	index, err := search.NewHistoryIndex(log)
	s.Require().NoError(err)
	s.index = index

	moderator, err := moderation.NewModerator(strings.Split(s.Config.CensoredWords, ","), '*', log)
	s.Require().NoError(err)

	s.Audit = repositories.NewAuditRepository(db, log, &s.Config.AuditLimit)
	audit := sink.NewFanout(log, time.Second, sink.NewDiskSink(s.Audit), sink.NewLogSink(log))

	s.Mediator = runtime.NewMediator(log, runtime.NewRegistry(), audit).
		WithAuditTrail(s.Audit).
		WithIndex(index).
		WithModerator(moderator)
}

func (s *BaseSuite) TearDownTest() {
	s.Require().NoError(s.index.Close())
	s.Require().NoError(s.db.Close())
}

// Step runs fn under a colorized header.
func (s *BaseSuite) Step(name string, fn func()) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
	s.Run(name, fn)
}

// User creates an online user followed by a timeline.
func (s *BaseSuite) User(name string) (domain.UserID, *projection.Timeline) {
	timeline := projection.NewTimeline(name)
	id, err := s.Mediator.CreateUser(name, timeline)
	s.Require().NoError(err)
	s.Require().NoError(s.Mediator.SetOnline(id, true))
	return id, timeline
}

// DumpAudit logs the audit trail of a room as JSON when E2E_DEBUG_JSON is set.
func (s *BaseSuite) DumpAudit(roomID domain.RoomID) {
	if !s.Config.DebugJSON {
		return
	}
	records, err := s.Mediator.AuditTrail(roomID)
	s.Require().NoError(err)

	marshaler := protojson.MarshalOptions{UseProtoNames: true, Multiline: true}
	for _, record := range records {
		row, err := repositories.FromAuditRecord(record)
		s.Require().NoError(err)
		s.T().Log(marshaler.Format(row))
	}
}
