package audit_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"vendortrack/internal/audit"
	"vendortrack/pkg/requestcontext"
)

// memorySink is an in-memory audit.Store that can be told to fail.
type memorySink struct {
	entries  []audit.Entry
	failLoad bool
	failSave bool
}

func (m *memorySink) LoadAuditLog(context.Context) ([]audit.Entry, error) {
	if m.failLoad {
		return nil, errors.New("backend down")
	}
	return append([]audit.Entry(nil), m.entries...), nil
}

func (m *memorySink) SaveAuditLog(_ context.Context, entries []audit.Entry) error {
	if m.failSave {
		return errors.New("backend down")
	}
	m.entries = entries
	return nil
}

type RecorderSuite struct {
	suite.Suite
	sink     *memorySink
	recorder *audit.Recorder
	ctx      context.Context
}

func TestRecorderSuite(t *testing.T) {
	suite.Run(t, new(RecorderSuite))
}

func (s *RecorderSuite) SetupTest() {
	s.sink = &memorySink{}
	s.recorder = audit.NewRecorder(s.sink, slog.New(slog.DiscardHandler))
	s.ctx = requestcontext.WithActor(context.Background(), requestcontext.Actor{
		UserID: "u1", Email: "admin@acme.com", Name: "Admin User", Role: "admin",
	})
}

func (s *RecorderSuite) TestRecordAppends() {
	entry := s.recorder.Record(s.ctx, audit.ActionCreate, "vendor", "v9", map[string]string{"name": "Acme"})

	s.NotEmpty(entry.ID)
	s.Equal("Admin User", entry.User)
	s.Require().Len(s.sink.entries, 1)
	s.Equal(entry.ID, s.sink.entries[0].ID)
}

func (s *RecorderSuite) TestRecordWithoutActorUsesSystem() {
	entry := s.recorder.Record(context.Background(), audit.ActionCreate, "vendor", "v9", nil)

	s.Equal(audit.SystemActor, entry.User)
	s.NotNil(entry.Metadata)
}

func (s *RecorderSuite) TestRecordIsBestEffort() {
	s.Run("save failure never reaches the caller", func() {
		s.sink.failSave = true

		entry := s.recorder.Record(s.ctx, audit.ActionDelete, "vendor", "v9", nil)

		s.NotEmpty(entry.ID, "caller still gets the built entry")
		s.Empty(s.sink.entries, "nothing persisted")
	})

	s.Run("load failure never reaches the caller", func() {
		s.sink.failSave = false
		s.sink.failLoad = true

		entry := s.recorder.Record(s.ctx, audit.ActionDelete, "vendor", "v9", nil)

		s.NotEmpty(entry.ID)
		s.Empty(s.sink.entries)
	})
}

func (s *RecorderSuite) TestListSortsDescendingRegardlessOfInsertionOrder() {
	t1 := time.Date(2025, time.November, 1, 9, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	t3 := t1.Add(2 * time.Hour)
	// Stored out of timestamp order on purpose.
	s.sink.entries = []audit.Entry{
		{ID: "b", Action: audit.ActionUpdate, Timestamp: t2},
		{ID: "a", Action: audit.ActionCreate, Timestamp: t1},
		{ID: "c", Action: audit.ActionDelete, Timestamp: t3},
	}

	got, err := s.recorder.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(got, 3)
	s.Equal([]string{"c", "b", "a"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func (s *RecorderSuite) TestListPropagatesLoadFailure() {
	s.sink.failLoad = true

	_, err := s.recorder.List(s.ctx)
	s.Require().Error(err)
}
