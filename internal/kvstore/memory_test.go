package kvstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"vendortrack/pkg/sentinel"
)

type MemoryStoreSuite struct {
	suite.Suite
	store *Memory
	ctx   context.Context
}

func (s *MemoryStoreSuite) SetupTest() {
	s.store = NewMemory()
	s.ctx = context.Background()
}

func TestMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(MemoryStoreSuite))
}

func (s *MemoryStoreSuite) TestGetSet() {
	s.Run("set then get returns the value", func() {
		s.Require().NoError(s.store.Set(s.ctx, "vendors", `[{"id":"v1"}]`))

		value, err := s.store.Get(s.ctx, "vendors")
		s.Require().NoError(err)
		s.Equal(`[{"id":"v1"}]`, value)
	})

	s.Run("set overwrites the previous value", func() {
		s.Require().NoError(s.store.Set(s.ctx, "vendors", "old"))
		s.Require().NoError(s.store.Set(s.ctx, "vendors", "new"))

		value, err := s.store.Get(s.ctx, "vendors")
		s.Require().NoError(err)
		s.Equal("new", value)
	})

	s.Run("get of a missing key returns ErrNotFound", func() {
		_, err := s.store.Get(s.ctx, "missing")
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *MemoryStoreSuite) TestDelete() {
	s.Run("delete removes the key", func() {
		s.Require().NoError(s.store.Set(s.ctx, "documents", "[]"))
		s.Require().NoError(s.store.Delete(s.ctx, "documents"))

		_, err := s.store.Get(s.ctx, "documents")
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("delete of a missing key is a no-op", func() {
		s.Require().NoError(s.store.Delete(s.ctx, "missing"))
	})
}

func (s *MemoryStoreSuite) TestList() {
	s.Run("lists keys with the given prefix, sorted", func() {
		s.Require().NoError(s.store.Set(s.ctx, "reminders", "[]"))
		s.Require().NoError(s.store.Set(s.ctx, "vendors", "[]"))
		s.Require().NoError(s.store.Set(s.ctx, "documents", "[]"))

		keys, err := s.store.List(s.ctx, "")
		s.Require().NoError(err)
		s.Equal([]string{"documents", "reminders", "vendors"}, keys)

		keys, err = s.store.List(s.ctx, "doc")
		s.Require().NoError(err)
		s.Equal([]string{"documents"}, keys)
	})

	s.Run("empty store lists no keys", func() {
		s.store = NewMemory()
		keys, err := s.store.List(s.ctx, "")
		s.Require().NoError(err)
		s.Empty(keys)
	})
}
