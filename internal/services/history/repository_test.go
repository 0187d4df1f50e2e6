package history

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/hanjaplatform/hanja-api/internal/database"
	"github.com/hanjaplatform/hanja-api/internal/models"
)

type RepositoryTestSuite struct {
	suite.Suite
	db   *database.DB
	repo Repository
	ctx  context.Context
}

func (s *RepositoryTestSuite) SetupTest() {
	db, err := database.Initialize(":memory:", false)
	s.Require().NoError(err)
	s.Require().NoError(db.Migrate())
	s.db = db
	s.repo = NewRepository(db.DB)
	s.ctx = context.Background()
}

func (s *RepositoryTestSuite) TearDownTest() {
	_ = s.db.Close()
}

func (s *RepositoryTestSuite) create(owner string, action models.Action, inputOnly bool, details string) *models.History {
	rec := &models.History{Action: action, Owner: owner, InputOnly: inputOnly, Details: json.RawMessage(details)}
	s.Require().NoError(s.repo.Create(s.ctx, rec))
	// keep created timestamps strictly increasing
	time.Sleep(2 * time.Millisecond)
	return rec
}

func (s *RepositoryTestSuite) TestCreateAndGet() {
	rec := s.create("alice", models.ActionNER, true, `{"text":"王安石"}`)

	got, err := s.repo.GetByID(s.ctx, rec.ID)
	s.Require().NoError(err)
	s.Equal("alice", got.Owner)
	s.True(got.InputOnly)
	s.JSONEq(`{"text":"王安石"}`, string(got.Details))

	_, err = s.repo.GetByID(s.ctx, "missing")
	s.ErrorIs(err, ErrNotFound)
}

func (s *RepositoryTestSuite) TestListFiltersAndOrders() {
	first := s.create("alice", models.ActionNER, true, `{"text":"a"}`)
	second := s.create("alice", models.ActionPunctuate, false, `{"text":"b","mode":"simple"}`)
	s.create("bob", models.ActionTranslate, true, `{"text":"c","source":"Hanja","target":"Korean"}`)

	all, err := s.repo.List(s.ctx, Filter{Owner: "alice"})
	s.Require().NoError(err)
	s.Require().Len(all, 2)
	s.Equal(second.ID, all[0].ID, "newest first")
	s.Equal(first.ID, all[1].ID)

	inputOnly := true
	inputs, err := s.repo.List(s.ctx, Filter{Owner: "alice", InputOnly: &inputOnly})
	s.Require().NoError(err)
	s.Require().Len(inputs, 1)
	s.Equal(first.ID, inputs[0].ID)

	everyone, err := s.repo.List(s.ctx, Filter{})
	s.Require().NoError(err)
	s.Len(everyone, 3)
}

func (s *RepositoryTestSuite) TestReplace() {
	rec := s.create("alice", models.ActionNER, true, `{"text":"a"}`)
	created := rec.Created

	rec.Details = json.RawMessage(`{"text":"a","user":[{"start":0,"end":1,"tag":"PER"}]}`)
	rec.InputOnly = false
	s.Require().NoError(s.repo.Replace(s.ctx, rec))

	got, err := s.repo.GetByID(s.ctx, rec.ID)
	s.Require().NoError(err)
	s.False(got.InputOnly)
	s.Contains(string(got.Details), `"user"`)
	s.WithinDuration(created, got.Created, time.Millisecond)

	s.ErrorIs(s.repo.Replace(s.ctx, &models.History{ID: "missing", Action: models.ActionNER, Details: json.RawMessage(`{}`)}), ErrNotFound)
}

func (s *RepositoryTestSuite) TestDelete() {
	rec := s.create("alice", models.ActionNER, true, `{"text":"a"}`)

	s.Require().NoError(s.repo.Delete(s.ctx, rec.ID))
	_, err := s.repo.GetByID(s.ctx, rec.ID)
	s.ErrorIs(err, ErrNotFound)
	s.ErrorIs(s.repo.Delete(s.ctx, rec.ID), ErrNotFound)
}

func (s *RepositoryTestSuite) TestDeleteInputOnlyBefore() {
	old := s.create("alice", models.ActionNER, true, `{"text":"a"}`)
	saved := s.create("alice", models.ActionNER, false, `{"text":"b"}`)
	s.Require().NoError(s.db.Model(&models.History{}).
		Where("id IN ?", []string{old.ID, saved.ID}).
		UpdateColumn("created", time.Now().Add(-48*time.Hour)).Error)
	recent := s.create("bob", models.ActionTranslate, true, `{"text":"c"}`)

	n, err := s.repo.DeleteInputOnlyBefore(s.ctx, time.Now().Add(-24*time.Hour))
	s.Require().NoError(err)
	s.Equal(int64(1), n)

	_, err = s.repo.GetByID(s.ctx, old.ID)
	s.ErrorIs(err, ErrNotFound)
	for _, id := range []string{saved.ID, recent.ID} {
		_, err := s.repo.GetByID(s.ctx, id)
		s.NoError(err)
	}
}

func (s *RepositoryTestSuite) TestServiceSkipsMalformedRows() {
	s.create("alice", models.ActionNER, true, `{"text":"a"}`)
	s.Require().NoError(s.db.Exec(
		"INSERT INTO history (id, action, details, owner, input_only, created, updated) VALUES (?, ?, ?, ?, ?, ?, ?)",
		"broken", "NER", "{oops", "alice", true, time.Now().UTC(), time.Now().UTC(),
	).Error)

	svc := NewService(s.repo)
	records, err := svc.List(s.ctx, alice, ListOptions{})
	s.Require().NoError(err)
	s.Len(records, 1)
}

func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}

func TestRepositoryWithoutSuite(t *testing.T) {
	db, err := database.Initialize(":memory:", false)
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, db.Migrate())

	repo := NewRepository(db.DB)
	records, err := repo.List(context.Background(), Filter{Owner: "nobody"})
	require.NoError(t, err)
	assert.Empty(t, records)
}
