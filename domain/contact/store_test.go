package contact

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/dennoAiden/swiper-venture/internal/testutil"
)

type RepositorySuite struct {
	testutil.DBSuite
}

func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(RepositorySuite))
}

func (s *RepositorySuite) TestCreate() {
	repo := NewRepository(s.TestDB.GetDB(), discardLogger())

	req := validRequest()
	sub := req.Submission()
	s.Require().NoError(repo.Create(s.Ctx, sub))

	s.NotZero(sub.ID)
	s.False(sub.CreatedAt.IsZero())

	var got ContactSubmission
	err := s.TestDB.GetDB().NewSelect().Model(&got).Where("id = ?", sub.ID).Scan(s.Ctx)
	s.Require().NoError(err)
	s.Equal(req.Name, got.Name)
	s.Equal(req.Email, got.Email)
	s.Equal(req.Message, got.Message)
}

func (s *RepositorySuite) TestCreate_AssignsIncreasingIDs() {
	repo := NewRepository(s.TestDB.GetDB(), discardLogger())

	req := validRequest()
	first, second := req.Submission(), req.Submission()
	s.Require().NoError(repo.Create(s.Ctx, first))
	s.Require().NoError(repo.Create(s.Ctx, second))

	s.Greater(second.ID, first.ID)
}

func (s *RepositorySuite) TestCreate_ColumnLimit() {
	repo := NewRepository(s.TestDB.GetDB(), discardLogger())

	req := validRequest()
	sub := req.Submission()
	sub.Phone = "012345678901234567890123"

	s.Error(repo.Create(s.Ctx, sub))
}
