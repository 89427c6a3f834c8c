package testutil

import (
	"context"

	"github.com/stretchr/testify/suite"
)

// DBSuite gives each test its own rolled-back transaction.
// The suite is skipped when Postgres is unreachable.
//
// Usage:
//
//	type StoreSuite struct {
//	    testutil.DBSuite
//	}
//
//	func (s *StoreSuite) TestSomething() {
//	    store := NewStore(s.TestDB.GetDB(), log)
//	}
type DBSuite struct {
	suite.Suite
	TestDB *TestDB
	Ctx    context.Context
}

func (s *DBSuite) SetupSuite() {
	s.Ctx = context.Background()

	db, err := SetupTestDB(s.Ctx)
	if err != nil {
		s.T().Skipf("postgres unavailable: %v", err)
	}
	s.TestDB = db
}

func (s *DBSuite) TearDownSuite() {
	if s.TestDB != nil {
		s.TestDB.Close()
	}
}

func (s *DBSuite) SetupTest() {
	s.Require().NoError(s.TestDB.BeginTestTx(s.Ctx))
}

func (s *DBSuite) TearDownTest() {
	s.Require().NoError(s.TestDB.RollbackTestTx())
}
