package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/vytor/srep/internal/models"
	"github.com/vytor/srep/internal/repository"
	"github.com/vytor/srep/internal/repository/sqlite"
	"github.com/vytor/srep/internal/testutil"
)

type ProblemLogRepositorySuite struct {
	suite.Suite
	db       *sql.DB
	repo     repository.ProblemLogRepository
	dp       models.Tag
	graphs   models.Tag
	twoSum   int64
	coinSwap int64
}

func (s *ProblemLogRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewProblemLogRepository(s.db)

	ctx := context.Background()
	tags := sqlite.NewTagRepository(s.db)
	for _, name := range []string{"dp", "graphs"} {
		_, err := tags.Insert(ctx, models.Tag{Name: name, ExperienceTarget: 5})
		s.Require().NoError(err)
	}
	dp, err := tags.GetByName(ctx, "dp")
	s.Require().NoError(err)
	graphs, err := tags.GetByName(ctx, "graphs")
	s.Require().NoError(err)
	s.dp, s.graphs = *dp, *graphs

	problems := sqlite.NewProblemRepository(s.db)
	s.twoSum, err = problems.Insert(ctx, models.Problem{Name: "two-sum", Difficulty: models.Easy, Tags: []models.Tag{s.dp, s.graphs}})
	s.Require().NoError(err)
	s.coinSwap, err = problems.Insert(ctx, models.Problem{Name: "coin-swap", Difficulty: models.Hard, Tags: []models.Tag{s.dp}})
	s.Require().NoError(err)
}

func (s *ProblemLogRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *ProblemLogRepositorySuite) insert(problemID int64, r models.Result, day int, tags ...models.Tag) int64 {
	id, err := s.repo.Insert(context.Background(), models.ProblemLog{
		ProblemID: problemID,
		Result:    r,
		Timestamp: testutil.Day(day),
		Tags:      tags,
	})
	s.Require().NoError(err)
	return id
}

func (s *ProblemLogRepositorySuite) TestInsertAndList() {
	ctx := context.Background()

	id, err := s.repo.Insert(ctx, models.ProblemLog{
		ProblemID: s.twoSum,
		Result:    models.KnewByHeart,
		Timestamp: testutil.Day(0),
		Tags:      []models.Tag{s.graphs, s.dp},
		Comment:   "hash map",
	})
	s.Require().NoError(err)

	logs, err := s.repo.List(ctx, models.ProblemLogFilter{})
	s.Require().NoError(err)
	s.Require().Len(logs, 1)
	l := logs[0]
	s.Assert().Equal(id, l.ID)
	s.Assert().Equal(s.twoSum, l.ProblemID)
	s.Assert().Equal(models.KnewByHeart, l.Result)
	s.Assert().Equal("hash map", l.Comment)
	s.Assert().True(testutil.Day(0).Equal(l.Timestamp), "got %v", l.Timestamp)
	s.Require().Len(l.Tags, 2)
	s.Assert().Equal("dp", l.Tags[0].Name)
	s.Assert().Equal("graphs", l.Tags[1].Name)
}

func (s *ProblemLogRepositorySuite) TestList_OrderedByTimestampThenInsertion() {
	late := s.insert(s.twoSum, models.NoIdea, 10, s.dp)
	tieA := s.insert(s.twoSum, models.SolvedSuboptimally, 3, s.dp)
	tieB := s.insert(s.twoSum, models.KnewByHeart, 3, s.dp)
	early := s.insert(s.twoSum, models.SolvedOptimallySlower, 1, s.dp)

	logs, err := s.repo.List(context.Background(), models.ProblemLogFilter{})
	s.Require().NoError(err)
	s.Require().Len(logs, 4)
	s.Assert().Equal([]int64{early, tieA, tieB, late}, []int64{logs[0].ID, logs[1].ID, logs[2].ID, logs[3].ID})
}

func (s *ProblemLogRepositorySuite) TestList_FilterByProblem() {
	s.insert(s.twoSum, models.NoIdea, 0, s.dp, s.graphs)
	coin := s.insert(s.coinSwap, models.KnewByHeart, 1, s.dp)

	logs, err := s.repo.List(context.Background(), models.ProblemLogFilter{ProblemIDs: []int64{s.coinSwap}})
	s.Require().NoError(err)
	s.Require().Len(logs, 1)
	s.Assert().Equal(coin, logs[0].ID)
	s.Require().Len(logs[0].Tags, 1)
	s.Assert().Equal("dp", logs[0].Tags[0].Name)

	none, err := s.repo.List(context.Background(), models.ProblemLogFilter{ProblemIDs: []int64{}})
	s.Require().NoError(err)
	s.Assert().Empty(none)
}

func (s *ProblemLogRepositorySuite) TestInsert_UnknownProblemFails() {
	_, err := s.repo.Insert(context.Background(), models.ProblemLog{
		ProblemID: 999,
		Result:    models.NoIdea,
		Timestamp: testutil.Day(0),
	})
	s.Require().Error(err)

	logs, err := s.repo.List(context.Background(), models.ProblemLogFilter{})
	s.Require().NoError(err)
	s.Assert().Empty(logs)
}

func TestProblemLogRepositorySuite(t *testing.T) {
	suite.Run(t, new(ProblemLogRepositorySuite))
}
