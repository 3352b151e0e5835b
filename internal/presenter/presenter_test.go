package presenter_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vytor/srep/internal/models"
	"github.com/vytor/srep/internal/presenter"
)

var t0 = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func newPresenter(t *testing.T, format string) (*presenter.Presenter, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	p, err := presenter.New(format, &buf)
	require.NoError(t, err)
	return p, &buf
}

func sampleScores() []models.ProblemScore {
	rf := 0.25
	last := t0.AddDate(0, 0, 10)
	return []models.ProblemScore{
		{
			Problem: models.Problem{ID: 1, Name: "two-sum", Difficulty: models.Easy, Tags: []models.Tag{{ID: 1, Name: "arrays"}}},
		},
		{
			Problem:    models.Problem{ID: 2, Name: "coin-change", Difficulty: models.Medium, Tags: []models.Tag{{ID: 2, Name: "dp"}}},
			KS:         0.75,
			RF:         &rf,
			LastAccess: &last,
			LoggedTags: 1,
		},
	}
}

func TestNew_UnknownFormat(t *testing.T) {
	_, err := presenter.New("csv", &bytes.Buffer{})
	assert.Error(t, err)
}

func TestProblems_Table(t *testing.T) {
	p, buf := newPresenter(t, "table")

	require.NoError(t, p.Problems(sampleScores()))

	out := buf.String()
	assert.Contains(t, out, "Problem")
	assert.Contains(t, out, "two-sum")
	assert.Contains(t, out, "EASY")
	assert.Contains(t, out, "0.75")
	assert.Contains(t, out, "0.25")
	assert.Contains(t, out, "2024-03-11")
}

func TestProblems_Empty(t *testing.T) {
	p, buf := newPresenter(t, "table")
	require.NoError(t, p.Problems(nil))
	assert.Contains(t, buf.String(), "No problems found.")

	p, buf = newPresenter(t, "json")
	require.NoError(t, p.Problems(nil))
	assert.JSONEq(t, "[]", buf.String())
}

func TestProblems_JSON(t *testing.T) {
	p, buf := newPresenter(t, "json")

	require.NoError(t, p.Problems(sampleScores()))

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "two-sum", rows[0]["name"])
	assert.Equal(t, "EASY", rows[0]["difficulty"])
	assert.Nil(t, rows[0]["rf"])
	assert.Equal(t, 0.25, rows[1]["rf"])
	assert.Equal(t, 0.75, rows[1]["ks"])
}

func TestProblems_YAML(t *testing.T) {
	p, buf := newPresenter(t, "yaml")

	require.NoError(t, p.Problems(sampleScores()))

	var rows []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "coin-change", rows[1]["name"])
	assert.Equal(t, "MEDIUM", rows[1]["difficulty"])
	assert.Equal(t, 0.75, rows[1]["ks"])
}

func TestTags_Table(t *testing.T) {
	p, buf := newPresenter(t, "table")

	err := p.Tags([]models.TagPriority{
		{Tag: models.Tag{Name: "heaps"}},
		{Tag: models.Tag{Name: "dp"}, WeightedKS: 3.75, Experience: 0.2, Priority: 0.75, MeanMedium: 5, NumProblems: 3, NumLogged: 1},
	})

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "heaps")
	assert.Contains(t, out, "3.75")
	assert.Contains(t, out, "1/3")
}

func TestProblemLogged_Table(t *testing.T) {
	p, buf := newPresenter(t, "table")

	err := p.ProblemLogged(models.LogReceipt{
		Problem: models.Problem{Name: "coin-change"},
		Log:     models.ProblemLog{ID: 2, Result: models.SolvedOptimallySlower, Timestamp: t0},
		Reviews: []models.HistoryEntry{
			{Tag: "dp", Ease: 2.38, Interval: 50, DueAt: t0.AddDate(0, 0, 50)},
		},
	})

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Logged SOLVED_OPTIMALLY_SLOWER for coin-change")
	assert.Contains(t, out, "2.38")
	assert.Contains(t, out, "50 days")
	assert.Contains(t, out, "2024-04-20")
}

func TestSimulation_JSON(t *testing.T) {
	p, buf := newPresenter(t, "json")

	require.NoError(t, p.Simulation([]models.SimulationStep{
		{Day: 0, Repetition: 0, Result: models.KnewByHeart, Ease: 2.5, Interval: 21},
	}))

	var steps []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &steps))
	require.Len(t, steps, 1)
	assert.Equal(t, "KNEW_BY_HEART", steps[0]["result"])
	assert.Equal(t, float64(21), steps[0]["interval"])
}

func TestReviewsAndHistory_EmptyHints(t *testing.T) {
	p, buf := newPresenter(t, "table")

	require.NoError(t, p.Reviews(nil))
	require.NoError(t, p.History(nil))

	assert.Contains(t, buf.String(), "Nothing due")
	assert.Contains(t, buf.String(), "No attempts logged yet.")
}

func TestCreated_Notices(t *testing.T) {
	p, buf := newPresenter(t, "table")

	require.NoError(t, p.TagCreated(models.Tag{Name: "dp", ExperienceTarget: 5}))
	require.NoError(t, p.ProblemCreated(models.Problem{Name: "coin-change", Difficulty: models.Medium, Tags: []models.Tag{{Name: "dp"}}}))

	assert.Contains(t, buf.String(), "Created tag dp (experience target 5)")
	assert.Contains(t, buf.String(), "Created problem coin-change [MEDIUM] tags: dp")
}
