package spacing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/srep/internal/models"
	"github.com/vytor/srep/internal/spacing"
)

func TestSimulate_OnDueDates(t *testing.T) {
	steps := spacing.Simulate([]models.Result{
		models.KnewByHeart,
		models.SolvedOptimallySlower,
		models.NoIdea,
	}, 0)

	require.Len(t, steps, 3)
	assert.Equal(t, 0, steps[0].Day)
	assert.Equal(t, 21, steps[0].Interval)
	assert.Equal(t, 21, steps[1].Day)
	assert.InDelta(t, 2.38, steps[1].Ease, 1e-9)
	assert.Equal(t, 50, steps[1].Interval)
	assert.Equal(t, 71, steps[2].Day)
	assert.Equal(t, spacing.DefaultEase, steps[2].Ease)
	assert.Equal(t, spacing.NonOptimalInterval, steps[2].Interval)
	assert.Equal(t, 2, steps[2].Repetition)
}

func TestSimulate_FixedSpacing(t *testing.T) {
	steps := spacing.Simulate([]models.Result{models.NoIdea, models.NoIdea, models.NoIdea}, 4)

	require.Len(t, steps, 3)
	assert.Equal(t, 0, steps[0].Day)
	assert.Equal(t, 4, steps[1].Day)
	assert.Equal(t, 8, steps[2].Day)
}

func TestSimulate_MatchesReplay(t *testing.T) {
	for _, seq := range sequences(3) {
		steps := spacing.Simulate(seq, 10)
		replayed := spacing.Replay(entries(seq...))

		require.Len(t, steps, len(replayed))
		for i := range steps {
			assert.Equal(t, replayed[i].Ease, steps[i].Ease, "sequence %v", seq)
			assert.Equal(t, replayed[i].Interval, steps[i].Interval, "sequence %v", seq)
		}
	}
}

func TestSimulate_Empty(t *testing.T) {
	assert.Empty(t, spacing.Simulate(nil, 0))
}
