package stats

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/horizonhq/horizon-api/internal/models"
)

func goalFor(dreamID string, progress int) models.Goal {
	return models.Goal{
		DreamID:  dreamID,
		Progress: progress,
		Status:   StatusForProgress(progress),
	}
}

func TestDreamProgress_NoGoals(t *testing.T) {
	dream := models.Dream{ID: "d1"}
	require.Equal(t, 0, DreamProgress(dream, nil))
	require.Equal(t, 0, DreamProgress(dream, []models.Goal{goalFor("other", 80)}))
}

func TestDreamProgress_Mean(t *testing.T) {
	dream := models.Dream{ID: "d1"}

	goals := []models.Goal{
		goalFor("d1", 40),
		goalFor("d1", 70),
	}
	require.Equal(t, 55, DreamProgress(dream, goals))

	// 33+33+34 = 100/3 rounds to 33, 33+34+34 = 101/3 rounds to 34
	require.Equal(t, 33, DreamProgress(dream, []models.Goal{
		goalFor("d1", 33), goalFor("d1", 33), goalFor("d1", 34),
	}))
	require.Equal(t, 34, DreamProgress(dream, []models.Goal{
		goalFor("d1", 33), goalFor("d1", 34), goalFor("d1", 34),
	}))
}

func TestDreamProgress_HalfRoundsUp(t *testing.T) {
	dream := models.Dream{ID: "d1"}
	goals := []models.Goal{
		goalFor("d1", 50),
		goalFor("d1", 51),
	}
	require.Equal(t, 51, DreamProgress(dream, goals))
}

func TestDreamProgress_IgnoresOtherDreams(t *testing.T) {
	dream := models.Dream{ID: "d1"}
	goals := []models.Goal{
		goalFor("d1", 40),
		goalFor("d2", 100),
		goalFor("d1", 70),
	}
	require.Equal(t, 55, DreamProgress(dream, goals))
}

func TestStatusForProgress(t *testing.T) {
	require.Equal(t, models.GoalStatusNotStarted, StatusForProgress(0))
	require.Equal(t, models.GoalStatusInProgress, StatusForProgress(1))
	require.Equal(t, models.GoalStatusInProgress, StatusForProgress(99))
	require.Equal(t, models.GoalStatusCompleted, StatusForProgress(100))
}

func TestClampProgress(t *testing.T) {
	require.Equal(t, 0, ClampProgress(-10))
	require.Equal(t, 0, ClampProgress(0))
	require.Equal(t, 42, ClampProgress(42))
	require.Equal(t, 100, ClampProgress(100))
	require.Equal(t, 100, ClampProgress(250))
}

func TestSummarize(t *testing.T) {
	dreams := []models.Dream{
		{ID: "d1"},
		{ID: "d2"},
		{ID: "d3", IsArchived: true},
	}
	goals := []models.Goal{
		goalFor("d1", 0),
		goalFor("d1", 50),
		goalFor("d2", 100),
	}

	s := Summarize(dreams, goals)
	require.Equal(t, 2, s.ActiveDreams)
	require.Equal(t, 1, s.NotStartedGoals)
	require.Equal(t, 1, s.InProgressGoals)
	require.Equal(t, 1, s.CompletedGoals)
	require.Equal(t, 50, s.AverageProgress)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil, nil)
	require.Equal(t, Summary{}, s)
}

func TestRecentLogs_TrustsGivenOrder(t *testing.T) {
	logs := []models.ActionLog{
		{ID: "l1", Date: 300},
		{ID: "l2", Date: 200},
		{ID: "l3", Date: 100},
	}

	recent := RecentLogs(logs, 2)
	require.Len(t, recent, 2)
	require.Equal(t, "l1", recent[0].ID)
	require.Equal(t, "l2", recent[1].ID)

	require.Len(t, RecentLogs(logs, 10), 3)
	require.Empty(t, RecentLogs(nil, 5))
	require.Empty(t, RecentLogs(logs, 0))
	require.Empty(t, RecentLogs(logs, -1))
}

func TestRecentDreams_SkipsArchived(t *testing.T) {
	dreams := []models.Dream{
		{ID: "d1"},
		{ID: "d2", IsArchived: true},
		{ID: "d3"},
		{ID: "d4"},
	}

	recent := RecentDreams(dreams, 2)
	require.Len(t, recent, 2)
	require.Equal(t, "d1", recent[0].ID)
	require.Equal(t, "d3", recent[1].ID)

	require.Empty(t, RecentDreams(dreams, 0))
	require.Empty(t, RecentDreams(dreams, -3))
}
